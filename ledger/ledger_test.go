package ledger

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemLedger_MintBurn(t *testing.T) {
	l := NewMemLedger()

	require.NoError(t, l.Mint("alice", math.NewInt(1000)))
	require.NoError(t, l.Mint("bob", math.NewInt(500)))

	assert.Equal(t, math.NewInt(1000), l.BalanceOf("alice"))
	assert.Equal(t, math.NewInt(500), l.BalanceOf("bob"))
	assert.Equal(t, math.NewInt(1500), l.TotalSupply())

	require.NoError(t, l.Burn("alice", math.NewInt(400)))
	assert.Equal(t, math.NewInt(600), l.BalanceOf("alice"))
	assert.Equal(t, math.NewInt(1100), l.TotalSupply())
}

func TestMemLedger_BurnExceedsBalance(t *testing.T) {
	l := NewMemLedger()
	require.NoError(t, l.Mint("alice", math.NewInt(100)))

	err := l.Burn("alice", math.NewInt(101))
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, math.NewInt(100), l.BalanceOf("alice"))
	assert.Equal(t, math.NewInt(100), l.TotalSupply())
}

func TestMemLedger_InvalidAmounts(t *testing.T) {
	l := NewMemLedger()

	tests := []struct {
		name    string
		fn      func() error
		wantErr error
	}{
		{"mint zero", func() error { return l.Mint("alice", math.ZeroInt()) }, ErrZeroAmount},
		{"mint negative", func() error { return l.Mint("alice", math.NewInt(-1)) }, ErrNegativeAmount},
		{"mint empty account", func() error { return l.Mint("", math.NewInt(1)) }, ErrEmptyAccount},
		{"burn zero", func() error { return l.Burn("alice", math.ZeroInt()) }, ErrZeroAmount},
		{"transfer zero", func() error { return l.Transfer("alice", "bob", math.ZeroInt()) }, ErrZeroAmount},
		{"transfer empty dest", func() error { return l.Transfer("alice", "", math.NewInt(1)) }, ErrEmptyAccount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.fn(), tt.wantErr)
		})
	}
}

func TestMemLedger_Transfer(t *testing.T) {
	l := NewMemLedger()
	require.NoError(t, l.Mint("alice", math.NewInt(1000)))

	require.NoError(t, l.Transfer("alice", "bob", math.NewInt(250)))
	assert.Equal(t, math.NewInt(750), l.BalanceOf("alice"))
	assert.Equal(t, math.NewInt(250), l.BalanceOf("bob"))
	assert.Equal(t, math.NewInt(1000), l.TotalSupply())

	err := l.Transfer("bob", "alice", math.NewInt(251))
	assert.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestMemLedger_ApproveTransferFrom(t *testing.T) {
	l := NewMemLedger()
	require.NoError(t, l.Mint("alice", math.NewInt(1000)))
	require.NoError(t, l.Approve("alice", "carol", math.NewInt(300)))

	assert.Equal(t, math.NewInt(300), l.Allowance("alice", "carol"))

	require.NoError(t, l.TransferFrom("carol", "alice", "bob", math.NewInt(200)))
	assert.Equal(t, math.NewInt(800), l.BalanceOf("alice"))
	assert.Equal(t, math.NewInt(200), l.BalanceOf("bob"))
	assert.Equal(t, math.NewInt(100), l.Allowance("alice", "carol"))

	err := l.TransferFrom("carol", "alice", "bob", math.NewInt(101))
	assert.ErrorIs(t, err, ErrInsufficientAllowance)
}

func TestMemLedger_UnknownAccountIsZero(t *testing.T) {
	l := NewMemLedger()
	assert.True(t, l.BalanceOf("nobody").IsZero())
	assert.True(t, l.TotalSupply().IsZero())
	assert.True(t, l.Allowance("nobody", "noone").IsZero())
}
