package custody

import (
	"fmt"
	"sync"

	"cosmossdk.io/math"
)

// Custody is the external mechanism holding the pool's underlying asset.
// The pool engine decides amounts; custody moves them and may refuse.
type Custody interface {
	// TransferIn moves amount asset units from a participant into the
	// pool's custody.
	TransferIn(from string, amount math.Int) error

	// TransferOut moves amount asset units from the pool's custody to a
	// participant.
	TransferOut(to string, amount math.Int) error

	// Balance returns the asset units currently in the pool's custody.
	Balance() math.Int
}

// MemCustody is an in-memory Custody implementation. It tracks participant
// wallets alongside the pool's own balance and supports one-shot failure
// injection so callers can exercise rollback paths.
type MemCustody struct {
	mu       sync.RWMutex
	pool     math.Int
	wallets  map[string]math.Int
	failNext error
}

// Compile-time interface check.
var _ Custody = (*MemCustody)(nil)

// NewMemCustody creates an in-memory custody mechanism with an empty pool.
func NewMemCustody() *MemCustody {
	return &MemCustody{
		pool:    math.ZeroInt(),
		wallets: make(map[string]math.Int),
	}
}

// Fund credits amount asset units to a participant's wallet.
func (c *MemCustody) Fund(account string, amount math.Int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.wallets[account] = c.wallet(account).Add(amount)
}

// FundPool credits amount asset units directly to the pool's custody,
// modelling revenue arriving outside the deposit flow. The resulting
// surplus is what a vesting schedule distributes.
func (c *MemCustody) FundPool(amount math.Int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pool = c.pool.Add(amount)
}

// FailNext makes the next transfer fail with err, then clears.
func (c *MemCustody) FailNext(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failNext = err
}

// TransferIn moves amount from a participant's wallet into the pool.
func (c *MemCustody) TransferIn(from string, amount math.Int) error {
	if err := checkTransfer(from, amount); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.takeFailure(); err != nil {
		return err
	}
	bal := c.wallet(from)
	if bal.LT(amount) {
		return fmt.Errorf("%w: %s has %s, needs %s", ErrInsufficientFunds, from, bal, amount)
	}
	c.wallets[from] = bal.Sub(amount)
	c.pool = c.pool.Add(amount)
	return nil
}

// TransferOut moves amount from the pool to a participant's wallet.
func (c *MemCustody) TransferOut(to string, amount math.Int) error {
	if err := checkTransfer(to, amount); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.takeFailure(); err != nil {
		return err
	}
	if c.pool.LT(amount) {
		return fmt.Errorf("%w: pool has %s, needs %s", ErrInsufficientFunds, c.pool, amount)
	}
	c.pool = c.pool.Sub(amount)
	c.wallets[to] = c.wallet(to).Add(amount)
	return nil
}

// Balance returns the asset units currently in the pool's custody.
func (c *MemCustody) Balance() math.Int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pool
}

// WalletOf returns a participant's wallet balance.
func (c *MemCustody) WalletOf(account string) math.Int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.wallet(account)
}

func (c *MemCustody) wallet(account string) math.Int {
	if bal, ok := c.wallets[account]; ok {
		return bal
	}
	return math.ZeroInt()
}

func (c *MemCustody) takeFailure() error {
	if c.failNext == nil {
		return nil
	}
	err := c.failNext
	c.failNext = nil
	return fmt.Errorf("%w: %w", ErrTransferRejected, err)
}

func checkTransfer(account string, amount math.Int) error {
	if account == "" {
		return ErrEmptyAccount
	}
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeAmount, amount)
	}
	if amount.IsZero() {
		return ErrZeroAmount
	}
	return nil
}
