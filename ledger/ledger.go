package ledger

import (
	"fmt"
	"sync"

	"cosmossdk.io/math"
)

// Ledger is the fungible share bookkeeping consulted by the pool engine.
// Mint and Burn are reserved for the pool itself; Transfer, Approve and
// TransferFrom implement the usual holder-to-holder semantics.
type Ledger interface {
	// Mint creates amount shares and credits them to account.
	Mint(account string, amount math.Int) error

	// Burn destroys amount shares held by account.
	Burn(account string, amount math.Int) error

	// Transfer moves amount shares from one account to another.
	Transfer(from, to string, amount math.Int) error

	// Approve sets spender's allowance over owner's shares.
	Approve(owner, spender string, amount math.Int) error

	// TransferFrom moves amount shares using a prior allowance.
	TransferFrom(spender, from, to string, amount math.Int) error

	// Allowance returns the remaining allowance of spender over owner.
	Allowance(owner, spender string) math.Int

	// BalanceOf returns the shares held by account.
	BalanceOf(account string) math.Int

	// TotalSupply returns the total shares outstanding.
	TotalSupply() math.Int
}

// MemLedger is an in-memory Ledger implementation.
type MemLedger struct {
	mu         sync.RWMutex
	balances   map[string]math.Int
	allowances map[string]math.Int
	supply     math.Int
}

// Compile-time interface check.
var _ Ledger = (*MemLedger)(nil)

// NewMemLedger creates an empty in-memory share ledger.
func NewMemLedger() *MemLedger {
	return &MemLedger{
		balances:   make(map[string]math.Int),
		allowances: make(map[string]math.Int),
		supply:     math.ZeroInt(),
	}
}

func allowanceKey(owner, spender string) string {
	return owner + "\x00" + spender
}

func checkAmount(account string, amount math.Int) error {
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

// Mint creates amount shares and credits them to account.
func (l *MemLedger) Mint(account string, amount math.Int) error {
	if err := checkAmount(account, amount); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.balances[account] = l.balance(account).Add(amount)
	l.supply = l.supply.Add(amount)
	return nil
}

// Burn destroys amount shares held by account.
func (l *MemLedger) Burn(account string, amount math.Int) error {
	if err := checkAmount(account, amount); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	bal := l.balance(account)
	if bal.LT(amount) {
		return fmt.Errorf("%w: have %s, burn %s", ErrInsufficientBalance, bal, amount)
	}
	l.balances[account] = bal.Sub(amount)
	l.supply = l.supply.Sub(amount)
	return nil
}

// Transfer moves amount shares from one account to another.
func (l *MemLedger) Transfer(from, to string, amount math.Int) error {
	if err := checkAmount(from, amount); err != nil {
		return err
	}
	if to == "" {
		return ErrEmptyAccount
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.move(from, to, amount)
}

// Approve sets spender's allowance over owner's shares.
func (l *MemLedger) Approve(owner, spender string, amount math.Int) error {
	if owner == "" || spender == "" {
		return ErrEmptyAccount
	}
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeAmount, amount)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.allowances[allowanceKey(owner, spender)] = amount
	return nil
}

// TransferFrom moves amount shares from one account to another using a
// prior allowance granted to spender.
func (l *MemLedger) TransferFrom(spender, from, to string, amount math.Int) error {
	if err := checkAmount(from, amount); err != nil {
		return err
	}
	if to == "" || spender == "" {
		return ErrEmptyAccount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	key := allowanceKey(from, spender)
	allowed, ok := l.allowances[key]
	if !ok || allowed.LT(amount) {
		return fmt.Errorf("%w: allowed %s, need %s", ErrInsufficientAllowance, l.allowanceLocked(from, spender), amount)
	}
	if err := l.move(from, to, amount); err != nil {
		return err
	}
	l.allowances[key] = allowed.Sub(amount)
	return nil
}

// Allowance returns the remaining allowance of spender over owner's shares.
func (l *MemLedger) Allowance(owner, spender string) math.Int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.allowanceLocked(owner, spender)
}

// BalanceOf returns the shares held by account.
func (l *MemLedger) BalanceOf(account string) math.Int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balance(account)
}

// TotalSupply returns the total shares outstanding.
func (l *MemLedger) TotalSupply() math.Int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.supply
}

func (l *MemLedger) balance(account string) math.Int {
	if bal, ok := l.balances[account]; ok {
		return bal
	}
	return math.ZeroInt()
}

func (l *MemLedger) allowanceLocked(owner, spender string) math.Int {
	if a, ok := l.allowances[allowanceKey(owner, spender)]; ok {
		return a
	}
	return math.ZeroInt()
}

func (l *MemLedger) move(from, to string, amount math.Int) error {
	bal := l.balance(from)
	if bal.LT(amount) {
		return fmt.Errorf("%w: have %s, transfer %s", ErrInsufficientBalance, bal, amount)
	}
	l.balances[from] = bal.Sub(amount)
	l.balances[to] = l.balance(to).Add(amount)
	return nil
}
