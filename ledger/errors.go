package ledger

import "errors"

var (
	// ErrEmptyAccount indicates an empty account identifier.
	ErrEmptyAccount = errors.New("ledger: empty account")

	// ErrZeroAmount indicates a mint/burn/transfer amount of zero.
	ErrZeroAmount = errors.New("ledger: zero amount")

	// ErrNegativeAmount indicates a negative amount.
	ErrNegativeAmount = errors.New("ledger: negative amount")

	// ErrInsufficientBalance indicates the account holds fewer shares than requested.
	ErrInsufficientBalance = errors.New("ledger: insufficient balance")

	// ErrInsufficientAllowance indicates the spender's allowance is too small.
	ErrInsufficientAllowance = errors.New("ledger: insufficient allowance")
)
