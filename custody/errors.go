package custody

import "errors"

var (
	// ErrEmptyAccount indicates an empty account identifier.
	ErrEmptyAccount = errors.New("custody: empty account")

	// ErrZeroAmount indicates a transfer amount of zero.
	ErrZeroAmount = errors.New("custody: zero amount")

	// ErrNegativeAmount indicates a negative amount.
	ErrNegativeAmount = errors.New("custody: negative amount")

	// ErrInsufficientFunds indicates the source account holds fewer asset
	// units than the transfer requires.
	ErrInsufficientFunds = errors.New("custody: insufficient funds")

	// ErrTransferRejected indicates the transfer mechanism refused the
	// transfer. Used by the in-memory implementation's failure injection.
	ErrTransferRejected = errors.New("custody: transfer rejected")
)
