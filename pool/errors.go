package pool

import "errors"

var (
	// ErrZeroAmount indicates a zero asset or share amount was supplied to
	// deposit, redeem or withdraw.
	ErrZeroAmount = errors.New("pool: zero amount")

	// ErrNegativeAmount indicates a negative amount.
	ErrNegativeAmount = errors.New("pool: negative amount")

	// ErrEmptyAccount indicates an empty account identifier.
	ErrEmptyAccount = errors.New("pool: empty account")

	// ErrNotAuthorized indicates the caller is not the owner (or pending
	// owner) required for an administrative action.
	ErrNotAuthorized = errors.New("pool: caller is not authorized")

	// ErrTransferFailed indicates the custody mechanism rejected the asset
	// transfer; the enclosing operation was rolled back in full.
	ErrTransferFailed = errors.New("pool: asset transfer failed")

	// ErrZeroVestingPeriod indicates a vesting period shorter than one second.
	ErrZeroVestingPeriod = errors.New("pool: zero vesting period")

	// ErrCustodyDeficit indicates custody holds less than the current total
	// holdings, so there is no surplus to vest.
	ErrCustodyDeficit = errors.New("pool: custody balance below current holdings")

	// ErrInsufficientHoldings indicates a redemption or withdrawal exceeds
	// the pool's current total holdings.
	ErrInsufficientHoldings = errors.New("pool: amount exceeds current holdings")

	// ErrNilCollaborator indicates a required collaborator was not supplied.
	ErrNilCollaborator = errors.New("pool: nil collaborator")

	// ErrInvalidState indicates a restored snapshot is malformed.
	ErrInvalidState = errors.New("pool: invalid state")
)
