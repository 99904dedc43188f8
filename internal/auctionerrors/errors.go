package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrLotNotFound = errors.New("lot not found")
	ErrBidNotFound = errors.New("bid not found")
)

// business rule errors
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotActive         = errors.New("lot is not active")
	ErrSelfBid           = errors.New("owner cannot bid on own lot")
	ErrBelowMinimum      = errors.New("bid amount below required minimum")
	ErrNotOwner          = errors.New("caller is not authorized for this operation")
	ErrNotPending        = errors.New("bid is no longer pending")
	ErrOutOfStock        = errors.New("lot has no remaining stock")
	ErrInvalidTransition = errors.New("invalid bid status transition")
)

// Infrastructure errors. Callers should retry these rather than treat them as
// business outcomes.
var (
	ErrUnavailable = errors.New("operation temporarily unavailable")
	ErrConflict    = errors.New("write conflict, retry the operation")
)
