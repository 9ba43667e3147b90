package auctionerrors

import (
	"errors"
	"fmt"
)

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrRequestNotFound = errors.New("access request not found")
)

// business logic errors
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrAuctionEnded      = errors.New("auction has ended")
	ErrSelfBid           = errors.New("creator cannot bid on their own auction")
	ErrSelfAccess        = errors.New("creator does not need to request access")
	ErrAccessDenied      = errors.New("not approved to bid on this auction")
	ErrBidTooLow         = errors.New("bid must be higher than current price")
	ErrDuplicateRequest  = errors.New("access request already sent")
	ErrNotOwner          = errors.New("only the creator can approve bidders")
	ErrNoPendingRequests = errors.New("no pending requests to approve")
)

// AccessDeniedError carries the access-request status that caused the
// denial so the presentation layer can render "never requested" vs
// "pending" vs "rejected". It matches ErrAccessDenied under errors.Is.
type AccessDeniedError struct {
	// Status is the request status at denial time, or "" when the user
	// never requested access.
	Status string
}

func (e *AccessDeniedError) Error() string {
	if e.Status == "" {
		return fmt.Sprintf("%v: no access request", ErrAccessDenied)
	}
	return fmt.Sprintf("%v: request status is %s", ErrAccessDenied, e.Status)
}

func (e *AccessDeniedError) Unwrap() error {
	return ErrAccessDenied
}
