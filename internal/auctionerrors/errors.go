package auctionerrors

import (
	"errors"
	"fmt"
)

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrSellerNotFound  = errors.New("seller not found")
)

// Business logic errors
var (
	ErrAuctionNotActive = errors.New("auction is not active")
	ErrAuctionExpired   = errors.New("auction has expired")
	ErrInvalidBid       = errors.New("invalid bid")
	ErrBidTooLow        = errors.New("bid amount too low")
	ErrInvalidReview    = errors.New("invalid review")
	ErrUnauthorized     = errors.New("unauthorized")
)

// BidTooLow rejects a bid at or below the current threshold. It matches
// ErrBidTooLow under errors.Is and carries the threshold so callers can tell
// the bidder what to beat.
type BidTooLow struct {
	Threshold int64
}

func (e *BidTooLow) Error() string {
	return fmt.Sprintf("bid must be higher than current bid: %d", e.Threshold)
}

func (e *BidTooLow) Is(target error) bool {
	return target == ErrBidTooLow
}
