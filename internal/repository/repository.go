package repository

import (
	"time"

	model "auctionhouse/internal/models"
)

// Sort orders accepted by ListAuctions.
const (
	SortNewest     = "newest"
	SortEndingSoon = "ending_soon"
	SortPriceAsc   = "price_asc"
	SortPriceDesc  = "price_desc"
)

// AuctionFilter narrows and orders an auction listing query.
// Zero values mean "no filter"; CategoryAll ("All") also matches everything.
type AuctionFilter struct {
	Search   string
	Category string
	MinPrice *int64
	MaxPrice *int64
	Status   string
	Sort     string
}

// BidCommit is the result of an accepted, durably committed bid.
type BidCommit struct {
	Bid          model.Bid
	Auction      model.Auction
	PrevWinnerID string
}

// AuctionDB defines auction and bid storage for the marketplace.
//
// PlaceBid is the single mutation path for current_bid/winner and must be
// atomic per auction: the threshold comparison, the expiry re-check and the
// price update happen in one storage transaction, so two concurrent bids can
// never both commit against the same stale price.
type AuctionDB interface {
	GetAuction(auctionID string) (model.Auction, error)
	GetAuctionBids(auctionID string) ([]model.Bid, error)
	ListAuctions(filter AuctionFilter) ([]model.Auction, error)
	PlaceBid(bid model.Bid, now time.Time) (BidCommit, error)
	CloseIfExpired(auctionID string, now time.Time) (bool, error)
	ListExpired(now time.Time) ([]string, error)
}

// UserDB resolves users and sellers referenced by the core.
type UserDB interface {
	GetUser(userID string) (model.User, error)
	GetSeller(sellerID string) (model.Seller, error)
}

// NotificationDB stores in-app notifications.
type NotificationDB interface {
	CreateNotification(n model.Notification) error
	GetNotificationsForUser(userID string) ([]model.Notification, error)
	MarkAllRead(userID string) (int64, error)
}

// ReviewDB stores seller reviews.
type ReviewDB interface {
	CreateReview(r model.Review) error
	GetReviewsForSeller(sellerID string) ([]model.Review, error)
}
