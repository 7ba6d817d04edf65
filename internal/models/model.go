package models

import "time"

// Category classifies an auction listing.
type Category string

const (
	CategoryElectronics  Category = "Electronics"
	CategoryFashion      Category = "Fashion"
	CategoryHome         Category = "Home"
	CategoryArt          Category = "Art"
	CategoryVehicles     Category = "Vehicles"
	CategoryCollectibles Category = "Collectibles"
	CategoryOther        Category = "Other"
)

// Categories lists every valid auction category.
var Categories = []Category{
	CategoryElectronics,
	CategoryFashion,
	CategoryHome,
	CategoryArt,
	CategoryVehicles,
	CategoryCollectibles,
	CategoryOther,
}

// ValidCategory reports whether s names a known category.
func ValidCategory(s string) bool {
	for _, c := range Categories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// AuctionStatus is the lifecycle state of an auction.
// The only transition is active -> closed; closed is terminal.
type AuctionStatus string

const (
	StatusActive AuctionStatus = "active"
	StatusClosed AuctionStatus = "closed"
)

// User represents a registered buyer in the marketplace.
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Seller represents a listing owner managed from the seller portal.
type Seller struct {
	SellerID string `json:"seller_id"`
	Name     string `json:"name"`
}

// Auction represents a timed listing with a rising price.
// CurrentBid equals StartingBid until the first accepted bid, and always
// tracks the amount of the most recent accepted bid afterwards.
// Amounts are whole currency units.
type Auction struct {
	AuctionID   string        `json:"auction_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    Category      `json:"category"`
	ImageURLs   []string      `json:"image_urls"`
	StartingBid int64         `json:"starting_bid"`
	CurrentBid  int64         `json:"current_bid"`
	EndTime     time.Time     `json:"end_time"`
	SellerID    string        `json:"seller_id"`
	WinnerID    string        `json:"winner_id,omitempty"`
	Status      AuctionStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Expired reports whether the auction's end time has passed at the given instant.
func (a Auction) Expired(now time.Time) bool {
	return !now.Before(a.EndTime)
}

// Bid represents an accepted price offer on an auction. Bids are append-only
// and never mutated; the bidder's display name is denormalized for history views.
type Bid struct {
	BidID      string    `json:"bid_id"`
	AuctionID  string    `json:"auction_id"`
	BidderID   string    `json:"bidder_id"`
	BidderName string    `json:"bidder_name"`
	Amount     int64     `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}

// AuctionDetail pairs an auction with its bid history, most recent bid first.
type AuctionDetail struct {
	Auction Auction `json:"auction"`
	Bids    []Bid   `json:"bids"`
}

// NotificationOutbid marks notifications created when a leader is displaced.
const NotificationOutbid = "outbid"

// Notification is a stored in-app message for a user.
type Notification struct {
	NotificationID string    `json:"notification_id"`
	UserID         string    `json:"user_id"`
	AuctionID      string    `json:"auction_id"`
	Type           string    `json:"type"`
	Message        string    `json:"message"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}

// Review is a buyer's rating of a seller.
type Review struct {
	ReviewID     string    `json:"review_id"`
	SellerID     string    `json:"seller_id"`
	ReviewerID   string    `json:"reviewer_id"`
	ReviewerName string    `json:"reviewer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}
