package helpers

import (
	model "auctionhouse/internal/models"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs
type PlaceBidRequest struct {
	AuctionID string          `json:"auction_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
}

type PlaceBidResponse struct {
	Success    bool      `json:"success"`
	Message    string    `json:"message"`
	Bid        model.Bid `json:"bid"`
	CurrentBid int64     `json:"current_bid"`
}

type CloseExpiredResponse struct {
	Message string `json:"message"`
	Closed  int    `json:"closed"`
}

type MarkReadResponse struct {
	Message string `json:"message"`
	Updated int64  `json:"updated"`
}
