package handler

import (
	"net/http"
	"strconv"

	model "auctionhouse/internal/models"
	"auctionhouse/internal/repository"
	"auctionhouse/services/auction/helpers"
	"auctionhouse/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	PlaceBid(auctionID, bidderID string, amount int64) (model.Bid, int64, error)
	GetAuctionDetail(auctionID string) (model.AuctionDetail, error)
	ListAuctions(filter repository.AuctionFilter) ([]model.Auction, error)
	CloseExpired() (int, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	filter := repository.AuctionFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Sort:     c.Query("sort"),
	}

	var err error
	if filter.MinPrice, err = priceParam(c, "minPrice"); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "minPrice must be a number")
		return
	}
	if filter.MaxPrice, err = priceParam(c, "maxPrice"); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "maxPrice must be a number")
		return
	}

	auctions, err := h.service.ListAuctions(filter)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Error("ListAuctionsHandler: failed to list auctions", map[string]any{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, auctions)
}

// priceParam parses an optional numeric query parameter.
func priceParam(c *gin.Context, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	detail, err := h.service.GetAuctionDetail(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Warn("GetAuctionHandler: failed to fetch auction", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// RecordBidHandler handles POST /auctions/bid
func (h *AuctionHandler) RecordBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RecordBidHandler", err)
		return
	}

	amount, err := helpers.AmountToUnits(req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Warn("RecordBidHandler: invalid amount", map[string]any{
			"auction_id": req.AuctionID,
			"amount":     req.Amount.String(),
			"error":      err.Error(),
		})
		return
	}

	bidderID := helpers.CurrentUserID(c)
	bid, currentBid, err := h.service.PlaceBid(req.AuctionID, bidderID, amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Error("RecordBidHandler: failed to place bid", map[string]any{
			"auction_id": req.AuctionID,
			"bidder_id":  bidderID,
			"error":      err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, helpers.PlaceBidResponse{
		Success:    true,
		Message:    "Bid placed successfully",
		Bid:        bid,
		CurrentBid: currentBid,
	})
	helpers.LogSuccess("RecordBidHandler", "bid placed successfully", map[string]any{
		"bid_id":      bid.BidID,
		"auction_id":  bid.AuctionID,
		"bidder_id":   bid.BidderID,
		"amount":      bid.Amount,
		"current_bid": currentBid,
	})
}

// CloseExpiredHandler handles POST /auctions/close-expired
func (h *AuctionHandler) CloseExpiredHandler(c *gin.Context) {
	closed, err := h.service.CloseExpired()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Error("CloseExpiredHandler: sweep failed", map[string]any{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, helpers.CloseExpiredResponse{
		Message: "Expired auctions closed successfully",
		Closed:  closed,
	})
	helpers.LogSuccess("CloseExpiredHandler", "sweep completed", map[string]any{"closed": closed})
}
