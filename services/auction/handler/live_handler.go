package handler

import (
	"io"

	"auctionhouse/internal/livefeed"
	"auctionhouse/services/auction/helpers"

	"github.com/gin-gonic/gin"
)

// LiveHandler streams bid updates for a single auction over server-sent events.
type LiveHandler struct {
	hub *livefeed.Hub
}

func NewLiveHandler(hub *livefeed.Hub) *LiveHandler {
	return &LiveHandler{hub: hub}
}

// LiveFeedHandler handles GET /auctions/:auction_id/live
//
// Each connection joins the auction's room and receives every bid-update
// event accepted while it is attached. Delivery is at-most-once with no
// replay: a client that connects late sees the new price on its next full
// fetch of the auction.
func (h *LiveHandler) LiveFeedHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	events, cancel := h.hub.Subscribe(auctionID)
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	helpers.LogSuccess("LiveFeedHandler", "viewer connected", map[string]any{
		"auction_id": auctionID,
	})

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("bid-update", ev)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
