package notifier

import (
	"fmt"
	"time"

	"auctionhouse/internal/livefeed"
	model "auctionhouse/internal/models"
	"auctionhouse/internal/repository"
	"auctionhouse/utils"
)

// BidFanout delivers the consequences of an accepted bid: a live broadcast to
// the auction's room, a durable in-app notification for the displaced leader,
// and a best-effort outbid email.
type BidFanout struct {
	notifications repository.NotificationDB
	users         repository.UserDB
	mailer        Mailer
	hub           *livefeed.Hub
	baseURL       string
}

// NewBidFanout creates a fan-out bound to the given hub and mailer.
func NewBidFanout(notifications repository.NotificationDB, users repository.UserDB, mailer Mailer, hub *livefeed.Hub, baseURL string) *BidFanout {
	return &BidFanout{
		notifications: notifications,
		users:         users,
		mailer:        mailer,
		hub:           hub,
		baseURL:       baseURL,
	}
}

// OnBidAccepted runs after a bid has durably committed.
//
// The in-app notification for the previous leader is written synchronously so
// its state is consistent by the time the bidder sees "bid placed"; the email
// is fire-and-forget. Neither failure propagates: the bid has already
// committed and must not appear to fail. A bidder outbidding themselves gets
// no notification.
func (f *BidFanout) OnBidAccepted(auction model.Auction, bid model.Bid, prevWinnerID string) {
	f.hub.Publish(livefeed.BidUpdate{
		AuctionID: auction.AuctionID,
		NewBid:    bid.Amount,
		Bidder:    bid.BidderName,
		Bid:       bid,
	})

	if prevWinnerID == "" || prevWinnerID == bid.BidderID {
		return
	}

	n := model.Notification{
		NotificationID: utils.GenerateID(),
		UserID:         prevWinnerID,
		AuctionID:      auction.AuctionID,
		Type:           model.NotificationOutbid,
		Message:        fmt.Sprintf("You were outbid on %s!", auction.Title),
		CreatedAt:      time.Now().UTC(),
	}
	if err := f.notifications.CreateNotification(n); err != nil {
		utils.Error("fanout: failed to store outbid notification", map[string]any{
			"user_id":    prevWinnerID,
			"auction_id": auction.AuctionID,
			"error":      err.Error(),
		})
	}

	go f.sendOutbidEmail(auction, bid, prevWinnerID)
}

// sendOutbidEmail looks up the displaced leader and emails them. Failures are
// logged and swallowed.
func (f *BidFanout) sendOutbidEmail(auction model.Auction, bid model.Bid, prevWinnerID string) {
	prev, err := f.users.GetUser(prevWinnerID)
	if err != nil {
		utils.Warn("fanout: outbid email skipped, user not resolved", map[string]any{
			"user_id": prevWinnerID,
			"error":   err.Error(),
		})
		return
	}

	subject := fmt.Sprintf("Outbid Alert: %s", auction.Title)
	body := fmt.Sprintf(
		`<p>You have been outbid on <b>%s</b>. The new current bid is %d. <a href="%s/auction/%s">Bid again now!</a></p>`,
		auction.Title, bid.Amount, f.baseURL, auction.AuctionID)

	if err := f.mailer.Send(prev.Email, subject, body); err != nil {
		utils.Error("fanout: failed to send outbid email", map[string]any{
			"user_id": prevWinnerID,
			"to":      prev.Email,
			"error":   err.Error(),
		})
	}
}
