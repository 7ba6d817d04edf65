package auction

import (
	"fmt"
	"time"

	"auctionhouse/internal/auctionerrors"
	model "auctionhouse/internal/models"
	"auctionhouse/internal/repository"
	"auctionhouse/utils"
)

// Fanout receives accepted bids for broadcast and outbid notification.
// Implementations must not block the bid path on outbound delivery.
type Fanout interface {
	OnBidAccepted(auction model.Auction, bid model.Bid, prevWinnerID string)
}

// AuctionService defines the business logic for the auction ledger:
// bid placement, listing queries and the expiry sweep.
type AuctionService struct {
	repo   repository.AuctionDB
	users  repository.UserDB
	fanout Fanout
}

// NewAuctionService creates a new AuctionService instance.
func NewAuctionService(repo repository.AuctionDB, users repository.UserDB, fanout Fanout) *AuctionService {
	return &AuctionService{
		repo:   repo,
		users:  users,
		fanout: fanout,
	}
}

// PlaceBid validates and commits a user's bid on an auction, returning the
// recorded bid and the auction's new current price.
//
// Validation fails fast in order: missing input, unknown bidder, unknown
// auction, auction not active, auction expired, amount at or below the
// threshold. The commit itself is a single atomic storage operation that
// re-checks state, so concurrent bids and sweeps cannot produce a lost update.
func (s *AuctionService) PlaceBid(auctionID, bidderID string, amount int64) (model.Bid, int64, error) {
	if auctionID == "" || bidderID == "" {
		return model.Bid{}, 0, fmt.Errorf("service: %w - missing auction or bidder id", auctionerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return model.Bid{}, 0, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}

	bidder, err := s.users.GetUser(bidderID)
	if err != nil {
		return model.Bid{}, 0, fmt.Errorf("service: failed to resolve bidder %s: %w", bidderID, err)
	}

	now := time.Now().UTC()
	bid := model.Bid{
		BidID:      utils.GenerateID(),
		AuctionID:  auctionID,
		BidderID:   bidder.UserID,
		BidderName: bidder.Username,
		Amount:     amount,
		CreatedAt:  now,
	}

	commit, err := s.repo.PlaceBid(bid, now)
	if err != nil {
		return model.Bid{}, 0, fmt.Errorf("service: failed to place bid on auction %s: %w", auctionID, err)
	}

	s.fanout.OnBidAccepted(commit.Auction, commit.Bid, commit.PrevWinnerID)

	return commit.Bid, commit.Auction.CurrentBid, nil
}

// GetAuctionDetail returns an auction together with its bid history,
// most recent bid first.
func (s *AuctionService) GetAuctionDetail(auctionID string) (model.AuctionDetail, error) {
	if auctionID == "" {
		return model.AuctionDetail{}, fmt.Errorf("service: %w: empty auction id", auctionerrors.ErrAuctionNotFound)
	}

	a, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return model.AuctionDetail{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}

	bids, err := s.repo.GetAuctionBids(auctionID)
	if err != nil {
		return model.AuctionDetail{}, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}

	return model.AuctionDetail{Auction: a, Bids: bids}, nil
}

// ListAuctions returns auctions matching the given filter.
func (s *AuctionService) ListAuctions(filter repository.AuctionFilter) ([]model.Auction, error) {
	auctions, err := s.repo.ListAuctions(filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	return auctions, nil
}

// CloseIfExpired transitions a single auction to closed if its end time has
// passed. Idempotent; the winner is never modified.
func (s *AuctionService) CloseIfExpired(auctionID string) (bool, error) {
	closed, err := s.repo.CloseIfExpired(auctionID, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("service: failed to close auction %s: %w", auctionID, err)
	}
	return closed, nil
}

// CloseExpired sweeps all expired active auctions, returning how many were
// closed. A single auction's failure is logged and does not abort the sweep.
func (s *AuctionService) CloseExpired() (int, error) {
	now := time.Now().UTC()

	ids, err := s.repo.ListExpired(now)
	if err != nil {
		return 0, fmt.Errorf("service: failed to list expired auctions: %w", err)
	}

	closed := 0
	for _, id := range ids {
		ok, err := s.repo.CloseIfExpired(id, now)
		if err != nil {
			utils.Error("sweep: failed to close expired auction", map[string]any{
				"auction_id": id,
				"error":      err.Error(),
			})
			continue
		}
		if ok {
			closed++
		}
	}
	return closed, nil
}
