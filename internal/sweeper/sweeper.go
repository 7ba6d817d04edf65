package sweeper

import (
	"context"
	"time"

	"auctionhouse/utils"
)

// AuctionCloser sweeps expired active auctions, returning the count closed.
type AuctionCloser interface {
	CloseExpired() (int, error)
}

// Sweeper periodically closes expired auctions. It only ever transitions
// status; winners are assigned by the bid path and left untouched here, so a
// sweep running beside an in-flight bid can never unseat a legitimate leader.
type Sweeper struct {
	closer   AuctionCloser
	interval time.Duration
}

// New creates a sweeper running at the given interval.
func New(closer AuctionCloser, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{
		closer:   closer,
		interval: interval,
	}
}

// Run sweeps once immediately and then on every tick until the context is
// cancelled. Sweep failures are logged and the loop keeps going.
func (s *Sweeper) Run(ctx context.Context) {
	s.sweep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			utils.Info("sweeper stopped", nil)
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Sweeper) sweep() {
	closed, err := s.closer.CloseExpired()
	if err != nil {
		utils.Error("sweeper: sweep failed", map[string]any{"error": err.Error()})
		return
	}
	if closed > 0 {
		utils.Info("sweeper: closed expired auctions", map[string]any{"closed": closed})
	}
}
