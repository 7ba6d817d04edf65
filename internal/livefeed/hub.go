package livefeed

import (
	"sync"

	model "auctionhouse/internal/models"
)

// BidUpdate is the event broadcast to live viewers when a bid is accepted.
type BidUpdate struct {
	AuctionID string    `json:"auction_id"`
	NewBid    int64     `json:"new_bid"`
	Bidder    string    `json:"bidder"`
	Bid       model.Bid `json:"bid"`
}

// subscriberBuffer is the per-subscriber event buffer. A subscriber that falls
// further behind than this drops events rather than slowing the bid path.
const subscriberBuffer = 8

// Hub routes bid updates to live viewers. Each auction has its own room, so
// fan-out cost scales with the viewers of that auction rather than with every
// connection in the system. Delivery is best-effort and at-most-once: events
// published before a viewer subscribes are never replayed.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[chan BidUpdate]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[chan BidUpdate]struct{}),
	}
}

// Subscribe attaches a viewer to an auction's room. The returned cancel
// function detaches the viewer and closes the channel; it is safe to call
// more than once.
func (h *Hub) Subscribe(auctionID string) (<-chan BidUpdate, func()) {
	ch := make(chan BidUpdate, subscriberBuffer)

	h.mu.Lock()
	room, ok := h.rooms[auctionID]
	if !ok {
		room = make(map[chan BidUpdate]struct{})
		h.rooms[auctionID] = room
	}
	room[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			if room, ok := h.rooms[auctionID]; ok {
				delete(room, ch)
				if len(room) == 0 {
					delete(h.rooms, auctionID)
				}
			}
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish delivers an event to every subscriber of the event's auction room.
// The send never blocks; a subscriber with a full buffer misses the event and
// catches up on its next full-state fetch.
func (h *Hub) Publish(ev BidUpdate) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.rooms[ev.AuctionID] {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Subscribers reports the number of live viewers in an auction's room.
func (h *Hub) Subscribers(auctionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[auctionID])
}
