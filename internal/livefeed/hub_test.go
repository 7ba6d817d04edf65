package livefeed

import (
	"testing"

	model "auctionhouse/internal/models"

	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesOnlyAuctionRoom(t *testing.T) {
	t.Parallel()

	hub := NewHub()

	watching, cancelWatching := hub.Subscribe("a1")
	defer cancelWatching()
	other, cancelOther := hub.Subscribe("a2")
	defer cancelOther()

	ev := BidUpdate{
		AuctionID: "a1",
		NewBid:    120,
		Bidder:    "alice",
		Bid:       model.Bid{BidID: "b1", AuctionID: "a1", Amount: 120},
	}
	hub.Publish(ev)

	require.Equal(t, ev, <-watching)
	require.Empty(t, other, "viewers of other auctions must not receive the event")
}

func TestHub_AllRoomSubscribersReceive(t *testing.T) {
	t.Parallel()

	hub := NewHub()

	first, cancelFirst := hub.Subscribe("a1")
	defer cancelFirst()
	second, cancelSecond := hub.Subscribe("a1")
	defer cancelSecond()

	hub.Publish(BidUpdate{AuctionID: "a1", NewBid: 110})

	require.Equal(t, int64(110), (<-first).NewBid)
	require.Equal(t, int64(110), (<-second).NewBid)
}

func TestHub_NoReplayForLateSubscriber(t *testing.T) {
	t.Parallel()

	hub := NewHub()

	hub.Publish(BidUpdate{AuctionID: "a1", NewBid: 110})

	late, cancel := hub.Subscribe("a1")
	defer cancel()
	require.Empty(t, late)
}

func TestHub_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	t.Parallel()

	hub := NewHub()

	ch, cancel := hub.Subscribe("a1")
	defer cancel()

	// Overfill the buffer; Publish must never block.
	for i := 0; i < subscriberBuffer*2; i++ {
		hub.Publish(BidUpdate{AuctionID: "a1", NewBid: int64(100 + i)})
	}

	require.Len(t, ch, subscriberBuffer)
}

func TestHub_CancelDetachesAndCloses(t *testing.T) {
	t.Parallel()

	hub := NewHub()

	ch, cancel := hub.Subscribe("a1")
	require.Equal(t, 1, hub.Subscribers("a1"))

	cancel()
	cancel() // safe to call twice

	require.Zero(t, hub.Subscribers("a1"))
	_, open := <-ch
	require.False(t, open)

	// Publishing into the now-empty room is a no-op.
	hub.Publish(BidUpdate{AuctionID: "a1", NewBid: 110})
}
