package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	auction "auctionhouse/internal/auctionService"
	"auctionhouse/internal/auth"
	"auctionhouse/internal/db"
	"auctionhouse/internal/livefeed"
	model "auctionhouse/internal/models"
	"auctionhouse/internal/notifier"
	"auctionhouse/internal/repository"
	review "auctionhouse/internal/reviewService"
	"auctionhouse/internal/server"

	"github.com/gin-gonic/gin"
)

const testJWTSecret = "integration-test-secret"

// SetupTestRouter wires the full stack against a fresh SQLite database and
// seeds the given auctions plus a standard set of users and sellers.
func SetupTestRouter(t *testing.T, auctions ...model.Auction) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewSQLiteRepo(db.NewTestDB(t))

	users := []model.User{
		{UserID: "user1", Username: "alice", Email: "alice@example.com"},
		{UserID: "user2", Username: "bob", Email: "bob@example.com"},
	}
	for _, u := range users {
		if err := repo.CreateUser(u); err != nil {
			t.Fatalf("seeding user %s: %v", u.UserID, err)
		}
	}
	if err := repo.CreateSeller(model.Seller{SellerID: "seller1", Name: "Vintage Finds"}); err != nil {
		t.Fatalf("seeding seller: %v", err)
	}
	for _, a := range auctions {
		if err := repo.CreateAuction(a); err != nil {
			t.Fatalf("seeding auction %s: %v", a.AuctionID, err)
		}
	}

	hub := livefeed.NewHub()
	fanout := notifier.NewBidFanout(repo, repo, &notifier.LogMailer{}, hub, "http://localhost:8080")

	auctionService := auction.NewAuctionService(repo, repo, fanout)
	reviewService := review.NewReviewService(repo, repo)
	notificationService := notifier.NewNotificationService(repo)

	return server.SetupRouter(auctionService, reviewService, notificationService, hub, testJWTSecret)
}

// TokenFor issues a bearer token the way the identity provider would.
func TokenFor(t *testing.T, userID, username string) string {
	t.Helper()
	token, err := auth.GenerateToken(testJWTSecret, userID, username)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}
	return token
}

// ActiveAuction returns a seeded active auction ending in the future.
func ActiveAuction(id string, startingBid int64) model.Auction {
	now := time.Now().UTC()
	return model.Auction{
		AuctionID:   id,
		Title:       "Pocket watch " + id,
		Description: "hand-wound, recently serviced",
		Category:    model.CategoryCollectibles,
		ImageURLs:   []string{"/images/watch.jpg"},
		StartingBid: startingBid,
		CurrentBid:  startingBid,
		EndTime:     now.Add(time.Hour),
		SellerID:    "seller1",
		Status:      model.StatusActive,
		CreatedAt:   now,
	}
}

// ExpiredAuction returns a seeded auction whose end time has passed but whose
// status has not been swept yet.
func ExpiredAuction(id string, currentBid int64, winnerID string) model.Auction {
	now := time.Now().UTC()
	return model.Auction{
		AuctionID:   id,
		Title:       "Pocket watch " + id,
		Category:    model.CategoryCollectibles,
		StartingBid: 100,
		CurrentBid:  currentBid,
		EndTime:     now.Add(-time.Minute),
		SellerID:    "seller1",
		Status:      model.StatusActive,
		WinnerID:    winnerID,
		CreatedAt:   now.Add(-time.Hour),
	}
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
// An empty token leaves the request unauthenticated.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		var err error
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request and parses the JSON object
// response.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	w := ExecuteRequest(t, router, method, url, token, body)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}
