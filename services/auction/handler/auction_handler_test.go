package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auctionhouse/internal/auctionerrors"
	model "auctionhouse/internal/models"
	"auctionhouse/internal/repository"
	"auctionhouse/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// asUser injects an authenticated user id the way the auth middleware does.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(helpers.UserIDKey, userID)
		c.Next()
	}
}

// Test RecordBidHandler
func TestRecordBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auctions/bid", asUser("user1"), handler.RecordBidHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedError  string
		validateBody   func(t *testing.T, body map[string]any)
	}{
		{
			name:        "success_valid_bid",
			requestBody: map[string]any{"auction_id": "auction1", "amount": 110},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("auction1", "user1", int64(110)).
					Return(model.Bid{
						BidID:      uuid.NewString(),
						AuctionID:  "auction1",
						BidderID:   "user1",
						BidderName: "alice",
						Amount:     110,
						CreatedAt:  now,
					}, int64(110), nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]any) {
				require.Equal(t, true, body["success"])
				require.Equal(t, "Bid placed successfully", body["message"])
				require.Equal(t, 110.0, body["current_bid"])

				bid := body["bid"].(map[string]any)
				_, parseErr := uuid.Parse(bid["bid_id"].(string))
				require.NoError(t, parseErr, "BidID should be a valid UUID")
				require.Equal(t, "auction1", bid["auction_id"])
				require.Equal(t, "user1", bid["bidder_id"])
				require.Equal(t, 110.0, bid["amount"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request payload",
		},
		{
			name:           "missing_auction_id",
			requestBody:    map[string]any{"amount": 110},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request payload",
		},
		{
			name:           "fractional_amount",
			requestBody:    map[string]any{"auction_id": "auction1", "amount": 110.5},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid bid details",
		},
		{
			name:           "negative_amount",
			requestBody:    map[string]any{"auction_id": "auction1", "amount": -5},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid bid details",
		},
		{
			name:        "bid_too_low",
			requestBody: map[string]any{"auction_id": "auction1", "amount": 100},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("auction1", "user1", int64(100)).
					Return(model.Bid{}, int64(0), &auctionerrors.BidTooLow{Threshold: 100})
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Bid must be higher than current bid: 100",
		},
		{
			name:        "auction_not_found",
			requestBody: map[string]any{"auction_id": "missing", "amount": 110},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("missing", "user1", int64(110)).
					Return(model.Bid{}, int64(0), auctionerrors.ErrAuctionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "Auction not found",
		},
		{
			name:        "auction_expired",
			requestBody: map[string]any{"auction_id": "auction1", "amount": 110},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("auction1", "user1", int64(110)).
					Return(model.Bid{}, int64(0), auctionerrors.ErrAuctionExpired)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Auction has expired",
		},
		{
			name:        "internal_error",
			requestBody: map[string]any{"auction_id": "auction1", "amount": 110},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("auction1", "user1", int64(110)).
					Return(model.Bid{}, int64(0), errors.New("storage unavailable"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Internal server error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			var payload []byte
			switch body := tc.requestBody.(type) {
			case string:
				payload = []byte(body)
			default:
				var err error
				payload, err = json.Marshal(body)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/auctions/bid", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tc.expectedStatus, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

			if tc.expectedError != "" {
				require.Equal(t, tc.expectedError, body["error"])
				return
			}
			tc.validateBody(t, body)
		})
	}
}

// Test GetAuctionHandler
func TestGetAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/auctions/:auction_id", handler.GetAuctionHandler)

	t.Run("success_with_history", func(t *testing.T) {
		detail := model.AuctionDetail{
			Auction: model.Auction{AuctionID: "auction1", Title: "Pocket watch", CurrentBid: 120},
			Bids: []model.Bid{
				{BidID: "b2", AuctionID: "auction1", Amount: 120},
				{BidID: "b1", AuctionID: "auction1", Amount: 110},
			},
		}
		mockService.EXPECT().GetAuctionDetail("auction1").Return(detail, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auctions/auction1", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var body model.AuctionDetail
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "auction1", body.Auction.AuctionID)
		require.Len(t, body.Bids, 2)
		require.Equal(t, "b2", body.Bids[0].BidID, "bid history should be most recent first")
	})

	t.Run("not_found", func(t *testing.T) {
		mockService.EXPECT().GetAuctionDetail("missing").Return(model.AuctionDetail{}, auctionerrors.ErrAuctionNotFound)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auctions/missing", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "Auction not found", body["error"])
	})
}

// Test ListAuctionsHandler
func TestListAuctionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/auctions", handler.ListAuctionsHandler)

	int64p := func(v int64) *int64 { return &v }

	t.Run("forwards_filters", func(t *testing.T) {
		expected := repository.AuctionFilter{
			Search:   "watch",
			Category: "collectibles",
			MinPrice: int64p(50),
			MaxPrice: int64p(500),
			Status:   "active",
			Sort:     repository.SortPriceDesc,
		}
		mockService.EXPECT().ListAuctions(expected).Return([]model.Auction{{AuctionID: "auction1"}}, nil)

		url := "/auctions?search=watch&category=collectibles&minPrice=50&maxPrice=500&status=active&sort=price_desc"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var body []model.Auction
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body, 1)
		require.Equal(t, "auction1", body[0].AuctionID)
	})

	t.Run("no_filters", func(t *testing.T) {
		mockService.EXPECT().ListAuctions(repository.AuctionFilter{}).Return([]model.Auction{}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auctions", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("bad_min_price", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auctions?minPrice=abc", nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "minPrice must be a number", body["error"])
	})

	t.Run("bad_max_price", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auctions?maxPrice=1e3", nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("service_failure", func(t *testing.T) {
		mockService.EXPECT().ListAuctions(gomock.Any()).Return(nil, fmt.Errorf("storage unavailable"))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auctions", nil))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

// Test CloseExpiredHandler
func TestCloseExpiredHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auctions/close-expired", handler.CloseExpiredHandler)

	t.Run("reports_closed_count", func(t *testing.T) {
		mockService.EXPECT().CloseExpired().Return(3, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auctions/close-expired", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var body helpers.CloseExpiredResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, 3, body.Closed)
	})

	t.Run("sweep_failure", func(t *testing.T) {
		mockService.EXPECT().CloseExpired().Return(0, errors.New("storage unavailable"))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auctions/close-expired", nil))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
