package helpers

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"auctionhouse/internal/auctionerrors"
	"auctionhouse/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// UserIDKey is the gin context key under which the auth middleware stores the
// resolved user id.
const UserIDKey = "user_id"

// CurrentUserID returns the authenticated user id from the request context.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// AmountToUnits validates a bid amount from the wire and converts it to whole
// currency units. Amounts must be finite, positive and integer-valued.
func AmountToUnits(d decimal.Decimal) (int64, error) {
	if d.Sign() <= 0 {
		return 0, fmt.Errorf("%w - bid amount must be positive", auctionerrors.ErrInvalidBid)
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("%w - bid amount must be a whole number", auctionerrors.ErrInvalidBid)
	}
	if d.Cmp(decimal.NewFromInt(math.MaxInt64)) > 0 {
		return 0, fmt.Errorf("%w - bid amount is too large", auctionerrors.ErrInvalidBid)
	}
	return d.IntPart(), nil
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	var tooLow *auctionerrors.BidTooLow
	if errors.As(err, &tooLow) {
		return http.StatusBadRequest, fmt.Sprintf("Bid must be higher than current bid: %d", tooLow.Threshold)
	}

	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "Auction not found"
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, auctionerrors.ErrSellerNotFound):
		return http.StatusNotFound, "Seller not found"
	case errors.Is(err, auctionerrors.ErrAuctionNotActive):
		return http.StatusBadRequest, "Auction is not active"
	case errors.Is(err, auctionerrors.ErrAuctionExpired):
		return http.StatusBadRequest, "Auction has expired"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusBadRequest, "Bid amount too low"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "Invalid bid details"
	case errors.Is(err, auctionerrors.ErrInvalidReview):
		return http.StatusBadRequest, "Invalid review details"
	case errors.Is(err, auctionerrors.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
