package handler

import (
	"net/http"

	model "auctionhouse/internal/models"
	"auctionhouse/services/auction/helpers"
	"auctionhouse/utils"

	"github.com/gin-gonic/gin"
)

type ReviewServiceInterface interface {
	CreateReview(sellerID, reviewerID string, rating int, comment string) (model.Review, error)
	GetSellerReviews(sellerID string) ([]model.Review, error)
}

type CreateReviewRequest struct {
	SellerID string `json:"seller_id" binding:"required"`
	Rating   int    `json:"rating" binding:"required"`
	Comment  string `json:"comment"`
}

type ReviewHandler struct {
	service ReviewServiceInterface
}

func NewReviewHandler(service ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// CreateReviewHandler handles POST /reviews
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateReviewHandler", err)
		return
	}

	reviewerID := helpers.CurrentUserID(c)
	review, err := h.service.CreateReview(req.SellerID, reviewerID, req.Rating, req.Comment)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Error("CreateReviewHandler: failed to create review", map[string]any{
			"seller_id":   req.SellerID,
			"reviewer_id": reviewerID,
			"error":       err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, review)
	helpers.LogSuccess("CreateReviewHandler", "review created", map[string]any{
		"review_id": review.ReviewID,
		"seller_id": review.SellerID,
		"rating":    review.Rating,
	})
}

// GetSellerReviewsHandler handles GET /reviews/seller/:seller_id
func (h *ReviewHandler) GetSellerReviewsHandler(c *gin.Context) {
	sellerID := c.Param("seller_id")

	reviews, err := h.service.GetSellerReviews(sellerID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Warn("GetSellerReviewsHandler: failed to fetch reviews", map[string]any{
			"seller_id": sellerID,
			"error":     err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, reviews)
}
