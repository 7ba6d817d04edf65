package review

import (
	"fmt"
	"time"

	"auctionhouse/internal/auctionerrors"
	model "auctionhouse/internal/models"
	"auctionhouse/internal/repository"
	"auctionhouse/utils"
)

// ReviewService defines the business logic for seller reviews.
type ReviewService struct {
	repo  repository.ReviewDB
	users repository.UserDB
}

// NewReviewService creates a new ReviewService instance.
func NewReviewService(repo repository.ReviewDB, users repository.UserDB) *ReviewService {
	return &ReviewService{
		repo:  repo,
		users: users,
	}
}

// CreateReview validates and stores a buyer's review of a seller.
func (s *ReviewService) CreateReview(sellerID, reviewerID string, rating int, comment string) (model.Review, error) {
	if sellerID == "" || reviewerID == "" {
		return model.Review{}, fmt.Errorf("service: %w - missing seller or reviewer id", auctionerrors.ErrInvalidReview)
	}
	if rating < 1 || rating > 5 {
		return model.Review{}, fmt.Errorf("service: %w - rating must be between 1 and 5", auctionerrors.ErrInvalidReview)
	}

	if _, err := s.users.GetSeller(sellerID); err != nil {
		return model.Review{}, fmt.Errorf("service: failed to resolve seller %s: %w", sellerID, err)
	}

	reviewer, err := s.users.GetUser(reviewerID)
	if err != nil {
		return model.Review{}, fmt.Errorf("service: failed to resolve reviewer %s: %w", reviewerID, err)
	}

	review := model.Review{
		ReviewID:     utils.GenerateID(),
		SellerID:     sellerID,
		ReviewerID:   reviewer.UserID,
		ReviewerName: reviewer.Username,
		Rating:       rating,
		Comment:      comment,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.CreateReview(review); err != nil {
		return model.Review{}, fmt.Errorf("service: failed to create review for seller %s: %w", sellerID, err)
	}

	return review, nil
}

// GetSellerReviews returns a seller's reviews, newest first.
func (s *ReviewService) GetSellerReviews(sellerID string) ([]model.Review, error) {
	if sellerID == "" {
		return nil, fmt.Errorf("service: %w: empty seller id", auctionerrors.ErrSellerNotFound)
	}

	reviews, err := s.repo.GetReviewsForSeller(sellerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get reviews for seller %s: %w", sellerID, err)
	}
	return reviews, nil
}
