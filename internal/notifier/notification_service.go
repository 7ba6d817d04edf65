package notifier

import (
	"fmt"

	"auctionhouse/internal/auctionerrors"
	model "auctionhouse/internal/models"
	"auctionhouse/internal/repository"
)

// NotificationService exposes a user's stored notifications.
type NotificationService struct {
	repo repository.NotificationDB
}

// NewNotificationService creates a new NotificationService instance.
func NewNotificationService(repo repository.NotificationDB) *NotificationService {
	return &NotificationService{repo: repo}
}

// GetNotifications returns a user's notifications, newest first.
func (s *NotificationService) GetNotifications(userID string) ([]model.Notification, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w: empty user id", auctionerrors.ErrUserNotFound)
	}

	notifications, err := s.repo.GetNotificationsForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get notifications for user %s: %w", userID, err)
	}
	return notifications, nil
}

// MarkAllRead marks every unread notification for the user as read and
// returns the number updated.
func (s *NotificationService) MarkAllRead(userID string) (int64, error) {
	if userID == "" {
		return 0, fmt.Errorf("service: %w: empty user id", auctionerrors.ErrUserNotFound)
	}

	n, err := s.repo.MarkAllRead(userID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to mark notifications read for user %s: %w", userID, err)
	}
	return n, nil
}
