package notifier

import (
	"errors"
	"testing"
	"time"

	"auctionhouse/internal/auctionerrors"
	model "auctionhouse/internal/models"
	"auctionhouse/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_GetNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockNotificationDB(ctrl)
	service := NewNotificationService(mockRepo)

	t.Run("returns_notifications", func(t *testing.T) {
		stored := []model.Notification{
			{NotificationID: "n2", UserID: "user1", Type: model.NotificationOutbid, CreatedAt: time.Now().UTC()},
			{NotificationID: "n1", UserID: "user1", Type: model.NotificationOutbid, Read: true},
		}
		mockRepo.EXPECT().GetNotificationsForUser("user1").Return(stored, nil)

		notifications, err := service.GetNotifications("user1")
		require.NoError(t, err)
		require.Equal(t, stored, notifications)
	})

	t.Run("empty_user_id", func(t *testing.T) {
		_, err := service.GetNotifications("")
		require.ErrorIs(t, err, auctionerrors.ErrUserNotFound)
	})

	t.Run("repo_failure", func(t *testing.T) {
		mockRepo.EXPECT().GetNotificationsForUser("user1").Return(nil, errors.New("storage unavailable"))

		_, err := service.GetNotifications("user1")
		require.Error(t, err)
	})
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockNotificationDB(ctrl)
	service := NewNotificationService(mockRepo)

	t.Run("returns_updated_count", func(t *testing.T) {
		mockRepo.EXPECT().MarkAllRead("user1").Return(int64(3), nil)

		updated, err := service.MarkAllRead("user1")
		require.NoError(t, err)
		require.Equal(t, int64(3), updated)
	})

	t.Run("empty_user_id", func(t *testing.T) {
		_, err := service.MarkAllRead("")
		require.ErrorIs(t, err, auctionerrors.ErrUserNotFound)
	})
}

func TestNewMailer_DevModeWithoutCredentials(t *testing.T) {
	require.IsType(t, &LogMailer{}, NewMailer(SMTPConfig{Host: "smtp.example.com", Port: "587"}))
	require.IsType(t, &SMTPMailer{}, NewMailer(SMTPConfig{
		Host: "smtp.example.com",
		Port: "587",
		User: "mailer@example.com",
		Pass: "secret",
	}))
}

func TestLogMailer_SendAlwaysSucceeds(t *testing.T) {
	var m LogMailer
	require.NoError(t, m.Send("bob@example.com", "Outbid Alert: Pocket watch", "<p>hi</p>"))
}
