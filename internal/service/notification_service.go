package service

import (
	"context"

	"wayfare/internal/models"
	"wayfare/internal/repository"
)

// NotificationService provides read access to a user's notification inbox.
// Notifications themselves are written by the follow and engagement flows
// inside their own transactions.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService returns a new NotificationService.
func NewNotificationService(notificationRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// List returns a page of the user's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, userID uint, unreadOnly bool, limit, offset int) (*models.Page[models.Notification], error) {
	notifications, total, err := s.notificationRepo.ListByUser(ctx, userID, unreadOnly, limit, offset)
	if err != nil {
		return nil, err
	}
	return models.NewPage(notifications, total, offset, limit), nil
}

// UnreadCount returns the number of unread notifications.
func (s *NotificationService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.notificationRepo.CountUnread(ctx, userID)
}

// MarkRead marks one of the user's notifications as read.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uint) error {
	return s.notificationRepo.MarkRead(ctx, notificationID, userID)
}

// MarkAllRead marks every unread notification as read.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

// Delete removes one of the user's notifications.
func (s *NotificationService) Delete(ctx context.Context, userID, notificationID uint) error {
	return s.notificationRepo.Delete(ctx, notificationID, userID)
}
