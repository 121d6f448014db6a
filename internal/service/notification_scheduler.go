package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mercalist/mercalist/internal/models"
	"go.uber.org/atomic"
)

// NotifyCallback delivers a due reminder notification to its user.
type NotifyCallback func(userID int64, title, body string)

// ScheduleNotification stores a reminder to be delivered at triggerAt.
func (s *Service) ScheduleNotification(ctx context.Context, userID int64, title, body string, triggerAt time.Time) (*models.ScheduledNotification, error) {
	if title == "" {
		title = "Reminder"
	}

	n := &models.ScheduledNotification{
		UserID:    userID,
		Title:     title,
		Body:      body,
		TriggerAt: triggerAt,
	}

	created, err := s.Notifications.Create(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule notification: %w", err)
	}

	s.logger.Infof("Scheduled notification %d for user %d at %s",
		created.ID, userID, triggerAt.Format(time.RFC3339))
	return created, nil
}

// PendingNotifications lists a user's not-yet-sent notifications.
func (s *Service) PendingNotifications(ctx context.Context, userID int64) ([]*models.ScheduledNotification, error) {
	notifications, err := s.Notifications.GetPending(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending notifications for user %d: %w", userID, err)
	}
	return notifications, nil
}

// CancelNotification removes a scheduled notification by ID.
func (s *Service) CancelNotification(ctx context.Context, id int64) error {
	if err := s.Notifications.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to cancel notification %d: %w", id, err)
	}
	return nil
}

// StartNotificationScheduler runs a background loop that checks for due
// notifications on every tick and invokes the callback for each one. It
// blocks until the context is cancelled, so it should be launched in a
// separate goroutine.
func (s *Service) StartNotificationScheduler(ctx context.Context, interval time.Duration, callback NotifyCallback) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	sent := atomic.NewInt64(0)
	s.logger.Info("Notification scheduler started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Infof("Notification scheduler stopped (%d notifications sent)", sent.Load())
			return
		case <-ticker.C:
			s.processDueNotifications(ctx, callback, sent)
		}
	}
}

// processDueNotifications fires the callback for every due notification and
// marks it sent. A failure on one notification does not block the others.
func (s *Service) processDueNotifications(ctx context.Context, callback NotifyCallback, sent *atomic.Int64) {
	due, err := s.Notifications.GetDue(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to get due notifications")
		return
	}

	for _, n := range due {
		callback(n.UserID, n.Title, n.Body)
		sent.Inc()

		if err := s.Notifications.MarkSent(ctx, n.ID); err != nil {
			s.logger.WithError(err).WithField("notification_id", n.ID).
				Error("failed to mark notification as sent")
		}
	}
}
