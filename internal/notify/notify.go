package notify

import (
	"github.com/mercalist/mercalist/internal/service"
	"github.com/sirupsen/logrus"
)

// Sender delivers a reminder notification to a user through an external
// channel.
type Sender interface {
	Send(userID int64, title, body string) error
}

// LogSender writes notifications to the application log. It is the fallback
// delivery channel when no external channel is configured.
type LogSender struct {
	logger *logrus.Logger
}

// NewLogSender creates a log-backed Sender.
func NewLogSender(logger *logrus.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send logs the notification.
func (l *LogSender) Send(userID int64, title, body string) error {
	l.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"title":   title,
	}).Infof("Notification: %s", body)
	return nil
}

// Callback adapts a Sender into the scheduler callback. Delivery failures are
// logged and swallowed so one broken channel does not stall the scheduler.
func Callback(sender Sender, logger *logrus.Logger) service.NotifyCallback {
	return func(userID int64, title, body string) {
		if err := sender.Send(userID, title, body); err != nil {
			logger.WithError(err).WithField("user_id", userID).
				Error("Failed to deliver notification")
		}
	}
}
