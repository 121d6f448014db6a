package notify_test

import (
	"errors"
	"io"
	"testing"

	"github.com/mercalist/mercalist/internal/notify"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type recordingSender struct {
	bodies []string
	err    error
}

func (r *recordingSender) Send(userID int64, title, body string) error {
	r.bodies = append(r.bodies, body)
	return r.err
}

func TestCallbackForwardsToSender(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	sender := &recordingSender{}
	callback := notify.Callback(sender, logger)

	callback(1, "Reminder", "buy milk")
	assert.Equal(t, []string{"buy milk"}, sender.bodies)
}

func TestCallbackSwallowsSendErrors(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	sender := &recordingSender{err: errors.New("channel down")}
	callback := notify.Callback(sender, logger)

	assert.NotPanics(t, func() {
		callback(1, "Reminder", "buy milk")
	})
}

func TestLogSenderNeverFails(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	assert.NoError(t, notify.NewLogSender(logger).Send(1, "Reminder", "buy milk"))
}
