package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/mercalist/mercalist/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleAndListPendingNotifications(t *testing.T) {
	store := memory.NewStore()
	svc := newTestService(store)

	triggerAt := time.Now().Add(time.Hour)
	created, err := svc.ScheduleNotification(context.Background(), 1, "", "buy milk", triggerAt)
	require.NoError(t, err)
	assert.Equal(t, "Reminder", created.Title) // default title
	assert.False(t, created.Sent)

	pending, err := svc.PendingNotifications(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "buy milk", pending[0].Body)

	require.NoError(t, svc.CancelNotification(context.Background(), created.ID))

	pending, err = svc.PendingNotifications(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestCancelUnknownNotification(t *testing.T) {
	store := memory.NewStore()
	svc := newTestService(store)

	assert.Error(t, svc.CancelNotification(context.Background(), 99))
}

func TestSchedulerDeliversDueNotifications(t *testing.T) {
	store := memory.NewStore()
	svc := newTestService(store)

	_, err := svc.ScheduleNotification(context.Background(), 1, "Reminder", "due now", time.Now().Add(-time.Minute))
	require.NoError(t, err)
	_, err = svc.ScheduleNotification(context.Background(), 1, "Reminder", "far future", time.Now().Add(24*time.Hour))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	delivered := make(chan string, 4)
	go svc.StartNotificationScheduler(ctx, 5*time.Millisecond, func(userID int64, title, body string) {
		delivered <- body
	})

	select {
	case body := <-delivered:
		assert.Equal(t, "due now", body)
	case <-time.After(2 * time.Second):
		t.Fatal("due notification was not delivered")
	}

	cancel()

	// The due notification is marked sent; only the future one stays pending.
	require.Eventually(t, func() bool {
		pending, err := svc.PendingNotifications(context.Background(), 1)
		if err != nil {
			return false
		}
		return len(pending) == 1 && pending[0].Body == "far future"
	}, 2*time.Second, 10*time.Millisecond)
}
