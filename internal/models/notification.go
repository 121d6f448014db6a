package models

import "time"

// ScheduledNotification is a reminder the user asked to receive at a fixed
// point in time.
type ScheduledNotification struct {
	ID        int64      `json:"id" db:"id"`
	UserID    int64      `json:"user_id" db:"id_usuario"`
	Title     string     `json:"title" db:"titulo"`
	Body      string     `json:"body" db:"mensaje"`
	TriggerAt time.Time  `json:"trigger_at" db:"fecha_disparo"`
	Sent      bool       `json:"sent" db:"enviada"`
	SentAt    *time.Time `json:"sent_at,omitempty" db:"fecha_envio"`
	CreatedAt time.Time  `json:"created_at" db:"fecha_creacion"`
}

// IsDue returns true if the notification should fire now
func (n *ScheduledNotification) IsDue() bool {
	if n.Sent {
		return false
	}
	return time.Now().After(n.TriggerAt)
}
