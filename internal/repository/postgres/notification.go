package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mercalist/mercalist/internal/models"
	"github.com/mercalist/mercalist/internal/repository"
)

type notificationRepository struct {
	db *sql.DB
}

// NewNotificationRepository creates a new scheduled notification repository
func NewNotificationRepository(db *sql.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *models.ScheduledNotification) (*models.ScheduledNotification, error) {
	query := `
		INSERT INTO notificaciones (id_usuario, titulo, mensaje, fecha_disparo, enviada, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	n.Sent = false
	n.CreatedAt = time.Now()

	err := r.db.QueryRowContext(ctx, query,
		n.UserID,
		n.Title,
		n.Body,
		n.TriggerAt,
		n.Sent,
		n.CreatedAt,
	).Scan(&n.ID)

	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return n, nil
}

func (r *notificationRepository) GetPending(ctx context.Context, userID int64) ([]*models.ScheduledNotification, error) {
	query := `
		SELECT id, id_usuario, titulo, mensaje, fecha_disparo, enviada, fecha_envio, fecha_creacion
		FROM notificaciones
		WHERE id_usuario = $1 AND enviada = false
		ORDER BY fecha_disparo ASC`

	return r.queryNotifications(ctx, query, userID)
}

func (r *notificationRepository) GetDue(ctx context.Context) ([]*models.ScheduledNotification, error) {
	query := `
		SELECT id, id_usuario, titulo, mensaje, fecha_disparo, enviada, fecha_envio, fecha_creacion
		FROM notificaciones
		WHERE enviada = false AND fecha_disparo <= $1
		ORDER BY fecha_disparo ASC`

	return r.queryNotifications(ctx, query, time.Now())
}

func (r *notificationRepository) queryNotifications(ctx context.Context, query string, args ...any) ([]*models.ScheduledNotification, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*models.ScheduledNotification
	for rows.Next() {
		n := &models.ScheduledNotification{}
		if err := rows.Scan(
			&n.ID,
			&n.UserID,
			&n.Title,
			&n.Body,
			&n.TriggerAt,
			&n.Sent,
			&n.SentAt,
			&n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

func (r *notificationRepository) MarkSent(ctx context.Context, id int64) error {
	query := `
		UPDATE notificaciones
		SET enviada = true, fecha_envio = $2
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark notification as sent: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *notificationRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM notificaciones WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
