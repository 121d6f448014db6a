package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mercalist/mercalist/internal/models"
	"github.com/mercalist/mercalist/internal/repository"
)

type membershipRepository struct {
	db *sql.DB
}

// NewMembershipRepository creates a new repository for product-in-list rows
func NewMembershipRepository(db *sql.DB) repository.MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) Add(ctx context.Context, m *models.ListMembership) (*models.ListMembership, error) {
	query := `
		INSERT INTO productos_listas (producto_id, cantidad, lista_id, is_comprado, usuario_asignado, fecha_actualizacion)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	now := time.Now()
	m.IsPurchased = false
	m.UpdatedAt = &now

	err := r.db.QueryRowContext(ctx, query,
		m.ProductID,
		m.Quantity,
		m.ListID,
		m.IsPurchased,
		m.AssignedUserID,
		m.UpdatedAt,
	).Scan(&m.ID)

	if err != nil {
		return nil, fmt.Errorf("failed to add membership: %w", err)
	}

	return m, nil
}

func (r *membershipRepository) GetByID(ctx context.Context, id int64) (*models.ListMembership, error) {
	query := `
		SELECT id, producto_id, cantidad, lista_id, is_comprado, usuario_asignado, fecha_actualizacion
		FROM productos_listas
		WHERE id = $1`

	m := &models.ListMembership{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID,
		&m.ProductID,
		&m.Quantity,
		&m.ListID,
		&m.IsPurchased,
		&m.AssignedUserID,
		&m.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership by ID: %w", err)
	}

	return m, nil
}

func (r *membershipRepository) GetByListID(ctx context.Context, listID int64) ([]*models.ListMembership, error) {
	query := `
		SELECT id, producto_id, cantidad, lista_id, is_comprado, usuario_asignado, fecha_actualizacion
		FROM productos_listas
		WHERE lista_id = $1
		ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to query memberships: %w", err)
	}
	defer rows.Close()

	var memberships []*models.ListMembership
	for rows.Next() {
		m := &models.ListMembership{}
		if err := rows.Scan(
			&m.ID,
			&m.ProductID,
			&m.Quantity,
			&m.ListID,
			&m.IsPurchased,
			&m.AssignedUserID,
			&m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, m)
	}

	return memberships, rows.Err()
}

func (r *membershipRepository) Update(ctx context.Context, m *models.ListMembership) (*models.ListMembership, error) {
	query := `
		UPDATE productos_listas
		SET cantidad = $2, usuario_asignado = $3, fecha_actualizacion = $4
		WHERE id = $1`

	now := time.Now()
	m.UpdatedAt = &now

	result, err := r.db.ExecContext(ctx, query, m.ID, m.Quantity, m.AssignedUserID, m.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update membership: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, repository.ErrNotFound
	}

	return m, nil
}

// TogglePurchased flips the purchased flag in a single statement, so two
// concurrent toggles cannot lose an update.
func (r *membershipRepository) TogglePurchased(ctx context.Context, id int64) error {
	query := `
		UPDATE productos_listas
		SET is_comprado = NOT is_comprado, fecha_actualizacion = $2
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to toggle purchased flag: %w", err)
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

func (r *membershipRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM productos_listas WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
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
