package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mercalist/mercalist/internal/models"
	"github.com/mercalist/mercalist/internal/repository"
)

type listRepository struct {
	db *sql.DB
}

// NewListRepository creates a new shopping list repository
func NewListRepository(db *sql.DB) repository.ListRepository {
	return &listRepository{db: db}
}

func (r *listRepository) Create(ctx context.Context, list *models.List) (*models.List, error) {
	query := `
		INSERT INTO listas (nombre, presupuesto, fecha_creacion)
		VALUES ($1, $2, $3)
		RETURNING id`

	list.CreatedAt = time.Now()

	err := r.db.QueryRowContext(ctx, query,
		list.Name,
		list.Budget,
		list.CreatedAt,
	).Scan(&list.ID)

	if err != nil {
		return nil, fmt.Errorf("failed to create list: %w", err)
	}

	return list, nil
}

func (r *listRepository) GetByID(ctx context.Context, id int64) (*models.List, error) {
	query := `
		SELECT id, nombre, presupuesto, fecha_creacion
		FROM listas
		WHERE id = $1`

	list := &models.List{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&list.ID,
		&list.Name,
		&list.Budget,
		&list.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get list by ID: %w", err)
	}

	return list, nil
}

func (r *listRepository) GetAll(ctx context.Context) ([]*models.List, error) {
	query := `
		SELECT id, nombre, presupuesto, fecha_creacion
		FROM listas
		ORDER BY fecha_creacion ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query lists: %w", err)
	}
	defer rows.Close()

	var lists []*models.List
	for rows.Next() {
		list := &models.List{}
		if err := rows.Scan(
			&list.ID,
			&list.Name,
			&list.Budget,
			&list.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan list: %w", err)
		}
		lists = append(lists, list)
	}

	return lists, rows.Err()
}

func (r *listRepository) Update(ctx context.Context, list *models.List) (*models.List, error) {
	query := `
		UPDATE listas
		SET nombre = $2, presupuesto = $3
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, list.ID, list.Name, list.Budget)
	if err != nil {
		return nil, fmt.Errorf("failed to update list: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, repository.ErrNotFound
	}

	return list, nil
}

func (r *listRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM listas WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
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
