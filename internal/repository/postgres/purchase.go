package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mercalist/mercalist/internal/models"
	"github.com/mercalist/mercalist/internal/repository"
)

type purchaseRepository struct {
	db *sql.DB
}

// NewPurchaseRepository creates a new purchase history repository
func NewPurchaseRepository(db *sql.DB) repository.PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) Create(ctx context.Context, record *models.PurchaseRecord) (*models.PurchaseRecord, error) {
	query := `
		INSERT INTO historial_compras (id_usuario, monto_total, fecha_compra, nombre_producto, nombre_lista)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	if record.PurchaseDate.IsZero() {
		record.PurchaseDate = time.Now()
	}

	err := r.db.QueryRowContext(ctx, query,
		record.UserID,
		record.TotalAmount,
		record.PurchaseDate,
		record.ProductName,
		record.ListName,
	).Scan(&record.ID)

	if err != nil {
		return nil, fmt.Errorf("failed to create purchase record: %w", err)
	}

	return record, nil
}

func (r *purchaseRepository) GetByID(ctx context.Context, id int64) (*models.PurchaseRecord, error) {
	query := `
		SELECT id, id_usuario, monto_total, fecha_compra, nombre_producto, nombre_lista
		FROM historial_compras
		WHERE id = $1`

	record := &models.PurchaseRecord{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&record.ID,
		&record.UserID,
		&record.TotalAmount,
		&record.PurchaseDate,
		&record.ProductName,
		&record.ListName,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get purchase record by ID: %w", err)
	}

	return record, nil
}

func (r *purchaseRepository) GetByUserID(ctx context.Context, userID int64) ([]*models.PurchaseRecord, error) {
	query := `
		SELECT id, id_usuario, monto_total, fecha_compra, nombre_producto, nombre_lista
		FROM historial_compras
		WHERE id_usuario = $1
		ORDER BY fecha_compra ASC`

	return r.queryRecords(ctx, query, userID)
}

// GetByDateRange returns records between from and to inclusive. Bounds are
// widened to whole days: from is normalized to 00:00:00 and to to 23:59:59.
func (r *purchaseRepository) GetByDateRange(ctx context.Context, userID int64, from, to time.Time) ([]*models.PurchaseRecord, error) {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	end := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, to.Location())

	query := `
		SELECT id, id_usuario, monto_total, fecha_compra, nombre_producto, nombre_lista
		FROM historial_compras
		WHERE id_usuario = $1 AND fecha_compra >= $2 AND fecha_compra <= $3
		ORDER BY fecha_compra ASC`

	return r.queryRecords(ctx, query, userID, start, end)
}

func (r *purchaseRepository) GetByFilters(ctx context.Context, userID int64, filters models.PurchaseFilters) ([]*models.PurchaseRecord, error) {
	query := `
		SELECT id, id_usuario, monto_total, fecha_compra, nombre_producto, nombre_lista
		FROM historial_compras
		WHERE id_usuario = $1`

	args := []any{userID}
	if filters.ProductName != "" {
		args = append(args, filters.ProductName)
		query += fmt.Sprintf(" AND nombre_producto = $%d", len(args))
	}
	if filters.ListName != "" {
		args = append(args, filters.ListName)
		query += fmt.Sprintf(" AND nombre_lista = $%d", len(args))
	}

	query += " ORDER BY fecha_compra ASC"

	return r.queryRecords(ctx, query, args...)
}

func (r *purchaseRepository) queryRecords(ctx context.Context, query string, args ...any) ([]*models.PurchaseRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase records: %w", err)
	}
	defer rows.Close()

	var records []*models.PurchaseRecord
	for rows.Next() {
		record := &models.PurchaseRecord{}
		if err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.TotalAmount,
			&record.PurchaseDate,
			&record.ProductName,
			&record.ListName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan purchase record: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func (r *purchaseRepository) Update(ctx context.Context, record *models.PurchaseRecord) (*models.PurchaseRecord, error) {
	query := `
		UPDATE historial_compras
		SET monto_total = $2, fecha_compra = $3, nombre_producto = $4, nombre_lista = $5
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.TotalAmount,
		record.PurchaseDate,
		record.ProductName,
		record.ListName,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update purchase record: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, repository.ErrNotFound
	}

	return record, nil
}

func (r *purchaseRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM historial_compras WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete purchase record: %w", err)
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
