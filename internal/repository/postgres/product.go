package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mercalist/mercalist/internal/models"
	"github.com/mercalist/mercalist/internal/repository"
)

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new catalog product repository
func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	query := `
		INSERT INTO productos (nombre, categoria, precio, imagen_url, supermercado, creado_por, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	now := time.Now()
	product.CreatedAt = &now

	err := r.db.QueryRowContext(ctx, query,
		product.Name,
		product.Category,
		product.Price,
		product.ImageURL,
		product.Supermarket,
		product.CreatedByID,
		product.CreatedAt,
	).Scan(&product.ID)

	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	query := `
		SELECT id, nombre, categoria, precio, imagen_url, supermercado, creado_por, fecha_creacion
		FROM productos
		WHERE id = $1`

	product := &models.Product{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.Price,
		&product.ImageURL,
		&product.Supermarket,
		&product.CreatedByID,
		&product.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID: %w", err)
	}

	return product, nil
}

func (r *productRepository) GetAll(ctx context.Context) ([]*models.Product, error) {
	query := `
		SELECT id, nombre, categoria, precio, imagen_url, supermercado, creado_por, fecha_creacion
		FROM productos
		ORDER BY fecha_creacion ASC`

	return r.queryProducts(ctx, query)
}

func (r *productRepository) GetByCategory(ctx context.Context, category string) ([]*models.Product, error) {
	query := `
		SELECT id, nombre, categoria, precio, imagen_url, supermercado, creado_por, fecha_creacion
		FROM productos
		WHERE categoria = $1
		ORDER BY fecha_creacion ASC`

	return r.queryProducts(ctx, query, category)
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]*models.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Category,
			&product.Price,
			&product.ImageURL,
			&product.Supermarket,
			&product.CreatedByID,
			&product.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

func (r *productRepository) Update(ctx context.Context, id int64, update models.ProductUpdate) (*models.Product, error) {
	query := `
		UPDATE productos
		SET nombre      = COALESCE($2, nombre),
		    categoria   = COALESCE($3, categoria),
		    precio      = COALESCE($4, precio),
		    imagen_url  = COALESCE($5, imagen_url),
		    supermercado = COALESCE($6, supermercado)
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id,
		update.Name,
		update.Category,
		update.Price,
		update.ImageURL,
		update.Supermarket,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, repository.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	// Memberships referencing this product are left in place; the joiner
	// resolves them to nil.
	query := `DELETE FROM productos WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
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
