package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
)

// Product represents a catalog product offered by a supermarket
type Product struct {
	ID          int64      `json:"id" db:"id"`
	Name        string     `json:"name" db:"nombre"`
	Category    *string    `json:"category" db:"categoria"`
	Price       float64    `json:"price" db:"precio"`
	ImageURL    *string    `json:"image_url" db:"imagen_url"`
	Supermarket *string    `json:"supermarket" db:"supermercado"`
	CreatedByID *int64     `json:"created_by_id" db:"creado_por"`
	CreatedAt   *time.Time `json:"created_at" db:"fecha_creacion"`
}

// Validate checks the product fields before it is persisted. All problems
// are collected so the caller can report them in a single message.
func (p *Product) Validate() error {
	var result *multierror.Error

	if strings.TrimSpace(p.Name) == "" {
		result = multierror.Append(result, fmt.Errorf("product name is required"))
	}
	if p.Price < 0 {
		result = multierror.Append(result, fmt.Errorf("product price must be non-negative"))
	}

	return result.ErrorOrNil()
}

// CategoryOrDefault returns the product category, or the given fallback when
// the product has none.
func (p *Product) CategoryOrDefault(fallback string) string {
	if p.Category == nil || *p.Category == "" {
		return fallback
	}
	return *p.Category
}

// ProductUpdate carries a partial update for a product. Nil fields are left
// untouched.
type ProductUpdate struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"image_url"`
	Supermarket *string  `json:"supermarket"`
}
