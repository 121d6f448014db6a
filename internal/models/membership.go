package models

import "time"

// ListMembership links a product to a shopping list together with its
// quantity and purchased state.
type ListMembership struct {
	ID             int64      `json:"id" db:"id"`
	ProductID      *int64     `json:"product_id" db:"producto_id"`
	Quantity       *int       `json:"quantity" db:"cantidad"`
	ListID         int64      `json:"list_id" db:"lista_id"`
	IsPurchased    bool       `json:"is_purchased" db:"is_comprado"`
	AssignedUserID *int64     `json:"assigned_user_id" db:"usuario_asignado"`
	UpdatedAt      *time.Time `json:"updated_at" db:"fecha_actualizacion"`
}

// DetailedProduct is a membership row merged with its resolved catalog
// product. Resolved is nil when the referenced product no longer exists or
// the lookup failed; callers render a placeholder in that case. The value is
// derived per request and never persisted.
type DetailedProduct struct {
	ListMembership
	Resolved *Product `json:"product"`
}

// ResolvedName returns the product name, or the given fallback when the
// product did not resolve or has no name.
func (d *DetailedProduct) ResolvedName(fallback string) string {
	if d.Resolved == nil || d.Resolved.Name == "" {
		return fallback
	}
	return d.Resolved.Name
}

// ResolvedCategory returns the product category, or the given fallback when
// the product did not resolve or is uncategorized.
func (d *DetailedProduct) ResolvedCategory(fallback string) string {
	if d.Resolved == nil {
		return fallback
	}
	return d.Resolved.CategoryOrDefault(fallback)
}

// ResolvedPrice returns the product price, or zero when the product did not
// resolve.
func (d *DetailedProduct) ResolvedPrice() float64 {
	if d.Resolved == nil {
		return 0
	}
	return d.Resolved.Price
}
