package models

import "time"

// List represents a shopping list. Memberships reference the list by ID
// rather than being embedded in it.
type List struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"nombre"`
	Budget    float64   `json:"budget" db:"presupuesto"`
	CreatedAt time.Time `json:"created_at" db:"fecha_creacion"`
}
