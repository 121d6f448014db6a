package models

import "time"

// PurchaseRecord is a historical record of a bought product. Product and
// list names are denormalized on purpose: the record must survive catalog
// edits and deletions unchanged.
type PurchaseRecord struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"user_id" db:"id_usuario"`
	TotalAmount  float64   `json:"total_amount" db:"monto_total"`
	PurchaseDate time.Time `json:"purchase_date" db:"fecha_compra"`
	ProductName  string    `json:"product_name" db:"nombre_producto"`
	ListName     string    `json:"list_name" db:"nombre_lista"`
}

// PurchaseFilters narrows purchase history queries by the denormalized
// product and list names. Empty fields are ignored.
type PurchaseFilters struct {
	ProductName string
	ListName    string
}
