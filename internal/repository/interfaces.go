package repository

import (
	"context"
	"time"

	"github.com/mercalist/mercalist/internal/models"
)

// ErrNotFound is returned by point lookups when the referenced document does
// not exist. Callers in the aggregation pipeline substitute a placeholder
// instead of propagating it.
var ErrNotFound = Error("not found")

// Error is a sentinel error type for repository-level conditions.
type Error string

func (e Error) Error() string { return string(e) }

// ProductRepository defines the interface for catalog product operations
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	GetAll(ctx context.Context) ([]*models.Product, error)
	GetByCategory(ctx context.Context, category string) ([]*models.Product, error)
	Update(ctx context.Context, id int64, update models.ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
}

// ListRepository defines the interface for shopping list operations
type ListRepository interface {
	Create(ctx context.Context, list *models.List) (*models.List, error)
	GetByID(ctx context.Context, id int64) (*models.List, error)
	GetAll(ctx context.Context) ([]*models.List, error)
	Update(ctx context.Context, list *models.List) (*models.List, error)
	Delete(ctx context.Context, id int64) error
}

// MembershipRepository defines the interface for product-in-list rows.
// Deleting a product never cascades to its memberships; orphaned rows are
// tolerated and resolved to nil by the joiner.
type MembershipRepository interface {
	Add(ctx context.Context, m *models.ListMembership) (*models.ListMembership, error)
	GetByID(ctx context.Context, id int64) (*models.ListMembership, error)
	GetByListID(ctx context.Context, listID int64) ([]*models.ListMembership, error)
	Update(ctx context.Context, m *models.ListMembership) (*models.ListMembership, error)
	TogglePurchased(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// PurchaseRepository defines the interface for purchase history records.
// No ordering is guaranteed by GetByUserID; the suggestion engine treats the
// result as reverse-chronological by reversing it.
type PurchaseRepository interface {
	Create(ctx context.Context, record *models.PurchaseRecord) (*models.PurchaseRecord, error)
	GetByID(ctx context.Context, id int64) (*models.PurchaseRecord, error)
	GetByUserID(ctx context.Context, userID int64) ([]*models.PurchaseRecord, error)
	GetByDateRange(ctx context.Context, userID int64, from, to time.Time) ([]*models.PurchaseRecord, error)
	GetByFilters(ctx context.Context, userID int64, filters models.PurchaseFilters) ([]*models.PurchaseRecord, error)
	Update(ctx context.Context, record *models.PurchaseRecord) (*models.PurchaseRecord, error)
	Delete(ctx context.Context, id int64) error
}

// UserRepository defines the interface for user accounts
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
}

// NotificationRepository defines the interface for scheduled reminder
// notifications
type NotificationRepository interface {
	Create(ctx context.Context, n *models.ScheduledNotification) (*models.ScheduledNotification, error)
	GetPending(ctx context.Context, userID int64) ([]*models.ScheduledNotification, error)
	GetDue(ctx context.Context) ([]*models.ScheduledNotification, error)
	MarkSent(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}
