package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mercalist/mercalist/internal/models"
)

// RecordPurchase writes a purchase history record for a detailed product.
// Product and list names are denormalized into the record; an unresolved
// product yields an empty name and a zero amount, matching the placeholder
// behavior of the rest of the pipeline.
func (s *Service) RecordPurchase(ctx context.Context, userID int64, item models.DetailedProduct, listName string) (*models.PurchaseRecord, error) {
	record := &models.PurchaseRecord{
		UserID:       userID,
		TotalAmount:  item.ResolvedPrice(),
		PurchaseDate: time.Now(),
		ProductName:  item.ResolvedName(""),
		ListName:     listName,
	}

	created, err := s.Purchases.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to record purchase for user %d: %w", userID, err)
	}

	s.logger.Infof("Recorded purchase %q for user %d (amount=%.2f)",
		created.ProductName, userID, created.TotalAmount)
	return created, nil
}

// TogglePurchased flips the purchased flag of a membership row. The flip is
// a single store operation, so toggling twice always restores the original
// state.
func (s *Service) TogglePurchased(ctx context.Context, membershipID int64) error {
	if err := s.Memberships.TogglePurchased(ctx, membershipID); err != nil {
		return fmt.Errorf("failed to toggle membership %d: %w", membershipID, err)
	}
	return nil
}

// HistoryQuery narrows a purchase history lookup. A set date bound switches
// to a range query (missing bounds default to the epoch and now); otherwise
// name filters apply; with nothing set the full history is returned.
type HistoryQuery struct {
	From        *time.Time
	To          *time.Time
	ProductName string
	ListName    string
}

// PurchaseHistory fetches a user's purchase records according to the query.
func (s *Service) PurchaseHistory(ctx context.Context, userID int64, q HistoryQuery) ([]*models.PurchaseRecord, error) {
	var (
		records []*models.PurchaseRecord
		err     error
	)

	switch {
	case q.From != nil || q.To != nil:
		from := time.Unix(0, 0)
		if q.From != nil {
			from = *q.From
		}
		to := time.Now()
		if q.To != nil {
			to = *q.To
		}
		records, err = s.Purchases.GetByDateRange(ctx, userID, from, to)
	case q.ProductName != "" || q.ListName != "":
		records, err = s.Purchases.GetByFilters(ctx, userID, models.PurchaseFilters{
			ProductName: q.ProductName,
			ListName:    q.ListName,
		})
	default:
		records, err = s.Purchases.GetByUserID(ctx, userID)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to fetch purchase history for user %d: %w", userID, err)
	}
	return records, nil
}

// SelectedTotal sums the prices of the purchased rows in a detailed product
// view. Unresolved products contribute zero.
func SelectedTotal(items []models.DetailedProduct) float64 {
	var total float64
	for _, item := range items {
		if item.IsPurchased {
			total += item.ResolvedPrice()
		}
	}
	return total
}
