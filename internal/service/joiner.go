package service

import (
	"context"
	"sync"

	"github.com/mercalist/mercalist/internal/models"
	"go.uber.org/atomic"
)

// LoadDetailedProducts resolves each membership row against the product
// catalog. Lookups run concurrently, one per row, so latency is bounded by
// the slowest single lookup. Rows without a product reference are omitted;
// rows whose lookup fails (missing product or transient store error) are
// kept with a nil Resolved so the caller can render a placeholder. Output
// order matches input order.
func (s *Service) LoadDetailedProducts(ctx context.Context, rows []*models.ListMembership) []models.DetailedProduct {
	var kept []*models.ListMembership
	for _, row := range rows {
		if row.ProductID == nil {
			continue
		}
		kept = append(kept, row)
	}
	if len(kept) == 0 {
		return nil
	}

	detailed := make([]models.DetailedProduct, len(kept))
	failures := atomic.NewInt64(0)

	var wg sync.WaitGroup
	for i, row := range kept {
		wg.Add(1)
		go func(i int, row *models.ListMembership) {
			defer wg.Done()

			product, err := s.Products.GetByID(ctx, *row.ProductID)
			if err != nil {
				failures.Inc()
				s.logger.WithError(err).WithField("product_id", *row.ProductID).
					Warn("failed to resolve product for membership row")
				product = nil
			}
			detailed[i] = models.DetailedProduct{ListMembership: *row, Resolved: product}
		}(i, row)
	}
	wg.Wait()

	if n := failures.Load(); n > 0 {
		s.logger.Warnf("Resolved %d/%d membership rows (%d lookups failed)",
			int64(len(kept))-n, len(kept), n)
	}

	return detailed
}
