package service

import (
	"context"
	"fmt"

	"github.com/mercalist/mercalist/internal/models"
	"golang.org/x/sync/errgroup"
)

// SuggestForUser proposes catalog products based on the user's recent
// purchase categories. The pipeline is all-or-nothing: any store failure
// collapses the whole result to "no suggestions available" rather than
// returning a partial set.
func (s *Service) SuggestForUser(ctx context.Context, userID int64) ([]*models.Product, error) {
	history, err := s.Purchases.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("no suggestions available: %w", err)
	}

	recent := RecentDistinctPurchases(history, s.recentWindow)
	if len(recent) == 0 {
		return nil, nil
	}

	purchasedNames := make(map[string]bool, len(recent))
	for _, p := range recent {
		purchasedNames[p.ProductName] = true
	}

	// One catalog load, then exact name matching; purchases with no catalog
	// counterpart are dropped silently.
	catalog, err := s.Products.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("no suggestions available: %w", err)
	}

	categoryByName := make(map[string]string)
	for _, product := range catalog {
		if product.Category == nil || *product.Category == "" {
			continue
		}
		if _, ok := categoryByName[product.Name]; !ok {
			categoryByName[product.Name] = *product.Category
		}
	}

	seen := make(map[string]bool)
	var categories []string
	for _, p := range recent {
		category, ok := categoryByName[p.ProductName]
		if !ok || seen[category] {
			continue
		}
		seen[category] = true
		categories = append(categories, category)
	}
	if len(categories) == 0 {
		return nil, nil
	}

	pool, err := s.fetchByCategories(ctx, categories)
	if err != nil {
		return nil, fmt.Errorf("no suggestions available: %w", err)
	}

	var filtered []*models.Product
	for _, product := range pool {
		if purchasedNames[product.Name] {
			continue
		}
		filtered = append(filtered, product)
	}

	return capSuggestions(dedupeByID(filtered), s.suggestionLimit), nil
}

// SuggestRelated proposes catalog products sharing the given categories,
// excluding the product IDs already present in the caller's list. Category
// order is preserved in the concatenated result.
func (s *Service) SuggestRelated(ctx context.Context, categories []string, excludeIDs []int64) ([]*models.Product, error) {
	if len(categories) == 0 {
		return nil, nil
	}

	pool, err := s.fetchByCategories(ctx, categories)
	if err != nil {
		return nil, fmt.Errorf("no suggestions available: %w", err)
	}

	excluded := make(map[int64]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}

	var filtered []*models.Product
	for _, product := range pool {
		if excluded[product.ID] {
			continue
		}
		filtered = append(filtered, product)
	}

	return capSuggestions(dedupeByID(filtered), s.suggestionLimit), nil
}

// SuggestForList derives the categories present in a list and proposes
// related products not already on it.
func (s *Service) SuggestForList(ctx context.Context, listID int64) ([]*models.Product, error) {
	rows, err := s.Memberships.GetByListID(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("no suggestions available: %w", err)
	}

	detailed := s.LoadDetailedProducts(ctx, rows)

	var excludeIDs []int64
	for _, d := range detailed {
		if d.ProductID != nil {
			excludeIDs = append(excludeIDs, *d.ProductID)
		}
	}

	return s.SuggestRelated(ctx, Categories(detailed), excludeIDs)
}

// fetchByCategories gathers the catalog products of every category
// concurrently and concatenates the results in the original category order.
func (s *Service) fetchByCategories(ctx context.Context, categories []string) ([]*models.Product, error) {
	results := make([][]*models.Product, len(categories))

	g, ctx := errgroup.WithContext(ctx)
	for i, category := range categories {
		g.Go(func() error {
			products, err := s.Products.GetByCategory(ctx, category)
			if err != nil {
				return fmt.Errorf("failed to fetch category %q: %w", category, err)
			}
			results[i] = products
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var pool []*models.Product
	for _, products := range results {
		pool = append(pool, products...)
	}
	return pool, nil
}

// RecentDistinctPurchases reduces a chronologically ordered history to the
// most recent `window` purchases with distinct product names. The history is
// walked newest-first, so the latest purchase of each name wins and older
// repeats are discarded.
func RecentDistinctPurchases(history []*models.PurchaseRecord, window int) []*models.PurchaseRecord {
	seen := make(map[string]bool)
	var recent []*models.PurchaseRecord

	for i := len(history) - 1; i >= 0 && len(recent) < window; i-- {
		record := history[i]
		if seen[record.ProductName] {
			continue
		}
		seen[record.ProductName] = true
		recent = append(recent, record)
	}

	return recent
}

// dedupeByID removes duplicate products, keeping the first occurrence.
func dedupeByID(products []*models.Product) []*models.Product {
	seen := make(map[int64]bool, len(products))
	var unique []*models.Product

	for _, product := range products {
		if seen[product.ID] {
			continue
		}
		seen[product.ID] = true
		unique = append(unique, product)
	}

	return unique
}

func capSuggestions(products []*models.Product, limit int) []*models.Product {
	if len(products) > limit {
		return products[:limit]
	}
	return products
}
