package service

import "github.com/mercalist/mercalist/internal/models"

// Labels substituted when a product failed to resolve or lacks the grouping
// field.
const (
	UncategorizedLabel = "uncategorized"
	UnnamedLabel       = "unnamed"
)

// GroupMode selects the grouping key for a detailed product view. Both modes
// are first-class: different screens of the app group by different keys.
type GroupMode string

const (
	GroupByCategoryMode GroupMode = "category"
	GroupByNameMode     GroupMode = "name"
)

// ProductGroup is one bucket of a grouped detailed-product view
type ProductGroup struct {
	Key   string                   `json:"key"`
	Count int                      `json:"count"`
	Items []models.DetailedProduct `json:"items"`
}

// GroupByCategory groups detailed products by their resolved category.
// Groups appear in first-seen order of the category across the input; items
// keep their input order within each group. Unresolved or uncategorized
// products fall into the "uncategorized" bucket.
func GroupByCategory(items []models.DetailedProduct) []ProductGroup {
	return groupBy(items, func(d *models.DetailedProduct) string {
		return d.ResolvedCategory(UncategorizedLabel)
	})
}

// GroupByName groups detailed products by their resolved product name, with
// the same ordering rules as GroupByCategory.
func GroupByName(items []models.DetailedProduct) []ProductGroup {
	return groupBy(items, func(d *models.DetailedProduct) string {
		return d.ResolvedName(UnnamedLabel)
	})
}

// Group applies the grouping strategy named by mode. Unknown modes fall back
// to category grouping.
func Group(items []models.DetailedProduct, mode GroupMode) []ProductGroup {
	if mode == GroupByNameMode {
		return GroupByName(items)
	}
	return GroupByCategory(items)
}

func groupBy(items []models.DetailedProduct, key func(*models.DetailedProduct) string) []ProductGroup {
	index := make(map[string]int)
	var groups []ProductGroup

	for _, item := range items {
		k := key(&item)
		i, seen := index[k]
		if !seen {
			i = len(groups)
			index[k] = i
			groups = append(groups, ProductGroup{Key: k})
		}
		groups[i].Items = append(groups[i].Items, item)
		groups[i].Count++
	}

	return groups
}

// Categories extracts the distinct non-null categories present in a detailed
// product view, in order of first appearance. Unresolved and uncategorized
// products contribute nothing.
func Categories(items []models.DetailedProduct) []string {
	seen := make(map[string]bool)
	var categories []string

	for _, item := range items {
		if item.Resolved == nil || item.Resolved.Category == nil || *item.Resolved.Category == "" {
			continue
		}
		c := *item.Resolved.Category
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}

	return categories
}
