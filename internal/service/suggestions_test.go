package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mercalist/mercalist/internal/models"
	"github.com/mercalist/mercalist/internal/repository/memory"
	"github.com/mercalist/mercalist/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestForUserProposesSameCategoryProducts(t *testing.T) {
	store := memory.NewStore()
	svc := newTestService(store)

	seedProduct(store, "Milk", "Dairy", 1.50, "")
	yogurt := seedProduct(store, "Yogurt", "Dairy", 2.00, "")
	cheese := seedProduct(store, "Cheese", "Dairy", 3.50, "")
	seedProduct(store, "Soap", "Household", 1.20, "")

	seedPurchase(store, 1, "Milk", time.Now().Add(-time.Hour))

	suggestions, err := svc.SuggestForUser(context.Background(), 1)
	require.NoError(t, err)

	names := productNames(suggestions)
	assert.ElementsMatch(t, []string{"Yogurt", "Cheese"}, names)
	_ = yogurt
	_ = cheese
}

func TestSuggestForUserNeverReturnsRecentlyPurchasedNames(t *testing.T) {
	store := memory.NewStore()
	svc := newTestService(store)

	seedProduct(store, "Milk", "Dairy", 1.50, "")
	seedProduct(store, "Yogurt", "Dairy", 2.00, "")

	base := time.Now().Add(-24 * time.Hour)
	seedPurchase(store, 1, "Milk", base)
	seedPurchase(store, 1, "Yogurt", base.Add(time.Hour))

	suggestions, err := svc.SuggestForUser(context.Background(), 1)
	require.NoError(t, err)

	for _, product := range suggestions {
		assert.NotEqual(t, "Milk", product.Name)
		assert.NotEqual(t, "Yogurt", product.Name)
	}
}

func TestSuggestForUserDedupedAndBounded(t *testing.T) {
	store := memory.NewStore()
	svc := newTestService(store)

	seedProduct(store, "Milk", "Dairy", 1.50, "")
	for i := 0; i < 15; i++ {
		seedProduct(store, fmt.Sprintf("Dairy item %d", i), "Dairy", 1.00, "")
	}

	seedPurchase(store, 1, "Milk", time.Now().Add(-time.Hour))

	suggestions, err := svc.SuggestForUser(context.Background(), 1)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(suggestions), 10)

	seen := make(map[int64]bool)
	for _, product := range suggestions {
		assert.False(t, seen[product.ID], "duplicate product id %d", product.ID)
		seen[product.ID] = true
	}
}

func TestSuggestForUserConfigurableLimit(t *testing.T) {
	store := memory.NewStore()
	svc := newTestService(store)
	svc.SetSuggestionLimit(3)

	seedProduct(store, "Milk", "Dairy", 1.50, "")
	for i := 0; i < 8; i++ {
		seedProduct(store, fmt.Sprintf("Dairy item %d", i), "Dairy", 1.00, "")
	}
	seedPurchase(store, 1, "Milk", time.Now().Add(-time.Hour))

	suggestions, err := svc.SuggestForUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, suggestions, 3)
}

func TestSuggestForUserEmptyHistory(t *testing.T) {
	store := memory.NewStore()
	svc := newTestService(store)

	seedProduct(store, "Milk", "Dairy", 1.50, "")

	suggestions, err := svc.SuggestForUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestSuggestForUserAllOrNothing(t *testing.T) {
	store := memory.NewStore()
	svc := newTestService(store)

	seedProduct(store, "Milk", "Dairy", 1.50, "")
	seedProduct(store, "Yogurt", "Dairy", 2.00, "")
	seedPurchase(store, 1, "Milk", time.Now().Add(-time.Hour))

	store.FailCategoryLookups(errors.New("store timeout"))

	suggestions, err := svc.SuggestForUser(context.Background(), 1)
	require.Error(t, err)
	assert.Empty(t, suggestions)
}

func TestSuggestForUserHistoryFailure(t *testing.T) {
	store := memory.NewStore()
	svc := newTestService(store)

	store.FailPurchaseHistory(errors.New("network down"))

	suggestions, err := svc.SuggestForUser(context.Background(), 1)
	require.Error(t, err)
	assert.Empty(t, suggestions)
}

func TestSuggestForUserDropsUnknownPurchaseNames(t *testing.T) {
	store := memory.NewStore()
	svc := newTestService(store)

	seedProduct(store, "Milk", "Dairy", 1.50, "")
	// "Mystery" has no catalog counterpart; it must be dropped silently.
	seedPurchase(store, 1, "Mystery", time.Now().Add(-time.Hour))

	suggestions, err := svc.SuggestForUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestSuggestRelatedExcludesListedProducts(t *testing.T) {
	store := memory.NewStore()
	svc := newTestService(store)

	milk := seedProduct(store, "Milk", "Dairy", 1.50, "")
	yogurt := seedProduct(store, "Yogurt", "Dairy", 2.00, "")

	suggestions, err := svc.SuggestRelated(context.Background(), []string{"Dairy"}, []int64{milk.ID})
	require.NoError(t, err)

	require.Len(t, suggestions, 1)
	assert.Equal(t, yogurt.ID, suggestions[0].ID)
}

func TestSuggestRelatedEmptyCategories(t *testing.T) {
	store := memory.NewStore()
	svc := newTestService(store)

	suggestions, err := svc.SuggestRelated(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestSuggestForList(t *testing.T) {
	store := memory.NewStore()
	svc := newTestService(store)

	list, err := store.Lists().Create(context.Background(), &models.List{Name: "Weekly"})
	require.NoError(t, err)

	milk := seedProduct(store, "Milk", "Dairy", 1.50, "")
	yogurt := seedProduct(store, "Yogurt", "Dairy", 2.00, "")
	seedProduct(store, "Soap", "Household", 1.20, "")

	_, err = store.Memberships().Add(context.Background(), membershipFor(milk, list.ID))
	require.NoError(t, err)

	suggestions, err := svc.SuggestForList(context.Background(), list.ID)
	require.NoError(t, err)

	// Only the dairy product not already on the list qualifies.
	require.Len(t, suggestions, 1)
	assert.Equal(t, yogurt.ID, suggestions[0].ID)
}

func TestRecentDistinctPurchasesKeepsLatestOfEachName(t *testing.T) {
	history := []*models.PurchaseRecord{
		{ProductName: "Milk", PurchaseDate: time.Unix(1, 0)},
		{ProductName: "Milk", PurchaseDate: time.Unix(2, 0)},
		{ProductName: "Bread", PurchaseDate: time.Unix(3, 0)},
	}

	recent := service.RecentDistinctPurchases(history, 5)

	require.Len(t, recent, 2)
	assert.Equal(t, "Bread", recent[0].ProductName)
	assert.Equal(t, "Milk", recent[1].ProductName)
	// The kept Milk entry is the most recent one.
	assert.Equal(t, time.Unix(2, 0), recent[1].PurchaseDate)
}

func TestRecentDistinctPurchasesWindow(t *testing.T) {
	var history []*models.PurchaseRecord
	for i := 0; i < 8; i++ {
		history = append(history, &models.PurchaseRecord{
			ProductName:  fmt.Sprintf("item %d", i),
			PurchaseDate: time.Unix(int64(i), 0),
		})
	}

	recent := service.RecentDistinctPurchases(history, 5)

	require.Len(t, recent, 5)
	assert.Equal(t, "item 7", recent[0].ProductName)
	assert.Equal(t, "item 3", recent[4].ProductName)
}

func productNames(products []*models.Product) []string {
	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.Name
	}
	return names
}
