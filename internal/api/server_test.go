package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mercalist/mercalist/internal/api"
	"github.com/mercalist/mercalist/internal/models"
	"github.com/mercalist/mercalist/internal/repository/memory"
	"github.com/mercalist/mercalist/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *memory.Store) {
	t.Helper()

	store := memory.NewStore()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	svc := service.New(logger,
		store.Products(), store.Lists(), store.Memberships(),
		store.Purchases(), store.Users(), store.Notifications())

	ts := httptest.NewServer(api.NewServer(svc, logger).Handler())
	t.Cleanup(ts.Close)

	return ts, store
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

func seedProduct(t *testing.T, store *memory.Store, name, category, supermarket string, price float64) *models.Product {
	t.Helper()

	p := &models.Product{Name: name, Price: price}
	if category != "" {
		p.Category = &category
	}
	if supermarket != "" {
		p.Supermarket = &supermarket
	}

	created, err := store.Products().Create(context.Background(), p)
	require.NoError(t, err)
	return created
}

func TestHealthEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestProductLifecycle(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/products", map[string]any{
		"name":        "Milk",
		"category":    "Dairy",
		"price":       1.50,
		"supermarket": "Super A",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Product
	decodeBody(t, resp, &created)
	require.NotZero(t, created.ID)
	assert.Equal(t, "Milk", created.Name)

	resp, err := http.Get(fmt.Sprintf("%s/api/products/%d", ts.URL, created.ID))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched models.Product
	decodeBody(t, resp, &fetched)
	assert.Equal(t, created.ID, fetched.ID)

	resp = doJSON(t, http.MethodPatch, fmt.Sprintf("%s/api/products/%d", ts.URL, created.ID),
		map[string]any{"price": 1.75})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Product
	decodeBody(t, resp, &updated)
	assert.Equal(t, 1.75, updated.Price)
	assert.Equal(t, "Milk", updated.Name) // untouched fields survive

	resp = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/products/%d", ts.URL, created.ID), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(fmt.Sprintf("%s/api/products/%d", ts.URL, created.ID))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCreateProductValidation(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/products", map[string]any{
		"name":  "  ",
		"price": -1,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Contains(t, body["error"], "name is required")
}

func TestGetProductsByCategory(t *testing.T) {
	ts, store := newTestServer(t)

	seedProduct(t, store, "Milk", "Dairy", "", 1.50)
	seedProduct(t, store, "Cheese", "Dairy", "", 4.20)
	seedProduct(t, store, "Bread", "Bakery", "", 0.80)

	resp, err := http.Get(ts.URL + "/api/products?category=Dairy")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var products []models.Product
	decodeBody(t, resp, &products)
	require.Len(t, products, 2)
	assert.Equal(t, "Milk", products[0].Name)
	assert.Equal(t, "Cheese", products[1].Name)
}

func TestCompareProductsEndpoint(t *testing.T) {
	ts, store := newTestServer(t)

	a := seedProduct(t, store, "Lettuce", "Produce", "Super A", 30)
	b := seedProduct(t, store, "Lettuce", "Produce", "Super B", 35)

	resp, err := http.Get(fmt.Sprintf("%s/api/products/compare?a=%d&b=%d", ts.URL, a.ID, b.ID))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Comparison struct {
			Difference float64         `json:"difference"`
			Cheaper    *models.Product `json:"cheaper"`
			Equal      bool            `json:"equal"`
		} `json:"comparison"`
		CheaperSupermarket string `json:"cheaper_supermarket"`
	}
	decodeBody(t, resp, &body)

	assert.Equal(t, 5.00, body.Comparison.Difference)
	require.NotNil(t, body.Comparison.Cheaper)
	assert.Equal(t, a.ID, body.Comparison.Cheaper.ID)
	assert.Equal(t, "Super A", body.CheaperSupermarket)
}

func TestCompareProductsBadParams(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/products/compare?a=nope&b=1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestListDetailAndGrouping(t *testing.T) {
	ts, store := newTestServer(t)

	milk := seedProduct(t, store, "Milk", "Dairy", "", 1.50)
	bread := seedProduct(t, store, "Bread", "Bakery", "", 0.80)

	list, err := store.Lists().Create(context.Background(), &models.List{Name: "Weekly"})
	require.NoError(t, err)

	for _, p := range []*models.Product{milk, bread} {
		id := p.ID
		_, err := store.Memberships().Add(context.Background(), &models.ListMembership{
			ProductID: &id, ListID: list.ID,
		})
		require.NoError(t, err)
	}

	t.Run("flat items", func(t *testing.T) {
		resp, err := http.Get(fmt.Sprintf("%s/api/lists/%d", ts.URL, list.ID))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			List  models.List              `json:"list"`
			Items []models.DetailedProduct `json:"items"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, "Weekly", body.List.Name)
		require.Len(t, body.Items, 2)
		require.NotNil(t, body.Items[0].Resolved)
		assert.Equal(t, "Milk", body.Items[0].Resolved.Name)
	})

	t.Run("grouped by category", func(t *testing.T) {
		resp, err := http.Get(fmt.Sprintf("%s/api/lists/%d?group=category", ts.URL, list.ID))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Groups []service.ProductGroup `json:"groups"`
		}
		decodeBody(t, resp, &body)
		require.Len(t, body.Groups, 2)
		assert.Equal(t, "Dairy", body.Groups[0].Key)
		assert.Equal(t, "Bakery", body.Groups[1].Key)
	})

	t.Run("unknown list", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/lists/999")
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestMembershipToggleEndpoint(t *testing.T) {
	ts, store := newTestServer(t)

	milk := seedProduct(t, store, "Milk", "Dairy", "", 1.50)
	list, err := store.Lists().Create(context.Background(), &models.List{Name: "Weekly"})
	require.NoError(t, err)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/memberships", map[string]any{
		"product_id": milk.ID,
		"list_id":    list.ID,
		"quantity":   2,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var membership models.ListMembership
	decodeBody(t, resp, &membership)
	require.NotZero(t, membership.ID)
	assert.False(t, membership.IsPurchased)

	resp = doJSON(t, http.MethodPut, fmt.Sprintf("%s/api/memberships/%d/toggle", ts.URL, membership.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	toggled, err := store.Memberships().GetByID(context.Background(), membership.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsPurchased)

	resp = doJSON(t, http.MethodPut, fmt.Sprintf("%s/api/memberships/%d/toggle", ts.URL, 999), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestPurchaseEndpoints(t *testing.T) {
	ts, store := newTestServer(t)

	milk := seedProduct(t, store, "Milk", "Dairy", "", 1.50)
	list, err := store.Lists().Create(context.Background(), &models.List{Name: "Weekly"})
	require.NoError(t, err)

	membership, err := store.Memberships().Add(context.Background(), &models.ListMembership{
		ProductID: &milk.ID, ListID: list.ID,
	})
	require.NoError(t, err)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/purchases", map[string]any{
		"user_id":       7,
		"membership_id": membership.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var record models.PurchaseRecord
	decodeBody(t, resp, &record)
	assert.Equal(t, "Milk", record.ProductName)
	assert.Equal(t, "Weekly", record.ListName)
	assert.Equal(t, 1.50, record.TotalAmount)

	resp, err = http.Get(ts.URL + "/api/purchases?user_id=7")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var records []models.PurchaseRecord
	decodeBody(t, resp, &records)
	require.Len(t, records, 1)
	assert.Equal(t, "Milk", records[0].ProductName)

	resp, err = http.Get(ts.URL + "/api/purchases?user_id=7&product_name=Bread")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	records = nil
	decodeBody(t, resp, &records)
	assert.Empty(t, records)

	resp, err = http.Get(ts.URL + "/api/purchases")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestPurchaseHistoryDateValidation(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/purchases?user_id=1&from=01-08-2026")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestUserEndpoints(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/users", map[string]any{
		"email": "ana@example.com",
		"name":  "Ana",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.User
	decodeBody(t, resp, &created)
	require.NotZero(t, created.ID)

	resp = doJSON(t, http.MethodPost, ts.URL+"/api/users", map[string]any{"email": "", "name": ""})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPut, fmt.Sprintf("%s/api/users/%d", ts.URL, created.ID), map[string]any{
		"email": "ana@example.com",
		"name":  "Ana Maria",
		"phone": "555-0100",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.User
	decodeBody(t, resp, &updated)
	assert.Equal(t, "Ana Maria", updated.Name)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "555-0100", *updated.Phone)
}

func TestUserSuggestionsEndpoint(t *testing.T) {
	ts, store := newTestServer(t)

	seedProduct(t, store, "Milk", "Dairy", "", 1.50)
	cheese := seedProduct(t, store, "Cheese", "Dairy", "", 4.20)

	_, err := store.Purchases().Create(context.Background(), &models.PurchaseRecord{
		UserID: 1, ProductName: "Milk", ListName: "Weekly",
	})
	require.NoError(t, err)

	resp, err := http.Get(ts.URL + "/api/users/1/suggestions")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var suggestions []models.Product
	decodeBody(t, resp, &suggestions)
	require.Len(t, suggestions, 1)
	assert.Equal(t, cheese.ID, suggestions[0].ID)
}

func TestUserSuggestionsEmptyHistory(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/users/1/suggestions")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var suggestions []models.Product
	decodeBody(t, resp, &suggestions)
	assert.Empty(t, suggestions)
}

func TestNotificationEndpoints(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/notifications", map[string]any{
		"user_id":    1,
		"body":       "buy milk",
		"trigger_at": "2026-09-01T10:00:00Z",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.ScheduledNotification
	decodeBody(t, resp, &created)
	assert.Equal(t, "Reminder", created.Title)

	resp, err := http.Get(ts.URL + "/api/notifications?user_id=1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var pending []models.ScheduledNotification
	decodeBody(t, resp, &pending)
	require.Len(t, pending, 1)

	resp = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/notifications/%d", ts.URL, created.ID), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, ts.URL+"/api/notifications", map[string]any{
		"user_id":    1,
		"body":       "bad date",
		"trigger_at": "tomorrow",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestInvalidJSONBody(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/products", "application/json", bytes.NewBufferString("{not json"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
