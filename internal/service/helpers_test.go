package service_test

import (
	"context"
	"io"
	"time"

	"github.com/mercalist/mercalist/internal/models"
	"github.com/mercalist/mercalist/internal/repository/memory"
	"github.com/mercalist/mercalist/internal/service"
	"github.com/sirupsen/logrus"
)

func newTestService(store *memory.Store) *service.Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return service.New(logger,
		store.Products(),
		store.Lists(),
		store.Memberships(),
		store.Purchases(),
		store.Users(),
		store.Notifications(),
	)
}

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }
func i64ptr(i int64) *int64   { return &i }

func seedProduct(store *memory.Store, name string, category string, price float64, supermarket string) *models.Product {
	product := &models.Product{Name: name, Price: price}
	if category != "" {
		product.Category = strptr(category)
	}
	if supermarket != "" {
		product.Supermarket = strptr(supermarket)
	}
	created, err := store.Products().Create(context.Background(), product)
	if err != nil {
		panic(err)
	}
	return created
}

func seedPurchase(store *memory.Store, userID int64, productName string, at time.Time) *models.PurchaseRecord {
	record := &models.PurchaseRecord{
		UserID:       userID,
		ProductName:  productName,
		ListName:     "Weekly",
		PurchaseDate: at,
	}
	created, err := store.Purchases().Create(context.Background(), record)
	if err != nil {
		panic(err)
	}
	return created
}

func membershipFor(product *models.Product, listID int64) *models.ListMembership {
	return &models.ListMembership{
		ProductID: i64ptr(product.ID),
		Quantity:  intptr(1),
		ListID:    listID,
	}
}
