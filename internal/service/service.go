package service

import (
	"context"
	"fmt"

	"github.com/mercalist/mercalist/internal/models"
	"github.com/mercalist/mercalist/internal/repository"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultSuggestionLimit bounds the suggestion result. It keeps the UI
	// scroll region small and is tunable, not a hard rule.
	DefaultSuggestionLimit = 10

	// DefaultRecentPurchaseWindow is how many distinct recent purchases feed
	// the suggestion engine.
	DefaultRecentPurchaseWindow = 5
)

// Service is the central business logic layer: list loading, the product
// joiner, grouping, suggestions, purchases and notifications.
type Service struct {
	logger        *logrus.Logger
	Products      repository.ProductRepository
	Lists         repository.ListRepository
	Memberships   repository.MembershipRepository
	Purchases     repository.PurchaseRepository
	Users         repository.UserRepository
	Notifications repository.NotificationRepository

	suggestionLimit int
	recentWindow    int
}

// New creates a new Service with all required dependencies.
func New(logger *logrus.Logger,
	products repository.ProductRepository,
	lists repository.ListRepository,
	memberships repository.MembershipRepository,
	purchases repository.PurchaseRepository,
	users repository.UserRepository,
	notifications repository.NotificationRepository,
) *Service {
	return &Service{
		logger:   logger,
		Products: products, Lists: lists, Memberships: memberships,
		Purchases: purchases, Users: users, Notifications: notifications,

		suggestionLimit: DefaultSuggestionLimit,
		recentWindow:    DefaultRecentPurchaseWindow,
	}
}

// SetSuggestionLimit overrides the maximum number of suggestions returned.
// Values below 1 are ignored.
func (s *Service) SetSuggestionLimit(limit int) {
	if limit >= 1 {
		s.suggestionLimit = limit
	}
}

// CreateProduct validates and persists a new catalog product.
func (s *Service) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := product.Validate(); err != nil {
		return nil, err
	}

	created, err := s.Products.Create(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("failed to create product %q: %w", product.Name, err)
	}

	s.logger.Infof("Created product %q (id=%d)", created.Name, created.ID)
	return created, nil
}

// CreateUser validates required fields and persists a new user.
func (s *Service) CreateUser(ctx context.Context, email, name string, phone, profileImageURL *string) (*models.User, error) {
	user, err := models.NewUser(email, name, phone, profileImageURL)
	if err != nil {
		return nil, err
	}

	created, err := s.Users.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user %q: %w", email, err)
	}

	s.logger.Infof("Created user %q (id=%d)", created.Email, created.ID)
	return created, nil
}

// LoadList fetches a list together with its joined membership rows. A
// failure while reading memberships degrades to an empty slice rather than
// failing the whole screen load.
func (s *Service) LoadList(ctx context.Context, listID int64) (*models.List, []models.DetailedProduct, error) {
	list, err := s.Lists.GetByID(ctx, listID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load list %d: %w", listID, err)
	}

	rows, err := s.Memberships.GetByListID(ctx, listID)
	if err != nil {
		s.logger.WithError(err).WithField("list_id", listID).Error("failed to load list memberships")
		return list, nil, nil
	}

	return list, s.LoadDetailedProducts(ctx, rows), nil
}
