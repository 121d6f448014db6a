// Package memory provides in-memory implementations of the repository
// interfaces. It exists so the service layer can be exercised in tests
// without a database; behavior mirrors the postgres package, including the
// single-step purchased toggle.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mercalist/mercalist/internal/models"
	"github.com/mercalist/mercalist/internal/repository"
)

// Store holds every collection behind one mutex. The zero value is not
// usable; call NewStore.
type Store struct {
	mu     sync.Mutex
	nextID int64

	products      map[int64]models.Product
	lists         map[int64]models.List
	memberships   map[int64]models.ListMembership
	purchases     map[int64]models.PurchaseRecord
	users         map[int64]models.User
	notifications map[int64]models.ScheduledNotification

	// Error injection for failure-path tests.
	productErrs  map[int64]error
	purchasesErr error
	catalogErr   error
	categoryErr  error
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		products:      make(map[int64]models.Product),
		lists:         make(map[int64]models.List),
		memberships:   make(map[int64]models.ListMembership),
		purchases:     make(map[int64]models.PurchaseRecord),
		users:         make(map[int64]models.User),
		notifications: make(map[int64]models.ScheduledNotification),
		productErrs:   make(map[int64]error),
	}
}

// Products returns the store's ProductRepository view
func (s *Store) Products() repository.ProductRepository { return (*productRepo)(s) }

// Lists returns the store's ListRepository view
func (s *Store) Lists() repository.ListRepository { return (*listRepo)(s) }

// Memberships returns the store's MembershipRepository view
func (s *Store) Memberships() repository.MembershipRepository { return (*membershipRepo)(s) }

// Purchases returns the store's PurchaseRepository view
func (s *Store) Purchases() repository.PurchaseRepository { return (*purchaseRepo)(s) }

// Users returns the store's UserRepository view
func (s *Store) Users() repository.UserRepository { return (*userRepo)(s) }

// Notifications returns the store's NotificationRepository view
func (s *Store) Notifications() repository.NotificationRepository { return (*notificationRepo)(s) }

// FailProductLookup makes GetByID return err for the given product ID,
// simulating a transient store failure.
func (s *Store) FailProductLookup(id int64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.productErrs[id] = err
}

// FailPurchaseHistory makes every purchase history query return err
func (s *Store) FailPurchaseHistory(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purchasesErr = err
}

// FailCatalog makes GetAll on products return err
func (s *Store) FailCatalog(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalogErr = err
}

// FailCategoryLookups makes GetByCategory return err
func (s *Store) FailCategoryLookups(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categoryErr = err
}

func (s *Store) allocID() int64 {
	s.nextID++
	return s.nextID
}

// ---------------------------------------------------------------------------
// Products
// ---------------------------------------------------------------------------

type productRepo Store

func (r *productRepo) Create(_ context.Context, product *models.Product) (*models.Product, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	product.ID = s.allocID()
	if product.CreatedAt == nil {
		now := time.Now()
		product.CreatedAt = &now
	}
	s.products[product.ID] = *product
	return product, nil
}

func (r *productRepo) GetByID(_ context.Context, id int64) (*models.Product, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.productErrs[id]; err != nil {
		return nil, err
	}
	product, ok := s.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &product, nil
}

func (r *productRepo) GetAll(_ context.Context) ([]*models.Product, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.catalogErr != nil {
		return nil, s.catalogErr
	}

	var products []*models.Product
	for _, product := range s.products {
		p := product
		products = append(products, &p)
	}
	sortByID(products, func(p *models.Product) int64 { return p.ID })
	return products, nil
}

func (r *productRepo) GetByCategory(_ context.Context, category string) ([]*models.Product, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.categoryErr != nil {
		return nil, s.categoryErr
	}

	var products []*models.Product
	for _, product := range s.products {
		if product.Category != nil && *product.Category == category {
			p := product
			products = append(products, &p)
		}
	}
	sortByID(products, func(p *models.Product) int64 { return p.ID })
	return products, nil
}

func (r *productRepo) Update(_ context.Context, id int64, update models.ProductUpdate) (*models.Product, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Category != nil {
		product.Category = update.Category
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.ImageURL != nil {
		product.ImageURL = update.ImageURL
	}
	if update.Supermarket != nil {
		product.Supermarket = update.Supermarket
	}
	s.products[id] = product
	return &product, nil
}

func (r *productRepo) Delete(_ context.Context, id int64) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return repository.ErrNotFound
	}
	// Memberships keep their dangling product references on purpose.
	delete(s.products, id)
	return nil
}

// ---------------------------------------------------------------------------
// Lists
// ---------------------------------------------------------------------------

type listRepo Store

func (r *listRepo) Create(_ context.Context, list *models.List) (*models.List, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	list.ID = s.allocID()
	list.CreatedAt = time.Now()
	s.lists[list.ID] = *list
	return list, nil
}

func (r *listRepo) GetByID(_ context.Context, id int64) (*models.List, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.lists[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &list, nil
}

func (r *listRepo) GetAll(_ context.Context) ([]*models.List, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	var lists []*models.List
	for _, list := range s.lists {
		l := list
		lists = append(lists, &l)
	}
	sortByID(lists, func(l *models.List) int64 { return l.ID })
	return lists, nil
}

func (r *listRepo) Update(_ context.Context, list *models.List) (*models.List, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lists[list.ID]; !ok {
		return nil, repository.ErrNotFound
	}
	s.lists[list.ID] = *list
	return list, nil
}

func (r *listRepo) Delete(_ context.Context, id int64) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lists[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.lists, id)
	return nil
}

// ---------------------------------------------------------------------------
// Memberships
// ---------------------------------------------------------------------------

type membershipRepo Store

func (r *membershipRepo) Add(_ context.Context, m *models.ListMembership) (*models.ListMembership, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = s.allocID()
	m.IsPurchased = false
	now := time.Now()
	m.UpdatedAt = &now
	s.memberships[m.ID] = *m
	return m, nil
}

func (r *membershipRepo) GetByID(_ context.Context, id int64) (*models.ListMembership, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.memberships[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &m, nil
}

func (r *membershipRepo) GetByListID(_ context.Context, listID int64) ([]*models.ListMembership, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	var memberships []*models.ListMembership
	for _, m := range s.memberships {
		if m.ListID == listID {
			row := m
			memberships = append(memberships, &row)
		}
	}
	sortByID(memberships, func(m *models.ListMembership) int64 { return m.ID })
	return memberships, nil
}

func (r *membershipRepo) Update(_ context.Context, m *models.ListMembership) (*models.ListMembership, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.memberships[m.ID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	current.Quantity = m.Quantity
	current.AssignedUserID = m.AssignedUserID
	now := time.Now()
	current.UpdatedAt = &now
	s.memberships[m.ID] = current
	*m = current
	return m, nil
}

func (r *membershipRepo) TogglePurchased(_ context.Context, id int64) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.memberships[id]
	if !ok {
		return repository.ErrNotFound
	}
	m.IsPurchased = !m.IsPurchased
	now := time.Now()
	m.UpdatedAt = &now
	s.memberships[id] = m
	return nil
}

func (r *membershipRepo) Delete(_ context.Context, id int64) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.memberships[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.memberships, id)
	return nil
}

// ---------------------------------------------------------------------------
// Purchases
// ---------------------------------------------------------------------------

type purchaseRepo Store

func (r *purchaseRepo) Create(_ context.Context, record *models.PurchaseRecord) (*models.PurchaseRecord, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	record.ID = s.allocID()
	if record.PurchaseDate.IsZero() {
		record.PurchaseDate = time.Now()
	}
	s.purchases[record.ID] = *record
	return record, nil
}

func (r *purchaseRepo) GetByID(_ context.Context, id int64) (*models.PurchaseRecord, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.purchases[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &record, nil
}

func (r *purchaseRepo) GetByUserID(_ context.Context, userID int64) ([]*models.PurchaseRecord, error) {
	return r.collect(userID, func(models.PurchaseRecord) bool { return true })
}

func (r *purchaseRepo) GetByDateRange(_ context.Context, userID int64, from, to time.Time) ([]*models.PurchaseRecord, error) {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	end := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, to.Location())
	return r.collect(userID, func(record models.PurchaseRecord) bool {
		return !record.PurchaseDate.Before(start) && !record.PurchaseDate.After(end)
	})
}

func (r *purchaseRepo) GetByFilters(_ context.Context, userID int64, filters models.PurchaseFilters) ([]*models.PurchaseRecord, error) {
	return r.collect(userID, func(record models.PurchaseRecord) bool {
		if filters.ProductName != "" && record.ProductName != filters.ProductName {
			return false
		}
		if filters.ListName != "" && record.ListName != filters.ListName {
			return false
		}
		return true
	})
}

func (r *purchaseRepo) collect(userID int64, keep func(models.PurchaseRecord) bool) ([]*models.PurchaseRecord, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.purchasesErr != nil {
		return nil, s.purchasesErr
	}

	var records []*models.PurchaseRecord
	for _, record := range s.purchases {
		if record.UserID == userID && keep(record) {
			rec := record
			records = append(records, &rec)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].PurchaseDate.Equal(records[j].PurchaseDate) {
			return records[i].ID < records[j].ID
		}
		return records[i].PurchaseDate.Before(records[j].PurchaseDate)
	})
	return records, nil
}

func (r *purchaseRepo) Update(_ context.Context, record *models.PurchaseRecord) (*models.PurchaseRecord, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.purchases[record.ID]; !ok {
		return nil, repository.ErrNotFound
	}
	s.purchases[record.ID] = *record
	return record, nil
}

func (r *purchaseRepo) Delete(_ context.Context, id int64) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.purchases[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.purchases, id)
	return nil
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type userRepo Store

func (r *userRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.allocID()
	user.CreatedAt = time.Now()
	s.users[user.ID] = *user
	return user, nil
}

func (r *userRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (r *userRepo) Update(_ context.Context, user *models.User) (*models.User, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return nil, repository.ErrNotFound
	}
	s.users[user.ID] = *user
	return user, nil
}

// ---------------------------------------------------------------------------
// Notifications
// ---------------------------------------------------------------------------

type notificationRepo Store

func (r *notificationRepo) Create(_ context.Context, n *models.ScheduledNotification) (*models.ScheduledNotification, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = s.allocID()
	n.Sent = false
	n.CreatedAt = time.Now()
	s.notifications[n.ID] = *n
	return n, nil
}

func (r *notificationRepo) GetPending(_ context.Context, userID int64) ([]*models.ScheduledNotification, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	var notifications []*models.ScheduledNotification
	for _, n := range s.notifications {
		if n.UserID == userID && !n.Sent {
			notif := n
			notifications = append(notifications, &notif)
		}
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].TriggerAt.Before(notifications[j].TriggerAt)
	})
	return notifications, nil
}

func (r *notificationRepo) GetDue(_ context.Context) ([]*models.ScheduledNotification, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	var notifications []*models.ScheduledNotification
	for _, n := range s.notifications {
		if !n.Sent && !n.TriggerAt.After(now) {
			notif := n
			notifications = append(notifications, &notif)
		}
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].TriggerAt.Before(notifications[j].TriggerAt)
	})
	return notifications, nil
}

func (r *notificationRepo) MarkSent(_ context.Context, id int64) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok {
		return repository.ErrNotFound
	}
	n.Sent = true
	now := time.Now()
	n.SentAt = &now
	s.notifications[id] = n
	return nil
}

func (r *notificationRepo) Delete(_ context.Context, id int64) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notifications[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.notifications, id)
	return nil
}

// sortByID keeps insertion order: IDs are allocated monotonically.
func sortByID[T any](items []*T, id func(*T) int64) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}
