package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mercalist/mercalist/internal/models"
	"github.com/mercalist/mercalist/internal/repository"
	"github.com/mercalist/mercalist/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Server provides the HTTP API.
type Server struct {
	svc    *service.Service
	logger *logrus.Logger
	mux    *http.ServeMux
}

// NewServer creates a Server, registers all routes, and returns it.
func NewServer(svc *service.Service, logger *logrus.Logger) *Server {
	s := &Server{svc: svc, logger: logger, mux: http.NewServeMux()}
	s.routes()
	return s
}

// Handler returns the http.Handler that can be passed to http.Server.
func (s *Server) Handler() http.Handler {
	return instrument(s.mux)
}

// ---------------------------------------------------------------------------
// Routes
// ---------------------------------------------------------------------------

func (s *Server) routes() {
	// API – Products
	s.mux.HandleFunc("GET /api/products", s.handleGetProducts)
	s.mux.HandleFunc("POST /api/products", s.handleCreateProduct)
	s.mux.HandleFunc("GET /api/products/compare", s.handleCompareProducts)
	s.mux.HandleFunc("GET /api/products/{id}", s.handleGetProduct)
	s.mux.HandleFunc("PATCH /api/products/{id}", s.handleUpdateProduct)
	s.mux.HandleFunc("DELETE /api/products/{id}", s.handleDeleteProduct)

	// API – Lists
	s.mux.HandleFunc("GET /api/lists", s.handleGetLists)
	s.mux.HandleFunc("POST /api/lists", s.handleCreateList)
	s.mux.HandleFunc("GET /api/lists/{id}", s.handleGetList)
	s.mux.HandleFunc("PUT /api/lists/{id}", s.handleUpdateList)
	s.mux.HandleFunc("DELETE /api/lists/{id}", s.handleDeleteList)
	s.mux.HandleFunc("GET /api/lists/{id}/suggestions", s.handleListSuggestions)

	// API – Memberships
	s.mux.HandleFunc("POST /api/memberships", s.handleAddMembership)
	s.mux.HandleFunc("PUT /api/memberships/{id}/toggle", s.handleToggleMembership)
	s.mux.HandleFunc("DELETE /api/memberships/{id}", s.handleDeleteMembership)

	// API – Purchases
	s.mux.HandleFunc("GET /api/purchases", s.handleGetPurchases)
	s.mux.HandleFunc("POST /api/purchases", s.handleCreatePurchase)

	// API – Users
	s.mux.HandleFunc("POST /api/users", s.handleCreateUser)
	s.mux.HandleFunc("GET /api/users/{id}", s.handleGetUser)
	s.mux.HandleFunc("PUT /api/users/{id}", s.handleUpdateUser)
	s.mux.HandleFunc("GET /api/users/{id}/suggestions", s.handleUserSuggestions)

	// API – Notifications
	s.mux.HandleFunc("GET /api/notifications", s.handleGetNotifications)
	s.mux.HandleFunc("POST /api/notifications", s.handleCreateNotification)
	s.mux.HandleFunc("DELETE /api/notifications/{id}", s.handleDeleteNotification)

	// Operational endpoints
	s.mux.Handle("GET /metrics", promhttp.Handler())
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
}

// ---------------------------------------------------------------------------
// JSON helpers
// ---------------------------------------------------------------------------

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			s.logger.WithError(err).Error("failed to encode JSON response")
		}
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}

// respondStoreError maps repository errors to HTTP statuses.
func (s *Server) respondStoreError(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, repository.ErrNotFound) {
		s.respondError(w, http.StatusNotFound, message+": not found")
		return
	}
	s.logger.WithError(err).Error(message)
	s.respondError(w, http.StatusInternalServerError, message)
}

// decodeJSON reads the request body into dst and returns an error message on
// failure.  The caller should return immediately when ok == false.
func (s *Server) decodeJSON(r *http.Request, dst any) (ok bool, errMsg string) {
	if r.Body == nil {
		return false, "request body is empty"
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return false, fmt.Sprintf("invalid JSON: %v", err)
	}
	return true, ""
}

// pathID extracts the {id} path value and converts it to int64.
func pathID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	if raw == "" {
		return 0, fmt.Errorf("missing id in path")
	}
	return strconv.ParseInt(raw, 10, 64)
}

// requireUserID reads the user_id query parameter.  It writes an error
// response and returns 0 when the parameter is absent or invalid.
func (s *Server) requireUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("user_id")
	if raw == "" {
		s.respondError(w, http.StatusBadRequest, "user_id query parameter is required")
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "user_id must be an integer")
		return 0, false
	}
	return id, true
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ---------------------------------------------------------------------------
// Products
// ---------------------------------------------------------------------------

type createProductRequest struct {
	Name        string  `json:"name"`
	Category    *string `json:"category"`
	Price       float64 `json:"price"`
	ImageURL    *string `json:"image_url"`
	Supermarket *string `json:"supermarket"`
	CreatedByID *int64  `json:"created_by_id"`
}

func (s *Server) handleGetProducts(w http.ResponseWriter, r *http.Request) {
	var (
		products []*models.Product
		err      error
	)

	if category := r.URL.Query().Get("category"); category != "" {
		products, err = s.svc.Products.GetByCategory(r.Context(), category)
	} else {
		products, err = s.svc.Products.GetAll(r.Context())
	}
	if err != nil {
		s.logger.WithError(err).Error("failed to get products")
		s.respondError(w, http.StatusInternalServerError, "failed to get products")
		return
	}
	if products == nil {
		products = []*models.Product{}
	}

	s.respondJSON(w, http.StatusOK, products)
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}

	product := &models.Product{
		Name:        strings.TrimSpace(req.Name),
		Category:    req.Category,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Supermarket: req.Supermarket,
		CreatedByID: req.CreatedByID,
	}

	created, err := s.svc.CreateProduct(r.Context(), product)
	if err != nil {
		// Validation failures surface before any store write happens.
		if product.Validate() != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.WithError(err).Error("failed to create product")
		s.respondError(w, http.StatusInternalServerError, "failed to create product")
		return
	}

	s.respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := s.svc.Products.GetByID(r.Context(), id)
	if err != nil {
		s.respondStoreError(w, err, "failed to get product")
		return
	}

	s.respondJSON(w, http.StatusOK, product)
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var update models.ProductUpdate
	if ok, msg := s.decodeJSON(r, &update); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	if update.Price != nil && *update.Price < 0 {
		s.respondError(w, http.StatusBadRequest, "price must be non-negative")
		return
	}

	updated, err := s.svc.Products.Update(r.Context(), id, update)
	if err != nil {
		s.respondStoreError(w, err, "failed to update product")
		return
	}

	s.respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := s.svc.Products.Delete(r.Context(), id); err != nil {
		s.respondStoreError(w, err, "failed to delete product")
		return
	}

	s.respondJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleCompareProducts(w http.ResponseWriter, r *http.Request) {
	parse := func(key string) (int64, error) {
		return strconv.ParseInt(r.URL.Query().Get(key), 10, 64)
	}

	aID, errA := parse("a")
	bID, errB := parse("b")
	if errA != nil || errB != nil {
		s.respondError(w, http.StatusBadRequest, "a and b query parameters must be product ids")
		return
	}

	a, err := s.svc.Products.GetByID(r.Context(), aID)
	if err != nil {
		s.respondStoreError(w, err, "failed to get first product")
		return
	}
	b, err := s.svc.Products.GetByID(r.Context(), bID)
	if err != nil {
		s.respondStoreError(w, err, "failed to get second product")
		return
	}

	comparison := service.ComparePrices(a, b)
	s.respondJSON(w, http.StatusOK, map[string]any{
		"comparison":          comparison,
		"cheaper_supermarket": comparison.CheaperSupermarket(),
	})
}

// ---------------------------------------------------------------------------
// Lists
// ---------------------------------------------------------------------------

type createListRequest struct {
	Name   string  `json:"name"`
	Budget float64 `json:"budget"`
}

func (s *Server) handleGetLists(w http.ResponseWriter, r *http.Request) {
	lists, err := s.svc.Lists.GetAll(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to get lists")
		s.respondError(w, http.StatusInternalServerError, "failed to get lists")
		return
	}
	if lists == nil {
		lists = []*models.List{}
	}

	s.respondJSON(w, http.StatusOK, lists)
}

func (s *Server) handleCreateList(w http.ResponseWriter, r *http.Request) {
	var req createListRequest
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		s.respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	created, err := s.svc.Lists.Create(r.Context(), &models.List{
		Name:   strings.TrimSpace(req.Name),
		Budget: req.Budget,
	})
	if err != nil {
		s.logger.WithError(err).Error("failed to create list")
		s.respondError(w, http.StatusInternalServerError, "failed to create list")
		return
	}

	s.respondJSON(w, http.StatusCreated, created)
}

// handleGetList returns the list with its joined membership rows. With
// ?group=category or ?group=name the items are grouped accordingly.
func (s *Server) handleGetList(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid list id")
		return
	}

	list, detailed, err := s.svc.LoadList(r.Context(), id)
	if err != nil {
		s.respondStoreError(w, err, "failed to load list")
		return
	}
	if detailed == nil {
		detailed = []models.DetailedProduct{}
	}

	response := map[string]any{
		"list":           list,
		"selected_total": service.SelectedTotal(detailed),
	}

	if mode := r.URL.Query().Get("group"); mode != "" {
		response["groups"] = service.Group(detailed, service.GroupMode(mode))
	} else {
		response["items"] = detailed
	}

	s.respondJSON(w, http.StatusOK, response)
}

func (s *Server) handleUpdateList(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid list id")
		return
	}

	var req createListRequest
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		s.respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	updated, err := s.svc.Lists.Update(r.Context(), &models.List{
		ID:     id,
		Name:   strings.TrimSpace(req.Name),
		Budget: req.Budget,
	})
	if err != nil {
		s.respondStoreError(w, err, "failed to update list")
		return
	}

	s.respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteList(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid list id")
		return
	}

	if err := s.svc.Lists.Delete(r.Context(), id); err != nil {
		s.respondStoreError(w, err, "failed to delete list")
		return
	}

	s.respondJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleListSuggestions(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid list id")
		return
	}

	suggestions, err := s.svc.SuggestForList(r.Context(), id)
	if err != nil {
		// The pipeline is all-or-nothing: report an empty result once.
		s.logger.WithError(err).WithField("list_id", id).Warn("no suggestions available")
		s.respondJSON(w, http.StatusOK, []*models.Product{})
		return
	}
	if suggestions == nil {
		suggestions = []*models.Product{}
	}

	s.respondJSON(w, http.StatusOK, suggestions)
}

// ---------------------------------------------------------------------------
// Memberships
// ---------------------------------------------------------------------------

type addMembershipRequest struct {
	ProductID      *int64 `json:"product_id"`
	Quantity       *int   `json:"quantity"`
	ListID         int64  `json:"list_id"`
	AssignedUserID *int64 `json:"assigned_user_id"`
}

func (s *Server) handleAddMembership(w http.ResponseWriter, r *http.Request) {
	var req addMembershipRequest
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}

	if req.ProductID == nil {
		s.respondError(w, http.StatusBadRequest, "product_id is required")
		return
	}
	if req.ListID == 0 {
		s.respondError(w, http.StatusBadRequest, "list_id is required")
		return
	}

	created, err := s.svc.Memberships.Add(r.Context(), &models.ListMembership{
		ProductID:      req.ProductID,
		Quantity:       req.Quantity,
		ListID:         req.ListID,
		AssignedUserID: req.AssignedUserID,
	})
	if err != nil {
		s.logger.WithError(err).Error("failed to add membership")
		s.respondError(w, http.StatusInternalServerError, "failed to add membership")
		return
	}

	s.respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleToggleMembership(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid membership id")
		return
	}

	if err := s.svc.TogglePurchased(r.Context(), id); err != nil {
		s.respondStoreError(w, err, "failed to toggle membership")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"status": "toggled"})
}

func (s *Server) handleDeleteMembership(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid membership id")
		return
	}

	if err := s.svc.Memberships.Delete(r.Context(), id); err != nil {
		s.respondStoreError(w, err, "failed to delete membership")
		return
	}

	s.respondJSON(w, http.StatusNoContent, nil)
}

// ---------------------------------------------------------------------------
// Purchases
// ---------------------------------------------------------------------------

type createPurchaseRequest struct {
	UserID       int64 `json:"user_id"`
	MembershipID int64 `json:"membership_id"`
}

func (s *Server) handleCreatePurchase(w http.ResponseWriter, r *http.Request) {
	var req createPurchaseRequest
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	if req.UserID == 0 {
		s.respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}
	if req.MembershipID == 0 {
		s.respondError(w, http.StatusBadRequest, "membership_id is required")
		return
	}

	membership, err := s.svc.Memberships.GetByID(r.Context(), req.MembershipID)
	if err != nil {
		s.respondStoreError(w, err, "failed to get membership")
		return
	}

	detailed := s.svc.LoadDetailedProducts(r.Context(), []*models.ListMembership{membership})
	if len(detailed) == 0 {
		s.respondError(w, http.StatusBadRequest, "membership has no product reference")
		return
	}

	// The list name is denormalized into the record; a missing list just
	// yields an empty name.
	listName := ""
	if list, err := s.svc.Lists.GetByID(r.Context(), membership.ListID); err == nil {
		listName = list.Name
	}

	record, err := s.svc.RecordPurchase(r.Context(), req.UserID, detailed[0], listName)
	if err != nil {
		s.logger.WithError(err).Error("failed to record purchase")
		s.respondError(w, http.StatusInternalServerError, "failed to record purchase")
		return
	}

	s.respondJSON(w, http.StatusCreated, record)
}

func (s *Server) handleGetPurchases(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	var query service.HistoryQuery

	if raw := q.Get("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "from must be YYYY-MM-DD")
			return
		}
		query.From = &t
	}
	if raw := q.Get("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "to must be YYYY-MM-DD")
			return
		}
		query.To = &t
	}
	query.ProductName = q.Get("product_name")
	query.ListName = q.Get("list_name")

	records, err := s.svc.PurchaseHistory(r.Context(), userID, query)
	if err != nil {
		s.logger.WithError(err).Error("failed to get purchase history")
		s.respondError(w, http.StatusInternalServerError, "failed to get purchase history")
		return
	}
	if records == nil {
		records = []*models.PurchaseRecord{}
	}

	s.respondJSON(w, http.StatusOK, records)
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type createUserRequest struct {
	Email           string  `json:"email"`
	Name            string  `json:"name"`
	Phone           *string `json:"phone"`
	ProfileImageURL *string `json:"profile_image_url"`
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}

	user, err := s.svc.CreateUser(r.Context(), req.Email, req.Name, req.Phone, req.ProfileImageURL)
	if err != nil {
		if _, verr := models.NewUser(req.Email, req.Name, nil, nil); verr != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.WithError(err).Error("failed to create user")
		s.respondError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	s.respondJSON(w, http.StatusCreated, user)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := s.svc.Users.GetByID(r.Context(), id)
	if err != nil {
		s.respondStoreError(w, err, "failed to get user")
		return
	}

	s.respondJSON(w, http.StatusOK, user)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req createUserRequest
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}

	user, err := models.NewUser(req.Email, req.Name, req.Phone, req.ProfileImageURL)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	user.ID = id

	updated, err := s.svc.Users.Update(r.Context(), user)
	if err != nil {
		s.respondStoreError(w, err, "failed to update user")
		return
	}

	s.respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handleUserSuggestions(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	suggestions, err := s.svc.SuggestForUser(r.Context(), id)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", id).Warn("no suggestions available")
		s.respondJSON(w, http.StatusOK, []*models.Product{})
		return
	}
	if suggestions == nil {
		suggestions = []*models.Product{}
	}

	s.respondJSON(w, http.StatusOK, suggestions)
}

// ---------------------------------------------------------------------------
// Notifications
// ---------------------------------------------------------------------------

type createNotificationRequest struct {
	UserID    int64  `json:"user_id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	TriggerAt string `json:"trigger_at"` // RFC 3339
}

func (s *Server) handleGetNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	notifications, err := s.svc.PendingNotifications(r.Context(), userID)
	if err != nil {
		s.logger.WithError(err).Error("failed to get notifications")
		s.respondError(w, http.StatusInternalServerError, "failed to get notifications")
		return
	}
	if notifications == nil {
		notifications = []*models.ScheduledNotification{}
	}

	s.respondJSON(w, http.StatusOK, notifications)
}

func (s *Server) handleCreateNotification(w http.ResponseWriter, r *http.Request) {
	var req createNotificationRequest
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}

	if req.UserID == 0 {
		s.respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}
	if strings.TrimSpace(req.Body) == "" {
		s.respondError(w, http.StatusBadRequest, "body is required")
		return
	}
	if req.TriggerAt == "" {
		s.respondError(w, http.StatusBadRequest, "trigger_at is required")
		return
	}

	triggerAt, err := time.Parse(time.RFC3339, req.TriggerAt)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "trigger_at must be RFC 3339 format")
		return
	}

	created, err := s.svc.ScheduleNotification(r.Context(), req.UserID, strings.TrimSpace(req.Title), strings.TrimSpace(req.Body), triggerAt)
	if err != nil {
		s.logger.WithError(err).Error("failed to schedule notification")
		s.respondError(w, http.StatusInternalServerError, "failed to schedule notification")
		return
	}

	s.respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleDeleteNotification(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid notification id")
		return
	}

	if err := s.svc.CancelNotification(r.Context(), id); err != nil {
		s.respondStoreError(w, err, "failed to cancel notification")
		return
	}

	s.respondJSON(w, http.StatusNoContent, nil)
}
