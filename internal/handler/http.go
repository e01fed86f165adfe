package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"
	"github.com/SergeyBogomolovv/campus-laundry/internal/middleware"
	"github.com/SergeyBogomolovv/campus-laundry/internal/service"
	"github.com/SergeyBogomolovv/campus-laundry/internal/session"
	"github.com/SergeyBogomolovv/campus-laundry/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const idempotencyHeader = "Idempotency-Key"

type OrderService interface {
	Catalog() entities.Catalog
	ListSlots(ctx context.Context) ([]entities.Slot, error)
	PlaceOrder(ctx context.Context, in service.PlaceOrderInput) (entities.Order, error)
	ListOrders(ctx context.Context, filter service.ListFilter) ([]entities.Order, error)
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, target entities.Status) (entities.Order, error)
}

// ViewPatcher pushes a successful local mutation into the caller's live streams.
type ViewPatcher interface {
	ApplyOptimistic(tokenID, orderID string, status entities.Status)
}

type OrderHandler struct {
	logger       *slog.Logger
	validate     *validator.Validate
	svc          OrderService
	views        ViewPatcher
	authenticate func(http.Handler) http.Handler
}

func NewOrderHandler(logger *slog.Logger, svc OrderService, views ViewPatcher, authenticate func(http.Handler) http.Handler) *OrderHandler {
	return &OrderHandler{
		logger:       logger.With(slog.String("handler", "orders")),
		validate:     validator.New(),
		svc:          svc,
		views:        views,
		authenticate: authenticate,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.authenticate)

		r.Get("/catalog", h.Catalog)
		r.Get("/slots", h.ListSlots)
		r.Get("/orders", h.ListOrders)
		r.Get("/orders/{order_id}", h.GetOrder)
		r.With(middleware.RequireRole(entities.RoleStudent)).Post("/orders", h.PlaceOrder)
		r.With(middleware.RequireRole(entities.RoleWorker)).Patch("/orders/{order_id}/status", h.UpdateStatus)
	})
}

// Catalog godoc
// @Summary      Service catalog
// @Description  Service types, clothing items and pickup hostels with their floors
// @Tags         catalog
// @Security     BearerAuth
// @Success      200  {object}  Catalog
// @Failure      401  {object}  utils.ErrorResponse
// @Router       /catalog [get]
func (h *OrderHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, CatalogEntityToJSON(h.svc.Catalog()), http.StatusOK)
}

// ListSlots godoc
// @Summary      Pickup slots
// @Description  Every pickup slot with its remaining capacity
// @Tags         catalog
// @Security     BearerAuth
// @Success      200  {array}   Slot
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      503  {object}  utils.ErrorResponse "Store unavailable, retryable"
// @Router       /slots [get]
func (h *OrderHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.svc.ListSlots(r.Context())
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	res := make([]Slot, 0, len(slots))
	for _, s := range slots {
		res = append(res, SlotEntityToJSON(s))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// PlaceOrder godoc
// @Summary      Place an order
// @Description  Turns the caller's cart into an order and reserves one unit of the slot
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string             false  "Deduplicates repeated submissions"
// @Param        request          body      PlaceOrderRequest  true   "Pickup location and slot"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse "Unknown slot"
// @Failure      409  {object}  utils.ErrorResponse "Slot full or duplicate request"
// @Failure      422  {object}  utils.ErrorResponse "Cart is empty"
// @Failure      503  {object}  utils.ErrorResponse
// @Router       /orders [post]
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.PlaceOrder(r.Context(), service.PlaceOrderInput{
		Pickup:         entities.PickupLocation{Hostel: req.Pickup.Hostel, Floor: req.Pickup.Floor},
		SlotLabel:      req.Slot,
		IdempotencyKey: r.Header.Get(idempotencyHeader),
	})
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// ListOrders godoc
// @Summary      List orders
// @Description  Students see their own orders, workers see every order. Newest first.
// @Tags         orders
// @Security     BearerAuth
// @Param        status  query     string  false  "Status filter or all"
// @Param        q       query     string  false  "Search by order id, hostel, owner name or roll number"
// @Success      200  {array}   Order
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      503  {object}  utils.ErrorResponse
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	filter, err := entities.ParseStatusFilter(r.URL.Query().Get("status"))
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	orders, err := h.svc.ListOrders(r.Context(), service.ListFilter{
		Status: filter,
		Query:  r.URL.Query().Get("q"),
	})
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// GetOrder godoc
// @Summary      Get an order
// @Tags         orders
// @Security     BearerAuth
// @Param        order_id  path      string  true  "Order id"
// @Success      200  {object}  Order
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      503  {object}  utils.ErrorResponse
// @Router       /orders/{order_id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")
	if err := h.validate.Var(orderID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.GetOrder(r.Context(), orderID)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// UpdateStatus godoc
// @Summary      Move an order forward
// @Description  Workers only. The target must be strictly later in the lifecycle.
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Param        order_id  path      string               true  "Order id"
// @Param        request   body      UpdateStatusRequest  true  "Target status"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Invalid transition or concurrent update"
// @Failure      503  {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/status [patch]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")

	var req UpdateStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	target, err := entities.ParseStatus(req.Status)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.svc.UpdateStatus(r.Context(), orderID, target)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	if sess, ok := session.FromContext(r.Context()); ok {
		h.views.ApplyOptimistic(sess.TokenID, order.ID, order.Status)
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}
