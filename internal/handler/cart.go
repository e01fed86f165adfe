package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"
	"github.com/SergeyBogomolovv/campus-laundry/internal/middleware"
	"github.com/SergeyBogomolovv/campus-laundry/internal/service"
	"github.com/SergeyBogomolovv/campus-laundry/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CartService interface {
	Get(ctx context.Context) (service.CartSnapshot, error)
	AddItem(ctx context.Context, serviceType entities.ServiceType, item string) (service.CartSnapshot, error)
	RemoveItem(ctx context.Context, serviceType entities.ServiceType, item string) (service.CartSnapshot, error)
	Commit(ctx context.Context) (entities.CartLineItem, error)
	RemoveLine(ctx context.Context, lineID string) (service.CartSnapshot, error)
	Clear(ctx context.Context) error
}

type CartHandler struct {
	logger       *slog.Logger
	validate     *validator.Validate
	svc          CartService
	authenticate func(http.Handler) http.Handler
}

func NewCartHandler(logger *slog.Logger, svc CartService, authenticate func(http.Handler) http.Handler) *CartHandler {
	return &CartHandler{
		logger:       logger.With(slog.String("handler", "cart")),
		validate:     validator.New(),
		svc:          svc,
		authenticate: authenticate,
	}
}

func (h *CartHandler) Init(r chi.Router) {
	r.Route("/cart", func(r chi.Router) {
		r.Use(h.authenticate, middleware.RequireRole(entities.RoleStudent))

		r.Get("/", h.Get)
		r.Delete("/", h.Clear)
		r.Post("/items", h.AddItem)
		r.Delete("/items", h.RemoveItem)
		r.Post("/commit", h.Commit)
		r.Delete("/lines/{line_id}", h.RemoveLine)
	})
}

// Get godoc
// @Summary      Current cart
// @Tags         cart
// @Security     BearerAuth
// @Success      200  {object}  Cart
// @Failure      403  {object}  utils.ErrorResponse
// @Router       /cart [get]
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	cart, err := h.svc.Get(r.Context())
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	utils.WriteJSON(w, CartSnapshotToJSON(cart), http.StatusOK)
}

// AddItem godoc
// @Summary      Increment an item of the working selection
// @Description  Choosing another service type starts a new selection
// @Tags         cart
// @Security     BearerAuth
// @Accept       json
// @Param        request  body      CartItemRequest  true  "Service type and item"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Router       /cart/items [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	h.changeItem(w, r, h.svc.AddItem)
}

// RemoveItem godoc
// @Summary      Decrement an item of the working selection
// @Tags         cart
// @Security     BearerAuth
// @Accept       json
// @Param        request  body      CartItemRequest  true  "Service type and item"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Router       /cart/items [delete]
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.changeItem(w, r, h.svc.RemoveItem)
}

func (h *CartHandler) changeItem(
	w http.ResponseWriter,
	r *http.Request,
	change func(ctx context.Context, serviceType entities.ServiceType, item string) (service.CartSnapshot, error),
) {
	var req CartItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	cart, err := change(r.Context(), entities.ServiceType(req.ServiceType), req.Item)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	utils.WriteJSON(w, CartSnapshotToJSON(cart), http.StatusOK)
}

// Commit godoc
// @Summary      Commit the working selection as a line item
// @Tags         cart
// @Security     BearerAuth
// @Success      201  {object}  LineItem
// @Failure      422  {object}  utils.ErrorResponse "Nothing selected"
// @Router       /cart/commit [post]
func (h *CartHandler) Commit(w http.ResponseWriter, r *http.Request) {
	line, err := h.svc.Commit(r.Context())
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	utils.WriteJSON(w, CartLineEntityToJSON(line), http.StatusCreated)
}

// RemoveLine godoc
// @Summary      Remove a committed line item
// @Tags         cart
// @Security     BearerAuth
// @Param        line_id  path      string  true  "Line item id"
// @Success      200  {object}  Cart
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /cart/lines/{line_id} [delete]
func (h *CartHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	cart, err := h.svc.RemoveLine(r.Context(), chi.URLParam(r, "line_id"))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	utils.WriteJSON(w, CartSnapshotToJSON(cart), http.StatusOK)
}

// Clear godoc
// @Summary      Empty the cart
// @Tags         cart
// @Security     BearerAuth
// @Success      204
// @Router       /cart [delete]
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Clear(r.Context()); err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
