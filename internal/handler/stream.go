package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"
	"github.com/SergeyBogomolovv/campus-laundry/internal/projection"
	"github.com/SergeyBogomolovv/campus-laundry/internal/service"
	"github.com/SergeyBogomolovv/campus-laundry/internal/session"
	"github.com/SergeyBogomolovv/campus-laundry/pkg/utils"

	"github.com/go-chi/chi/v5"
)

const (
	eventOrders = "orders"
	eventClosed = "closed"
	eventPing   = "ping"
)

type OrderLister interface {
	ListOrders(ctx context.Context, filter service.ListFilter) ([]entities.Order, error)
}

type ViewRegistry interface {
	Register(tokenID string, v *projection.View) (release func())
}

type StreamHandler struct {
	logger       *slog.Logger
	orders       OrderLister
	feed         projection.Subscriber
	views        ViewRegistry
	heartbeat    time.Duration
	authenticate func(http.Handler) http.Handler
}

func NewStreamHandler(
	logger *slog.Logger,
	orders OrderLister,
	feed projection.Subscriber,
	views ViewRegistry,
	heartbeat time.Duration,
	authenticate func(http.Handler) http.Handler,
) *StreamHandler {
	return &StreamHandler{
		logger:       logger.With(slog.String("handler", "stream")),
		orders:       orders,
		feed:         feed,
		views:        views,
		heartbeat:    heartbeat,
		authenticate: authenticate,
	}
}

func (h *StreamHandler) Init(r chi.Router) {
	r.With(h.authenticate).Get("/orders/stream", h.Stream)
}

// Stream godoc
// @Summary      Live order list
// @Description  Server-sent events. Every "orders" event carries the full filtered list visible to the caller.
// @Description  A "closed" event is sent when the session signs out.
// @Tags         orders
// @Security     BearerAuth
// @Produce      text/event-stream
// @Param        status  query  string  false  "Status filter or all"
// @Param        q       query  string  false  "Search query"
// @Success      200  {array}   Order
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      401  {object}  utils.ErrorResponse
// @Router       /orders/stream [get]
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sess, err := session.Require(ctx)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	filter, err := entities.ParseStatusFilter(r.URL.Query().Get("status"))
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	query := r.URL.Query().Get("q")

	if _, ok := w.(http.Flusher); !ok {
		utils.WriteError(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	view := projection.NewView(h.logger, sess, func(ctx context.Context) ([]entities.Order, error) {
		return h.orders.ListOrders(ctx, service.ListFilter{Status: entities.StatusAll})
	}, h.feed)
	defer view.Close()

	release := h.views.Register(sess.TokenID, view)
	defer release()

	if err := view.Bootstrap(ctx); err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	activeStreams.Inc()
	defer activeStreams.Dec()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	// the bootstrap fetch already signalled a change, the first send covers it
	select {
	case <-view.Changes():
	default:
	}
	if err := h.send(w, view, filter, query); err != nil {
		return
	}

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-view.Changes():
			if !ok {
				utils.WriteEvent(w, eventClosed, struct{}{})
				return
			}
			if err := h.send(w, view, filter, query); err != nil {
				return
			}
		case <-ticker.C:
			if err := utils.WriteEvent(w, eventPing, struct{}{}); err != nil {
				return
			}
		}
	}
}

func (h *StreamHandler) send(w http.ResponseWriter, view *projection.View, filter entities.StatusFilter, query string) error {
	err := utils.WriteEvent(w, eventOrders, OrdersEntityToJSON(view.Orders(filter, query)))
	if err != nil {
		h.logger.Debug("stream write failed", slog.Any("error", err))
	}
	return err
}
