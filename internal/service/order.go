package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"
	"github.com/SergeyBogomolovv/campus-laundry/internal/session"
	"github.com/SergeyBogomolovv/campus-laundry/pkg/trm"
	"github.com/SergeyBogomolovv/campus-laundry/pkg/utils"

	"github.com/google/uuid"
)

const idempotencyKeyTTL = 24 * time.Hour

type OrderRepo interface {
	ListSlots(ctx context.Context) ([]entities.Slot, error)
	// ReserveSlot fails with ErrSlotFull once the slot reached its capacity.
	ReserveSlot(ctx context.Context, label string) error
	SaveOrder(ctx context.Context, order entities.Order) error
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	ListOrdersByOwner(ctx context.Context, ownerID uuid.UUID) ([]entities.Order, error)
	ListAllOrders(ctx context.Context) ([]entities.Order, error)
	// UpdateStatus is a compare-and-set on the stored status.
	UpdateStatus(ctx context.Context, orderID string, from, to entities.Status, at time.Time) error
}

type IdempotencyStore interface {
	ClaimIdempotencyKey(ctx context.Context, key string, ttl time.Duration) (bool, error)
	ReleaseIdempotencyKey(ctx context.Context, key string) error
}

type Publisher interface {
	Publish(ctx context.Context, event entities.OrderEvent) error
}

type Carts interface {
	Lines(userID uuid.UUID) []entities.CartLineItem
	// RemoveLines drops only the given lines, other lines of the cart stay.
	RemoveLines(userID uuid.UUID, lineIDs []string)
}

type OrderCache interface {
	Get(key string) (entities.Order, bool)
	Set(key string, value entities.Order)
	Delete(key string)
}

type PlaceOrderInput struct {
	Pickup    entities.PickupLocation
	SlotLabel string
	// IdempotencyKey is optional. A repeated key fails with ErrDuplicateRequest.
	IdempotencyKey string
}

type ListFilter struct {
	Status entities.StatusFilter
	Query  string
}

type orderService struct {
	logger      *slog.Logger
	txManager   trm.Manager
	repo        OrderRepo
	idempotency IdempotencyStore
	carts       Carts
	cache       OrderCache
	publisher   Publisher
	catalog     entities.Catalog
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	idempotency IdempotencyStore,
	carts Carts,
	cache OrderCache,
	publisher Publisher,
) *orderService {
	return &orderService{
		logger:      logger.With(slog.String("service", "order")),
		txManager:   txManager,
		repo:        repo,
		idempotency: idempotency,
		carts:       carts,
		cache:       cache,
		publisher:   publisher,
		catalog:     entities.DefaultCatalog(),
	}
}

func (s *orderService) Catalog() entities.Catalog {
	return s.catalog
}

// ListSlots returns pickup slots in display order with their remaining capacity.
func (s *orderService) ListSlots(ctx context.Context) ([]entities.Slot, error) {
	tracker, err := s.loadSlots(ctx)
	if err != nil {
		return nil, err
	}
	return tracker.Slots(), nil
}

// PlaceOrder checks out the caller's cart. Validation happens before any write; the
// slot reservation and the order rows are written in one transaction.
func (s *orderService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (entities.Order, error) {
	sess, err := session.Require(ctx)
	if err != nil {
		return entities.Order{}, err
	}
	if !sess.Role.CanPlaceOrders() {
		return entities.Order{}, fmt.Errorf("%w: only students place orders", entities.ErrForbidden)
	}

	lines := s.carts.Lines(sess.UserID)
	if len(lines) == 0 {
		return entities.Order{}, entities.ErrEmptyCart
	}
	if err := in.Pickup.Validate(); err != nil {
		return entities.Order{}, err
	}

	tracker, err := s.loadSlots(ctx)
	if err != nil {
		return entities.Order{}, err
	}
	slot, err := tracker.Get(in.SlotLabel)
	if err != nil {
		return entities.Order{}, err
	}
	if !slot.IsAvailable() {
		slotFullRejections.WithLabelValues(slot.Label).Inc()
		return entities.Order{}, fmt.Errorf("%w: %s", entities.ErrSlotFull, slot.Label)
	}

	now := time.Now().UTC()
	order, err := entities.NewOrder(entities.NewOrderID(now), sess.UserID, lines, in.Pickup, slot.Label, now)
	if err != nil {
		return entities.Order{}, err
	}

	if in.IdempotencyKey != "" {
		key := sess.UserID.String() + ":" + in.IdempotencyKey
		claimed, claimErr := s.idempotency.ClaimIdempotencyKey(ctx, key, idempotencyKeyTTL)
		if claimErr != nil {
			return entities.Order{}, storeError(claimErr)
		}
		if !claimed {
			return entities.Order{}, entities.ErrDuplicateRequest
		}
		defer func() {
			if err == nil {
				return
			}
			if rErr := s.idempotency.ReleaseIdempotencyKey(context.WithoutCancel(ctx), key); rErr != nil {
				s.logger.WarnContext(ctx, "failed to release idempotency key", slog.Any("error", rErr))
			}
		}()
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.ReserveSlot(ctx, order.SlotLabel); err != nil {
			return err
		}
		return s.repo.SaveOrder(ctx, order)
	})
	if errors.Is(err, entities.ErrSlotFull) {
		slotFullRejections.WithLabelValues(order.SlotLabel).Inc()
	}
	if err != nil {
		err = storeError(err, entities.ErrSlotFull, entities.ErrSlotNotFound)
		return entities.Order{}, err
	}

	s.carts.RemoveLines(sess.UserID, lineIDs(lines))
	ordersPlaced.Inc()
	s.publish(ctx, entities.NewOrderEvent(entities.OrderInserted, order, now))

	s.logger.InfoContext(ctx, "order placed",
		slog.String("order_id", order.ID),
		slog.String("slot", order.SlotLabel),
		slog.Int("items", order.TotalItems()),
	)
	return order, nil
}

// ListOrders returns the orders visible to the caller, newest first. Workers get every
// order with owner details.
func (s *orderService) ListOrders(ctx context.Context, filter ListFilter) ([]entities.Order, error) {
	sess, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}

	var orders []entities.Order
	err = utils.Retry(ctx, utils.DefaultRetryConfig, func() error {
		var err error
		if sess.Role == entities.RoleWorker {
			orders, err = s.repo.ListAllOrders(ctx)
		} else {
			orders, err = s.repo.ListOrdersByOwner(ctx, sess.UserID)
		}
		return err
	})
	if err != nil {
		return nil, storeError(err)
	}

	return entities.FilterOrders(orders, filter.Status, filter.Query), nil
}

func (s *orderService) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	sess, err := session.Require(ctx)
	if err != nil {
		return entities.Order{}, err
	}

	order, ok := s.cache.Get(orderID)
	if ok {
		order = order.Clone()
	} else {
		err = utils.Retry(ctx, utils.DefaultRetryConfig, func() error {
			var err error
			order, err = s.repo.GetOrder(ctx, orderID)
			return err
		}, entities.ErrOrderNotFound)
		if err != nil {
			return entities.Order{}, storeError(err, entities.ErrOrderNotFound)
		}
		s.cache.Set(orderID, order.Clone())
	}

	if !sess.CanSee(order) {
		return entities.Order{}, fmt.Errorf("%w: order %s belongs to another student", entities.ErrForbidden, orderID)
	}
	return visibleTo(sess, order), nil
}

// UpdateStatus moves an order forward. Only workers may do it, and the write only
// lands if nobody changed the status since it was read.
func (s *orderService) UpdateStatus(ctx context.Context, orderID string, target entities.Status) (entities.Order, error) {
	sess, err := session.Require(ctx)
	if err != nil {
		return entities.Order{}, err
	}
	if !sess.Role.CanUpdateStatus() {
		return entities.Order{}, fmt.Errorf("%w: only workers update status", entities.ErrForbidden)
	}
	if !target.IsValid() {
		return entities.Order{}, entities.ErrInvalidStatus
	}

	var order entities.Order
	err = utils.Retry(ctx, utils.DefaultRetryConfig, func() error {
		var err error
		order, err = s.repo.GetOrder(ctx, orderID)
		return err
	}, entities.ErrOrderNotFound)
	if err != nil {
		return entities.Order{}, storeError(err, entities.ErrOrderNotFound)
	}

	prev := order.Status
	now := time.Now().UTC()
	if err := order.ApplyTransition(target, now); err != nil {
		return entities.Order{}, err
	}

	err = s.repo.UpdateStatus(ctx, orderID, prev, target, now)
	if errors.Is(err, entities.ErrStatusConflict) {
		statusConflicts.Inc()
		s.cache.Delete(orderID)
	}
	if err != nil {
		return entities.Order{}, storeError(err, entities.ErrStatusConflict, entities.ErrOrderNotFound)
	}

	s.cache.Set(orderID, order.Clone())
	statusTransitions.WithLabelValues(prev.String(), target.String()).Inc()
	s.publish(ctx, entities.NewOrderEvent(entities.OrderUpdated, order, now))

	s.logger.InfoContext(ctx, "order status updated",
		slog.String("order_id", orderID),
		slog.String("from", prev.String()),
		slog.String("to", target.String()),
	)
	return order, nil
}

func (s *orderService) loadSlots(ctx context.Context) (*entities.SlotTracker, error) {
	var slots []entities.Slot
	err := utils.Retry(ctx, utils.DefaultRetryConfig, func() error {
		var err error
		slots, err = s.repo.ListSlots(ctx)
		return err
	})
	if err != nil {
		return nil, storeError(err)
	}
	return entities.NewSlotTracker(slots), nil
}

// publish is best effort: the order is already committed and readers reconcile on
// their next fetch.
func (s *orderService) publish(ctx context.Context, event entities.OrderEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order event",
			slog.String("order_id", event.OrderID),
			slog.String("type", string(event.Type)),
			slog.Any("error", err),
		)
	}
}

// Reconcile drops the cached copy of a changed order. It runs for every change
// notification, including those from other instances.
func (s *orderService) Reconcile(event entities.OrderEvent) {
	if event.OrderID == "" {
		return
	}
	if _, ok := s.cache.Get(event.OrderID); !ok {
		return
	}
	s.cache.Delete(event.OrderID)
	s.logger.Debug("cached order invalidated",
		slog.String("order_id", event.OrderID),
		slog.String("type", string(event.Type)),
	)
}

func lineIDs(lines []entities.CartLineItem) []string {
	ids := make([]string, len(lines))
	for i, l := range lines {
		ids[i] = l.ID
	}
	return ids
}

func visibleTo(sess entities.Session, order entities.Order) entities.Order {
	if sess.Role != entities.RoleWorker {
		order.Owner = nil
	}
	return order
}
