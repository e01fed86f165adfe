package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"
	"github.com/SergeyBogomolovv/campus-laundry/internal/session"

	"github.com/google/uuid"
)

type CartStore interface {
	Get(key string) (*entities.Cart, bool)
	Set(key string, value *entities.Cart)
	Delete(key string)
}

// CartSnapshot is a read-only copy of a cart.
type CartSnapshot struct {
	ActiveService  entities.ServiceType
	Selection      map[string]int
	SelectionTotal int
	Lines          []entities.CartLineItem
	LineTotal      int
}

type cartService struct {
	logger *slog.Logger
	store  CartStore

	// carts are not safe for concurrent use, every access goes through mu
	mu sync.Mutex
}

func NewCartService(logger *slog.Logger, store CartStore) *cartService {
	return &cartService{
		logger: logger.With(slog.String("service", "cart")),
		store:  store,
	}
}

func (s *cartService) Get(ctx context.Context) (CartSnapshot, error) {
	return s.withCart(ctx, func(c *entities.Cart) error { return nil })
}

func (s *cartService) AddItem(ctx context.Context, serviceType entities.ServiceType, item string) (CartSnapshot, error) {
	if err := validateItem(serviceType, item); err != nil {
		return CartSnapshot{}, err
	}
	return s.withCart(ctx, func(c *entities.Cart) error {
		c.AddItem(serviceType, item)
		return nil
	})
}

func (s *cartService) RemoveItem(ctx context.Context, serviceType entities.ServiceType, item string) (CartSnapshot, error) {
	if err := validateItem(serviceType, item); err != nil {
		return CartSnapshot{}, err
	}
	return s.withCart(ctx, func(c *entities.Cart) error {
		c.RemoveItem(serviceType, item)
		return nil
	})
}

// Commit turns the working selection into a pending line item.
func (s *cartService) Commit(ctx context.Context) (entities.CartLineItem, error) {
	var line entities.CartLineItem
	_, err := s.withCart(ctx, func(c *entities.Cart) error {
		var err error
		line, err = c.Commit()
		return err
	})
	return line, err
}

func (s *cartService) RemoveLine(ctx context.Context, lineID string) (CartSnapshot, error) {
	return s.withCart(ctx, func(c *entities.Cart) error {
		if !c.RemoveLine(lineID) {
			return fmt.Errorf("%w: %s", entities.ErrLineNotFound, lineID)
		}
		return nil
	})
}

func (s *cartService) Clear(ctx context.Context) error {
	sess, err := studentSession(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.Delete(sess.UserID.String())
	return nil
}

// Lines returns the committed lines of the user's cart.
func (s *cartService) Lines(userID uuid.UUID) []entities.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.store.Get(userID.String())
	if !ok {
		return nil
	}
	return c.Lines()
}

// RemoveLines drops the checked out lines. Lines committed after checkout read the
// cart and the working selection stay.
func (s *cartService) RemoveLines(userID uuid.UUID, lineIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := userID.String()
	c, ok := s.store.Get(key)
	if !ok {
		return
	}
	for _, id := range lineIDs {
		c.RemoveLine(id)
	}
	if c.IsEmpty() && c.TotalCount() == 0 {
		s.store.Delete(key)
		return
	}
	s.store.Set(key, c)
}

func (s *cartService) withCart(ctx context.Context, fn func(c *entities.Cart) error) (CartSnapshot, error) {
	sess, err := studentSession(ctx)
	if err != nil {
		return CartSnapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := sess.UserID.String()
	c, ok := s.store.Get(key)
	if !ok {
		c = entities.NewCart()
	}
	if err := fn(c); err != nil {
		return CartSnapshot{}, err
	}
	s.store.Set(key, c)

	return CartSnapshot{
		ActiveService:  c.ActiveService(),
		Selection:      c.Selection(),
		SelectionTotal: c.TotalCount(),
		Lines:          c.Lines(),
		LineTotal:      c.LineTotal(),
	}, nil
}

func studentSession(ctx context.Context) (entities.Session, error) {
	sess, err := session.Require(ctx)
	if err != nil {
		return entities.Session{}, err
	}
	if !sess.Role.CanPlaceOrders() {
		return entities.Session{}, fmt.Errorf("%w: only students have a cart", entities.ErrForbidden)
	}
	return sess, nil
}

func validateItem(serviceType entities.ServiceType, item string) error {
	if !serviceType.IsValid() {
		return fmt.Errorf("%w: service %q", entities.ErrUnknownItem, serviceType)
	}
	if !entities.IsClothingItem(item) {
		return fmt.Errorf("%w: item %q", entities.ErrUnknownItem, item)
	}
	return nil
}
