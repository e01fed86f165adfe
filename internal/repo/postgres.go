package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"
	"github.com/SergeyBogomolovv/campus-laundry/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"o.order_id", "o.user_id", "o.hostel", "o.floor",
	"o.slot_label", "o.status", "o.created_at", "o.updated_at",
}

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) ListSlots(ctx context.Context) ([]entities.Slot, error) {
	query, args := r.qb.Select("label", "total_capacity", "booked_count").
		From("slots").
		OrderBy("position", "label").
		MustSql()

	var slots []Slot
	if err := r.selectContext(ctx, &slots, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select slots: %w", err)
	}

	result := make([]entities.Slot, 0, len(slots))
	for _, s := range slots {
		result = append(result, SlotToEntity(s))
	}
	return result, nil
}

// ReserveSlot books one place with a conditional increment, so concurrent checkouts
// can never push a slot over its capacity.
func (r *postgresRepo) ReserveSlot(ctx context.Context, label string) error {
	query, args := r.qb.Update("slots").
		Set("booked_count", sq.Expr("booked_count + 1")).
		Where(sq.Eq{"label": label}).
		Where("booked_count < total_capacity").
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to reserve slot: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to reserve slot: %w", err)
	}
	if affected > 0 {
		return nil
	}

	exists, err := r.exists(ctx, "slots", sq.Eq{"label": label})
	if err != nil {
		return fmt.Errorf("failed to check slot: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", entities.ErrSlotNotFound, label)
	}
	return fmt.Errorf("%w: %s", entities.ErrSlotFull, label)
}

func (r *postgresRepo) SaveOrder(ctx context.Context, order entities.Order) error {
	o, items := OrderToRows(order)

	query, args := r.qb.Insert("orders").
		Columns("order_id", "user_id", "hostel", "floor", "slot_label", "status", "created_at", "updated_at").
		Values(o.OrderID, o.UserID, o.Hostel, o.Floor, o.SlotLabel, o.Status, o.CreatedAt, o.UpdatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	if len(items) == 0 {
		return nil
	}

	ib := r.qb.Insert("line_items").
		Columns("order_id", "position", "service_type", "item", "quantity")
	for _, it := range items {
		ib = ib.Values(it.OrderID, it.Position, it.ServiceType, it.Item, it.Quantity)
	}
	query, args = ib.MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert line items: %w", err)
	}
	return nil
}

// GetOrder returns the order with its owner's name and registration number.
func (r *postgresRepo) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.ordersWithOwner().
		Where(sq.Eq{"o.order_id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.lineItems(ctx, []string{orderID})
	if err != nil {
		return entities.Order{}, err
	}
	return OrderToEntity(order, items[orderID])
}

// ListOrdersByOwner returns the owner's orders, newest first.
func (r *postgresRepo) ListOrdersByOwner(ctx context.Context, ownerID uuid.UUID) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders o").
		Where(sq.Eq{"o.user_id": ownerID}).
		OrderBy("o.created_at DESC", "o.order_id DESC").
		MustSql()

	return r.listOrders(ctx, query, args...)
}

// ListAllOrders returns every order with owner details, newest first.
func (r *postgresRepo) ListAllOrders(ctx context.Context) ([]entities.Order, error) {
	query, args := r.ordersWithOwner().
		OrderBy("o.created_at DESC", "o.order_id DESC").
		MustSql()

	return r.listOrders(ctx, query, args...)
}

// UpdateStatus moves the order from one status to another. The update only applies
// while the stored status still equals from.
func (r *postgresRepo) UpdateStatus(ctx context.Context, orderID string, from, to entities.Status, at time.Time) error {
	query, args := r.qb.Update("orders").
		Set("status", to.String()).
		Set("updated_at", at).
		Where(sq.Eq{"order_id": orderID, "status": from.String()}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	if affected > 0 {
		return nil
	}

	exists, err := r.exists(ctx, "orders", sq.Eq{"order_id": orderID})
	if err != nil {
		return fmt.Errorf("failed to check order: %w", err)
	}
	if !exists {
		return entities.ErrOrderNotFound
	}
	return fmt.Errorf("%w: order %s is no longer %s", entities.ErrStatusConflict, orderID, from)
}

func (r *postgresRepo) ordersWithOwner() sq.SelectBuilder {
	return r.qb.Select(append(orderColumns, "u.full_name", "u.reg_number")...).
		From("orders o").
		LeftJoin("users u ON u.id = o.user_id")
}

func (r *postgresRepo) listOrders(ctx context.Context, query string, args ...any) ([]entities.Order, error) {
	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.OrderID
	}
	items, err := r.lineItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		order, err := OrderToEntity(o, items[o.OrderID])
		if err != nil {
			return nil, err
		}
		result = append(result, order)
	}
	return result, nil
}

func (r *postgresRepo) lineItems(ctx context.Context, orderIDs []string) (map[string][]LineItem, error) {
	query, args := r.qb.Select("order_id", "position", "service_type", "item", "quantity").
		From("line_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "position", "item").
		MustSql()

	var items []LineItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select line items: %w", err)
	}

	result := make(map[string][]LineItem, len(orderIDs))
	for _, it := range items {
		result[it.OrderID] = append(result[it.OrderID], it)
	}
	return result, nil
}

func (r *postgresRepo) exists(ctx context.Context, table string, where sq.Eq) (bool, error) {
	query, args := r.qb.Select("1").From(table).Where(where).Limit(1).MustSql()

	var one int
	err := r.getContext(ctx, &one, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
