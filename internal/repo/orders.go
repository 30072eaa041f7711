package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/PasanSasmika/Fashion-Backend/internal/entities"
	"github.com/PasanSasmika/Fashion-Backend/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type ordersRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewOrdersRepo(db *sqlx.DB) *ordersRepo {
	return &ordersRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateOrder persists the order row and its items. Callers are expected to
// wrap it in trm.Manager.Do so both land in one transaction.
func (r *ordersRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns("order_id", "user_id", "total_amount", "status", "created_at", "updated_at").
		Values(o.OrderID, o.UserID, o.TotalAmount, string(o.Status), o.CreatedAt, o.UpdatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	if len(o.Items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "product_id", "size", "quantity", "price")
	for _, it := range o.Items {
		q = q.Values(o.OrderID, it.ProductID, it.Size, it.Quantity, it.Price)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

func (r *ordersRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(
		"order_id", "user_id", "total_amount", "status",
		"payment_id", "created_at", "updated_at").
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select("order_id", "product_id", "size", "quantity", "price").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	query, args = r.qb.Select("order_id", "message", "created_at").
		From("order_errors").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id").
		MustSql()

	var errs []OrderError
	if err := r.selectContext(ctx, &errs, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order errors: %w", err)
	}

	return OrderToEntity(order, items, errs), nil
}

func (r *ordersRepo) ListOrders(ctx context.Context, limit, offset int) ([]entities.Order, error) {
	q := r.qb.Select(
		"order_id", "user_id", "total_amount", "status",
		"payment_id", "created_at", "updated_at").
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	return r.listOrders(ctx, q)
}

func (r *ordersRepo) ListOrdersByUser(ctx context.Context, userID string, limit, offset int) ([]entities.Order, error) {
	q := r.qb.Select(
		"order_id", "user_id", "total_amount", "status",
		"payment_id", "created_at", "updated_at").
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	return r.listOrders(ctx, q)
}

func (r *ordersRepo) listOrders(ctx context.Context, q sq.SelectBuilder) ([]entities.Order, error) {
	query, args := q.MustSql()

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

	query, args = r.qb.Select("order_id", "product_id", "size", "quantity", "price").
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	itemsMap := make(map[string][]OrderItem, len(ids))
	for _, it := range items {
		itemsMap[it.OrderID] = append(itemsMap[it.OrderID], it)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, itemsMap[o.OrderID], nil))
	}
	return result, nil
}

// MarkPaid transitions the order to Paid only if it is still Pending and
// records the gateway transaction id. It reports whether the transition
// happened, so concurrent duplicate callbacks need no locks: exactly one
// delivery observes true.
func (r *ordersRepo) MarkPaid(ctx context.Context, orderID, paymentID string) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(entities.OrderStatusPaid)).
		Set("payment_id", paymentID).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"order_id": orderID, "status": string(entities.OrderStatusPending)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to mark order paid: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected == 1, nil
}

// MarkFailed is the failure-path counterpart of MarkPaid.
func (r *ordersRepo) MarkFailed(ctx context.Context, orderID string) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(entities.OrderStatusFailed)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"order_id": orderID, "status": string(entities.OrderStatusPending)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to mark order failed: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected == 1, nil
}

// AppendNotificationError records a delivery failure in the order's
// append-only error log.
func (r *ordersRepo) AppendNotificationError(ctx context.Context, orderID, message string) error {
	query, args := r.qb.Insert("order_errors").
		Columns("order_id", "message").
		Values(orderID, message).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to append notification error: %w", err)
	}
	return nil
}

func (r *ordersRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *ordersRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *ordersRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
