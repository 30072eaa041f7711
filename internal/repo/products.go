package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/PasanSasmika/Fashion-Backend/internal/entities"
	"github.com/PasanSasmika/Fashion-Backend/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type productsRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewProductsRepo(db *sqlx.DB) *productsRepo {
	return &productsRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// DecrementStock atomically subtracts qty from the (productID, size) stock
// counter. The decrement is unconditional: nothing reserves stock at
// order-creation time, so under heavy concurrency the counter can go
// negative. entities.ErrProductSizeNotFound is returned when no such
// variant exists.
func (r *productsRepo) DecrementStock(ctx context.Context, productID, size string, qty int) error {
	query, args := r.qb.Update("product_sizes").
		Set("stock", sq.Expr("stock - ?", qty)).
		Where(sq.Eq{"product_id": productID, "size": size}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return entities.ErrProductSizeNotFound
	}
	return nil
}

// ProductNames bulk-loads display names for the given product ids.
func (r *productsRepo) ProductNames(ctx context.Context, productIDs []string) (map[string]string, error) {
	if len(productIDs) == 0 {
		return map[string]string{}, nil
	}

	query, args := r.qb.Select("product_id", "name").
		From("products").
		Where(sq.Eq{"product_id": productIDs}).
		MustSql()

	var rows []ProductName
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select product names: %w", err)
	}

	names := make(map[string]string, len(rows))
	for _, row := range rows {
		names[row.ProductID] = row.Name
	}
	return names, nil
}

func (r *productsRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *productsRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
