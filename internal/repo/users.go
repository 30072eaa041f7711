package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/PasanSasmika/Fashion-Backend/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type usersRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewUsersRepo(db *sqlx.DB) *usersRepo {
	return &usersRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *usersRepo) GetUserByID(ctx context.Context, userID string) (entities.User, error) {
	query, args := r.qb.Select("user_id", "first_name", "last_name", "email", "phone", "role").
		From("users").
		Where(sq.Eq{"user_id": userID}).
		MustSql()

	var user User
	err := r.db.GetContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return UserToEntity(user), nil
}
