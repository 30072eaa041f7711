package repo

import (
	"database/sql"
	"time"

	"github.com/PasanSasmika/Fashion-Backend/internal/entities"
)

type Order struct {
	OrderID     string         `db:"order_id"`
	UserID      string         `db:"user_id"`
	TotalAmount float64        `db:"total_amount"`
	Status      string         `db:"status"`
	PaymentID   sql.NullString `db:"payment_id"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type OrderItem struct {
	OrderID   string  `db:"order_id"`
	ProductID string  `db:"product_id"`
	Size      string  `db:"size"`
	Quantity  int     `db:"quantity"`
	Price     float64 `db:"price"`
}

type OrderError struct {
	OrderID   string    `db:"order_id"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}

type User struct {
	UserID    string         `db:"user_id"`
	FirstName string         `db:"first_name"`
	LastName  string         `db:"last_name"`
	Email     string         `db:"email"`
	Phone     sql.NullString `db:"phone"`
	Role      string         `db:"role"`
}

type ProductName struct {
	ProductID string `db:"product_id"`
	Name      string `db:"name"`
}

func ItemToEntity(i OrderItem) entities.LineItem {
	return entities.LineItem{
		ProductID: i.ProductID,
		Size:      i.Size,
		Quantity:  i.Quantity,
		Price:     i.Price,
	}
}

func ErrorToEntity(e OrderError) entities.NotificationError {
	return entities.NotificationError{
		Message:   e.Message,
		CreatedAt: e.CreatedAt,
	}
}

func UserToEntity(u User) entities.User {
	return entities.User{
		UserID:    u.UserID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     nullStringToString(u.Phone),
		Role:      u.Role,
	}
}

func OrderToEntity(o Order, items []OrderItem, errs []OrderError) entities.Order {
	order := entities.Order{
		OrderID:     o.OrderID,
		UserID:      o.UserID,
		TotalAmount: o.TotalAmount,
		Status:      entities.OrderStatus(o.Status),
		PaymentID:   nullStringToString(o.PaymentID),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.LineItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	if len(errs) > 0 {
		order.Errors = make([]entities.NotificationError, 0, len(errs))
		for _, e := range errs {
			order.Errors = append(order.Errors, ErrorToEntity(e))
		}
	}

	return order
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
