package entities

import (
	"errors"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "Pending"
	OrderStatusPaid    OrderStatus = "Paid"
	OrderStatusFailed  OrderStatus = "Failed"
)

var validNext = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPending: {OrderStatusPaid: true, OrderStatusFailed: true},
	OrderStatusPaid:    {},
	OrderStatusFailed:  {},
}

func (s OrderStatus) CanTransition(to OrderStatus) bool {
	return validNext[s][to]
}

// Terminal reports whether the order has already been settled.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusPaid || s == OrderStatusFailed
}

type LineItem struct {
	ProductID string
	Size      string
	Quantity  int
	Price     float64

	// ProductName is denormalized for display only, empty unless populated
	ProductName string
}

// NotificationError is an entry in the append-only delivery error log
type NotificationError struct {
	Message   string
	CreatedAt time.Time
}

type Order struct {
	OrderID     string
	UserID      string
	Items       []LineItem
	TotalAmount float64
	Status      OrderStatus

	// PaymentID is set only on the transition to Paid
	PaymentID string

	CreatedAt time.Time
	UpdatedAt time.Time

	Errors []NotificationError
}

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrNoItems          = errors.New("order has no items")
	ErrUnauthenticated  = errors.New("user not authenticated")
)
