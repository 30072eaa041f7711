package handler

import (
	"time"

	"github.com/PasanSasmika/Fashion-Backend/internal/entities"
	"github.com/PasanSasmika/Fashion-Backend/internal/payhere"
)

// CreateOrderRequest is the storefront checkout payload
type CreateOrderRequest struct {
	Items       []LineItem `json:"items" validate:"required,min=1,dive"`
	TotalAmount float64    `json:"totalAmount" validate:"gt=0"`
}

// LineItem is one ordered product size
type LineItem struct {
	ProductID string  `json:"productId" validate:"required"`
	Size      string  `json:"size" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	Price     float64 `json:"price" validate:"gte=0"`
}

// CreateOrderResponse carries the signed gateway request back to the client
type CreateOrderResponse struct {
	Success     bool                    `json:"success"`
	PaymentData payhere.CheckoutRequest `json:"paymentData"`
	OrderID     string                  `json:"orderId"`
}

// Order represents an order for API responses
type Order struct {
	OrderID     string              `json:"orderId"`
	UserID      string              `json:"userId"`
	Items       []OrderItem         `json:"items"`
	TotalAmount float64             `json:"totalAmount"`
	Status      string              `json:"status"`
	PaymentID   string              `json:"paymentId,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
	Errors      []NotificationError `json:"notificationErrors,omitempty"`
}

// OrderItem is a line item with the optional denormalized product name
type OrderItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName,omitempty"`
	Size        string  `json:"size"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// NotificationError is a delivery failure recorded on the order
type NotificationError struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func ItemEntityToJSON(i entities.LineItem) OrderItem {
	return OrderItem{
		ProductID:   i.ProductID,
		ProductName: i.ProductName,
		Size:        i.Size,
		Quantity:    i.Quantity,
		Price:       i.Price,
	}
}

func ItemJSONToEntity(i LineItem) entities.LineItem {
	return entities.LineItem{
		ProductID: i.ProductID,
		Size:      i.Size,
		Quantity:  i.Quantity,
		Price:     i.Price,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemEntityToJSON(it))
	}

	var errs []NotificationError
	for _, e := range o.Errors {
		errs = append(errs, NotificationError{Message: e.Message, Timestamp: e.CreatedAt})
	}

	return Order{
		OrderID:     o.OrderID,
		UserID:      o.UserID,
		Items:       items,
		TotalAmount: o.TotalAmount,
		Status:      string(o.Status),
		PaymentID:   o.PaymentID,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		Errors:      errs,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderEntityToJSON(o))
	}
	return result
}
