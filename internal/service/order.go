package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/PasanSasmika/Fashion-Backend/internal/config"
	"github.com/PasanSasmika/Fashion-Backend/internal/entities"
	"github.com/PasanSasmika/Fashion-Backend/internal/payhere"
	"github.com/PasanSasmika/Fashion-Backend/pkg/trm"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) error
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, limit, offset int) ([]entities.Order, error)
	ListOrdersByUser(ctx context.Context, userID string, limit, offset int) ([]entities.Order, error)

	// Conditional transitions: report whether the order was still Pending.
	MarkPaid(ctx context.Context, orderID, paymentID string) (bool, error)
	MarkFailed(ctx context.Context, orderID string) (bool, error)

	AppendNotificationError(ctx context.Context, orderID, message string) error
}

type ProductRepo interface {
	DecrementStock(ctx context.Context, productID, size string, qty int) error
	ProductNames(ctx context.Context, productIDs []string) (map[string]string, error)
}

type UserRepo interface {
	GetUserByID(ctx context.Context, userID string) (entities.User, error)
}

type NamesCache interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

type Dispatcher interface {
	Dispatch(ctx context.Context, order entities.Order, user entities.User, names map[string]string) error
}

type InvoiceRenderer interface {
	Invoice(order entities.Order, names map[string]string) ([]byte, error)
}

type OrderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	products  ProductRepo
	users     UserRepo
	cache     NamesCache

	signer     *payhere.Signer
	dispatcher Dispatcher
	renderer   InvoiceRenderer

	payCfg          config.PayHere
	dispatchTimeout time.Duration
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	products ProductRepo,
	users UserRepo,
	cache NamesCache,
	signer *payhere.Signer,
	dispatcher Dispatcher,
	renderer InvoiceRenderer,
	payCfg config.PayHere,
	dispatchTimeout time.Duration,
) *OrderService {
	return &OrderService{
		logger:          logger.With(slog.String("service", "order")),
		txManager:       txManager,
		orders:          orders,
		products:        products,
		users:           users,
		cache:           cache,
		signer:          signer,
		dispatcher:      dispatcher,
		renderer:        renderer,
		payCfg:          payCfg,
		dispatchTimeout: dispatchTimeout,
	}
}

// CreateOrder persists a Pending order and returns the signed checkout
// request the client posts to the gateway.
func (s *OrderService) CreateOrder(ctx context.Context, user entities.User, items []entities.LineItem, totalAmount float64) (payhere.CheckoutRequest, error) {
	if user.UserID == "" {
		return payhere.CheckoutRequest{}, entities.ErrUnauthenticated
	}
	if len(items) == 0 {
		return payhere.CheckoutRequest{}, entities.ErrNoItems
	}

	now := time.Now().UTC()
	order := entities.Order{
		OrderID:     newOrderID(now),
		UserID:      user.UserID,
		Items:       items,
		TotalAmount: totalAmount,
		Status:      entities.OrderStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.orders.CreateOrder(ctx, order)
	})
	if err != nil {
		return payhere.CheckoutRequest{}, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.InfoContext(ctx, "order created",
		slog.String("order_id", order.OrderID), slog.String("user_id", user.UserID))

	urls := payhere.NewCheckoutURLs(s.payCfg.FrontendURL, s.payCfg.BackendURL, order.OrderID)
	return s.signer.BuildCheckout(order, user, s.payCfg.Currency, urls), nil
}

// GetOrder returns the order with product names denormalized for display.
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	names := s.productNames(ctx, order.Items)
	for i := range order.Items {
		order.Items[i].ProductName = names[order.Items[i].ProductID]
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, limit, offset int) ([]entities.Order, error) {
	return s.orders.ListOrders(ctx, limit, offset)
}

func (s *OrderService) ListUserOrders(ctx context.Context, userID string, limit, offset int) ([]entities.Order, error) {
	return s.orders.ListOrdersByUser(ctx, userID, limit, offset)
}

// ResendEmail dispatches the confirmation synchronously, for the manual
// resend endpoint.
func (s *OrderService) ResendEmail(ctx context.Context, orderID string) error {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}

	user, err := s.users.GetUserByID(ctx, order.UserID)
	if err != nil {
		return fmt.Errorf("failed to load order user: %w", err)
	}

	return s.dispatcher.Dispatch(ctx, order, user, s.productNames(ctx, order.Items))
}

// Invoice renders the order's PDF invoice.
func (s *OrderService) Invoice(ctx context.Context, orderID string) ([]byte, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return s.renderer.Invoice(order, s.productNames(ctx, order.Items))
}

// productNames resolves display names for the order's items through the
// cache, falling back to a single bulk lookup for the misses. Lookup
// failures degrade to an empty map, never to an error.
func (s *OrderService) productNames(ctx context.Context, items []entities.LineItem) map[string]string {
	names := make(map[string]string, len(items))
	seen := make(map[string]bool, len(items))
	var missing []string

	for _, it := range items {
		if seen[it.ProductID] {
			continue
		}
		seen[it.ProductID] = true

		if name, ok := s.cache.Get(it.ProductID); ok {
			names[it.ProductID] = name
		} else {
			missing = append(missing, it.ProductID)
		}
	}

	if len(missing) == 0 {
		return names
	}

	loaded, err := s.products.ProductNames(ctx, missing)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load product names", slog.Any("error", err))
		return names
	}
	for id, name := range loaded {
		names[id] = name
		s.cache.Set(id, name)
	}
	return names
}

func newOrderID(now time.Time) string {
	return fmt.Sprintf("ORD_%d_%04d", now.UnixMilli(), rand.Intn(10000))
}
