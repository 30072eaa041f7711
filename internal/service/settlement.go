package service

import (
	"context"
	"log/slog"

	"github.com/PasanSasmika/Fashion-Backend/internal/entities"
	"github.com/PasanSasmika/Fashion-Backend/internal/payhere"

	"golang.org/x/sync/errgroup"
)

const stockDecrementConcurrency = 4

// Settle processes a gateway payment notification. The signature is the
// callback's only authentication, so verification short-circuits before any
// lookup. Terminal orders are acknowledged without side effects: the gateway
// retries on non-200 responses, and a duplicate delivery must not decrement
// stock or send a second email.
//
// A nil return means the notification was handled and the gateway should be
// acknowledged, including the already-settled case.
func (s *OrderService) Settle(ctx context.Context, n payhere.Notification) error {
	if !s.signer.VerifyCallback(n) {
		return entities.ErrInvalidSignature
	}

	order, err := s.orders.GetOrderByID(ctx, n.OrderID)
	if err != nil {
		return err
	}

	if order.Status.Terminal() {
		s.logger.InfoContext(ctx, "duplicate notification for settled order",
			slog.String("order_id", order.OrderID), slog.String("status", string(order.Status)))
		return nil
	}

	if n.StatusCode != payhere.StatusSuccess {
		return s.settleFailed(ctx, order, n)
	}
	return s.settlePaid(ctx, order, n)
}

func (s *OrderService) settlePaid(ctx context.Context, order entities.Order, n payhere.Notification) error {
	transitioned, err := s.orders.MarkPaid(ctx, order.OrderID, n.PaymentID)
	if err != nil {
		return err
	}
	if !transitioned {
		// lost the race against a concurrent duplicate delivery
		s.logger.InfoContext(ctx, "order already settled concurrently", slog.String("order_id", order.OrderID))
		return nil
	}

	s.logger.InfoContext(ctx, "order paid",
		slog.String("order_id", order.OrderID), slog.String("payment_id", n.PaymentID))

	order.Status = entities.OrderStatusPaid
	order.PaymentID = n.PaymentID

	s.decrementStock(ctx, order)

	// Dispatch runs off the critical path: the gateway needs a prompt OK and
	// retries anything else, which would re-enter this handler.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.dispatchTimeout)
		defer cancel()
		s.sendConfirmation(ctx, order)
	}()

	return nil
}

func (s *OrderService) settleFailed(ctx context.Context, order entities.Order, n payhere.Notification) error {
	transitioned, err := s.orders.MarkFailed(ctx, order.OrderID)
	if err != nil {
		return err
	}
	if !transitioned {
		s.logger.InfoContext(ctx, "order already settled concurrently", slog.String("order_id", order.OrderID))
		return nil
	}

	s.logger.InfoContext(ctx, "order failed",
		slog.String("order_id", order.OrderID), slog.String("status_code", n.StatusCode))
	return nil
}

// decrementStock subtracts each line item's quantity from its
// (productId, size) counter. The updates are independent and each one is
// atomic on its own; a failing item is logged and the rest proceed, there
// is no cross-item rollback.
func (s *OrderService) decrementStock(ctx context.Context, order entities.Order) {
	g := new(errgroup.Group)
	g.SetLimit(stockDecrementConcurrency)

	for _, it := range order.Items {
		it := it
		g.Go(func() error {
			if err := s.products.DecrementStock(ctx, it.ProductID, it.Size, it.Quantity); err != nil {
				s.logger.ErrorContext(ctx, "failed to decrement stock",
					slog.String("order_id", order.OrderID),
					slog.String("product_id", it.ProductID),
					slog.String("size", it.Size),
					slog.Any("error", err))
			}
			return nil
		})
	}

	g.Wait()
}

func (s *OrderService) sendConfirmation(ctx context.Context, order entities.Order) {
	user, err := s.users.GetUserByID(ctx, order.UserID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load user for confirmation",
			slog.String("order_id", order.OrderID), slog.Any("error", err))
		if logErr := s.orders.AppendNotificationError(ctx, order.OrderID, err.Error()); logErr != nil {
			s.logger.ErrorContext(ctx, "failed to record notification error", slog.Any("error", logErr))
		}
		return
	}

	names := s.productNames(ctx, order.Items)

	// Dispatch retries internally and records the final failure in the
	// order's error log, nothing to do here but note it.
	if err := s.dispatcher.Dispatch(ctx, order, user, names); err != nil {
		s.logger.ErrorContext(ctx, "confirmation dispatch failed",
			slog.String("order_id", order.OrderID), slog.Any("error", err))
	}
}
