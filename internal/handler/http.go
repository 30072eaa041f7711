package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/PasanSasmika/Fashion-Backend/internal/entities"
	"github.com/PasanSasmika/Fashion-Backend/internal/middleware"
	"github.com/PasanSasmika/Fashion-Backend/internal/payhere"
	"github.com/PasanSasmika/Fashion-Backend/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type OrderService interface {
	CreateOrder(ctx context.Context, user entities.User, items []entities.LineItem, totalAmount float64) (payhere.CheckoutRequest, error)
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, limit, offset int) ([]entities.Order, error)
	ListUserOrders(ctx context.Context, userID string, limit, offset int) ([]entities.Order, error)
	Settle(ctx context.Context, n payhere.Notification) error
	ResendEmail(ctx context.Context, orderID string) error
	Invoice(ctx context.Context, orderID string) ([]byte, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/", h.ListOrders)
		r.Get("/user", h.ListUserOrders)
		r.Post("/notify", h.HandleCallback)
		r.Get("/notify", h.HandleCallback)
		r.Get("/{orderID}", h.GetOrder)
		r.Post("/{orderID}/send-email", h.SendEmail)
		r.Get("/{orderID}/generate-pdf", h.GeneratePDF)
	})
}

// CreateOrder creates a Pending order and returns the signed checkout request.
// @Summary      Create order
// @Description  Persists a Pending order and returns the payment data for the gateway redirect
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request body CreateOrderRequest true "Order items and total"
// @Success      200  {object}  CreateOrderResponse
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		utils.WriteError(w, "User not authenticated", http.StatusUnauthorized)
		return
	}

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	items := make([]entities.LineItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ItemJSONToEntity(it))
	}

	payment, err := h.svc.CreateOrder(ctx, user, items, req.TotalAmount)
	if errors.Is(err, entities.ErrNoItems) {
		utils.WriteError(w, "order has no items", http.StatusBadRequest)
		return
	}
	if errors.Is(err, entities.ErrUnauthenticated) {
		utils.WriteError(w, "User not authenticated", http.StatusUnauthorized)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create order", slog.Any("error", err))
		utils.WriteError(w, "Failed to create order", http.StatusInternalServerError)
		return
	}

	ordersCreated.Inc()
	utils.WriteJSON(w, CreateOrderResponse{
		Success:     true,
		PaymentData: payment,
		OrderID:     payment.OrderID,
	}, http.StatusOK)
}

// HandleCallback is the gateway notification endpoint. PayHere posts form
// fields on the server-to-server notify and repeats them on the query string
// for the browser redirect flavor, so both are read through r.Form. The
// gateway retries anything that is not a 200, which is why every handled
// branch, duplicates included, answers a literal OK.
// @Summary      Payment gateway callback
// @Tags         orders
// @Success      200  {string}  string  "OK"
// @Failure      400  {string}  string  "Invalid signature"
// @Failure      404  {string}  string  "Order not found"
// @Failure      500  {string}  string  "Error processing payment"
// @Router       /orders/notify [post]
func (h *HTTPHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		callbacksTotal.WithLabelValues("error").Inc()
		http.Error(w, "Error processing payment", http.StatusInternalServerError)
		return
	}

	n := payhere.Notification{
		MerchantID:  r.Form.Get("merchant_id"),
		OrderID:     r.Form.Get("order_id"),
		PaymentID:   r.Form.Get("payment_id"),
		GrossAmount: r.Form.Get("payhere_amount"),
		Currency:    r.Form.Get("payhere_currency"),
		StatusCode:  r.Form.Get("status_code"),
		Signature:   r.Form.Get("md5sig"),
	}

	err := h.svc.Settle(ctx, n)
	switch {
	case errors.Is(err, entities.ErrInvalidSignature):
		h.logger.WarnContext(ctx, "callback signature mismatch", slog.String("order_id", n.OrderID))
		callbacksTotal.WithLabelValues("invalid_signature").Inc()
		http.Error(w, "Invalid signature", http.StatusBadRequest)
	case errors.Is(err, entities.ErrOrderNotFound):
		h.logger.WarnContext(ctx, "callback for unknown order", slog.String("order_id", n.OrderID))
		callbacksTotal.WithLabelValues("order_not_found").Inc()
		http.Error(w, "Order not found", http.StatusNotFound)
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to process callback",
			slog.String("order_id", n.OrderID), slog.Any("error", err))
		callbacksTotal.WithLabelValues("error").Inc()
		http.Error(w, "Error processing payment", http.StatusInternalServerError)
	default:
		callbacksTotal.WithLabelValues("accepted").Inc()
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}

// GetOrder returns a single order with product names populated.
// @Summary      Get order by id
// @Tags         orders
// @Produce      json
// @Param        orderID  path  string  true  "Order identifier"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /orders/{orderID} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "orderID")

	order, err := h.svc.GetOrder(ctx, orderID)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListOrders returns all orders, admin only.
// @Summary      List all orders
// @Tags         orders
// @Produce      json
// @Param        limit   query  int  false  "Page size"
// @Param        offset  query  int  false  "Page offset"
// @Success      200  {array}   Order
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		utils.WriteError(w, "User not authenticated", http.StatusUnauthorized)
		return
	}
	if user.Role != entities.RoleAdmin {
		utils.WriteError(w, "admin access required", http.StatusForbidden)
		return
	}

	limit, offset := pagination(r)
	orders, err := h.svc.ListOrders(ctx, limit, offset)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// ListUserOrders returns the caller's orders.
// @Summary      List caller's orders
// @Tags         orders
// @Produce      json
// @Param        limit   query  int  false  "Page size"
// @Param        offset  query  int  false  "Page offset"
// @Success      200  {array}   Order
// @Failure      401  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /orders/user [get]
func (h *HTTPHandler) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		utils.WriteError(w, "User not authenticated", http.StatusUnauthorized)
		return
	}

	limit, offset := pagination(r)
	orders, err := h.svc.ListUserOrders(ctx, user.UserID, limit, offset)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list user orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// SendEmail re-sends the confirmation email for an order.
// @Summary      Resend confirmation email
// @Tags         orders
// @Produce      json
// @Param        orderID  path  string  true  "Order identifier"
// @Success      200  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /orders/{orderID}/send-email [post]
func (h *HTTPHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "orderID")

	err := h.svc.ResendEmail(ctx, orderID)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to resend email", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "Failed to send email", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]string{"message": "Email sent"}, http.StatusOK)
}

// GeneratePDF streams the order's invoice as a PDF attachment.
// @Summary      Download order invoice
// @Tags         orders
// @Produce      application/pdf
// @Param        orderID  path  string  true  "Order identifier"
// @Success      200  {file}    file
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /orders/{orderID}/generate-pdf [get]
func (h *HTTPHandler) GeneratePDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "orderID")

	pdf, err := h.svc.Invoice(ctx, orderID)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate invoice", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "Failed to generate invoice", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice_%s.pdf"`, orderID))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

func pagination(r *http.Request) (limit, offset int) {
	limit = defaultListLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = min(v, maxListLimit)
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}
