package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PasanSasmika/Fashion-Backend/internal/entities"
	"github.com/PasanSasmika/Fashion-Backend/internal/handler/mocks"
	"github.com/PasanSasmika/Fashion-Backend/internal/middleware"
	"github.com/PasanSasmika/Fashion-Backend/internal/payhere"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (chi.Router, *mocks.MockOrderService) {
	t.Helper()

	svc := mocks.NewMockOrderService(t)
	h := NewHTTPHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)

	r := chi.NewRouter()
	h.Init(r)
	return r, svc
}

func callbackForm(orderID string) url.Values {
	return url.Values{
		"merchant_id":      {"1221149"},
		"order_id":         {orderID},
		"payment_id":       {"PAY-42"},
		"payhere_amount":   {"3900.00"},
		"payhere_currency": {"LKR"},
		"status_code":      {"2"},
		"md5sig":           {"AABBCCDDEEFF00112233445566778899"},
	}
}

func callbackNotification(orderID string) payhere.Notification {
	return payhere.Notification{
		MerchantID:  "1221149",
		OrderID:     orderID,
		PaymentID:   "PAY-42",
		GrossAmount: "3900.00",
		Currency:    "LKR",
		StatusCode:  "2",
		Signature:   "AABBCCDDEEFF00112233445566778899",
	}
}

func TestHTTPHandler_HandleCallback(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		settleErr  error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "accepted",
			settleErr:  nil,
			wantStatus: http.StatusOK,
			wantBody:   "OK",
		},
		{
			name:       "invalid signature",
			settleErr:  entities.ErrInvalidSignature,
			wantStatus: http.StatusBadRequest,
			wantBody:   "Invalid signature",
		},
		{
			name:       "unknown order",
			settleErr:  entities.ErrOrderNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   "Order not found",
		},
		{
			name:       "processing error",
			settleErr:  errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Error processing payment",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r, svc := newTestRouter(t)

			svc.EXPECT().Settle(mock.Anything, callbackNotification("ORD_1_0042")).Return(tc.settleErr)

			req := httptest.NewRequest(http.MethodPost, "/api/orders/notify",
				strings.NewReader(callbackForm("ORD_1_0042").Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantBody, strings.TrimSpace(rec.Body.String()))
		})
	}

	t.Run("redirect flavor carries fields on the query string", func(t *testing.T) {
		t.Parallel()
		r, svc := newTestRouter(t)

		svc.EXPECT().Settle(mock.Anything, callbackNotification("ORD_1_0042")).Return(nil)

		req := httptest.NewRequest(http.MethodGet,
			"/api/orders/notify?"+callbackForm("ORD_1_0042").Encode(), nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	t.Parallel()

	user := entities.User{UserID: "user-1", FirstName: "Pasan", Email: "pasan@example.com"}

	validBody := CreateOrderRequest{
		Items: []LineItem{
			{ProductID: "p1", Size: "M", Quantity: 2, Price: 1500},
		},
		TotalAmount: 3000,
	}

	t.Run("creates order and returns payment data", func(t *testing.T) {
		t.Parallel()
		r, svc := newTestRouter(t)

		payment := payhere.CheckoutRequest{
			MerchantID: "1221149",
			OrderID:    "ORD_1_0042",
			Amount:     "3000.00",
			Currency:   "LKR",
			Hash:       strings.Repeat("A", 32),
		}
		svc.EXPECT().
			CreateOrder(mock.Anything, user, []entities.LineItem{
				{ProductID: "p1", Size: "M", Quantity: 2, Price: 1500},
			}, 3000.0).
			Return(payment, nil)

		rec := doJSON(t, r, user, validBody)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp CreateOrderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "ORD_1_0042", resp.OrderID)
		assert.Equal(t, payment, resp.PaymentData)
	})

	t.Run("rejects unauthenticated caller", func(t *testing.T) {
		t.Parallel()
		r, _ := newTestRouter(t)

		body, err := json.Marshal(validBody)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects invalid body", func(t *testing.T) {
		t.Parallel()
		r, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader("{not json"))
		req = req.WithContext(middleware.WithUser(req.Context(), user))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects empty items", func(t *testing.T) {
		t.Parallel()
		r, _ := newTestRouter(t)

		rec := doJSON(t, r, user, CreateOrderRequest{TotalAmount: 3000})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("service failure", func(t *testing.T) {
		t.Parallel()
		r, svc := newTestRouter(t)

		svc.EXPECT().
			CreateOrder(mock.Anything, user, mock.Anything, 3000.0).
			Return(payhere.CheckoutRequest{}, errors.New("db down"))

		rec := doJSON(t, r, user, validBody)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func doJSON(t *testing.T, r chi.Router, user entities.User, body CreateOrderRequest) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(middleware.WithUser(req.Context(), user))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHTTPHandler_GetOrder(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		r, svc := newTestRouter(t)

		order := entities.Order{
			OrderID:     "ORD_1_0042",
			UserID:      "user-1",
			Status:      entities.OrderStatusPaid,
			TotalAmount: 3900,
			PaymentID:   "PAY-42",
			Items: []entities.LineItem{
				{ProductID: "p1", Size: "M", Quantity: 2, Price: 1500, ProductName: "Denim Jacket"},
			},
		}
		svc.EXPECT().GetOrder(mock.Anything, "ORD_1_0042").Return(order, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/ORD_1_0042", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ORD_1_0042", resp.OrderID)
		assert.Equal(t, "Paid", resp.Status)
		assert.Equal(t, "Denim Jacket", resp.Items[0].ProductName)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		r, svc := newTestRouter(t)

		svc.EXPECT().GetOrder(mock.Anything, "missing").
			Return(entities.Order{}, entities.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/missing", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHTTPHandler_ListOrders(t *testing.T) {
	t.Parallel()

	t.Run("admin only", func(t *testing.T) {
		t.Parallel()
		r, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req = req.WithContext(middleware.WithUser(req.Context(), entities.User{UserID: "user-1"}))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("clamps pagination", func(t *testing.T) {
		t.Parallel()
		r, svc := newTestRouter(t)

		svc.EXPECT().ListOrders(mock.Anything, maxListLimit, 10).Return([]entities.Order{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/orders?limit=1000&offset=10", nil)
		req = req.WithContext(middleware.WithUser(req.Context(),
			entities.User{UserID: "admin-1", Role: entities.RoleAdmin}))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHTTPHandler_ListUserOrders(t *testing.T) {
	t.Parallel()
	r, svc := newTestRouter(t)

	svc.EXPECT().ListUserOrders(mock.Anything, "user-1", defaultListLimit, 0).
		Return([]entities.Order{{OrderID: "ORD_1_0042", Status: entities.OrderStatusPending}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/user", nil)
	req = req.WithContext(middleware.WithUser(req.Context(), entities.User{UserID: "user-1"}))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "ORD_1_0042", resp[0].OrderID)
}

func TestHTTPHandler_SendEmail(t *testing.T) {
	t.Parallel()

	t.Run("sent", func(t *testing.T) {
		t.Parallel()
		r, svc := newTestRouter(t)

		svc.EXPECT().ResendEmail(mock.Anything, "ORD_1_0042").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/orders/ORD_1_0042/send-email", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		r, svc := newTestRouter(t)

		svc.EXPECT().ResendEmail(mock.Anything, "missing").Return(entities.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/orders/missing/send-email", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHTTPHandler_GeneratePDF(t *testing.T) {
	t.Parallel()
	r, svc := newTestRouter(t)

	svc.EXPECT().Invoice(mock.Anything, "ORD_1_0042").Return([]byte("%PDF-1.4"), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/ORD_1_0042/generate-pdf", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "ORD_1_0042")
	assert.Equal(t, []byte("%PDF-1.4"), rec.Body.Bytes())
}
