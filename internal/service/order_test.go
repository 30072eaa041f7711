package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/PasanSasmika/Fashion-Backend/internal/config"
	"github.com/PasanSasmika/Fashion-Backend/internal/entities"
	"github.com/PasanSasmika/Fashion-Backend/internal/payhere"
	"github.com/PasanSasmika/Fashion-Backend/internal/service/mocks"
	trmmocks "github.com/PasanSasmika/Fashion-Backend/pkg/trm/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testMerchantID = "1221149"
	testSecret     = "test-secret"
)

var testPayCfg = config.PayHere{
	MerchantID:  testMerchantID,
	Secret:      testSecret,
	Currency:    "LKR",
	FrontendURL: "http://localhost:3000",
	BackendURL:  "http://localhost:8080",
}

type serviceMocks struct {
	txManager  *trmmocks.MockManager
	orders     *mocks.MockOrderRepo
	products   *mocks.MockProductRepo
	users      *mocks.MockUserRepo
	cache      *mocks.MockNamesCache
	dispatcher *mocks.MockDispatcher
	renderer   *mocks.MockInvoiceRenderer
}

func newTestService(t *testing.T) (*OrderService, serviceMocks) {
	t.Helper()

	m := serviceMocks{
		txManager:  trmmocks.NewMockManager(t),
		orders:     mocks.NewMockOrderRepo(t),
		products:   mocks.NewMockProductRepo(t),
		users:      mocks.NewMockUserRepo(t),
		cache:      mocks.NewMockNamesCache(t),
		dispatcher: mocks.NewMockDispatcher(t),
		renderer:   mocks.NewMockInvoiceRenderer(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	signer := payhere.NewSigner(testMerchantID, testSecret)

	svc := NewOrderService(
		logger, m.txManager, m.orders, m.products, m.users, m.cache,
		signer, m.dispatcher, m.renderer,
		testPayCfg, 2*time.Second,
	)
	return svc, m
}

// passthroughTx makes the mock manager run callbacks directly, no transaction.
func passthroughTx(m *trmmocks.MockManager) {
	m.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, callback func(ctx context.Context) error) error {
			return callback(ctx)
		},
	)
}

var orderIDPattern = regexp.MustCompile(`^ORD_\d+_\d{4}$`)

func TestOrderService_CreateOrder(t *testing.T) {
	t.Parallel()

	user := entities.User{
		UserID:    "user-1",
		FirstName: "Pasan",
		LastName:  "Sasmika",
		Email:     "pasan@example.com",
		Phone:     "0712345678",
	}
	items := []entities.LineItem{
		{ProductID: "p1", Size: "M", Quantity: 2, Price: 1500},
		{ProductID: "p2", Size: "L", Quantity: 1, Price: 2000},
	}

	t.Run("creates pending order and signs checkout", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t)
		passthroughTx(m.txManager)

		var created entities.Order
		m.orders.EXPECT().CreateOrder(mock.Anything, mock.AnythingOfType("entities.Order")).
			Run(func(ctx context.Context, o entities.Order) {
				created = o
			}).Return(nil)

		payment, err := svc.CreateOrder(context.Background(), user, items, 5000)
		require.NoError(t, err)

		assert.Regexp(t, orderIDPattern, created.OrderID)
		assert.Equal(t, entities.OrderStatusPending, created.Status)
		assert.Equal(t, user.UserID, created.UserID)
		assert.Equal(t, items, created.Items)
		assert.Empty(t, created.PaymentID)

		assert.Equal(t, created.OrderID, payment.OrderID)
		assert.Equal(t, testMerchantID, payment.MerchantID)
		assert.Equal(t, "5000.00", payment.Amount)
		assert.Equal(t, "LKR", payment.Currency)
		assert.Equal(t, "Pasan", payment.FirstName)
		assert.Regexp(t, `^[0-9A-F]{32}$`, payment.Hash)
		assert.Equal(t, "http://localhost:8080/api/orders/notify", payment.NotifyURL)
		assert.Equal(t, "http://localhost:3000/order/"+created.OrderID, payment.ReturnURL)
	})

	t.Run("rejects unauthenticated caller", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)

		_, err := svc.CreateOrder(context.Background(), entities.User{}, items, 5000)
		assert.ErrorIs(t, err, entities.ErrUnauthenticated)
	})

	t.Run("rejects empty order", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)

		_, err := svc.CreateOrder(context.Background(), user, nil, 0)
		assert.ErrorIs(t, err, entities.ErrNoItems)
	})

	t.Run("propagates repo error", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t)
		passthroughTx(m.txManager)

		repoErr := errors.New("insert failed")
		m.orders.EXPECT().CreateOrder(mock.Anything, mock.AnythingOfType("entities.Order")).Return(repoErr)

		_, err := svc.CreateOrder(context.Background(), user, items, 5000)
		assert.ErrorIs(t, err, repoErr)
	})
}

func TestOrderService_GetOrder(t *testing.T) {
	t.Parallel()

	// fresh order per subtest: GetOrder writes product names into the items slice
	makeOrder := func() entities.Order {
		return entities.Order{
			OrderID: "ORD_1_0001",
			UserID:  "user-1",
			Status:  entities.OrderStatusPaid,
			Items: []entities.LineItem{
				{ProductID: "p1", Size: "M", Quantity: 1, Price: 1500},
				{ProductID: "p2", Size: "S", Quantity: 2, Price: 900},
			},
		}
	}

	t.Run("denormalizes names through cache", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t)

		order := makeOrder()
		m.orders.EXPECT().GetOrderByID(mock.Anything, order.OrderID).Return(order, nil)
		m.cache.EXPECT().Get("p1").Return("Denim Jacket", true)
		m.cache.EXPECT().Get("p2").Return("", false)
		m.products.EXPECT().ProductNames(mock.Anything, []string{"p2"}).
			Return(map[string]string{"p2": "Linen Shirt"}, nil)
		m.cache.EXPECT().Set("p2", "Linen Shirt")

		got, err := svc.GetOrder(context.Background(), order.OrderID)
		require.NoError(t, err)
		assert.Equal(t, "Denim Jacket", got.Items[0].ProductName)
		assert.Equal(t, "Linen Shirt", got.Items[1].ProductName)
	})

	t.Run("tolerates name lookup failure", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t)

		order := makeOrder()
		m.orders.EXPECT().GetOrderByID(mock.Anything, order.OrderID).Return(order, nil)
		m.cache.EXPECT().Get("p1").Return("", false)
		m.cache.EXPECT().Get("p2").Return("", false)
		m.products.EXPECT().ProductNames(mock.Anything, []string{"p1", "p2"}).
			Return(nil, errors.New("db down"))

		got, err := svc.GetOrder(context.Background(), order.OrderID)
		require.NoError(t, err)
		assert.Empty(t, got.Items[0].ProductName)
		assert.Empty(t, got.Items[1].ProductName)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t)

		m.orders.EXPECT().GetOrderByID(mock.Anything, "missing").
			Return(entities.Order{}, entities.ErrOrderNotFound)

		_, err := svc.GetOrder(context.Background(), "missing")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestOrderService_ResendEmail(t *testing.T) {
	t.Parallel()

	order := entities.Order{
		OrderID: "ORD_1_0002",
		UserID:  "user-1",
		Status:  entities.OrderStatusPaid,
		Items:   []entities.LineItem{{ProductID: "p1", Size: "M", Quantity: 1, Price: 1500}},
	}
	user := entities.User{UserID: "user-1", Email: "pasan@example.com"}

	t.Run("dispatches synchronously", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t)

		m.orders.EXPECT().GetOrderByID(mock.Anything, order.OrderID).Return(order, nil)
		m.users.EXPECT().GetUserByID(mock.Anything, "user-1").Return(user, nil)
		m.cache.EXPECT().Get("p1").Return("Denim Jacket", true)
		m.dispatcher.EXPECT().
			Dispatch(mock.Anything, order, user, map[string]string{"p1": "Denim Jacket"}).
			Return(nil)

		require.NoError(t, svc.ResendEmail(context.Background(), order.OrderID))
	})

	t.Run("order not found", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t)

		m.orders.EXPECT().GetOrderByID(mock.Anything, "missing").
			Return(entities.Order{}, entities.ErrOrderNotFound)

		err := svc.ResendEmail(context.Background(), "missing")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestOrderService_Invoice(t *testing.T) {
	t.Parallel()
	svc, m := newTestService(t)

	order := entities.Order{
		OrderID: "ORD_1_0003",
		Status:  entities.OrderStatusPaid,
		Items:   []entities.LineItem{{ProductID: "p1", Size: "M", Quantity: 1, Price: 1500}},
	}

	m.orders.EXPECT().GetOrderByID(mock.Anything, order.OrderID).Return(order, nil)
	m.cache.EXPECT().Get("p1").Return("Denim Jacket", true)
	m.renderer.EXPECT().
		Invoice(order, map[string]string{"p1": "Denim Jacket"}).
		Return([]byte("%PDF-1.4"), nil)

	pdf, err := svc.Invoice(context.Background(), order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), pdf)
}
