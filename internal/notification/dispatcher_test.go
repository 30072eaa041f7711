package notification_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/PasanSasmika/Fashion-Backend/internal/entities"
	"github.com/PasanSasmika/Fashion-Backend/internal/notification"
	"github.com/PasanSasmika/Fashion-Backend/internal/notification/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatcherMocks struct {
	sender   *mocks.MockSender
	renderer *mocks.MockRenderer
	errLog   *mocks.MockErrorLog
}

func newTestDispatcher(t *testing.T, cfg notification.Config) (*notification.Dispatcher, dispatcherMocks) {
	t.Helper()

	m := dispatcherMocks{
		sender:   mocks.NewMockSender(t),
		renderer: mocks.NewMockRenderer(t),
		errLog:   mocks.NewMockErrorLog(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return notification.NewDispatcher(logger, m.sender, m.renderer, m.errLog, cfg), m
}

func paidOrder() entities.Order {
	return entities.Order{
		OrderID:     "ORD_1_0042",
		UserID:      "user-1",
		Status:      entities.OrderStatusPaid,
		TotalAmount: 3900,
		PaymentID:   "PAY-42",
		Items: []entities.LineItem{
			{ProductID: "p1", Size: "M", Quantity: 2, Price: 1500},
			{ProductID: "p2", Size: "S", Quantity: 1, Price: 900},
		},
	}
}

var names = map[string]string{"p1": "Denim Jacket", "p2": "Linen Shirt"}

func TestDispatcher_Dispatch(t *testing.T) {
	t.Parallel()

	cfg := notification.Config{MaxAttempts: 3, RetryDelay: time.Millisecond}
	user := entities.User{UserID: "user-1", FirstName: "Pasan", Email: "pasan@example.com"}

	t.Run("sends confirmation with invoice attached", func(t *testing.T) {
		t.Parallel()
		d, m := newTestDispatcher(t, cfg)
		order := paidOrder()

		m.renderer.EXPECT().Invoice(order, names).Return([]byte("%PDF-1.4"), nil)

		var sent notification.Message
		m.sender.EXPECT().Send(mock.Anything, mock.AnythingOfType("notification.Message")).
			Run(func(ctx context.Context, msg notification.Message) {
				sent = msg
			}).Return(nil).Once()

		require.NoError(t, d.Dispatch(context.Background(), order, user, names))

		assert.Equal(t, "pasan@example.com", sent.To)
		assert.Equal(t, "Your Order #ORD_1_0042 Confirmation", sent.Subject)
		assert.Equal(t, []byte("%PDF-1.4"), sent.Attachment)
		assert.Equal(t, "invoice_ORD_1_0042.pdf", sent.AttachmentName)
		assert.Contains(t, sent.HTML, "Order Confirmation #ORD_1_0042")
		assert.Contains(t, sent.HTML, "Denim Jacket")
		assert.Contains(t, sent.HTML, "3900.00 LKR")
	})

	t.Run("unknown products fall back to a placeholder name", func(t *testing.T) {
		t.Parallel()
		d, m := newTestDispatcher(t, cfg)
		order := paidOrder()

		m.renderer.EXPECT().Invoice(order, map[string]string{}).Return([]byte("%PDF-1.4"), nil)

		var sent notification.Message
		m.sender.EXPECT().Send(mock.Anything, mock.AnythingOfType("notification.Message")).
			Run(func(ctx context.Context, msg notification.Message) {
				sent = msg
			}).Return(nil).Once()

		require.NoError(t, d.Dispatch(context.Background(), order, user, map[string]string{}))
		assert.Contains(t, sent.HTML, "Unknown Product")
	})

	t.Run("retries transient send failures", func(t *testing.T) {
		t.Parallel()
		d, m := newTestDispatcher(t, cfg)
		order := paidOrder()

		m.renderer.EXPECT().Invoice(order, names).Return([]byte("%PDF-1.4"), nil)

		m.sender.EXPECT().Send(mock.Anything, mock.AnythingOfType("notification.Message")).
			Return(errors.New("connection reset")).Twice()
		m.sender.EXPECT().Send(mock.Anything, mock.AnythingOfType("notification.Message")).
			Return(nil).Once()

		require.NoError(t, d.Dispatch(context.Background(), order, user, names))
	})

	t.Run("records the failure after exhausting retries", func(t *testing.T) {
		t.Parallel()
		d, m := newTestDispatcher(t, cfg)
		order := paidOrder()

		m.renderer.EXPECT().Invoice(order, names).Return([]byte("%PDF-1.4"), nil)

		sendErr := errors.New("mailbox unavailable")
		m.sender.EXPECT().Send(mock.Anything, mock.AnythingOfType("notification.Message")).
			Return(sendErr).Times(3)
		m.errLog.EXPECT().
			AppendNotificationError(mock.Anything, order.OrderID, mock.AnythingOfType("string")).
			Return(nil)

		err := d.Dispatch(context.Background(), order, user, names)
		assert.ErrorIs(t, err, sendErr)
	})

	t.Run("sends without attachment when the invoice fails", func(t *testing.T) {
		t.Parallel()
		d, m := newTestDispatcher(t, cfg)
		order := paidOrder()

		m.renderer.EXPECT().Invoice(order, names).Return(nil, errors.New("render failed"))

		var sent notification.Message
		m.sender.EXPECT().Send(mock.Anything, mock.AnythingOfType("notification.Message")).
			Run(func(ctx context.Context, msg notification.Message) {
				sent = msg
			}).Return(nil).Once()

		require.NoError(t, d.Dispatch(context.Background(), order, user, names))
		assert.Nil(t, sent.Attachment)
		assert.Empty(t, sent.AttachmentName)
	})

	t.Run("skips users without an email address", func(t *testing.T) {
		t.Parallel()
		d, _ := newTestDispatcher(t, cfg)

		err := d.Dispatch(context.Background(), paidOrder(), entities.User{UserID: "user-1"}, names)
		assert.NoError(t, err)
	})
}

func TestDispatcher_WithRealRenderer(t *testing.T) {
	t.Parallel()

	sender := mocks.NewMockSender(t)
	errLog := mocks.NewMockErrorLog(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	d := notification.NewDispatcher(logger, sender, notification.NewPDFRenderer(), errLog,
		notification.Config{MaxAttempts: 1})

	order := paidOrder()
	user := entities.User{UserID: "user-1", Email: "pasan@example.com"}

	var sent notification.Message
	sender.EXPECT().Send(mock.Anything, mock.AnythingOfType("notification.Message")).
		Run(func(ctx context.Context, msg notification.Message) {
			sent = msg
		}).Return(nil).Once()

	require.NoError(t, d.Dispatch(context.Background(), order, user, names))
	require.NotEmpty(t, sent.Attachment)
	assert.Equal(t, "%PDF", string(sent.Attachment[:4]))
}
