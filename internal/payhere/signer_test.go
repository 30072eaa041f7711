package payhere_test

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"strings"
	"testing"

	"github.com/PasanSasmika/Fashion-Backend/internal/entities"
	"github.com/PasanSasmika/Fashion-Backend/internal/payhere"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reference implementation of the documented construction, kept independent
// of the production code on purpose
func refHash(parts ...string) string {
	sum := md5.Sum([]byte(strings.Join(parts, "")))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

func TestSigner_SignCheckout(t *testing.T) {
	signer := payhere.NewSigner("1211149", "MzU3OTg1NzI1")

	hash := signer.SignCheckout("ORD_1700000000000_0042", 2000, "LKR")

	want := refHash("1211149", "ORD_1700000000000_0042", "2000.00", "LKR", refHash("MzU3OTg1NzI1"))
	assert.Equal(t, want, hash)

	// deterministic across repeated calls
	assert.Equal(t, hash, signer.SignCheckout("ORD_1700000000000_0042", 2000, "LKR"))

	assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{32}$`), hash)
}

func TestSigner_SignCheckout_AmountFormatting(t *testing.T) {
	signer := payhere.NewSigner("m", "s")

	testCases := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "integral amount gets two decimals", amount: 2000, want: "2000.00"},
		{name: "one decimal is padded", amount: 1999.5, want: "1999.50"},
		{name: "two decimals kept", amount: 10.25, want: "10.25"},
		{name: "zero", amount: 0, want: "0.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, payhere.FormatAmount(tc.amount))

			want := refHash("m", "ORD_1_1", tc.want, "LKR", refHash("s"))
			assert.Equal(t, want, signer.SignCheckout("ORD_1_1", tc.amount, "LKR"))
		})
	}
}

func TestSigner_VerifyCallback(t *testing.T) {
	const secret = "MzU3OTg1NzI1"
	signer := payhere.NewSigner("1211149", secret)

	notification := payhere.Notification{
		MerchantID:  "1211149",
		OrderID:     "ORD_1700000000000_0042",
		PaymentID:   "320025471",
		GrossAmount: "2000.00",
		Currency:    "LKR",
		StatusCode:  payhere.StatusSuccess,
	}

	// field order is pinned by the gateway protocol:
	// merchant_id + order_id + payhere_amount + payhere_currency + status_code + MD5(secret)
	notification.Signature = refHash(
		notification.MerchantID,
		notification.OrderID,
		notification.GrossAmount,
		notification.Currency,
		notification.StatusCode,
		refHash(secret),
	)

	assert.True(t, signer.VerifyCallback(notification))

	t.Run("tampered amount", func(t *testing.T) {
		tampered := notification
		tampered.GrossAmount = "0.01"
		assert.False(t, signer.VerifyCallback(tampered))
	})

	t.Run("wrong signature", func(t *testing.T) {
		tampered := notification
		tampered.Signature = refHash("garbage")
		assert.False(t, signer.VerifyCallback(tampered))
	})

	t.Run("lowercase signature rejected", func(t *testing.T) {
		tampered := notification
		tampered.Signature = strings.ToLower(notification.Signature)
		assert.False(t, signer.VerifyCallback(tampered))
	})

	t.Run("payment id not part of the hash", func(t *testing.T) {
		other := notification
		other.PaymentID = "999999999"
		assert.True(t, signer.VerifyCallback(other))
	})
}

func TestSigner_BuildCheckout(t *testing.T) {
	signer := payhere.NewSigner("1211149", "secret")

	order := entities.Order{
		OrderID:     "ORD_1700000000000_0042",
		TotalAmount: 2000,
	}
	user := entities.User{
		FirstName: "Pasan",
		LastName:  "Sasmika",
		Email:     "pasan@example.com",
		Phone:     "0712345678",
	}

	urls := payhere.NewCheckoutURLs("https://shop.example.com", "https://api.example.com", order.OrderID)
	req := signer.BuildCheckout(order, user, "LKR", urls)

	assert.Equal(t, "1211149", req.MerchantID)
	assert.Equal(t, "https://shop.example.com/order/ORD_1700000000000_0042", req.ReturnURL)
	assert.Equal(t, "https://shop.example.com/cart", req.CancelURL)
	assert.Equal(t, "https://api.example.com/api/orders/notify", req.NotifyURL)
	assert.Equal(t, "2000.00", req.Amount)
	assert.Equal(t, "LKR", req.Currency)
	assert.Equal(t, "0712345678", req.Phone)
	assert.Equal(t, signer.SignCheckout(order.OrderID, order.TotalAmount, "LKR"), req.Hash)

	require.Len(t, req.Hash, 32)
	assert.Equal(t, strings.ToUpper(req.Hash), req.Hash)
}

func TestSigner_BuildCheckout_PhoneFallback(t *testing.T) {
	signer := payhere.NewSigner("m", "s")

	req := signer.BuildCheckout(entities.Order{OrderID: "ORD_1_1"}, entities.User{}, "LKR", payhere.URLs{})
	assert.Equal(t, "0771234567", req.Phone)
}
