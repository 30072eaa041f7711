package payhere

import (
	"fmt"

	"github.com/PasanSasmika/Fashion-Backend/internal/entities"
)

// Checkout request defaults. Address fields are not collected at checkout,
// the storefront ships within Colombo only.
const (
	defaultPhone   = "0771234567"
	defaultAddress = "No. 123, Main Street"
	defaultCity    = "Colombo"
	defaultCountry = "Sri Lanka"

	itemsDescription = "Fashion Products"
)

// URLs are the redirect endpoints embedded in a checkout request.
type URLs struct {
	Return string
	Cancel string
	Notify string
}

// CheckoutRequest is returned verbatim to the client, which posts it to the
// hosted gateway page. Field order matters only for hashing, not transmission.
type CheckoutRequest struct {
	MerchantID string `json:"merchant_id"`
	ReturnURL  string `json:"return_url"`
	CancelURL  string `json:"cancel_url"`
	NotifyURL  string `json:"notify_url"`
	OrderID    string `json:"order_id"`
	Items      string `json:"items"`
	Amount     string `json:"amount"`
	Currency   string `json:"currency"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Country    string `json:"country"`
	Hash       string `json:"hash"`
}

// NewCheckoutURLs builds the redirect endpoints from the configured
// frontend and backend base URLs.
func NewCheckoutURLs(frontendURL, backendURL, orderID string) URLs {
	return URLs{
		Return: fmt.Sprintf("%s/order/%s", frontendURL, orderID),
		Cancel: fmt.Sprintf("%s/cart", frontendURL),
		Notify: fmt.Sprintf("%s/api/orders/notify", backendURL),
	}
}

// BuildCheckout assembles and signs the outbound payment request.
func (s *Signer) BuildCheckout(order entities.Order, user entities.User, currency string, urls URLs) CheckoutRequest {
	phone := user.Phone
	if phone == "" {
		phone = defaultPhone
	}

	return CheckoutRequest{
		MerchantID: s.merchantID,
		ReturnURL:  urls.Return,
		CancelURL:  urls.Cancel,
		NotifyURL:  urls.Notify,
		OrderID:    order.OrderID,
		Items:      itemsDescription,
		Amount:     FormatAmount(order.TotalAmount),
		Currency:   currency,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Email:      user.Email,
		Phone:      phone,
		Address:    defaultAddress,
		City:       defaultCity,
		Country:    defaultCountry,
		Hash:       s.SignCheckout(order.OrderID, order.TotalAmount, currency),
	}
}
