// Package payhere implements the PayHere hosted-checkout protocol pieces:
// the two-stage MD5 hash over fixed-order fields and the outbound
// checkout request. The shared secret never leaves this package.
package payhere

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"strconv"
	"strings"
)

// Gateway status codes carried by the payment notification.
const (
	StatusSuccess     = "2"
	StatusPending     = "0"
	StatusCanceled    = "-1"
	StatusFailed      = "-2"
	StatusChargedback = "-3"
)

// Notification is the field set PayHere posts to the notify endpoint.
// Signature is excluded from hashing, as is any signature-method metadata.
type Notification struct {
	MerchantID  string
	OrderID     string
	PaymentID   string
	GrossAmount string
	Currency    string
	StatusCode  string
	Signature   string
}

type Signer struct {
	merchantID   string
	hashedSecret string
}

func NewSigner(merchantID, secret string) *Signer {
	return &Signer{
		merchantID:   merchantID,
		hashedSecret: md5Upper(secret),
	}
}

func (s *Signer) MerchantID() string {
	return s.merchantID
}

// SignCheckout computes the hash for an outbound checkout request:
// MD5(merchant_id + order_id + amount + currency + MD5(secret)), uppercase hex.
// The amount must be rendered with exactly two decimals before hashing,
// mismatched formatting is the usual cause of gateway rejections.
func (s *Signer) SignCheckout(orderID string, amount float64, currency string) string {
	return md5Upper(s.merchantID + orderID + FormatAmount(amount) + currency + s.hashedSecret)
}

// VerifyCallback recomputes the notification signature over the
// gateway-supplied fields in their protocol-fixed order and compares it
// against the received one. The field order is part of the external
// protocol and is not configurable. The comparison is constant-time since
// this hash is the callback endpoint's only authentication.
func (s *Signer) VerifyCallback(n Notification) bool {
	expected := md5Upper(n.MerchantID + n.OrderID + n.GrossAmount + n.Currency + n.StatusCode + s.hashedSecret)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(n.Signature)) == 1
}

// FormatAmount renders an amount with exactly two decimal digits.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

func md5Upper(s string) string {
	sum := md5.Sum([]byte(s))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}
