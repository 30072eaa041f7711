// Package notification renders order confirmations and hands them to an
// outbound mail transport. Delivery is best-effort: a bounded retry, then
// the failure is appended to the order's error log and swallowed so the
// triggering workflow is unaffected.
package notification

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"github.com/PasanSasmika/Fashion-Backend/internal/entities"
	"github.com/PasanSasmika/Fashion-Backend/pkg/utils"
)

const storeName = "FreshNets"

type Message struct {
	To      string
	Subject string
	HTML    string

	Attachment     []byte
	AttachmentName string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type Renderer interface {
	Invoice(order entities.Order, names map[string]string) ([]byte, error)
}

type ErrorLog interface {
	AppendNotificationError(ctx context.Context, orderID, message string) error
}

type Config struct {
	MaxAttempts int
	RetryDelay  time.Duration
}

type Dispatcher struct {
	logger   *slog.Logger
	sender   Sender
	renderer Renderer
	errLog   ErrorLog
	cfg      Config
}

func NewDispatcher(logger *slog.Logger, sender Sender, renderer Renderer, errLog ErrorLog, cfg Config) *Dispatcher {
	return &Dispatcher{
		logger:   logger.With(slog.String("service", "notification")),
		sender:   sender,
		renderer: renderer,
		errLog:   errLog,
		cfg:      cfg,
	}
}

// Dispatch sends the confirmation email for a paid order. A missing invoice
// is tolerated (the email goes out without the attachment); a failed send is
// retried, then logged to the order record.
func (d *Dispatcher) Dispatch(ctx context.Context, order entities.Order, user entities.User, names map[string]string) error {
	if user.Email == "" {
		d.logger.WarnContext(ctx, "user has no email, skipping confirmation", slog.String("order_id", order.OrderID))
		return nil
	}

	html, err := renderBody(order, names)
	if err != nil {
		return d.giveUp(ctx, order.OrderID, fmt.Errorf("failed to render email body: %w", err))
	}

	msg := Message{
		To:      user.Email,
		Subject: fmt.Sprintf("Your Order #%s Confirmation", order.OrderID),
		HTML:    html,
	}

	invoice, err := d.renderer.Invoice(order, names)
	if err != nil {
		d.logger.ErrorContext(ctx, "failed to render invoice, sending without attachment",
			slog.String("order_id", order.OrderID), slog.Any("error", err))
	} else {
		msg.Attachment = invoice
		msg.AttachmentName = fmt.Sprintf("invoice_%s.pdf", order.OrderID)
	}

	cfg := utils.RetryConfig{
		MaxAttempts:  d.cfg.MaxAttempts,
		InitialDelay: d.cfg.RetryDelay,
		Multiplier:   1,
	}
	if err := utils.Retry(cfg, func() error { return d.sender.Send(ctx, msg) }); err != nil {
		emailsFailed.Inc()
		return d.giveUp(ctx, order.OrderID, fmt.Errorf("failed to send confirmation email: %w", err))
	}

	emailsSent.Inc()
	d.logger.InfoContext(ctx, "confirmation email sent",
		slog.String("order_id", order.OrderID), slog.String("to", user.Email))
	return nil
}

func (d *Dispatcher) giveUp(ctx context.Context, orderID string, err error) error {
	if logErr := d.errLog.AppendNotificationError(ctx, orderID, err.Error()); logErr != nil {
		d.logger.ErrorContext(ctx, "failed to record notification error",
			slog.String("order_id", orderID), slog.Any("error", logErr))
	}
	return err
}

var bodyTemplate = template.Must(template.New("confirmation").Parse(`
<h1>Order Confirmation #{{.Order.OrderID}}</h1>
<p>Thank you for your purchase!</p>
<p><strong>Order Total:</strong> {{printf "%.2f" .Order.TotalAmount}} LKR</p>
<p><strong>Payment Status:</strong> Paid</p>
<h2>Order Details:</h2>
<ul>
{{- range .Items}}
  <li>{{.Name}} - Size: {{.Size}}, Quantity: {{.Quantity}}, Price: {{printf "%.2f" .Price}} LKR</li>
{{- end}}
</ul>
<p>We'll notify you when your items ship.</p>
<p>Thank you for shopping with {{.StoreName}}!</p>
`))

type bodyItem struct {
	Name     string
	Size     string
	Quantity int
	Price    float64
}

func renderBody(order entities.Order, names map[string]string) (string, error) {
	items := make([]bodyItem, 0, len(order.Items))
	for _, it := range order.Items {
		name, ok := names[it.ProductID]
		if !ok {
			name = "Unknown Product"
		}
		items = append(items, bodyItem{
			Name:     name,
			Size:     it.Size,
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}

	var buf bytes.Buffer
	err := bodyTemplate.Execute(&buf, struct {
		Order     entities.Order
		Items     []bodyItem
		StoreName string
	}{Order: order, Items: items, StoreName: storeName})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
