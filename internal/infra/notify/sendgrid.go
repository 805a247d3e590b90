package notify

import (
	"context"
	"log/slog"

	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase/shared"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

var ErrDeliveryRejected = errs.New("delivery rejected by provider")

// MailClient is satisfied by *sendgrid.Client.
type MailClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridMailer emails the customer or the restaurant depending on the kind.
type SendGridMailer struct {
	client          MailClient
	renderer        *Renderer
	from            *mail.Email
	restaurantEmail string
}

func NewSendGridMailer(cfg config.MailConfig, renderer *Renderer) *SendGridMailer {
	return NewSendGridMailerWithClient(sendgrid.NewSendClient(cfg.SendGridAPIKey), cfg, renderer)
}

func NewSendGridMailerWithClient(client MailClient, cfg config.MailConfig, renderer *Renderer) *SendGridMailer {
	return &SendGridMailer{
		client:          client,
		renderer:        renderer,
		from:            mail.NewEmail(cfg.FromName, cfg.FromEmail),
		restaurantEmail: cfg.RestaurantEmail,
	}
}

func (m *SendGridMailer) Notify(ctx context.Context, n shared.Notification) error {
	to := m.recipient(n)
	if to == nil {
		slog.DebugContext(ctx, "email skipped: no recipient", "kind", string(n.Kind))
		return nil
	}

	msg, err := m.renderer.Render(n)
	if err != nil {
		return err
	}

	resp, err := m.client.SendWithContext(ctx, mail.NewSingleEmail(m.from, msg.Subject, to, msg.Text, msg.HTML))
	if err != nil {
		return errs.Wrapf(err, "sendgrid send %s", n.Kind)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.Wrapf(ErrDeliveryRejected, "sendgrid status %d: %s", resp.StatusCode, resp.Body)
	}

	slog.InfoContext(ctx, "email sent",
		"kind", string(n.Kind),
		"reservation_id", n.Reservation.ID,
		"status", resp.StatusCode)
	return nil
}

func (m *SendGridMailer) recipient(n shared.Notification) *mail.Email {
	switch n.Kind {
	case shared.KindRestaurantNotification, shared.KindDailyDigest:
		if m.restaurantEmail == "" {
			return nil
		}
		return mail.NewEmail(m.from.Name, m.restaurantEmail)
	default:
		if n.Reservation.Email == "" {
			return nil
		}
		return mail.NewEmail(n.Reservation.Name, n.Reservation.Email)
	}
}
