package bootstrap

import (
	"log/slog"
	"time"

	"restaurant-booking/internal/infra/notify"
	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewRenderer,
		NewNotifier,
	),
)

func NewRenderer(cfg config.Config, location *time.Location) (*notify.Renderer, error) {
	return notify.NewRenderer(cfg.Restaurant.Name, location)
}

// NewNotifier always logs and adds e-mail and SMS delivery when their credentials are set.
func NewNotifier(cfg config.Config, renderer *notify.Renderer, logger *slog.Logger) shared.Notifier {
	chain := notify.Multi{notify.LogNotifier{}}

	if cfg.Mail.SendGridAPIKey != "" && cfg.Mail.FromEmail != "" {
		chain = append(chain, notify.NewSendGridMailer(cfg.Mail, renderer))
	} else {
		logger.Warn("SendGrid not configured, e-mails are only logged")
	}

	if cfg.SMS.AccountSID != "" && cfg.SMS.FromNumber != "" {
		chain = append(chain, notify.NewTwilioSMS(cfg.SMS, cfg.Restaurant.Name))
	}

	return chain
}
