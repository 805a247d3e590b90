package notify

import (
	"context"
	"errors"
	"log/slog"

	"restaurant-booking/internal/usecase/shared"
)

// LogNotifier records notifications instead of delivering them. Used when no
// provider is configured.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, n shared.Notification) error {
	attrs := []any{"kind", string(n.Kind)}
	if n.Reservation.ID != "" {
		attrs = append(attrs,
			"reservation_id", n.Reservation.ID,
			"date", n.Reservation.Date.String(),
			"time", n.Reservation.Time)
	}
	if n.Digest != nil {
		attrs = append(attrs, "date", n.Digest.Date.String(), "reservations", len(n.Digest.Reservations))
	}
	slog.InfoContext(ctx, "notification", attrs...)
	return nil
}

// Multi delivers to every notifier and joins their errors.
type Multi []shared.Notifier

func (m Multi) Notify(ctx context.Context, n shared.Notification) error {
	var errList []error
	for _, notifier := range m {
		if err := notifier.Notify(ctx, n); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}
