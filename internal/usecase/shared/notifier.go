package shared

import (
	"context"
	"time"

	"restaurant-booking/internal/domain/reservation"
)

//go:generate mockgen -source=notifier.go -destination=../../testutil/mock/shared/mock_notifier.go -package=sharedmock

type NotificationKind string

const (
	KindCustomerConfirmation   NotificationKind = "customer-confirmation"
	KindRestaurantNotification NotificationKind = "restaurant-notification"
	KindReservationConfirmed   NotificationKind = "confirmed"
	KindReservationCancelled   NotificationKind = "cancelled"
	KindDailyDigest            NotificationKind = "daily-digest"
)

type Notification struct {
	Kind        NotificationKind
	Reservation reservation.Reservation
	// Digest is set for KindDailyDigest only.
	Digest *Digest
}

type Digest struct {
	Date         reservation.Date
	LunchCount   int
	LunchGuests  int
	LunchUsage   int
	DinnerCount  int
	DinnerGuests int
	DinnerUsage  int
	Reservations []reservation.Reservation
	GeneratedAt  time.Time
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
