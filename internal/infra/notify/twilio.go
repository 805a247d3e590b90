package notify

import (
	"context"
	"fmt"
	"log/slog"

	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/pkg/phone"
	"restaurant-booking/internal/usecase/shared"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// MessageCreator is satisfied by *openapi.ApiService.
type MessageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// TwilioSMS texts the customer when a reservation is confirmed or cancelled.
type TwilioSMS struct {
	api        MessageCreator
	from       string
	restaurant string
}

func NewTwilioSMS(cfg config.SMSConfig, restaurant string) *TwilioSMS {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   cfg.AccountSID,
		Password:   cfg.AuthToken,
		AccountSid: cfg.AccountSID,
	})
	return NewTwilioSMSWithAPI(client.Api, cfg.FromNumber, restaurant)
}

func NewTwilioSMSWithAPI(api MessageCreator, from, restaurant string) *TwilioSMS {
	return &TwilioSMS{api: api, from: from, restaurant: restaurant}
}

func (s *TwilioSMS) Notify(ctx context.Context, n shared.Notification) error {
	body := s.body(n)
	if body == "" {
		return nil
	}
	to := phone.E164(n.Reservation.Phone)
	if to == "" {
		slog.WarnContext(ctx, "sms skipped: number not mappable to E.164",
			"reservation_id", n.Reservation.ID)
		return nil
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.api.CreateMessage(params)
	if err != nil {
		return errs.Wrapf(err, "twilio send %s", n.Kind)
	}

	sid := ""
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}
	slog.InfoContext(ctx, "sms sent",
		"kind", string(n.Kind),
		"reservation_id", n.Reservation.ID,
		"sid", sid)
	return nil
}

func (s *TwilioSMS) body(n shared.Notification) string {
	r := n.Reservation
	switch n.Kind {
	case shared.KindReservationConfirmed:
		return fmt.Sprintf("%s : votre réservation du %s à %s pour %s est confirmée. À bientôt !",
			s.restaurant, LongDate(r.Date), r.Time, GuestsLabel(r.Guests))
	case shared.KindReservationCancelled:
		return fmt.Sprintf("%s : votre réservation du %s à %s a été annulée.",
			s.restaurant, LongDate(r.Date), r.Time)
	}
	return ""
}
