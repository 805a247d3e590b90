package response

import (
	"time"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/pkg/phone"
	"restaurant-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CreatedReservationResponse struct {
	Message string             `json:"message"`
	ID      string             `json:"id"`
	Date    reservation.Date   `json:"date"`
	Time    string             `json:"time"`
	Guests  int                `json:"guests"`
	Status  reservation.Status `json:"status"`
}

const MessageReservationCreated = "Votre demande de réservation a été envoyée avec succès !"

func FromCreated(r *reservation.Reservation) *CreatedReservationResponse {
	return &CreatedReservationResponse{
		Message: MessageReservationCreated,
		ID:      r.ID,
		Date:    r.Date,
		Time:    r.Time,
		Guests:  r.Guests,
		Status:  r.Status,
	}
}

type ReservationStatusResponse struct {
	ID     string             `json:"id"`
	Name   string             `json:"name"`
	Date   reservation.Date   `json:"date"`
	Time   string             `json:"time"`
	Guests int                `json:"guests"`
	Status reservation.Status `json:"status"`
}

func FromStatusView(v *queries.StatusView) *ReservationStatusResponse {
	out := &ReservationStatusResponse{}
	_ = copier.Copy(out, v)
	return out
}

// ReservationResponse is the full back-office record.
type ReservationResponse struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	Phone              string             `json:"phone"`
	PhoneDisplay       string             `json:"phoneDisplay"`
	Date               reservation.Date   `json:"date"`
	Time               string             `json:"time"`
	Guests             int                `json:"guests"`
	Message            string             `json:"message"`
	Status             reservation.Status `json:"status"`
	TableID            *int               `json:"tableId,omitempty"`
	TableName          string             `json:"tableName,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
	ConfirmedAt        *time.Time         `json:"confirmedAt,omitempty"`
	CancelledAt        *time.Time         `json:"cancelledAt,omitempty"`
	CancellationReason string             `json:"cancellationReason,omitempty"`
	UpdatedAt          *time.Time         `json:"updatedAt,omitempty"`
	IP                 string             `json:"ip,omitempty"`
}

func FromReservation(r *reservation.Reservation) *ReservationResponse {
	out := &ReservationResponse{}
	_ = copier.Copy(out, r)
	out.PhoneDisplay = phone.Format(r.Phone)
	return out
}

type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	Total        int                    `json:"total"`
	Page         int                    `json:"page"`
	TotalPages   int                    `json:"totalPages"`
}

func FromReservationPage(p *queries.ReservationPage) *ReservationListResponse {
	items := make([]*ReservationResponse, len(p.Reservations))
	for i := range p.Reservations {
		items[i] = FromReservation(&p.Reservations[i])
	}
	return &ReservationListResponse{
		Reservations: items,
		Total:        p.Total,
		Page:         p.Page,
		TotalPages:   p.TotalPages,
	}
}

type ReservationActionResponse struct {
	Message     string               `json:"message"`
	Reservation *ReservationResponse `json:"reservation"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
