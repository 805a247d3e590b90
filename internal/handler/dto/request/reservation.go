package request

import (
	"strings"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/usecase/queries"
)

type CreateReservationRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required,frphone"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required,slot"`
	Guests  int    `json:"guests" binding:"required,min=1,max=8"`
	Message string `json:"message" binding:"max=500"`
}

func (r CreateReservationRequest) ToDraft(clientIP string) reservation.Draft {
	return reservation.Draft{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Phone:   r.Phone,
		Date:    strings.TrimSpace(r.Date),
		Time:    r.Time,
		Guests:  r.Guests,
		Message: strings.TrimSpace(r.Message),
		IP:      clientIP,
	}
}

type CancelReservationRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type ListReservationsQuery struct {
	Date   string `form:"date"`
	Status string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1"`
}

func (q ListReservationsQuery) ToFilter() (queries.ListFilter, error) {
	filter := queries.ListFilter{Page: q.Page, Limit: q.Limit}
	if q.Date != "" {
		d, err := reservation.ParseDate(q.Date)
		if err != nil {
			return queries.ListFilter{}, err
		}
		filter.Date = &d
	}
	if q.Status != "" {
		s, err := reservation.NewStatus(q.Status)
		if err != nil {
			return queries.ListFilter{}, err
		}
		filter.Status = &s
	}
	return filter, nil
}
