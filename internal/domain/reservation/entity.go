package reservation

import "time"

type Reservation struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	Phone              string     `json:"phone"`
	Date               Date       `json:"date"`
	Time               string     `json:"time"`
	Guests             int        `json:"guests"`
	Message            string     `json:"message"`
	Status             Status     `json:"status"`
	TableID            *int       `json:"tableId,omitempty"`
	TableName          string     `json:"tableName,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	ConfirmedAt        *time.Time `json:"confirmedAt,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CancellationReason string     `json:"cancellationReason,omitempty"`
	UpdatedAt          *time.Time `json:"updatedAt,omitempty"`
	IP                 string     `json:"ip,omitempty"`
}

func (r *Reservation) IsActive() bool {
	return r.Status.IsActive()
}

func (r *Reservation) At(date Date, slot string) bool {
	return r.Date.Equal(date) && r.Time == slot
}

func (r *Reservation) AssignTable(id int, name string) {
	r.TableID = &id
	r.TableName = name
}

// Confirm is allowed from any status.
func (r *Reservation) Confirm(now time.Time) {
	r.Status = StatusConfirmed
	r.ConfirmedAt = &now
	r.UpdatedAt = &now
}

func (r *Reservation) Cancel(now time.Time, reason string) error {
	reason, err := NewCancellationReason(reason)
	if err != nil {
		return err
	}
	r.Status = StatusCancelled
	r.CancelledAt = &now
	r.CancellationReason = reason
	r.UpdatedAt = &now
	return nil
}

// Compare orders by date, then slot.
func Compare(a, b Reservation) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	switch {
	case a.Time < b.Time:
		return -1
	case a.Time > b.Time:
		return 1
	}
	return 0
}
