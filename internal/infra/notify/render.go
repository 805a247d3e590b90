package notify

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strconv"
	texttemplate "text/template"
	"time"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/pkg/phone"
	"restaurant-booking/internal/usecase/shared"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var ErrUnknownKind = errs.New("unknown notification kind")

// Message is one rendered notification, ready for any transport.
type Message struct {
	Subject string
	HTML    string
	Text    string
}

type Renderer struct {
	restaurant string
	location   *time.Location
	html       *htmltemplate.Template
	text       *texttemplate.Template
}

func NewRenderer(restaurant string, location *time.Location) (*Renderer, error) {
	html, err := htmltemplate.ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, errs.Wrap(err, "parse html templates")
	}
	text, err := texttemplate.ParseFS(templateFS, "templates/*.txt.tmpl")
	if err != nil {
		return nil, errs.Wrap(err, "parse text templates")
	}
	if location == nil {
		location = time.UTC
	}
	return &Renderer{
		restaurant: restaurant,
		location:   location,
		html:       html,
		text:       text,
	}, nil
}

type reservationView struct {
	Title       string
	Restaurant  string
	ID          string
	Name        string
	Email       string
	Phone       string
	PhoneE164   string
	Date        string
	Time        string
	Guests      int
	GuestsLabel string
	Message     string
	TableName   string
	Reason      string
	CreatedAt   string
}

type digestRow struct {
	Time      string
	Name      string
	Guests    int
	TableName string
	Status    string
}

type digestView struct {
	Title        string
	Restaurant   string
	Date         string
	LunchCount   int
	LunchGuests  int
	LunchUsage   int
	DinnerCount  int
	DinnerGuests int
	DinnerUsage  int
	Rows         []digestRow
}

func (r *Renderer) Render(n shared.Notification) (Message, error) {
	var (
		subject string
		data    any
	)
	switch n.Kind {
	case shared.KindCustomerConfirmation:
		subject = "Demande de réservation - " + r.restaurant
		data = r.reservationView(n.Reservation, "Demande de réservation")
	case shared.KindRestaurantNotification:
		res := n.Reservation
		subject = fmt.Sprintf("Nouvelle réservation - %s - %s à %s", res.Name, LongDate(res.Date), res.Time)
		data = r.reservationView(res, "Nouvelle réservation")
	case shared.KindReservationConfirmed:
		subject = "Réservation confirmée - " + r.restaurant
		data = r.reservationView(n.Reservation, "Réservation confirmée")
	case shared.KindReservationCancelled:
		subject = "Réservation annulée - " + r.restaurant
		data = r.reservationView(n.Reservation, "Réservation annulée")
	case shared.KindDailyDigest:
		if n.Digest == nil {
			return Message{}, errs.New("daily digest without payload")
		}
		subject = fmt.Sprintf("Réservations du %s - %s", LongDate(n.Digest.Date), r.restaurant)
		data = r.digestView(*n.Digest)
	default:
		return Message{}, errs.Wrapf(ErrUnknownKind, "%q", n.Kind)
	}

	name := string(n.Kind)
	var html, text bytes.Buffer
	if err := r.html.ExecuteTemplate(&html, name+".html.tmpl", data); err != nil {
		return Message{}, errs.Wrapf(err, "render %s html", name)
	}
	if err := r.text.ExecuteTemplate(&text, name+".txt.tmpl", data); err != nil {
		return Message{}, errs.Wrapf(err, "render %s text", name)
	}
	return Message{Subject: subject, HTML: html.String(), Text: text.String()}, nil
}

func (r *Renderer) reservationView(res reservation.Reservation, title string) reservationView {
	return reservationView{
		Title:       title,
		Restaurant:  r.restaurant,
		ID:          res.ID,
		Name:        res.Name,
		Email:       res.Email,
		Phone:       phone.Format(res.Phone),
		PhoneE164:   phone.E164(res.Phone),
		Date:        LongDate(res.Date),
		Time:        res.Time,
		Guests:      res.Guests,
		GuestsLabel: GuestsLabel(res.Guests),
		Message:     res.Message,
		TableName:   res.TableName,
		Reason:      res.CancellationReason,
		CreatedAt:   res.CreatedAt.In(r.location).Format("02/01/2006 15:04:05"),
	}
}

func (r *Renderer) digestView(d shared.Digest) digestView {
	rows := make([]digestRow, 0, len(d.Reservations))
	for _, res := range d.Reservations {
		rows = append(rows, digestRow{
			Time:      res.Time,
			Name:      res.Name,
			Guests:    res.Guests,
			TableName: res.TableName,
			Status:    statusLabels[res.Status],
		})
	}
	return digestView{
		Title:        "Service du jour",
		Restaurant:   r.restaurant,
		Date:         LongDate(d.Date),
		LunchCount:   d.LunchCount,
		LunchGuests:  d.LunchGuests,
		LunchUsage:   d.LunchUsage,
		DinnerCount:  d.DinnerCount,
		DinnerGuests: d.DinnerGuests,
		DinnerUsage:  d.DinnerUsage,
		Rows:         rows,
	}
}

var (
	frenchWeekdays = [...]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"}
	frenchMonths   = [...]string{
		"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre",
	}
	statusLabels = map[reservation.Status]string{
		reservation.StatusPending:   "en attente",
		reservation.StatusConfirmed: "confirmée",
		reservation.StatusCancelled: "annulée",
	}
)

// LongDate renders "samedi 14 juin 2025".
func LongDate(d reservation.Date) string {
	if d.IsZero() {
		return ""
	}
	t := d.Time()
	return fmt.Sprintf("%s %d %s %d",
		frenchWeekdays[t.Weekday()], t.Day(), frenchMonths[t.Month()-1], t.Year())
}

func GuestsLabel(n int) string {
	if n > 1 {
		return strconv.Itoa(n) + " personnes"
	}
	return strconv.Itoa(n) + " personne"
}
