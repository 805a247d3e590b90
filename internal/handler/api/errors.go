package api

import (
	"errors"
	"net/http"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/domain/restaurant"
	"restaurant-booking/internal/handler/binding"
	"restaurant-booking/internal/handler/httperr"
	"restaurant-booking/internal/handler/middleware"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase/commands"
	"restaurant-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const (
	MessageNotFound        = "Réservation non trouvée"
	MessageSlotUnavailable = "Ce créneau n'est plus disponible. Veuillez choisir un autre horaire."
	MessageInvalidRequest  = "Format de requête invalide"
	MessageBodyTooLarge    = "Requête trop volumineuse"
	MessageInvalidDate     = "Date invalide"
)

type domainMessage struct {
	err error
	msg string
}

// Ordered: the first match becomes the response message.
var domainMessages = []domainMessage{
	{reservation.ErrInvalidName, "Le nom doit contenir entre 2 et 100 caractères"},
	{reservation.ErrInvalidEmail, "Email invalide"},
	{reservation.ErrInvalidPhone, "Numéro de téléphone invalide"},
	{reservation.ErrInvalidDate, MessageInvalidDate},
	{restaurant.ErrDateInPast, "La date ne peut pas être dans le passé"},
	{restaurant.ErrDateTooFarAhead, "Réservation possible jusqu'à 3 mois à l'avance"},
	{restaurant.ErrClosedDay, "Le restaurant est fermé ce jour-là"},
	{reservation.ErrInvalidTime, "Créneau horaire invalide"},
	{restaurant.ErrUnknownSlot, "Créneau horaire invalide"},
	{restaurant.ErrSundayDinnerClosed, "Le restaurant n'est pas ouvert le dimanche soir"},
	{reservation.ErrInvalidGuests, "Nombre de convives invalide (1-8)"},
	{reservation.ErrMessageTooLong, "Message trop long (500 caractères max)"},
	{reservation.ErrReasonTooLong, "Raison trop longue (500 caractères max)"},
	{reservation.ErrInvalidStatus, "Statut invalide"},
	{restaurant.ErrInvalidConfig, "Configuration invalide"},
}

type SlotConflictDetail struct {
	SuggestedTimes []string `json:"suggestedTimes"`
}

// respondError maps use case errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var slotErr *commands.SlotUnavailableError
	switch {
	case errors.As(err, &slotErr):
		msg := slotErr.Result.Message
		if msg == "" {
			msg = MessageSlotUnavailable
		}
		suggested := slotErr.Result.SuggestedTimes
		if suggested == nil {
			suggested = []string{}
		}
		httperr.AbortWithError(c, http.StatusConflict, err, msg, SlotConflictDetail{SuggestedTimes: suggested})
	case errs.Is(err, shared.ErrValidation):
		msgs := validationMessages(err)
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgs[0], msgs)
	case errs.Is(err, shared.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, MessageNotFound, nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, middleware.MessageInternalError, nil)
	}
}

func validationMessages(err error) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, dm := range domainMessages {
		if !errors.Is(err, dm.err) {
			continue
		}
		if _, dup := seen[dm.msg]; dup {
			continue
		}
		seen[dm.msg] = struct{}{}
		out = append(out, dm.msg)
	}
	if len(out) == 0 {
		out = append(out, binding.DefaultMessage)
	}
	return out
}

func respondBindError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, MessageBodyTooLarge, nil)
		return
	}
	if fields := binding.Messages(err); len(fields) > 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, err, fields[0].Message, fields)
		return
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, MessageInvalidRequest, nil)
}

func parseDate(c *gin.Context, raw string) (reservation.Date, bool) {
	d, err := reservation.ParseDate(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, MessageInvalidDate, nil)
		return reservation.Date{}, false
	}
	return d, true
}
