package binding

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var fieldMessages = map[string]string{
	"name":               "Le nom doit contenir entre 2 et 100 caractères",
	"email":              "Email invalide",
	"phone":              "Numéro de téléphone invalide",
	"date":               "Date invalide",
	"time":               "Créneau horaire invalide",
	"guests":             "Nombre de convives invalide (1-8)",
	"message":            "Message trop long (500 caractères max)",
	"reason":             "Raison trop longue (500 caractères max)",
	"status":             "Statut invalide",
	"page":               "Page invalide",
	"limit":              "Limite invalide",
	"apiKey":             "Clé API requise",
	"closedDays":         "Jours de fermeture invalides",
	"tables":             "Tables invalides",
	"timeSlots":          "Créneaux invalides",
	"serviceDuration":    "Durée de service invalide",
	"bufferTime":         "Temps de battement invalide",
	"sundayDinnerClosed": "Valeur invalide pour la fermeture du dimanche soir",
}

const DefaultMessage = "Requête invalide"

// Messages maps validator failures to one entry per field, in declaration order.
// It returns nil when err does not come from the validator.
func Messages(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]FieldError, 0, len(verrs))
	seen := make(map[string]struct{}, len(verrs))
	for _, fe := range verrs {
		field := topLevelField(fe.Namespace())
		if _, dup := seen[field]; dup {
			continue
		}
		seen[field] = struct{}{}
		msg, ok := fieldMessages[field]
		if !ok {
			msg = DefaultMessage
		}
		out = append(out, FieldError{Field: field, Message: msg})
	}
	return out
}

// topLevelField reduces "Request.tables[0].capacity" to "tables".
func topLevelField(namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		rest = namespace
	}
	if i := strings.IndexAny(rest, ".["); i >= 0 {
		rest = rest[:i]
	}
	return rest
}
