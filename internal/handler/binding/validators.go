// Package binding registers the custom validation tags used by request DTOs
// and turns validator failures into user-facing messages.
package binding

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/pkg/phone"

	ginbinding "github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// Register installs the frphone and slot tags on gin's validator. Safe to call repeatedly.
func Register() error {
	registerOnce.Do(func() {
		v, ok := ginbinding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		v.RegisterTagNameFunc(fieldName)
		if err := v.RegisterValidation("frphone", validateFrenchPhone); err != nil {
			registerErr = err
			return
		}
		registerErr = v.RegisterValidation("slot", validateSlot)
	})
	return registerErr
}

func validateFrenchPhone(fl validator.FieldLevel) bool {
	return phone.Valid(fl.Field().String())
}

func validateSlot(fl validator.FieldLevel) bool {
	return reservation.ValidSlot(fl.Field().String())
}

// fieldName reports errors under the JSON (or query) name the client sent.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}
