// Package validators registers the request validation tags used by the
// API's binding structs.
package validators

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"

	domain "github.com/BruksfildServices01/garage-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/garage-booking/internal/models"
)

const (
	TagISODate           = "isodate"
	TagAppointmentStatus = "apptstatus"
	TagNotBlank          = "notblank"
)

var once sync.Once

// Register adds the custom tags to gin's validator. Safe to call repeatedly.
func Register() error {
	var err error
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("validators: gin validator engine is not go-playground/validator")
			return
		}
		err = RegisterOn(v)
	})
	return err
}

func RegisterOn(v *validator.Validate) error {
	if err := v.RegisterValidation(TagNotBlank, nonstandard.NotBlank); err != nil {
		return err
	}
	if err := v.RegisterValidation(TagISODate, IsISODate); err != nil {
		return err
	}
	return v.RegisterValidation(TagAppointmentStatus, IsAppointmentStatus)
}

func IsISODate(fl validator.FieldLevel) bool {
	_, err := models.ParseDate(fl.Field().String())
	return err == nil
}

// IsAppointmentStatus accepts any casing of a known status.
func IsAppointmentStatus(fl validator.FieldLevel) bool {
	_, err := domain.ParseStatus(fl.Field().String())
	return err == nil
}

// FailedOn reports whether err is a validation failure of tag on the struct
// field named field.
func FailedOn(err error, field, tag string) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.StructField() == field && fe.Tag() == tag {
			return true
		}
	}
	return false
}
