package middleware

import (
	"guidely/internal/domain/availability"
	"guidely/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the request tags used by the DTOs to gin's
// validator:
//
//	hhmm     "09:30", "24:00"
//	isodate  "2026-03-02"
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errs.New("gin binding validator is not go-playground/validator")
	}
	if err := v.RegisterValidation("hhmm", validateClockTime); err != nil {
		return errs.Wrap(err, "register hhmm")
	}
	if err := v.RegisterValidation("isodate", validateISODate); err != nil {
		return errs.Wrap(err, "register isodate")
	}
	return nil
}

func validateClockTime(fl validator.FieldLevel) bool {
	_, err := availability.ParseClockTime(fl.Field().String())
	return err == nil
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := availability.ParseDate(fl.Field().String())
	return err == nil
}
