package attendance

import (
	"github.com/go-playground/validator/v10"

	"github.com/jmnolasco/pasedelista/core"
)

var (
	statusTag  = "attstatus"
	statusText = "status must be one of: asistio, falta, retardo"
)

func init() {
	_ = core.Validate.RegisterValidation(statusTag, statusValidation)
	core.RegisterCustomTranslation(statusTag, statusText)
}

func statusValidation(fl validator.FieldLevel) bool {
	return ValidStatus(fl.Field().String())
}
