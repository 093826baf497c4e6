package http

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/Luuchoh/Propiedades-premium/pkg/errors"
)

// fieldMessages are the messages shown by the web client, keyed by JSON field.
var fieldMessages = map[string]string{
	"propertyName":     "Nombre de la propiedad es requerido",
	"propertyType":     "Tipo de propiedad es requerido",
	"address":          "Dirección es requerida",
	"price":            "Precio es requerido",
	"rooms":            "Habitaciones es requerido",
	"bathrooms":        "Baños es requerido",
	"area":             "Área es requerida",
	"yearConstruction": "Año de construcción es requerido",
	"annualTax":        "Impuesto anual es requerido",
	"monthlyExpenses":  "Gastos mensuales es requerido",
	"description":      "Descripción es requerida",
	"features":         "Características es requerido",
	"status":           "Estado debe ser Disponible, Vendido o Reservado",
	"dni":              "DNI es requerido",
	"ownerName":        "Nombre es requerido",
	"phone":            "Teléfono es requerido",
	"email":            "Email es requerido",
	"photo":            "Foto es requerida",
	"birthday":         "Fecha de nacimiento es requerida",
	"idProperty":       "Identificador de la propiedad es requerido",
	"idOwner":          "Identificador del propietario es requerido",
	"mongoGeneralId":   "Identificador es requerido",
}

// RequestValidator implements echo.Validator with go-playground/validator.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{validate: v}
}

// Validate reports every rejected field as one INVALID_ARGUMENT error.
func (v *RequestValidator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !apperrors.As(err, &verrs) {
		return apperrors.NewAppError(apperrors.ErrInvalidArgument, "invalid request", err)
	}

	fields := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperrors.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe.Field()),
		})
	}
	return apperrors.NewValidationError(fields)
}

func messageFor(field string) string {
	if msg, ok := fieldMessages[field]; ok {
		return msg
	}
	return field + " es inválido"
}
