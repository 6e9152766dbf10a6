// Package validator centraliza la validación de DTOs con go-playground/validator.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldError describe un campo que no pasó la validación.
type FieldError struct {
	FailedField string `json:"field"`
	Tag         string `json:"tag"`
	Value       string `json:"param,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// decimal.Decimal se valida como float64 para poder usar gte, lte, etc.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	// txtype: dominio cerrado de tipos de transacción.
	_ = validate.RegisterValidation("txtype", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "IN", "OUT", "ADJUSTMENT":
			return true
		}
		return false
	})
}

// ValidateStruct valida data y devuelve la lista de campos inválidos (nil si es válido).
func ValidateStruct(data any) []*FieldError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []*FieldError{{FailedField: "", Tag: err.Error()}}
	}
	out := make([]*FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, &FieldError{
			FailedField: fe.StructNamespace(),
			Tag:         fe.Tag(),
			Value:       fe.Param(),
		})
	}
	return out
}

// Summary resume los errores en una sola línea legible.
func Summary(errs []*FieldError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		if e.Value != "" {
			parts = append(parts, fmt.Sprintf("%s (%s=%s)", e.FailedField, e.Tag, e.Value))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", e.FailedField, e.Tag))
	}
	return strings.Join(parts, ", ")
}
