// Package forms defines the user-editable input forms and their local
// validation. Violations are reported as per-field messages addressed by
// wire field name, the same shape the backend uses, so screens can treat
// local and server-side validation feedback identically.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/personacli/internal/client/models"
)

// RegistrationForm is the input of the register operation. The role
// defaults to the non-administrative one when left zero.
type RegistrationForm struct {
	Nombre     string      `json:"nombre" validate:"required"`
	Apellido   string      `json:"apellido" validate:"required"`
	Correo     string      `json:"correo" validate:"required,email"`
	Contrasena string      `json:"contraseña" validate:"required,min=6"`
	RolID      models.Role `json:"rol_id" validate:"omitempty,oneof=1 2"`
}

// PersonaForm is the input of persona create and update operations.
type PersonaForm struct {
	Nombre          string      `json:"nombre" validate:"required"`
	Apellido        string      `json:"apellido" validate:"required"`
	Correo          string      `json:"correo" validate:"required,email"`
	Telefono        string      `json:"telefono" validate:"omitempty,min=6"`
	FechaNacimiento string      `json:"fecha_nacimiento" validate:"omitempty,datetime=2006-01-02"`
	Direccion       string      `json:"direccion"`
	RolID           models.Role `json:"rol_id" validate:"omitempty,oneof=1 2"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report violations under the wire field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError carries the per-field outcome of a failed local
// validation pass.
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	return "datos de formulario inválidos"
}

// AsValidationError unwraps err into a *ValidationError if there is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// Validate checks a form and returns nil or a *ValidationError.
func Validate(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return err
	}

	fields := make([]models.FieldError, 0, len(verr))
	for _, fe := range verr {
		fields = append(fields, models.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return &ValidationError{Fields: fields}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Este campo es obligatorio"
	case "email":
		return "El correo no es válido"
	case "min":
		return fmt.Sprintf("Debe tener al menos %s caracteres", fe.Param())
	case "datetime":
		return "Formato de fecha inválido (AAAA-MM-DD)"
	case "oneof":
		return "Valor no permitido"
	default:
		return "Valor inválido"
	}
}
