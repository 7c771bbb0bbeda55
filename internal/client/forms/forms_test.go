package forms

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/personacli/internal/client/models"
)

func fieldNames(ve *ValidationError) []string {
	names := make([]string, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestValidate_RegistrationForm_OK(t *testing.T) {
	err := Validate(RegistrationForm{
		Nombre:     "Juan",
		Apellido:   "Pérez",
		Correo:     "juan@test.com",
		Contrasena: "123456",
		RolID:      models.RoleStandard,
	})
	require.NoError(t, err)
}

func TestValidate_RegistrationForm_ReportsWireFieldNames(t *testing.T) {
	err := Validate(RegistrationForm{
		Nombre:     "",
		Apellido:   "Pérez",
		Correo:     "not-an-email",
		Contrasena: "123",
	})
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	require.ElementsMatch(t, []string{"nombre", "correo", "contraseña"}, fieldNames(ve))
}

func TestValidate_RegistrationForm_ShortSecretMessage(t *testing.T) {
	err := Validate(RegistrationForm{
		Nombre:     "Juan",
		Apellido:   "Pérez",
		Correo:     "juan@test.com",
		Contrasena: "123",
	})
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Fields, 1)
	require.Equal(t, "contraseña", ve.Fields[0].Field)
	require.Equal(t, "Debe tener al menos 6 caracteres", ve.Fields[0].Message)
}

func TestValidate_PersonaForm_OptionalFields(t *testing.T) {
	// Everything optional left empty is fine.
	require.NoError(t, Validate(PersonaForm{
		Nombre:   "Ana",
		Apellido: "Ruiz",
		Correo:   "ana@test.com",
	}))

	// A present birth date must be ISO formatted.
	err := Validate(PersonaForm{
		Nombre:          "Ana",
		Apellido:        "Ruiz",
		Correo:          "ana@test.com",
		FechaNacimiento: "01/05/1990",
	})
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	require.Equal(t, []string{"fecha_nacimiento"}, fieldNames(ve))
}

func TestValidate_PersonaForm_UnknownRoleRejected(t *testing.T) {
	err := Validate(PersonaForm{
		Nombre:   "Ana",
		Apellido: "Ruiz",
		Correo:   "ana@test.com",
		RolID:    models.Role(9),
	})
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	require.Equal(t, []string{"rol_id"}, fieldNames(ve))
}
