package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRole_UnmarshalJSON_NumberAndString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Role
	}{
		{"number admin", `1`, RoleAdministrator},
		{"string admin", `"1"`, RoleAdministrator},
		{"number standard", `2`, RoleStandard},
		{"string standard", `"2"`, RoleStandard},
		{"null", `null`, RoleUnknown},
		{"empty string", `""`, RoleUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Role
			require.NoError(t, json.Unmarshal([]byte(tt.in), &r))
			require.Equal(t, tt.want, r)
		})
	}
}

func TestRole_UnmarshalJSON_Garbage(t *testing.T) {
	var r Role
	require.Error(t, json.Unmarshal([]byte(`"admin"`), &r))
}

func TestRole_MarshalJSON_AlwaysNumeric(t *testing.T) {
	b, err := json.Marshal(RoleStandard)
	require.NoError(t, err)
	require.Equal(t, `2`, string(b))
}

func TestIdentity_UnmarshalJSON_FoldsRoleKeys(t *testing.T) {
	// The login endpoint sends "rol" (sometimes as a string), the users
	// endpoint sends "rol_id" as a number. Both must land in Role.
	var fromLogin Identity
	require.NoError(t, json.Unmarshal(
		[]byte(`{"id":2,"nombre":"Juan","apellido":"Pérez","correo":"juan@test.com","rol":"2"}`),
		&fromLogin))
	require.Equal(t, int64(2), fromLogin.ID)
	require.Equal(t, RoleStandard, fromLogin.Role)

	var fromUsers Identity
	require.NoError(t, json.Unmarshal(
		[]byte(`{"id":1,"nombre":"Ana","apellido":"Ruiz","correo":"ana@test.com","rol_id":1}`),
		&fromUsers))
	require.Equal(t, RoleAdministrator, fromUsers.Role)

	var both Identity
	require.NoError(t, json.Unmarshal(
		[]byte(`{"id":3,"correo":"x@test.com","rol":"1","rol_id":2}`),
		&both))
	require.Equal(t, RoleAdministrator, both.Role)
}

func TestCredentials_RoundTrip(t *testing.T) {
	c := Credentials{Correo: "juan@test.com", Contrasena: "123456"}
	b, err := json.Marshal(c)
	require.NoError(t, err)
	require.JSONEq(t, `{"correo":"juan@test.com","contraseña":"123456"}`, string(b))

	var back Credentials
	require.NoError(t, json.Unmarshal(b, &back))
	require.Equal(t, c, back)
}
