// Package models defines client-side data models for the personas CLI:
// the authenticated Identity, the raw Credentials it was obtained with,
// the managed PersonRecord entity, and the shared validation error unit.
package models

import "encoding/json"

// Identity is the authenticated user's server-issued profile. It is owned
// by the session controller for the process lifetime and mirrored into the
// credential store so a session can survive a restart.
type Identity struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Correo   string `json:"correo"`
	Role     Role   `json:"rol"`
}

// identityWire mirrors Identity but captures both role keys the backend
// uses: the login endpoint returns "rol", the users endpoint "rol_id".
type identityWire struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Correo   string `json:"correo"`
	Rol      *Role  `json:"rol"`
	RolID    *Role  `json:"rol_id"`
}

// UnmarshalJSON folds the backend's two role keys into the single Role
// field; "rol" wins when both are present.
func (i *Identity) UnmarshalJSON(data []byte) error {
	var w identityWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	i.ID = w.ID
	i.Nombre = w.Nombre
	i.Apellido = w.Apellido
	i.Correo = w.Correo
	switch {
	case w.Rol != nil:
		i.Role = *w.Rol
	case w.RolID != nil:
		i.Role = *w.RolID
	default:
		i.Role = RoleUnknown
	}
	return nil
}

// Credentials is the identifier/secret pair submitted on login and kept
// verbatim for later re-verification. There is deliberately no token
// abstraction and no expiry in this design.
type Credentials struct {
	Correo     string `json:"correo"`
	Contrasena string `json:"contraseña"`
}

// FieldError is a structured validation failure addressed to a single form
// field by its wire name. Both the API envelope and local form validation
// produce these.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
