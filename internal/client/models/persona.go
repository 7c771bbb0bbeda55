package models

import "time"

// PersonRecord is the managed "persona" business entity. It is owned by the
// backend; the client only requests mutations through the API and reflects
// the actions the current identity is allowed to take on it.
//
// A PersonRecord may or may not correspond to a login-capable Identity.
type PersonRecord struct {
	ID              int64      `json:"id"`
	Nombre          string     `json:"nombre"`
	Apellido        string     `json:"apellido"`
	Correo          string     `json:"correo"`
	Telefono        string     `json:"telefono,omitempty"`
	FechaNacimiento string     `json:"fecha_nacimiento,omitempty"`
	Direccion       string     `json:"direccion,omitempty"`
	RolID           Role       `json:"rol_id"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// Stats is the dashboard summary returned by GET /personas/stats.
type Stats struct {
	Total        int `json:"total"`
	ConTelefono  int `json:"conTelefono"`
	ConDireccion int `json:"conDireccion"`
}
