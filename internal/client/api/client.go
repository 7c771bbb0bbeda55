// Package api contains the REST transport for the personas backend.
// It exposes one method per remote operation and maps every failure into
// the client-side error taxonomy: ErrUnavailable for transport problems,
// *RequestError for requests the server rejected.
package api

import (
	"context"

	"github.com/dmitrijs2005/personacli/internal/client/models"
)

// Client abstracts the remote personas API.
//
// All methods honor context cancellation. No method retries: the backend is
// either reachable or the call fails with ErrUnavailable.
type Client interface {
	// Register creates a new login-capable account. The returned string is
	// the server's confirmation message.
	Register(ctx context.Context, reg RegisterRequest) (string, error)

	// Login exchanges credentials for a server-issued Identity.
	Login(ctx context.Context, creds models.Credentials) (models.Identity, error)

	// Verify confirms that already-known credentials are still valid.
	// Unlike Login it produces no Identity.
	Verify(ctx context.Context, creds models.Credentials) error

	// ListUsers returns all login-capable identities.
	ListUsers(ctx context.Context) ([]models.Identity, error)

	// ListPersonas returns persona records, optionally filtered by a
	// name/surname search term.
	ListPersonas(ctx context.Context, search string) ([]models.PersonRecord, error)

	GetPersona(ctx context.Context, id int64) (models.PersonRecord, error)
	CreatePersona(ctx context.Context, p PersonaRequest) (models.PersonRecord, error)
	UpdatePersona(ctx context.Context, id int64, p PersonaRequest) (models.PersonRecord, error)
	DeletePersona(ctx context.Context, id int64) error

	// Stats returns the dashboard counters.
	Stats(ctx context.Context) (models.Stats, error)

	// Health probes backend liveness.
	Health(ctx context.Context) error

	Close() error
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Nombre     string      `json:"nombre"`
	Apellido   string      `json:"apellido"`
	Correo     string      `json:"correo"`
	Contrasena string      `json:"contraseña"`
	RolID      models.Role `json:"rol_id"`
}

// PersonaRequest is the body of POST /personas and PUT /personas/:id.
// Optional fields are omitted when empty so partial updates stay partial.
type PersonaRequest struct {
	Nombre          string      `json:"nombre"`
	Apellido        string      `json:"apellido"`
	Correo          string      `json:"correo"`
	Telefono        string      `json:"telefono,omitempty"`
	FechaNacimiento string      `json:"fecha_nacimiento,omitempty"`
	Direccion       string      `json:"direccion,omitempty"`
	RolID           models.Role `json:"rol_id,omitempty"`
}
