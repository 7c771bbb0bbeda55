// Package services contains the application services behind the CLI
// screens: persona CRUD with permission gating and the read-only users
// list. Services consult the permission resolver before issuing a mutating
// request; hiding an action in the UI is not the only enforcement.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/personacli/internal/client/api"
	"github.com/dmitrijs2005/personacli/internal/client/authz"
	"github.com/dmitrijs2005/personacli/internal/client/forms"
	"github.com/dmitrijs2005/personacli/internal/client/models"
	"github.com/dmitrijs2005/personacli/internal/client/session"
	"github.com/dmitrijs2005/personacli/internal/logging"
)

var (
	// ErrNotAuthenticated means the operation needs an active session.
	ErrNotAuthenticated = errors.New("sesión no iniciada")

	// ErrNotAllowed means the current identity lacks the right for the
	// requested action.
	ErrNotAllowed = errors.New("acción no permitida")
)

// PersonaService exposes the persona CRUD screens' operations.
type PersonaService interface {
	// List returns the persona records visible to the current identity,
	// optionally filtered by a search term. Non-administrators only see
	// records matching their own id or correo.
	List(ctx context.Context, search string) ([]models.PersonRecord, error)

	// Get returns a single record. Read access is unrestricted.
	Get(ctx context.Context, id int64) (models.PersonRecord, error)

	// Create validates the form and creates a record. Administrators only.
	Create(ctx context.Context, form forms.PersonaForm) (models.PersonRecord, error)

	// Update validates the form and updates an existing record. Allowed
	// for administrators and for the identity's own record.
	Update(ctx context.Context, id int64, form forms.PersonaForm) (models.PersonRecord, error)

	// Delete removes a record. Administrators only.
	Delete(ctx context.Context, id int64) error

	// Stats returns the dashboard counters.
	Stats(ctx context.Context) (models.Stats, error)
}

type personaService struct {
	client   api.Client
	sessions *session.Controller
	log      logging.Logger
}

// NewPersonaService binds the remote API to the current session.
func NewPersonaService(client api.Client, sessions *session.Controller, log logging.Logger) PersonaService {
	return &personaService{client: client, sessions: sessions, log: log}
}

func (s *personaService) identity() (models.Identity, error) {
	id, ok := s.sessions.CurrentIdentity()
	if !ok {
		return models.Identity{}, ErrNotAuthenticated
	}
	return id, nil
}

func (s *personaService) List(ctx context.Context, search string) ([]models.PersonRecord, error) {
	id, err := s.identity()
	if err != nil {
		return nil, err
	}

	recs, err := s.client.ListPersonas(ctx, search)
	if err != nil {
		return nil, err
	}
	return authz.ScopeList(id, recs), nil
}

func (s *personaService) Get(ctx context.Context, recordID int64) (models.PersonRecord, error) {
	if _, err := s.identity(); err != nil {
		return models.PersonRecord{}, err
	}
	return s.client.GetPersona(ctx, recordID)
}

func (s *personaService) Create(ctx context.Context, form forms.PersonaForm) (models.PersonRecord, error) {
	id, err := s.identity()
	if err != nil {
		return models.PersonRecord{}, err
	}
	if !authz.CanCreate(id) {
		return models.PersonRecord{}, ErrNotAllowed
	}
	if err := forms.Validate(form); err != nil {
		return models.PersonRecord{}, err
	}

	rec, err := s.client.CreatePersona(ctx, requestFromForm(form))
	if err != nil {
		return models.PersonRecord{}, err
	}
	s.log.Info(ctx, "persona created", "id", rec.ID, "correo", rec.Correo)
	return rec, nil
}

func (s *personaService) Update(ctx context.Context, recordID int64, form forms.PersonaForm) (models.PersonRecord, error) {
	id, err := s.identity()
	if err != nil {
		return models.PersonRecord{}, err
	}

	// Fetch the target first so the edit right is decided on the actual
	// record, not on caller-supplied data.
	existing, err := s.client.GetPersona(ctx, recordID)
	if err != nil {
		return models.PersonRecord{}, err
	}
	if !authz.CanEdit(id, existing) {
		return models.PersonRecord{}, ErrNotAllowed
	}
	if err := forms.Validate(form); err != nil {
		return models.PersonRecord{}, err
	}

	rec, err := s.client.UpdatePersona(ctx, recordID, requestFromForm(form))
	if err != nil {
		return models.PersonRecord{}, err
	}
	s.log.Info(ctx, "persona updated", "id", rec.ID)
	return rec, nil
}

func (s *personaService) Delete(ctx context.Context, recordID int64) error {
	id, err := s.identity()
	if err != nil {
		return err
	}
	if !authz.CanDelete(id, models.PersonRecord{ID: recordID}) {
		return ErrNotAllowed
	}

	if err := s.client.DeletePersona(ctx, recordID); err != nil {
		return err
	}
	s.log.Info(ctx, "persona deleted", "id", recordID)
	return nil
}

func (s *personaService) Stats(ctx context.Context) (models.Stats, error) {
	if _, err := s.identity(); err != nil {
		return models.Stats{}, err
	}
	return s.client.Stats(ctx)
}

func requestFromForm(form forms.PersonaForm) api.PersonaRequest {
	return api.PersonaRequest{
		Nombre:          form.Nombre,
		Apellido:        form.Apellido,
		Correo:          form.Correo,
		Telefono:        form.Telefono,
		FechaNacimiento: form.FechaNacimiento,
		Direccion:       form.Direccion,
		RolID:           form.RolID,
	}
}
