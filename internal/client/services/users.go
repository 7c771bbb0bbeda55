package services

import (
	"context"

	"github.com/dmitrijs2005/personacli/internal/client/api"
	"github.com/dmitrijs2005/personacli/internal/client/models"
	"github.com/dmitrijs2005/personacli/internal/client/session"
)

// UserService exposes the read-only users screen.
type UserService interface {
	// List returns all login-capable identities. Requires an active
	// session; there is no finer-grained restriction on reads.
	List(ctx context.Context) ([]models.Identity, error)
}

type userService struct {
	client   api.Client
	sessions *session.Controller
}

func NewUserService(client api.Client, sessions *session.Controller) UserService {
	return &userService{client: client, sessions: sessions}
}

func (s *userService) List(ctx context.Context) ([]models.Identity, error) {
	if _, ok := s.sessions.CurrentIdentity(); !ok {
		return nil, ErrNotAuthenticated
	}
	return s.client.ListUsers(ctx)
}
