package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/personacli/internal/client/api"
	"github.com/dmitrijs2005/personacli/internal/client/forms"
	"github.com/dmitrijs2005/personacli/internal/client/models"
	"github.com/dmitrijs2005/personacli/internal/logging"
)

// Fallback texts shown when the server never got the chance to supply a
// specific message. This is the only layer where a generic message is
// acceptable; server-provided messages always pass through verbatim.
const (
	loginFallbackMessage    = "Error al iniciar sesión"
	registerFallbackMessage = "Error al registrar usuario"
	validationMessage       = "Revisa los campos del formulario"
)

// AuthError is the failure result of Login and Register: a user-facing
// message plus optional per-field detail. The message is the server's own
// text whenever one was provided.
type AuthError struct {
	Message string
	Fields  []models.FieldError
}

func (e *AuthError) Error() string {
	return e.Message
}

// Controller owns the current authentication state and orchestrates
// login, register, and logout. It is safe for concurrent use; readers that
// race Initialize observe Unknown.
type Controller struct {
	store    Store
	verifier Verifier
	client   api.Client
	log      logging.Logger

	initOnce sync.Once

	mu    sync.Mutex
	state SessionState
}

// NewController wires the credential store, the verifier, and the remote
// client. The state starts Unknown until Initialize resolves it.
func NewController(store Store, verifier Verifier, client api.Client, log logging.Logger) *Controller {
	return &Controller{
		store:    store,
		verifier: verifier,
		client:   client,
		log:      log,
		state:    Unknown(),
	}
}

// State returns the current SessionState.
func (c *Controller) State() SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CurrentIdentity returns the authenticated identity, if any.
func (c *Controller) CurrentIdentity() (models.Identity, bool) {
	return c.State().Identity()
}

func (c *Controller) setState(s SessionState) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// Initialize resolves the startup session exactly once: it loads the
// persisted pair, re-verifies the credentials against the backend, and
// settles on Authenticated or Anonymous. The persisted identity is never
// trusted without that round-trip. A stale, corrupt, or unverifiable
// session is cleared silently; Initialize never fails.
//
// Callers must let Initialize return before consulting the access guard;
// until then the state reads Unknown.
func (c *Controller) Initialize(ctx context.Context) {
	c.initOnce.Do(func() {
		id, creds, ok, err := c.store.Load(ctx)
		if err != nil {
			c.log.Warn(ctx, "credential store unreadable, starting anonymous", "error", err)
		}
		if err != nil || !ok {
			c.clearStore(ctx)
			c.setState(Anonymous())
			return
		}

		if !c.verifier.Verify(ctx, creds) {
			c.clearStore(ctx)
			c.setState(Anonymous())
			return
		}

		c.log.Info(ctx, "session restored", "correo", id.Correo, "rol", id.Role.String())
		c.setState(Authenticated(id))
	})
}

// Login authenticates against the backend. On success the identity and the
// submitted credentials are persisted and the state becomes Authenticated.
// On failure the state becomes Anonymous unless a previous session is still
// active, and the returned *AuthError carries the server's message verbatim
// when there is one.
func (c *Controller) Login(ctx context.Context, correo, contrasena string) (models.Identity, error) {
	creds := models.Credentials{Correo: correo, Contrasena: contrasena}

	id, err := c.client.Login(ctx, creds)
	if err != nil {
		c.settleAfterFailure()
		if re, ok := api.AsRequestError(err); ok && re.Message != "" {
			return models.Identity{}, &AuthError{Message: re.Message, Fields: re.Fields}
		}
		c.log.Warn(ctx, "login transport failure", "correo", correo, "error", err)
		return models.Identity{}, &AuthError{Message: loginFallbackMessage}
	}

	if err := c.store.Save(ctx, id, creds); err != nil {
		// The session is still valid for this process; only restart
		// survival is lost.
		c.log.Error(ctx, "failed to persist session", "error", err)
	}

	c.setState(Authenticated(id))
	c.log.Info(ctx, "login successful", "correo", id.Correo, "rol", id.Role.String())
	return id, nil
}

// settleAfterFailure resolves a failed login attempt: an already
// authenticated session stays untouched, anything else becomes Anonymous.
func (c *Controller) settleAfterFailure() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Phase() != PhaseAuthenticated {
		c.state = Anonymous()
	}
}

// Register creates a new account. It never changes the session state:
// registration is not auto-login in this design. The returned string is
// the server's confirmation message.
func (c *Controller) Register(ctx context.Context, form forms.RegistrationForm) (string, error) {
	if form.RolID == models.RoleUnknown {
		form.RolID = models.RoleStandard
	}

	if err := forms.Validate(form); err != nil {
		if ve, ok := forms.AsValidationError(err); ok {
			return "", &AuthError{Message: validationMessage, Fields: ve.Fields}
		}
		return "", &AuthError{Message: registerFallbackMessage}
	}

	msg, err := c.client.Register(ctx, api.RegisterRequest{
		Nombre:     form.Nombre,
		Apellido:   form.Apellido,
		Correo:     form.Correo,
		Contrasena: form.Contrasena,
		RolID:      form.RolID,
	})
	if err != nil {
		if re, ok := api.AsRequestError(err); ok && re.Message != "" {
			return "", &AuthError{Message: re.Message, Fields: re.Fields}
		}
		c.log.Warn(ctx, "register transport failure", "correo", form.Correo, "error", err)
		return "", &AuthError{Message: registerFallbackMessage}
	}
	return msg, nil
}

// Logout clears the credential store and sets the state to Anonymous.
// It is unconditional and never fails; a store error only costs the
// cleanup of the on-disk copy.
func (c *Controller) Logout(ctx context.Context) {
	c.clearStore(ctx)
	c.setState(Anonymous())
	c.log.Info(ctx, "logged out")
}

func (c *Controller) clearStore(ctx context.Context) {
	if err := c.store.Clear(ctx); err != nil {
		c.log.Warn(ctx, "failed to clear credential store", "error", err)
	}
}
