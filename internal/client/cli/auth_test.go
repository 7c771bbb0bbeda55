package cli

import (
	"bufio"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/personacli/internal/client/api"
	"github.com/dmitrijs2005/personacli/internal/client/config"
	"github.com/dmitrijs2005/personacli/internal/client/models"
	"github.com/dmitrijs2005/personacli/internal/client/services"
	"github.com/dmitrijs2005/personacli/internal/client/session"
	"github.com/dmitrijs2005/personacli/internal/logging"
)

// fakeAPI records calls and returns canned results.
type fakeAPI struct {
	loginIdentity models.Identity
	loginErr      error
	registerErr   error

	registered []api.RegisterRequest
	statsCalls int
	listCalls  int
}

func (f *fakeAPI) Register(_ context.Context, reg api.RegisterRequest) (string, error) {
	f.registered = append(f.registered, reg)
	if f.registerErr != nil {
		return "", f.registerErr
	}
	return "Usuario registrado correctamente", nil
}

func (f *fakeAPI) Login(_ context.Context, _ models.Credentials) (models.Identity, error) {
	if f.loginErr != nil {
		return models.Identity{}, f.loginErr
	}
	return f.loginIdentity, nil
}

func (f *fakeAPI) Verify(_ context.Context, _ models.Credentials) error { return nil }

func (f *fakeAPI) ListUsers(_ context.Context) ([]models.Identity, error) { return nil, nil }

func (f *fakeAPI) ListPersonas(_ context.Context, _ string) ([]models.PersonRecord, error) {
	f.listCalls++
	return nil, nil
}

func (f *fakeAPI) GetPersona(_ context.Context, _ int64) (models.PersonRecord, error) {
	return models.PersonRecord{}, nil
}

func (f *fakeAPI) CreatePersona(_ context.Context, _ api.PersonaRequest) (models.PersonRecord, error) {
	return models.PersonRecord{}, nil
}

func (f *fakeAPI) UpdatePersona(_ context.Context, _ int64, _ api.PersonaRequest) (models.PersonRecord, error) {
	return models.PersonRecord{}, nil
}

func (f *fakeAPI) DeletePersona(_ context.Context, _ int64) error { return nil }

func (f *fakeAPI) Stats(_ context.Context) (models.Stats, error) {
	f.statsCalls++
	return models.Stats{}, nil
}

func (f *fakeAPI) Health(_ context.Context) error { return nil }
func (f *fakeAPI) Close() error                   { return nil }

// newTestApp builds an App over a fake backend and a fresh session
// database, with the startup check already resolved.
func newTestApp(t *testing.T, fc *fakeAPI) *App {
	t.Helper()
	ctx := context.Background()

	db, err := session.InitDatabase(ctx, filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logging.Discard()
	store := session.NewSQLiteStore(db)
	sessions := session.NewController(store, session.NewVerifier(fc, log), fc, log)
	sessions.Initialize(ctx)

	return &App{
		config:   &config.Config{},
		db:       db,
		api:      fc,
		sessions: sessions,
		personas: services.NewPersonaService(fc, sessions, log),
		users:    services.NewUserService(fc, sessions),
		log:      log,
		reader:   bufio.NewReader(strings.NewReader("")),
	}
}

// stubInputs replaces the prompt seams for the duration of the test.
// Text prompts and password prompts are consumed in order.
func stubInputs(t *testing.T, texts []string, passwords []string) {
	t.Helper()

	origText := getSimpleText
	origPassword := getPassword
	t.Cleanup(func() {
		getSimpleText = origText
		getPassword = origPassword
	})

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		v := texts[0]
		texts = texts[1:]
		return v, nil
	}
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, io.EOF
		}
		v := passwords[0]
		passwords = passwords[1:]
		return []byte(v), nil
	}
}

func TestLogin_Success(t *testing.T) {
	fc := &fakeAPI{loginIdentity: models.Identity{
		ID: 5, Nombre: "Juan", Apellido: "Pérez", Correo: "juan@test.com", Role: models.RoleStandard,
	}}
	app := newTestApp(t, fc)
	stubInputs(t, []string{"juan@test.com"}, []string{"secret123"})

	app.Login(context.Background())

	id, ok := app.sessions.CurrentIdentity()
	require.True(t, ok)
	require.Equal(t, "juan@test.com", id.Correo)
}

func TestLogin_ReplaysInterruptedCommand(t *testing.T) {
	fc := &fakeAPI{loginIdentity: models.Identity{
		ID: 1, Correo: "admin@test.com", Role: models.RoleAdministrator,
	}}
	app := newTestApp(t, fc)
	app.returnTo = "stats"
	stubInputs(t, []string{"admin@test.com"}, []string{"secret123"})

	app.Login(context.Background())

	require.Equal(t, 1, fc.statsCalls)
	require.Empty(t, app.returnTo)
}

func TestLogin_FailureKeepsAnonymous(t *testing.T) {
	fc := &fakeAPI{loginErr: &api.RequestError{StatusCode: 401, Message: "Credenciales inválidas"}}
	app := newTestApp(t, fc)
	stubInputs(t, []string{"juan@test.com"}, []string{"wrong"})

	app.Login(context.Background())

	_, ok := app.sessions.CurrentIdentity()
	require.False(t, ok)
}

func TestAllow_RedirectRemembersCommand(t *testing.T) {
	fc := &fakeAPI{loginErr: &api.RequestError{StatusCode: 401, Message: "Credenciales inválidas"}}
	app := newTestApp(t, fc)
	stubInputs(t, []string{"juan@test.com"}, []string{"wrong"})

	ok := app.allow(context.Background(), "list")

	require.False(t, ok)
	require.Equal(t, "list", app.returnTo)
	require.Zero(t, fc.listCalls)
}

func TestDispatch_ProtectedCommandAfterLogin(t *testing.T) {
	fc := &fakeAPI{loginIdentity: models.Identity{
		ID: 1, Correo: "admin@test.com", Role: models.RoleAdministrator,
	}}
	app := newTestApp(t, fc)
	stubInputs(t, []string{"admin@test.com"}, []string{"secret123"})

	// Anonymous "list" redirects to login; once it succeeds the command
	// is replayed automatically.
	quit := app.dispatch(context.Background(), "list")

	require.False(t, quit)
	require.Equal(t, 1, fc.listCalls)
	require.Empty(t, app.returnTo)
}

func TestRegister_DefaultsRoleAndStaysAnonymous(t *testing.T) {
	fc := &fakeAPI{}
	app := newTestApp(t, fc)
	stubInputs(t,
		[]string{"Ana", "García", "ana@test.com"},
		[]string{"secret123", "secret123"},
	)

	app.Register(context.Background())

	require.Len(t, fc.registered, 1)
	require.Equal(t, models.RoleStandard, fc.registered[0].RolID)
	_, ok := app.sessions.CurrentIdentity()
	require.False(t, ok)
}

func TestPromptRegistration_PasswordMismatch(t *testing.T) {
	stubInputs(t,
		[]string{"Ana", "García", "ana@test.com"},
		[]string{"secret123", "different"},
	)

	_, err := promptRegistration(bufio.NewReader(strings.NewReader("")), io.Discard)

	require.ErrorContains(t, err, "las contraseñas no coinciden")
}

func TestLogout_ClearsSessionAndReturnTo(t *testing.T) {
	fc := &fakeAPI{loginIdentity: models.Identity{ID: 5, Correo: "juan@test.com", Role: models.RoleStandard}}
	app := newTestApp(t, fc)
	stubInputs(t, []string{"juan@test.com"}, []string{"secret123"})
	app.Login(context.Background())

	app.returnTo = "stats"
	app.Logout(context.Background())

	_, ok := app.sessions.CurrentIdentity()
	require.False(t, ok)
	require.Empty(t, app.returnTo)
}
