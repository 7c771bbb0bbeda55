package session

import (
	"context"

	"github.com/dmitrijs2005/personacli/internal/client/api"
	"github.com/dmitrijs2005/personacli/internal/client/models"
	"github.com/dmitrijs2005/personacli/internal/logging"
)

// Verifier confirms that already-known credentials are still accepted by
// the backend. It is distinct from login: login produces a server-chosen
// Identity, verification only answers yes or no.
type Verifier interface {
	// Verify performs exactly one remote round-trip. Every ambiguous
	// outcome, including a transport failure, counts as not verified.
	Verify(ctx context.Context, creds models.Credentials) bool
}

type apiVerifier struct {
	client api.Client
	log    logging.Logger
}

// NewVerifier builds a Verifier over the remote API.
func NewVerifier(client api.Client, log logging.Logger) Verifier {
	return &apiVerifier{client: client, log: log}
}

func (v *apiVerifier) Verify(ctx context.Context, creds models.Credentials) bool {
	if err := v.client.Verify(ctx, creds); err != nil {
		v.log.Info(ctx, "stored credentials not verified", "correo", creds.Correo, "error", err)
		return false
	}
	return true
}
