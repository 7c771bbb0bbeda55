// Package session owns the client-side authentication state: the credential
// store that survives restarts, the verifier that re-validates stored
// credentials against the backend, and the controller that ties both
// together and exposes the current SessionState.
package session

import "github.com/dmitrijs2005/personacli/internal/client/models"

// Phase is the tag of the SessionState variant.
type Phase int

const (
	// PhaseUnknown means startup verification has not resolved yet.
	PhaseUnknown Phase = iota

	// PhaseAnonymous means there is no valid session.
	PhaseAnonymous

	// PhaseAuthenticated means a verified Identity is active.
	PhaseAuthenticated
)

func (p Phase) String() string {
	switch p {
	case PhaseAnonymous:
		return "anonymous"
	case PhaseAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// SessionState is a tagged variant over the three phases. The identity is
// only reachable through the Authenticated variant, so "loading but also
// authenticated" cannot be expressed, let alone observed.
type SessionState struct {
	phase    Phase
	identity models.Identity
}

// Unknown is the initial state, before Initialize resolves.
func Unknown() SessionState {
	return SessionState{phase: PhaseUnknown}
}

// Anonymous is the state with no valid session.
func Anonymous() SessionState {
	return SessionState{phase: PhaseAnonymous}
}

// Authenticated wraps a verified identity.
func Authenticated(id models.Identity) SessionState {
	return SessionState{phase: PhaseAuthenticated, identity: id}
}

// Phase returns the variant tag.
func (s SessionState) Phase() Phase {
	return s.phase
}

// Identity returns the active identity, and whether there is one.
func (s SessionState) Identity() (models.Identity, bool) {
	if s.phase != PhaseAuthenticated {
		return models.Identity{}, false
	}
	return s.identity, true
}
