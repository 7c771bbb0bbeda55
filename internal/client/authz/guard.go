package authz

import "github.com/dmitrijs2005/personacli/internal/client/session"

// Decision is what the access guard tells a caller to do with a protected
// view.
type Decision int

const (
	// DecisionAllow renders the protected content.
	DecisionAllow Decision = iota

	// DecisionWait renders nothing yet: the session check has not
	// resolved, so neither content nor a redirect would be correct.
	DecisionWait

	// DecisionRedirect sends the caller to the login view, remembering
	// where it wanted to go.
	DecisionRedirect
)

// Verdict is the guard's answer. ReturnTo is the originally requested
// destination, set only on redirect so the caller can come back after a
// successful login.
type Verdict struct {
	Decision Decision
	ReturnTo string
}

// Decide maps the current session state to a guard verdict for target.
// Pure function, no I/O.
func Decide(state session.SessionState, target string) Verdict {
	switch state.Phase() {
	case session.PhaseAuthenticated:
		return Verdict{Decision: DecisionAllow}
	case session.PhaseUnknown:
		return Verdict{Decision: DecisionWait}
	default:
		return Verdict{Decision: DecisionRedirect, ReturnTo: target}
	}
}
