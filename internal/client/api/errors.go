package api

import (
	"errors"

	"github.com/dmitrijs2005/personacli/internal/client/models"
)

// ErrUnavailable covers every transport-level failure: connection refused,
// timeout, a body that is not the expected envelope. The caller must treat
// all of these as "not verified" / "not done", never as success.
var ErrUnavailable = errors.New("server unavailable")

// RequestError is a request the server understood and rejected
// (success:false). Message is the server's text, passed through verbatim;
// Fields carries per-field validation feedback when the server provided it.
type RequestError struct {
	StatusCode int
	Message    string
	Fields     []models.FieldError
}

func (e *RequestError) Error() string {
	return e.Message
}

// AsRequestError unwraps err into a *RequestError if there is one.
func AsRequestError(err error) (*RequestError, bool) {
	var re *RequestError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
