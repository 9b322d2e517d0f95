// Package errors defines typed errors with categories for user-friendly reporting.
// Every failure of a user action falls into one of a small set of kinds; the kind
// drives logging while the user-visible text stays the lower-level message.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// ProviderMissing indicates no wallet provider is available.
	ProviderMissing Kind = "provider_missing"
	// SessionMissing indicates no connected address or selected campaign.
	SessionMissing Kind = "session_missing"
	// Validation indicates local input was rejected before any remote call.
	Validation Kind = "validation"
	// RemoteRejected indicates a state-changing call or its confirmation failed.
	RemoteRejected Kind = "remote_rejected"
	// RemoteRead indicates a read-only contract query failed.
	RemoteRead Kind = "remote_read"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

// Notice returns the text shown to the user: the wrapped error's own message
// when there is one, otherwise Message.
func (e *E) Notice() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf reports the kind of the first *E in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
