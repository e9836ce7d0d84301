package apperr

import "fmt"

// Kind classifies an application error for transport mapping.
type Kind string

const (
	KindDuplicateIdentity    Kind = "DUPLICATE_IDENTITY"
	KindSelfReferential      Kind = "SELF_REFERENTIAL"
	KindInvalidState         Kind = "INVALID_STATE"
	KindUnauthorized         Kind = "UNAUTHORIZED"
	KindNotFound             Kind = "NOT_FOUND"
	KindRelationshipRequired Kind = "RELATIONSHIP_REQUIRED"
	KindInvalidCredentials   Kind = "INVALID_CREDENTIALS"
	KindValidation           Kind = "VALIDATION_ERROR"
	KindInternal             Kind = "INTERNAL_ERROR"
)

// Error carries a kind alongside a user-facing message. All kinds except
// KindInternal are recoverable and surfaced to the caller verbatim.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(err error, kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from an error chain, KindInternal when absent.
func KindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err is an application error of the given kind.
func IsKind(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}

// UserMessage returns the message safe to show the caller.
func UserMessage(err error) string {
	if e, ok := err.(*Error); ok {
		return e.Message
	}
	return "internal error"
}
