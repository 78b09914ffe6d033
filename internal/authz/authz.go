// Package authz defines the internal error taxonomy shared by validation, the
// auth logic layer, and the RPC facade. A Kind is mapped to a transport status
// code at the facade boundary (see internal/rpcapi) and nowhere else.
package authz

import "fmt"

// Kind identifies the class of an Error. The zero value is not a valid Kind.
type Kind int

const (
	// InvalidArgument marks a malformed request: an empty identifier, a zero
	// big integer, or an empty byte string.
	InvalidArgument Kind = iota + 1
	// AlreadyExists marks registration of a user id that is already present.
	AlreadyExists
	// Unauthenticated marks a failed verification, an unknown user on
	// challenge issuance, or an unknown auth_id on solve.
	Unauthenticated
	// NotFound is reserved for future use; the core never returns it.
	NotFound
	// UnsupportedBitSize marks a request for fixed parameters at a bit size
	// absent from the built-in table. Fatal at startup only.
	UnsupportedBitSize
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case AlreadyExists:
		return "already exists"
	case Unauthenticated:
		return "unauthenticated"
	case NotFound:
		return "not found"
	case UnsupportedBitSize:
		return "unsupported bit size"
	default:
		return "unknown error kind"
	}
}

// Error is a typed error carrying a Kind. Messages are deliberately generic:
// they never echo request fields, to limit information leakage to anonymous
// callers.
type Error struct {
	Kind Kind
	msg  string
}

func (e *Error) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return e.Kind.String()
}

// New constructs an Error of the given Kind with the generic message for that
// kind.
func New(kind Kind) *Error {
	return &Error{Kind: kind}
}

// Newf constructs an Error of the given Kind with a formatted message. Use
// only for messages that do not echo caller-supplied data.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Is reports whether err carries the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if ae, ok := err.(*Error); ok {
		e = ae
	} else {
		return false
	}
	return e.Kind == kind
}
