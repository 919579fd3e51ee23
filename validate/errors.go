package validate

import "errors"

// Kind classifies a validation failure so callers can branch without
// string-matching messages.
type Kind int

const (
	KindRequired Kind = iota
	KindLength
	KindPattern
	KindNumeric
	KindJSON
	KindTemplate
	KindSQL
	KindConsistency
	KindDuplicate
	KindLimit
)

func (k Kind) String() string {
	switch k {
	case KindRequired:
		return "required"
	case KindLength:
		return "length"
	case KindPattern:
		return "pattern"
	case KindNumeric:
		return "numeric"
	case KindJSON:
		return "json"
	case KindTemplate:
		return "template"
	case KindSQL:
		return "sql"
	case KindConsistency:
		return "consistency"
	case KindDuplicate:
		return "duplicate"
	case KindLimit:
		return "limit"
	}
	return "unknown"
}

// Error is a user-facing validation failure. Message is displayed verbatim
// by the admin screens, so the wording is part of the contract.
type Error struct {
	Kind    Kind
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

func fail(kind Kind, field, message string) *Error {
	return &Error{Kind: kind, Field: field, Message: message}
}

// AsError unwraps err into a validation Error if it is one.
func AsError(err error) (*Error, bool) {
	var ve *Error
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
