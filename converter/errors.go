package converter

import (
	"encoding/json"
	"fmt"
)

// ErrorKind categorizes delta parse failures.
type ErrorKind string

const (
	KindSyntax                    ErrorKind = "syntax"
	KindMissingOps                ErrorKind = "missing_ops_field"
	KindMalformedRoot             ErrorKind = "malformed_root_structure"
	KindMalformedOperation        ErrorKind = "malformed_operation"
	KindMalformedInsertAttributes ErrorKind = "malformed_insert_attributes"
	KindIncorrectInsertType       ErrorKind = "incorrect_insert_operation_type"
	KindInvalidBoldAttribute      ErrorKind = "invalid_bold_attribute_type"
	KindInvalidItalicAttribute    ErrorKind = "invalid_italic_attribute_type"
	KindInvalidCodeAttribute      ErrorKind = "invalid_code_attribute_type"
	KindInvalidHeaderAttribute    ErrorKind = "invalid_header_attribute_type"
	KindUnsupportedEmbed          ErrorKind = "unsupported_embed"
	KindUnknownAttribute          ErrorKind = "unknown_attribute"
)

// Sentinels for errors.Is. A *ParseError matches the sentinel of its kind.
var (
	ErrSyntax                    = &ParseError{Kind: KindSyntax}
	ErrMissingOps                = &ParseError{Kind: KindMissingOps}
	ErrMalformedRoot             = &ParseError{Kind: KindMalformedRoot}
	ErrMalformedOperation        = &ParseError{Kind: KindMalformedOperation}
	ErrMalformedInsertAttributes = &ParseError{Kind: KindMalformedInsertAttributes}
	ErrIncorrectInsertType       = &ParseError{Kind: KindIncorrectInsertType}
	ErrInvalidBoldAttribute      = &ParseError{Kind: KindInvalidBoldAttribute}
	ErrInvalidItalicAttribute    = &ParseError{Kind: KindInvalidItalicAttribute}
	ErrInvalidCodeAttribute      = &ParseError{Kind: KindInvalidCodeAttribute}
	ErrInvalidHeaderAttribute    = &ParseError{Kind: KindInvalidHeaderAttribute}
	ErrUnsupportedEmbed          = &ParseError{Kind: KindUnsupportedEmbed}
	ErrUnknownAttribute          = &ParseError{Kind: KindUnknownAttribute}
)

// ParseError reports why a delta document could not be converted.
// Key names the offending attribute, Value holds the offending JSON value and
// Err the underlying cause, when there is one.
type ParseError struct {
	Kind  ErrorKind
	Key   string
	Value any
	Err   error
}

func newValueError(kind ErrorKind, key string, value any) *ParseError {
	return &ParseError{Kind: kind, Key: key, Value: value}
}

func newSyntaxError(err error) *ParseError {
	return &ParseError{Kind: KindSyntax, Err: err}
}

// Error returns a plain text message safe to show in place of a document.
func (e *ParseError) Error() string {
	value := renderValue(e.Value)

	switch e.Kind {
	case KindSyntax:
		if e.Err == nil {
			return "failed to parse delta JSON"
		}
		return fmt.Sprintf("failed to parse delta JSON: %v", e.Err)
	case KindMissingOps:
		return "no ops field found in delta JSON root"
	case KindMalformedRoot:
		return fmt.Sprintf("delta root or ops has malformed structure: %s", value)
	case KindMalformedOperation:
		return fmt.Sprintf("malformed op found while parsing delta: %s", value)
	case KindMalformedInsertAttributes:
		return fmt.Sprintf("insert operation has incorrect attributes type, it must be an object: %s", value)
	case KindIncorrectInsertType:
		return fmt.Sprintf("insert operation has incorrect type, it must be a string for text or an object for an embed: %s", value)
	case KindInvalidBoldAttribute:
		return fmt.Sprintf("bold attribute must have type of bool: %s", value)
	case KindInvalidItalicAttribute:
		return fmt.Sprintf("italic attribute must have type of bool: %s", value)
	case KindInvalidCodeAttribute:
		return fmt.Sprintf("code-block attribute must have type of bool: %s", value)
	case KindInvalidHeaderAttribute:
		return fmt.Sprintf("header attribute must have type of non-negative integer: %s", value)
	case KindUnsupportedEmbed:
		return fmt.Sprintf("embedded %s inserts are not supported: %s", e.Key, value)
	case KindUnknownAttribute:
		return fmt.Sprintf("unknown attribute %q: %s", e.Key, value)
	default:
		return fmt.Sprintf("delta parse error (%s): %s", e.Kind, value)
	}
}

// Unwrap returns the underlying cause, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *ParseError of the same kind.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// renderValue prints a JSON value compactly for diagnostics.
func renderValue(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
