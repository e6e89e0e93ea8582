package snap

import (
	"errors"
	"strconv"
)

// ErrorType represents the category of a parse failure.
// Every category is a caller input error; contract violations panic instead.
type ErrorType string

const (
	ErrorTypeUnknownFlag    ErrorType = "unknown_flag"
	ErrorTypeMissingValue   ErrorType = "missing_value"
	ErrorTypeInvalidInteger ErrorType = "invalid_integer"
	ErrorTypeInvalidFloat   ErrorType = "invalid_float"
	ErrorTypeInvalidValue   ErrorType = "invalid_value"
)

// Configuration errors reported by the table constructors
var (
	ErrDuplicateIdent = errors.New("duplicate identifier")
	ErrDuplicateMeta  = errors.New("duplicate metadata for identifier")
	ErrUnknownIdent   = errors.New("metadata for unknown identifier")
	ErrAmbiguousName  = errors.New("name registered for more than one identifier")
	ErrShortOnValue   = errors.New("short form is only valid for flags")
	ErrInvalidShort   = errors.New("invalid short flag character")
	ErrEmptyName      = errors.New("empty name")
	ErrDashedName     = errors.New("flag name must not start with a dash")
)

// ParseError describes the most recent failure of a Cursor operation.
// Only the fields relevant to Type are set.
type ParseError struct {
	Type ErrorType

	// Token is the offending argument text
	Token string

	// Expected and Got are positional counts for ErrorTypeMissingValue
	Expected int
	Got      int

	// ExpectedName names what the token should have been (ErrorTypeInvalidValue)
	ExpectedName string

	// Cause is the strconv failure reason for numeric errors
	Cause error
}

func (e *ParseError) Error() string {
	var buf [128]byte
	return string(e.AppendMessage(buf[:0]))
}

// Unwrap returns the numeric parse failure, if any
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// AppendMessage appends the one-line rendering of e to dst.
// It does not allocate when dst has enough spare capacity.
func (e *ParseError) AppendMessage(dst []byte) []byte {
	switch e.Type {
	case ErrorTypeUnknownFlag:
		dst = append(dst, "Unknown option `"...)
		dst = append(dst, e.Token...)
		dst = append(dst, '`')
	case ErrorTypeMissingValue:
		dst = append(dst, "Expected "...)
		dst = strconv.AppendInt(dst, int64(e.Expected), 10)
		dst = append(dst, " positional args but only got "...)
		dst = strconv.AppendInt(dst, int64(e.Got), 10)
	case ErrorTypeInvalidInteger:
		dst = append(dst, "Invalid integer `"...)
		dst = append(dst, e.Token...)
		dst = append(dst, "` ("...)
		dst = append(dst, causeText(e.Cause)...)
		dst = append(dst, ')')
	case ErrorTypeInvalidFloat:
		dst = append(dst, "Invalid float `"...)
		dst = append(dst, e.Token...)
		dst = append(dst, "` ("...)
		dst = append(dst, causeText(e.Cause)...)
		dst = append(dst, ')')
	case ErrorTypeInvalidValue:
		dst = append(dst, "Invalid value `"...)
		dst = append(dst, e.Token...)
		dst = append(dst, "`, expected "...)
		dst = append(dst, e.ExpectedName...)
	default:
		dst = append(dst, "unknown parse error"...)
	}
	return dst
}

// causeText extracts the bare reason from a strconv error so the rendered
// message does not repeat the function name and input.
func causeText(err error) string {
	if err == nil {
		return "invalid syntax"
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return numErr.Err.Error()
	}
	return err.Error()
}

// IsType reports whether err is a *ParseError of the given type
func IsType(err error, typ ErrorType) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Type == typ
}
