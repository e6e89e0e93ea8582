package snap

import (
	"errors"
	"strconv"
	"unsafe"
)

// Signed is satisfied by every signed integer kind
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is satisfied by every unsigned integer kind
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is satisfied by every floating point kind
type Float interface {
	~float32 | ~float64
}

// Value lists the exact types ExpectValue can produce. Anything else is
// rejected by the compiler.
type Value interface {
	bool | string |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 | uintptr |
		float32 | float64
}

// Boolean literals accepted by ExpectBool. Matching is case sensitive.
const (
	trueLiteral  = "true"
	falseLiteral = "false"
)

// ExpectBool consumes the next token as "true" or "false"
func ExpectBool(c *Cursor) (bool, error) {
	tok, err := c.ExpectString()
	if err != nil {
		return false, err
	}
	switch tok {
	case trueLiteral:
		return true, nil
	case falseLiteral:
		return false, nil
	}
	return false, c.ReportUnexpectedPrevious("bool")
}

// integerBase picks the strconv base for tok. Only an explicit 0x, 0o or 0b
// prefix selects another radix; a leading zero alone stays decimal.
func integerBase(tok string) int {
	body := tok
	if len(body) > 0 && (body[0] == '-' || body[0] == '+') {
		body = body[1:]
	}
	if len(body) < 2 || body[0] != '0' {
		return 0
	}
	switch body[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return 0
	}
	return 10
}

// ExpectInt consumes the next token as a signed integer of T's width.
// Base prefixes (0x, 0o, 0b) and underscores are accepted.
func ExpectInt[T Signed](c *Cursor) (T, error) {
	tok, err := c.ExpectString()
	if err != nil {
		return 0, err
	}
	var zero T
	n, err := strconv.ParseInt(tok, integerBase(tok), int(unsafe.Sizeof(zero))*8)
	if err != nil {
		return 0, c.numberError(ErrorTypeInvalidInteger, tok, err)
	}
	return T(n), nil
}

// ExpectUint consumes the next token as an unsigned integer of T's width
func ExpectUint[T Unsigned](c *Cursor) (T, error) {
	tok, err := c.ExpectString()
	if err != nil {
		return 0, err
	}
	var zero T
	n, err := strconv.ParseUint(tok, integerBase(tok), int(unsafe.Sizeof(zero))*8)
	if err != nil {
		return 0, c.numberError(ErrorTypeInvalidInteger, tok, err)
	}
	return T(n), nil
}

// ExpectFloat consumes the next token as a floating point number
func ExpectFloat[T Float](c *Cursor) (T, error) {
	tok, err := c.ExpectString()
	if err != nil {
		return 0, err
	}
	var zero T
	f, err := strconv.ParseFloat(tok, int(unsafe.Sizeof(zero))*8)
	if err != nil {
		return 0, c.numberError(ErrorTypeInvalidFloat, tok, err)
	}
	return T(f), nil
}

// numberError keeps only the strconv reason so the error does not pin
// the *strconv.NumError allocation.
func (c *Cursor) numberError(typ ErrorType, tok string, err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		err = numErr.Err
	}
	return c.fail(ParseError{Type: typ, Token: tok, Cause: err})
}

// ExpectValue consumes the next token and converts it to T
//
//nolint:gocyclo,cyclop // one case per supported type
func ExpectValue[T Value](c *Cursor) (T, error) {
	var v T
	var err error
	switch p := any(&v).(type) {
	case *bool:
		*p, err = ExpectBool(c)
	case *string:
		*p, err = c.ExpectString()
	case *int:
		*p, err = ExpectInt[int](c)
	case *int8:
		*p, err = ExpectInt[int8](c)
	case *int16:
		*p, err = ExpectInt[int16](c)
	case *int32:
		*p, err = ExpectInt[int32](c)
	case *int64:
		*p, err = ExpectInt[int64](c)
	case *uint:
		*p, err = ExpectUint[uint](c)
	case *uint8:
		*p, err = ExpectUint[uint8](c)
	case *uint16:
		*p, err = ExpectUint[uint16](c)
	case *uint32:
		*p, err = ExpectUint[uint32](c)
	case *uint64:
		*p, err = ExpectUint[uint64](c)
	case *uintptr:
		*p, err = ExpectUint[uintptr](c)
	case *float32:
		*p, err = ExpectFloat[float32](c)
	case *float64:
		*p, err = ExpectFloat[float64](c)
	default:
		panic("unreachable")
	}
	return v, err
}

// ExpectEnum consumes the next token and resolves it through a value
// table. An unmatched token stays consumed and is reported as an invalid
// value of expectedName.
func ExpectEnum[T comparable](c *Cursor, values *Table[T], expectedName string) (T, error) {
	var zero T
	tok, err := c.ExpectString()
	if err != nil {
		return zero, err
	}
	id, ok := values.Lookup(tok)
	if !ok {
		return zero, c.ReportUnexpectedPrevious(expectedName)
	}
	return id, nil
}
