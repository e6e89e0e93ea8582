package snap

import (
	"github.com/google/shlex"
)

// noBoundary marks a positional boundary that has not been discovered yet
const noBoundary = -1

// Cursor walks an argument list one token at a time.
//
// The caller decides at every step whether it wants a flag, a positional
// value or a typed value. Tokens are borrowed: the cursor never copies or
// modifies the slice it was created with.
//
// A Cursor is not safe for concurrent use.
type Cursor struct {
	args []string
	pos  int

	// boundary is the first index from which every token is positional.
	// Only HasMoreFlags sets it and it never moves backwards.
	boundary int

	// Pre-allocated error reused for every failure (avoids allocations in
	// error paths). hasErr reports whether it holds the latest failure.
	lastErr ParseError
	hasErr  bool
}

// NewCursor creates a cursor over args. Stripping the program name is the
// caller's job.
func NewCursor(args []string) *Cursor {
	return &Cursor{args: args, boundary: noBoundary}
}

// Reset points c at a new argument list and forgets all state, including
// the last error
func (c *Cursor) Reset(args []string) {
	*c = Cursor{args: args, boundary: noBoundary}
}

// NewCursorString splits cmdline with shell quoting rules and creates a
// cursor over the resulting tokens.
func NewCursorString(cmdline string) (*Cursor, error) {
	args, err := shlex.Split(cmdline)
	if err != nil {
		return nil, err
	}
	return NewCursor(args), nil
}

// Sub returns a fresh cursor over the unconsumed tokens. It is how a
// subcommand takes over after its name was read as a value.
func (c *Cursor) Sub() *Cursor {
	return NewCursor(c.Remaining())
}

// HasMore reports whether any token is left
func (c *Cursor) HasMore() bool {
	return c.pos < len(c.args)
}

// Peek returns the current token without consuming it
func (c *Cursor) Peek() (string, bool) {
	if !c.HasMore() {
		return "", false
	}
	return c.args[c.pos], true
}

// Remaining returns all unconsumed tokens, current one included.
// The slice shares the cursor's backing array.
func (c *Cursor) Remaining() []string {
	return c.args[c.pos:]
}

// Pos returns the index of the current token in the original list
func (c *Cursor) Pos() int {
	return c.pos
}

// Next consumes and returns the current token.
// It panics when nothing is left; check HasMore first.
func (c *Cursor) Next() string {
	if !c.HasMore() {
		panic("snap: Next called with no arguments left")
	}
	tok := c.args[c.pos]
	c.pos++
	return tok
}

// TakeNext is Next guarded by HasMore
func (c *Cursor) TakeNext() (string, bool) {
	if !c.HasMore() {
		return "", false
	}
	return c.Next(), true
}

// HasMoreFlags reports whether the current token looks like a flag.
//
// Classification is sticky: the first positional token or a "--"
// terminator fixes the boundary and every later call returns false
// without looking at the tokens again. The terminator is consumed here
// and never returned to the caller.
func (c *Cursor) HasMoreFlags() bool {
	if !c.HasMore() {
		return false
	}
	if c.boundary != noBoundary && c.boundary <= c.pos {
		return false
	}

	arg := c.args[c.pos]
	switch {
	case len(arg) < 2:
		// "", "-" and single characters are values
		c.boundary = c.pos
	case len(arg) == 2:
		switch {
		case arg[0] != '-':
			c.boundary = c.pos
		case arg[1] == '-':
			c.pos++
			c.boundary = c.pos
		default:
			// short flag
			return true
		}
	case arg[0] == '-':
		// long flag
		return true
	default:
		c.boundary = c.pos
	}
	return false
}

// Err returns the failure recorded by the most recent failing operation.
// The value is overwritten by the next failure, so inspect it right away.
func (c *Cursor) Err() *ParseError {
	if !c.hasErr {
		return nil
	}
	return &c.lastErr
}

// fail records a new failure, discarding the previous one
func (c *Cursor) fail(e ParseError) *ParseError {
	c.lastErr = e
	c.hasErr = true
	return &c.lastErr
}

// ExpectString consumes the next token whatever it looks like
func (c *Cursor) ExpectString() (string, error) {
	if !c.HasMore() {
		return "", c.fail(ParseError{Type: ErrorTypeMissingValue, Expected: 1, Got: 0})
	}
	return c.Next(), nil
}

// ExpectN consumes the next n tokens. The returned slice shares the
// cursor's backing array. On failure nothing is consumed. A negative n
// panics.
func (c *Cursor) ExpectN(n int) ([]string, error) {
	if n < 0 {
		panic("snap: ExpectN called with a negative count")
	}
	rest := c.Remaining()
	if len(rest) < n {
		return nil, c.fail(ParseError{Type: ErrorTypeMissingValue, Expected: n, Got: len(rest)})
	}
	c.pos += n
	return rest[:n:n], nil
}

// ReportUnexpectedPrevious records an invalid value error blaming the
// token consumed last. It panics when nothing has been consumed.
func (c *Cursor) ReportUnexpectedPrevious(expectedName string) error {
	if c.pos == 0 {
		panic("snap: ReportUnexpectedPrevious called before any argument was consumed")
	}
	return c.fail(ParseError{
		Type:         ErrorTypeInvalidValue,
		Token:        c.args[c.pos-1],
		ExpectedName: expectedName,
	})
}

// MatchFlag resolves the current token against a flag table.
//
// It returns ok == false with a nil error once flags are exhausted, which
// ends a flag loop. An unregistered flag yields an unknown flag error and
// is left unconsumed, so the caller may still treat it as a value or skip
// it with Next.
func MatchFlag[T comparable](c *Cursor, flags *Table[T]) (id T, ok bool, err error) {
	if !c.HasMoreFlags() {
		return id, false, nil
	}
	tok := c.args[c.pos]
	id, found := flags.Lookup(tok)
	if !found {
		return id, false, c.fail(ParseError{Type: ErrorTypeUnknownFlag, Token: tok})
	}
	c.pos++
	return id, true, nil
}
