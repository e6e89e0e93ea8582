package snap

import (
	"errors"
)

// ExitError requests a specific exit code from a program built on a Cursor
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCodeDefaults holds common default codes.
type ExitCodeDefaults struct {
	Success       int // default: 0
	GeneralError  int // default: 1
	MisusageError int // default: 2
}

func defaultExitDefaults() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2}
}

// ExitCodeManager maps errors to process exit codes.
type ExitCodeManager struct {
	codesByParse map[ErrorType]int
	defaults     ExitCodeDefaults
}

// NewExitCodeManager returns a manager mapping every parse error to the
// misusage code
func NewExitCodeManager() *ExitCodeManager {
	m := &ExitCodeManager{
		codesByParse: make(map[ErrorType]int),
		defaults:     defaultExitDefaults(),
	}
	for _, typ := range []ErrorType{
		ErrorTypeUnknownFlag,
		ErrorTypeMissingValue,
		ErrorTypeInvalidInteger,
		ErrorTypeInvalidFloat,
		ErrorTypeInvalidValue,
	} {
		m.codesByParse[typ] = m.defaults.MisusageError
	}
	return m
}

// DefineParse overrides the exit code used for one parse error category
func (e *ExitCodeManager) DefineParse(typ ErrorType, code int) *ExitCodeManager {
	e.codesByParse[typ] = code
	return e
}

// Default replaces the manager's default codes. Parse error mappings made
// before are kept.
func (e *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager {
	e.defaults = d
	return e
}

// Resolve converts an error to an exit code.
// Precedence:
//  1. ExitError (requested code)
//  2. ParseError category mapping
//  3. GeneralError
func (e *ExitCodeManager) Resolve(err error) int {
	if err == nil {
		return e.defaults.Success
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		if code, ok := e.codesByParse[parseErr.Type]; ok {
			return code
		}
	}

	return e.defaults.GeneralError
}
