package snap

import (
	"fmt"
	"strings"

	"github.com/dzonerzy/snapcursor/internal/fuzzy"
)

// Ident is one member of a closed identifier set: the logical value and
// the symbolic name its default spelling is derived from.
type Ident[T comparable] struct {
	ID   T
	Name string
}

// Meta overrides the spellings of one identifier.
//
// For flag tables Name replaces the derived long name, Short adds a "-x"
// form and every alias adds another long name. For value tables the
// derived name is only used when neither Name nor Aliases are given.
type Meta[T comparable] struct {
	ID      T
	Name    string
	Short   byte
	Aliases []string
}

type tableKind uint8

const (
	flagTable tableKind = iota
	valueTable
)

// entry keeps the spellings of one identifier in registration order;
// spellings[0] is the primary one.
type entry[T comparable] struct {
	id        T
	spellings []string
}

// Table resolves argument text to identifiers of a closed set.
// It is immutable once built and safe for concurrent lookups.
type Table[T comparable] struct {
	kind    tableKind
	lookup  map[string]T
	entries []entry[T]
}

// Normalize derives a spelling from a symbolic name: every underscore
// becomes a hyphen. Normalize is idempotent.
func Normalize(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}

// LongFlag returns the default long flag spelling for a symbolic name
func LongFlag(name string) string {
	return "--" + Normalize(name)
}

// ShortFlag returns the spelling of a single character flag
func ShortFlag(c byte) string {
	return string([]byte{'-', c})
}

// NewFlagTable builds a table matching flag tokens ("--name", "-n") for
// the identifiers in set. Configuration mistakes are reported here, before
// any argument is looked at.
func NewFlagTable[T comparable](set []Ident[T], meta ...Meta[T]) (*Table[T], error) {
	return newTable(flagTable, set, meta)
}

// NewValueTable builds a table matching bare values (enumerations,
// subcommand names) for the identifiers in set.
func NewValueTable[T comparable](set []Ident[T], meta ...Meta[T]) (*Table[T], error) {
	return newTable(valueTable, set, meta)
}

// MustFlagTable is like NewFlagTable but panics on configuration errors.
// Intended for package level tables.
func MustFlagTable[T comparable](set []Ident[T], meta ...Meta[T]) *Table[T] {
	t, err := NewFlagTable(set, meta...)
	if err != nil {
		panic(err)
	}
	return t
}

// MustValueTable is like NewValueTable but panics on configuration errors
func MustValueTable[T comparable](set []Ident[T], meta ...Meta[T]) *Table[T] {
	t, err := NewValueTable(set, meta...)
	if err != nil {
		panic(err)
	}
	return t
}

//nolint:gocognit // one pass per validation step keeps error order deterministic
func newTable[T comparable](kind tableKind, set []Ident[T], meta []Meta[T]) (*Table[T], error) {
	index := make(map[T]int, len(set))
	for i, ident := range set {
		if _, dup := index[ident.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateIdent, ident.Name)
		}
		index[ident.ID] = i
	}

	overrides := make(map[T]*Meta[T], len(meta))
	for i := range meta {
		m := &meta[i]
		pos, known := index[m.ID]
		if !known {
			return nil, fmt.Errorf("%w: %v", ErrUnknownIdent, m.ID)
		}
		if _, dup := overrides[m.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateMeta, set[pos].Name)
		}
		if m.Short != 0 {
			if kind == valueTable {
				return nil, fmt.Errorf("%w: %q", ErrShortOnValue, set[pos].Name)
			}
			if m.Short == '-' || m.Short <= ' ' || m.Short > '~' {
				return nil, fmt.Errorf("%w: %q", ErrInvalidShort, m.Short)
			}
		}
		overrides[m.ID] = m
	}

	t := &Table[T]{
		kind:    kind,
		lookup:  make(map[string]T, len(set)*2),
		entries: make([]entry[T], 0, len(set)),
	}
	for _, ident := range set {
		spellings, err := t.spellingsFor(ident, overrides[ident.ID])
		if err != nil {
			return nil, err
		}
		for _, s := range spellings {
			if prev, taken := t.lookup[s]; taken && prev != ident.ID {
				return nil, fmt.Errorf("%w: %q", ErrAmbiguousName, s)
			}
			t.lookup[s] = ident.ID
		}
		t.entries = append(t.entries, entry[T]{id: ident.ID, spellings: spellings})
	}
	return t, nil
}

// spellingsFor lists every accepted spelling of ident, primary first
func (t *Table[T]) spellingsFor(ident Ident[T], m *Meta[T]) ([]string, error) {
	var out []string
	add := func(name string) error {
		if name == "" {
			return fmt.Errorf("%w for %q", ErrEmptyName, ident.Name)
		}
		if t.kind == flagTable {
			if strings.HasPrefix(name, "-") {
				return fmt.Errorf("%w: %q", ErrDashedName, name)
			}
			name = "--" + name
		}
		out = append(out, name)
		return nil
	}

	primary := Normalize(ident.Name)
	if m != nil && m.Name != "" {
		primary = m.Name
	}

	switch {
	case m == nil:
		if err := add(primary); err != nil {
			return nil, err
		}
	case t.kind == valueTable && m.Name == "" && len(m.Aliases) > 0:
		// explicit aliases replace the derived value name
	default:
		if err := add(primary); err != nil {
			return nil, err
		}
	}

	if m != nil {
		if m.Short != 0 {
			out = append(out, ShortFlag(m.Short))
		}
		for _, alias := range m.Aliases {
			if err := add(alias); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Lookup resolves text to its identifier
func (t *Table[T]) Lookup(text string) (T, bool) {
	id, ok := t.lookup[text]
	return id, ok
}

// Len returns the number of identifiers in the table
func (t *Table[T]) Len() int {
	return len(t.entries)
}

// Primary returns the primary spelling of id, or "" if id is not in the table
func (t *Table[T]) Primary(id T) string {
	for i := range t.entries {
		if t.entries[i].id == id {
			if len(t.entries[i].spellings) == 0 {
				return ""
			}
			return t.entries[i].spellings[0]
		}
	}
	return ""
}

// Spellings returns every accepted spelling of id, primary first
func (t *Table[T]) Spellings(id T) []string {
	for i := range t.entries {
		if t.entries[i].id == id {
			return append([]string(nil), t.entries[i].spellings...)
		}
	}
	return nil
}

// Names returns all accepted spellings in registration order
func (t *Table[T]) Names() []string {
	names := make([]string, 0, len(t.lookup))
	for i := range t.entries {
		names = append(names, t.entries[i].spellings...)
	}
	return names
}

// Suggest returns the registered spelling closest to text, or "" when
// nothing is close enough. Used to decorate unknown flag and value errors.
func (t *Table[T]) Suggest(text string) string {
	return fuzzy.FindBest(text, t.Names(), suggestDistance)
}

const suggestDistance = 2
