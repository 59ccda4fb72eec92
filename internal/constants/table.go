package constants

import (
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// ErrNotFound is returned when a symbol is not part of a table.
var ErrNotFound = errors.New("symbol not found")

// ErrCollision is returned when two entries share a symbol or alias.
var ErrCollision = errors.New("symbol collision")

// Kind distinguishes physical constants from unit scale factors.
type Kind int

const (
	KindConstant Kind = iota
	KindUnit
)

func (k Kind) String() string {
	if k == KindUnit {
		return "unit"
	}
	return "constant"
}

// Entry is a named value available to expressions.
type Entry struct {
	Symbol      string
	Aliases     []string // ASCII spellings for symbols that are hard to type
	Value       float64
	Description string
	Kind        Kind
}

// Names returns the symbol followed by its aliases.
func (e Entry) Names() []string {
	return append([]string{e.Symbol}, e.Aliases...)
}

// Table is an immutable, ordered symbol table.
type Table struct {
	entries []Entry
	index   map[string]int
}

// Normalize puts a symbol in the canonical form used for lookups.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// NewTable builds a table of the given kind. Entries keep their declaration
// order. A symbol or alias that appears twice is an error.
func NewTable(kind Kind, entries ...Entry) (*Table, error) {
	t := &Table{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		e.Kind = kind
		if err := t.add(e); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Merge combines tables into one namespace. Entries from earlier tables come
// first. Any name shared between tables is reported instead of shadowed.
func Merge(tables ...*Table) (*Table, error) {
	n := 0
	for _, src := range tables {
		n += len(src.entries)
	}
	t := &Table{index: make(map[string]int, n)}
	for _, src := range tables {
		for _, e := range src.entries {
			if err := t.add(e); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

func (t *Table) add(e Entry) error {
	if e.Symbol == "" {
		return fmt.Errorf("empty symbol for %q", e.Description)
	}
	pos := len(t.entries)
	for _, name := range e.Names() {
		key := Normalize(name)
		if prev, ok := t.index[key]; ok {
			return fmt.Errorf("%w: %q (%s) already defined by %q (%s)",
				ErrCollision, name, e.Kind, t.entries[prev].Symbol, t.entries[prev].Kind)
		}
		t.index[key] = pos
	}
	t.entries = append(t.entries, e)
	return nil
}

// Lookup resolves a symbol or alias.
func (t *Table) Lookup(name string) (Entry, bool) {
	i, ok := t.index[Normalize(name)]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Value resolves a symbol or alias to its value.
func (t *Table) Value(name string) (float64, error) {
	e, ok := t.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return e.Value, nil
}

// List returns all entries in declaration order.
func (t *Table) List() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Kind returns the entries of one kind in declaration order.
func (t *Table) Kind(kind Kind) []Entry {
	var out []Entry
	for _, e := range t.entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}
