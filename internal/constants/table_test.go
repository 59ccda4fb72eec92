package constants

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultTable(t *testing.T) {
	tbl, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if tbl.Len() != len(physicsEntries)+len(unitEntries) {
		t.Errorf("Len() = %d, want %d", tbl.Len(), len(physicsEntries)+len(unitEntries))
	}

	tests := []struct {
		name string
		want float64
	}{
		{"h", 6.63e-34},
		{"c", 3e8},
		{"kB", 1.380649e-23},
		{"euler", math.E},
		{"π", math.Pi},
		{"pi", math.Pi},
		{"me", 9.1e-31},
		{"mₑ", 9.1e-31},
		{"eV", 1.602176634e-19},
		{"THz", 1e12},
		{"Å", 1e-10},
		{"\u212b", 1e-10}, // ANGSTROM SIGN normalizes to Å
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := tbl.Lookup(tt.name)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.name)
			}
			if e.Value != tt.want {
				t.Errorf("Lookup(%q).Value = %g, want %g", tt.name, e.Value, tt.want)
			}
		})
	}
}

func TestLookupMissing(t *testing.T) {
	tbl, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := tbl.Lookup("os"); ok {
		t.Error("Lookup(os) should not be found")
	}
	if _, err := tbl.Value("Kb"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Value(Kb) error = %v, want ErrNotFound", err)
	}
}

func TestListOrder(t *testing.T) {
	tbl, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	list := tbl.List()
	if list[0].Symbol != "h" {
		t.Errorf("first entry = %q, want h", list[0].Symbol)
	}
	if list[len(list)-1].Symbol != "THz" {
		t.Errorf("last entry = %q, want THz", list[len(list)-1].Symbol)
	}

	// List returns a copy.
	list[0].Value = 42
	if e, _ := tbl.Lookup("h"); e.Value == 42 {
		t.Error("mutating List() result changed the table")
	}

	units := tbl.Kind(KindUnit)
	if len(units) != len(unitEntries) {
		t.Fatalf("Kind(KindUnit) len = %d, want %d", len(units), len(unitEntries))
	}
	if units[0].Symbol != "eV" {
		t.Errorf("first unit = %q, want eV", units[0].Symbol)
	}
	for _, u := range units {
		if u.Kind != KindUnit {
			t.Errorf("%s kind = %s, want unit", u.Symbol, u.Kind)
		}
	}
}

func TestMergeCollision(t *testing.T) {
	a, err := NewTable(KindConstant, Entry{Symbol: "e", Value: 1.6e-19})
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewTable(KindUnit, Entry{Symbol: "eV", Aliases: []string{"e"}, Value: 1.6e-19})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Merge(a, b); !errors.Is(err, ErrCollision) {
		t.Errorf("Merge() error = %v, want ErrCollision", err)
	}
}

func TestNewTableDuplicate(t *testing.T) {
	_, err := NewTable(KindUnit,
		Entry{Symbol: "\u00c5", Value: 1e-10},
		Entry{Symbol: "\u212b", Value: 1e-10},
	)
	if !errors.Is(err, ErrCollision) {
		t.Errorf("NewTable() error = %v, want ErrCollision", err)
	}
}
