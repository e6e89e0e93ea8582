//nolint:testpackage // using package name 'snap' to access unexported fields for testing
package snap

import (
	"testing"
)

// TestZeroAllocFlagLoop ensures the hot path of a flag loop is allocation free
func TestZeroAllocFlagLoop(t *testing.T) {
	flags := MustFlagTable([]Ident[testFlag]{{flagFoo, "port"}, {flagBar, "verbose"}})
	args := []string{"--port", "8080", "--verbose", "input"}
	c := NewCursor(nil)

	allocs := testing.AllocsPerRun(1000, func() {
		c.Reset(args)
		for {
			id, ok, err := MatchFlag(c, flags)
			if err != nil {
				t.Fatalf("unexpected parse error: %v", err)
			}
			if !ok {
				break
			}
			if id == flagFoo {
				if _, err := ExpectInt[int](c); err != nil {
					t.Fatalf("unexpected parse error: %v", err)
				}
			}
		}
		if tok, err := c.ExpectString(); err != nil || tok != "input" {
			t.Fatalf("unexpected positional: %q %v", tok, err)
		}
	})

	if allocs != 0 {
		t.Fatalf("expected 0 allocs/op for a flag loop, got %.2f", allocs)
	}
}

// TestZeroAllocFailure verifies recording an error reuses the cursor's payload
func TestZeroAllocFailure(t *testing.T) {
	flags := MustFlagTable([]Ident[testFlag]{{flagFoo, "port"}})
	args := []string{"--nope"}
	c := NewCursor(nil)

	allocs := testing.AllocsPerRun(1000, func() {
		c.Reset(args)
		if _, _, err := MatchFlag(c, flags); err == nil {
			t.Fatal("expected unknown flag error")
		}
		if _, err := c.ExpectN(5); err == nil {
			t.Fatal("expected missing value error")
		}
	})

	if allocs != 0 {
		t.Fatalf("expected 0 allocs/op on the error path, got %.2f", allocs)
	}
	if c.Err().Type != ErrorTypeMissingValue {
		t.Errorf("Err().Type = %s, want %s", c.Err().Type, ErrorTypeMissingValue)
	}
}
