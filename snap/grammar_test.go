//nolint:testpackage // using package name 'snap' to access unexported fields for testing
package snap

import (
	"os"
	"slices"
	"testing"

	"github.com/goccy/go-yaml"
)

type grammarCase struct {
	Name        string   `yaml:"name"`
	Args        []string `yaml:"args"`
	Flags       []string `yaml:"flags"`
	Positionals []string `yaml:"positionals"`
}

func loadGrammarCases(t *testing.T) []grammarCase {
	t.Helper()

	data, err := os.ReadFile("testdata/grammar.yaml")
	if err != nil {
		t.Fatalf("read fixtures: %v", err)
	}
	var cases []grammarCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		t.Fatalf("decode fixtures: %v", err)
	}
	if len(cases) == 0 {
		t.Fatal("no grammar fixtures")
	}
	return cases
}

func TestGrammarFixtures(t *testing.T) {
	for _, tt := range loadGrammarCases(t) {
		t.Run(tt.Name, func(t *testing.T) {
			c := NewCursor(tt.Args)

			flags := []string{}
			for c.HasMoreFlags() {
				flags = append(flags, c.Next())
			}
			positionals := []string{}
			for c.HasMore() {
				if c.HasMoreFlags() {
					t.Fatalf("flag reported after the boundary at %d", c.Pos())
				}
				positionals = append(positionals, c.Next())
			}

			if !slices.Equal(flags, tt.Flags) {
				t.Errorf("flags = %q, want %q", flags, tt.Flags)
			}
			if !slices.Equal(positionals, tt.Positionals) {
				t.Errorf("positionals = %q, want %q", positionals, tt.Positionals)
			}
		})
	}
}
