// Package dispatch maps command-line function names to the closed set of
// implementations.
package dispatch

import (
	"errors"
	"fmt"
	"sort"

	"ctp/internal/config"
	"ctp/internal/parser"
	"ctp/internal/transform"
)

// ErrUnknownFunction is returned when the requested name is not in the table
var ErrUnknownFunction = errors.New("unknown function")

// Func is a named string transform exposed on the command line
type Func func(input string) string

// Table maps function names to implementations
type Table struct {
	funcs map[string]Func
}

// NewTable builds the dispatch table over the exposed functions
func NewTable(cfg *config.Config) *Table {
	ctest := parser.NewCTestParser(cfg.GetSentinel())
	return &Table{
		funcs: map[string]Func{
			"get_ctests": func(input string) string {
				return parser.Serialize(ctest.Parse(input))
			},
			"reverse_words": transform.ReverseWords,
			"to_upper":      transform.ToUpper,
			"remove_vowels": transform.RemoveVowels,
		},
	}
}

// Resolve looks up a function by its literal name
func (t *Table) Resolve(name string) (Func, error) {
	fn, ok := t.funcs[name]
	if !ok || fn == nil {
		return nil, fmt.Errorf("no function named %q found: %w", name, ErrUnknownFunction)
	}
	return fn, nil
}

// Names returns the exposed function names in sorted order
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.funcs))
	for name := range t.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
