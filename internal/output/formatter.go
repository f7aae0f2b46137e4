// Package output provides the pluggable formatters for lint results.
package output

import (
	"io"
	"sort"
	"sync"

	"github.com/danielsogl/relint/internal/types"
)

// Formatter renders a lint result to a writer
type Formatter interface {
	// Format writes the result to the writer
	Format(w io.Writer, result *types.LintResult) error
}

var (
	mu         sync.RWMutex
	formatters = make(map[string]Formatter)
)

// Register adds a formatter under the given name
func Register(name string, f Formatter) {
	mu.Lock()
	defer mu.Unlock()
	formatters[name] = f
}

// Lookup returns the formatter registered under the given name. A
// missing formatter is a configuration error the caller must surface.
func Lookup(name string) (Formatter, bool) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := formatters[name]
	return f, ok
}

// Names returns all registered formatter names, sorted
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
