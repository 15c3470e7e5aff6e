// Package router holds the route table, the resolver that picks a page for a
// requested path, and the outlet that tracks which page is mounted.
package router

import (
	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/serr"
)

// WildcardPattern is the pattern of the fallback entry. It matches any path.
const WildcardPattern = "**"

// Target is a page that can be rendered into the shell's outlet.
type Target interface {
	Name() string
	Render(b *element.Builder) any
}

// Entry maps an exact path pattern to the page rendered for it.
type Entry struct {
	Pattern string
	Target  Target
}

// Fallback is applied when no Entry matches. It always redirects.
type Fallback struct {
	Pattern    string
	RedirectTo string
}

// Table is the ordered, read-only list of route entries plus the fallback.
// Build it once with NewTable and share it; nothing mutates it afterwards.
type Table struct {
	entries  []Entry
	fallback Fallback
}

// NewTable validates and freezes the given entries in declaration order.
func NewTable(fallback Fallback, entries ...Entry) (*Table, error) {
	seen := make(map[string]bool, len(entries))

	for _, e := range entries {
		if e.Target == nil {
			return nil, serr.New("route '" + e.Pattern + "' has no target")
		}
		if e.Pattern == WildcardPattern {
			return nil, serr.New("the wildcard pattern is reserved for the fallback entry")
		}
		if seen[e.Pattern] {
			return nil, serr.New("duplicate route pattern '" + e.Pattern + "'")
		}
		seen[e.Pattern] = true
	}

	if fallback.Pattern == "" {
		fallback.Pattern = WildcardPattern
	}
	if !seen[fallback.RedirectTo] {
		return nil, serr.New("fallback redirects to undeclared route '" + fallback.RedirectTo + "'")
	}

	frozen := make([]Entry, len(entries))
	copy(frozen, entries)

	return &Table{entries: frozen, fallback: fallback}, nil
}

// Entries returns a copy of the declared entries, in order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Fallback returns the wildcard entry.
func (t *Table) Fallback() Fallback {
	return t.fallback
}

// Lookup finds the entry declared with exactly this pattern.
func (t *Table) Lookup(pattern string) (Entry, bool) {
	for _, e := range t.entries {
		if e.Pattern == pattern {
			return e, true
		}
	}
	return Entry{}, false
}
