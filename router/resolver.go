package router

import "strings"

// Resolution is the outcome of resolving one requested path.
// Either Entry is set, or Redirect is true and RedirectTo names the pattern
// the client should be sent to.
type Resolution struct {
	Path       string // normalized request path
	Entry      Entry
	Redirect   bool
	RedirectTo string
}

// Normalize reduces a request path to the form route patterns are written in:
// no query or fragment, no leading slash, and no single trailing slash.
// "/sobre/", "/sobre" and "sobre" all become "sobre". Repeated slashes are
// not collapsed, so "//" stays "/" and matches nothing.
func Normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimPrefix(path, "/")
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

// Resolve picks the first entry whose pattern equals the normalized path.
// Unmatched paths resolve to the fallback redirect; this never fails.
func (t *Table) Resolve(path string) Resolution {
	p := Normalize(path)

	for _, e := range t.entries {
		if e.Pattern == p {
			return Resolution{Path: p, Entry: e}
		}
	}

	return Resolution{
		Path:       p,
		Redirect:   true,
		RedirectTo: t.fallback.RedirectTo,
	}
}
