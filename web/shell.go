package web

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"biblioteca/router"
	"biblioteca/views"
	"biblioteca/views/components"

	"github.com/rohanthewiz/logger"
)

// DefaultTitle is the shell's display title
const DefaultTitle = "biblioteca-virtual"

const maxOutlets = 10000

// Response is what the shell produces for one navigation.
// Exactly one of HTML or Location is set.
type Response struct {
	Status   int
	Location string
	HTML     string
	Route    string // route name rendered, empty on redirect
}

// Shell is the application root: menu, footer and one outlet per session.
// The outlet content is chosen by the route table.
type Shell struct {
	Title    string
	BasePath string
	Table    *router.Table
	Menu     []components.MenuItem

	metrics *Metrics

	mu      sync.Mutex
	outlets map[string]*router.Outlet
}

// NewShell builds a shell over an already-constructed route table
func NewShell(title, basePath string, table *router.Table, metrics *Metrics) *Shell {
	if title == "" {
		title = DefaultTitle
	}
	if basePath == "" {
		basePath = "/"
	}
	return &Shell{
		Title:    title,
		BasePath: basePath,
		Table:    table,
		Menu:     components.DefaultMenuItems,
		metrics:  metrics,
		outlets:  make(map[string]*router.Outlet),
	}
}

// Navigate resolves requestPath for the given session.
// requestPath may still carry the base path; it is stripped here.
// Unmatched paths produce a redirect to the fallback target, never an error.
func (sh *Shell) Navigate(sessionID, requestPath string) Response {
	rel, inside := sh.relative(requestPath)
	res := sh.Table.Resolve(rel)
	if !inside {
		res = router.Resolution{Path: rel, Redirect: true, RedirectTo: sh.Table.Fallback().RedirectTo}
	}

	if res.Redirect {
		logger.Debug("Route not matched, redirecting", "path", res.Path, "to", res.RedirectTo)
		sh.metrics.ObserveResolution(router.WildcardPattern, OutcomeRedirect)
		return Response{
			Status:   http.StatusFound,
			Location: sh.BasePath + res.RedirectTo,
		}
	}

	name := res.Entry.Target.Name()
	outlet := sh.Outlet(sessionID)
	if outlet.Mount(res.Entry) {
		logger.Debug("Mounted route", "session", sessionID, "route", name)
	}
	sh.metrics.ObserveResolution(name, OutcomeRender)

	start := time.Now()
	html := sh.Render(res.Entry)
	sh.metrics.ObserveRender(name, time.Since(start))

	return Response{Status: http.StatusOK, HTML: html, Route: name}
}

// Render produces the full document with entry mounted in the outlet
func (sh *Shell) Render(entry router.Entry) string {
	return views.Layout(sh.Title, views.Frame{
		Menu: components.Menu{
			Brand:      "Biblioteca Virtual",
			BasePath:   sh.BasePath,
			Items:      sh.Menu,
			ActivePage: entry.Target.Name(),
		},
		Outlet: entry.Target,
	})
}

// Outlet returns the outlet for a session, creating it on first use
func (sh *Shell) Outlet(sessionID string) *router.Outlet {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	o, ok := sh.outlets[sessionID]
	if !ok {
		if len(sh.outlets) >= maxOutlets {
			// outlets only hold the active page, so starting over is harmless
			logger.Info("Outlet limit reached, clearing session outlets", "count", len(sh.outlets))
			sh.outlets = make(map[string]*router.Outlet)
		}
		o = &router.Outlet{}
		sh.outlets[sessionID] = o
	}
	return o
}

// relative strips the base path so only the part the route table knows
// about is left. inside is false for paths outside the base.
func (sh *Shell) relative(requestPath string) (rel string, inside bool) {
	if sh.BasePath == "/" {
		return requestPath, true
	}
	if requestPath+"/" == sh.BasePath {
		return "", true
	}
	if strings.HasPrefix(requestPath, sh.BasePath) {
		return "/" + requestPath[len(sh.BasePath):], true
	}
	return requestPath, false
}
