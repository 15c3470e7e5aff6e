package web

import (
	"biblioteca/router"
	"biblioteca/web/pages"
	"biblioteca/web/pages/auth"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// NewRouteTable declares the application's routes, in match order.
// Anything that does not match is sent back to home.
func NewRouteTable() (*router.Table, error) {
	return router.NewTable(
		router.Fallback{Pattern: router.WildcardPattern, RedirectTo: ""},
		router.Entry{Pattern: "", Target: pages.HomePage},
		router.Entry{Pattern: "sobre", Target: pages.SobrePage},
		router.Entry{Pattern: "login", Target: auth.NewLoginPage()},
	)
}

// setupRoutes registers the page routes, the catch-all and the service endpoints
func setupRoutes(s *rweb.Server, sh *Shell, m *Metrics) {
	// Page routes - every page path goes through the shell, which consults
	// the route table itself
	for _, e := range sh.Table.Entries() {
		s.Get(sh.BasePath+e.Pattern, sh.Handler)

		if ft, ok := e.Target.(formTarget); ok && ft.SubmitsForm() {
			s.Post(sh.BasePath+e.Pattern, sh.Submit)
		}
	}

	// Service endpoints
	s.Get("/health", HealthCheck)
	s.Get("/metrics", m.Handler)

	// Catch-all: unknown paths are redirected by the shell
	s.Get("/*", sh.Handler)
}

// formTarget is a page whose form posts back to its own path
type formTarget interface {
	SubmitsForm() bool
}

// Submit accepts a form post and discards it. The page is rendered again
// as if it had been requested with GET.
func (sh *Shell) Submit(c rweb.Context) error {
	logger.Debug("Form submission discarded", "path", c.Request().Path())
	return sh.Handler(c)
}

// Handler adapts Navigate to rweb
func (sh *Shell) Handler(c rweb.Context) error {
	resp := sh.Navigate(sessionFrom(c), c.Request().Path())

	if resp.Location != "" {
		return c.Redirect(resp.Status, resp.Location)
	}

	c.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
	return c.WriteHTML(resp.HTML)
}
