// Package shared contains pieces embedded by every page rendered in the outlet.
package shared

// Page is embedded by each page component.
// It carries the page's route name and title and hands out the banner
// every page opens with.
//
// Example usage:
//
//	type Home struct {
//	    shared.Page // Home now has Title, Name() and Banner()
//	    Intro string
//	}
type Page struct {
	// Route is the route name this page answers to ("home", "sobre", "login")
	Route string
	// Title is shown in the page banner
	Title string
	// Subtitle is optional text under the title
	Subtitle string
}

// Name satisfies router.Target for any struct embedding Page.
func (p Page) Name() string {
	return p.Route
}

// Banner returns the banner component for this page.
func (p Page) Banner() Banner {
	return Banner{Title: p.Title, Subtitle: p.Subtitle}
}
