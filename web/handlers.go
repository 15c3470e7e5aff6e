package web

import (
	"net/http"

	"biblioteca/views"
	"biblioteca/views/components"

	"github.com/rohanthewiz/rweb"
)

// HealthCheck returns the health status of the application
func HealthCheck(c rweb.Context) error {
	return c.WriteJSON(map[string]interface{}{
		"status":  "healthy",
		"service": "biblioteca-virtual",
	})
}

// ServerError handles 500 errors
func ServerError(c rweb.Context) error {
	c.SetStatus(http.StatusInternalServerError)

	if c.Request().Header("Accept") == "application/json" {
		return c.WriteJSON(map[string]string{
			"error": "Internal server error",
		})
	}

	c.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
	return c.WriteHTML(errorPage(http.StatusInternalServerError, "Erro interno"))
}

// errorPage renders an error inside the regular shell chrome, with no menu
// item marked active
func errorPage(status int, message string) string {
	return views.Layout(DefaultTitle, views.Frame{
		Menu: components.Menu{
			Brand:    "Biblioteca Virtual",
			BasePath: "/",
			Items:    components.DefaultMenuItems,
		},
		Outlet: components.ErrorMessage{Status: status, Message: message},
	})
}
