package web_test

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"biblioteca/config"
	"biblioteca/web"
)

const (
	testAddress     = "localhost:8071"
	testBaseAddress = "localhost:8072"
)

var (
	startOnce     sync.Once
	startBaseOnce sync.Once
)

// startTestServer boots the full application once for the package
func startTestServer(t *testing.T) string {
	t.Helper()
	startOnce.Do(func() { bootTestServer(t, testAddress, "/") })
	return "http://" + testAddress
}

// startBasePathServer boots a second instance mounted under /app/
func startBasePathServer(t *testing.T) string {
	t.Helper()
	startBaseOnce.Do(func() { bootTestServer(t, testBaseAddress, "/app/") })
	return "http://" + testBaseAddress
}

func bootTestServer(t *testing.T, address, basePath string) {
	t.Helper()

	cfg := config.Default()
	cfg.Address = address
	cfg.BasePath = basePath

	app, err := web.Bootstrap(cfg)
	if err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}

	// Start server in background goroutine
	go func() {
		app.Run()
	}()

	// Wait for server to be ready
	time.Sleep(100 * time.Millisecond)
}

// newClient returns a client that reports redirects instead of following them
func newClient() *http.Client {
	return &http.Client{
		Timeout: 5 * time.Second,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func get(t *testing.T, client *http.Client, url string) (*http.Response, string) {
	t.Helper()
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body of %s failed: %v", url, err)
	}
	return resp, string(body)
}

// TestShellRoutes walks the route table end to end over HTTP
func TestShellRoutes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	baseURL := startTestServer(t)
	client := newClient()

	t.Run("HomeRendered", func(t *testing.T) {
		resp, body := get(t, client, baseURL+"/")

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
		}
		if !strings.Contains(body, "page-home") {
			t.Error("expected Home in the outlet")
		}
		if !strings.Contains(body, `id="menu"`) || !strings.Contains(body, `id="footer"`) {
			t.Error("expected menu and footer")
		}
	})

	t.Run("SobreRendered", func(t *testing.T) {
		resp, body := get(t, client, baseURL+"/sobre")

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
		}
		if !strings.Contains(body, "page-sobre") {
			t.Error("expected About in the outlet")
		}
	})

	t.Run("LoginRendered", func(t *testing.T) {
		resp, body := get(t, client, baseURL+"/login")

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
		}
		if !strings.Contains(body, "page-login") {
			t.Error("expected Login in the outlet")
		}
	})

	t.Run("LoginPostIsDiscarded", func(t *testing.T) {
		form := url.Values{"email": {"leitor@example.com"}, "password": {"segredo"}}
		resp, err := client.PostForm(baseURL+"/login", form)
		if err != nil {
			t.Fatalf("POST /login failed: %v", err)
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
		}
		if !strings.Contains(string(body), "page-login") {
			t.Error("expected the login page to be shown again")
		}
		if strings.Contains(string(body), "segredo") {
			t.Error("submitted password must not be echoed back")
		}
	})

	t.Run("LoginFormNeverUsesGet", func(t *testing.T) {
		_, body := get(t, client, baseURL+"/login")

		if !strings.Contains(body, `method="post"`) {
			t.Error("login form should post")
		}
		if strings.Contains(body, "password=") {
			t.Error("no link or action may carry the password in a query string")
		}
	})

	t.Run("UnknownRedirectsHome", func(t *testing.T) {
		resp, _ := get(t, client, baseURL+"/unknown/path")

		if resp.StatusCode != http.StatusFound {
			t.Fatalf("expected status %d, got %d", http.StatusFound, resp.StatusCode)
		}
		if loc := resp.Header.Get("Location"); loc != "/" {
			t.Errorf("expected redirect to /, got %q", loc)
		}
	})

	t.Run("RedirectFollowedRendersHome", func(t *testing.T) {
		follow := &http.Client{Timeout: 5 * time.Second}
		resp, body := get(t, follow, baseURL+"/nada")

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
		}
		if !strings.Contains(body, "page-home") {
			t.Error("expected Home after following the redirect")
		}
	})

	t.Run("SessionCookieSet", func(t *testing.T) {
		resp, _ := get(t, client, baseURL+"/")

		found := false
		for _, c := range resp.Cookies() {
			if c.Name == "session_id" && c.Value != "" {
				found = true
			}
		}
		if !found {
			t.Error("expected a session_id cookie")
		}
	})

	t.Run("Stylesheet", func(t *testing.T) {
		resp, body := get(t, client, baseURL+"/static/css/app.css")

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
		}
		if !strings.Contains(body, "#outlet") {
			t.Error("expected the embedded stylesheet")
		}
	})

	t.Run("Health", func(t *testing.T) {
		resp, body := get(t, client, baseURL+"/health")

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
		}
		if !strings.Contains(body, "healthy") {
			t.Errorf("unexpected health body: %s", body)
		}
	})

	t.Run("Metrics", func(t *testing.T) {
		resp, body := get(t, client, baseURL+"/metrics")

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
		}
		if !strings.Contains(body, "biblioteca_router_resolutions_total") {
			t.Error("expected the resolutions counter in the exposition")
		}
	})
}

// TestShellRoutesUnderBasePath checks the route registration when the app is
// mounted below the root
func TestShellRoutesUnderBasePath(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	baseURL := startBasePathServer(t)
	client := newClient()

	pages := []struct {
		path   string
		marker string
	}{
		{"/app/", "page-home"},
		{"/app/sobre", "page-sobre"},
		{"/app/login", "page-login"},
	}

	for _, p := range pages {
		resp, body := get(t, client, baseURL+p.path)

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s: expected status %d, got %d", p.path, http.StatusOK, resp.StatusCode)
		}
		if !strings.Contains(body, p.marker) {
			t.Errorf("%s: expected %s in the outlet", p.path, p.marker)
		}
		if !strings.Contains(body, `href="/app/sobre"`) {
			t.Errorf("%s: menu links should carry the base path", p.path)
		}
	}

	for _, p := range []string{"/sobre", "/app/nada", "/outro/lugar"} {
		resp, _ := get(t, client, baseURL+p)

		if resp.StatusCode != http.StatusFound {
			t.Fatalf("%s: expected status %d, got %d", p, http.StatusFound, resp.StatusCode)
		}
		if loc := resp.Header.Get("Location"); loc != "/app/" {
			t.Errorf("%s: expected redirect to /app/, got %q", p, loc)
		}
	}
}
