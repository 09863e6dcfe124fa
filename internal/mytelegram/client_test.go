package mytelegram

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"
)

func fixture(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile("testdata/apps.html")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return string(b)
}

func TestRequestCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/send_password" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if got := r.PostForm.Get("phone"); got != "+989123456789" {
			t.Errorf("expected phone form field, got %q", got)
		}
		w.Write([]byte(`{"random_hash":"abc123"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	hash, err := c.RequestCode(context.Background(), "+989123456789")
	if err != nil {
		t.Fatalf("RequestCode: %v", err)
	}
	if hash != "abc123" {
		t.Fatalf("expected abc123, got %q", hash)
	}
}

func TestRequestCodeBlocked(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>Sorry, too many tries. Please try again later.</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.RequestCode(context.Background(), "+989123456789")
	if !errors.Is(err, ErrAccountBlocked) {
		t.Fatalf("expected ErrAccountBlocked, got %v", err)
	}
}

func TestRequestCodeMissingHash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"other":"field"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.RequestCode(context.Background(), "+989123456789")
	if !errors.Is(err, ErrNoRandomHash) {
		t.Fatalf("expected ErrNoRandomHash, got %v", err)
	}
}

func TestRequestCodeTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewClient(srv.URL, time.Second)
	_, err := c.RequestCode(context.Background(), "+989123456789")
	if err == nil {
		t.Fatalf("expected transport error")
	}
	if errors.Is(err, ErrAccountBlocked) || errors.Is(err, ErrNoRandomHash) {
		t.Fatalf("transport error must not map to a provider error: %v", err)
	}
}

func TestSubmitCode(t *testing.T) {
	page := fixture(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			if err := r.ParseForm(); err != nil {
				t.Errorf("parse form: %v", err)
			}
			if r.PostForm.Get("phone") != "+989123456789" ||
				r.PostForm.Get("random_hash") != "abc123" ||
				r.PostForm.Get("password") != "AB12C3" {
				t.Errorf("unexpected login form: %v", r.PostForm)
			}
			http.SetCookie(w, &http.Cookie{Name: "stel_token", Value: "session-1"})
			w.Write([]byte("true"))
		case "/apps":
			// Cookie continuity between login and apps.
			cookie, err := r.Cookie("stel_token")
			if err != nil || cookie.Value != "session-1" {
				t.Errorf("apps request missing login session cookie")
			}
			w.Write([]byte(page))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	creds, err := c.SubmitCode(context.Background(), "+989123456789", "abc123", "AB12C3")
	if err != nil {
		t.Fatalf("SubmitCode: %v", err)
	}
	if creds.APIID != "1234567" {
		t.Fatalf("api_id: got %q", creds.APIID)
	}
	if creds.APIHash != "0123456789abcdef0123456789abcdef" {
		t.Fatalf("api_hash: got %q", creds.APIHash)
	}
	if !strings.Contains(creds.PublicKey, "BEGIN RSA PUBLIC KEY") {
		t.Fatalf("public key: got %q", creds.PublicKey)
	}
	if creds.ProductionConfig != "149.154.167.50:443" {
		t.Fatalf("production config: got %q", creds.ProductionConfig)
	}
}

func TestSubmitCodeScrapeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/apps" {
			w.Write([]byte("<html><body>wrong page</body></html>"))
			return
		}
		w.Write([]byte("true"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.SubmitCode(context.Background(), "+989123456789", "abc123", "AB12C3")
	if !errors.Is(err, ErrCredentialsNotFound) {
		t.Fatalf("expected ErrCredentialsNotFound, got %v", err)
	}
}

func TestExtractorAllOrNothing(t *testing.T) {
	page := fixture(t)
	labels := []string{"App api_id:", "App api_hash:", "Public keys:", "Production configuration:"}
	for _, label := range labels {
		broken := strings.Replace(page, label, "Renamed field:", 1)
		_, err := AppsPageExtractor{}.Extract(strings.NewReader(broken))
		if !errors.Is(err, ErrCredentialsNotFound) {
			t.Fatalf("missing %q: expected ErrCredentialsNotFound, got %v", label, err)
		}
	}
}

func TestExtractorFullPage(t *testing.T) {
	creds, err := AppsPageExtractor{}.Extract(strings.NewReader(fixture(t)))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if creds.APIID == "" || creds.APIHash == "" || creds.PublicKey == "" || creds.ProductionConfig == "" {
		t.Fatalf("expected all fields populated, got %+v", creds)
	}
}
