package preview

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/matthiasbeyer/type-description/desc"
	"github.com/matthiasbeyer/type-description/registry"
	"github.com/matthiasbeyer/type-description/render"
)

func newTestServer(t *testing.T, opts ...Option) *Server {
	t.Helper()

	reg := registry.New()
	reg.MustRegister("Port", desc.Describe[desc.Uint16])
	reg.MustRegister("Limits", desc.Describe[desc.Map[desc.Sequence[desc.NonZeroUint32]]])

	dir := t.TempDir()
	if err := render.ExportDir(reg, dir); err != nil {
		t.Fatalf("failed to export schemas: %v", err)
	}

	s := New(":0", dir, opts...)
	if err := s.reload(); err != nil {
		t.Fatalf("failed to load schemas: %v", err)
	}
	return s
}

func TestServer(t *testing.T) {
	t.Run("index lists schemas", func(t *testing.T) {
		s := newTestServer(t)

		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		body := rec.Body.String()
		for _, want := range []string{"[Limits](/schema/Limits)", "[Port](/schema/Port)"} {
			if !strings.Contains(body, want) {
				t.Errorf("index missing %q:\n%s", want, body)
			}
		}
	})

	t.Run("serves markdown by default", func(t *testing.T) {
		s := newTestServer(t)

		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schema/Limits", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/markdown") {
			t.Errorf("Content-Type = %q, want markdown", got)
		}
		if !strings.Contains(rec.Body.String(), "table of 'Array of 'Integer's'") {
			t.Errorf("unexpected body:\n%s", rec.Body.String())
		}
	})

	t.Run("serves json on request", func(t *testing.T) {
		s := newTestServer(t)

		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schema/Port?format=json", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if got := rec.Header().Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", got)
		}
		if !strings.Contains(rec.Body.String(), `"Integer"`) {
			t.Errorf("unexpected body:\n%s", rec.Body.String())
		}
	})

	t.Run("unknown schema is a 404", func(t *testing.T) {
		s := newTestServer(t)

		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schema/Missing", nil))

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("unknown format is a 400", func(t *testing.T) {
		s := newTestServer(t)

		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schema/Port?format=xml", nil))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}

func TestServer_RateLimit(t *testing.T) {
	s := newTestServer(t, WithRateLimit(1, 1))
	handler := s.Handler()

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want %d", first.Code, http.StatusOK)
	}

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want %d", second.Code, http.StatusTooManyRequests)
	}
}

func TestServer_Reload(t *testing.T) {
	s := newTestServer(t)

	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/reload"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("failed to dial websocket: %v", err)
	}
	defer conn.Close()

	waitForClients(t, s.hub, 1)

	if err := s.reload(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read reload event: %v", err)
	}
	if string(msg) != "reload" {
		t.Errorf("message = %q, want %q", msg, "reload")
	}
}
