package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pet-care-planner/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func TestRequestLog(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Writer: &buf})

	h := chimw.RequestID(RequestLog(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/boom" {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/schedule", nil))
	out := buf.String()
	if !strings.Contains(out, `"path":"/schedule"`) || !strings.Contains(out, `"status":200`) {
		t.Fatalf("expected debug request line, got %s", out)
	}
	if !strings.Contains(out, `"request_id":"`) {
		t.Fatalf("expected request_id field, got %s", out)
	}

	buf.Reset()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))
	out = buf.String()
	if !strings.Contains(out, `"level":"warn"`) || !strings.Contains(out, `"status":500`) {
		t.Fatalf("expected warn for 5xx, got %s", out)
	}
}
