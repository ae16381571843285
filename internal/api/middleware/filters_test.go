package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emicklei/go-restful/v3"
)

func newTestContainer(route restful.RouteFunction) *restful.Container {
	ws := new(restful.WebService)
	ws.Path("/test").Produces(restful.MIME_JSON)
	ws.Route(ws.GET("").To(route))

	container := restful.NewContainer()
	container.Filter(RequestID)
	container.Filter(Logger)
	container.Filter(RecoverPanic)
	container.Add(ws)
	return container
}

func TestRequestID(t *testing.T) {
	var seen string
	container := newTestContainer(func(req *restful.Request, resp *restful.Response) {
		seen = GetRequestID(req)
		resp.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name   string
		header string
	}{
		{name: "generated", header: ""},
		{name: "propagated", header: "req-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			container.ServeHTTP(rec, req)

			got := rec.Header().Get(RequestIDHeader)
			if got == "" {
				t.Fatal("expected X-Request-ID header")
			}
			if tt.header != "" && got != tt.header {
				t.Errorf("X-Request-ID = %q, want %q", got, tt.header)
			}
			if seen != got {
				t.Errorf("handler saw %q, response carries %q", seen, got)
			}
		})
	}
}

func TestRecoverPanic(t *testing.T) {
	container := newTestContainer(func(req *restful.Request, resp *restful.Response) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	container.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", rec.Body.String(), err)
	}
	if body.Error != "internal server error" || body.Code != http.StatusInternalServerError {
		t.Errorf("unexpected body %+v", body)
	}
}
