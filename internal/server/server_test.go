package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const validItemBody = `{
	"description": "Integration test item",
	"weight": 2.0,
	"dimensions": {"length": 20.0, "width": 15.0, "height": 10.0},
	"origin_country": "Nigeria",
	"destination_country": "Canada",
	"price": 65.0
}`

func TestHealthCheck(t *testing.T) {
	srv := New(nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/health_check", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d want=200", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("health check body must be empty, got %q", rec.Body.String())
	}
}

func TestCreateItemValidationFailuresThroughRouter(t *testing.T) {
	// A nil DB makes persistence impossible, so any other status proves the
	// request was rejected before the datastore was touched.
	srv := New(nil, zap.NewNop())

	tests := []struct {
		name string
		body string
	}{
		{"description omitted",
			`{"weight":2.0,"dimensions":{"length":20.0,"width":15.0,"height":10.0},"origin_country":"Nigeria","destination_country":"Canada","price":65.0}`},
		{"empty dimensions",
			`{"description":"Integration test item","weight":2.0,"dimensions":{},"origin_country":"Nigeria","destination_country":"Canada","price":65.0}`},
		{"height omitted",
			`{"description":"Integration test item","weight":2.0,"dimensions":{"length":20.0,"width":15.0},"origin_country":"Nigeria","destination_country":"Canada","price":65.0}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			srv.Echo().ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status=%d want=400", rec.Code)
			}
			if rec.Body.Len() != 0 {
				t.Fatalf("rejection must carry no body, got %q", rec.Body.String())
			}
		})
	}
}

func TestCreateItemWhileDatastoreUnreachable(t *testing.T) {
	core, observed := observer.New(zap.InfoLevel)
	srv := New(nil, zap.New(core))

	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(validItemBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d want=500", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("failure detail must not leak to the caller, got %q", rec.Body.String())
	}

	errorEntries := observed.FilterLevelExact(zap.ErrorLevel).All()
	if len(errorEntries) != 1 {
		t.Fatalf("want one error-level entry, got %d", len(errorEntries))
	}
	fields := errorEntries[0].ContextMap()
	if msg, ok := fields["error"].(string); !ok || !strings.Contains(msg, "database not initialized") {
		t.Fatalf("error entry missing failure detail: %v", fields)
	}
	if fields["request_id"] == nil {
		t.Fatalf("request scope should carry a request id: %v", fields)
	}
}

func TestRegisterUserValidation(t *testing.T) {
	srv := New(nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader(`{"name":"","email":"ada@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d want=400", rec.Code)
	}
}
