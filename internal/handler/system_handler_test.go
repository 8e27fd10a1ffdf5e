package handler

import (
	"net/http"
	"testing"
)

func TestHealthCheck(t *testing.T) {
	api := newTestAPI(t)
	r := newTestEngine(api)
	r.GET("/healthz", api.HealthCheck)

	rr := doJSON(t, r, http.MethodGet, "/healthz", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if decodeBody(t, rr)["status"] != "ok" {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}
