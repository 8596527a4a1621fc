package controller

import (
	"net/http"
	"strings"
	"testing"
)

func TestSubscribeSuccess(t *testing.T) {
	r := setupTestRouter()

	w, body := doJSON(t, r, http.MethodPost, "/api/newsletter", map[string]string{
		"email": "jane@example.com",
		"name":  "Jane",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}
	if id, _ := body["subscriberId"].(string); id == "" {
		t.Fatal("expected non-empty subscriberId")
	}
}

func TestSubscribeMissingEmail(t *testing.T) {
	r := setupTestRouter()

	w, body := doJSON(t, r, http.MethodPost, "/api/newsletter", map[string]string{"name": "Jane"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if body["success"] != false {
		t.Error("expected success false")
	}
}

func TestSubscribeDuplicateEmail(t *testing.T) {
	r := setupTestRouter()

	payload := map[string]string{"email": "jane@example.com"}

	w, _ := doJSON(t, r, http.MethodPost, "/api/newsletter", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("first signup: expected status 201, got %d", w.Code)
	}

	w, body := doJSON(t, r, http.MethodPost, "/api/newsletter", payload)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("second signup: expected status 400, got %d", w.Code)
	}
	msg, _ := body["error"].(string)
	if !strings.Contains(msg, "already subscribed") {
		t.Errorf("error %q does not mention already subscribed", msg)
	}

	_, body = doJSON(t, r, http.MethodGet, "/api/newsletter", nil)
	if body["total"].(float64) != 1 {
		t.Errorf("expected total 1 after duplicate signup, got %v", body["total"])
	}
}
