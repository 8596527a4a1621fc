package controller

import (
	"net/http"
	"strings"
	"testing"
)

func TestCreateContactMessageSuccess(t *testing.T) {
	r := setupTestRouter()

	w, body := doJSON(t, r, http.MethodPost, "/api/contact", map[string]string{
		"name":    "Jane",
		"email":   "jane@example.com",
		"subject": "Private events",
		"message": "Do you host private events?",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}
	if id, _ := body["messageId"].(string); id == "" {
		t.Fatal("expected non-empty messageId")
	}

	w, body = doJSON(t, r, http.MethodGet, "/api/contact", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if body["count"].(float64) != 1 {
		t.Fatalf("expected count 1, got %v", body["count"])
	}
	first := body["messages"].([]interface{})[0].(map[string]interface{})
	if first["status"] != "unread" {
		t.Errorf("status = %v, want unread", first["status"])
	}
}

func TestCreateContactMessageMissingFields(t *testing.T) {
	r := setupTestRouter()

	w, body := doJSON(t, r, http.MethodPost, "/api/contact", map[string]string{
		"subject": "Hello",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	msg, _ := body["error"].(string)
	for _, field := range []string{"name", "email", "message"} {
		if !strings.Contains(msg, field) {
			t.Errorf("error %q does not mention missing field %q", msg, field)
		}
	}
}
