package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anishgupta6801/LUMINA-WEBSITE/config"
	"github.com/anishgupta6801/LUMINA-WEBSITE/repository"
	"github.com/gin-gonic/gin"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.C = &config.Config{Env: "test", JWTSecret: "test-secret"}

	Reservations = repository.NewMemoryReservationRepository()
	Contacts = repository.NewMemoryContactRepository()
	Subscribers = repository.NewMemoryNewsletterRepository()

	r := gin.New()
	r.POST("/api/reservations", CreateReservation)
	r.GET("/api/reservations", GetReservations)
	r.PUT("/api/reservations/:id/status", UpdateReservationStatus)
	r.POST("/api/contact", CreateContactMessage)
	r.GET("/api/contact", GetContactMessages)
	r.POST("/api/newsletter", CreateSubscriber)
	r.GET("/api/newsletter", GetSubscribers)
	r.GET("/api/health", HealthCheck)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewBuffer(b)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("failed to parse response body %q: %v", w.Body.String(), err)
	}
	return w, parsed
}

func validReservation() map[string]string {
	return map[string]string{
		"name":   "John Doe",
		"email":  "john@example.com",
		"phone":  "555-0123",
		"date":   "2025-08-20",
		"time":   "19:00",
		"guests": "4",
	}
}

func TestCreateReservationSuccess(t *testing.T) {
	r := setupTestRouter()

	w, body := doJSON(t, r, http.MethodPost, "/api/reservations", validReservation())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}
	if body["success"] != true {
		t.Error("expected success true")
	}
	id, _ := body["reservationId"].(string)
	if id == "" {
		t.Fatal("expected non-empty reservationId")
	}

	w, body = doJSON(t, r, http.MethodGet, "/api/reservations", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if body["count"].(float64) != 1 {
		t.Fatalf("expected count 1, got %v", body["count"])
	}
	reservations := body["reservations"].([]interface{})
	first := reservations[0].(map[string]interface{})
	if first["name"] != "John Doe" {
		t.Errorf("name = %v, want John Doe", first["name"])
	}
	if first["status"] != "pending" {
		t.Errorf("status = %v, want pending", first["status"])
	}
	if first["confirmed"] != false {
		t.Errorf("confirmed = %v, want false", first["confirmed"])
	}
}

func TestCreateReservationMissingFields(t *testing.T) {
	r := setupTestRouter()

	w, body := doJSON(t, r, http.MethodPost, "/api/reservations", map[string]string{
		"email": "john@example.com",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if body["success"] != false {
		t.Error("expected success false")
	}

	// The message must name every missing field, not just the first.
	msg, _ := body["error"].(string)
	for _, field := range []string{"name", "phone", "date", "time", "guests"} {
		if !strings.Contains(msg, field) {
			t.Errorf("error %q does not mention missing field %q", msg, field)
		}
	}
	if strings.Contains(msg, "email") {
		t.Errorf("error %q mentions email, which was supplied", msg)
	}
}

func TestUpdateReservationStatusConfirm(t *testing.T) {
	r := setupTestRouter()

	_, body := doJSON(t, r, http.MethodPost, "/api/reservations", validReservation())
	id := body["reservationId"].(string)

	w, body := doJSON(t, r, http.MethodPut, "/api/reservations/"+id+"/status", map[string]string{"status": "confirmed"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if body["success"] != true {
		t.Error("expected success true")
	}
	if body["modified"] != true {
		t.Error("expected modified true")
	}

	_, body = doJSON(t, r, http.MethodGet, "/api/reservations", nil)
	first := body["reservations"].([]interface{})[0].(map[string]interface{})
	if first["status"] != "confirmed" {
		t.Errorf("status = %v, want confirmed", first["status"])
	}
	if first["confirmed"] != true {
		t.Error("expected confirmed true after status update")
	}
}

func TestUpdateReservationStatusInvalid(t *testing.T) {
	r := setupTestRouter()

	_, body := doJSON(t, r, http.MethodPost, "/api/reservations", validReservation())
	id := body["reservationId"].(string)

	w, body := doJSON(t, r, http.MethodPut, "/api/reservations/"+id+"/status", map[string]string{"status": "bogus"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if body["success"] != false {
		t.Error("expected success false")
	}
	msg, _ := body["error"].(string)
	if !strings.Contains(msg, "Invalid status") {
		t.Errorf("error %q does not mention invalid status", msg)
	}
}

func TestUpdateReservationStatusNotFound(t *testing.T) {
	r := setupTestRouter()

	w, body := doJSON(t, r, http.MethodPut, "/api/reservations/64b0c8f2a1d2e3f4a5b6c7d8/status", map[string]string{"status": "confirmed"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
	if body["success"] != false {
		t.Error("expected success false")
	}
}
