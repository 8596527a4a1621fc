package model

import "testing"

func TestReservationStatusValid(t *testing.T) {
	valid := []ReservationStatus{StatusPending, StatusConfirmed, StatusCancelled}
	for _, s := range valid {
		if !s.Valid() {
			t.Errorf("ReservationStatus(%q).Valid() = false, want true", s)
		}
	}

	invalid := []ReservationStatus{"", "bogus", "Pending", "CONFIRMED", "done"}
	for _, s := range invalid {
		if s.Valid() {
			t.Errorf("ReservationStatus(%q).Valid() = true, want false", s)
		}
	}
}
