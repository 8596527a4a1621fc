package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/anishgupta6801/LUMINA-WEBSITE/model"
	"github.com/anishgupta6801/LUMINA-WEBSITE/repository"
	"github.com/gin-gonic/gin"
)

// Repositories used by the handlers, set once at startup (tests swap in the
// in-memory implementations).
var (
	Reservations repository.ReservationRepository
	Contacts     repository.ContactRepository
	Subscribers  repository.NewsletterRepository
)

type reservationRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Guests          string `json:"guests"`
	Occasion        string `json:"occasion"`
	SpecialRequests string `json:"specialRequests"`
}

// missingFields returns the names of every absent required field, not just
// the first, in declaration order.
func (r *reservationRequest) missingFields() []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", r.Name},
		{"email", r.Email},
		{"phone", r.Phone},
		{"date", r.Date},
		{"time", r.Time},
		{"guests", r.Guests},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func CreateReservation(c *gin.Context) {
	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	if missing := req.missingFields(); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Missing required fields: " + strings.Join(missing, ", "),
		})
		return
	}

	reservation := model.Reservation{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Date:            req.Date,
		Time:            req.Time,
		Guests:          req.Guests,
		Occasion:        req.Occasion,
		SpecialRequests: req.SpecialRequests,
	}

	id, err := Reservations.Create(c.Request.Context(), &reservation)
	if err != nil {
		log.Printf("Error saving reservation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Internal server error",
		})
		return
	}

	log.Printf("New reservation saved: id=%s name=%s date=%s time=%s", id, reservation.Name, reservation.Date, reservation.Time)

	c.JSON(http.StatusCreated, gin.H{
		"success":       true,
		"reservationId": id,
		"message":       "Reservation saved successfully",
	})
}

func GetReservations(c *gin.Context) {
	reservations, err := Reservations.List(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching reservations: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"reservations": reservations,
		"count":        len(reservations),
	})
}

func UpdateReservationStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	status := model.ReservationStatus(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid status. Must be: pending, confirmed, or cancelled",
		})
		return
	}

	modified, err := Reservations.UpdateStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Reservation not found",
			})
			return
		}
		log.Printf("Error updating reservation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"modified": modified,
	})
}
