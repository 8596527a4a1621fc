package controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/anishgupta6801/LUMINA-WEBSITE/model"
	"github.com/gin-gonic/gin"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r *contactRequest) missingFields() []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", r.Name},
		{"email", r.Email},
		{"message", r.Message},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func CreateContactMessage(c *gin.Context) {
	var req contactRequest
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

	message := model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	id, err := Contacts.Create(c.Request.Context(), &message)
	if err != nil {
		log.Printf("Error saving contact message: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"messageId": id,
		"message":   "Message sent successfully",
	})
}

func GetContactMessages(c *gin.Context) {
	messages, err := Contacts.List(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching contact messages: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"messages": messages,
		"count":    len(messages),
	})
}
