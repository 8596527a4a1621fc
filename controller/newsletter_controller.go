package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/anishgupta6801/LUMINA-WEBSITE/repository"
	"github.com/gin-gonic/gin"
)

func CreateSubscriber(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Email is required",
		})
		return
	}

	id, err := Subscribers.Create(c.Request.Context(), req.Email, req.Name)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadySubscribed) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "This email is already subscribed",
			})
			return
		}
		log.Printf("Error saving subscriber: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":      true,
		"subscriberId": id,
		"message":      "Subscribed successfully",
	})
}

func GetSubscribers(c *gin.Context) {
	subscribers, err := Subscribers.List(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching subscribers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    subscribers,
		"total":   len(subscribers),
	})
}
