package controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/anishgupta6801/LUMINA-WEBSITE/config"
	"github.com/anishgupta6801/LUMINA-WEBSITE/utils"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"golang.org/x/crypto/bcrypt"
)

func LoginAdmin(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Username and password are required",
		})
		return
	}

	if config.C.AdminPasswordHash == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "Admin access is not configured",
		})
		return
	}

	if req.Username != config.C.AdminUser {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Invalid login credentials",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(config.C.AdminPasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Invalid login credentials",
		})
		return
	}

	access, refresh, err := utils.GenerateTokens("admin", req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to generate tokens",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"access_token":  access,
		"refresh_token": refresh,
	})
}

func RefreshTokenFunc(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Refresh token is required",
		})
		return
	}

	access, refresh, err := utils.RefreshTokens(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"access_token":  access,
		"refresh_token": refresh,
	})
}

// ExportReservations streams all reservations, newest first, as an Excel
// workbook for the admin dashboard.
func ExportReservations(c *gin.Context) {
	reservations, err := Reservations.List(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching reservations for export: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Internal server error",
		})
		return
	}

	xl := excelize.NewFile()
	defer xl.Close()

	headers := []string{"ID", "Name", "Email", "Phone", "Date", "Time", "Guests", "Occasion", "Special Requests", "Status", "Created At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		xl.SetCellValue("Sheet1", cell, h)
	}

	for row, r := range reservations {
		values := []interface{}{
			r.ID.Hex(), r.Name, r.Email, r.Phone, r.Date, r.Time,
			r.Guests, r.Occasion, r.SpecialRequests, string(r.Status),
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			xl.SetCellValue("Sheet1", cell, v)
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "reservations.xlsx"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := xl.Write(c.Writer); err != nil {
		log.Printf("Error writing Excel export: %v", err)
	}
}
