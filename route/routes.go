package route

import (
	"github.com/anishgupta6801/LUMINA-WEBSITE/controller"
	"github.com/anishgupta6801/LUMINA-WEBSITE/utils"
	"github.com/gin-gonic/gin"
)

func APIRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.POST("/reservations", controller.CreateReservation)
		api.GET("/reservations", controller.GetReservations)
		api.PUT("/reservations/:id/status", controller.UpdateReservationStatus)
		api.POST("/contact", controller.CreateContactMessage)
		api.GET("/contact", controller.GetContactMessages)
		api.POST("/newsletter", controller.CreateSubscriber)
		api.GET("/newsletter", controller.GetSubscribers)
		api.GET("/health", controller.HealthCheck)
	}

	admin := router.Group("/api/admin")
	admin.POST("/login", controller.LoginAdmin)
	admin.POST("/refresh-token", controller.RefreshTokenFunc)
	admin.Use(utils.AdminMiddleware())
	{
		admin.GET("/reservations/export", controller.ExportReservations)
	}
}
