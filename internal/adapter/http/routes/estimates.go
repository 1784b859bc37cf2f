package routes

import (
	"sparklean/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates     = "/estimates"
	PathNotifications = "/notifications"
)

func addEstimateRoutes(rg *gin.RouterGroup, intakeHandler *handlers.IntakeHandler, reviewHandler *handlers.ReviewHandler) {
	estimates := rg.Group(PathEstimates)
	{
		// Public intake endpoint used by the estimate form.
		estimates.POST("", intakeHandler.SubmitEstimate)

		// Admin review endpoints.
		estimates.GET("", reviewHandler.ListEstimates)
		estimates.GET("/unread-count", reviewHandler.UnreadCount)
		estimates.PATCH("/read-all", reviewHandler.MarkAllAsRead)
		estimates.PATCH("/:id/read", reviewHandler.MarkAsRead)
		estimates.DELETE("/:id", reviewHandler.DeleteEstimate)
	}

	// SMS delivery log for the admin view.
	rg.GET(PathNotifications, reviewHandler.ListNotifications)
}
