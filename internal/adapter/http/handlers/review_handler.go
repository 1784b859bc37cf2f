package handlers

import (
	"errors"
	"net/http"

	response "sparklean/internal/adapter/http/dto/response"
	"sparklean/internal/usecase"
	"sparklean/pkg"

	"github.com/gin-gonic/gin"
)

// ReviewHandler serves the admin inbox: listing, read-state transitions,
// deletion and the SMS delivery log.

type ReviewHandler struct {
	usecase usecase.IReviewUseCase
}

func NewReviewHandler(uc usecase.IReviewUseCase) *ReviewHandler {
	return &ReviewHandler{usecase: uc}
}

// ListEstimates returns every request, most recent first, with the unread
// count the admin badge shows.
func (h *ReviewHandler) ListEstimates(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateRequests(list.Requests, list.NewCount))
}

// MarkAsRead acknowledges one request. Acknowledging twice is fine; unknown
// ids get a 404 so the admin view can say "already removed".
func (h *ReviewHandler) MarkAsRead(c *gin.Context) {
	if err := h.usecase.MarkAsRead(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ReviewHandler) MarkAllAsRead(c *gin.Context) {
	if err := h.usecase.MarkAllAsRead(c.Request.Context()); err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ReviewHandler) DeleteEstimate(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ReviewHandler) UnreadCount(c *gin.Context) {
	count, err := h.usecase.UnreadCount(c.Request.Context())
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"new_count": count})
}

// ListNotifications returns the SMS delivery log, newest first.
func (h *ReviewHandler) ListNotifications(c *gin.Context) {
	notifications, err := h.usecase.Notifications(c.Request.Context())
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "notifications": response.FromNotifications(notifications)})
}

func mapReviewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateRequestID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateRequestNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate request not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
