package handlers

import (
	"errors"
	"net/http"

	request "sparklean/internal/adapter/http/dto/request"
	response "sparklean/internal/adapter/http/dto/response"
	"sparklean/internal/usecase"
	"sparklean/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSubmitPayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)

// IntakeHandler handles the public "request an estimate" submission.

type IntakeHandler struct {
	usecase usecase.IIntakeUseCase
}

func NewIntakeHandler(uc usecase.IIntakeUseCase) *IntakeHandler {
	return &IntakeHandler{usecase: uc}
}

// SubmitEstimate validates the form payload and hands it to the intake use
// case. Responds 201 with the stored record, including id and quote.
func (h *IntakeHandler) SubmitEstimate(c *gin.Context) {
	var payload request.SubmitEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSubmitPayload.HTTPStatus, errInvalidSubmitPayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		c.JSON(errInvalidSubmitPayload.HTTPStatus, errInvalidSubmitPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), usecase.IntakeInput{
		FullName:      payload.FullName,
		Phone:         payload.Phone,
		Email:         payload.Email,
		Address:       payload.Address,
		Rooms:         payload.Rooms,
		Bathrooms:     payload.Bathrooms,
		ServiceType:   payload.ServiceType,
		AddonAreas:    payload.AddonAreas,
		OtherAreaText: payload.OtherAreaText,
		PreferredDate: payload.PreferredDate,
		PreferredTime: payload.PreferredTime,
		Notes:         payload.Notes,
	})
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimateRequest(created))
}

func mapIntakeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFullName),
		errors.Is(err, usecase.ErrInvalidAddress),
		errors.Is(err, usecase.ErrInvalidRoomCount),
		errors.Is(err, usecase.ErrInvalidBathroomCount),
		errors.Is(err, usecase.ErrInvalidAddonArea):
		return pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingContact):
		return pkg.NewDomainErrorSimple("MISSING_CONTACT", "Provide a phone number or an email address", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidServiceType):
		return pkg.NewDomainErrorSimple("INVALID_SERVICE_TYPE", "Unknown service type", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Could not store the estimate request, please try again", err, http.StatusInternalServerError)
	}
}
