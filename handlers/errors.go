package handlers

import (
	"errors"
	"net/http"

	"dentalcare/services/booking"
	"dentalcare/services/catalog"
	"dentalcare/services/doctor"
	"dentalcare/services/payment"
	"dentalcare/services/user"
	"dentalcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors to HTTP responses.
func respondError(c *gin.Context, logger *zap.Logger, msg string, err error) {
	var verr *booking.ValidationError
	switch {
	case errors.As(err, &verr):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"error":   verr.Message,
			"field":   verr.Field,
		})
	case errors.Is(err, booking.ErrBookingNotFound),
		errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, doctor.ErrDoctorNotFound):
		utils.JSONError(c, http.StatusNotFound, msg, err.Error())
	case errors.Is(err, booking.ErrAlreadyPaid):
		utils.JSONError(c, http.StatusConflict, msg, err.Error())
	case errors.Is(err, payment.ErrInvalidAmount),
		errors.Is(err, catalog.ErrInvalidTreatment),
		errors.Is(err, utils.ErrMalformedDate):
		utils.JSONError(c, http.StatusBadRequest, msg, err.Error())
	default:
		logger.Error(msg, zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, utils.ErrorResponse{Message: msg})
	}
}
