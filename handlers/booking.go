package handlers

import (
	"net/http"

	"dentalcare/middleware"
	"dentalcare/models"
	"dentalcare/services/booking"
	"dentalcare/services/policy"
	"dentalcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	Bookings booking.BookingService
	Logger   *zap.Logger
}

func NewBookingHandler(bs booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Bookings: bs, Logger: logger}
}

// canAccess reports whether the caller owns the patient record or is an admin.
func canAccess(p policy.Principal, patientEmail string) bool {
	if p.Email != "" && utils.NormalizeEmail(p.Email) == utils.NormalizeEmail(patientEmail) {
		return true
	}
	return policy.Authorize(p, policy.ActionReadAnyBooking) == policy.Allow
}

// CreateBookingHandler handles POST /booking. A duplicate is answered with
// 200 and success false.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Bookings.CreateBooking(c.Request.Context(), input.ToBooking())
	if err != nil {
		respondError(c, h.Logger, "Failed to create booking", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetPatientBookingsHandler handles GET /booking?patient=.
func (h *BookingHandler) GetPatientBookingsHandler(c *gin.Context) {
	patient := c.Query("patient")
	if !canAccess(middleware.GetPrincipal(c), patient) {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	bookings, err := h.Bookings.GetPatientBookings(c.Request.Context(), patient)
	if err != nil {
		respondError(c, h.Logger, "Failed to fetch bookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler handles GET /booking/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Bookings.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, "Failed to fetch booking", err)
		return
	}
	if !canAccess(middleware.GetPrincipal(c), b.PatientEmail) {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// CompletePaymentHandler handles PATCH /booking/:id.
func (h *BookingHandler) CompletePaymentHandler(c *gin.Context) {
	id := c.Param("id")
	var body models.PaymentCompletion
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payment", err.Error())
		return
	}

	b, err := h.Bookings.GetBooking(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, "Failed to fetch booking", err)
		return
	}
	if !canAccess(middleware.GetPrincipal(c), b.PatientEmail) {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	paid, err := h.Bookings.CompletePayment(c.Request.Context(), id, body)
	if err != nil {
		respondError(c, h.Logger, "Failed to complete payment", err)
		return
	}
	c.JSON(http.StatusOK, paid)
}
