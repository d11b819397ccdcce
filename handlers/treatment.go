package handlers

import (
	"net/http"

	"dentalcare/models"
	"dentalcare/services/availability"
	"dentalcare/services/catalog"
	"dentalcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TreatmentHandler serves the catalog and per-date availability.
type TreatmentHandler struct {
	Catalog      catalog.CatalogService
	Availability availability.AvailabilityService
	Dates        utils.DateValidator
	Logger       *zap.Logger
}

func NewTreatmentHandler(cs catalog.CatalogService, as availability.AvailabilityService, dates utils.DateValidator, logger *zap.Logger) *TreatmentHandler {
	return &TreatmentHandler{Catalog: cs, Availability: as, Dates: dates, Logger: logger}
}

// GetTreatmentsHandler handles GET /appointments (names only).
func (h *TreatmentHandler) GetTreatmentsHandler(c *gin.Context) {
	summaries, err := h.Catalog.ListSummaries(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, "Failed to fetch treatments", err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// GetAvailableHandler handles GET /available?date=.
// Dates are only validated when strict date checking is enabled.
func (h *TreatmentHandler) GetAvailableHandler(c *gin.Context) {
	date := c.Query("date")
	if h.Dates.Strict {
		if err := h.Dates.Validate(date); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid date", err.Error())
			return
		}
	}

	treatments, err := h.Availability.GetAvailability(c.Request.Context(), date)
	if err != nil {
		respondError(c, h.Logger, "Failed to compute availability", err)
		return
	}
	c.JSON(http.StatusOK, treatments)
}

// UpsertTreatmentHandler handles POST /appointments.
func (h *TreatmentHandler) UpsertTreatmentHandler(c *gin.Context) {
	var t models.Treatment
	if err := c.ShouldBindJSON(&t); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid treatment", err.Error())
		return
	}
	saved, err := h.Catalog.UpsertTreatment(c.Request.Context(), t)
	if err != nil {
		respondError(c, h.Logger, "Failed to save treatment", err)
		return
	}
	c.JSON(http.StatusOK, saved)
}
