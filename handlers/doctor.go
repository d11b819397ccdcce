package handlers

import (
	"net/http"

	"dentalcare/models"
	"dentalcare/services/doctor"
	"dentalcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DoctorHandler struct {
	Doctors doctor.DoctorService
	Logger  *zap.Logger
}

func NewDoctorHandler(ds doctor.DoctorService, logger *zap.Logger) *DoctorHandler {
	return &DoctorHandler{Doctors: ds, Logger: logger}
}

func (h *DoctorHandler) AddDoctorHandler(c *gin.Context) {
	var d models.Doctor
	if err := c.ShouldBindJSON(&d); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid doctor", err.Error())
		return
	}
	saved, err := h.Doctors.AddDoctor(c.Request.Context(), d)
	if err != nil {
		respondError(c, h.Logger, "Failed to add doctor", err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *DoctorHandler) GetDoctorsHandler(c *gin.Context) {
	doctors, err := h.Doctors.ListDoctors(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, "Failed to fetch doctors", err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *DoctorHandler) DeleteDoctorHandler(c *gin.Context) {
	email := c.Param("email")
	if err := h.Doctors.RemoveDoctor(c.Request.Context(), email); err != nil {
		respondError(c, h.Logger, "Failed to delete doctor", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": 1})
}
