package handler

import (
	"errors"
	"net/http"

	"hospital-front-desk/internal/middleware"
	"hospital-front-desk/internal/service"
	"hospital-front-desk/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	directoryService *service.DirectoryService
}

func NewPatientHandler(directoryService *service.DirectoryService) *PatientHandler {
	return &PatientHandler{
		directoryService: directoryService,
	}
}

type CreatePatientRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Age     *int   `json:"age" binding:"required,gte=0"`
	Gender  string `json:"gender" binding:"required,max=10"`
	Ailment string `json:"ailment" binding:"required,max=150"`
	// Optional login credentials for the patient portal
	Username string `json:"username" binding:"omitempty,min=3,max=50"`
	Password string `json:"password" binding:"required_with=Username,omitempty,min=6"`
}

// ListPatients returns all patients (admin only)
func (h *PatientHandler) ListPatients(c *gin.Context) {
	patients, err := h.directoryService.ListPatients()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch patients")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"patients": patients,
		"count":    len(patients),
	})
}

// CreatePatient registers a new patient (admin only)
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	userID := c.GetUint(middleware.ContextUserIDKey)

	patient, err := h.directoryService.CreatePatient(service.CreatePatientInput{
		Name:     req.Name,
		Age:      *req.Age,
		Gender:   req.Gender,
		Ailment:  req.Ailment,
		Username: req.Username,
		Password: req.Password,
	}, userID)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			utils.ErrorResponse(c, http.StatusConflict, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create patient")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"patient": patient,
	})
}
