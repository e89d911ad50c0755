package handler

import (
	"errors"
	"net/http"

	"hospital-front-desk/internal/middleware"
	"hospital-front-desk/internal/service"
	"hospital-front-desk/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	directoryService *service.DirectoryService
}

func NewDoctorHandler(directoryService *service.DirectoryService) *DoctorHandler {
	return &DoctorHandler{
		directoryService: directoryService,
	}
}

type CreateDoctorRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	Specialization string `json:"specialization" binding:"required,max=100"`
	// Optional login credentials; when present the doctor gets an account
	Username string `json:"username" binding:"omitempty,min=3,max=50"`
	Password string `json:"password" binding:"required_with=Username,omitempty,min=6"`
}

// ListDoctors returns all doctors (admin only)
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.directoryService.ListDoctors()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch doctors")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"doctors": doctors,
		"count":   len(doctors),
	})
}

// CreateDoctor registers a new doctor, optionally with login credentials
// (admin only)
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	userID := c.GetUint(middleware.ContextUserIDKey)

	doctor, err := h.directoryService.CreateDoctor(service.CreateDoctorInput{
		Name:           req.Name,
		Specialization: req.Specialization,
		Username:       req.Username,
		Password:       req.Password,
	}, userID)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			utils.ErrorResponse(c, http.StatusConflict, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create doctor")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"doctor": doctor,
	})
}
