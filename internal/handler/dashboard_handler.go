package handler

import (
	"errors"
	"net/http"

	"hospital-front-desk/internal/middleware"
	"hospital-front-desk/internal/service"
	"hospital-front-desk/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the per-role landing views. Each route is guarded
// by RequireRoles for exactly one role, so a handler never sees a caller of
// the wrong role.
type DashboardHandler struct {
	directoryService *service.DirectoryService
	bookingService   *service.BookingService
}

func NewDashboardHandler(
	directoryService *service.DirectoryService,
	bookingService *service.BookingService,
) *DashboardHandler {
	return &DashboardHandler{
		directoryService: directoryService,
		bookingService:   bookingService,
	}
}

// AdminDashboard returns entity counts for the admin landing view
func (h *DashboardHandler) AdminDashboard(c *gin.Context) {
	patients, doctors, err := h.directoryService.Counts()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}
	appointments, err := h.bookingService.CountAppointments()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"role":         "admin",
		"patients":     patients,
		"doctors":      doctors,
		"appointments": appointments,
	})
}

// DoctorDashboard returns the doctor's own upcoming appointments
func (h *DashboardHandler) DoctorDashboard(c *gin.Context) {
	h.ownAppointments(c, "doctor")
}

// PatientDashboard returns the patient's own upcoming appointments
func (h *DashboardHandler) PatientDashboard(c *gin.Context) {
	h.ownAppointments(c, "patient")
}

// ReceptionistDashboard returns the full appointment list for the desk
func (h *DashboardHandler) ReceptionistDashboard(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserIDKey)
	role := c.GetString(middleware.ContextRoleKey)

	appointments, err := h.bookingService.ListAppointments(userID, role)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"role":         "receptionist",
		"appointments": appointments,
	})
}

func (h *DashboardHandler) ownAppointments(c *gin.Context, roleName string) {
	userID := c.GetUint(middleware.ContextUserIDKey)
	role := c.GetString(middleware.ContextRoleKey)

	appointments, err := h.bookingService.ListAppointments(userID, role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoDoctorProfile), errors.Is(err, service.ErrNoPatientProfile):
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to load dashboard")
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"role":         roleName,
		"appointments": appointments,
	})
}
