package handler

import (
	"errors"
	"net/http"

	"hospital-front-desk/internal/middleware"
	"hospital-front-desk/internal/service"
	"hospital-front-desk/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	bookingService *service.BookingService
}

func NewAppointmentHandler(bookingService *service.BookingService) *AppointmentHandler {
	return &AppointmentHandler{
		bookingService: bookingService,
	}
}

type CreateAppointmentRequest struct {
	PatientID uint   `json:"patient_id" binding:"required"`
	DoctorID  uint   `json:"doctor_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
}

// ListAppointments returns the joined appointment list scoped to the caller's
// role (admin and receptionist on this route)
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserIDKey)
	role := c.GetString(middleware.ContextRoleKey)

	appointments, err := h.bookingService.ListAppointments(userID, role)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch appointments")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"appointments": appointments,
		"count":        len(appointments),
	})
}

// GetBookingOptions returns the current patients and doctors for the booking
// form, before any booking is submitted
func (h *AppointmentHandler) GetBookingOptions(c *gin.Context) {
	options, err := h.bookingService.Options()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch booking options")
		return
	}

	utils.SuccessResponse(c, options)
}

// CreateAppointment books an appointment (admin or receptionist)
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	userID := c.GetUint(middleware.ContextUserIDKey)

	appointment, err := h.bookingService.CreateAppointment(req.PatientID, req.DoctorID, req.Date, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDate):
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrPatientNotFound), errors.Is(err, service.ErrDoctorNotFound):
			utils.ErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create appointment")
		}
		return
	}

	utils.CreatedResponse(c, gin.H{
		"appointment": appointment,
	})
}
