package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"hospital-front-desk/internal/models"
	"hospital-front-desk/internal/repository"
)

// appointmentDateLayout is the wire format for appointment dates, matching
// the HTML datetime-local input format.
const appointmentDateLayout = "2006-01-02T15:04"

// AppointmentStore is the slice of the appointment repository the booking
// service needs.
type AppointmentStore interface {
	GetAllAppointmentsJoined() ([]models.AppointmentDetail, error)
	GetAppointmentsByDoctorID(doctorID uint) ([]models.AppointmentDetail, error)
	GetAppointmentsByPatientID(patientID uint) ([]models.AppointmentDetail, error)
	CreateAppointment(appointment *models.Appointment) error
	CountAppointments() (int64, error)
}

// BookingService manages appointments and their joined views.
type BookingService struct {
	appointmentStore AppointmentStore
	patientStore     PatientStore
	doctorStore      DoctorStore
	auditStore       AuditStore
}

func NewBookingService(
	appointmentStore AppointmentStore,
	patientStore PatientStore,
	doctorStore DoctorStore,
	auditStore AuditStore,
) *BookingService {
	return &BookingService{
		appointmentStore: appointmentStore,
		patientStore:     patientStore,
		doctorStore:      doctorStore,
		auditStore:       auditStore,
	}
}

// BookingOptions holds the current patients and doctors offered by the
// appointment form.
type BookingOptions struct {
	Patients []models.Patient `json:"patients"`
	Doctors  []models.Doctor  `json:"doctors"`
}

// ListAppointments returns joined appointments scoped by the caller's role:
// admin and receptionist see everything, a doctor sees rows for their own
// doctor record, a patient sees rows for their own patient record. All
// listings are sorted ascending by date.
func (s *BookingService) ListAppointments(userID uint, role string) ([]models.AppointmentDetail, error) {
	details, err := s.listForRole(userID, role)
	if err != nil {
		return nil, err
	}

	// Sorted here as well as in the queries, so the invariant does not
	// depend on the storage backend.
	sort.SliceStable(details, func(i, j int) bool {
		return details[i].Date.Before(details[j].Date)
	})

	return details, nil
}

func (s *BookingService) listForRole(userID uint, role string) ([]models.AppointmentDetail, error) {
	switch role {
	case models.RoleAdmin, models.RoleReceptionist:
		return s.appointmentStore.GetAllAppointmentsJoined()

	case models.RoleDoctor:
		doctor, err := s.doctorStore.GetDoctorByUserID(userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrNoDoctorProfile
			}
			return nil, err
		}
		return s.appointmentStore.GetAppointmentsByDoctorID(doctor.ID)

	case models.RolePatient:
		patient, err := s.patientStore.GetPatientByUserID(userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrNoPatientProfile
			}
			return nil, err
		}
		return s.appointmentStore.GetAppointmentsByPatientID(patient.ID)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
}

// CreateAppointment books an appointment after validating the date format
// and that both referenced records exist. No overlap check is made: two
// bookings for the same doctor and time are both accepted.
func (s *BookingService) CreateAppointment(patientID, doctorID uint, date string, createdBy uint) (*models.Appointment, error) {
	parsedDate, err := time.Parse(appointmentDateLayout, date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if _, err := s.patientStore.GetPatientByID(patientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}

	if _, err := s.doctorStore.GetDoctorByID(doctorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}

	appointment := &models.Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      parsedDate,
	}

	if err := s.appointmentStore.CreateAppointment(appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	_ = s.auditStore.CreateAuditLog(&createdBy, "appointment_create",
		fmt.Sprintf("Booked appointment %d: patient %d with doctor %d at %s",
			appointment.ID, patientID, doctorID, parsedDate.Format(appointmentDateLayout)))

	return appointment, nil
}

// Options returns the patient and doctor lists shown on the booking form
func (s *BookingService) Options() (*BookingOptions, error) {
	patients, err := s.patientStore.GetAllPatients()
	if err != nil {
		return nil, err
	}
	doctors, err := s.doctorStore.GetAllDoctors()
	if err != nil {
		return nil, err
	}
	return &BookingOptions{Patients: patients, Doctors: doctors}, nil
}

// CountAppointments returns the total number of appointments on record
func (s *BookingService) CountAppointments() (int64, error) {
	return s.appointmentStore.CountAppointments()
}
