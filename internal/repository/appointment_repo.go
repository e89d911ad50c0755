package repository

import (
	"hospital-front-desk/internal/models"

	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

const appointmentDetailSelect = `
	appointments.id,
	appointments.patient_id,
	patients.name AS patient_name,
	appointments.doctor_id,
	doctors.name AS doctor_name,
	doctors.specialization,
	appointments.date`

// GetAllAppointmentsJoined retrieves all appointments with patient and
// doctor details, sorted ascending by date.
func (r *AppointmentRepository) GetAllAppointmentsJoined() ([]models.AppointmentDetail, error) {
	var details []models.AppointmentDetail
	err := r.db.Model(&models.Appointment{}).
		Select(appointmentDetailSelect).
		Joins("INNER JOIN patients ON patients.id = appointments.patient_id").
		Joins("INNER JOIN doctors ON doctors.id = appointments.doctor_id").
		Order("appointments.date ASC").
		Scan(&details).Error
	return details, err
}

// GetAppointmentsByDoctorID retrieves the joined appointments for one doctor,
// sorted ascending by date.
func (r *AppointmentRepository) GetAppointmentsByDoctorID(doctorID uint) ([]models.AppointmentDetail, error) {
	var details []models.AppointmentDetail
	err := r.db.Model(&models.Appointment{}).
		Select(appointmentDetailSelect).
		Joins("INNER JOIN patients ON patients.id = appointments.patient_id").
		Joins("INNER JOIN doctors ON doctors.id = appointments.doctor_id").
		Where("appointments.doctor_id = ?", doctorID).
		Order("appointments.date ASC").
		Scan(&details).Error
	return details, err
}

// GetAppointmentsByPatientID retrieves the joined appointments for one
// patient, sorted ascending by date.
func (r *AppointmentRepository) GetAppointmentsByPatientID(patientID uint) ([]models.AppointmentDetail, error) {
	var details []models.AppointmentDetail
	err := r.db.Model(&models.Appointment{}).
		Select(appointmentDetailSelect).
		Joins("INNER JOIN patients ON patients.id = appointments.patient_id").
		Joins("INNER JOIN doctors ON doctors.id = appointments.doctor_id").
		Where("appointments.patient_id = ?", patientID).
		Order("appointments.date ASC").
		Scan(&details).Error
	return details, err
}

// CreateAppointment creates a new appointment
func (r *AppointmentRepository) CreateAppointment(appointment *models.Appointment) error {
	return r.db.Create(appointment).Error
}

// CountAppointments returns the total number of appointments
func (r *AppointmentRepository) CountAppointments() (int64, error) {
	var count int64
	err := r.db.Model(&models.Appointment{}).Count(&count).Error
	return count, err
}
