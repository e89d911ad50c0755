package models

import "time"

// Appointment represents the appointments table. Both foreign keys must
// reference existing rows at creation time; there is no overlap constraint
// for the same doctor and time.
type Appointment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PatientID uint      `gorm:"not null;index" json:"patient_id"`
	DoctorID  uint      `gorm:"not null;index" json:"doctor_id"`
	Date      time.Time `gorm:"not null" json:"date"`
	CreatedAt time.Time `json:"created_at"`

	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

// TableName specifies the table name for Appointment model
func (Appointment) TableName() string {
	return "appointments"
}

// AppointmentDetail is the joined row returned by appointment listings:
// the appointment plus the patient and doctor names resolved explicitly.
type AppointmentDetail struct {
	ID             uint      `json:"id"`
	PatientID      uint      `json:"patient_id"`
	PatientName    string    `json:"patient_name"`
	DoctorID       uint      `json:"doctor_id"`
	DoctorName     string    `json:"doctor_name"`
	Specialization string    `json:"specialization"`
	Date           time.Time `json:"date"`
}
