package repository

import (
	"errors"

	"hospital-front-desk/internal/models"

	"gorm.io/gorm"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepo(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// GetAllPatients retrieves all patients in insertion order
func (r *PatientRepository) GetAllPatients() ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.Order("id ASC").Find(&patients).Error
	return patients, err
}

// GetPatientByID retrieves a patient by primary key
func (r *PatientRepository) GetPatientByID(id uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.First(&patient, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &patient, nil
}

// GetPatientByUserID retrieves the patient record linked to a login account
func (r *PatientRepository) GetPatientByUserID(userID uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.Where("user_id = ?", userID).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &patient, nil
}

// CountPatients returns the total number of patients
func (r *PatientRepository) CountPatients() (int64, error) {
	var count int64
	err := r.db.Model(&models.Patient{}).Count(&count).Error
	return count, err
}

// CreatePatient creates a new patient record
func (r *PatientRepository) CreatePatient(patient *models.Patient) error {
	return r.db.Create(patient).Error
}

// CreatePatientWithUser creates a login account and a patient record linked
// to it in a single transaction. Either both rows exist afterwards or neither.
func (r *PatientRepository) CreatePatientWithUser(user *models.User, patient *models.Patient) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		patient.UserID = &user.ID
		return tx.Create(patient).Error
	})
}
