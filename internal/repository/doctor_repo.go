package repository

import (
	"errors"

	"hospital-front-desk/internal/models"

	"gorm.io/gorm"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepo(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// GetAllDoctors retrieves all doctors in insertion order
func (r *DoctorRepository) GetAllDoctors() ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.Order("id ASC").Find(&doctors).Error
	return doctors, err
}

// GetDoctorByID retrieves a doctor by primary key
func (r *DoctorRepository) GetDoctorByID(id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.First(&doctor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

// GetDoctorByUserID retrieves the doctor record linked to a login account
func (r *DoctorRepository) GetDoctorByUserID(userID uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.Where("user_id = ?", userID).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

// CountDoctors returns the total number of doctors
func (r *DoctorRepository) CountDoctors() (int64, error) {
	var count int64
	err := r.db.Model(&models.Doctor{}).Count(&count).Error
	return count, err
}

// CreateDoctor creates a doctor record without a login account
func (r *DoctorRepository) CreateDoctor(doctor *models.Doctor) error {
	return r.db.Create(doctor).Error
}

// CreateDoctorWithUser creates a login account and a doctor record linked to
// it in a single transaction. A failed doctor insert rolls back the user
// insert so no orphaned credential remains.
func (r *DoctorRepository) CreateDoctorWithUser(user *models.User, doctor *models.Doctor) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		doctor.UserID = &user.ID
		return tx.Create(doctor).Error
	})
}
