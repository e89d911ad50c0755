package service

import (
	"errors"
	"fmt"

	"hospital-front-desk/internal/models"
	"hospital-front-desk/internal/repository"
	"hospital-front-desk/pkg/utils"
)

// PatientStore is the slice of the patient repository the directory service needs.
type PatientStore interface {
	GetAllPatients() ([]models.Patient, error)
	GetPatientByID(id uint) (*models.Patient, error)
	GetPatientByUserID(userID uint) (*models.Patient, error)
	CountPatients() (int64, error)
	CreatePatient(patient *models.Patient) error
	CreatePatientWithUser(user *models.User, patient *models.Patient) error
}

// DoctorStore is the slice of the doctor repository the directory service needs.
type DoctorStore interface {
	GetAllDoctors() ([]models.Doctor, error)
	GetDoctorByID(id uint) (*models.Doctor, error)
	GetDoctorByUserID(userID uint) (*models.Doctor, error)
	CountDoctors() (int64, error)
	CreateDoctor(doctor *models.Doctor) error
	CreateDoctorWithUser(user *models.User, doctor *models.Doctor) error
}

// DirectoryUserStore is the slice of the user repository needed for
// credential provisioning.
type DirectoryUserStore interface {
	FindUserByUsername(username string) (*models.User, error)
}

// DirectoryService manages patient and doctor master data.
type DirectoryService struct {
	patientStore PatientStore
	doctorStore  DoctorStore
	userStore    DirectoryUserStore
	auditStore   AuditStore
}

func NewDirectoryService(
	patientStore PatientStore,
	doctorStore DoctorStore,
	userStore DirectoryUserStore,
	auditStore AuditStore,
) *DirectoryService {
	return &DirectoryService{
		patientStore: patientStore,
		doctorStore:  doctorStore,
		userStore:    userStore,
		auditStore:   auditStore,
	}
}

// CreatePatientInput carries the fields for a new patient. Username and
// Password are optional: when present a login account with role 'patient' is
// provisioned alongside the record.
type CreatePatientInput struct {
	Name     string
	Age      int
	Gender   string
	Ailment  string
	Username string
	Password string
}

// CreateDoctorInput carries the fields for a new doctor. Username and
// Password are optional: when present a login account with role 'doctor' is
// provisioned alongside the record.
type CreateDoctorInput struct {
	Name           string
	Specialization string
	Username       string
	Password       string
}

// ListPatients retrieves all patients in insertion order
func (s *DirectoryService) ListPatients() ([]models.Patient, error) {
	return s.patientStore.GetAllPatients()
}

// ListDoctors retrieves all doctors in insertion order
func (s *DirectoryService) ListDoctors() ([]models.Doctor, error) {
	return s.doctorStore.GetAllDoctors()
}

// CreatePatient creates a patient record, optionally with a linked login
// account. Record and account are created in one transaction.
func (s *DirectoryService) CreatePatient(input CreatePatientInput, createdBy uint) (*models.Patient, error) {
	patient := &models.Patient{
		Name:    input.Name,
		Age:     input.Age,
		Gender:  input.Gender,
		Ailment: input.Ailment,
	}

	if input.Username == "" {
		if err := s.patientStore.CreatePatient(patient); err != nil {
			return nil, fmt.Errorf("failed to create patient: %w", err)
		}
	} else {
		user, err := s.provisionUser(input.Username, input.Password, models.RolePatient)
		if err != nil {
			return nil, err
		}
		if err := s.patientStore.CreatePatientWithUser(user, patient); err != nil {
			return nil, fmt.Errorf("failed to create patient: %w", err)
		}
	}

	_ = s.auditStore.CreateAuditLog(&createdBy, "patient_create",
		fmt.Sprintf("Created patient %s (ID: %d)", patient.Name, patient.ID))

	return patient, nil
}

// CreateDoctor creates a doctor record, optionally with a linked login
// account. When credentials are given, the user and the doctor row are
// created in one transaction so a failed doctor insert leaves no orphaned
// credential behind.
func (s *DirectoryService) CreateDoctor(input CreateDoctorInput, createdBy uint) (*models.Doctor, error) {
	doctor := &models.Doctor{
		Name:           input.Name,
		Specialization: input.Specialization,
	}

	if input.Username == "" {
		if err := s.doctorStore.CreateDoctor(doctor); err != nil {
			return nil, fmt.Errorf("failed to create doctor: %w", err)
		}
	} else {
		user, err := s.provisionUser(input.Username, input.Password, models.RoleDoctor)
		if err != nil {
			return nil, err
		}
		if err := s.doctorStore.CreateDoctorWithUser(user, doctor); err != nil {
			return nil, fmt.Errorf("failed to create doctor: %w", err)
		}
	}

	_ = s.auditStore.CreateAuditLog(&createdBy, "doctor_create",
		fmt.Sprintf("Created doctor %s, %s (ID: %d)", doctor.Name, doctor.Specialization, doctor.ID))

	return doctor, nil
}

// Counts returns the number of patients and doctors on record
func (s *DirectoryService) Counts() (patients int64, doctors int64, err error) {
	patients, err = s.patientStore.CountPatients()
	if err != nil {
		return 0, 0, err
	}
	doctors, err = s.doctorStore.CountDoctors()
	if err != nil {
		return 0, 0, err
	}
	return patients, doctors, nil
}

// provisionUser builds an unsaved user with a hashed password after checking
// the username is free. The caller persists it inside its own transaction;
// the unique index on username backs the check.
func (s *DirectoryService) provisionUser(username, password, role string) (*models.User, error) {
	existing, err := s.userStore.FindUserByUsername(username)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return &models.User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}, nil
}
