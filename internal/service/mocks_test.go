package service

import (
	"hospital-front-desk/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockUserStore is a mock implementation of UserStore and DirectoryUserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) FindUserByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserStore) CreateRefreshToken(token *models.RefreshToken) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockUserStore) FindRefreshTokenByHash(hash string) (*models.RefreshToken, error) {
	args := m.Called(hash)
	if t := args.Get(0); t != nil {
		return t.(*models.RefreshToken), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserStore) RevokeRefreshTokenByHash(hash string) error {
	args := m.Called(hash)
	return args.Error(0)
}

// MockAuditStore is a mock implementation of AuditStore
type MockAuditStore struct {
	mock.Mock
}

func (m *MockAuditStore) CreateAuditLog(userID *uint, action string, details string) error {
	args := m.Called(userID, action, details)
	return args.Error(0)
}

// MockPatientStore is a mock implementation of PatientStore
type MockPatientStore struct {
	mock.Mock
}

func (m *MockPatientStore) GetAllPatients() ([]models.Patient, error) {
	args := m.Called()
	if p := args.Get(0); p != nil {
		return p.([]models.Patient), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPatientStore) GetPatientByID(id uint) (*models.Patient, error) {
	args := m.Called(id)
	if p := args.Get(0); p != nil {
		return p.(*models.Patient), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPatientStore) GetPatientByUserID(userID uint) (*models.Patient, error) {
	args := m.Called(userID)
	if p := args.Get(0); p != nil {
		return p.(*models.Patient), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPatientStore) CountPatients() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPatientStore) CreatePatient(patient *models.Patient) error {
	args := m.Called(patient)
	return args.Error(0)
}

func (m *MockPatientStore) CreatePatientWithUser(user *models.User, patient *models.Patient) error {
	args := m.Called(user, patient)
	return args.Error(0)
}

// MockDoctorStore is a mock implementation of DoctorStore
type MockDoctorStore struct {
	mock.Mock
}

func (m *MockDoctorStore) GetAllDoctors() ([]models.Doctor, error) {
	args := m.Called()
	if d := args.Get(0); d != nil {
		return d.([]models.Doctor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDoctorStore) GetDoctorByID(id uint) (*models.Doctor, error) {
	args := m.Called(id)
	if d := args.Get(0); d != nil {
		return d.(*models.Doctor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDoctorStore) GetDoctorByUserID(userID uint) (*models.Doctor, error) {
	args := m.Called(userID)
	if d := args.Get(0); d != nil {
		return d.(*models.Doctor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDoctorStore) CountDoctors() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDoctorStore) CreateDoctor(doctor *models.Doctor) error {
	args := m.Called(doctor)
	return args.Error(0)
}

func (m *MockDoctorStore) CreateDoctorWithUser(user *models.User, doctor *models.Doctor) error {
	args := m.Called(user, doctor)
	return args.Error(0)
}

// MockAppointmentStore is a mock implementation of AppointmentStore
type MockAppointmentStore struct {
	mock.Mock
}

func (m *MockAppointmentStore) GetAllAppointmentsJoined() ([]models.AppointmentDetail, error) {
	args := m.Called()
	if a := args.Get(0); a != nil {
		return a.([]models.AppointmentDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAppointmentStore) GetAppointmentsByDoctorID(doctorID uint) ([]models.AppointmentDetail, error) {
	args := m.Called(doctorID)
	if a := args.Get(0); a != nil {
		return a.([]models.AppointmentDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAppointmentStore) GetAppointmentsByPatientID(patientID uint) ([]models.AppointmentDetail, error) {
	args := m.Called(patientID)
	if a := args.Get(0); a != nil {
		return a.([]models.AppointmentDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAppointmentStore) CreateAppointment(appointment *models.Appointment) error {
	args := m.Called(appointment)
	return args.Error(0)
}

func (m *MockAppointmentStore) CountAppointments() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
