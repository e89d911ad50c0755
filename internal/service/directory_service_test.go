package service

import (
	"errors"
	"testing"

	"hospital-front-desk/internal/models"
	"hospital-front-desk/internal/repository"
	"hospital-front-desk/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDirectoryFixture() (*DirectoryService, *MockPatientStore, *MockDoctorStore, *MockUserStore, *MockAuditStore) {
	patientStore := new(MockPatientStore)
	doctorStore := new(MockDoctorStore)
	userStore := new(MockUserStore)
	auditStore := new(MockAuditStore)
	svc := NewDirectoryService(patientStore, doctorStore, userStore, auditStore)
	return svc, patientStore, doctorStore, userStore, auditStore
}

func TestDirectoryService_CreatePatient(t *testing.T) {
	svc, patientStore, _, _, auditStore := newDirectoryFixture()

	patientStore.On("CreatePatient", mock.AnythingOfType("*models.Patient")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*models.Patient).ID = 1
		}).Return(nil)
	auditStore.On("CreateAuditLog", mock.Anything, "patient_create", mock.Anything).Return(nil)

	patient, err := svc.CreatePatient(CreatePatientInput{
		Name:    "Jane Doe",
		Age:     34,
		Gender:  "F",
		Ailment: "fracture",
	}, 1)

	require.NoError(t, err)
	assert.Equal(t, uint(1), patient.ID)
	assert.Equal(t, "Jane Doe", patient.Name)
	assert.Equal(t, 34, patient.Age)
	assert.Equal(t, "fracture", patient.Ailment)
	patientStore.AssertExpectations(t)
}

func TestDirectoryService_CreatePatient_WithCredentials(t *testing.T) {
	svc, patientStore, _, userStore, auditStore := newDirectoryFixture()

	userStore.On("FindUserByUsername", "jane").Return(nil, repository.ErrNotFound)
	patientStore.On("CreatePatientWithUser",
		mock.AnythingOfType("*models.User"), mock.AnythingOfType("*models.Patient")).
		Run(func(args mock.Arguments) {
			user := args.Get(0).(*models.User)
			assert.Equal(t, models.RolePatient, user.Role)
			assert.True(t, utils.ComparePassword(user.PasswordHash, "janepw"))
		}).Return(nil)
	auditStore.On("CreateAuditLog", mock.Anything, "patient_create", mock.Anything).Return(nil)

	_, err := svc.CreatePatient(CreatePatientInput{
		Name:     "Jane Doe",
		Age:      34,
		Gender:   "F",
		Ailment:  "fracture",
		Username: "jane",
		Password: "janepw",
	}, 1)

	require.NoError(t, err)
	patientStore.AssertExpectations(t)
}

func TestDirectoryService_CreateDoctor_WithCredentials(t *testing.T) {
	svc, _, doctorStore, userStore, auditStore := newDirectoryFixture()

	userStore.On("FindUserByUsername", "drsmith").Return(nil, repository.ErrNotFound)
	doctorStore.On("CreateDoctorWithUser",
		mock.AnythingOfType("*models.User"), mock.AnythingOfType("*models.Doctor")).
		Run(func(args mock.Arguments) {
			user := args.Get(0).(*models.User)
			doctor := args.Get(1).(*models.Doctor)
			assert.Equal(t, "drsmith", user.Username)
			assert.Equal(t, models.RoleDoctor, user.Role)
			assert.True(t, utils.ComparePassword(user.PasswordHash, "pw1secret"))
			assert.Equal(t, "Dr Smith", doctor.Name)
			assert.Equal(t, "Cardiology", doctor.Specialization)
		}).Return(nil)
	auditStore.On("CreateAuditLog", mock.Anything, "doctor_create", mock.Anything).Return(nil)

	doctor, err := svc.CreateDoctor(CreateDoctorInput{
		Name:           "Dr Smith",
		Specialization: "Cardiology",
		Username:       "drsmith",
		Password:       "pw1secret",
	}, 1)

	require.NoError(t, err)
	assert.Equal(t, "Dr Smith", doctor.Name)
	doctorStore.AssertExpectations(t)
}

func TestDirectoryService_CreateDoctor_WithoutCredentials(t *testing.T) {
	svc, _, doctorStore, userStore, auditStore := newDirectoryFixture()

	doctorStore.On("CreateDoctor", mock.AnythingOfType("*models.Doctor")).Return(nil)
	auditStore.On("CreateAuditLog", mock.Anything, "doctor_create", mock.Anything).Return(nil)

	_, err := svc.CreateDoctor(CreateDoctorInput{
		Name:           "Dr Jones",
		Specialization: "Neurology",
	}, 1)

	require.NoError(t, err)
	userStore.AssertNotCalled(t, "FindUserByUsername", mock.Anything)
	doctorStore.AssertNotCalled(t, "CreateDoctorWithUser", mock.Anything, mock.Anything)
}

func TestDirectoryService_CreateDoctor_UsernameTaken(t *testing.T) {
	svc, _, doctorStore, userStore, _ := newDirectoryFixture()

	userStore.On("FindUserByUsername", "drsmith").
		Return(&models.User{ID: 2, Username: "drsmith", Role: models.RoleDoctor}, nil)

	_, err := svc.CreateDoctor(CreateDoctorInput{
		Name:           "Dr Smith",
		Specialization: "Cardiology",
		Username:       "drsmith",
		Password:       "pw1secret",
	}, 1)

	assert.ErrorIs(t, err, ErrUsernameTaken)
	doctorStore.AssertNotCalled(t, "CreateDoctorWithUser", mock.Anything, mock.Anything)
	doctorStore.AssertNotCalled(t, "CreateDoctor", mock.Anything)
}

// A failed doctor insert inside the transaction must surface the error and
// must not leave a created doctor behind.
func TestDirectoryService_CreateDoctor_TransactionFailure(t *testing.T) {
	svc, _, doctorStore, userStore, _ := newDirectoryFixture()

	userStore.On("FindUserByUsername", "drsmith").Return(nil, repository.ErrNotFound)
	doctorStore.On("CreateDoctorWithUser",
		mock.AnythingOfType("*models.User"), mock.AnythingOfType("*models.Doctor")).
		Return(errors.New("constraint violation"))

	_, err := svc.CreateDoctor(CreateDoctorInput{
		Name:           "Dr Smith",
		Specialization: "Cardiology",
		Username:       "drsmith",
		Password:       "pw1secret",
	}, 1)

	assert.Error(t, err)
}

func TestDirectoryService_Lists(t *testing.T) {
	svc, patientStore, doctorStore, _, _ := newDirectoryFixture()

	patientStore.On("GetAllPatients").Return([]models.Patient{
		{ID: 1, Name: "Jane Doe"}, {ID: 2, Name: "John Roe"},
	}, nil)
	doctorStore.On("GetAllDoctors").Return([]models.Doctor{
		{ID: 1, Name: "Dr Smith", Specialization: "Cardiology"},
	}, nil)

	patients, err := svc.ListPatients()
	require.NoError(t, err)
	require.Len(t, patients, 2)
	assert.Equal(t, "Jane Doe", patients[0].Name)

	doctors, err := svc.ListDoctors()
	require.NoError(t, err)
	require.Len(t, doctors, 1)
}

func TestDirectoryService_Counts(t *testing.T) {
	svc, patientStore, doctorStore, _, _ := newDirectoryFixture()

	patientStore.On("CountPatients").Return(int64(4), nil)
	doctorStore.On("CountDoctors").Return(int64(2), nil)

	patients, doctors, err := svc.Counts()
	require.NoError(t, err)
	assert.Equal(t, int64(4), patients)
	assert.Equal(t, int64(2), doctors)
}
