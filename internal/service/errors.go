package service

import "errors"

var (
	// ErrInvalidCredentials is returned for an unknown username and for a
	// wrong password alike, so a caller cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnknownRole is returned when a stored role is not one of the four
	// recognised values and therefore has no dashboard route.
	ErrUnknownRole = errors.New("unknown role")

	ErrUsernameTaken = errors.New("username already exists")

	ErrPatientNotFound = errors.New("patient not found")
	ErrDoctorNotFound  = errors.New("doctor not found")

	// Returned when a doctor/patient account has no linked directory record
	// to scope "my appointments" by.
	ErrNoDoctorProfile  = errors.New("no doctor profile linked to this account")
	ErrNoPatientProfile = errors.New("no patient profile linked to this account")

	ErrInvalidDate = errors.New("invalid date: expected format YYYY-MM-DDTHH:MM")
)
