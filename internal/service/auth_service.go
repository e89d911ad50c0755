package service

import (
	"errors"
	"fmt"
	"time"

	"hospital-front-desk/internal/models"
	"hospital-front-desk/internal/repository"
	"hospital-front-desk/pkg/utils"
)

// UserStore is the slice of the user repository the auth service needs.
type UserStore interface {
	FindUserByUsername(username string) (*models.User, error)
	CreateRefreshToken(token *models.RefreshToken) error
	FindRefreshTokenByHash(hash string) (*models.RefreshToken, error)
	RevokeRefreshTokenByHash(hash string) error
}

// AuditStore records security-relevant actions.
type AuditStore interface {
	CreateAuditLog(userID *uint, action string, details string) error
}

// dashboardRoutes is the finite role-to-landing-route mapping. Roles outside
// this map do not dispatch anywhere.
var dashboardRoutes = map[string]string{
	models.RoleAdmin:        "/dashboard_admin",
	models.RoleDoctor:       "/dashboard_doctor",
	models.RoleReceptionist: "/dashboard_receptionist",
	models.RolePatient:      "/dashboard_patient",
}

// DashboardRoute resolves the landing route for a role.
func DashboardRoute(role string) (string, error) {
	route, ok := dashboardRoutes[role]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	return route, nil
}

type AuthService struct {
	userStore  UserStore
	auditStore AuditStore
}

func NewAuthService(userStore UserStore, auditStore AuditStore) *AuthService {
	return &AuthService{
		userStore:  userStore,
		auditStore: auditStore,
	}
}

// LoginResponse represents the response structure for login
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	Dashboard    string       `json:"dashboard"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Login authenticates a user and returns tokens plus the dashboard route for
// the user's role. Lookup failure and password mismatch are indistinguishable
// to the caller.
func (s *AuthService) Login(username, password string) (*LoginResponse, error) {
	user, err := s.userStore.FindUserByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	dashboard, err := DashboardRoute(user.Role)
	if err != nil {
		return nil, err
	}

	accessToken, err := utils.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	tokenHash := utils.HashRefreshToken(refreshToken)
	refreshTokenModel := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(utils.GetRefreshTokenExpiry()),
	}

	if err := s.userStore.CreateRefreshToken(refreshTokenModel); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	userIDPtr := &user.ID
	_ = s.auditStore.CreateAuditLog(userIDPtr, "user_login", fmt.Sprintf("User %s logged in", username))

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Dashboard:    dashboard,
		User: UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
		},
	}, nil
}

// RefreshAccessToken generates a new access token from a refresh token
func (s *AuthService) RefreshAccessToken(refreshToken string) (string, error) {
	tokenHash := utils.HashRefreshToken(refreshToken)

	token, err := s.userStore.FindRefreshTokenByHash(tokenHash)
	if err != nil {
		return "", errors.New("invalid or revoked refresh token")
	}

	if time.Now().After(token.ExpiresAt) {
		return "", errors.New("refresh token expired")
	}

	accessToken, err := utils.GenerateAccessToken(token.User.ID, token.User.Role)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout revokes a refresh token
func (s *AuthService) Logout(userID uint, refreshToken string) error {
	tokenHash := utils.HashRefreshToken(refreshToken)

	if err := s.userStore.RevokeRefreshTokenByHash(tokenHash); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	_ = s.auditStore.CreateAuditLog(&userID, "user_logout", "User logged out")

	return nil
}
