package handler

import (
	"errors"
	"net/http"

	"hospital-front-desk/internal/middleware"
	"hospital-front-desk/internal/service"
	"hospital-front-desk/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles user authentication. On success the response carries the
// access token and the dashboard route for the user's role; the refresh
// token travels in an HttpOnly cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid credentials")
		case errors.Is(err, service.ErrUnknownRole):
			utils.ErrorResponse(c, http.StatusForbidden, "Account role is not recognised")
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	// Set refresh token as HttpOnly cookie, living as long as the token itself
	c.SetCookie(
		"refresh_token",
		response.RefreshToken,
		int(utils.GetRefreshTokenExpiry().Seconds()),
		"/",
		"",
		false, // secure (set to true in production with HTTPS)
		true,  // httpOnly
	)

	utils.SuccessResponse(c, gin.H{
		"access_token": response.AccessToken,
		"dashboard":    response.Dashboard,
		"user":         response.User,
	})
}

// Refresh generates a new access token from the refresh token cookie
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie("refresh_token")
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Refresh token not found")
		return
	}

	accessToken, err := h.authService.RefreshAccessToken(refreshToken)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"access_token": accessToken,
	})
}

// Logout revokes the refresh token and clears the session cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserIDKey)

	refreshToken, err := c.Cookie("refresh_token")
	if err != nil {
		// No cookie to revoke, just clear it
		c.SetCookie("refresh_token", "", -1, "/", "", false, true)
		utils.MessageResponse(c, "Logged out successfully")
		return
	}

	if err := h.authService.Logout(userID, refreshToken); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to logout")
		return
	}

	c.SetCookie("refresh_token", "", -1, "/", "", false, true)

	utils.MessageResponse(c, "Logged out successfully")
}
