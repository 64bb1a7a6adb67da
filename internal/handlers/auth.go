package handlers

import (
	"medicab-server/internal/auth"
	"medicab-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles login, registration and the practice session.
type AuthHandler struct {
	Service *auth.Service
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service *auth.Service) *AuthHandler {
	return &AuthHandler{Service: service}
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles user login and opens the session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	res := h.Service.Login(c.Request.Context(), req.Email, req.Password)
	if !res.Success {
		if res.Error == auth.ErrSessionWrite {
			utils.InternalServerError(c, res.Error)
		} else {
			utils.Unauthorized(c, res.Error)
		}
		return
	}

	utils.Success(c, "Login successful", res.User)
}

// Register handles account registration.
func (h *AuthHandler) Register(c *gin.Context) {
	var req auth.RegisterInput
	if !utils.BindAndValidate(c, &req) {
		return
	}

	res := h.Service.Register(c.Request.Context(), req)
	if !res.Success {
		if res.Error == auth.ErrRegistration {
			utils.InternalServerError(c, res.Error)
		} else {
			utils.BadRequest(c, res.Error)
		}
		return
	}

	utils.Created(c, "User registered successfully", res.User)
}

// Logout closes the session. Logging out without a session succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	if !h.Service.Logout(c.Request.Context()) {
		utils.InternalServerError(c, "Failed to close the session")
		return
	}
	utils.Success(c, "Logout successful", nil)
}

// Session returns the open session.
func (h *AuthHandler) Session(c *gin.Context) {
	session := h.Service.CurrentSession(c.Request.Context())
	if session == nil {
		utils.NotFound(c, "No active session")
		return
	}
	utils.Success(c, "Session fetched successfully", session)
}
