package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/21musie/Caxora/internal/application"
	"github.com/21musie/Caxora/internal/interface/middleware"
	"github.com/21musie/Caxora/pkg/response"
	"github.com/21musie/Caxora/pkg/validation"
)

// AuthHandler exposes the auth service over JSON HTTP.
type AuthHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.Service, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=100,username"`
	Email       string `json:"email" binding:"required,email,max=255"`
	Password    string `json:"password" binding:"required,min=6,max=100"`
	FullName    string `json:"fullName" binding:"required,min=2,max=150"`
	PhoneNumber string `json:"phoneNumber" binding:"omitempty,max=20"`
	Location    string `json:"location" binding:"omitempty,max=200"`
	Address     string `json:"address" binding:"omitempty,max=100"`
	City        string `json:"city" binding:"omitempty,max=50"`
	Role        string `json:"role" binding:"omitempty,role"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Location:    req.Location,
		Address:     req.Address,
		City:        req.City,
		Role:        req.Role,
	})
	c.JSON(statusFor(res, http.StatusCreated), res)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res := h.Svc.Login(c.Request.Context(), application.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	c.JSON(statusFor(res, http.StatusOK), res)
}

// Me handles GET /api/auth/me. It answers purely from the bearer token
// claims; no store lookup.
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":       claims.Subject,
		"username": claims.Username,
		"email":    claims.Email,
		"role":     claims.Role,
		"fullName": claims.FullName,
	})
}

// statusFor maps a service result to an HTTP status. Business failures stay
// in the AuthResult body; the status is a boundary concern.
func statusFor(res *application.AuthResult, okStatus int) int {
	if res.Success {
		return okStatus
	}
	switch res.Kind {
	case application.KindUsernameTaken, application.KindEmailTaken:
		return http.StatusConflict
	case application.KindInvalidCredentials:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
