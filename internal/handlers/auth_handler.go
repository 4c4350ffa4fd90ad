package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/dentaldesk/clinic-queue/internal/clinic"
	"github.com/dentaldesk/clinic-queue/internal/config"
	"github.com/dentaldesk/clinic-queue/internal/middleware"
	"github.com/dentaldesk/clinic-queue/internal/models"
)

type AuthHandler struct {
	store  *clinic.Store
	config *config.Config
}

func NewAuthHandler(store *clinic.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{store: store, config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Login matches the email against the seeded doctors. The password is
// required by the form but never verified; this demo has no credential
// store. A real deployment replaces this wholesale.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	doctor, ok := h.store.Login(email, req.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(&doctor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"doctor": gin.H{
			"id":    doctor.ID,
			"name":  doctor.Name,
			"code":  doctor.Code,
			"email": doctor.Email,
		},
		"token": token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.store.Logout()
	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	doctorID := c.GetString(middleware.ContextDoctorID)

	doctor, ok := h.store.GetDoctor(doctorID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "doctor_not_found"})
		return
	}
	c.JSON(http.StatusOK, doctor)
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(doctor *models.Doctor) (string, error) {
	claims := jwt.MapClaims{
		"sub":  doctor.ID,
		"name": doctor.Name,
		"code": doctor.Code,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
