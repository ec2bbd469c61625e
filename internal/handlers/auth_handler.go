package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Seraphinsupinfo/4CITE/internal/config"
	domain "github.com/Seraphinsupinfo/4CITE/internal/domain/user"
	"github.com/Seraphinsupinfo/4CITE/internal/httperr"
	"github.com/Seraphinsupinfo/4CITE/internal/models"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	users  domain.Repository
	config *config.Config
}

func NewAuthHandler(users domain.Repository, cfg *config.Config) *AuthHandler {
	return &AuthHandler{users: users, config: cfg}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login validates credentials and answers 201 with a bearer token. A
// missing account and a wrong password are indistinguishable on the
// wire.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.users.GetByEmail(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "internal_error", "Internal server error")
		return
	}
	if user == nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(req.Password),
	); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "token_generation_failed", "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"access_token": token})
}

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":     user.ID,
		"pseudo": user.Pseudo,
		"role":   user.Role,
		"iat":    now.Unix(),
		"exp":    now.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
