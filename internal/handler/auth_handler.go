package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/runlog/runs-backend-go/internal/middleware"
	"github.com/runlog/runs-backend-go/pkg/response"
)

// AuthHandler issues API tokens.
type AuthHandler struct {
	secret []byte
}

// NewAuthHandler creates a new auth handler with the signing secret.
func NewAuthHandler(secret string) *AuthHandler {
	return &AuthHandler{secret: []byte(secret)}
}

type tokenRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// IssueToken handles POST /api/v1/auth/token
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "userId is required")
		return
	}

	now := time.Now()
	claims := middleware.Claims{
		UserID: req.UserID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"token": token})
}
