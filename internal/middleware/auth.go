package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"kanban-board-api/internal/response"
)

// Context keys set by Auth
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
	ContextToken  = "jwtToken"
)

const validateTimeout = 5 * time.Second

// TokenValidator resolves a bearer token to the user it was issued to
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenStr string) (uuid.UUID, string, error)
}

// Auth returns a middleware that requires a valid bearer token and stores the
// caller's id, email and raw token in the gin context
func Auth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}
		tokenString := parts[1]

		ctx, cancel := context.WithTimeout(c.Request.Context(), validateTimeout)
		defer cancel()

		userID, email, err := validator.ValidateToken(ctx, tokenString)
		if err != nil || userID == uuid.Nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextEmail, email)
		c.Set(ContextToken, tokenString)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, message)
	c.Abort()
}

// JWTValidator validates HMAC-signed tokens locally. It cannot see tokens
// revoked by the auth service, so it is used only when no auth service is configured.
type JWTValidator struct {
	secret []byte
}

// NewJWTValidator creates a validator for tokens signed with secret
func NewJWTValidator(secret string) *JWTValidator {
	return &JWTValidator{secret: []byte(secret)}
}

// ValidateToken parses the token and extracts the user id from the
// user_id, sub or uid claim, and the email claim when present
func (v *JWTValidator) ValidateToken(_ context.Context, tokenStr string) (uuid.UUID, string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil {
		return uuid.Nil, "", err
	}
	if !token.Valid {
		return uuid.Nil, "", jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, "", jwt.ErrTokenInvalidClaims
	}

	var userIDStr string
	for _, key := range []string{"user_id", "sub", "uid"} {
		if s, ok := claims[key].(string); ok && s != "" {
			userIDStr = s
			break
		}
	}
	if userIDStr == "" {
		return uuid.Nil, "", errors.New("user id not found in token")
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, "", err
	}

	email, _ := claims["email"].(string)
	return userID, email, nil
}
