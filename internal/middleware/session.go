package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"celerey/internal/config"
	apperrors "celerey/internal/errors"
)

// SessionIDKey is the Gin context key holding the session of the request.
const SessionIDKey = "sessionID"

const tokenIssuer = "celerey-api"

// getSessionKey returns the signing key from configuration
func getSessionKey() []byte {
	return []byte(config.Get().SessionSecret)
}

// SessionClaims represents the claims of a session token. The subject is the
// onboarding session ID.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// GenerateSessionToken issues a signed handle for an onboarding session.
func GenerateSessionToken(sessionID string) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(config.Get().SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   sessionID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getSessionKey())
}

// ParseSessionToken validates a session token and returns its session ID.
func ParseSessionToken(tokenString string) (string, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getSessionKey(), nil
	}, jwt.WithIssuer(tokenIssuer))

	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid session token: %w", err)
	}
	if claims.Subject == "" {
		return "", errors.New("session token has no subject")
	}
	return claims.Subject, nil
}

// SessionMiddleware resolves the session token and sets the session ID in the
// context. The token is read from the Authorization header, or from the
// "token" query parameter for event streams opened by browsers.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.Query("token")

		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			// Check if the header is in the correct format
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				abortWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid authorization header format"))
				return
			}
			tokenString = parts[1]
		}

		if tokenString == "" {
			abortWithError(c, apperrors.ErrUnauthorized)
			return
		}

		sessionID, err := ParseSessionToken(tokenString)
		if err != nil {
			abortWithError(c, apperrors.ErrInvalidSession)
			return
		}

		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}

func abortWithError(c *gin.Context, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}
