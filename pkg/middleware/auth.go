package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	responses "github.com/vhnguyenx/storefront-gateway/pkg/utils/responses"
)

const (
	CtxUserID   = "userID"
	CtxUserRole = "userRole"
	CtxRawToken = "rawToken"
)

type TokenClaims struct {
	jwt.RegisteredClaims
	UserID int32  `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// AuthMiddleware verifies the bearer token signature and expiry, then stores
// the caller identity and the raw token for outbound backend calls.
func AuthMiddleware(secret string, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Warn("Middleware: Authorization header is missing")
			responses.ErrorJSON(c, responses.CodeFailedUnauthorized, []string{responses.ErrUnauthorized.Error()}, c.Request.RemoteAddr)
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			log.Warnf("Middleware: Invalid Authorization header format")
			responses.ErrorJSON(c, responses.CodeFailedUnauthorized, []string{"invalid authorization header format"}, c.Request.RemoteAddr)
			c.Abort()
			return
		}

		claims := &TokenClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			log.Warnf("Middleware: Token rejected: %v", err)
			responses.ErrorJSON(c, responses.CodeFailedUnauthorized, []string{"invalid or expired token"}, c.Request.RemoteAddr)
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUserRole, claims.Role)
		c.Set(CtxRawToken, parts[1])
		c.Next()
	}
}

// RawToken returns the verified bearer token stored by AuthMiddleware.
func RawToken(c *gin.Context) string {
	if v, ok := c.Get(CtxRawToken); ok {
		if token, ok := v.(string); ok {
			return token
		}
	}
	return ""
}
