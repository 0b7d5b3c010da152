package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/domain/session"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const GinContextKeySessionToken = "sessionToken"

// AuthMiddleware verifies the bearer token against the session store. The
// token is opaque; anything not found server-side is rejected regardless of
// shape.
func AuthMiddleware(sessions session.Repository, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authorization header is required"})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid token format"})
			return
		}

		ok, err := sessions.Exists(c.Request.Context(), token)
		if err != nil {
			log.Error("Session lookup failed", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid or expired session"})
			return
		}

		c.Set(GinContextKeySessionToken, token)
		c.Next()
	}
}

func GetSessionTokenFromGinContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(GinContextKeySessionToken)
	if !ok {
		return "", false
	}
	token, ok := v.(string)
	return token, ok
}

// ErrorMiddleware maps errors collected by handlers onto the uniform
// response envelope. Nothing below here leaks to the client.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.NewInternal("unhandled error", err)
		}

		status := apperror.ToHTTPStatus(appErr)
		if status >= http.StatusInternalServerError {
			log.Error("Request failed", appErr, zap.String("path", c.Request.URL.Path))
		} else {
			log.Warn("Request rejected", zap.String("path", c.Request.URL.Path), zap.String("reason", appErr.Message))
		}

		c.JSON(status, appErr.ToJSON())
	}
}
