package http

import "github.com/gin-gonic/gin"

// respondData writes the uniform success envelope. Failures go through
// ErrorMiddleware instead.
func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}
