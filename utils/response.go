package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends a structured JSON response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError sends a structured error response
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	})
}

// JSONValidationError sends a structured error response with per-field messages
func JSONValidationError(c *gin.Context, status int, err error, message string, fields map[string]string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
		"errors":  fields,
	})
}

// AbortWithError sends a structured error response and stops the handler chain
func AbortWithError(c *gin.Context, status int, err error, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	})
}
