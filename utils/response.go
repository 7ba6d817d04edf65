package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONError sends the API's standard error body: {"error": "<message>"}.
func JSONError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// JSONMessage sends a simple confirmation body: {"message": "<message>"}.
func JSONMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
