package response

import "github.com/gin-gonic/gin"

// Success writes the flat success envelope the funnel frontend expects:
// top-level success flag plus caller-supplied fields.
func Success(c *gin.Context, statusCode int, fields gin.H) {
	payload := gin.H{"success": true}
	for k, v := range fields {
		payload[k] = v
	}
	c.JSON(statusCode, payload)
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
		"error":   details,
	})
}
