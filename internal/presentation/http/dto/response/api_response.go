package response

import (
	"github.com/gin-gonic/gin"
	"github.com/optisys/optisys-api/pkg/apperror"
)

// Responses are keyed by resource: `{"success": true, "patient": {...}}`,
// list responses additionally carry a `count`. Errors always come back as
// `{"success": false, "message": ..., "errors": [...]}`.

// Resource sends a success response carrying one resource under its key
func Resource(c *gin.Context, statusCode int, message, key string, value interface{}) {
	body := gin.H{"success": true, key: value}
	if message != "" {
		body["message"] = message
	}
	c.JSON(statusCode, body)
}

// Collection sends a success response carrying a list under its key plus the count
func Collection(c *gin.Context, statusCode int, key string, value interface{}, count int64) {
	c.JSON(statusCode, gin.H{
		"success": true,
		key:       value,
		"count":   count,
	})
}

// OK sends a plain success response with only a message
func OK(c *gin.Context, message string) {
	c.JSON(200, gin.H{"success": true, "message": message})
}

// Error sends an error response
func Error(c *gin.Context, err error) {
	appErr := apperror.GetAppError(err)
	body := gin.H{"success": false, "message": appErr.Message}
	if len(appErr.Errors) > 0 {
		body["errors"] = appErr.Errors
	}
	c.JSON(appErr.Code, body)
}

// ErrorWithCode sends an error response with a specific status code
func ErrorWithCode(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"success": false, "message": message})
}

// BadRequest sends a 400 Bad Request response
func BadRequest(c *gin.Context, message string) {
	ErrorWithCode(c, 400, message)
}

// Unauthorized sends a 401 Unauthorized response
func Unauthorized(c *gin.Context, message string) {
	ErrorWithCode(c, 401, message)
}

// NotFound sends a 404 Not Found response
func NotFound(c *gin.Context, message string) {
	ErrorWithCode(c, 404, message)
}
