package http

import "github.com/gin-gonic/gin"

// APIError is the uniform error envelope: {"error":{"status":...,"message":...}}.
// Message is a string except for validation failures, which aggregate every
// violation into a list.
type APIError struct {
	Status  int         `json:"status"`
	Message interface{} `json:"message"`
}

func ErrorResponse(c *gin.Context, status int, message interface{}) {
	c.JSON(status, gin.H{"error": APIError{Status: status, Message: message}})
}
