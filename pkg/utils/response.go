package utils

import (
	"github.com/gin-gonic/gin"
)

type MessageResponse struct {
	Message string `json:"message"`
}

func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResponse{Message: message})
}

func SuccessResponse(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResponse{Message: message})
}

// DataResponse writes payload as the raw response body.
func DataResponse(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}
