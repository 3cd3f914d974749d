package helper

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapi/internal/core/model/response"
)

// Error bodies are a single fixed message per operation, nothing structured
// and no internal detail.

func SendMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, response.MessageResponse{Message: message})
}

func SendBadRequest(c *gin.Context, message string) {
	SendMessage(c, http.StatusBadRequest, message)
}

func SendUnauthorized(c *gin.Context, message string) {
	SendMessage(c, http.StatusUnauthorized, message)
}

func SendInternalError(c *gin.Context, message string) {
	SendMessage(c, http.StatusInternalServerError, message)
}
