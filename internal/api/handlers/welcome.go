package handlers

import (
	"k8s-azure-app/internal/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

type WelcomeHandler struct {
	environment string
}

func NewWelcomeHandler(environment string) *WelcomeHandler {
	return &WelcomeHandler{environment: environment}
}

// Welcome godoc
// @Summary Welcome message
// @Description Returns the service greeting, version and deployment environment
// @Tags info
// @Produce json
// @Success 200 {object} models.WelcomeResponse
// @Router / [get]
func (h *WelcomeHandler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, models.WelcomeResponse{
		Message:     models.WelcomeMessage,
		Version:     models.AppVersion,
		Environment: h.environment,
	})
}
