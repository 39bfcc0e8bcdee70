package handlers

import (
	"k8s-azure-app/internal/models"
	"k8s-azure-app/internal/sysinfo"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	info *sysinfo.Provider
}

func NewHealthHandler(info *sysinfo.Provider) *HealthHandler {
	return &HealthHandler{info: info}
}

// Health godoc
// @Summary Liveness check
// @Description Reports that the process is up. Dependencies are not probed.
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    models.HealthStatusHealthy,
		Timestamp: models.FormatTimestamp(h.info.Now()),
		Uptime:    h.info.Uptime().Seconds(),
	})
}
