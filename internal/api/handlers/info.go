package handlers

import (
	"k8s-azure-app/internal/models"
	"k8s-azure-app/internal/sysinfo"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InfoHandler struct {
	info   *sysinfo.Provider
	logger *zap.Logger
}

func NewInfoHandler(info *sysinfo.Provider, logger *zap.Logger) *InfoHandler {
	return &InfoHandler{info: info, logger: logger}
}

// Info godoc
// @Summary Runtime information
// @Description Returns the host and runtime serving the request
// @Tags info
// @Produce json
// @Success 200 {object} models.InfoResponse
// @Failure 500 {object} models.ErrorResponse "Host introspection failed"
// @Router /api/info [get]
func (h *InfoHandler) Info(c *gin.Context) {
	hostname, err := h.info.Hostname()
	if err != nil {
		h.logger.Error("hostname lookup failed", zap.Error(err))
		InternalError(c)
		return
	}

	c.JSON(http.StatusOK, models.InfoResponse{
		Service:        models.ServiceName,
		Hostname:       hostname,
		Platform:       h.info.Platform(),
		RuntimeVersion: h.info.RuntimeVersion(),
		Timestamp:      models.FormatTimestamp(h.info.Now()),
	})
}
