package handlers

import (
	"k8s-azure-app/internal/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NotFound answers requests that match no route
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{Error: models.MsgNotFound})
}

// InternalError answers requests whose handler failed unexpectedly
func InternalError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Error: models.MsgInternal})
}
