package handlers

import (
	"errors"
	"net/http"

	"dharmachain/models"
	ai "dharmachain/services/intelligence"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AppealHandler struct {
	Service ai.AppealService // nil when no model is configured
}

func NewAppealHandler(svc ai.AppealService) *AppealHandler {
	return &AppealHandler{Service: svc}
}

// GenerateAppealHandler suggests wording for a donation appeal.
func (h *AppealHandler) GenerateAppealHandler(c *gin.Context) {
	if h.Service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Appeal suggestions are not configured"})
		return
	}
	var req models.AppealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.GenerateAppeal(c.Request.Context(), req)
	if errors.Is(err, ai.ErrInvalidAppealRequest) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		getLogger(c).Error("Appeal generation failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate appeal"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
