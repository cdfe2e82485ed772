package handlers

import (
	"net/http"

	"concierge/models"
	"concierge/services/concierge"
	"concierge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ConciergeHandler struct {
	Service concierge.Service
}

func NewConciergeHandler(svc concierge.Service) *ConciergeHandler {
	return &ConciergeHandler{Service: svc}
}

// PlanItineraryHandler handles POST /ai/concierge. Validation failures and
// pipeline failures (model, parse) both surface as 400 with the underlying
// description in "detail"; nothing is hidden behind a generic 500.
func (h *ConciergeHandler) PlanItineraryHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ConciergeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid concierge request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request: " + err.Error()})
		return
	}
	req.ApplyDefaults()

	result, err := h.Service.PlanItinerary(c.Request.Context(), &req)
	if err != nil {
		logger.Error("Concierge pipeline failed",
			zap.String("location", req.Booking.Location),
			zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
