package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Patricia-Kubende/MaizeMate-Backend/models"
	"github.com/Patricia-Kubende/MaizeMate-Backend/services"
)

type PredictionHandler struct {
	predictionService services.PredictionService
}

func NewPredictionHandler(predictionService services.PredictionService) *PredictionHandler {
	return &PredictionHandler{predictionService: predictionService}
}

// Predict runs the yield pipeline. Internal failures (bad record, encoding,
// inference, persistence) degrade to a 200 payload with an "error" field
// rather than a transport-level fault; only auth failures use an HTTP error
// status, upstream in the middleware.
func (h *PredictionHandler) Predict(c *gin.Context) {
	var rec models.CropRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}

	result, err := h.predictionService.Predict(c.Request.Context(), rec)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
