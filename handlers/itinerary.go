package handlers

import (
	"errors"
	"net/http"

	"voyago/models"
	"voyago/services/trip"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TripHandler exposes itinerary construction over HTTP.
type TripHandler struct {
	Service trip.Service
	Logger  *zap.Logger
}

func NewTripHandler(service trip.Service) *TripHandler {
	return &TripHandler{Service: service, Logger: utils.GetLogger()}
}

// GenerateItinerary handles POST /api/itinerary/generate.
func (h *TripHandler) GenerateItinerary(c *gin.Context) {
	var req models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.BuildItinerary(c.Request.Context(), req)
	if err != nil {
		var inputErr *trip.InputError
		if errors.As(err, &inputErr) {
			c.JSON(http.StatusBadRequest, models.ItineraryResponse{
				Success: false,
				Error:   inputErr.Message,
			})
			return
		}
		h.Logger.Error("itinerary build failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ItineraryResponse{
			Success: false,
			Error:   "failed to build itinerary",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
