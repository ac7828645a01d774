package handlers

import (
	"errors"
	"net/http"

	recommendationservice "gubu/api/services/recommendation"

	"github.com/gin-gonic/gin"
)

// RecommendationHandler exposes the game matching endpoint.
type RecommendationHandler struct {
	recommendationService *recommendationservice.RecommendationService
}

// NewRecommendationHandler creates a new recommendation handler.
func NewRecommendationHandler(recommendationService *recommendationservice.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// GetMatchGames recommends unplayed catalog games matching the taste profile
// of the given user.
func (h *RecommendationHandler) GetMatchGames(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	games, err := h.recommendationService.Recommend(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, recommendationservice.ErrUserNotFound) ||
			errors.Is(err, recommendationservice.ErrNoRecommendation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, games)
}
