package handlers

import (
	"net/http"
	"strconv"

	"gubu/api/filters"
	playerservice "gubu/api/services/player"

	"github.com/gin-gonic/gin"
)

// PlayerHandler exposes the played-game listing and the matchmaking lookup.
type PlayerHandler struct {
	playerService *playerservice.PlayerService
}

// NewPlayerHandler creates a new player handler.
func NewPlayerHandler(playerService *playerservice.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

// GetPlayers lists the played-game entry ids. With the match parameter it
// instead returns the shuffled ids of users sharing a game with that user.
func (h *PlayerHandler) GetPlayers(c *gin.Context) {
	var params filters.PlayerListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if params.Match == "" {
		ids, err := h.playerService.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"players_ids": ids})
		return
	}

	userID, err := strconv.ParseUint(params.Match, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match id"})
		return
	}

	matches, hasHistory, err := h.playerService.Match(c.Request.Context(), uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !hasHistory {
		c.JSON(http.StatusNotFound, gin.H{"error": "user has no played games"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"shuffled_matches": matches})
}
