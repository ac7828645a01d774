package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"gubu/api/filters"
	gamerepo "gubu/api/repositories/game"
	gameservice "gubu/api/services/game"

	"github.com/gin-gonic/gin"
)

// GameHandler exposes the game CRUD endpoints and the catalog proxies.
type GameHandler struct {
	gameService *gameservice.GameService
}

// NewGameHandler creates a new game handler.
func NewGameHandler(gameService *gameservice.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

type createGameBody struct {
	Name   string `json:"name" binding:"required"`
	IgdbID *int   `json:"igdb_id"`
}

type updateGameBody struct {
	Genres []string `json:"genres" binding:"required"`
}

// GetGames lists game ids, optionally restricted to the given genres.
func (h *GameHandler) GetGames(c *gin.Context) {
	var params filters.GameListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ids, err := h.gameService.List(c.Request.Context(), params.Genre)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if len(params.Genre) > 0 {
		if len(ids) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "no games match the given genres"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"game_query_ids": ids})
		return
	}

	c.JSON(http.StatusOK, gin.H{"games_ids": ids})
}

// PostGames registers a new game.
func (h *GameHandler) PostGames(c *gin.Context) {
	var body createGameBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.gameService.Create(c.Request.Context(), body.Name, body.IgdbID)
	if err != nil {
		if errors.Is(err, gamerepo.ErrGameNameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"game_id": id})
}

// GetGame returns a single game.
func (h *GameHandler) GetGame(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	game, err := h.gameService.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if game == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}

	c.JSON(http.StatusOK, game)
}

// PatchGame replaces the genre list of a game.
func (h *GameHandler) PatchGame(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	var body updateGameBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	found, err := h.gameService.UpdateGenres(c.Request.Context(), id, body.Genres)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}

	c.Status(http.StatusOK)
}

// DeleteGame removes a game and its genres.
func (h *GameHandler) DeleteGame(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	if err := h.gameService.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusOK)
}

// GetGameInfo returns the catalog details for a game. The id can be either
// the catalog id or the internal one.
func (h *GameHandler) GetGameInfo(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	gamePath, details, err := h.gameService.Info(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gameservice.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, []any{gamePath, details})
}

// GetGameSearch proxies a free text search to the catalog.
func (h *GameHandler) GetGameSearch(c *gin.Context) {
	var params filters.GameSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	details, err := h.gameService.Search(c.Request.Context(), c.Param("name"), params.Filters)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, details)
}
