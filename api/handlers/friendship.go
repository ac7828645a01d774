package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"gubu/api/filters"
	friendshiprepo "gubu/api/repositories/friendship"
	friendshipservice "gubu/api/services/friendship"

	"github.com/gin-gonic/gin"
)

// FriendshipHandler exposes the friendship endpoints.
type FriendshipHandler struct {
	friendshipService *friendshipservice.FriendshipService
}

// NewFriendshipHandler creates a new friendship handler.
func NewFriendshipHandler(friendshipService *friendshipservice.FriendshipService) *FriendshipHandler {
	return &FriendshipHandler{friendshipService: friendshipService}
}

type createFriendshipBody struct {
	Sender   uint `json:"sender" binding:"required"`
	Receiver uint `json:"receiver" binding:"required"`
}

// GetFriendships lists friendship ids matching the query parameters.
func (h *FriendshipHandler) GetFriendships(c *gin.Context) {
	var params filters.FriendshipListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter, err := buildFriendshipFilter(&params)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ids, err := h.friendshipService.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"friendship_ids": ids})
}

// GetFriendship returns a single friendship.
func (h *FriendshipHandler) GetFriendship(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	friendship, err := h.friendshipService.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if friendship == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "friendship not found"})
		return
	}

	c.JSON(http.StatusOK, friendship)
}

// PostFriendships creates a pending friendship between two users.
func (h *FriendshipHandler) PostFriendships(c *gin.Context) {
	var body createFriendshipBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.friendshipService.Create(c.Request.Context(), body.Sender, body.Receiver)
	if err != nil {
		if errors.Is(err, friendshipservice.ErrSelfFriendship) ||
			errors.Is(err, friendshiprepo.ErrFriendshipExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"friendship_id": id})
}

// PatchFriendship accepts a pending friendship.
func (h *FriendshipHandler) PatchFriendship(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	found, err := h.friendshipService.Accept(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "friendship not found"})
		return
	}

	c.Status(http.StatusOK)
}

// DeleteFriendship removes a friendship.
func (h *FriendshipHandler) DeleteFriendship(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	if err := h.friendshipService.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusOK)
}

// buildFriendshipFilter converts the raw query parameters into the typed
// repository filter. At most two member ids are accepted.
func buildFriendshipFilter(params *filters.FriendshipListParams) (*filters.FriendshipFilter, error) {
	filter := &filters.FriendshipFilter{Accepted: params.Accepted}

	if params.Sender != "" {
		sender, err := strconv.ParseUint(params.Sender, 10, 64)
		if err != nil {
			return nil, errors.New("invalid sender id")
		}
		id := uint(sender)
		filter.Sender = &id
	}

	if params.Receiver != "" {
		receiver, err := strconv.ParseUint(params.Receiver, 10, 64)
		if err != nil {
			return nil, errors.New("invalid receiver id")
		}
		id := uint(receiver)
		filter.Receiver = &id
	}

	if len(params.Member) > 2 {
		return nil, errors.New("at most two member ids are accepted")
	}
	members, ok := parseIds(params.Member)
	if !ok {
		return nil, errors.New("invalid member id")
	}
	filter.Members = members

	return filter, nil
}
