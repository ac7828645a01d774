package handlers

import (
	"errors"
	"net/http"

	"gubu/api/filters"
	messagethreadrepo "gubu/api/repositories/messagethread"
	messagethreadservice "gubu/api/services/messagethread"

	"github.com/gin-gonic/gin"
)

// MessageThreadHandler exposes the message thread endpoints.
type MessageThreadHandler struct {
	messageThreadService *messagethreadservice.MessageThreadService
}

// NewMessageThreadHandler creates a new message thread handler.
func NewMessageThreadHandler(messageThreadService *messagethreadservice.MessageThreadService) *MessageThreadHandler {
	return &MessageThreadHandler{messageThreadService: messageThreadService}
}

type threadMemberBody struct {
	UserID uint `json:"user_id" binding:"required"`
}

type createThreadBody struct {
	Members []threadMemberBody `json:"members" binding:"required,min=1,dive"`
}

type postMessageBody struct {
	AuthorUserID    uint   `json:"author_user_id" binding:"required"`
	AuthorSessionID string `json:"author_session_id" binding:"required"`
	Content         string `json:"content" binding:"required"`
}

// GetMessageThreads lists thread ids containing the given members. With the
// strict flag the member set must match exactly.
func (h *MessageThreadHandler) GetMessageThreads(c *gin.Context) {
	var params filters.MessageThreadListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	memberIds, ok := parseIds(params.MemberUserID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	ids, err := h.messageThreadService.List(c.Request.Context(), memberIds, params.Strict == "true")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message_thread_ids": ids})
}

// PostMessageThreads creates a thread with the given member set.
func (h *MessageThreadHandler) PostMessageThreads(c *gin.Context) {
	var body createThreadBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	memberIds := make([]uint, 0, len(body.Members))
	for _, member := range body.Members {
		memberIds = append(memberIds, member.UserID)
	}

	id, err := h.messageThreadService.Create(c.Request.Context(), memberIds)
	if err != nil {
		if errors.Is(err, messagethreadrepo.ErrThreadExists) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error_code": "already_exists",
				"message":    err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message_thread_id": id})
}

// GetMessageThread returns a thread with its members and ordered messages.
func (h *MessageThreadHandler) GetMessageThread(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	thread, err := h.messageThreadService.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if thread == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "message thread not found"})
		return
	}

	c.JSON(http.StatusOK, thread)
}

// PostMessage appends a message to a thread.
func (h *MessageThreadHandler) PostMessage(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	var body postMessageBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	messageID, found, err := h.messageThreadService.PostMessage(
		c.Request.Context(), id, body.AuthorUserID, body.AuthorSessionID, body.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "message thread not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message_id": messageID})
}
