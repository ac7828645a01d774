package messagethreadservice

import (
	"context"
	"gubu/api/dto"
	"gubu/pkg/database/models"
	"time"

	threadrepo "gubu/api/repositories/messagethread"

	"gorm.io/gorm"
)

// MessageThreadService owns conversations between users.
type MessageThreadService struct {
	db *gorm.DB

	ThreadRepository threadrepo.MessageThreadRepository
}

// MessageThreadServiceDeps is the dependency list for the message thread
// service.
type MessageThreadServiceDeps struct {
	DB *gorm.DB
}

// NewMessageThreadService creates a message thread service.
func NewMessageThreadService(deps *MessageThreadServiceDeps) *MessageThreadService {
	return &MessageThreadService{
		db:               deps.DB,
		ThreadRepository: threadrepo.NewMessageThreadRepository(deps.DB),
	}
}

// List returns the ids of threads containing every given member; with
// strict set, only threads with exactly that member set.
func (ms *MessageThreadService) List(ctx context.Context, memberUserIds []uint, strict bool) ([]uint, error) {
	return ms.ThreadRepository.ListByMembers(ctx, memberUserIds, strict)
}

// Create inserts a thread with the given members and returns its id.
func (ms *MessageThreadService) Create(ctx context.Context, memberUserIds []uint) (uint, error) {
	return ms.ThreadRepository.Create(ctx, memberUserIds)
}

// Get returns the full thread view, or nil when absent.
func (ms *MessageThreadService) Get(ctx context.Context, id uint) (*dto.MessageThread, error) {
	thread, err := ms.ThreadRepository.GetById(ctx, id)
	if err != nil || thread == nil {
		return nil, err
	}

	view := &dto.MessageThread{
		ID:       thread.ID,
		Members:  make([]dto.MessageThreadMember, 0, len(thread.Members)),
		Messages: make([]dto.MessageThreadMessage, 0, len(thread.Messages)),
	}
	for _, member := range thread.Members {
		view.Members = append(view.Members, dto.MessageThreadMember{UserID: member.UserID})
	}
	for _, message := range thread.Messages {
		view.Messages = append(view.Messages, dto.MessageThreadMessage{
			ID:              message.ID,
			AuthorUserID:    message.AuthorUserID,
			AuthorSessionID: message.AuthorSessionID,
			CreateTimestamp: message.CreateTimestamp.UTC().Format(time.RFC3339),
			Content:         message.Content,
		})
	}
	return view, nil
}

// PostMessage appends a message to a thread, reporting whether the thread
// exists. The creation timestamp is set server side.
func (ms *MessageThreadService) PostMessage(ctx context.Context, threadID, authorUserID uint, authorSessionID, content string) (uint, bool, error) {
	message := &models.MessageThreadMessage{
		MessageThreadID: threadID,
		AuthorUserID:    authorUserID,
		AuthorSessionID: authorSessionID,
		Content:         content,
	}

	found, err := ms.ThreadRepository.AddMessage(ctx, message)
	if err != nil || !found {
		return 0, found, err
	}
	return message.ID, true, nil
}
