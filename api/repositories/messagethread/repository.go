package repositories

import (
	"context"
	"errors"
	"gubu/pkg/database/models"
	"gubu/pkg/messages"

	"gorm.io/gorm"
)

// ErrThreadExists is returned when creating a thread whose exact member set
// already has one.
var ErrThreadExists = errors.New(messages.ThreadExists)

// MessageThreadRepository is the public interface for accessing the message
// thread store.
type MessageThreadRepository interface {
	AddMessage(ctx context.Context, message *models.MessageThreadMessage) (bool, error)
	Create(ctx context.Context, memberUserIds []uint) (uint, error)
	GetById(ctx context.Context, id uint) (*models.MessageThread, error)
	ListByMembers(ctx context.Context, memberUserIds []uint, strict bool) ([]uint, error)
}

// messageThreadRepository repository structure.
type messageThreadRepository struct {
	db *gorm.DB
}

// NewMessageThreadRepository creates a message thread repository.
func NewMessageThreadRepository(db *gorm.DB) MessageThreadRepository {
	return &messageThreadRepository{db: db}
}

// AddMessage appends a message and reports whether the thread exists.
func (mr *messageThreadRepository) AddMessage(ctx context.Context, message *models.MessageThreadMessage) (bool, error) {
	found := false
	err := mr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.MessageThread{}).
			Where("id = ?", message.MessageThreadID).
			Limit(1).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return nil
		}
		found = true
		return tx.Create(message).Error
	})
	return found, err
}

// Create inserts a thread with the given members, rejecting a duplicate
// exact member set inside one transaction.
func (mr *messageThreadRepository) Create(ctx context.Context, memberUserIds []uint) (uint, error) {
	var threadID uint
	err := mr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := listByMembers(tx, memberUserIds, true)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return ErrThreadExists
		}

		thread := models.MessageThread{}
		for _, userID := range memberUserIds {
			thread.Members = append(thread.Members, models.MessageThreadMember{UserID: userID})
		}
		if err := tx.Create(&thread).Error; err != nil {
			return err
		}
		threadID = thread.ID
		return nil
	})
	return threadID, err
}

// GetById returns the thread with its members and messages ordered by
// creation time, or nil when absent.
func (mr *messageThreadRepository) GetById(ctx context.Context, id uint) (*models.MessageThread, error) {
	var thread models.MessageThread
	err := mr.db.WithContext(ctx).
		Preload("Members").
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("create_timestamp asc")
		}).
		First(&thread, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &thread, nil
}

// ListByMembers returns the ids of threads containing every given member.
// With strict set, only threads whose member set matches exactly pass.
func (mr *messageThreadRepository) ListByMembers(ctx context.Context, memberUserIds []uint, strict bool) ([]uint, error) {
	return listByMembers(mr.db.WithContext(ctx), memberUserIds, strict)
}

// listByMembers is shared between the listing and the duplicate check on
// creation, so the latter can run inside the creation transaction.
func listByMembers(db *gorm.DB, memberUserIds []uint, strict bool) ([]uint, error) {
	if len(memberUserIds) == 0 {
		return nil, nil
	}

	query := db.Model(&models.MessageThreadMember{}).
		Where("user_id IN ?", memberUserIds).
		Group("message_thread_id").
		Having("COUNT(DISTINCT user_id) = ?", len(memberUserIds))

	if strict {
		memberCounts := db.Session(&gorm.Session{NewDB: true}).
			Model(&models.MessageThreadMember{}).
			Select("message_thread_id").
			Group("message_thread_id").
			Having("COUNT(*) = ?", len(memberUserIds))
		query = query.Where("message_thread_id IN (?)", memberCounts)
	}

	var ids []uint
	err := query.Order("message_thread_id asc").
		Pluck("message_thread_id", &ids).Error
	return ids, err
}
