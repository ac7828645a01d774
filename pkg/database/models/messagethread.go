package models

import "time"

// MessageThread is a conversation between a fixed set of members.
type MessageThread struct {
	ID uint `gorm:"primaryKey"`

	Members  []MessageThreadMember  `gorm:"constraint:OnDelete:CASCADE"`
	Messages []MessageThreadMessage `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
}

// MessageThreadMember is one participant of a thread.
type MessageThreadMember struct {
	ID              uint `gorm:"primaryKey"`
	MessageThreadID uint `gorm:"index;uniqueIndex:idx_thread_member"`
	UserID          uint `gorm:"index;uniqueIndex:idx_thread_member"`
}

// MessageThreadMessage is one message inside a thread.
type MessageThreadMessage struct {
	ID              uint   `gorm:"primaryKey"`
	MessageThreadID uint   `gorm:"index"`
	AuthorUserID    uint   `gorm:"index"`
	AuthorSessionID string `gorm:"type:varchar(100)"`
	Content         string `gorm:"type:text"`

	CreateTimestamp time.Time `gorm:"autoCreateTime;index"`
}
