package models

import "time"

// Friendship is a friend request from a sender to a receiver. The pair is
// unique regardless of direction, enforced at the repository level.
type Friendship struct {
	ID         uint `gorm:"primaryKey"`
	SenderID   uint `gorm:"index"`
	ReceiverID uint `gorm:"index"`
	Accepted   bool `gorm:"default:false"`

	CreatedAt time.Time
}
