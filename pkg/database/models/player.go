package models

import "time"

// Player is the user/game play join: one row per game a user plays.
type Player struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"index;uniqueIndex:idx_user_game"`
	GameID uint `gorm:"index;uniqueIndex:idx_user_game"`

	CreatedAt time.Time
}
