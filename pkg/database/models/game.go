package models

import "time"

// Game is a tracked game. IgdbID links it to the external catalog and is -1
// when the game has no catalog entry.
type Game struct {
	ID     uint   `gorm:"primaryKey"`
	Name   string `gorm:"type:varchar(200);uniqueIndex"`
	IgdbID int    `gorm:"default:-1"`

	Genres []GameGenre `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
}

// GameGenre is one genre tag attached to a game.
type GameGenre struct {
	ID     uint   `gorm:"primaryKey"`
	GameID uint   `gorm:"index;uniqueIndex:idx_game_genre"`
	Genre  string `gorm:"type:varchar(100);index;uniqueIndex:idx_game_genre"`
}
