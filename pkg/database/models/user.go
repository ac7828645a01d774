package models

import "time"

// User is a registered account.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(100);uniqueIndex"`
	PasswordSalt string `gorm:"type:char(32)"`  // Hex encoded 16 bytes.
	PasswordHash string `gorm:"type:char(128)"` // Hex encoded 64 bytes.
	DisplayName  string `gorm:"type:varchar(100);index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
