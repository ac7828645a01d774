package database

import (
	"fmt"
	"gubu/pkg/database/models"

	"gorm.io/gorm"
)

// RunMigrations applies the schema for every collection the service owns.
func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Game{},
		&models.GameGenre{},
		&models.Player{},
		&models.Friendship{},
		&models.MessageThread{},
		&models.MessageThreadMember{},
		&models.MessageThreadMessage{},
	)
	if err != nil {
		return fmt.Errorf("couldn't run the migrations: %v", err)
	}

	return nil
}
