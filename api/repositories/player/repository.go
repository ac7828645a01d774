package repositories

import (
	"context"
	"gubu/pkg/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlayerRepository is the public interface for accessing the user/game play
// join store.
type PlayerRepository interface {
	AddPlayedGames(ctx context.Context, userID uint, gameIds []uint) error
	ListGameIdsByUser(ctx context.Context, userID uint) ([]uint, error)
	ListIds(ctx context.Context) ([]uint, error)
	ListUserIdsByGames(ctx context.Context, gameIds []uint) ([]uint, error)
	RemovePlayedGames(ctx context.Context, userID uint, gameIds []uint) error
	ReplacePlayedGames(ctx context.Context, userID uint, gameIds []uint) error
}

// playerRepository repository structure.
type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a player repository.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

// AddPlayedGames inserts the play rows that aren't already present.
func (pr *playerRepository) AddPlayedGames(ctx context.Context, userID uint, gameIds []uint) error {
	if len(gameIds) == 0 {
		return nil
	}
	rows := make([]models.Player, 0, len(gameIds))
	for _, gameID := range gameIds {
		rows = append(rows, models.Player{UserID: userID, GameID: gameID})
	}
	return pr.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

// ListGameIdsByUser returns the game ids a user plays.
func (pr *playerRepository) ListGameIdsByUser(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := pr.db.WithContext(ctx).Model(&models.Player{}).
		Where("user_id = ?", userID).
		Pluck("game_id", &ids).Error
	return ids, err
}

// ListIds returns every play row id.
func (pr *playerRepository) ListIds(ctx context.Context) ([]uint, error) {
	var ids []uint
	err := pr.db.WithContext(ctx).Model(&models.Player{}).
		Order("id asc").
		Pluck("id", &ids).Error
	return ids, err
}

// ListUserIdsByGames returns the distinct users playing any of the given
// games.
func (pr *playerRepository) ListUserIdsByGames(ctx context.Context, gameIds []uint) ([]uint, error) {
	if len(gameIds) == 0 {
		return nil, nil
	}
	var ids []uint
	err := pr.db.WithContext(ctx).Model(&models.Player{}).
		Where("game_id IN ?", gameIds).
		Distinct().
		Pluck("user_id", &ids).Error
	return ids, err
}

// RemovePlayedGames deletes the play rows for the given games.
func (pr *playerRepository) RemovePlayedGames(ctx context.Context, userID uint, gameIds []uint) error {
	if len(gameIds) == 0 {
		return nil
	}
	return pr.db.WithContext(ctx).
		Where("user_id = ? AND game_id IN ?", userID, gameIds).
		Delete(&models.Player{}).Error
}

// ReplacePlayedGames replaces the user's whole play set with the given games.
func (pr *playerRepository) ReplacePlayedGames(ctx context.Context, userID uint, gameIds []uint) error {
	return pr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).
			Delete(&models.Player{}).Error; err != nil {
			return err
		}
		if len(gameIds) == 0 {
			return nil
		}
		rows := make([]models.Player, 0, len(gameIds))
		for _, gameID := range gameIds {
			rows = append(rows, models.Player{UserID: userID, GameID: gameID})
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
	})
}
