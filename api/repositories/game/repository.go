package repositories

import (
	"context"
	"errors"
	"gubu/pkg/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrGameNameTaken is returned when creating a game whose name already
// exists.
var ErrGameNameTaken = errors.New("game name already taken")

// GameRepository is the public interface for accessing the game store.
type GameRepository interface {
	AddGenres(ctx context.Context, id uint, genres []string) error
	Create(ctx context.Context, game *models.Game) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	GetById(ctx context.Context, id uint) (*models.Game, error)
	GetByIgdbId(ctx context.Context, igdbID int) (*models.Game, error)
	ListIds(ctx context.Context) ([]uint, error)
	ListIdsByGenres(ctx context.Context, genres []string) ([]uint, error)
}

// gameRepository repository structure.
type gameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a game repository.
func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

// AddGenres unions the given genres into the game's genre set.
func (gr *gameRepository) AddGenres(ctx context.Context, id uint, genres []string) error {
	rows := make([]models.GameGenre, 0, len(genres))
	for _, genre := range genres {
		rows = append(rows, models.GameGenre{GameID: id, Genre: genre})
	}
	if len(rows) == 0 {
		return nil
	}
	return gr.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

// Create inserts a new game, enforcing the unique name inside one
// transaction.
func (gr *gameRepository) Create(ctx context.Context, game *models.Game) error {
	return gr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Game{}).
			Where("name = ?", game.Name).
			Limit(1).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrGameNameTaken
		}
		return tx.Create(game).Error
	})
}

// Delete removes the game. Deleting an absent game is not an error.
func (gr *gameRepository) Delete(ctx context.Context, id uint) error {
	return gr.db.WithContext(ctx).Delete(&models.Game{}, id).Error
}

// Exists reports whether a game with the given id exists.
func (gr *gameRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := gr.db.WithContext(ctx).Model(&models.Game{}).
		Where("id = ?", id).
		Limit(1).
		Count(&count).Error
	return count > 0, err
}

// GetById returns the game or nil when absent.
func (gr *gameRepository) GetById(ctx context.Context, id uint) (*models.Game, error) {
	var game models.Game
	err := gr.db.WithContext(ctx).First(&game, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// GetByIgdbId returns the first game with the given catalog id, or nil.
func (gr *gameRepository) GetByIgdbId(ctx context.Context, igdbID int) (*models.Game, error) {
	var game models.Game
	err := gr.db.WithContext(ctx).Where("igdb_id = ?", igdbID).First(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// ListIds returns all game ids.
func (gr *gameRepository) ListIds(ctx context.Context) ([]uint, error) {
	var ids []uint
	err := gr.db.WithContext(ctx).Model(&models.Game{}).
		Order("id asc").
		Pluck("id", &ids).Error
	return ids, err
}

// ListIdsByGenres returns the ids of games tagged with any of the given
// genres.
func (gr *gameRepository) ListIdsByGenres(ctx context.Context, genres []string) ([]uint, error) {
	var ids []uint
	err := gr.db.WithContext(ctx).Model(&models.GameGenre{}).
		Where("genre IN ?", genres).
		Distinct().
		Order("game_id asc").
		Pluck("game_id", &ids).Error
	return ids, err
}
