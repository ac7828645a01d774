package playerservice

import (
	"context"
	"math/rand"

	playerrepo "gubu/api/repositories/player"

	"gorm.io/gorm"
)

// PlayerService owns the play join rows and player matchmaking.
type PlayerService struct {
	db *gorm.DB

	PlayerRepository playerrepo.PlayerRepository
}

// PlayerServiceDeps is the dependency list for the player service.
type PlayerServiceDeps struct {
	DB *gorm.DB
}

// NewPlayerService creates a player service.
func NewPlayerService(deps *PlayerServiceDeps) *PlayerService {
	return &PlayerService{
		db:               deps.DB,
		PlayerRepository: playerrepo.NewPlayerRepository(deps.DB),
	}
}

// List returns every play row id.
func (ps *PlayerService) List(ctx context.Context) ([]uint, error) {
	return ps.PlayerRepository.ListIds(ctx)
}

// Match returns the users sharing at least one played game with the given
// user, shuffled so repeated calls don't always surface the same people.
// The boolean reports whether the user has any play history to match on.
func (ps *PlayerService) Match(ctx context.Context, userID uint) ([]uint, bool, error) {
	gameIds, err := ps.PlayerRepository.ListGameIdsByUser(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if len(gameIds) == 0 {
		return nil, false, nil
	}

	userIds, err := ps.PlayerRepository.ListUserIdsByGames(ctx, gameIds)
	if err != nil {
		return nil, true, err
	}

	matches := make([]uint, 0, len(userIds))
	for _, id := range userIds {
		if id != userID {
			matches = append(matches, id)
		}
	}

	rand.Shuffle(len(matches), func(i, j int) {
		matches[i], matches[j] = matches[j], matches[i]
	})

	return matches, true, nil
}
