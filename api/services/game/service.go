package gameservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"gubu/api/dto"
	"gubu/pkg/database/models"
	"gubu/pkg/igdb"
	"strconv"
	"time"

	gamerepo "gubu/api/repositories/game"

	"gorm.io/gorm"
)

const (
	CatalogMemoryCacheDuration = 15 * time.Minute
	CatalogRedisCacheDuration  = time.Hour

	redisReadTimeout = 200 * time.Millisecond
)

// ErrGameNotFound is returned when neither the catalog id nor the internal
// id resolves to a known game.
var ErrGameNotFound = errors.New("no such game")

// GameRedisClient is the redis surface used by the catalog proxy cache.
type GameRedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// MemCache is the in-memory cache surface in front of redis.
type MemCache interface {
	Get(key string) any
	Set(key string, value any, ttl time.Duration)
}

// CatalogClient is the catalog surface used by the metadata and search
// proxies.
type CatalogClient interface {
	GameInfo(ctx context.Context, igdbID int) ([]igdb.GameDetail, error)
	Search(ctx context.Context, term string, extraFilters string) ([]igdb.GameDetail, error)
}

// GameService owns the stored game collection and proxies catalog metadata
// and search, cached in memory and redis.
type GameService struct {
	db       *gorm.DB
	catalog  CatalogClient
	memCache MemCache
	redis    GameRedisClient

	GameRepository gamerepo.GameRepository
}

// GameServiceDeps is the dependency list for the game service.
type GameServiceDeps struct {
	DB       *gorm.DB
	Catalog  CatalogClient
	MemCache MemCache
	Redis    GameRedisClient
}

// NewGameService creates a game service.
func NewGameService(deps *GameServiceDeps) *GameService {
	return &GameService{
		db:             deps.DB,
		catalog:        deps.Catalog,
		memCache:       deps.MemCache,
		redis:          deps.Redis,
		GameRepository: gamerepo.NewGameRepository(deps.DB),
	}
}

// List returns game ids, filtered to the given genres when present.
func (gs *GameService) List(ctx context.Context, genres []string) ([]uint, error) {
	if len(genres) > 0 {
		return gs.GameRepository.ListIdsByGenres(ctx, genres)
	}
	return gs.GameRepository.ListIds(ctx)
}

// Create registers a new game and returns its id. A missing catalog id is
// stored as -1.
func (gs *GameService) Create(ctx context.Context, name string, igdbID *int) (uint, error) {
	game := &models.Game{Name: name, IgdbID: -1}
	if igdbID != nil {
		game.IgdbID = *igdbID
	}
	if err := gs.GameRepository.Create(ctx, game); err != nil {
		return 0, err
	}
	return game.ID, nil
}

// Get returns the stored game view, or nil when absent.
func (gs *GameService) Get(ctx context.Context, id uint) (*dto.Game, error) {
	game, err := gs.GameRepository.GetById(ctx, id)
	if err != nil || game == nil {
		return nil, err
	}

	view := &dto.Game{ID: game.ID, Name: game.Name}
	if game.IgdbID > 0 {
		igdbID := game.IgdbID
		view.IgdbID = &igdbID
	}
	return view, nil
}

// UpdateGenres unions the given genres into the game's genre set. Returns
// false when the game doesn't exist.
func (gs *GameService) UpdateGenres(ctx context.Context, id uint, genres []string) (bool, error) {
	exists, err := gs.GameRepository.Exists(ctx, id)
	if err != nil || !exists {
		return exists, err
	}
	return true, gs.GameRepository.AddGenres(ctx, id, genres)
}

// Delete removes a game from the store.
func (gs *GameService) Delete(ctx context.Context, id uint) error {
	return gs.GameRepository.Delete(ctx, id)
}

// Info resolves a game's catalog metadata. The id is tried as a catalog id
// first and as an internal id second, matching how clients pass either one.
// Returns the stored game path alongside the catalog records.
func (gs *GameService) Info(ctx context.Context, id int) (string, []igdb.GameDetail, error) {
	igdbID := id
	gamePath := ""

	game, err := gs.GameRepository.GetByIgdbId(ctx, id)
	if err != nil {
		return "", nil, err
	}
	if game != nil {
		gamePath = gamePathFor(game.ID)
	} else if id >= 0 {
		stored, err := gs.GameRepository.GetById(ctx, uint(id))
		if err != nil {
			return "", nil, err
		}
		if stored == nil || stored.IgdbID <= 0 {
			return "", nil, ErrGameNotFound
		}
		igdbID = stored.IgdbID
		gamePath = gamePathFor(stored.ID)
	} else {
		return "", nil, ErrGameNotFound
	}

	details, err := gs.cachedDetails(ctx, infoKey(igdbID), func() ([]igdb.GameDetail, error) {
		return gs.catalog.GameInfo(ctx, igdbID)
	})
	if err != nil {
		return "", nil, err
	}
	return gamePath, details, nil
}

// Search proxies the catalog search, cached per term and filter set.
func (gs *GameService) Search(ctx context.Context, term string, extraFilters string) ([]igdb.GameDetail, error) {
	return gs.cachedDetails(ctx, searchKey(term, extraFilters), func() ([]igdb.GameDetail, error) {
		return gs.catalog.Search(ctx, term, extraFilters)
	})
}

// cachedDetails serves catalog records from the memory cache, then redis,
// then the catalog itself, populating the layers on the way back.
func (gs *GameService) cachedDetails(ctx context.Context, key string, fetch func() ([]igdb.GameDetail, error)) ([]igdb.GameDetail, error) {
	if mem := gs.getFromMemCache(key); mem != nil {
		return mem, nil
	}

	if cached := gs.getFromRedis(key); cached != nil {
		gs.memCache.Set(key, cached, CatalogMemoryCacheDuration)
		return cached, nil
	}

	details, err := fetch()
	if err != nil {
		return nil, err
	}

	gs.populateCaches(ctx, key, details)
	return details, nil
}

// getFromMemCache retrieves the records from memory.
func (gs *GameService) getFromMemCache(key string) []igdb.GameDetail {
	if cached := gs.memCache.Get(key); cached != nil {
		return cached.([]igdb.GameDetail)
	}
	return nil
}

// getFromRedis retrieves the records from redis. Any failure is a miss.
func (gs *GameService) getFromRedis(key string) []igdb.GameDetail {
	ctx, cancel := context.WithTimeout(context.Background(), redisReadTimeout)
	defer cancel()

	cached, err := gs.redis.Get(ctx, key)
	if err != nil || cached == "" {
		return nil
	}

	var details []igdb.GameDetail
	if err := json.Unmarshal([]byte(cached), &details); err != nil {
		return nil
	}
	return details
}

// populateCaches sets the memory and redis caches.
func (gs *GameService) populateCaches(ctx context.Context, key string, details []igdb.GameDetail) {
	gs.memCache.Set(key, details, CatalogMemoryCacheDuration)

	data, err := json.Marshal(details)
	if err != nil {
		return
	}
	gs.redis.Set(ctx, key, string(data), CatalogRedisCacheDuration)
}

// infoKey generates the cache key of one game's metadata.
func infoKey(igdbID int) string {
	return "gameinfo:" + strconv.Itoa(igdbID)
}

// searchKey generates the cache key of one search.
func searchKey(term string, extraFilters string) string {
	key := "gamesearch:" + term
	if extraFilters != "" {
		key += ":" + extraFilters
	}
	return key
}

// gamePathFor renders the stored game reference returned by the info
// endpoint.
func gamePathFor(id uint) string {
	return fmt.Sprintf("games/%d", id)
}
