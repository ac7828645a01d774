package recommendationservice

import (
	"context"
	"errors"
	"gubu/api/dto"
	"gubu/pkg/igdb"
	"gubu/pkg/messages"
	"sort"
	"sync"

	gamerepo "gubu/api/repositories/game"
	playerrepo "gubu/api/repositories/player"
	userrepo "gubu/api/repositories/user"

	"gorm.io/gorm"
)

const (
	// maxSearchAttempts is a hard bound against pathological histograms. In
	// practice the histogram drains to empty well before this, since every
	// relaxation removes one vote from every active genre.
	maxSearchAttempts = 1000

	searchResultLimit  = 100
	profileWorkerCount = 8

	minMatchRating         = 60
	minMatchRatingCount    = 10
	minFallbackRating      = 75
	minFallbackRatingCount = 100
)

var (
	// ErrUserNotFound fails the whole request before any catalog call.
	ErrUserNotFound = errors.New(messages.UserNotFound)

	// ErrNoRecommendation is terminal: the relaxation search and the
	// popularity fallback both came back empty.
	ErrNoRecommendation = errors.New(messages.NoRecommendation)
)

// CatalogClient is the minimal catalog surface the recommendation flow
// needs.
type CatalogClient interface {
	FetchGames(ctx context.Context, query string) ([]igdb.Game, error)
}

// RecommendationService recommends catalog games a user hasn't played,
// preferring genres and platforms from their play history and degrading to
// a popularity listing when personalization is exhausted.
type RecommendationService struct {
	db      *gorm.DB
	catalog CatalogClient

	GameRepository   gamerepo.GameRepository
	PlayerRepository playerrepo.PlayerRepository
	UserRepository   userrepo.UserRepository
}

// RecommendationServiceDeps is the dependency list for the recommendation
// service.
type RecommendationServiceDeps struct {
	DB      *gorm.DB
	Catalog CatalogClient
}

// NewRecommendationService creates a recommendation service.
func NewRecommendationService(deps *RecommendationServiceDeps) *RecommendationService {
	return &RecommendationService{
		db:               deps.DB,
		catalog:          deps.Catalog,
		GameRepository:   gamerepo.NewGameRepository(deps.DB),
		PlayerRepository: playerrepo.NewPlayerRepository(deps.DB),
		UserRepository:   userrepo.NewUserRepository(deps.DB),
	}
}

// preferenceProfile aggregates the catalog signals of the games a user
// played: a genre vote histogram and the set of platforms they play on.
// It lives for a single request.
type preferenceProfile struct {
	genreVotes map[int]int
	platforms  map[int]struct{}
}

func newPreferenceProfile() *preferenceProfile {
	return &preferenceProfile{
		genreVotes: make(map[int]int),
		platforms:  make(map[int]struct{}),
	}
}

// activeGenres returns the genres that still hold at least one vote.
func (p *preferenceProfile) activeGenres() []int {
	active := make([]int, 0, len(p.genreVotes))
	for genre, votes := range p.genreVotes {
		if votes > 0 {
			active = append(active, genre)
		}
	}
	return active
}

// relax removes one vote from every genre, flooring at zero, and returns
// the genres still active. Drained entries stay in the map.
func (p *preferenceProfile) relax() []int {
	for genre, votes := range p.genreVotes {
		if votes > 0 {
			p.genreVotes[genre] = votes - 1
		}
	}
	return p.activeGenres()
}

// platformIds returns the platform set as a sorted slice.
func (p *preferenceProfile) platformIds() []int {
	ids := make([]int, 0, len(p.platforms))
	for id := range p.platforms {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Recommend resolves the user's play history, builds their preference
// profile and runs the relaxation search against the catalog.
func (s *RecommendationService) Recommend(ctx context.Context, userID uint) ([]dto.GameSummary, error) {
	exists, err := s.UserRepository.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	played, err := s.playedCatalogIds(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := s.buildProfile(ctx, played)

	return s.search(ctx, profile, played)
}

// playedCatalogIds maps the user's play rows to catalog ids. Games without
// a catalog link are skipped; duplicates are kept on purpose since they
// weight the genre histogram.
func (s *RecommendationService) playedCatalogIds(ctx context.Context, userID uint) ([]int, error) {
	gameIds, err := s.PlayerRepository.ListGameIdsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	catalogIds := make([]int, 0, len(gameIds))
	for _, gameID := range gameIds {
		game, err := s.GameRepository.GetById(ctx, gameID)
		if err != nil {
			return nil, err
		}
		if game == nil || game.IgdbID <= 0 {
			continue
		}
		catalogIds = append(catalogIds, game.IgdbID)
	}
	return catalogIds, nil
}

// buildProfile looks up every played game on the catalog and accumulates
// its genres and platforms. The lookups are independent and fan out over a
// small worker pool; completion order doesn't matter.
func (s *RecommendationService) buildProfile(ctx context.Context, played []int) *preferenceProfile {
	profile := newPreferenceProfile()
	if len(played) == 0 {
		return profile
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	workerCount := profileWorkerCount
	if len(played) < workerCount {
		workerCount = len(played)
	}

	catalogIds := make(chan int, len(played))
	for i := 0; i < workerCount; i++ {
		go func() {
			for catalogID := range catalogIds {
				s.collectGameSignals(ctx, catalogID, profile, &mu)
				wg.Done()
			}
		}()
	}

	for _, catalogID := range played {
		wg.Add(1)
		catalogIds <- catalogID
	}

	close(catalogIds)
	wg.Wait()

	return profile
}

// collectGameSignals fetches one played game from the catalog and merges
// its genres and platforms into the profile. A failed or empty lookup
// contributes nothing: one bad catalog call must never abort the whole
// recommendation.
func (s *RecommendationService) collectGameSignals(ctx context.Context, catalogID int, profile *preferenceProfile, mu *sync.Mutex) {
	query := igdb.NewQuery("id", "genres", "platforms").
		Wheref("id = %d", catalogID)

	games, err := s.catalog.FetchGames(ctx, query.String())
	if err != nil || len(games) == 0 {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	// Every genre occurrence counts, without per-game deduplication.
	for _, genre := range games[0].Genres {
		profile.genreVotes[genre]++
	}
	for _, platform := range games[0].Platforms {
		profile.platforms[platform] = struct{}{}
	}
}

// search runs the constraint relaxation loop: query the catalog with the
// currently active genres and platforms, and on an empty round remove one
// vote from every genre before trying again. The first non-empty result
// wins. When no signal remains, or the profile never had one, fall back to
// a popularity listing.
func (s *RecommendationService) search(ctx context.Context, profile *preferenceProfile, played []int) ([]dto.GameSummary, error) {
	activeGenres := profile.activeGenres()
	platforms := profile.platformIds()

	// A platform-only profile gets exactly one attempt: the relaxation step
	// below can't keep it alive since platforms are never relaxed.
	searching := len(activeGenres) > 0 || len(platforms) > 0

	for i := 0; i < maxSearchAttempts && searching; i++ {
		games, err := s.catalog.FetchGames(ctx, matchQuery(activeGenres, platforms, played))
		if err == nil && len(games) > 0 {
			return toSummaries(games), nil
		}

		// A catalog error counts as an empty round; relax and move on.
		activeGenres = profile.relax()
		searching = len(activeGenres) > 0
	}

	return s.popularFallback(ctx)
}

// popularFallback is the terminal attempt: well rated games with a real
// review base, ignoring the profile entirely.
func (s *RecommendationService) popularFallback(ctx context.Context) ([]dto.GameSummary, error) {
	query := igdb.NewQuery("name").
		Wheref("rating > %d", minFallbackRating).
		Wheref("rating_count > %d", minFallbackRatingCount).
		Where("parent_game = null").
		Where("version_parent = null").
		Limit(searchResultLimit)

	games, err := s.catalog.FetchGames(ctx, query.String())
	if err != nil || len(games) == 0 {
		return nil, ErrNoRecommendation
	}
	return toSummaries(games), nil
}

// matchQuery renders one relaxation round: genre or platform intersection,
// decent rating with at least some reviews, no already-played games, no
// expansions or remakes.
func matchQuery(genres []int, platforms []int, excluded []int) string {
	query := igdb.NewQuery("name")

	if len(genres) > 0 {
		query.Wheref("genres = [%s]", igdb.IntList(genres))
	}
	query.Wheref("rating > %d", minMatchRating)
	query.Wheref("rating_count > %d", minMatchRatingCount)
	if len(excluded) > 0 {
		query.Wheref("id != (%s)", igdb.IntList(excluded))
	}
	if len(platforms) > 0 {
		query.Wheref("platforms = (%s)", igdb.IntList(platforms))
	}
	query.Where("parent_game = null").
		Where("version_parent = null").
		Limit(searchResultLimit)

	return query.String()
}

// toSummaries converts the catalog records in their returned order.
func toSummaries(games []igdb.Game) []dto.GameSummary {
	summaries := make([]dto.GameSummary, 0, len(games))
	for _, game := range games {
		summaries = append(summaries, dto.GameSummary{ID: game.ID, Name: game.Name})
	}
	return summaries
}
