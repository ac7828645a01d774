package testutil

import (
	"context"
	"testing"
	"time"

	"gubu/api/filters"
	"gubu/pkg/database/models"
	"gubu/pkg/igdb"

	"github.com/stretchr/testify/mock"
)

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(*testing.T) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// ============================================================================
// Repository mock implementations.
// ============================================================================

// User mock implementations.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(bool), args.Error(1)
}

func (m *MockUserRepository) GetById(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ListIds(ctx context.Context, displayName string) ([]uint, error) {
	args := m.Called(ctx, displayName)
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id uint, values map[string]any) (bool, error) {
	args := m.Called(ctx, id, values)
	return args.Get(0).(bool), args.Error(1)
}

// Game mock implementations.
type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) AddGenres(ctx context.Context, id uint, genres []string) error {
	args := m.Called(ctx, id, genres)
	return args.Error(0)
}

func (m *MockGameRepository) Create(ctx context.Context, game *models.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

func (m *MockGameRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGameRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(bool), args.Error(1)
}

func (m *MockGameRepository) GetById(ctx context.Context, id uint) (*models.Game, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*models.Game), args.Error(1)
}

func (m *MockGameRepository) GetByIgdbId(ctx context.Context, igdbID int) (*models.Game, error) {
	args := m.Called(ctx, igdbID)
	return args.Get(0).(*models.Game), args.Error(1)
}

func (m *MockGameRepository) ListIds(ctx context.Context) ([]uint, error) {
	args := m.Called(ctx)
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockGameRepository) ListIdsByGenres(ctx context.Context, genres []string) ([]uint, error) {
	args := m.Called(ctx, genres)
	return args.Get(0).([]uint), args.Error(1)
}

// Player mock implementations.
type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) AddPlayedGames(ctx context.Context, userID uint, gameIds []uint) error {
	args := m.Called(ctx, userID, gameIds)
	return args.Error(0)
}

func (m *MockPlayerRepository) ListGameIdsByUser(ctx context.Context, userID uint) ([]uint, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockPlayerRepository) ListIds(ctx context.Context) ([]uint, error) {
	args := m.Called(ctx)
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockPlayerRepository) ListUserIdsByGames(ctx context.Context, gameIds []uint) ([]uint, error) {
	args := m.Called(ctx, gameIds)
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockPlayerRepository) RemovePlayedGames(ctx context.Context, userID uint, gameIds []uint) error {
	args := m.Called(ctx, userID, gameIds)
	return args.Error(0)
}

func (m *MockPlayerRepository) ReplacePlayedGames(ctx context.Context, userID uint, gameIds []uint) error {
	args := m.Called(ctx, userID, gameIds)
	return args.Error(0)
}

// Friendship mock implementations.
type MockFriendshipRepository struct {
	mock.Mock
}

func (m *MockFriendshipRepository) Accept(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(bool), args.Error(1)
}

func (m *MockFriendshipRepository) Create(ctx context.Context, friendship *models.Friendship) error {
	args := m.Called(ctx, friendship)
	return args.Error(0)
}

func (m *MockFriendshipRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFriendshipRepository) GetById(ctx context.Context, id uint) (*models.Friendship, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*models.Friendship), args.Error(1)
}

func (m *MockFriendshipRepository) ListAcceptedFriendIds(ctx context.Context, userID uint) ([]uint, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockFriendshipRepository) Search(ctx context.Context, filter *filters.FriendshipFilter) ([]uint, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]uint), args.Error(1)
}

// Message thread mock implementations.
type MockMessageThreadRepository struct {
	mock.Mock
}

func (m *MockMessageThreadRepository) AddMessage(ctx context.Context, message *models.MessageThreadMessage) (bool, error) {
	args := m.Called(ctx, message)
	return args.Get(0).(bool), args.Error(1)
}

func (m *MockMessageThreadRepository) Create(ctx context.Context, memberUserIds []uint) (uint, error) {
	args := m.Called(ctx, memberUserIds)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockMessageThreadRepository) GetById(ctx context.Context, id uint) (*models.MessageThread, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*models.MessageThread), args.Error(1)
}

func (m *MockMessageThreadRepository) ListByMembers(ctx context.Context, memberUserIds []uint, strict bool) ([]uint, error) {
	args := m.Called(ctx, memberUserIds, strict)
	return args.Get(0).([]uint), args.Error(1)
}

// ============================================================================
// Catalog and cache mock implementations.
// ============================================================================

// Catalog mock implementations.
type MockCatalogClient struct {
	mock.Mock
}

func (m *MockCatalogClient) FetchGames(ctx context.Context, query string) ([]igdb.Game, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]igdb.Game), args.Error(1)
}

func (m *MockCatalogClient) GameInfo(ctx context.Context, igdbID int) ([]igdb.GameDetail, error) {
	args := m.Called(ctx, igdbID)
	return args.Get(0).([]igdb.GameDetail), args.Error(1)
}

func (m *MockCatalogClient) Search(ctx context.Context, term string, extraFilters string) ([]igdb.GameDetail, error) {
	args := m.Called(ctx, term, extraFilters)
	return args.Get(0).([]igdb.GameDetail), args.Error(1)
}

// Memory cache mock implementations.
type MockMemCache struct {
	mock.Mock
}

func (m *MockMemCache) Get(key string) any {
	args := m.Called(key)
	return args.Get(0)
}

func (m *MockMemCache) Set(key string, value any, ttl time.Duration) {
	m.Called(key, value, ttl)
}

// Redis mock implementations.
type MockGameRedisClient struct {
	mock.Mock
}

func (m *MockGameRedisClient) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(string), args.Error(1)
}

func (m *MockGameRedisClient) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}
