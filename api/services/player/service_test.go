package playerservice

import (
	"context"
	"testing"

	"gubu/api/services/testutil"
	internaltestutil "gubu/internal/testutil"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// Helper to initialize the mocks.
func setupTestService() (*PlayerService, *testutil.MockPlayerRepository) {
	mockPlayerRepo := new(testutil.MockPlayerRepository)

	service := &PlayerService{
		db:               new(gorm.DB),
		PlayerRepository: mockPlayerRepo,
	}

	return service, mockPlayerRepo
}

// Simple test for asserting that everything is fine with the player service creation.
func TestNewPlayerService(t *testing.T) {
	deps := &PlayerServiceDeps{DB: new(gorm.DB)}

	service := NewPlayerService(deps)
	assert.NotNil(t, service)
	assert.Equal(t, new(gorm.DB), service.db)
	assert.NotNil(t, service.PlayerRepository)
}

// Matching excludes the requesting user and reports missing history.
func TestMatch(t *testing.T) {
	tests := []struct {
		name               string
		gameIds            []uint
		candidates         []uint
		expectedMatches    []uint
		expectedHasHistory bool
	}{
		{
			name:               "shared players excluding self",
			gameIds:            []uint{3, 5},
			candidates:         []uint{1, 2, 4},
			expectedMatches:    []uint{2, 4},
			expectedHasHistory: true,
		},
		{
			name:               "no play history",
			gameIds:            []uint{},
			expectedHasHistory: false,
		},
		{
			name:               "only the user plays those games",
			gameIds:            []uint{3},
			candidates:         []uint{1},
			expectedMatches:    []uint{},
			expectedHasHistory: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockPlayerRepo := setupTestService()
			ctx := context.Background()

			mockPlayerRepo.On("ListGameIdsByUser", ctx, uint(1)).Return(tt.gameIds, nil)
			if len(tt.gameIds) > 0 {
				mockPlayerRepo.On("ListUserIdsByGames", ctx, tt.gameIds).Return(tt.candidates, nil)
			}

			matches, hasHistory, err := service.Match(ctx, 1)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedHasHistory, hasHistory)
			// The result is shuffled, compare as sets.
			assert.ElementsMatch(t, tt.expectedMatches, matches)
			assert.NotContains(t, matches, uint(1))
			testutil.VerifyAllMocks(t, mockPlayerRepo)
		})
	}
}

// A failing history lookup aborts the match.
func TestMatchHistoryError(t *testing.T) {
	service, mockPlayerRepo := setupTestService()
	ctx := context.Background()

	expected := internaltestutil.GetMockRepoError[[]uint]()
	mockPlayerRepo.On("ListGameIdsByUser", ctx, uint(1)).Return(expected.Data, expected.Err)

	matches, hasHistory, err := service.Match(ctx, 1)

	assert.Nil(t, matches)
	assert.False(t, hasHistory)
	assert.EqualError(t, err, internaltestutil.DatabaseError)
	testutil.VerifyAllMocks(t, mockPlayerRepo)
}
