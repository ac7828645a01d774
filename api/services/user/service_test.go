package userservice

import (
	"context"
	"testing"

	"gubu/api/filters"
	"gubu/api/services/testutil"
	"gubu/pkg/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Simple test for asserting that everything is fine with the user service creation.
func TestNewUserService(t *testing.T) {
	deps := &UserServiceDeps{DB: new(gorm.DB)}

	service := NewUserService(deps)
	assert.NotNil(t, service)
	assert.Equal(t, new(gorm.DB), service.db)
	assert.NotNil(t, service.FriendshipRepository)
	assert.NotNil(t, service.PlayerRepository)
	assert.NotNil(t, service.UserRepository)
}

// Hashing must produce a fresh salt every time and verify against itself.
func TestPasswordHashRoundtrip(t *testing.T) {
	salt1, hash1, err := hashPassword("hunter2")
	require.NoError(t, err)
	salt2, hash2, err := hashPassword("hunter2")
	require.NoError(t, err)

	// 16 byte salt and 64 byte key, hex encoded.
	assert.Len(t, salt1, 32)
	assert.Len(t, hash1, 128)
	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, hash1, hash2)

	assert.True(t, verifyPassword("hunter2", salt1, hash1))
	assert.True(t, verifyPassword("hunter2", salt2, hash2))
	assert.False(t, verifyPassword("hunter3", salt1, hash1))
	assert.False(t, verifyPassword("hunter2", salt2, hash1))
	assert.False(t, verifyPassword("hunter2", "not hex", hash1))
}

// Creation must store a hashed credential, never the raw password.
func TestCreateUserHashesPassword(t *testing.T) {
	service, mockUserRepo, _, _ := setupTestService()
	ctx := context.Background()

	mockUserRepo.On("Create", ctx, mock.MatchedBy(func(user *models.User) bool {
		return user.Username == "gordon" &&
			user.DisplayName == "Gordon" &&
			len(user.PasswordSalt) == 32 &&
			len(user.PasswordHash) == 128 &&
			user.PasswordHash != "hunter2"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.User).ID = 42
	}).Return(nil)

	id, err := service.Create(ctx, "gordon", "hunter2", "Gordon")

	assert.NoError(t, err)
	assert.Equal(t, uint(42), id)
	testutil.VerifyAllMocks(t, mockUserRepo)
}

// The user view aggregates the play history and accepted friends.
func TestGetUser(t *testing.T) {
	service, mockUserRepo, mockPlayerRepo, mockFriendshipRepo := setupTestService()
	ctx := context.Background()

	mockUserRepo.On("GetById", ctx, uint(1)).
		Return(&models.User{ID: 1, DisplayName: "Gordon"}, nil)
	mockPlayerRepo.On("ListGameIdsByUser", ctx, uint(1)).Return([]uint{3, 5}, nil)
	mockFriendshipRepo.On("ListAcceptedFriendIds", ctx, uint(1)).Return([]uint{2}, nil)

	user, err := service.Get(ctx, 1)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "Gordon", user.DisplayName)
	assert.Equal(t, []uint{3, 5}, user.PlayedGameIds)
	assert.Equal(t, []uint{2}, user.FriendsUserIds)
	testutil.VerifyAllMocks(t, mockUserRepo, mockPlayerRepo, mockFriendshipRepo)
}

// A missing user resolves to nil without error.
func TestGetUserNotFound(t *testing.T) {
	service, mockUserRepo, _, _ := setupTestService()
	ctx := context.Background()

	mockUserRepo.On("GetById", ctx, uint(99)).Return((*models.User)(nil), nil)

	user, err := service.Get(ctx, 99)

	assert.NoError(t, err)
	assert.Nil(t, user)
	testutil.VerifyAllMocks(t, mockUserRepo)
}

// The play list operations apply in replace, add, remove order.
func TestUpdateUserPlayLists(t *testing.T) {
	service, mockUserRepo, mockPlayerRepo, _ := setupTestService()
	ctx := context.Background()

	replace := []uint{1, 2}
	add := []uint{3}
	remove := []uint{1}

	mockUserRepo.On("Exists", ctx, uint(1)).Return(true, nil)
	mockPlayerRepo.On("ReplacePlayedGames", ctx, uint(1), replace).Return(nil)
	mockPlayerRepo.On("AddPlayedGames", ctx, uint(1), add).Return(nil)
	mockPlayerRepo.On("RemovePlayedGames", ctx, uint(1), remove).Return(nil)

	found, err := service.Update(ctx, 1, &filters.UserUpdate{
		PlayedGameIds:       &replace,
		AddPlayedGameIds:    &add,
		RemovePlayedGameIds: &remove,
	})

	assert.NoError(t, err)
	assert.True(t, found)
	testutil.VerifyAllMocks(t, mockUserRepo, mockPlayerRepo)
}

// A profile patch for a missing user reports not found.
func TestUpdateUserNotFound(t *testing.T) {
	service, mockUserRepo, _, _ := setupTestService()
	ctx := context.Background()

	displayName := "Ghost"
	mockUserRepo.On("Update", ctx, uint(99), map[string]any{"display_name": "Ghost"}).
		Return(false, nil)

	found, err := service.Update(ctx, 99, &filters.UserUpdate{DisplayName: &displayName})

	assert.NoError(t, err)
	assert.False(t, found)
	testutil.VerifyAllMocks(t, mockUserRepo)
}

// Test the authentication outcomes.
func TestAuthenticate(t *testing.T) {
	salt, hash, err := hashPassword("hunter2")
	require.NoError(t, err)

	good := "hunter2"
	bad := "wrong"

	tests := []struct {
		name          string
		user          *models.User
		password      *string
		expectedID    uint
		expectedError error
	}{
		{
			name:       "valid credentials",
			user:       &models.User{ID: 1, Username: "gordon", PasswordSalt: salt, PasswordHash: hash},
			password:   &good,
			expectedID: 1,
		},
		{
			name:          "wrong password",
			user:          &models.User{ID: 1, Username: "gordon", PasswordSalt: salt, PasswordHash: hash},
			password:      &bad,
			expectedError: ErrInvalidCredentials,
		},
		{
			name:          "missing password",
			user:          &models.User{ID: 1, Username: "gordon", PasswordSalt: salt, PasswordHash: hash},
			password:      nil,
			expectedError: ErrInvalidCredentials,
		},
		{
			name:          "unknown username",
			user:          nil,
			password:      &good,
			expectedError: ErrInvalidCredentials,
		},
		{
			name:       "account without stored hash skips the check",
			user:       &models.User{ID: 2, Username: "legacy"},
			password:   nil,
			expectedID: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockUserRepo, _, _ := setupTestService()
			ctx := context.Background()

			mockUserRepo.On("GetByUsername", ctx, mock.Anything).Return(tt.user, nil)

			id, err := service.Authenticate(ctx, "gordon", tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Zero(t, id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, id)
			}
			testutil.VerifyAllMocks(t, mockUserRepo)
		})
	}
}
