package userservice

import (
	"gubu/api/services/testutil"

	"gorm.io/gorm"
)

// Helper to initialize the mocks.
func setupTestService() (
	*UserService,
	*testutil.MockUserRepository,
	*testutil.MockPlayerRepository,
	*testutil.MockFriendshipRepository,
) {
	mockUserRepo := new(testutil.MockUserRepository)
	mockPlayerRepo := new(testutil.MockPlayerRepository)
	mockFriendshipRepo := new(testutil.MockFriendshipRepository)

	service := &UserService{
		db:                   new(gorm.DB),
		FriendshipRepository: mockFriendshipRepo,
		PlayerRepository:     mockPlayerRepo,
		UserRepository:       mockUserRepo,
	}

	return service, mockUserRepo, mockPlayerRepo, mockFriendshipRepo
}
