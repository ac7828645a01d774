package recommendationservice

import (
	"gubu/api/services/testutil"

	"gorm.io/gorm"
)

// Helper to initialize the mocks.
func setupTestService() (
	*RecommendationService,
	*testutil.MockUserRepository,
	*testutil.MockPlayerRepository,
	*testutil.MockGameRepository,
	*testutil.MockCatalogClient,
) {
	mockUserRepo := new(testutil.MockUserRepository)
	mockPlayerRepo := new(testutil.MockPlayerRepository)
	mockGameRepo := new(testutil.MockGameRepository)
	mockCatalog := new(testutil.MockCatalogClient)

	service := &RecommendationService{
		db:               new(gorm.DB),
		catalog:          mockCatalog,
		GameRepository:   mockGameRepo,
		PlayerRepository: mockPlayerRepo,
		UserRepository:   mockUserRepo,
	}

	return service, mockUserRepo, mockPlayerRepo, mockGameRepo, mockCatalog
}
