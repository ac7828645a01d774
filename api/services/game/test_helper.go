package gameservice

import (
	"gubu/api/services/testutil"

	"gorm.io/gorm"
)

// Helper to initialize the mocks.
func setupTestService() (
	*GameService,
	*testutil.MockGameRepository,
	*testutil.MockCatalogClient,
	*testutil.MockMemCache,
	*testutil.MockGameRedisClient,
) {
	mockGameRepo := new(testutil.MockGameRepository)
	mockCatalog := new(testutil.MockCatalogClient)
	mockMemCache := new(testutil.MockMemCache)
	mockRedis := new(testutil.MockGameRedisClient)

	service := &GameService{
		db:             new(gorm.DB),
		catalog:        mockCatalog,
		memCache:       mockMemCache,
		redis:          mockRedis,
		GameRepository: mockGameRepo,
	}

	return service, mockGameRepo, mockCatalog, mockMemCache, mockRedis
}
