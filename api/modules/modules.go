package modules

import (
	"gubu/api/cache"
	"gubu/api/handlers"
	friendshipservice "gubu/api/services/friendship"
	gameservice "gubu/api/services/game"
	messagethreadservice "gubu/api/services/messagethread"
	playerservice "gubu/api/services/player"
	recommendationservice "gubu/api/services/recommendation"
	userservice "gubu/api/services/user"
	"gubu/pkg/config"
	"gubu/pkg/igdb"
	"gubu/pkg/redis"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Module containing the necessary handlers.
type Module struct {
	Router *gin.Engine

	UserHandler           *handlers.UserHandler
	GameHandler           *handlers.GameHandler
	PlayerHandler         *handlers.PlayerHandler
	FriendshipHandler     *handlers.FriendshipHandler
	MessageThreadHandler  *handlers.MessageThreadHandler
	RecommendationHandler *handlers.RecommendationHandler

	memCache *cache.MemCache
}

// NewModule creates a module with every service and handler initialized.
func NewModule(cfg *config.Config, db *gorm.DB, redisClient *redis.RedisClient) *Module {
	router := gin.Default()

	memCache := cache.NewMemCache()
	catalog := igdb.NewClient(cfg.Igdb)

	userService := userservice.NewUserService(&userservice.UserServiceDeps{DB: db})
	gameService := gameservice.NewGameService(&gameservice.GameServiceDeps{
		DB:       db,
		Catalog:  catalog,
		MemCache: memCache,
		Redis:    redisClient,
	})
	playerService := playerservice.NewPlayerService(&playerservice.PlayerServiceDeps{DB: db})
	friendshipService := friendshipservice.NewFriendshipService(&friendshipservice.FriendshipServiceDeps{DB: db})
	messageThreadService := messagethreadservice.NewMessageThreadService(&messagethreadservice.MessageThreadServiceDeps{DB: db})
	recommendationService := recommendationservice.NewRecommendationService(&recommendationservice.RecommendationServiceDeps{
		DB:      db,
		Catalog: catalog,
	})

	return &Module{
		Router:                router,
		UserHandler:           handlers.NewUserHandler(userService),
		GameHandler:           handlers.NewGameHandler(gameService),
		PlayerHandler:         handlers.NewPlayerHandler(playerService),
		FriendshipHandler:     handlers.NewFriendshipHandler(friendshipService),
		MessageThreadHandler:  handlers.NewMessageThreadHandler(messageThreadService),
		RecommendationHandler: handlers.NewRecommendationHandler(recommendationService),
		memCache:              memCache,
	}
}

// Close releases the module resources.
func (m *Module) Close() {
	m.memCache.Close()
}
