package routes

import (
	"net/http"

	"gubu/api/handlers"

	"github.com/gin-gonic/gin"
)

// Router wraps the gin engine and registers the handler routes.
type Router struct {
	engine *gin.Engine
}

// NewRouter creates the router and registers the root healthcheck.
func NewRouter(engine *gin.Engine) *Router {
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "gubu!")
	})
	return &Router{engine: engine}
}

// SetupRoutes registers every passed handler on its route group.
func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.UserHandler:
			r.registerUserHandler(handler)
		case *handlers.GameHandler:
			r.registerGameHandler(handler)
		case *handlers.PlayerHandler:
			r.registerPlayerHandler(handler)
		case *handlers.FriendshipHandler:
			r.registerFriendshipHandler(handler)
		case *handlers.MessageThreadHandler:
			r.registerMessageThreadHandler(handler)
		case *handlers.RecommendationHandler:
			r.registerRecommendationHandler(handler)
		}
	}
}

// Register the user handler.
func (r *Router) registerUserHandler(handler *handlers.UserHandler) {
	users := r.engine.Group("/users")
	{
		users.GET("", handler.GetUsers)
		users.POST("", handler.PostUsers)
		users.GET("/:id", handler.GetUser)
		users.PATCH("/:id", handler.PatchUser)
	}
	r.engine.POST("/auth", handler.PostAuth)
}

// Register the game handler.
func (r *Router) registerGameHandler(handler *handlers.GameHandler) {
	games := r.engine.Group("/games")
	{
		games.GET("", handler.GetGames)
		games.POST("", handler.PostGames)
		games.GET("/info/:id", handler.GetGameInfo)
		games.GET("/:id", handler.GetGame)
		games.PATCH("/:id", handler.PatchGame)
		games.DELETE("/:id", handler.DeleteGame)
	}
	r.engine.GET("/gamesearch/:name", handler.GetGameSearch)
}

// Register the player handler.
func (r *Router) registerPlayerHandler(handler *handlers.PlayerHandler) {
	r.engine.GET("/players", handler.GetPlayers)
}

// Register the friendship handler.
func (r *Router) registerFriendshipHandler(handler *handlers.FriendshipHandler) {
	friendships := r.engine.Group("/friendships")
	{
		friendships.GET("", handler.GetFriendships)
		friendships.POST("", handler.PostFriendships)
		friendships.GET("/:id", handler.GetFriendship)
		friendships.PATCH("/:id", handler.PatchFriendship)
		friendships.DELETE("/:id", handler.DeleteFriendship)
	}
}

// Register the message thread handler.
func (r *Router) registerMessageThreadHandler(handler *handlers.MessageThreadHandler) {
	threads := r.engine.Group("/message_threads")
	{
		threads.GET("", handler.GetMessageThreads)
		threads.POST("", handler.PostMessageThreads)
		threads.GET("/:id", handler.GetMessageThread)
		threads.POST("/:id/messages", handler.PostMessage)
	}
}

// Register the recommendation handler.
func (r *Router) registerRecommendationHandler(handler *handlers.RecommendationHandler) {
	r.engine.GET("/matchgames/:id", handler.GetMatchGames)
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
