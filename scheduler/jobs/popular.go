package jobs

import (
	"context"
	"fmt"
	"time"

	"gubu/api/cache"
	gameservice "gubu/api/services/game"
	"gubu/pkg/config"
	"gubu/pkg/database"
	"gubu/pkg/igdb"
	"gubu/pkg/logger"
	"gubu/pkg/redis"
)

const popularJobTimeout = 5 * time.Minute

// RefreshPopularGames warms the popular games cache so the empty-term search
// is served from redis instead of hitting the catalog.
func RefreshPopularGames(cfg *config.Config) error {
	jobLogger, err := logger.CreateLogger()
	if err != nil {
		return fmt.Errorf("couldn't create the job logger: %w", err)
	}
	defer jobLogger.CleanFile()

	jobLogger.Infof("Starting popular games refresh.")

	db, err := database.NewConnection(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("couldn't get database connection: %w", err)
	}

	redisClient, err := redis.NewClient(cfg.Redis)
	if err != nil {
		return fmt.Errorf("couldn't get redis connection: %w", err)
	}

	memCache := cache.NewMemCache()

	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
		redisClient.Close()
		memCache.Close()
	}()

	gameService := gameservice.NewGameService(&gameservice.GameServiceDeps{
		DB:       db,
		Catalog:  igdb.NewClient(cfg.Igdb),
		MemCache: memCache,
		Redis:    redisClient,
	})

	ctx, cancel := context.WithTimeout(context.Background(), popularJobTimeout)
	defer cancel()

	// An empty term returns the popularity listing, which Search stores in
	// redis on its way out.
	games, err := gameService.Search(ctx, "", "")
	if err != nil {
		jobLogger.Errorf("Popular games refresh failed: %v", err)
	} else {
		jobLogger.Infof("Popular games refresh completed with %d games.", len(games))
	}
	jobLogger.EmptyLine()

	if cfg.Bucket.LogBucket != "" {
		objectKey := fmt.Sprintf("scheduler/popular-%s.log", time.Now().UTC().Format("2006-01-02"))
		if uploadErr := jobLogger.UploadToS3Bucket(cfg.Bucket, objectKey); uploadErr != nil {
			return fmt.Errorf("couldn't upload the job log: %w", uploadErr)
		}
	}

	return err
}
