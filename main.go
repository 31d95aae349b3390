package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	mazeapi "github.com/beka-birhanu/vinom-maze/api/maze"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/infrastruture/cache"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/logger"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Global variables for dependencies
var (
	redisClient    *redis.Client
	mazeCache      i.MazeCache
	ticketer       i.Ticketer
	mazeService    *service.MazeService
	mazeController api_i.Controller
	router         *api.Router
	appLogger      *logger.Logger
)

func initRedis(ctx context.Context) {
	if config.Envs.RedisAddr == "" {
		appLogger.Warning("REDIS_ADDR not set, maze cache disabled")
		return
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
		DB:       config.Envs.RedisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")

	var err error
	mazeCache, err = cache.NewRedisMazeCache(redisClient, &cache.Options{
		Prefix: "vinom",
		TTL:    time.Duration(config.Envs.CacheTTLSeconds) * time.Second,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze cache: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze cache initialized")
}

func initTicketer() {
	if config.Envs.TicketSecret == "" {
		appLogger.Warning("TICKET_SECRET not set, maze sharing disabled")
		return
	}

	var err error
	ticketer, err = token.NewJwtTicketer(config.Envs.TicketSecret, config.Envs.TicketIssuer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating ticketer: %v", err))
		os.Exit(1)
	}
	appLogger.Info("JWT ticketer initialized")
}

func initMazeService() {
	serviceLogger, err := logger.New("MAZE", logger.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service logger: %v", err))
		os.Exit(1)
	}

	mazeService, err = service.NewMazeService(&service.MazeServiceConfig{
		Cache:        mazeCache,
		Ticketer:     ticketer,
		Logger:       serviceLogger,
		MaxDimension: config.Envs.MaxMazeDimension,
		TicketTTL:    time.Duration(config.Envs.TicketTTLSeconds) * time.Second,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Maze service initialized, max dimension %d", mazeService.MaxDimension()))
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
		Middlewares: []gin.HandlerFunc{api.RequestID()},
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	appLogger, _ = logger.New("APP", logger.ColorGreen, os.Stdout)

	initRedis(ctx)
	defer func() {
		if redisClient != nil {
			_ = redisClient.Close()
		}
	}()

	initTicketer()
	initMazeService()
	initMazeController()
	initRouter()

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
