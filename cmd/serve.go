package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-originshift/api"
	api_i "github.com/beka-birhanu/vinom-originshift/api/i"
	mazeapi "github.com/beka-birhanu/vinom-originshift/api/maze"
	"github.com/beka-birhanu/vinom-originshift/config"
	"github.com/beka-birhanu/vinom-originshift/infrastruture/cache"
	"github.com/beka-birhanu/vinom-originshift/infrastruture/repo"
	"github.com/beka-birhanu/vinom-originshift/logger"
	"github.com/beka-birhanu/vinom-originshift/monitor"
	"github.com/beka-birhanu/vinom-originshift/service"
	"github.com/beka-birhanu/vinom-originshift/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	connectTimeout      = 60 * time.Second
	mazeCollection      = "mazes"
	metricsNamespace    = "originshift"
	shutdownGracePeriod = 5 * time.Second
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP maze service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		return runServe(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// server carries the dependencies built while starting the service.
type server struct {
	cfg         config.Config
	appLogger   *zap.SugaredLogger
	mongoClient *mongo.Client
	redisClient *redis.Client
	mazeRepo    i.MazeRepo
	mazeCache   i.MazeCache
	metrics     *monitor.Metrics
	mazeService *service.MazeService
	router      *api.Router
}

func runServe(ctx context.Context, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	appLogger, err := logger.New("APP", cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = appLogger.Sync() }()

	s := &server{
		cfg:       cfg,
		appLogger: appLogger,
		metrics:   monitor.NewMetrics(metricsNamespace, nil),
	}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := s.initMongo(connectCtx); err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
		defer cancel()
		_ = s.mongoClient.Disconnect(disconnectCtx)
	}()

	s.initMazeRepo()

	if err := s.initCache(connectCtx); err != nil {
		return err
	}
	if s.redisClient != nil {
		defer s.redisClient.Close()
	}

	if err := s.initMazeService(); err != nil {
		return err
	}
	s.initRouter()

	appLogger.Infof("Listening on %s:%d", cfg.HostIP, cfg.RESTPort)
	if err := s.router.Run(); err != nil {
		appLogger.Errorf("Starting server: %v", err)
		return err
	}
	return nil
}

func (s *server) initMongo(ctx context.Context) error {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", s.cfg.DBUser, s.cfg.DBPassword, s.cfg.DBHost, s.cfg.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("connecting to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("pinging MongoDB: %w", err)
	}
	s.mongoClient = client
	s.appLogger.Info("Connected to MongoDB")
	return nil
}

func (s *server) initMazeRepo() {
	s.mazeRepo = repo.NewMazeRepo(s.mongoClient, s.cfg.DBName, mazeCollection)
	s.appLogger.Info("Maze repository initialized")
}

func (s *server) initCache(ctx context.Context) error {
	if s.cfg.RedisAddr == "" {
		s.appLogger.Info("REDIS_ADDR not set, maze cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPassword,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("pinging Redis: %w", err)
	}

	cacheLogger, err := logger.New("MAZE-CACHE", s.cfg.LogLevel)
	if err != nil {
		_ = client.Close()
		return err
	}

	s.redisClient = client
	s.mazeCache = cache.NewRedisMazeCache(client, cacheLogger)
	s.appLogger.Info("Maze cache initialized")
	return nil
}

func (s *server) initMazeService() error {
	serviceLogger, err := logger.New("MAZE-SERVICE", s.cfg.LogLevel)
	if err != nil {
		return err
	}

	s.mazeService, err = service.NewMazeService(&service.Config{
		Repo:         s.mazeRepo,
		Cache:        s.mazeCache,
		Logger:       serviceLogger,
		Metrics:      s.metrics,
		MaxDimension: s.cfg.MaxMazeDimension,
		MaxSteps:     s.cfg.MaxMazeSteps,
		CacheTTL:     time.Duration(s.cfg.CacheTTLSeconds) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("creating maze service: %w", err)
	}

	s.appLogger.Info("Maze service initialized")
	return nil
}

func (s *server) initRouter() {
	gin.SetMode(s.cfg.GinMode)
	s.router = api.NewRouter(api.Config{
		Addr:           fmt.Sprintf("%s:%v", s.cfg.HostIP, s.cfg.RESTPort),
		BaseURL:        "/api",
		Controllers:    []api_i.Controller{mazeapi.NewMazeController(s.mazeService)},
		MetricsHandler: s.metrics.Handler(),
	})
	s.appLogger.Info("Router initialized")
}
