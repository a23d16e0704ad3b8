package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"lifetube/internal/api/handlers"
	"lifetube/internal/api/router"
	commentapp "lifetube/internal/comment/app"
	commentrepo "lifetube/internal/comment/repository"
	userapp "lifetube/internal/user/app"
	userdomain "lifetube/internal/user/domain"
	userrepo "lifetube/internal/user/repository"
	videoapp "lifetube/internal/video/app"
	videorepo "lifetube/internal/video/repository"
	"lifetube/pkg/config"
	"lifetube/pkg/database"
	"lifetube/pkg/logger"
	"lifetube/pkg/storage"

	"github.com/gofiber/fiber/v2"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.APIServer, config.EnvConfig.APIServerLogPath)
	cfg := config.LoadConfig[config.Server](config.EnvConfig.APIServer, config.EnvConfig.APIServerYAMLPath)

	db, err := database.NewPGConnection(database.Connection{
		ConnectStr: fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			cfg.PG.Host, cfg.PG.Port, cfg.PG.User, cfg.PG.Password, cfg.PG.Database),
		RetryCount:    cfg.PG.RetryCount,
		RetryInterval: time.Duration(cfg.PG.RetryInterval),
	})
	if err != nil {
		logger.Log.Fatal("connect postgres failed", zap.Error(err))
	}

	videoRepo := videorepo.NewVideoRepo(db)
	likeRepo := videorepo.NewLikeRepo(db)
	commentRepo := commentrepo.NewCommentRepo(db)
	userRepo := userrepo.NewUserRepo(db)
	subRepo := userrepo.NewSubscriptionRepo(db)

	// users first, every other table hangs its association off it
	if err := db.AutoMigrate(&userdomain.User{}); err != nil {
		logger.Log.Fatal("migrate users failed", zap.Error(err))
	}
	for _, migrate := range []func() error{
		videoRepo.AutoMigrate,
		likeRepo.AutoMigrate,
		commentRepo.AutoMigrate,
		subRepo.AutoMigrate,
	} {
		if err := migrate(); err != nil {
			logger.Log.Fatal("migrate tables failed", zap.Error(err))
		}
	}

	store, app := newAssetStore(cfg)

	videoUsecase := videoapp.NewVideoUseCase(videoRepo, likeRepo, commentRepo, store, cfg.Upload.PlaceholderThumb)
	commentUsecase := commentapp.NewCommentUseCase(commentRepo)
	userUsecase := userapp.NewUserUseCase(userRepo, subRepo, videoRepo)

	videoHandler := &handlers.VideoHandler{
		Usecase:       videoUsecase,
		TempDir:       cfg.Upload.TempDir,
		MaxVideoBytes: int64(cfg.Upload.MaxVideoBytes),
		MaxImageBytes: int64(cfg.Upload.MaxImageBytes),
	}
	commentHandler := &handlers.CommentHandler{Usecase: commentUsecase}
	userHandler := &handlers.UserHandler{Usecase: userUsecase}
	healthHandler := &handlers.HealthHandler{AllowedOrigins: cfg.ClientURLs}

	file, err := os.OpenFile(fmt.Sprintf("%s/access.log", config.EnvConfig.APIServerLogPath),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer file.Close()

	app.Use(fiber_log.New(fiber_log.Config{
		Output: file,
	}))

	router.RegisterRoutes(app, videoHandler, commentHandler, userHandler, healthHandler)

	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Log.Fatal("Server failed to start", zap.Error(err))
	}
}

// newAssetStore select the storage backend and build the fiber app. Uploads
// are served straight off the disk in local mode, from the bucket otherwise.
func newAssetStore(cfg config.Server) (storage.AssetStore, *fiber.App) {
	app := fiber.New(fiber.Config{
		BodyLimit: cfg.Upload.MaxVideoBytes + cfg.Upload.MaxImageBytes,
	})

	if cfg.Storage.Mode == "minio" {
		mc, err := database.NewMinIOConnection(database.MinIOConnection{
			Endpoint:      fmt.Sprintf("%s:%d", cfg.MinIO.Host, cfg.MinIO.Port),
			User:          cfg.MinIO.User,
			Password:      cfg.MinIO.Password,
			BucketName:    cfg.MinIO.BucketName,
			UseSSL:        cfg.MinIO.UseSSL,
			RetryCount:    cfg.MinIO.RetryCount,
			RetryInterval: time.Duration(cfg.MinIO.RetryInterval),
		})
		if err != nil {
			logger.Log.Fatal("connect minio failed", zap.Error(err))
		}
		return storage.NewMinIOStore(mc), app
	}

	local, err := storage.NewLocalStore(cfg.Storage.LocalDir, cfg.Storage.PublicURL)
	if err != nil {
		logger.Log.Fatal("init local storage failed", zap.Error(err))
	}
	app.Static(cfg.Storage.PublicURL, cfg.Storage.LocalDir)
	return local, app
}
