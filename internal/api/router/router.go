package router

import (
	"strings"

	"lifetube/internal/api/handlers"
	"lifetube/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

// RegisterRoutes wire the HTTP surface
// @title LifeTube API
// @version 1.0
// @description API documentation for LifeTube
// @host localhost:5000
// @BasePath /
func RegisterRoutes(app *fiber.App,
	videoHandler *handlers.VideoHandler,
	commentHandler *handlers.CommentHandler,
	userHandler *handlers.UserHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			for _, allowed := range healthHandler.AllowedOrigins {
				if strings.EqualFold(origin, allowed) {
					return true
				}
			}
			return false
		},
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")
	api.Get("/health", healthHandler.Health)

	videos := api.Group("/videos")
	videos.Get("/", videoHandler.ListVideos)
	videos.Get("/trending", videoHandler.Trending)
	videos.Get("/:id", videoHandler.GetVideo)
	videos.Post("/:id/view", videoHandler.IncrementViews)

	videos.Use(middlewares.JWTMiddleware())
	videos.Post("/upload", videoHandler.UploadVideo)
	videos.Post("/:id/like", videoHandler.ToggleLike)
	videos.Delete("/:id", videoHandler.DeleteVideo)

	comments := api.Group("/comments")
	comments.Get("/video/:videoId", commentHandler.ListComments)

	comments.Use(middlewares.JWTMiddleware())
	comments.Post("/", commentHandler.CreateComment)
	comments.Delete("/:id", commentHandler.DeleteComment)

	users := api.Group("/users")
	users.Get("/:id", userHandler.GetProfile)

	users.Use(middlewares.JWTMiddleware())
	users.Post("/subscribe", userHandler.Subscribe)
	users.Get("/subscriptions/list", userHandler.ListSubscriptions)
	users.Get("/subscriptions/feed", userHandler.SubscriptionFeed)
	users.Get("/subscriptions/check/:channelId", userHandler.CheckSubscription)
}
