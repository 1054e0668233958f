package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	config "github.com/maheshrc27/latedash/configs"
	"github.com/maheshrc27/latedash/internal/api/handlers"
	"github.com/maheshrc27/latedash/internal/cache"
	"github.com/maheshrc27/latedash/internal/client"
	"github.com/maheshrc27/latedash/internal/service"
	"github.com/maheshrc27/latedash/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	responseCache := cache.New(cfg.CacheTTL)
	store := session.NewStore(responseCache.Clear)
	if cfg.APIKey != "" {
		store.SetCredential(cfg.APIKey)
	}

	apiClient := client.New(cfg, store.Credential)

	profileService := service.NewProfileService(apiClient, responseCache, store)
	accountService := service.NewAccountService(apiClient, responseCache, store)
	postService := service.NewPostService(apiClient, responseCache)
	mediaService := service.NewMediaService(apiClient)
	redditService := service.NewRedditService(apiClient, responseCache)
	usageService := service.NewUsageService(apiClient, responseCache)
	dashboardService := service.NewDashboardService(profileService, accountService, postService, usageService, responseCache, store)

	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024, // 100 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	api := app.Group("/api")

	sess := handlers.NewSessionHandler(store, profileService, dashboardService)
	api.Post("/session/key", sess.SetKey)
	api.Get("/session", sess.Info)
	api.Get("/session/validate", sess.ValidateKey)
	api.Post("/refresh", sess.Refresh)

	profile := handlers.NewProfileHandler(profileService, store)
	api.Get("/profiles", profile.List)
	api.Post("/profiles", profile.Create)

	account := handlers.NewAccountHandler(accountService, store)
	api.Get("/accounts", account.List)

	post := handlers.NewPostHandler(postService, mediaService)
	api.Get("/posts", post.ListPosts)
	api.Post("/posts", post.CreatePost)
	api.Post("/media", post.UploadMedia)

	reddit := handlers.NewRedditHandler(redditService)
	api.Get("/reddit/feed", reddit.Feed)
	api.Get("/reddit/search", reddit.Search)

	dashboard := handlers.NewDashboardHandler(dashboardService, usageService)
	api.Get("/dashboard", dashboard.Summary)
	api.Get("/usage-stats", dashboard.UsageStats)

	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Dashboard is running on http://localhost%s", cfg.ListenAddr)

	gracefulShutdown(app)
}

func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	log.Println("Server shutdown complete.")
}
