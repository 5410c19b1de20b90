package main

import (
	"context"
	"fmt"
	"net/http"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	appConfig "linernotes/config"
	"linernotes/database"
	"linernotes/gemini"
	"linernotes/handlers"
	"linernotes/openaigen"
	"linernotes/pages"
	appSentry "linernotes/sentry"
	"linernotes/spotify"
	"linernotes/tracklist"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warnf("Error loading .env file: %v", err)
	}
	log.SetFormatter(&nested.Formatter{
		HideKeys:        true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	appConfig.NewConfig()
	appSentry.Init()

	if err := run(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	generator, err := newGenerator(ctx)
	if err != nil {
		return fmt.Errorf("failed to create text generator: %w", err)
	}

	db, err := database.New()
	if err != nil {
		// History is auxiliary; run without it rather than refusing to start
		log.Warnf("Lookup history disabled: %v", err)
		db = nil
	}

	if appConfig.Config.Spotify.Enabled {
		if err := spotify.NewSpotifyClient(); err != nil {
			log.Warnf("Album metadata disabled: %v", err)
			appConfig.Config.Spotify.Enabled = false
		}
	}

	if err := pages.Init(); err != nil {
		return fmt.Errorf("failed to initialize static assets: %w", err)
	}

	manager := handlers.NewManager(generator, db)

	router := gin.Default()
	router.Use(appSentry.GetSentryGin())

	router.GET("/", pages.ServeIndex)
	router.GET("/static/*filepath", pages.ServeStatic)
	router.POST("/api/lookup", manager.HandleLookup)
	router.GET("/api/history", manager.HandleHistory)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	port := appConfig.Config.Options.Port
	if port == "" {
		port = "8080"
	}
	log.Infof("Starting server on :%s", port)
	return http.ListenAndServe(":"+port, router)
}

func newGenerator(ctx context.Context) (tracklist.TextGenerator, error) {
	switch appConfig.Config.Options.Provider {
	case "openai":
		return openaigen.New()
	default:
		return gemini.New(ctx)
	}
}
