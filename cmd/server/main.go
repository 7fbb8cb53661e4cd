package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/calendar"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/config"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/handlers"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/middleware"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/redis"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/router"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/rowstore"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/services"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/pkg/logger"
)

func main() {
	cfg := config.Load()

	logger.InitLogger()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	ctx := context.Background()

	var store rowstore.RowStore
	var cal calendar.Calendar

	if cfg.UseMockDB {
		logger.Log.Info().Str("path", cfg.LocalDBPath).Msg("Running in local mock mode")
		store = rowstore.NewLocalStore(cfg.LocalDBPath)
		cal = calendar.NewLogCalendar()
	} else {
		logger.Log.Info().Msg("Running against Google Sheets and Calendar")

		sheetsStore, err := rowstore.NewSheetsStore(ctx, cfg.SpreadsheetID, cfg.CredentialsFile)
		if err != nil {
			log.Fatal("Failed to initialize sheets store:", err)
		}
		store = sheetsStore

		googleCal, err := calendar.NewGoogleCalendar(ctx, cfg.CalendarID, cfg.CredentialsFile, cfg.Timezone)
		if err != nil {
			log.Fatal("Failed to initialize calendar client:", err)
		}
		cal = googleCal
	}

	// Optional: shared rate-limit counters and catalog cache
	var rdb *redis.Service
	if cfg.RedisAddr != "" {
		rdb = redis.NewService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	}

	noteService := services.NewNoteService(store, cal)
	userService := services.NewUserService(store)
	catalogService := services.NewCatalogService(store, rdb, cfg.CatalogCacheTTL)

	h := router.Handlers{
		Auth:     handlers.NewAuthHandler(userService),
		Notes:    handlers.NewNoteHandler(noteService),
		Catalogs: handlers.NewCatalogHandler(catalogService),
		Stats:    handlers.NewStatsHandler(noteService, catalogService),
	}

	r := gin.Default()
	middleware.SetupPrometheus(r)
	router.SetupRouter(r, cfg, rdb, h)

	logger.Log.Info().Str("port", cfg.Port).Msg("Server starting")
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
