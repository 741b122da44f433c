package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"roast-game-service/handlers"
	"roast-game-service/middleware"
	"roast-game-service/models"
	"roast-game-service/services"
	"roast-game-service/utils"
	"roast-game-service/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024, // 1MB — JSON payloads only
	})

	// 🔐❗ GLOBAL: Only Gateway requests allowed — no exceptions
	app.Use(middleware.GatewayAuthMiddleware())

	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOriginsString,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Request-ID, X-Wallet-Address",
		ExposeHeaders:    "Content-Length, Content-Type, X-Request-ID",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.GameProfile{},
		&models.Player{},
		&models.Season{},
		&models.Jackpot{},
		&models.GameAction{},
		&models.RoastLog{},
		&models.Attack{},
		&models.RoastRecord{},
		&models.MatchPurchase{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	// R2 is optional — without it the season archiver stays off.
	if err := utils.InitR2(); err != nil {
		log.Printf("⚠️  R2 disabled: %v", err)
	}

	profileService := services.NewProfileService(db)
	actionService := services.NewActionService(db)
	attackService := services.NewAttackService(db)
	playerService := services.NewPlayerService(db)
	seasonService := services.NewSeasonService(db)
	roastService := services.NewRoastService(db, playerService, seasonService)

	// Redis cache is optional — without it state reads hit Postgres.
	var stateCache *services.GameStateCache
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
		stateCache, err = services.NewGameStateCache(context.Background(), redisAddr, os.Getenv("REDIS_PASSWORD"), redisDB)
		if err != nil {
			log.Printf("⚠️  Redis cache disabled: %v", err)
			stateCache = nil
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	purchaseClient := workers.NewPurchaseSyncClient(db)
	go workers.PollPurchases(ctx, purchaseClient, 15*time.Second)
	go workers.SweepShields(ctx, db, 5*time.Minute)

	seasonService.StartRolloverScheduler()
	workers.NewSeasonArchiver(db).Start()

	handlers.SetupGameRoutes(app, profileService, actionService, seasonService, stateCache)
	handlers.SetupShadeRoutes(app, attackService)
	handlers.SetupRoastRoutes(app, roastService, playerService)

	go func() {
		if err := app.Listen(":5300"); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Println("✅ Server running on http://localhost:5300")
	log.Println("✅ Purchase polling running (every 15s)")
	log.Println("✅ Shield sweeper running (every 5m)")
	log.Println("✅ GatewayAuthMiddleware enforced globally — all requests must come from Gateway")
	log.Printf("✅ CORS configured for origins: %s", allowedOriginsString)

	<-ctx.Done()
	log.Println("Shutting down server...")
}
