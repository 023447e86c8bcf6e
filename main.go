package main

import (
	"log"
	"time"

	"RambutanTask/config"
	"RambutanTask/repositories"
	"RambutanTask/routes"
	"RambutanTask/services"
	"RambutanTask/utils/redislog"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1) Load config from file and||or env (also validates display_timezone).
	cfg := config.Load() // Returns *config.Config with merged settings.
	log.Printf("[boot] %s starting in %s on :%s (zone=%s)", cfg.AppName, cfg.Env, cfg.HTTPPort, config.DisplayLocation)

	// 2) Initialize infrastructure (DB and Redis).
	db := config.InitDB(cfg)     // Open DB based on cfg.DBDriver and run migrations.
	rdb := config.InitRedis(cfg) // single Redis client (Ping verified)

	// 3) Build Redis logger (list key: logs:rambutan)
	rlog := redislog.New(rdb, "logs:rambutan", 1000, 7*24*time.Hour)
	rlog.Info("app boot", map[string]string{
		"env":   cfg.Env,
		"port":  cfg.HTTPPort,
		"zone":  config.DisplayLocation.String(),
		"redis": cfg.RedisAddr,
	})

	// 4) Construct repositories and services (dependency injection).
	userRepo := repositories.NewUserRepository(db)       // Viewer rows via *gorm.DB.
	prefRepo := repositories.NewPreferenceRepository(db) // Toggle state rows.

	userSvc := services.NewUserService(userRepo, rlog)
	prefSvc := services.NewPreferenceService(prefRepo, rlog, nil) // nil clock = time.Now
	renderSvc := services.NewRenderService(prefSvc, rdb, rlog, config.DisplayLocation, nil)

	// 5) Create Gin engine and wire routes
	r := gin.New() // Create a new bare Gin engine (no default middleware).

	// trust none (safe default)
	_ = r.SetTrustedProxies(nil)

	jwtExp, _ := time.ParseDuration(cfg.JWTExpires) // Convert "72h" to time.Duration (validated in Load).
	routes.Setup(r, userSvc, prefSvc, renderSvc, cfg.JWTSecret, jwtExp, config.DisplayLocation)

	// 6) Start HTTP server on configured port; fatal if it fails to bind.
	rlog.Info("http server start", map[string]string{"port": cfg.HTTPPort})
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		rlog.Error("http server error", map[string]string{"err": err.Error()})
		log.Fatal(err) // Stop the process if server fails to start.
	}
}
