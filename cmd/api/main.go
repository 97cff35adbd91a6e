package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	adapterHTTP "github.com/Stepka365/gym-tracker/internal/adapters/handler/http"
	"github.com/Stepka365/gym-tracker/internal/adapters/repository"
	"github.com/Stepka365/gym-tracker/internal/config"
	"github.com/Stepka365/gym-tracker/internal/core/services"
)

// @title        Gym Tracker API
// @version      1.0
// @description  Attendance tracking and per-slot load reporting for a single gym.
// @BasePath     /
func main() {
	startTime := time.Now()

	cfg := config.Load()

	if info, err := os.Stat(cfg.DataDir); err != nil || !info.IsDir() {
		log.Fatalf("Critical: data directory %s is not usable: %v", cfg.DataDir, err)
	}

	configRepo := repository.NewFileConfigRepository(filepath.Join(cfg.DataDir, "gym_config.json"))
	memberRepo := repository.NewFileMemberRepository(filepath.Join(cfg.DataDir, "users.json"))
	trackingRepo := repository.NewFileTrackingRepository(filepath.Join(cfg.DataDir, "tracking.json"))
	loadRepo := repository.NewFileLoadRepository(filepath.Join(cfg.DataDir, "processed_data.json"))

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	scheduleService := services.NewScheduleService(configRepo)
	memberService := services.NewMemberService(memberRepo)
	trackingService := services.NewTrackingService(memberRepo, trackingRepo, configRepo, rng)
	loadService := services.NewLoadService(configRepo, trackingRepo, loadRepo)
	reportService := services.NewReportService(configRepo, loadRepo)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		MemberHandler:   adapterHTTP.NewMemberHandler(memberService),
		ConfigHandler:   adapterHTTP.NewConfigHandler(scheduleService),
		TrackingHandler: adapterHTTP.NewTrackingHandler(trackingService),
		LoadHandler:     adapterHTTP.NewLoadHandler(loadService),
		ReportHandler:   adapterHTTP.NewReportHandler(reportService),
		DataDir:         cfg.DataDir,
		RateLimitRPS:    cfg.RateLimitRPS,
		RateLimitBurst:  cfg.RateLimitBurst,
		StartTime:       startTime,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Gym Tracker running on http://localhost:%s (data dir %s)", cfg.Port, cfg.DataDir)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}
