package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"PriceLens/internal/config"
	"PriceLens/internal/pipeline"
	"PriceLens/internal/plot"
	"PriceLens/internal/recorder"
	"PriceLens/internal/scheduler"
	"PriceLens/internal/scraper"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] PriceLens starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Mirror logging into the append-only log file
	if cfg.Output.LogFile != "" {
		logFile, err := os.OpenFile(cfg.Output.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatalf("[FATAL] open log file: %v", err)
		}
		defer logFile.Close()
		log.SetOutput(io.MultiWriter(os.Stderr, logFile))
	}

	// Init fetcher and collector
	fetcher := scraper.NewHTTPFetcher(cfg.Rules, cfg.HTTP.UserAgent, cfg.Proxy,
		time.Duration(cfg.HTTP.TimeoutSeconds)*time.Second)
	log.Printf("[INFO] fetcher: %s (rules %s, %d urls)", fetcher.Name(), cfg.Rules.Version, len(cfg.URLs))
	col := scraper.NewCollector(fetcher, cfg.URLs)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pipe := pipeline.New(col, plot.NewRenderer(cfg.Output.Dir), rec, cfg)
	sched := scheduler.NewScheduler(ctx, pipe)

	// Always run the full pipeline once at startup.
	sched.RunNow()

	if os.Getenv("ONESHOT") == "true" {
		log.Println("[INFO] ONESHOT enabled, exiting after single run")
		return
	}

	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	log.Println("[INFO] PriceLens is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] PriceLens stopped")
}
