package main

import (
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	persistlog "farmstead.gg/internal/persistence/log"
	"farmstead.gg/internal/persistence/store"
	"farmstead.gg/internal/sim/catalogs"
	"farmstead.gg/internal/sim/tuning"
	"farmstead.gg/internal/sim/world"
	"farmstead.gg/internal/transport/ws"
)

func main() {
	var (
		addr       = flag.String("addr", ":8080", "http listen address")
		worldID    = flag.String("world", "world_1", "world id")
		seed       = flag.Int64("seed", 1337, "world seed (used only when starting a fresh world)")
		configDir  = flag.String("configs", "./configs", "config directory")
		dataDir    = flag.String("data", "./data", "runtime data directory")
		tuningPath = flag.String("tuning", "", "path to tuning.yaml (default: <configs>/tuning.yaml)")
		dbPath     = flag.String("db", "", "sqlite path (default: <data>/worlds/<world>/farm.db)")
		noCmdLog   = flag.Bool("disable_cmdlog", false, "disable the compressed command log")
		logLevel   = flag.String("log_level", "info", "logrus level (debug shows dropped commands)")
	)
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if lvl, err := logrus.ParseLevel(*logLevel); err == nil {
		logger.SetLevel(lvl)
	}

	cats, err := catalogs.Load(*configDir)
	if err != nil {
		logger.Fatalf("load catalogs: %v", err)
	}

	tp := strings.TrimSpace(*tuningPath)
	if tp == "" {
		tp = filepath.Join(*configDir, "tuning.yaml")
	}
	tune, err := tuning.Load(tp)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warnf("tuning not found (%s); using defaults", tp)
			tune = tuning.Defaults()
		} else {
			logger.Fatalf("load tuning: %v", err)
		}
	}

	worldDir := filepath.Join(*dataDir, "worlds", *worldID)
	if err := os.MkdirAll(worldDir, 0o755); err != nil {
		logger.Fatalf("create world dir: %v", err)
	}

	dp := strings.TrimSpace(*dbPath)
	if dp == "" {
		dp = filepath.Join(worldDir, "farm.db")
	}
	db, err := store.Open(dp)
	if err != nil {
		logger.Fatalf("open store: %v", err)
	}
	defer db.Close()

	w, err := world.New(world.WorldConfig{
		ID:   *worldID,
		Seed: *seed,

		TickRateHz:    tune.TickRateHz,
		TimeScale:     tune.TimeScale,
		HoursPerDay:   tune.HoursPerDay,
		DaysPerSeason: tune.DaysPerSeason,
		Size:          tune.WorldSize,

		EnergyTill:    tune.Energy.Till,
		EnergyWater:   tune.Energy.Water,
		EnergyHarvest: tune.Energy.Harvest,
		EnergyCast:    tune.Energy.Cast,

		SkillMaxLevel:     tune.SkillMaxLevel,
		LevelEnergyBonus:  tune.LevelEnergyBonus,
		StartingCoins:     tune.StartingCoins,
		StartingMaxEnergy: tune.StartingMaxEnergy,

		RateLimits: world.RateLimitConfig{
			MoveWindowTicks: uint64(tune.RateLimits.MoveWindowTicks),
			MoveMax:         tune.RateLimits.MoveMax,
			TalkWindowTicks: uint64(tune.RateLimits.TalkWindowTicks),
			TalkMax:         tune.RateLimits.TalkMax,
		},
	}, cats, db, logger)
	if err != nil {
		logger.Fatalf("create world: %v", err)
	}

	if !*noCmdLog {
		cmdLog := persistlog.NewCommandLogger(worldDir)
		defer cmdLog.Close()
		w.SetCommandLogger(cmdLog)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go w.Run(ctx)

	wsrv := ws.NewServer(w, logger)
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/ws", wsrv.Handler())
	mux.HandleFunc("/healthz", func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(rw).Encode(map[string]any{
			"ok":    true,
			"world": w.ID(),
			"tick":  w.CurrentTick(),
		})
	})

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.WithFields(logrus.Fields{
			"addr": *addr, "world": *worldID, "seed": w.Seed(),
		}).Info("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
	cancel()
	// Give the loop a moment to run its final checkpoint.
	time.Sleep(200 * time.Millisecond)
}
