package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/OCharnyshevich/osm2mc/internal/builder"
	"github.com/OCharnyshevich/osm2mc/internal/config"
)

func main() {
	cfg := config.DefaultConfig()

	configPath := flag.String("config", "", "YAML config file")
	flag.StringVar(&cfg.Input, "input", cfg.Input, "ways file (local path or go-getter URL)")
	flag.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "world output directory")
	flag.StringVar(&cfg.Terrain, "terrain", cfg.Terrain, "terrain generator: flat or perlin")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "perlin terrain seed")
	flag.IntVar(&cfg.GroundLevel, "ground", cfg.GroundLevel, "base ground level")
	flag.Float64Var(&cfg.TerrainAmplitude, "amplitude", cfg.TerrainAmplitude, "perlin terrain amplitude in blocks")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	flag.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "write run metrics to this file")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel chunk encoders")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *configPath != "" {
		explicit := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

		fromFile, err := config.Load(*configPath)
		if err != nil {
			log.Error("load config", "error", err)
			os.Exit(1)
		}
		config.Merge(cfg, fromFile, explicit)
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", "error", err)
		os.Exit(1)
	}

	level, _ := cfg.Level()
	log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	res, err := builder.New(cfg, log).Run(ctx)
	if err != nil {
		log.Error("build failed", "error", err)
		os.Exit(1)
	}
	log.Info("done",
		"ways", res.Ways,
		"carved", res.Carved,
		"regions_unchanged", res.Save.RegionsUnchanged,
	)
}
