package main

import (
	"context"
	"flag"
	"os"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ingyamilmolinar/wanted/core/round"
	"github.com/ingyamilmolinar/wanted/internal/assets"
	"github.com/ingyamilmolinar/wanted/internal/audio"
	"github.com/ingyamilmolinar/wanted/internal/config"
	game_log "github.com/ingyamilmolinar/wanted/internal/log"
	"github.com/ingyamilmolinar/wanted/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "TOML file overriding the built-in settings")
	logLevel := flag.String("log-level", "", "DEBUG, INFO, WARN, ERROR or NONE")
	seed := flag.Int64("seed", 0, "random seed for tile velocities and targets (0 = time based)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		game_log.Default().Errorf("config: %v", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	logger := game_log.New(os.Stderr, game_log.LevelFromString(cfg.LogLevel))
	mainLog := logger.With("main")

	var sinks []round.Sink
	dom, err := ui.NewDOMSink(cfg.DOM)
	if err != nil {
		mainLog.Errorf("%v", err)
		os.Exit(1)
	}
	if dom != nil {
		sinks = append(sinks, dom)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var results <-chan assets.Result
	src, err := assets.DefaultSource(cfg.Assets.Dir)
	if err != nil {
		mainLog.Errorf("assets: %v; tiles stay invisible", err)
	} else {
		loader := assets.NewLoader(src, cfg.Assets.RasterSize, cfg.Assets.Workers, logger.With("assets"))
		results = loader.Load(ctx, cfg.Assets.Names)
	}

	var sound ui.SoundPlayer
	if musicSrc, err := assets.DefaultSource("."); err != nil {
		mainLog.Warnf("audio disabled: %v", err)
	} else {
		sound = audio.NewPlayer(musicSrc, cfg.Audio, logger.With("audio"))
	}

	g, err := ui.New(ui.Options{
		Config: cfg,
		Logger: logger,
		Sound:  sound,
		Assets: results,
		Sinks:  sinks,
		HUD:    runtime.GOOS != "js",
	})
	if err != nil {
		mainLog.Errorf("%v", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.CanvasSize, cfg.CanvasSize)
	ebiten.SetWindowTitle("Wanted")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		mainLog.Errorf("%v", err)
		os.Exit(1)
	}
}
