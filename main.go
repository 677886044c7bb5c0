package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dashphys/config"
	"github.com/milk9111/dashphys/logging"
	"github.com/milk9111/dashphys/script"
	"github.com/milk9111/dashphys/world"
	"go.uber.org/zap"
	"golang.design/x/clipboard"
)

func main() {
	levelPath := flag.String("level", "", "level file, raw or packaged (embedded sample when empty)")
	hitboxPath := flag.String("hitboxes", config.GetEnv(config.EnvHitboxes, ""), "hitbox table, json or yaml (embedded when empty)")
	tuningPath := flag.String("tuning", "", "tuning yaml (embedded defaults when empty)")
	macroName := flag.String("macro", "", "input macro for autoplay (toggle with A)")
	start := flag.Int("start", 0, "checkpoint index to start from")
	logFile := flag.String("log", config.GetEnv(config.EnvLog, ""), "log file (stderr when empty)")
	debug := flag.Bool("debug", false, "draw hitboxes and enable debug logging")
	watch := flag.Bool("watch", false, "reload when the level, tuning or macro file changes")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	level := "info"
	if *debug {
		level = "debug"
	}
	log, err := logging.New(logging.Options{Level: level, File: *logFile, Dev: *debug})
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	src := world.Source{Level: *levelPath, Hitboxes: *hitboxPath, Tuning: *tuningPath}
	lvl, err := world.Open(src, log)
	if err != nil {
		log.Fatal("load failed", zap.Error(err))
	}

	opts := GameOptions{Source: src, Start: *start, Debug: *debug}
	if *macroName != "" {
		if opts.Macro, err = script.Load(*macroName); err != nil {
			log.Fatal("macro failed", zap.Error(err))
		}
	}
	if err := clipboard.Init(); err != nil {
		log.Warn("clipboard unavailable", zap.Error(err))
	} else {
		opts.Clipboard = true
	}
	if *watch {
		w, err := config.NewWatcher(*levelPath, *tuningPath, *hitboxPath, *macroName)
		if err != nil {
			log.Fatal("watch failed", zap.Error(err))
		}
		defer w.Close()
		opts.Watcher = w
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("dashphys")

	game := NewGame(lvl, opts, log)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal("run failed", zap.Error(err))
	}
}
