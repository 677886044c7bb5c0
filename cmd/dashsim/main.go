package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/milk9111/dashphys/config"
	"github.com/milk9111/dashphys/levels"
	"github.com/milk9111/dashphys/logging"
	"github.com/milk9111/dashphys/script"
	"github.com/milk9111/dashphys/world"
	"go.uber.org/zap"
)

func main() {
	levelPath := flag.String("level", "", "level file, raw or packaged (embedded sample when empty)")
	hitboxPath := flag.String("hitboxes", config.GetEnv(config.EnvHitboxes, ""), "hitbox table, json or yaml (embedded when empty)")
	tuningPath := flag.String("tuning", "", "tuning yaml (embedded defaults when empty)")
	macroName := flag.String("macro", "idle", "input macro file or embedded macro name")
	frames := flag.Int("frames", 1800, "frames to simulate at 60 fps")
	start := flag.Int("start", 0, "checkpoint index to start from")
	traceEvery := flag.Int("trace", 60, "record a pose every N frames, 0 disables")
	logFile := flag.String("log", config.GetEnv(config.EnvLog, ""), "log file (stderr when empty)")
	debug := flag.Bool("debug", false, "enable debug logging")
	watch := flag.Bool("watch", false, "rerun whenever the level, tuning or macro file changes")
	encode := flag.String("encode", "", "write the decoded level to this file, packaged when it ends in .dat")
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

	runOnce := func() error {
		lvl, err := world.Open(src, log)
		if err != nil {
			return err
		}
		macro, err := script.Load(*macroName)
		if err != nil {
			return err
		}
		lvl.SetStartPos(*start)
		lvl.Reset()

		res, err := simulate(lvl, script.NewDriver(macro), *frames, *traceEvery)
		if err != nil {
			return err
		}
		logResult(log, res)

		if *encode != "" {
			return writeLevel(*encode, lvl)
		}
		return nil
	}

	if !*watch {
		if err := runOnce(); err != nil {
			log.Fatal("run failed", zap.Error(err))
		}
		return
	}

	w, err := config.NewWatcher(*levelPath, *tuningPath, *hitboxPath, *macroName)
	if err != nil {
		log.Fatal("watch failed", zap.Error(err))
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := runOnce(); err != nil {
		log.Error("run failed", zap.Error(err))
	}
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return
			}
			log.Info("reloading", zap.String("file", name))
			if err := runOnce(); err != nil {
				log.Error("run failed", zap.Error(err))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Warn("watch error", zap.Error(err))
		case <-ctx.Done():
			return
		}
	}
}

func writeLevel(path string, lvl *world.Level) error {
	text := levels.Encode(lvl.Header, lvl.Objects(), lvl.Checkpoints())
	data := []byte(text)
	if strings.EqualFold(filepath.Ext(path), ".dat") {
		var err error
		if data, err = levels.Wrap(text); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
