// Command carball runs the ball-hit detection pass over one or more
// structured replay dumps and writes the resulting hit logs to the
// configured storage backend.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kcolton/carball/internal/config"
	"github.com/kcolton/carball/internal/detector"
	"github.com/kcolton/carball/internal/influx"
	"github.com/kcolton/carball/internal/logging"
	"github.com/kcolton/carball/internal/replay"
	"github.com/kcolton/carball/internal/storage"
)

// Version can be set at build time via ldflags.
var Version = "0.0.1"

const binaryName = "carball"

func main() {
	configDir := flag.String("config", ".", "directory containing carball.cfg.json")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: carball [-config dir] replay.json [replay.json ...]")
		os.Exit(2)
	}

	if err := config.Load(*configDir); err != nil {
		// Defaults still apply without a config file.
		fmt.Fprintf(os.Stderr, "%v, continuing with defaults\n", err)
	}

	os.Exit(run(flag.Args()))
}

func run(paths []string) int {
	sessionStart := time.Now()
	logsDir := config.GetString("logsDir")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logs dir: %v\n", err)
		return 1
	}
	logFile, err := os.Create(logging.LogFilePath(logsDir, binaryName, sessionStart))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log file: %v\n", err)
		return 1
	}
	defer logFile.Close()

	logManager := logging.NewSlogManager()
	graylogAddress := ""
	if config.GetBool("graylog.enabled") {
		graylogAddress = config.GetString("graylog.address")
	}
	if err := logManager.Setup(logFile, config.GetString("logLevel"), graylogAddress); err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		return 1
	}
	defer logManager.Close()
	log := logManager.Logger()
	log.Info("Starting up", "version", Version)

	zlog := logging.Zerolog(logFile, config.GetString("logLevel"))

	backend, err := storage.NewBackend(config.Storage(), zlog)
	if err != nil {
		log.Error("Failed to create storage backend", "error", err)
		return 1
	}
	if err := backend.Init(); err != nil {
		log.Error("Failed to initialize storage backend", "error", err)
		return 1
	}
	defer backend.Close()

	var influxManager *influx.Manager
	if config.GetBool("influx.enabled") {
		influxManager = influx.NewManager(zlog)
		if err := influxManager.Connect(); err != nil {
			log.Warn("InfluxDB unavailable, pass timings will not be shipped", "error", err)
			influxManager = nil
		} else {
			defer influxManager.Close()
		}
	}

	thresholds := detector.Thresholds{
		AcceptanceDistance: config.GetFloat64("detector.acceptanceDistance"),
		StrictDistance:     config.GetFloat64("detector.strictDistance"),
		PerBallShape:       config.AcceptanceOverrides(),
	}
	det, err := detector.New(log, detector.WithThresholds(thresholds))
	if err != nil {
		log.Error("Failed to create detector", "error", err)
		return 1
	}

	ctx := context.Background()
	failed := 0
	for _, path := range paths {
		if err := analyze(ctx, det, backend, influxManager, log, path); err != nil {
			log.Error("Replay analysis failed", "path", path, "error", err)
			failed++
		}
	}

	if failed > 0 {
		log.Error("Finished with failures", "failed", failed, "total", len(paths))
		return 1
	}
	log.Info("Finished", "replays", len(paths))
	return 0
}

// analyze runs one replay through the detector and records its hits.
func analyze(ctx context.Context, det *detector.Detector, backend storage.Backend, influxManager *influx.Manager, log *slog.Logger, path string) error {
	match, err := replay.Load(path)
	if err != nil {
		return err
	}
	if match.Name == "" {
		match.Name = trimExt(filepath.Base(path))
	}
	log.Info("Replay loaded", "name", match.Name,
		"frames", match.FrameCount(), "players", len(match.Players))

	if err := backend.StartReplay(match); err != nil {
		return err
	}

	res := det.Detect(ctx, match)
	for _, frame := range res.Frames {
		if err := backend.RecordHit(res.Hits[frame]); err != nil {
			return err
		}
	}
	if err := backend.EndReplay(); err != nil {
		return err
	}

	if influxManager != nil {
		influxManager.WritePassTiming(match.Name, res.Timing, len(res.Frames))
	}
	if e, ok := backend.(storage.Exportable); ok && e.GetExportedFilePath() != "" {
		log.Info("Hit log exported", "path", e.GetExportedFilePath())
	}
	log.Info("Replay analyzed", "name", match.Name,
		"candidates", len(res.CandidateFrames), "hits", len(res.Frames))
	return nil
}

func trimExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}
