package pipelinerun

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"moodline/internal/capture"
	"moodline/internal/classifier"
	"moodline/internal/config"
	"moodline/internal/emotion"
	"moodline/internal/generation"
	"moodline/internal/history"
	"moodline/internal/logging"
	"moodline/internal/pipeline"
	"moodline/internal/render"
	"moodline/internal/services"
)

// Options configures session runtime behavior.
type Options struct {
	// LogLevel overrides the configured logging level when non-empty.
	LogLevel string
}

// Run starts one capture session and blocks until the stream ends, the
// camera fails, or the process receives SIGINT or SIGTERM.
func Run(cmdCtx context.Context, cfg *config.Config, opts Options) error {
	if cfg == nil {
		return fmt.Errorf("config is required")
	}

	signalCtx, cancel := signal.NotifyContext(cmdCtx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	mode, err := emotion.ParseMode(cfg.Structure.Mode)
	if err != nil {
		return err
	}

	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	runID := time.Now().UTC().Format("20060102T150405.000Z")
	sessionID := uuid.NewString()
	logPath := filepath.Join(cfg.Logging.Dir, fmt.Sprintf("moodline-%s.log", runID))

	level := cfg.Logging.Level
	if strings.TrimSpace(opts.LogLevel) != "" {
		level = opts.LogLevel
	}

	// Stdout belongs to the renderer; logs go to stderr and the session file.
	logger, err := logging.New(logging.Options{
		Level:            level,
		Format:           cfg.Logging.Format,
		OutputPaths:      []string{"stderr", logPath},
		ErrorOutputPaths: []string{"stderr", logPath},
		SessionID:        sessionID,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	if err := ensureCurrentLogPointer(cfg.Logging.Dir, logPath); err != nil {
		fmt.Fprintf(os.Stderr, "warn: unable to update moodline.log link: %v\n", err)
	}

	// One session per camera. A second process on the same device would
	// starve the first of frames.
	lock := flock.New(lockPath(cfg.Logging.Dir, cfg.Capture.Device))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire device lock: %w", err)
	}
	if !locked {
		return services.Wrap(services.ErrConfiguration, "session", "start",
			fmt.Sprintf("device %s is in use by another session", cfg.Capture.Device), nil)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	logger.Info("session starting",
		logging.String(logging.FieldEventType, "session_starting"),
		logging.String(logging.FieldDevice, cfg.Capture.Device),
		logging.String(logging.FieldBackend, cfg.Generation.Backend),
		logging.String("mode", string(mode)),
	)

	camera, err := capture.NewCamera(cfg.Capture, logger)
	if err != nil {
		return err
	}
	defer func() {
		_ = camera.Close()
	}()

	monitor := capture.NewDeviceMonitor(logger, cfg.Capture.Device, func(device, action string) {
		if action == "remove" {
			// The pipeline will see the failure through the bus; this just
			// gets the cause into the log ahead of it.
			logger.Warn("camera disconnected",
				logging.String(logging.FieldEventType, "camera_disconnected"),
				logging.String(logging.FieldDevice, device),
			)
		}
	})
	if err := monitor.Start(signalCtx); err != nil {
		return err
	}
	defer monitor.Stop()

	renderer := render.NewConsole()
	defer func() {
		_ = renderer.Close()
	}()

	p, err := pipeline.New(pipeline.Options{
		Source: camera,
		Classifier: classifier.NewClient(classifier.Config{
			Endpoint:       cfg.Classifier.Endpoint,
			Detector:       cfg.Classifier.Detector,
			TimeoutSeconds: cfg.Classifier.TimeoutSeconds,
		}),
		Generator:        generation.New(cfg.Generation),
		Renderer:         renderer,
		History:          history.New(cfg.History.Capacity),
		Mode:             mode,
		ClassifyInterval: cfg.ClassificationInterval(),
		GenerateInterval: cfg.GenerationInterval(),
		Logger:           logger,
	})
	if err != nil {
		return err
	}

	err = p.Run(signalCtx)
	if errors.Is(err, context.Canceled) {
		logger.Info("session interrupted",
			logging.String(logging.FieldEventType, "session_interrupted"),
		)
		return nil
	}
	if err != nil {
		logger.Error("session failed", logging.Error(err))
		return err
	}

	logger.Info("session finished",
		logging.String(logging.FieldEventType, "session_finished"),
	)
	return nil
}

func lockPath(dir, device string) string {
	sanitized := strings.NewReplacer("/", "-", "\\", "-").Replace(strings.TrimPrefix(device, "/"))
	return filepath.Join(dir, fmt.Sprintf("moodline-%s.lock", sanitized))
}

func ensureCurrentLogPointer(logDir, target string) error {
	if logDir == "" || target == "" {
		return nil
	}
	current := filepath.Join(logDir, "moodline.log")
	if err := os.Remove(current); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove existing log pointer: %w", err)
	}
	if err := os.Symlink(target, current); err == nil {
		return nil
	}
	if err := os.Link(target, current); err != nil {
		return fmt.Errorf("link log pointer: %w", err)
	}
	return nil
}
