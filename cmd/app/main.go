// Camera Sketch
// Draw over a live, filtered camera feed.

package main

import (
	"flag"
	"os"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"camera-sketch/internal/camera"
	"camera-sketch/internal/config"
	"camera-sketch/internal/gui"
)

const (
	AppName    = "Camera Sketch"
	AppID      = "io.github.camera-sketch"
	AppVersion = "1.0.0"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to a TOML configuration file")
	debugMode := flag.Bool("debug", false, "Enable debug mode with verbose logging")
	device := flag.Int("device", -1, "Camera device index (overrides config)")
	source := flag.String("source", "", "Image file served as the camera (overrides config)")
	colorSpace := flag.String("color-space", "", "Initial color space: RGB, HSV or GRAY (overrides config)")
	flag.Parse()

	base := initLogger(*debugMode)
	logger := base.WithField("session", uuid.NewString())
	logger.WithFields(logrus.Fields{
		"version":    AppVersion,
		"debug_mode": *debugMode,
	}).Info("Starting Camera Sketch")

	cfg, err := loadConfig(*configPath, *device, *source, *colorSpace)
	if err != nil {
		logger.WithError(err).Fatal("Invalid configuration")
	}

	src, err := camera.Open(cfg.CameraOptions(), logger)
	if err != nil {
		logger.WithError(err).Fatal("Cannot open camera")
	}

	myApp := app.NewWithID(AppID)
	myApp.SetIcon(theme.DocumentIcon())

	mainApp := gui.NewApplication(myApp, src, cfg, logger)
	mainApp.ShowAndRun()

	logger.Info("Application shutting down gracefully")
	os.Exit(0)
}

// loadConfig reads the config file, if any, and applies flag overrides
func loadConfig(path string, device int, source, colorSpace string) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}

	if device >= 0 {
		cfg.Camera.Device = device
		cfg.Camera.Source = ""
	}
	if source != "" {
		cfg.Camera.Source = source
	}
	if colorSpace != "" {
		cfg.ColorSpace = colorSpace
	}
	return cfg, cfg.Validate()
}

// initLogger initializes the logger with appropriate level
func initLogger(debugMode bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if debugMode {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
		logger.Debug("Debug logging enabled")
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return logger
}
