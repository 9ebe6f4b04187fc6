// Main application window: camera feed with the sketch overlay on top
package gui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"camera-sketch/internal/algorithms"
	"camera-sketch/internal/camera"
	sketch "camera-sketch/internal/canvas"
	"camera-sketch/internal/config"
	"camera-sketch/internal/core"
	"camera-sketch/internal/drawing"
	"camera-sketch/internal/metrics"
)

const (
	windowTitle   = "Camera Sketch"
	statsInterval = 100
)

// Application owns the window, the frame source and the tick loop. Every
// field is touched from the UI thread only; the ticker goroutine hands each
// tick over with fyne.Do.
type Application struct {
	app    fyne.App
	window fyne.Window
	logger logrus.FieldLogger
	cfg    config.Config

	// Core components
	source   camera.Source
	pipeline *core.Pipeline
	sketch   *sketch.Canvas
	stats    *metrics.FrameStats
	frame    gocv.Mat

	// GUI components
	cameraImage *canvas.Image
	surface     *SketchSurface
	toolbar     *Toolbar
	filterPanel *FilterPanel
	menuHandler *MenuHandler
	status      *widget.Label

	ticker  *time.Ticker
	done    chan struct{}
	stopped bool
}

func NewApplication(app fyne.App, source camera.Source, cfg config.Config, logger logrus.FieldLogger) *Application {
	window := app.NewWindow(windowTitle)
	window.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	window.CenterOnScreen()

	a := &Application{
		app:    app,
		window: window,
		logger: logger,
		cfg:    cfg,
		source: source,
		frame:  gocv.NewMat(),
	}

	a.initializeCore()
	a.initializeGUI()
	a.setupLayout()
	a.setupCallbacks()

	return a
}

func (a *Application) initializeCore() {
	a.pipeline = core.NewPipeline(algorithms.NewDefaultRegistry(a.cfg.FilterParams()), a.logger)
	a.pipeline.SetColorSpace(a.cfg.ColorSpaceValue())
	a.stats = metrics.NewFrameStats(metrics.DefaultWindow)
	a.sketch = sketch.New(a.cfg.Window.Width, a.cfg.Window.Height,
		sketch.WithStyle(a.cfg.Style()),
		sketch.WithLogger(a.logger),
		sketch.WithRepaint(a.repaintOverlay),
	)
}

func (a *Application) initializeGUI() {
	a.cameraImage = canvas.NewImageFromImage(nil)
	a.cameraImage.FillMode = canvas.ImageFillStretch
	a.cameraImage.ScaleMode = canvas.ImageScaleFastest

	a.surface = NewSketchSurface(a.sketch, a.logger)
	a.toolbar = NewToolbar(a.sketch.Tool().Kind(), a.logger)
	a.filterPanel = NewFilterPanel(a.pipeline, a.logger)
	a.menuHandler = NewMenuHandler(a.window, a.logger)
	a.status = widget.NewLabel("Waiting for camera")
}

func (a *Application) setupLayout() {
	// camera at the bottom, overlay on top
	layers := container.NewStack(a.cameraImage, a.surface)

	top := container.NewVBox(a.toolbar.GetContainer(), widget.NewSeparator())
	right := container.NewVScroll(a.filterPanel.GetContainer())
	content := container.NewBorder(top, a.status, nil, right, layers)

	a.window.SetMainMenu(a.menuHandler.GetMainMenu())
	a.window.SetContent(content)
}

func (a *Application) setupCallbacks() {
	a.toolbar.SetCallbacks(
		// onToolChanged
		func(kind drawing.Kind) {
			a.sketch.SetTool(drawing.New(kind))
			a.window.Canvas().Focus(a.surface)
		},
		// onClear
		a.clearSketch,
	)
	a.menuHandler.SetCallbacks(a.clearSketch)

	a.window.SetOnClosed(a.cleanup)
}

func (a *Application) clearSketch() {
	a.sketch.Clear()
	a.logger.Debug("GUI: Sketch cleared")
}

func (a *Application) repaintOverlay() {
	if a.surface != nil {
		a.surface.Repaint()
	}
}

// ShowAndRun starts the tick loop and blocks until the window closes
func (a *Application) ShowAndRun() {
	a.logger.WithField("interval", a.cfg.TickInterval()).Info("GUI: Showing main window")
	a.start()
	a.window.ShowAndRun()
}

func (a *Application) start() {
	a.ticker = time.NewTicker(a.cfg.TickInterval())
	a.done = make(chan struct{})

	go func(ticks <-chan time.Time, done <-chan struct{}) {
		for {
			select {
			case <-done:
				return
			case <-ticks:
				fyne.Do(a.tick)
			}
		}
	}(a.ticker.C, a.done)
}

// tick pulls one frame, runs the pipeline and shows the result
func (a *Application) tick() {
	if a.stopped {
		return
	}
	if !a.source.Read(&a.frame) {
		a.stats.Skip()
		return
	}

	started := time.Now()
	processed, err := a.pipeline.Process(a.frame)
	if err != nil {
		a.logger.WithError(err).Warn("PIPELINE: Frame dropped")
		a.stats.Skip()
		return
	}
	defer processed.Close()

	img, err := core.ToImage(processed)
	if err != nil {
		a.logger.WithError(err).Fatal("GUI: Cannot display processed frame")
		return
	}
	a.stats.Record(time.Since(started))

	a.cameraImage.Image = img
	a.cameraImage.Refresh()
	a.surface.Repaint()

	if a.stats.Processed()%statsInterval == 1 {
		snap := a.stats.Snapshot()
		a.status.SetText(snap.String())
		a.logger.WithFields(logrus.Fields{
			"processed": snap.Processed,
			"skipped":   snap.Skipped,
			"mean":      snap.Mean,
			"stddev":    snap.StdDev,
		}).Debug("PIPELINE: Frame statistics")
	}
}

func (a *Application) cleanup() {
	if a.stopped {
		return
	}
	a.stopped = true
	a.logger.Info("GUI: Cleaning up application resources")

	if a.ticker != nil {
		a.ticker.Stop()
		close(a.done)
	}
	if err := a.source.Close(); err != nil {
		a.logger.WithError(err).Warn("CAMERA: Close failed")
	}
	a.frame.Close()
}
