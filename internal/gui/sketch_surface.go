// internal/gui/sketch_surface.go
// Sketch surface widget: forwards pointer and key input to the canvas and
// paints its composited overlay
package gui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	sketch "camera-sketch/internal/canvas"
)

// SketchSurface is a transparent widget laid over the camera image. Overlay
// coordinates are widget coordinates.
type SketchSurface struct {
	widget.BaseWidget

	sketch *sketch.Canvas
	logger logrus.FieldLogger

	raster  *canvas.Raster
	lastPos image.Point
	focused bool
}

var (
	_ desktop.Mouseable = (*SketchSurface)(nil)
	_ desktop.Hoverable = (*SketchSurface)(nil)
	_ fyne.Draggable    = (*SketchSurface)(nil)
	_ fyne.Focusable    = (*SketchSurface)(nil)
)

// NewSketchSurface wraps a canvas for display and input
func NewSketchSurface(c *sketch.Canvas, logger logrus.FieldLogger) *SketchSurface {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	s := &SketchSurface{
		sketch: c,
		logger: logger,
	}
	s.raster = canvas.NewRaster(func(w, h int) image.Image {
		return s.sketch.Composite()
	})
	s.ExtendBaseWidget(s)
	return s
}

// CreateRenderer creates the renderer for the sketch surface
func (s *SketchSurface) CreateRenderer() fyne.WidgetRenderer {
	return &sketchSurfaceRenderer{surface: s}
}

// Repaint redraws the overlay raster
func (s *SketchSurface) Repaint() {
	if s.raster != nil {
		s.raster.Refresh()
	}
}

// Mouse event handlers
func (s *SketchSurface) MouseDown(ev *desktop.MouseEvent) {
	s.requestFocus()
	s.lastPos = toPoint(ev.Position)
	s.sketch.Press(s.lastPos, toButton(ev.Button))
}

func (s *SketchSurface) MouseUp(ev *desktop.MouseEvent) {
	s.lastPos = toPoint(ev.Position)
	s.sketch.Release(s.lastPos, toButton(ev.Button))
}

func (s *SketchSurface) MouseIn(*desktop.MouseEvent) {}

func (s *SketchSurface) MouseMoved(ev *desktop.MouseEvent) {
	s.lastPos = toPoint(ev.Position)
	s.sketch.Move(s.lastPos)
}

func (s *SketchSurface) MouseOut() {}

func (s *SketchSurface) Dragged(ev *fyne.DragEvent) {
	s.lastPos = toPoint(ev.Position)
	s.sketch.Move(s.lastPos)
}

// DragEnd finishes a gesture when the button is released during a drag. A
// MouseUp for the same release is a no-op once the canvas is idle.
func (s *SketchSurface) DragEnd() {
	s.sketch.Release(s.lastPos, sketch.ButtonPrimary)
}

// Keyboard event handlers
func (s *SketchSurface) FocusGained() { s.focused = true }

func (s *SketchSurface) FocusLost() { s.focused = false }

func (s *SketchSurface) TypedRune(r rune) {
	s.sketch.KeyDown(sketch.KeyEvent{Rune: r})
}

func (s *SketchSurface) TypedKey(ev *fyne.KeyEvent) {
	if key, ok := toKey(ev.Name); ok {
		s.sketch.KeyDown(sketch.KeyEvent{Key: key})
	}
}

func (s *SketchSurface) requestFocus() {
	if s.focused {
		return
	}
	app := fyne.CurrentApp()
	if app == nil {
		return
	}
	if c := app.Driver().CanvasForObject(s); c != nil {
		c.Focus(s)
	}
}

func toPoint(pos fyne.Position) image.Point {
	return image.Pt(int(pos.X), int(pos.Y))
}

func toButton(b desktop.MouseButton) sketch.Button {
	switch b {
	case desktop.MouseButtonPrimary:
		return sketch.ButtonPrimary
	case desktop.MouseButtonSecondary:
		return sketch.ButtonSecondary
	default:
		return sketch.ButtonOther
	}
}

func toKey(name fyne.KeyName) (sketch.Key, bool) {
	switch name {
	case fyne.KeyEnter:
		return sketch.KeyEnter, true
	case fyne.KeyReturn:
		return sketch.KeyReturn, true
	case fyne.KeyBackspace:
		return sketch.KeyBackspace, true
	case fyne.KeyDelete:
		return sketch.KeyDelete, true
	}
	return sketch.KeyNone, false
}

// sketchSurfaceRenderer keeps the canvas buffer the same size as the widget
type sketchSurfaceRenderer struct {
	surface *SketchSurface
}

func (r *sketchSurfaceRenderer) Layout(size fyne.Size) {
	r.surface.raster.Resize(size)
	r.surface.sketch.Resize(int(size.Width), int(size.Height))
	r.surface.logger.WithFields(logrus.Fields{
		"width":  int(size.Width),
		"height": int(size.Height),
	}).Debug("GUI: Sketch surface resized")
}

func (r *sketchSurfaceRenderer) MinSize() fyne.Size {
	return fyne.NewSize(320, 240)
}

func (r *sketchSurfaceRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.surface.raster}
}

func (r *sketchSurfaceRenderer) Refresh() {
	r.surface.raster.Refresh()
}

func (r *sketchSurfaceRenderer) Destroy() {
}
