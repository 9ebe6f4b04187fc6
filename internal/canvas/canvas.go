// Sketch canvas: interaction state machine over a persistent overlay buffer
package canvas

import (
	"image"
	"image/color"

	"github.com/sirupsen/logrus"

	"camera-sketch/internal/drawing"
)

// DefaultAnchor is where typed text goes before the first click
var DefaultAnchor = image.Pt(50, 50)

// Style is the pen applied to every tool
type Style struct {
	Color    color.RGBA
	Width    int
	TextSize float64
}

// Canvas owns the user drawn overlay and turns pointer and key events into
// drawing operations through the active tool. It is not safe for concurrent
// use; every call is expected on the UI thread.
type Canvas struct {
	overlay *image.RGBA
	tool    drawing.Tool

	anchor   image.Point
	current  image.Point
	previous image.Point
	dragging bool

	style     Style
	logger    logrus.FieldLogger
	onRepaint func()
}

// Option configures a Canvas
type Option func(*Canvas)

// WithStyle sets the pen used for every tool
func WithStyle(style Style) Option {
	return func(c *Canvas) { c.style = style }
}

// WithLogger sets the logger
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Canvas) { c.logger = logger }
}

// WithRepaint sets the callback used to ask the shell for a repaint
func WithRepaint(fn func()) Option {
	return func(c *Canvas) { c.onRepaint = fn }
}

// DefaultStyle returns the red 2px pen
func DefaultStyle() Style {
	return Style{
		Color: drawing.DefaultColor,
		Width: drawing.DefaultWidth,
	}
}

// New creates a canvas with a fully transparent overlay of the given size and
// the Pen tool selected
func New(width, height int, opts ...Option) *Canvas {
	c := &Canvas{
		overlay:  newOverlay(width, height),
		tool:     drawing.New(drawing.KindPen),
		anchor:   DefaultAnchor,
		previous: DefaultAnchor,
		current:  DefaultAnchor,
		style:    DefaultStyle(),
		logger:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func newOverlay(width, height int) *image.RGBA {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

// Overlay returns the committed drawing buffer
func (c *Canvas) Overlay() *image.RGBA { return c.overlay }

// Tool returns the active tool
func (c *Canvas) Tool() drawing.Tool { return c.tool }

// Dragging reports whether a primary button gesture is in progress
func (c *Canvas) Dragging() bool { return c.dragging }

// Anchor returns the point where the current or last gesture started
func (c *Canvas) Anchor() image.Point { return c.anchor }

// SetTool replaces the active tool. A Text tool always starts empty.
func (c *Canvas) SetTool(tool drawing.Tool) {
	if tool == nil {
		return
	}
	if txt, ok := tool.(*drawing.Text); ok {
		txt.Reset()
	}
	c.tool = tool
	c.logger.WithField("tool", tool.Kind()).Debug("Active tool changed")
	c.repaint()
}

// Clear resets the overlay to fully transparent
func (c *Canvas) Clear() {
	c.surface(c.overlay).Clear()
	c.logger.Debug("Canvas cleared")
	c.repaint()
}

// Resize reallocates the overlay for the new viewport. Existing content is
// discarded.
func (c *Canvas) Resize(width, height int) {
	b := c.overlay.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return
	}
	c.overlay = newOverlay(width, height)
	c.logger.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
	}).Debug("Canvas resized, overlay reset")
	c.repaint()
}

// Press handles a pointer button going down
func (c *Canvas) Press(p image.Point, button Button) {
	switch button {
	case ButtonPrimary:
		c.anchor, c.previous, c.current = p, p, p
		c.dragging = true
		c.logger.WithFields(logrus.Fields{
			"tool":  c.tool.Kind(),
			"point": p,
		}).Debug("Gesture started")
		c.repaint()
	case ButtonSecondary:
		if !c.dragging {
			c.Clear()
		}
	}
}

// Move handles pointer motion. It only has an effect while dragging.
func (c *Canvas) Move(p image.Point) {
	if !c.dragging {
		return
	}
	c.current = p
	if c.tool.Kind() == drawing.KindPen {
		c.tool.Draw(c.surface(c.overlay), c.previous, c.current)
	}
	c.previous = c.current
	c.repaint()
}

// Release handles a pointer button going up and commits the shape for tools
// other than Pen and Text
func (c *Canvas) Release(p image.Point, button Button) {
	if button != ButtonPrimary || !c.dragging {
		return
	}
	c.current = p
	c.dragging = false

	switch c.tool.Kind() {
	case drawing.KindPen, drawing.KindText:
	default:
		c.tool.Draw(c.surface(c.overlay), c.anchor, c.current)
		c.logger.WithFields(logrus.Fields{
			"tool":  c.tool.Kind(),
			"start": c.anchor,
			"end":   c.current,
		}).Debug("Shape committed")
	}
	c.repaint()
}

// KeyDown feeds a keystroke to the Text tool. Other tools ignore keys.
func (c *Canvas) KeyDown(ev KeyEvent) {
	txt, ok := c.tool.(*drawing.Text)
	if !ok {
		return
	}

	switch ev.Key {
	case KeyEnter, KeyReturn:
		txt.Draw(c.surface(c.overlay), c.anchor, c.current)
		c.logger.WithFields(logrus.Fields{
			"text":   txt.String(),
			"anchor": c.anchor,
		}).Debug("Text committed")
		txt.Reset()
	case KeyBackspace, KeyDelete:
		txt.Backspace()
	case KeyNone:
		if !txt.Append(ev.Rune) {
			return
		}
	default:
		return
	}
	c.repaint()
}

// Composite returns a copy of the overlay with the uncommitted preview drawn
// on top: the shape being dragged for non-Pen tools, and the pending text
// whenever the Text tool is active. The overlay itself is not touched.
func (c *Canvas) Composite() *image.RGBA {
	out := image.NewRGBA(c.overlay.Bounds())
	copy(out.Pix, c.overlay.Pix)

	switch c.tool.Kind() {
	case drawing.KindText:
		c.tool.Draw(c.surface(out), c.anchor, c.current)
	case drawing.KindPen:
	default:
		if c.dragging {
			c.tool.Draw(c.surface(out), c.anchor, c.current)
		}
	}
	return out
}

func (c *Canvas) surface(img *image.RGBA) *drawing.Surface {
	s := drawing.NewSurface(img)
	s.Color = c.style.Color
	s.Width = c.style.Width
	s.Face = drawing.FaceForSize(c.style.TextSize)
	return s
}

func (c *Canvas) repaint() {
	if c.onRepaint != nil {
		c.onRepaint()
	}
}
