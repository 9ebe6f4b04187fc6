package gui

import (
	"image"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"camera-sketch/internal/algorithms"
	"camera-sketch/internal/camera"
	sketch "camera-sketch/internal/canvas"
	"camera-sketch/internal/config"
	"camera-sketch/internal/core"
	"camera-sketch/internal/drawing"
)

func TestToButton(t *testing.T) {
	assert.Equal(t, sketch.ButtonPrimary, toButton(desktop.MouseButtonPrimary))
	assert.Equal(t, sketch.ButtonSecondary, toButton(desktop.MouseButtonSecondary))
	assert.Equal(t, sketch.ButtonOther, toButton(desktop.MouseButtonTertiary))
}

func TestToKey(t *testing.T) {
	cases := map[fyne.KeyName]sketch.Key{
		fyne.KeyEnter:     sketch.KeyEnter,
		fyne.KeyReturn:    sketch.KeyReturn,
		fyne.KeyBackspace: sketch.KeyBackspace,
		fyne.KeyDelete:    sketch.KeyDelete,
	}
	for name, want := range cases {
		got, ok := toKey(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	_, ok := toKey(fyne.KeyEscape)
	assert.False(t, ok)
}

func TestToPointTruncates(t *testing.T) {
	assert.Equal(t, image.Pt(12, 7), toPoint(fyne.NewPos(12.9, 7.2)))
}

func mouse(x, y float32, button desktop.MouseButton) *desktop.MouseEvent {
	ev := &desktop.MouseEvent{Button: button}
	ev.Position = fyne.NewPos(x, y)
	return ev
}

func drag(x, y float32) *fyne.DragEvent {
	ev := &fyne.DragEvent{}
	ev.Position = fyne.NewPos(x, y)
	return ev
}

func TestSketchSurfaceForwardsGestures(t *testing.T) {
	test.NewApp()
	logger, _ := logtest.NewNullLogger()

	c := sketch.New(100, 80, sketch.WithLogger(logger))
	c.SetTool(drawing.New(drawing.KindLine))
	s := NewSketchSurface(c, logger)

	s.MouseDown(mouse(10, 10, desktop.MouseButtonPrimary))
	assert.True(t, c.Dragging())
	s.Dragged(drag(40, 10))
	s.DragEnd()
	assert.False(t, c.Dragging())

	// the release that follows the drag has nothing left to finish
	s.MouseUp(mouse(40, 10, desktop.MouseButtonPrimary))

	overlay := c.Overlay()
	assert.NotZero(t, overlay.RGBAAt(25, 10).A)
	assert.Zero(t, overlay.RGBAAt(25, 40).A)

	s.MouseDown(mouse(50, 50, desktop.MouseButtonSecondary))
	assert.Zero(t, c.Overlay().RGBAAt(25, 10).A)
}

func TestSketchSurfaceTyping(t *testing.T) {
	test.NewApp()
	logger, _ := logtest.NewNullLogger()

	c := sketch.New(200, 100, sketch.WithLogger(logger))
	c.SetTool(drawing.New(drawing.KindText))
	s := NewSketchSurface(c, logger)

	s.MouseDown(mouse(20, 60, desktop.MouseButtonPrimary))
	s.MouseUp(mouse(20, 60, desktop.MouseButtonPrimary))
	assert.Equal(t, image.Pt(20, 60), c.Anchor())

	for _, r := range "hi!" {
		s.TypedRune(r)
	}
	s.TypedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})
	s.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	require.Equal(t, "hi", c.Tool().(*drawing.Text).String())

	s.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	assert.Empty(t, c.Tool().(*drawing.Text).String())

	var painted bool
	for _, v := range c.Overlay().Pix {
		if v != 0 {
			painted = true
			break
		}
	}
	assert.True(t, painted)
}

func TestFilterPanelTogglesRegistry(t *testing.T) {
	test.NewApp()
	logger, _ := logtest.NewNullLogger()

	p := core.NewPipeline(algorithms.NewDefaultRegistry(algorithms.DefaultParams()), logger)
	fp := NewFilterPanel(p, logger)
	require.Len(t, fp.checks, 4)

	fp.checks[algorithms.NameCanny].SetChecked(true)
	f, _ := p.Filters().Get(algorithms.NameCanny)
	assert.True(t, f.Enabled())

	fp.checks[algorithms.NameCanny].SetChecked(false)
	assert.False(t, f.Enabled())

	fp.colorSpace.SetSelected("HSV")
	assert.Equal(t, core.ColorSpaceHSV, p.ColorSpace())
}

func TestApplicationTick(t *testing.T) {
	a := test.NewApp()
	logger, _ := logtest.NewNullLogger()

	path := filepath.Join(t.TempDir(), "frame.png")
	img := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 255, 0), 30, 40, gocv.MatTypeCV8UC3)
	defer img.Close()
	require.True(t, gocv.IMWrite(path, img))

	cfg := config.Default()
	cfg.Camera.Source = path
	src, err := camera.Open(cfg.CameraOptions(), logger)
	require.NoError(t, err)

	app := NewApplication(a, src, cfg, logger)
	app.tick()

	require.NotNil(t, app.cameraImage.Image)
	assert.Equal(t, image.Rect(0, 0, 40, 30), app.cameraImage.Image.Bounds())
	// BGR red arrives as RGB red
	r, g, b, _ := app.cameraImage.Image.At(0, 0).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0, 0}, [3]uint32{r, g, b})
	assert.Equal(t, uint64(1), app.stats.Snapshot().Processed)

	app.cleanup()
	app.tick()
	assert.Equal(t, uint64(1), app.stats.Snapshot().Processed)
	assert.Zero(t, app.stats.Snapshot().Skipped)
}

// stubSource hands out a fixed frame, or nothing when frame is nil
type stubSource struct {
	frame  *gocv.Mat
	reads  int
	closed bool
}

func (s *stubSource) Read(dst *gocv.Mat) bool {
	s.reads++
	if s.frame == nil {
		return false
	}
	s.frame.CopyTo(dst)
	return true
}

func (s *stubSource) Close() error {
	s.closed = true
	return nil
}

// newStubApplication returns an application with a line already drawn on
// the overlay and a placeholder camera image
func newStubApplication(t *testing.T, src camera.Source) (*Application, *logtest.Hook, image.Image) {
	t.Helper()
	logger, hook := logtest.NewNullLogger()
	app := NewApplication(test.NewApp(), src, config.Default(), logger)

	app.sketch.SetTool(drawing.New(drawing.KindLine))
	app.sketch.Press(image.Pt(10, 10), sketch.ButtonPrimary)
	app.sketch.Release(image.Pt(60, 10), sketch.ButtonPrimary)
	require.NotZero(t, app.sketch.Overlay().RGBAAt(30, 10).A)

	placeholder := image.NewRGBA(image.Rect(0, 0, 4, 4))
	app.cameraImage.Image = placeholder
	return app, hook, placeholder
}

func TestTickWithoutFrameIsSkipped(t *testing.T) {
	src := &stubSource{}
	app, hook, placeholder := newStubApplication(t, src)
	hook.Reset()

	app.tick()
	app.tick()

	assert.Equal(t, 2, src.reads)
	snap := app.stats.Snapshot()
	assert.Equal(t, uint64(2), snap.Skipped)
	assert.Zero(t, snap.Processed)
	assert.Same(t, placeholder, app.cameraImage.Image)
	assert.NotZero(t, app.sketch.Overlay().RGBAAt(30, 10).A)
	assert.Empty(t, hook.AllEntries())

	app.cleanup()
	assert.True(t, src.closed)
}

func TestTickDropsSingleChannelFrame(t *testing.T) {
	gray := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(90, 0, 0, 0), 12, 12, gocv.MatTypeCV8UC1)
	defer gray.Close()
	src := &stubSource{frame: &gray}
	app, hook, placeholder := newStubApplication(t, src)
	hook.Reset()

	app.tick()

	snap := app.stats.Snapshot()
	assert.Equal(t, uint64(1), snap.Skipped)
	assert.Zero(t, snap.Processed)
	assert.Same(t, placeholder, app.cameraImage.Image)
	assert.NotZero(t, app.sketch.Overlay().RGBAAt(30, 10).A)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.ErrorIs(t, entry.Data[logrus.ErrorKey].(error), core.ErrUnsupportedChannels)
}
