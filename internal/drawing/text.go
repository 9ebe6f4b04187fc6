package drawing

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	firstPrintable = 32
	lastPrintable  = 126
)

// Text accumulates typed characters and renders them at the start point.
// The buffer only holds printable ASCII.
type Text struct {
	buf []byte
}

func (t *Text) Kind() Kind { return KindText }

// Append adds r to the buffer when it is printable ASCII and reports whether
// it was accepted
func (t *Text) Append(r rune) bool {
	if r < firstPrintable || r > lastPrintable {
		return false
	}
	t.buf = append(t.buf, byte(r))
	return true
}

// Backspace drops the last character, if any
func (t *Text) Backspace() {
	if len(t.buf) > 0 {
		t.buf = t.buf[:len(t.buf)-1]
	}
}

// Reset empties the buffer
func (t *Text) Reset() {
	t.buf = t.buf[:0]
}

func (t *Text) String() string {
	return string(t.buf)
}

// Draw writes the buffer with its baseline starting at start. end is unused.
func (t *Text) Draw(s *Surface, start, _ image.Point) {
	if len(t.buf) == 0 {
		return
	}
	s.Text(start, string(t.buf))
}

var faces = map[float64]font.Face{}

// FaceForSize returns the Go Regular face at size points, falling back to
// the fixed 7x13 face if the font cannot be loaded. Faces are cached per
// size; like the canvas, it is only called from the UI thread.
func FaceForSize(size float64) font.Face {
	if face, ok := faces[size]; ok {
		return face
	}

	var face font.Face = basicfont.Face7x13
	if size > 0 {
		if f, err := opentype.Parse(goregular.TTF); err == nil {
			if ff, err := opentype.NewFace(f, &opentype.FaceOptions{
				Size:    size,
				DPI:     72,
				Hinting: font.HintingFull,
			}); err == nil {
				face = ff
			}
		}
	}
	faces[size] = face
	return face
}

func drawString(dst *image.RGBA, src image.Image, face font.Face, at image.Point, text string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: face,
		Dot:  fixed.P(at.X, at.Y),
	}
	d.DrawString(text)
}
