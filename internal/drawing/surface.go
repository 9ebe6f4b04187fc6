// Raster primitives for the sketch overlay
package drawing

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
)

// Default pen used by the canvas
var (
	DefaultColor = color.RGBA{R: 255, A: 255}
	DefaultWidth = 2
)

// Surface binds a target image to the pen used to draw on it
type Surface struct {
	Img   *image.RGBA
	Color color.RGBA
	Width int
	Face  font.Face
}

// NewSurface creates a surface drawing on img with the default pen
func NewSurface(img *image.RGBA) *Surface {
	return &Surface{
		Img:   img,
		Color: DefaultColor,
		Width: DefaultWidth,
		Face:  FaceForSize(0),
	}
}

// Line draws a segment using Bresenham's algorithm with a square brush of
// Width pixels
func (s *Surface) Line(p1, p2 image.Point) {
	dx := abs(p2.X - p1.X)
	dy := abs(p2.Y - p1.Y)
	sx := -1
	if p1.X < p2.X {
		sx = 1
	}
	sy := -1
	if p1.Y < p2.Y {
		sy = 1
	}
	err := dx - dy

	x, y := p1.X, p1.Y
	for {
		s.plot(x, y)
		if x == p2.X && y == p2.Y {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// Rect draws the border of r. Min and Max are both on the border.
func (s *Surface) Rect(r image.Rectangle) {
	s.Line(image.Pt(r.Min.X, r.Min.Y), image.Pt(r.Max.X, r.Min.Y))
	s.Line(image.Pt(r.Max.X, r.Min.Y), image.Pt(r.Max.X, r.Max.Y))
	s.Line(image.Pt(r.Max.X, r.Max.Y), image.Pt(r.Min.X, r.Max.Y))
	s.Line(image.Pt(r.Min.X, r.Max.Y), image.Pt(r.Min.X, r.Min.Y))
}

// Circle draws a circle outline of the given radius. Widths above one are
// drawn as concentric rings around the radius.
func (s *Surface) Circle(c image.Point, radius int) {
	width := s.Width
	if width <= 1 {
		s.ring(c, radius)
		return
	}
	start := -width / 2
	for i := 0; i < width; i++ {
		if rr := radius + start + i; rr >= 0 {
			s.ring(c, rr)
		}
	}
}

// Text draws str with the baseline origin at p
func (s *Surface) Text(p image.Point, str string) {
	face := s.Face
	if face == nil {
		face = FaceForSize(0)
	}
	drawString(s.Img, image.NewUniform(s.Color), face, p, str)
}

// Clear resets every pixel to fully transparent
func (s *Surface) Clear() {
	draw.Draw(s.Img, s.Img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

// ring draws a one pixel midpoint circle
func (s *Surface) ring(c image.Point, r int) {
	x, y := r, 0
	err := 1 - r
	for x >= y {
		s.set(c.X+x, c.Y+y)
		s.set(c.X+y, c.Y+x)
		s.set(c.X-y, c.Y+x)
		s.set(c.X-x, c.Y+y)
		s.set(c.X-x, c.Y-y)
		s.set(c.X-y, c.Y-x)
		s.set(c.X+y, c.Y-x)
		s.set(c.X+x, c.Y-y)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2 * (y - x + 1)
		}
	}
}

// plot stamps the brush with its top-left pixel offset so a width of N
// covers exactly N pixels in each direction
func (s *Surface) plot(x, y int) {
	w := s.Width
	if w <= 1 {
		s.set(x, y)
		return
	}
	lo := -(w - 1) / 2
	hi := w / 2
	for dy := lo; dy <= hi; dy++ {
		for dx := lo; dx <= hi; dx++ {
			s.set(x+dx, y+dy)
		}
	}
}

func (s *Surface) set(x, y int) {
	if image.Pt(x, y).In(s.Img.Rect) {
		s.Img.SetRGBA(x, y, s.Color)
	}
}
