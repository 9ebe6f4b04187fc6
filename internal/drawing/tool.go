// Drawing tools used by the sketch canvas
package drawing

import (
	"fmt"
	"image"
	"strings"
)

// Kind identifies one of the drawing tool variants
type Kind int

const (
	KindPen Kind = iota
	KindLine
	KindRectangle
	KindCircle
	KindText
)

var kindNames = map[Kind]string{
	KindPen:       "Pen",
	KindLine:      "Line",
	KindRectangle: "Rectangle",
	KindCircle:    "Circle",
	KindText:      "Text",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds returns every tool variant in toolbar order
func Kinds() []Kind {
	return []Kind{KindRectangle, KindCircle, KindLine, KindPen, KindText}
}

// ParseKind resolves a tool name case-insensitively
func ParseKind(name string) (Kind, error) {
	for kind, n := range kindNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown drawing tool: %q", name)
}

// Tool renders a shape between two points onto a surface
type Tool interface {
	Kind() Kind
	Draw(s *Surface, start, end image.Point)
}

// New creates a fresh tool for the given kind
func New(kind Kind) Tool {
	switch kind {
	case KindLine:
		return &Line{}
	case KindRectangle:
		return &Rectangle{}
	case KindCircle:
		return &Circle{}
	case KindText:
		return &Text{}
	default:
		return &Pen{}
	}
}

// Pen draws one segment per call. Freehand strokes are built by the caller
// feeding consecutive positions.
type Pen struct{}

func (p *Pen) Kind() Kind { return KindPen }

func (p *Pen) Draw(s *Surface, start, end image.Point) {
	s.Line(start, end)
}

// Line draws a single straight segment
type Line struct{}

func (l *Line) Kind() Kind { return KindLine }

func (l *Line) Draw(s *Surface, start, end image.Point) {
	s.Line(start, end)
}

// Rectangle draws the border of the box spanned by the two points, whatever
// the drag direction
type Rectangle struct{}

func (r *Rectangle) Kind() Kind { return KindRectangle }

func (r *Rectangle) Draw(s *Surface, start, end image.Point) {
	s.Rect(NormalizedRect(start, end))
}

// NormalizedRect returns the box with Min at the top-left corner and Max at
// the bottom-right corner. Both corners are inclusive.
func NormalizedRect(a, b image.Point) image.Rectangle {
	return image.Rectangle{Min: a, Max: b}.Canon()
}

// Circle draws a circle centred on start. The radius is the Manhattan
// distance between the points, not the Euclidean one.
type Circle struct{}

func (c *Circle) Kind() Kind { return KindCircle }

func (c *Circle) Draw(s *Surface, start, end image.Point) {
	s.Circle(start, ManhattanRadius(start, end))
}

// ManhattanRadius returns |dx| + |dy|
func ManhattanRadius(a, b image.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
