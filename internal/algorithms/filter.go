// Frame filters applied by the capture pipeline
package algorithms

import (
	"gocv.io/x/gocv"
)

// Filter transforms one frame into a new one and carries an on/off switch.
// Apply never modifies its input; the caller owns and closes the result.
type Filter interface {
	Name() string
	Apply(frame gocv.Mat) gocv.Mat
	Enabled() bool
	SetEnabled(enabled bool)
	Toggle()
}

// Filter names as shown in the UI
const (
	NameGaussianBlur = "Gaussian Blur"
	NameCanny        = "Canny"
	NameSharpen      = "Sharpen"
	NamePencilSketch = "Pencil Sketch"
)

// toggle implements the enabled flag shared by all filters. Filters start off.
type toggle struct {
	enabled bool
}

func (t *toggle) Enabled() bool { return t.enabled }

func (t *toggle) SetEnabled(enabled bool) { t.enabled = enabled }

func (t *toggle) Toggle() { t.enabled = !t.enabled }

// oddKernel rounds even kernel sizes up, OpenCV rejects them
func oddKernel(size int) int {
	if size < 1 {
		return 1
	}
	if size%2 == 0 {
		return size + 1
	}
	return size
}
