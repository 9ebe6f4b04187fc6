package algorithms

import (
	"image"

	"gocv.io/x/gocv"
)

// sharpenKernel has unity gain: 9 - 8 = 1
var sharpenKernel = [3][3]float32{
	{-1, -1, -1},
	{-1, 9, -1},
	{-1, -1, -1},
}

// Sharpen enhances edges with a 3x3 convolution
type Sharpen struct {
	toggle
}

// NewSharpen creates the sharpening filter
func NewSharpen() *Sharpen {
	return &Sharpen{}
}

func (s *Sharpen) Name() string { return NameSharpen }

func (s *Sharpen) Apply(frame gocv.Mat) gocv.Mat {
	kernel := gocv.NewMatWithSize(3, 3, gocv.MatTypeCV32F)
	defer kernel.Close()
	for row := range sharpenKernel {
		for col, v := range sharpenKernel[row] {
			kernel.SetFloatAt(row, col, v)
		}
	}

	dst := gocv.NewMat()
	gocv.Filter2D(frame, &dst, -1, kernel, image.Pt(-1, -1), 0, gocv.BorderDefault)
	return dst
}
