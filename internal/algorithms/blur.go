package algorithms

import (
	"image"

	"gocv.io/x/gocv"
)

// DefaultGaussianKernel is the blur kernel edge length
const DefaultGaussianKernel = 5

// GaussianBlur smooths the frame with a square kernel. Sigma is derived from
// the kernel size.
type GaussianBlur struct {
	toggle
	kernel int
}

// NewGaussianBlur creates a blur with the given kernel size
func NewGaussianBlur(kernel int) *GaussianBlur {
	return &GaussianBlur{kernel: oddKernel(kernel)}
}

func (g *GaussianBlur) Name() string { return NameGaussianBlur }

// Kernel returns the effective kernel size
func (g *GaussianBlur) Kernel() int { return g.kernel }

func (g *GaussianBlur) Apply(frame gocv.Mat) gocv.Mat {
	return blur(frame, g.kernel)
}

func blur(src gocv.Mat, kernel int) gocv.Mat {
	dst := gocv.NewMat()
	gocv.GaussianBlur(src, &dst, image.Pt(kernel, kernel), 0, 0, gocv.BorderDefault)
	return dst
}
