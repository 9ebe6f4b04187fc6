package algorithms

import (
	"gocv.io/x/gocv"
)

// Pencil sketch defaults
const (
	DefaultSketchKernel    = 21
	DefaultSketchScale     = 256
	DefaultSketchThreshold = 70
)

// PencilSketch turns the frame into a two-tone pencil drawing: a dodge blend
// of the grayscale frame with its blur, masked by a binary threshold of
// itself. The output is always single-channel.
type PencilSketch struct {
	toggle
	kernel    int
	scale     float32
	threshold float32
}

// NewPencilSketch creates the filter with the blur kernel, dodge scale and
// mask threshold
func NewPencilSketch(kernel int, scale, threshold float32) *PencilSketch {
	return &PencilSketch{
		kernel:    oddKernel(kernel),
		scale:     scale,
		threshold: threshold,
	}
}

func (p *PencilSketch) Name() string { return NamePencilSketch }

func (p *PencilSketch) Apply(frame gocv.Mat) gocv.Mat {
	gray := frame
	if frame.Channels() == 3 {
		gray = gocv.NewMat()
		defer gray.Close()
		gocv.CvtColor(frame, &gray, gocv.ColorRGBToGray)
	}

	blurred := blur(gray, p.kernel)
	defer blurred.Close()

	divided := p.divide(gray, blurred)
	defer divided.Close()

	mask := gocv.NewMat()
	defer mask.Close()
	gocv.Threshold(divided, &mask, p.threshold, 255, gocv.ThresholdBinary)

	dst := gocv.NewMat()
	gocv.BitwiseAnd(mask, divided, &dst)
	return dst
}

// divide computes saturate(src * scale / blurred) as 8-bit. The quotient is
// taken in float and saturated on the way back; pixels whose blur is 0 come
// out as 0.
func (p *PencilSketch) divide(src, blurred gocv.Mat) gocv.Mat {
	num := gocv.NewMat()
	defer num.Close()
	src.ConvertToWithParams(&num, gocv.MatTypeCV32F, p.scale, 0)

	den := gocv.NewMat()
	defer den.Close()
	blurred.ConvertTo(&den, gocv.MatTypeCV32F)

	quotient := gocv.NewMat()
	defer quotient.Close()
	gocv.Divide(num, den, &quotient)

	saturated := gocv.NewMat()
	defer saturated.Close()
	quotient.ConvertTo(&saturated, gocv.MatTypeCV8U)

	// x/0 is +Inf in float and its 8-bit conversion differs between CPUs
	nonZero := gocv.NewMat()
	defer nonZero.Close()
	gocv.Threshold(blurred, &nonZero, 0, 255, gocv.ThresholdBinary)

	dst := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), src.Rows(), src.Cols(), gocv.MatTypeCV8U)
	saturated.CopyToWithMask(&dst, nonZero)
	return dst
}
