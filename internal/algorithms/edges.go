package algorithms

import (
	"gocv.io/x/gocv"
)

// Default hysteresis thresholds
const (
	DefaultCannyLow  = 100
	DefaultCannyHigh = 200
)

// Canny runs the Canny edge detector. The output is always single-channel.
type Canny struct {
	toggle
	low, high float32
}

// NewCanny creates an edge detector with the given hysteresis thresholds
func NewCanny(low, high float32) *Canny {
	if low > high {
		low, high = high, low
	}
	return &Canny{low: low, high: high}
}

func (c *Canny) Name() string { return NameCanny }

// Thresholds returns the low and high thresholds
func (c *Canny) Thresholds() (float32, float32) { return c.low, c.high }

func (c *Canny) Apply(frame gocv.Mat) gocv.Mat {
	dst := gocv.NewMat()
	gocv.Canny(frame, &dst, c.low, c.high)
	return dst
}
