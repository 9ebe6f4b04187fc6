// internal/core/pipeline.go
// Per-frame processing: color space conversion followed by the enabled filters
package core

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"camera-sketch/internal/algorithms"
)

// Pipeline converts each captured frame to the selected color space and
// runs every enabled filter over it in registration order
type Pipeline struct {
	filters    *algorithms.Registry
	colorSpace ColorSpace
	logger     logrus.FieldLogger
}

// NewPipeline creates a pipeline over the given filters, starting in RGB
func NewPipeline(filters *algorithms.Registry, logger logrus.FieldLogger) *Pipeline {
	if filters == nil {
		filters = algorithms.NewRegistry()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Pipeline{
		filters:    filters,
		colorSpace: ColorSpaceRGB,
		logger:     logger,
	}
}

// SetColorSpace changes the conversion used from the next frame on
func (p *Pipeline) SetColorSpace(cs ColorSpace) {
	if cs == p.colorSpace {
		return
	}
	p.logger.WithFields(logrus.Fields{
		"old": p.colorSpace,
		"new": cs,
	}).Info("PIPELINE: Color space changed")
	p.colorSpace = cs
}

// ColorSpace returns the current color space
func (p *Pipeline) ColorSpace() ColorSpace { return p.colorSpace }

// Filters returns the filter registry
func (p *Pipeline) Filters() *algorithms.Registry { return p.filters }

// Process returns a new frame built from a raw BGR frame. The input is never
// modified; the caller closes the result.
func (p *Pipeline) Process(frame gocv.Mat) (gocv.Mat, error) {
	if err := ValidateFrame(frame); err != nil {
		return gocv.NewMat(), fmt.Errorf("invalid camera frame: %w", err)
	}
	if ch := frame.Channels(); ch != 3 {
		return gocv.NewMat(), fmt.Errorf("camera frame: %w: %d", ErrUnsupportedChannels, ch)
	}

	current := gocv.NewMat()
	gocv.CvtColor(frame, &current, p.colorSpace.Code())

	for i, f := range p.filters.Filters() {
		if !f.Enabled() {
			continue
		}

		result := f.Apply(current)
		current.Close()
		current = result

		p.logger.WithFields(logrus.Fields{
			"step":     i,
			"filter":   f.Name(),
			"channels": current.Channels(),
		}).Trace("PIPELINE: Filter applied")
	}

	return current, nil
}
