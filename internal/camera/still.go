package camera

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"
)

var supportedFormats = []string{".jpg", ".jpeg", ".png", ".tiff", ".tif", ".bmp"}

// Still serves one image file as an endless camera
type Still struct {
	path   string
	frame  gocv.Mat
	closed bool
}

// OpenStill loads path as a color image
func OpenStill(path string, logger logrus.FieldLogger) (*Still, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	log := logger.WithField("filepath", path)
	log.Debug("CAMERA: Loading still image")

	if !IsSupportedFormat(path) {
		return nil, fmt.Errorf("%w: unsupported image format: %s", ErrDeviceUnavailable, path)
	}

	mat := gocv.IMRead(path, gocv.IMReadColor)
	if mat.Empty() {
		mat.Close()
		return nil, fmt.Errorf("%w: failed to load image: %s", ErrDeviceUnavailable, path)
	}

	log.WithFields(logrus.Fields{
		"width":    mat.Cols(),
		"height":   mat.Rows(),
		"channels": mat.Channels(),
	}).Info("CAMERA: Still image loaded")

	return &Still{path: path, frame: mat}, nil
}

// Read copies the image into dst
func (s *Still) Read(dst *gocv.Mat) bool {
	if s.closed {
		return false
	}
	s.frame.CopyTo(dst)
	return true
}

func (s *Still) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.frame.Close()
}

// IsSupportedFormat reports whether path has an image extension OpenCV can load
func IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range supportedFormats {
		if ext == format {
			return true
		}
	}
	return false
}
