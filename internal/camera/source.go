// internal/camera/source.go
// Frame sources: a live capture device or a still image served as a camera
package camera

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"
)

var ErrDeviceUnavailable = errors.New("camera device unavailable")

// Source yields raw BGR frames. Read returns false when no frame is ready.
type Source interface {
	Read(dst *gocv.Mat) bool
	Close() error
}

// Options selects and configures a source
type Options struct {
	Device int
	Source string // image path; when set it replaces the device
}

// Open returns a Still when a source path is set, otherwise a Device
func Open(opts Options, logger logrus.FieldLogger) (Source, error) {
	if opts.Source != "" {
		return OpenStill(opts.Source, logger)
	}
	return OpenDevice(opts.Device, logger)
}

// Device wraps an OpenCV video capture
type Device struct {
	id      int
	capture *gocv.VideoCapture
	logger  logrus.FieldLogger
}

// OpenDevice opens capture device id
func OpenDevice(id int, logger logrus.FieldLogger) (*Device, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	log := logger.WithField("device", id)
	log.Debug("CAMERA: Opening device")

	capture, err := gocv.OpenVideoCapture(id)
	if err != nil {
		return nil, fmt.Errorf("%w: device %d: %v", ErrDeviceUnavailable, id, err)
	}
	if !capture.IsOpened() {
		capture.Close()
		return nil, fmt.Errorf("%w: device %d", ErrDeviceUnavailable, id)
	}

	log.Info("CAMERA: Device opened")
	return &Device{id: id, capture: capture, logger: logger}, nil
}

func (d *Device) Read(dst *gocv.Mat) bool {
	if ok := d.capture.Read(dst); !ok {
		return false
	}
	return !dst.Empty()
}

func (d *Device) Close() error {
	d.logger.WithField("device", d.id).Info("CAMERA: Device closed")
	return d.capture.Close()
}
