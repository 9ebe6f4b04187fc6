// Frame validation and conversion for display
package core

import (
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

var (
	ErrEmptyFrame          = errors.New("frame is empty")
	ErrUnsupportedChannels = errors.New("unsupported number of channels")
)

// maxDimension guards against absurd frame sizes
const maxDimension = 16384

// ValidateFrame checks that mat is a non-empty 8-bit frame of sane size
func ValidateFrame(mat gocv.Mat) error {
	if mat.Empty() {
		return ErrEmptyFrame
	}

	if mat.Cols() <= 0 || mat.Rows() <= 0 {
		return fmt.Errorf("invalid dimensions: %dx%d", mat.Cols(), mat.Rows())
	}

	if mat.Cols() > maxDimension || mat.Rows() > maxDimension {
		return fmt.Errorf("frame too large: %dx%d (max: %d)", mat.Cols(), mat.Rows(), maxDimension)
	}

	return nil
}

// ToImage converts a processed frame for display. Three channel frames are
// read as R,G,B bytes, single channel frames as gray. Anything else is
// rejected with ErrUnsupportedChannels.
func ToImage(mat gocv.Mat) (image.Image, error) {
	if err := ValidateFrame(mat); err != nil {
		return nil, err
	}

	width, height := mat.Cols(), mat.Rows()
	data := mat.ToBytes()

	switch channels := mat.Channels(); channels {
	case 3:
		img := image.NewRGBA(image.Rect(0, 0, width, height))
		for i, j := 0, 0; i+2 < len(data) && j+3 < len(img.Pix); i, j = i+3, j+4 {
			img.Pix[j] = data[i]
			img.Pix[j+1] = data[i+1]
			img.Pix[j+2] = data[i+2]
			img.Pix[j+3] = 0xff
		}
		return img, nil
	case 1:
		img := image.NewGray(image.Rect(0, 0, width, height))
		copy(img.Pix, data)
		return img, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedChannels, channels)
	}
}
