package core

import (
	"fmt"
	"strings"

	"gocv.io/x/gocv"
)

// ColorSpace selects the conversion applied to every raw BGR camera frame
// before filtering
type ColorSpace int

const (
	ColorSpaceRGB ColorSpace = iota
	ColorSpaceHSV
	ColorSpaceGray
)

// ColorSpaces lists the selectable color spaces in display order
func ColorSpaces() []ColorSpace {
	return []ColorSpace{ColorSpaceRGB, ColorSpaceHSV, ColorSpaceGray}
}

func (cs ColorSpace) String() string {
	switch cs {
	case ColorSpaceRGB:
		return "RGB"
	case ColorSpaceHSV:
		return "HSV"
	case ColorSpaceGray:
		return "GRAY"
	default:
		return fmt.Sprintf("ColorSpace(%d)", int(cs))
	}
}

// Code returns the OpenCV conversion from BGR into this color space
func (cs ColorSpace) Code() gocv.ColorConversionCode {
	switch cs {
	case ColorSpaceHSV:
		return gocv.ColorBGRToHSV
	case ColorSpaceGray:
		return gocv.ColorBGRToGray
	default:
		return gocv.ColorBGRToRGB
	}
}

// ParseColorSpace resolves RGB, HSV or GRAY (GREY and GRAYSCALE accepted),
// case-insensitively
func ParseColorSpace(name string) (ColorSpace, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "RGB":
		return ColorSpaceRGB, nil
	case "HSV":
		return ColorSpaceHSV, nil
	case "GRAY", "GREY", "GRAYSCALE":
		return ColorSpaceGray, nil
	}
	return ColorSpaceRGB, fmt.Errorf("unknown color space: %q", name)
}
