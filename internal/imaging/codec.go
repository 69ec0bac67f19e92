package imaging

import (
	"errors"
	"fmt"
	"strings"
)

type Format string

const (
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatGIF  Format = "gif"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrInvalidDimension  = errors.New("invalid image dimension")
	ErrImageTooLarge     = errors.New("image dimensions exceed limit")
)

// MaxPixels bounds width*height of a decoded image. A small compressed upload
// can expand to gigabytes once decoded.
const MaxPixels = 40_000_000

func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimension
	}
	if int64(width)*int64(height) > MaxPixels {
		return fmt.Errorf("%w: %dx%d", ErrImageTooLarge, width, height)
	}
	return nil
}

func (f Format) Extension() string {
	if f == FormatJPEG {
		return "jpg"
	}
	return string(f)
}

func (f Format) ContentType() string {
	return "image/" + string(f)
}

// FormatFromMIME maps a detected MIME type onto one of the accepted formats.
func FormatFromMIME(mime string) (Format, bool) {
	// mimetype may append parameters, e.g. "image/png; charset=binary"
	mime, _, _ = strings.Cut(mime, ";")

	switch strings.TrimSpace(strings.ToLower(mime)) {
	case "image/jpeg", "image/jpg", "image/pjpeg":
		return FormatJPEG, true
	case "image/png":
		return FormatPNG, true
	case "image/gif":
		return FormatGIF, true
	default:
		return "", false
	}
}

type Image interface {
	Width() int
	Height() int
	Format() Format
}

type Codec interface {
	Decode(data []byte) (Image, error)
	// FitCrop scales and center-crops img to exactly width x height without
	// distorting the aspect ratio. When allowUpsize is false and the source is
	// smaller than the target, the largest centered crop of the target aspect
	// ratio is returned at source resolution.
	FitCrop(img Image, width int, height int, allowUpsize bool) (Image, error)
	Encode(img Image) ([]byte, error)
}

const (
	CodecVips = "vips"
	CodecDraw = "draw"
)

func NewCodec(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case "":
		if !vipsAvailable {
			return NewDrawCodec(), nil
		}
		return newVipsCodec()
	case CodecVips:
		return newVipsCodec()
	case CodecDraw:
		return NewDrawCodec(), nil
	default:
		return nil, fmt.Errorf("unknown image codec %q", name)
	}
}

// cropBox returns the size of the largest centered region of src with the
// width:height aspect ratio, and the size the result should be scaled to.
func cropBox(srcW, srcH, width, height int, allowUpsize bool) (cropW, cropH, outW, outH int) {
	if srcW*height > srcH*width {
		cropH = srcH
		cropW = srcH * width / height
	} else {
		cropW = srcW
		cropH = srcW * height / width
	}

	if cropW < 1 {
		cropW = 1
	}
	if cropH < 1 {
		cropH = 1
	}

	if allowUpsize || cropW >= width {
		return cropW, cropH, width, height
	}

	return cropW, cropH, cropW, cropH
}
