//go:build cgo && !novips

package imaging

import (
	"fmt"

	"github.com/h2non/bimg"
)

type vipsImage struct {
	buf    []byte
	width  int
	height int
	format Format
}

func (i *vipsImage) Width() int     { return i.width }
func (i *vipsImage) Height() int    { return i.height }
func (i *vipsImage) Format() Format { return i.format }

// VipsCodec processes images through libvips.
type VipsCodec struct {
	Quality int
}

func NewVipsCodec() *VipsCodec {
	return &VipsCodec{
		Quality: 85,
	}
}

const vipsAvailable = true

func newVipsCodec() (Codec, error) {
	return NewVipsCodec(), nil
}

func (c *VipsCodec) Decode(data []byte) (Image, error) {
	format, err := vipsFormat(bimg.DetermineImageType(data))
	if err != nil {
		return nil, err
	}

	size, err := bimg.NewImage(data).Size()
	if err != nil {
		return nil, fmt.Errorf("read image size: %w", err)
	}

	err = checkDimensions(size.Width, size.Height)
	if err != nil {
		return nil, err
	}

	return &vipsImage{
		buf:    data,
		width:  size.Width,
		height: size.Height,
		format: format,
	}, nil
}

func (c *VipsCodec) FitCrop(img Image, width int, height int, allowUpsize bool) (Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimension
	}

	src, ok := img.(*vipsImage)
	if !ok {
		return nil, fmt.Errorf("vips codec cannot process %T", img)
	}

	_, _, outW, outH := cropBox(src.width, src.height, width, height, allowUpsize)

	output, err := bimg.NewImage(src.buf).Process(bimg.Options{
		Width:   outW,
		Height:  outH,
		Crop:    true,
		Enlarge: allowUpsize,
		Gravity: bimg.GravityCentre,
		Quality: c.Quality,
		Type:    bimgType(src.format),
	})
	if err != nil {
		return nil, fmt.Errorf("crop image: %w", err)
	}

	return &vipsImage{
		buf:    output,
		width:  outW,
		height: outH,
		format: src.format,
	}, nil
}

func (c *VipsCodec) Encode(img Image) ([]byte, error) {
	src, ok := img.(*vipsImage)
	if !ok {
		return nil, fmt.Errorf("vips codec cannot encode %T", img)
	}

	return src.buf, nil
}

func vipsFormat(t bimg.ImageType) (Format, error) {
	switch t {
	case bimg.JPEG:
		return FormatJPEG, nil
	case bimg.PNG:
		return FormatPNG, nil
	case bimg.GIF:
		return FormatGIF, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

func bimgType(f Format) bimg.ImageType {
	switch f {
	case FormatPNG:
		return bimg.PNG
	case FormatGIF:
		return bimg.GIF
	default:
		return bimg.JPEG
	}
}
