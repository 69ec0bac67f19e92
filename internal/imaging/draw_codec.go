package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
)

type drawImage struct {
	img    image.Image
	format Format
}

func (i *drawImage) Width() int     { return i.img.Bounds().Dx() }
func (i *drawImage) Height() int    { return i.img.Bounds().Dy() }
func (i *drawImage) Format() Format { return i.format }

// DrawCodec is a pure Go codec for environments without libvips.
type DrawCodec struct {
	JPEGQuality int
}

func NewDrawCodec() *DrawCodec {
	return &DrawCodec{
		JPEGQuality: 85,
	}
}

func (c *DrawCodec) Decode(data []byte) (Image, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image header: %w", err)
	}

	err = checkDimensions(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	img, name, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	var format Format
	switch name {
	case "jpeg":
		format = FormatJPEG
	case "png":
		format = FormatPNG
	case "gif":
		format = FormatGIF
	default:
		return nil, ErrUnsupportedFormat
	}

	if img.Bounds().Dx() <= 0 || img.Bounds().Dy() <= 0 {
		return nil, ErrInvalidDimension
	}

	return &drawImage{img: img, format: format}, nil
}

func (c *DrawCodec) FitCrop(img Image, width int, height int, allowUpsize bool) (Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimension
	}

	src, ok := img.(*drawImage)
	if !ok {
		return nil, fmt.Errorf("draw codec cannot process %T", img)
	}

	bounds := src.img.Bounds()
	cropW, cropH, outW, outH := cropBox(bounds.Dx(), bounds.Dy(), width, height, allowUpsize)

	x0 := bounds.Min.X + (bounds.Dx()-cropW)/2
	y0 := bounds.Min.Y + (bounds.Dy()-cropH)/2
	cropRect := image.Rect(x0, y0, x0+cropW, y0+cropH)

	dst := image.NewRGBA(image.Rect(0, 0, outW, outH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src.img, cropRect, draw.Src, nil)

	return &drawImage{img: dst, format: src.format}, nil
}

func (c *DrawCodec) Encode(img Image) ([]byte, error) {
	src, ok := img.(*drawImage)
	if !ok {
		return nil, fmt.Errorf("draw codec cannot encode %T", img)
	}

	var buf bytes.Buffer
	var err error

	switch src.format {
	case FormatJPEG:
		err = jpeg.Encode(&buf, src.img, &jpeg.Options{Quality: c.JPEGQuality})
	case FormatPNG:
		err = png.Encode(&buf, src.img)
	case FormatGIF:
		err = gif.Encode(&buf, src.img, nil)
	default:
		return nil, ErrUnsupportedFormat
	}

	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", src.format, err)
	}

	return buf.Bytes(), nil
}
