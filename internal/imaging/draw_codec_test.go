package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// encodeGrayPNG compresses to a few hundred KB even at bomb sizes.
func encodeGrayPNG(t *testing.T, w, h int) []byte {
	t.Helper()

	var buf bytes.Buffer
	encoder := png.Encoder{CompressionLevel: png.BestCompression}
	require.NoError(t, encoder.Encode(&buf, image.NewGray(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestDrawCodec_FitCropUpsizesPortraitToSquare(t *testing.T) {
	codec := NewDrawCodec()

	img, err := codec.Decode(encodePNG(t, 150, 300))
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, img.Format())
	assert.Equal(t, 150, img.Width())
	assert.Equal(t, 300, img.Height())

	thumb, err := codec.FitCrop(img, 200, 200, true)
	require.NoError(t, err)

	out, err := codec.Encode(thumb)
	require.NoError(t, err)

	decoded, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 200, decoded.Bounds().Dx())
	assert.Equal(t, 200, decoded.Bounds().Dy())
}

func TestDrawCodec_FitCropWithoutUpsizeKeepsSourceResolution(t *testing.T) {
	codec := NewDrawCodec()

	img, err := codec.Decode(encodePNG(t, 150, 300))
	require.NoError(t, err)

	thumb, err := codec.FitCrop(img, 200, 200, false)
	require.NoError(t, err)
	assert.Equal(t, 150, thumb.Width())
	assert.Equal(t, 150, thumb.Height())
}

func TestDrawCodec_FitCropDownscalesLandscape(t *testing.T) {
	codec := NewDrawCodec()

	img, err := codec.Decode(encodePNG(t, 800, 400))
	require.NoError(t, err)

	thumb, err := codec.FitCrop(img, 200, 200, false)
	require.NoError(t, err)
	assert.Equal(t, 200, thumb.Width())
	assert.Equal(t, 200, thumb.Height())
}

func TestDrawCodec_EncodeKeepsJPEGFormat(t *testing.T) {
	codec := NewDrawCodec()

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 320, 240)), nil))

	img, err := codec.Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, FormatJPEG, img.Format())

	thumb, err := codec.FitCrop(img, 200, 200, true)
	require.NoError(t, err)

	out, err := codec.Encode(thumb)
	require.NoError(t, err)

	_, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

func TestDrawCodec_DecodeRejectsGarbage(t *testing.T) {
	_, err := NewDrawCodec().Decode([]byte("definitely not an image"))
	assert.Error(t, err)
}

func TestDrawCodec_DecodeRejectsOversizedImage(t *testing.T) {
	data := encodeGrayPNG(t, 16000, 16000)
	require.Less(t, len(data), 2*1024*1024)

	_, err := NewDrawCodec().Decode(data)
	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestDrawCodec_DecodeAcceptsImageAtPixelLimit(t *testing.T) {
	img, err := NewDrawCodec().Decode(encodeGrayPNG(t, 8000, 5000))
	require.NoError(t, err)
	assert.Equal(t, 8000, img.Width())
	assert.Equal(t, 5000, img.Height())
}

func TestNewCodec(t *testing.T) {
	codec, err := NewCodec("draw")
	require.NoError(t, err)
	assert.IsType(t, &DrawCodec{}, codec)

	codec, err = NewCodec("")
	require.NoError(t, err)
	assert.NotNil(t, codec)
	if !vipsAvailable {
		assert.IsType(t, &DrawCodec{}, codec)
	}

	_, err = NewCodec("magick")
	assert.Error(t, err)
}

func TestFormatFromMIME(t *testing.T) {
	tests := []struct {
		mime   string
		format Format
		ok     bool
	}{
		{"image/jpeg", FormatJPEG, true},
		{"image/png", FormatPNG, true},
		{"image/gif", FormatGIF, true},
		{"image/webp", "", false},
		{"application/pdf", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			format, ok := FormatFromMIME(tt.mime)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.format, format)
		})
	}

	assert.Equal(t, "jpg", FormatJPEG.Extension())
	assert.Equal(t, "png", FormatPNG.Extension())
	assert.Equal(t, "image/gif", FormatGIF.ContentType())
}
