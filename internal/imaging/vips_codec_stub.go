//go:build !cgo || novips

package imaging

import "errors"

const vipsAvailable = false

var ErrVipsUnavailable = errors.New("vips codec not compiled in, build with cgo and without the novips tag")

func newVipsCodec() (Codec, error) {
	return nil, ErrVipsUnavailable
}
