// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package texture

import (
	"fmt"
	"image"
	"image/draw"
	"io"

	// Formats accepted for scene textures.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// channels returns the number of color channels that the
// decoded representation of m carries.
// Gray+alpha sources have no dedicated Go image type (the
// decoders widen them), so the 1-channel types are the
// rejected forms that remain observable.
func channels(m image.Image) int {
	switch m.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.Alpha, *image.Alpha16:
		return 1
	case *image.YCbCr:
		return 3
	default:
		return 4
	}
}

// Decode reads an encoded image and converts it into the
// tightly packed RGBA form that the driver uploads.
// Images whose decoded form carries other than 3 or 4
// channels are rejected. The rows are flipped so that the
// first row is the bottom of the image, matching the UV
// origin of the mesh primitives.
func Decode(r io.Reader) (*image.RGBA, error) {
	m, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf(prefix+"decode: %w", err)
	}
	if c := channels(m); c != 3 && c != 4 {
		return nil, fmt.Errorf("%w: %d channels", ErrChannels, c)
	}
	b := m.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), m, b.Min, draw.Src)
	flip(dst)
	return dst, nil
}

// flip reverses the row order of m in place.
func flip(m *image.RGBA) {
	h := m.Rect.Dy()
	tmp := make([]byte, m.Stride)
	for y := 0; y < h/2; y++ {
		top := m.Pix[y*m.Stride : (y+1)*m.Stride]
		bot := m.Pix[(h-1-y)*m.Stride : (h-y)*m.Stride]
		copy(tmp, top)
		copy(top, bot)
		copy(bot, tmp)
	}
}
