// Package export renders two-dimensional planes of an image into standard
// library images and writes them in common file formats.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math/bits"

	"nativeimg/arrayimg"
	"nativeimg/pixel"

	"golang.org/x/image/draw"
)

var ErrPlane = errors.New("invalid plane")

// Plane renders the plane spanned by the first two dimensions of img into
// a 16-bit gray image, scaling values so the type's maximum maps to white.
// fixed holds the positions along every remaining dimension. A
// one-dimensional image renders as a single row.
func Plane(img *arrayimg.Img[uint64], fixed ...int64) (*image.Gray16, error) {
	dims := img.Dimensions()
	width, height := dims[0], int64(1)
	if len(dims) > 1 {
		height = dims[1]
	}
	if extra := max(len(dims)-2, 0); len(fixed) != extra {
		return nil, fmt.Errorf("%w: %d fixed positions for %d dimensions", ErrPlane, len(fixed), len(dims))
	}
	if width*height > int64(maxPlanePixels) {
		return nil, fmt.Errorf("%w: %dx%d is too large", ErrPlane, width, height)
	}

	pos := make([]int64, len(dims))
	copy(pos[min(len(dims), 2):], fixed)
	offset, err := img.Index(pos...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPlane, err)
	}
	c, err := img.CursorRange(offset, width*height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPlane, err)
	}

	peak := pixel.MaxValue(img.Type())
	dest := image.NewGray16(image.Rect(0, 0, int(width), int(height)))
	for y := range int(height) {
		for x := range int(width) {
			dest.SetGray16(x, y, color.Gray16{Y: scale16(c.Next(), peak)})
		}
	}
	return dest, nil
}

const maxPlanePixels = 1 << 28

// scale16 maps v in [0, peak] to [0, 0xffff].
func scale16(v, peak uint64) uint16 {
	if peak == 0xffff {
		return uint16(v)
	}
	hi, lo := bits.Mul64(v, 0xffff)
	q, _ := bits.Div64(hi, lo, peak)
	return uint16(q)
}

// Repalette maps img onto pal, optionally with Floyd-Steinberg dithering.
func Repalette(img image.Image, pal color.Palette, dither bool) *image.Paletted {
	sr := img.Bounds()
	dr := image.Rect(0, 0, sr.Dx(), sr.Dy())
	dest := image.NewPaletted(dr, pal)
	if dither {
		draw.FloydSteinberg.Draw(dest, dr, img, sr.Min)
	} else {
		draw.Draw(dest, dr, img, sr.Min, draw.Src)
	}
	return dest
}

// Scale enlarges img by an integer factor with nearest-neighbour sampling.
// Paletted sources keep their palette.
func Scale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	sr := img.Bounds()
	dr := image.Rect(0, 0, sr.Dx()*factor, sr.Dy()*factor)

	var dest draw.Image
	switch src := img.(type) {
	case *image.Paletted:
		dest = image.NewPaletted(dr, src.Palette)
	case *image.Gray16:
		dest = image.NewGray16(dr)
	default:
		dest = image.NewRGBA64(dr)
	}
	draw.NearestNeighbor.Scale(dest, dr, img, sr, draw.Src, nil)
	return dest
}
