package frame

import (
	"fmt"
	"image"
	"image/color"
)

// Buffer is a width×height grid of lit/unlit pixels.
type Buffer struct {
	width  int
	height int
	pix    []bool
	lit    int
}

// New allocates a cleared buffer. Both dimensions must be positive.
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("frame: invalid size %dx%d", width, height)
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]bool, width*height),
	}, nil
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// Bounds is the frame rectangle, for use with image.Point.In.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Clear unlights every pixel.
func (b *Buffer) Clear() {
	clear(b.pix)
	b.lit = 0
}

// Plot lights every in-frame point and returns how many points were inside.
// Points outside the frame are dropped, never clamped or wrapped.
func (b *Buffer) Plot(points []image.Point) int {
	drawn := 0
	for _, p := range points {
		if p.X < 0 || p.X >= b.width || p.Y < 0 || p.Y >= b.height {
			continue
		}
		i := p.Y*b.width + p.X
		if !b.pix[i] {
			b.pix[i] = true
			b.lit++
		}
		drawn++
	}
	return drawn
}

// Lit reports whether (x, y) is lit. Out-of-frame coordinates are never lit.
func (b *Buffer) Lit(x, y int) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	return b.pix[y*b.width+x]
}

// Count is the number of distinct lit pixels.
func (b *Buffer) Count() int { return b.lit }

// Image renders the buffer as white-on-black grayscale.
func (b *Buffer) Image() *image.Gray {
	img := image.NewGray(b.Bounds())
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.pix[y*b.width+x] {
				img.SetGray(x, y, color.Gray{Y: 0xff})
			}
		}
	}
	return img
}
