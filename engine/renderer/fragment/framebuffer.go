package fragment

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/shadeworks/fragpass-go/common"
)

// Framebuffer is the color target a dispatch writes into: one unclamped RGBA
// value per fragment. It carries no depth or stencil state; fragment ordering
// and output merging are the surrounding pipeline's concern.
type Framebuffer struct {
	width  int
	height int
	pixels []mgl32.Vec4
}

// NewFramebuffer creates a zero-initialized framebuffer.
//
// Parameters:
//   - width: target width in pixels
//   - height: target height in pixels
//
// Returns:
//   - *Framebuffer: the framebuffer
//   - error: an error if the dimensions are invalid
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("framebuffer dimensions %dx%d are invalid", width, height)
	}
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]mgl32.Vec4, width*height),
	}, nil
}

// Width returns the framebuffer width in pixels.
//
// Returns:
//   - int: the width
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the framebuffer height in pixels.
//
// Returns:
//   - int: the height
func (f *Framebuffer) Height() int {
	return f.height
}

// At retrieves the color written at a pixel.
//
// Parameters:
//   - x: the pixel column
//   - y: the pixel row
//
// Returns:
//   - mgl32.Vec4: the RGBA value at the pixel
func (f *Framebuffer) At(x, y int) mgl32.Vec4 {
	return f.pixels[y*f.width+x]
}

// Set writes the color at a pixel.
//
// Parameters:
//   - x: the pixel column
//   - y: the pixel row
//   - color: the RGBA value to write
func (f *Framebuffer) Set(x, y int, color mgl32.Vec4) {
	f.pixels[y*f.width+x] = color
}

// Pixels retrieves the backing pixel slice in row-major order. The slice is
// live; mutating it mutates the framebuffer.
//
// Returns:
//   - []mgl32.Vec4: the row-major pixel data
func (f *Framebuffer) Pixels() []mgl32.Vec4 {
	return f.pixels
}

// Bytes retrieves a raw byte view of the pixel data for readback-style export.
// The view shares memory with the framebuffer.
//
// Returns:
//   - []byte: the pixel data as bytes
func (f *Framebuffer) Bytes() []byte {
	return common.SliceToBytes(f.pixels)
}
