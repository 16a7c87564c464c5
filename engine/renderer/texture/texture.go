// package texture provides the CPU-side 2D texture that backs the lit
// program's bound sampler: RGBA float texels with the wrap and filter behavior
// a host sampler would apply.
package texture

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
	xdraw "golang.org/x/image/draw"

	"github.com/shadeworks/fragpass-go/common"
)

// FilterMode selects how Sample interpolates between texels.
type FilterMode int

const (
	// FilterBilinear blends the four texels nearest the sample point.
	FilterBilinear FilterMode = iota

	// FilterNearest snaps the sample point to the nearest texel.
	FilterNearest
)

// WrapMode selects how texture coordinates outside [0, 1] are handled.
type WrapMode int

const (
	// WrapRepeat tiles the texture (GL_REPEAT, the GL default).
	WrapRepeat WrapMode = iota

	// WrapClampToEdge clamps coordinates to the edge texel (GL_CLAMP_TO_EDGE).
	WrapClampToEdge
)

// Texture2D holds decoded RGBA texels and sampler state for CPU-side sampling.
// Texels are stored row-major with the first row at the top of the source
// image; Sample flips V so that v=0 addresses the bottom row, matching GL
// texture coordinate convention.
type Texture2D struct {
	width  int
	height int
	texels []mgl32.Vec4

	filter FilterMode
	wrapU  WrapMode
	wrapV  WrapMode
}

// Texture2DOption is a function that configures a Texture2D during construction.
type Texture2DOption func(*Texture2D)

// WithFilter is an option builder that sets the filter mode of the texture.
//
// Parameters:
//   - mode: the filter mode to sample with
//
// Returns:
//   - Texture2DOption: a function that applies the filter option to a Texture2D
func WithFilter(mode FilterMode) Texture2DOption {
	return func(t *Texture2D) {
		t.filter = mode
	}
}

// WithWrap is an option builder that sets the wrap mode for both coordinate axes.
//
// Parameters:
//   - mode: the wrap mode applied to U and V
//
// Returns:
//   - Texture2DOption: a function that applies the wrap option to a Texture2D
func WithWrap(mode WrapMode) Texture2DOption {
	return func(t *Texture2D) {
		t.wrapU = mode
		t.wrapV = mode
	}
}

// NewFromTexels creates a Texture2D from pre-built RGBA float texels.
//
// Parameters:
//   - width: texture width in texels
//   - height: texture height in texels
//   - texels: row-major RGBA texels, len must be width*height
//   - options: variadic list of Texture2DOption functions
//
// Returns:
//   - *Texture2D: the constructed texture
//   - error: an error if the texel slice does not match the dimensions
func NewFromTexels(width, height int, texels []mgl32.Vec4, options ...Texture2DOption) (*Texture2D, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("texture dimensions %dx%d are invalid", width, height)
	}
	if len(texels) != width*height {
		return nil, fmt.Errorf("texture has %d texels, want %d for %dx%d", len(texels), width*height, width, height)
	}
	t := &Texture2D{
		width:  width,
		height: height,
		texels: texels,
	}
	for _, opt := range options {
		opt(t)
	}
	return t, nil
}

// NewSolid creates a 1x1 texture of a single color. Sampling it at any
// coordinate returns the color unchanged, which makes it the identity element
// of the lit program's texture modulation.
//
// Parameters:
//   - color: the RGBA color of the single texel
//
// Returns:
//   - *Texture2D: the constructed texture
func NewSolid(color mgl32.Vec4) *Texture2D {
	t, _ := NewFromTexels(1, 1, []mgl32.Vec4{color})
	return t
}

// NewFromImage creates a Texture2D from a decoded image, converting each pixel
// to normalized RGBA floats. When resize dimensions are requested the image is
// rescaled with a bilinear kernel first.
//
// Parameters:
//   - img: the source image
//   - options: variadic list of Texture2DOption functions
//
// Returns:
//   - *Texture2D: the constructed texture
//   - error: an error if the image is empty
func NewFromImage(img image.Image, options ...Texture2DOption) (*Texture2D, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("image is empty")
	}

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.Draw(rgba, rgba.Bounds(), img, bounds.Min, xdraw.Src)

	return NewFromTexels(width, height, pixToTexels(rgba.Pix, width, height), options...)
}

// NewFromImported creates a Texture2D by decoding an imported texture's bytes
// or file path.
//
// Parameters:
//   - imported: the imported texture reference to decode
//   - options: variadic list of Texture2DOption functions
//
// Returns:
//   - *Texture2D: the constructed texture
//   - error: an error if decoding fails
func NewFromImported(imported *common.ImportedTexture, options ...Texture2DOption) (*Texture2D, error) {
	pix, width, height, err := imported.Decode()
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", common.Coalesce(imported.Name, imported.Path, "<unnamed>"), err)
	}
	return NewFromTexels(int(width), int(height), pixToTexels(pix, int(width), int(height)), options...)
}

// Resized returns a copy of the texture rescaled to the requested dimensions
// using a bilinear kernel, preserving sampler state.
//
// Parameters:
//   - width: target width in texels
//   - height: target height in texels
//
// Returns:
//   - *Texture2D: the rescaled texture
//   - error: an error if the target dimensions are invalid
func (t *Texture2D) Resized(width, height int) (*Texture2D, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("resize dimensions %dx%d are invalid", width, height)
	}

	src := image.NewRGBA(image.Rect(0, 0, t.width, t.height))
	for i, texel := range t.texels {
		src.Pix[i*4+0] = floatToByte(texel.X())
		src.Pix[i*4+1] = floatToByte(texel.Y())
		src.Pix[i*4+2] = floatToByte(texel.Z())
		src.Pix[i*4+3] = floatToByte(texel.W())
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	resized, err := NewFromTexels(width, height, pixToTexels(dst.Pix, width, height))
	if err != nil {
		return nil, err
	}
	resized.filter = t.filter
	resized.wrapU = t.wrapU
	resized.wrapV = t.wrapV
	return resized, nil
}

// Width returns the texture width in texels.
//
// Returns:
//   - int: the width
func (t *Texture2D) Width() int {
	return t.width
}

// Height returns the texture height in texels.
//
// Returns:
//   - int: the height
func (t *Texture2D) Height() int {
	return t.height
}

// Sample samples the texture at the given coordinates, applying the texture's
// wrap and filter modes. v=0 addresses the bottom row of the source image.
//
// Parameters:
//   - u: the horizontal texture coordinate
//   - v: the vertical texture coordinate
//
// Returns:
//   - mgl32.Vec4: the sampled RGBA color
func (t *Texture2D) Sample(u, v float32) mgl32.Vec4 {
	if t.filter == FilterNearest {
		x := int(wrapCoord(u, t.wrapU) * float32(t.width))
		// The V flip maps v=0 to exactly height; pull it back onto the bottom row.
		y := min(int((1.0-wrapCoord(v, t.wrapV))*float32(t.height)), t.height-1)
		return t.fetch(x, y)
	}

	// Bilinear: sample between texel centers.
	fx := wrapCoord(u, t.wrapU)*float32(t.width) - 0.5
	fy := (1.0-wrapCoord(v, t.wrapV))*float32(t.height) - 0.5
	x0 := floorInt(fx)
	y0 := floorInt(fy)
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	c00 := t.fetch(x0, y0)
	c10 := t.fetch(x0+1, y0)
	c01 := t.fetch(x0, y0+1)
	c11 := t.fetch(x0+1, y0+1)

	top := c00.Mul(1 - tx).Add(c10.Mul(tx))
	bottom := c01.Mul(1 - tx).Add(c11.Mul(tx))
	return top.Mul(1 - ty).Add(bottom.Mul(ty))
}

// fetch reads the texel at integer coordinates, applying the wrap mode per axis.
func (t *Texture2D) fetch(x, y int) mgl32.Vec4 {
	x = wrapTexel(x, t.width, t.wrapU)
	y = wrapTexel(y, t.height, t.wrapV)
	return t.texels[y*t.width+x]
}

// wrapCoord maps a texture coordinate into [0, 1) per the wrap mode.
func wrapCoord(c float32, mode WrapMode) float32 {
	switch mode {
	case WrapClampToEdge:
		if c < 0 {
			return 0
		}
		if c >= 1 {
			// Just inside the far edge so the texel index stays in bounds.
			return almostOne
		}
		return c
	default: // WrapRepeat
		c = c - floorF(c)
		if c < 0 {
			c += 1
		}
		return c
	}
}

// wrapTexel maps an integer texel index into [0, size) per the wrap mode.
func wrapTexel(x, size int, mode WrapMode) int {
	switch mode {
	case WrapClampToEdge:
		if x < 0 {
			return 0
		}
		if x >= size {
			return size - 1
		}
		return x
	default: // WrapRepeat
		x %= size
		if x < 0 {
			x += size
		}
		return x
	}
}

// almostOne is the largest float32 strictly below 1.0.
const almostOne = float32(0.99999994)

func floorF(f float32) float32 {
	return float32(floorInt(f))
}

func floorInt(f float32) int {
	i := int(f)
	if f < 0 && float32(i) != f {
		i--
	}
	return i
}

// pixToTexels converts 8-bit RGBA pixel bytes to normalized float texels.
func pixToTexels(pix []byte, width, height int) []mgl32.Vec4 {
	texels := make([]mgl32.Vec4, width*height)
	for i := range texels {
		texels[i] = mgl32.Vec4{
			float32(pix[i*4+0]) / 255.0,
			float32(pix[i*4+1]) / 255.0,
			float32(pix[i*4+2]) / 255.0,
			float32(pix[i*4+3]) / 255.0,
		}
	}
	return texels
}

// floatToByte converts a normalized color channel to an 8-bit value, clamping
// out-of-range input.
func floatToByte(f float32) byte {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return byte(f*255.0 + 0.5)
}
