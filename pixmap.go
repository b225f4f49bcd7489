package curvepaint

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
)

// Pixmap represents a rectangular pixel buffer.
// Pixels are stored as non-premultiplied RGBA, 4 bytes per pixel.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
// The flood fill engine operates on this slice in place.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	b := c.Bytes()
	p.data[i+0] = b[0]
	p.data[i+1] = b[1]
	p.data[i+2] = b[2]
	p.data[i+3] = b[3]
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// BlendPixel composites a color over the existing pixel (source-over).
// Used by the stroke rasterizer to honor stroke opacity.
func (p *Pixmap) BlendPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	if c.A >= 1 {
		p.SetPixel(x, y, c)
		return
	}
	if c.A <= 0 {
		return
	}

	existing := p.GetPixel(x, y)
	inv := 1 - c.A
	outA := c.A + existing.A*inv
	if outA <= 0 {
		p.SetPixel(x, y, Transparent)
		return
	}
	p.SetPixel(x, y, RGBA{
		R: (c.R*c.A + existing.R*existing.A*inv) / outA,
		G: (c.G*c.A + existing.G*existing.A*inv) / outA,
		B: (c.B*c.A + existing.B*existing.A*inv) / outA,
		A: outA,
	})
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	b := c.Bytes()
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = b[0]
		p.data[i+1] = b[1]
		p.data[i+2] = b[2]
		p.data[i+3] = b[3]
	}
}

// Clone returns a deep copy of the pixmap. Freezing a surface clones the
// current buffer so the snapshot cannot be mutated by later operations.
func (p *Pixmap) Clone() *Pixmap {
	out := NewPixmap(p.width, p.height)
	copy(out.data, p.data)
	return out
}

// CopyFrom overwrites the pixmap contents with those of src.
// Both pixmaps must have the same dimensions; mismatched sources are ignored.
func (p *Pixmap) CopyFrom(src *Pixmap) {
	if src == nil || src.width != p.width || src.height != p.height {
		return
	}
	copy(p.data, src.data)
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			pm.SetPixel(x, y, FromColor(c))
		}
	}

	return pm
}

// EncodePNG writes the pixmap as PNG to the given writer.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.ToImage())
}

// EncodeJPEG writes the pixmap as JPEG with the given quality (1-100).
func (p *Pixmap) EncodeJPEG(w io.Writer, quality int) error {
	return jpeg.Encode(w, p.ToImage(), &jpeg.Options{Quality: quality})
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return p.EncodePNG(f)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
