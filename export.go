package curvepaint

import (
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Format selects the encoding for an exported artifact.
type Format int

const (
	// FormatPNG encodes the artifact as PNG (lossless, default).
	FormatPNG Format = iota
	// FormatJPEG encodes the artifact as JPEG.
	FormatJPEG
)

// ExportOptions configures Export.
type ExportOptions struct {
	// Footer appends a textual band below the image listing the distinct
	// expressions frozen into the artwork, joined by Separator. With no
	// frozen expressions the footer is omitted entirely.
	Footer bool

	// Separator joins the expression texts. Empty means ", ".
	Separator string

	// TextColor is the footer text color. The zero value means black.
	TextColor RGBA

	Format Format

	// JPEGQuality is the JPEG encoding quality (1-100); 0 means 90.
	JPEGQuality int
}

// footerFontOnce parses the embedded Go Regular font a single time.
var (
	footerFontOnce sync.Once
	footerFont     *opentype.Font
	footerFontErr  error
)

func loadFooterFont() (*opentype.Font, error) {
	footerFontOnce.Do(func() {
		footerFont, footerFontErr = opentype.Parse(goregular.TTF)
	})
	return footerFont, footerFontErr
}

// Export encodes the surface's pixel buffer to w, optionally extended below
// with a footer listing the expressions used in the artwork.
func Export(w io.Writer, s *Surface, o ExportOptions) error {
	if s == nil || s.Pixmap() == nil {
		return &BufferAccessError{Reason: "surface has no pixel buffer"}
	}

	img := s.Pixmap().ToImage()

	exprs := s.UsedExpressions()
	if o.Footer && len(exprs) > 0 {
		withFooter, err := appendFooter(img, s, exprs, o)
		if err != nil {
			return fmt.Errorf("curvepaint: render footer: %w", err)
		}
		img = withFooter
	}

	switch o.Format {
	case FormatJPEG:
		quality := o.JPEGQuality
		if quality <= 0 {
			quality = 90
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	default:
		return png.Encode(w, img)
	}
}

// appendFooter returns a copy of img extended below by a band of rendered
// expression text.
func appendFooter(img *image.NRGBA, s *Surface, exprs []string, o ExportOptions) (*image.NRGBA, error) {
	f, err := loadFooterFont()
	if err != nil {
		return nil, err
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    12 * s.DPR(),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = face.Close()
	}()

	sep := o.Separator
	if sep == "" {
		sep = ", "
	}

	width := img.Bounds().Dx()
	pad := int(6 * s.DPR())
	lines := wrapFooter(exprs, sep, face, width-2*pad)

	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil() + 2
	footerH := 2*pad + lineHeight*len(lines)

	out := image.NewNRGBA(image.Rect(0, 0, width, img.Bounds().Dy()+footerH))
	draw.Draw(out, img.Bounds(), img, image.Point{}, draw.Src)

	// Footer band uses the surface background so the artifact reads as one
	// continuous canvas.
	band := image.Rect(0, img.Bounds().Dy(), width, out.Bounds().Dy())
	draw.Draw(out, band, image.NewUniform(s.Background().Color()), image.Point{}, draw.Src)

	textColor := o.TextColor
	if textColor == (RGBA{}) {
		textColor = Black
	}
	drawer := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(textColor.Color()),
		Face: face,
	}
	y := img.Bounds().Dy() + pad + metrics.Ascent.Ceil()
	for _, line := range lines {
		drawer.Dot = fixed.P(pad, y)
		drawer.DrawString(line)
		y += lineHeight
	}

	return out, nil
}

// wrapFooter greedily packs expression texts into lines no wider than
// maxWidth. A single expression longer than maxWidth gets its own line and
// is left to overflow; expressions are never split mid-text.
func wrapFooter(exprs []string, sep string, face font.Face, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{strings.Join(exprs, sep)}
	}

	var lines []string
	current := ""
	for _, e := range exprs {
		candidate := e
		if current != "" {
			candidate = current + sep + e
		}
		if current != "" && font.MeasureString(face, candidate).Ceil() > maxWidth {
			lines = append(lines, current)
			current = e
			continue
		}
		current = candidate
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
