// Package render is a small software canvas: an RGBA pixel buffer plus
// path fill/stroke, image blit, and text drawing on top of
// golang.org/x/image/vector.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
)

// Pixmap represents a rectangular pixel buffer.
// It wraps an image.RGBA so rasterization and window blits can work on
// the pixels directly.
type Pixmap struct {
	img *image.RGBA
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// FromImage creates a pixmap holding a copy of img.
func FromImage(src image.Image) *Pixmap {
	b := src.Bounds()
	p := NewPixmap(b.Dx(), b.Dy())
	draw.Draw(p.img, p.img.Bounds(), src, b.Min, draw.Src)
	return p
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.img.Bounds().Dx()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.img.Bounds().Dy()
}

// Image returns the underlying image. The caller must not resize it.
func (p *Pixmap) Image() *image.RGBA {
	return p.img
}

// SetPixel sets the color of a single pixel. Out-of-range coordinates
// are ignored.
func (p *Pixmap) SetPixel(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.img.Bounds()) {
		return
	}
	p.img.Set(x, y, c)
}

// GetPixel returns the color of a single pixel. Out-of-range coordinates
// return transparent black.
func (p *Pixmap) GetPixel(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.img.Bounds()) {
		return color.NRGBA{}
	}
	return p.img.At(x, y)
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c color.Color) {
	draw.Draw(p.img, p.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// EncodePNG writes the pixmap as PNG.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.img)
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, p.img)
}
