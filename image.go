package graphics

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	_ "image/png" // registered decoders for NewImage

	"github.com/gogpu/graphics/internal/render"
)

// Image is a raster image centered on an anchor point. Pixels can be
// read and written individually, and the image can be loaded from and
// saved to PNG, JPEG, GIF, BMP, and TIFF files.
type Image struct {
	base
	anchor *Point
	pix    *render.Pixmap
}

// NewImage loads an image file and centers it on anchor. The format is
// detected from the file contents.
func NewImage(anchor *Point, path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphics: load image: %w", err)
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("graphics: decode image %s: %w", path, err)
	}
	return newImage(anchor, render.FromImage(src)), nil
}

// NewImageSize creates a blank transparent image of the given pixel
// size, centered on anchor.
func NewImageSize(anchor *Point, width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("image size %dx%d: %w", width, height, ErrBadOption)
	}
	return newImage(anchor, render.NewPixmap(width, height)), nil
}

func newImage(anchor *Point, pix *render.Pixmap) *Image {
	img := &Image{anchor: anchor.Clone(), pix: pix}
	img.cfg = defaultConfig()
	return img
}

// String implements fmt.Stringer.
func (im *Image) String() string {
	return fmt.Sprintf("Image(%v, %dx%d)", im.anchor, im.pix.Width(), im.pix.Height())
}

// Anchor returns a copy of the anchor point.
func (im *Image) Anchor() *Point { return im.anchor.Clone() }

// Width returns the image width in pixels.
func (im *Image) Width() int { return im.pix.Width() }

// Height returns the image height in pixels.
func (im *Image) Height() int { return im.pix.Height() }

// Pixel returns the color of the pixel at (x, y).
func (im *Image) Pixel(x, y int) Color {
	return FromColor(im.pix.GetPixel(x, y))
}

// SetPixel sets the pixel at (x, y).
func (im *Image) SetPixel(x, y int, c Color) {
	im.pix.SetPixel(x, y, c.Color())
	im.refresh()
}

// Save writes the image to a file. The format follows the extension:
// .png, .jpg, .jpeg, .gif, .bmp, or .tiff.
func (im *Image) Save(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".png" {
		return im.pix.SavePNG(path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphics: save image: %w", err)
	}
	defer f.Close()
	switch ext {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, im.pix.Image(), &jpeg.Options{Quality: 90})
	case ".gif":
		err = gif.Encode(f, im.pix.Image(), nil)
	case ".bmp":
		err = bmp.Encode(f, im.pix.Image())
	case ".tiff":
		err = tiff.Encode(f, im.pix.Image(), nil)
	default:
		return fmt.Errorf("image format %q: %w", ext, ErrBadOption)
	}
	if err != nil {
		return fmt.Errorf("graphics: encode %s: %w", path, err)
	}
	return nil
}

// Clone returns a detached deep copy of the image.
func (im *Image) Clone() *Image {
	other := newImage(im.anchor, render.FromImage(im.pix.Image()))
	other.cfg = im.cfg
	return other
}

// Draw implements GraphicsObject.
func (im *Image) Draw(win *GraphWin) error {
	return win.draw(im, &im.base)
}

// Undraw implements GraphicsObject.
func (im *Image) Undraw() error {
	return im.base.undraw(im)
}

// Move implements GraphicsObject.
func (im *Image) Move(dx, dy float64) error {
	im.anchor.x += dx
	im.anchor.y += dy
	return im.moved()
}

func (im *Image) render(cv *render.Canvas, tr *transform) {
	cx, cy := toScreen(tr, im.anchor.x, im.anchor.y)
	x := int(cx+0.5) - im.pix.Width()/2
	y := int(cy+0.5) - im.pix.Height()/2
	cv.DrawImage(im.pix.Image(), x, y)
}
