// Package imaging decodes image/mask pairs into scalar buffers for hole
// filling and renders filled buffers back to storable images. Images are
// converted to linear-light grayscale on the way in and back to sRGB on the
// way out.
package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/binaryfoundry/holefill"
	"github.com/binaryfoundry/holefill/pkg/colorutil"
)

// HoleSentinel is the value carved into the buffer where the mask marks
// missing data.
const HoleSentinel = -1.0

// maskThreshold is the linear-light gray level below which a mask pixel
// carves a hole.
const maskThreshold = 0.5

// LoadImage decodes an image from disk. PNG, JPEG, TIFF, BMP and WebP are
// supported.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

// Carve converts img to a linear-light grayscale buffer and carves a hole
// wherever the mask is darker than 50% gray. A mask whose dimensions differ
// from the image is rescaled to match with nearest-neighbor sampling, which
// keeps binary masks binary.
func Carve(img, mask image.Image) (*holefill.Buffer, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	buf, err := holefill.New(w, h)
	if err != nil {
		return nil, err
	}

	maskGray := toGray(mask)
	if mb := maskGray.Bounds(); mb.Dx() != w || mb.Dy() != h {
		scaled := image.NewGray(image.Rect(0, 0, w, h))
		xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), maskGray, mb, xdraw.Src, nil)
		maskGray = scaled
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m := maskGray.GrayAt(x, y).Y
			if colorutil.SRGBToLinear(float64(m)/255.0) < maskThreshold {
				buf.Set(x, y, HoleSentinel)
				continue
			}
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			buf.Set(x, y, colorutil.GrayLinear(uint8(r>>8), uint8(g>>8), uint8(b>>8)))
		}
	}
	return buf, nil
}

// Render converts a buffer to an 8-bit grayscale image: unfilled holes
// become black, values are converted from linear light to sRGB and clamped
// to [0,1].
func Render(b *holefill.Buffer) *image.Gray {
	out := image.NewGray(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			v := b.At(x, y)
			if v < 0 {
				v = 0
			}
			s := colorutil.Clamp01(colorutil.LinearToSRGB(v))
			out.SetGray(x, y, color.Gray{Y: uint8(s * 255.0)})
		}
	}
	return out
}

// SaveImage encodes the image to disk, choosing the format from the file
// extension: .png, .jpg or .jpeg.
func SaveImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(f, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, nil)
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

// toGray converts any image to 8-bit grayscale, reusing the pixels when it
// already is one.
func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok && g.Bounds().Min == (image.Point{}) {
		return g
	}
	bounds := img.Bounds()
	g := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			g.Set(x, y, color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return g
}
