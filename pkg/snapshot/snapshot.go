// Package snapshot renders garments to still images without a window.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/philipparndt/gogarment/pkg/garment"
	"github.com/philipparndt/gogarment/pkg/viewer"
	"golang.org/x/image/draw"
)

var (
	ErrInvalidOptions = errors.New("invalid snapshot options")
	ErrUnsupported    = errors.New("unsupported image format")
)

// Options controls a snapshot render
type Options struct {
	Width       int
	Height      int
	Supersample int     // render at this multiple of the output size, then downsample
	Yaw         float64 // degrees around the vertical axis, positive turns the camera left
	Pitch       float64 // degrees, positive looks from above
	Frames      int     // render loop iterations before capturing
}

// DefaultOptions returns a square front view
func DefaultOptions() Options {
	return Options{Width: 800, Height: 800, Supersample: 2, Frames: 1}
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidOptions, o.Width, o.Height)
	}
	if o.Supersample < 1 {
		return fmt.Errorf("%w: supersample %d", ErrInvalidOptions, o.Supersample)
	}
	if o.Frames < 1 {
		return fmt.Errorf("%w: frames %d", ErrInvalidOptions, o.Frames)
	}
	return nil
}

// Render draws g through a headless viewport and returns the downsampled frame
func Render(g garment.Geometry, opts Options) (*image.NRGBA, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	off := viewer.NewOffscreen(opts.Width*opts.Supersample, opts.Height*opts.Supersample)
	v := viewer.Mount(off.Env(), g)
	defer v.Teardown()

	controls := v.Controls()
	controls.EnableDamping = false
	controls.RotateLeft(opts.Yaw * math.Pi / 180)
	controls.RotateUp(opts.Pitch * math.Pi / 180)

	off.RunFrames(opts.Frames)

	surface, ok := v.Surface().(*viewer.SoftwareSurface)
	if !ok {
		return nil, fmt.Errorf("unexpected surface type %T", v.Surface())
	}

	return downsample(surface.Image(), opts.Width, opts.Height), nil
}

// downsample scales src to width x height with CatmullRom filtering.
// Frames are opaque so no alpha premultiplication is needed.
func downsample(src *image.RGBA, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	if src.Bounds().Dx() == width && src.Bounds().Dy() == height {
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Write encodes img by the extension of path: lossless WebP for .webp, PNG for .png
func Write(path string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".webp" && ext != ".png" {
		return fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	switch ext {
	case ".webp":
		err = nativewebp.Encode(f, img, nil)
	case ".png":
		err = png.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", ext, err)
	}
	return f.Close()
}
