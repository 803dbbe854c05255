package present

import (
	stddraw "image/draw"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/chippyvm/chippy8/internal/chip8"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Rasterize renders fb 1:1 into a *image.Gray, white for a lit pixel.
func Rasterize(fb chip8.Surface) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, fb.Width(), fb.Height()))
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if fb.Pixel(x, y) {
				img.SetGray(x, y, color.Gray{Y: 0xFF})
			}
		}
	}
	return img
}

// upscale grows src by scale using nearest-neighbor sampling so
// individual CHIP-8 pixels stay crisp blocks rather than blurring.
func upscale(src *image.Gray, scale int) *image.Gray {
	if scale < 1 {
		scale = 1
	}
	dstRect := image.Rect(0, 0, src.Bounds().Dx()*scale, src.Bounds().Dy()*scale)
	dst := image.NewGray(dstRect)
	draw.NearestNeighbor.Scale(dst, dstRect, src, src.Bounds(), draw.Over, nil)
	return dst
}

// EncodePNG rasterizes fb, upscales it by scale, and writes the result
// as a PNG to w.
func EncodePNG(w io.Writer, fb chip8.Surface, scale int) error {
	if err := png.Encode(w, upscale(Rasterize(fb), scale)); err != nil {
		return errors.Wrap(err, "present: encoding frame png")
	}
	return nil
}

// EncodeAnnotatedPNG is the `chippy inspect --render` output: the
// upscaled frame with a one-line caption burned in below it using
// basicfont, identifying the ROM and variant for a human comparing
// screenshots.
func EncodeAnnotatedPNG(w io.Writer, fb chip8.Surface, scale int, caption string) error {
	frame := upscale(Rasterize(fb), scale)

	const captionHeight = 16
	bounds := frame.Bounds()
	canvas := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()+captionHeight))
	stddraw.Draw(canvas, bounds, frame, image.Point{}, stddraw.Src)

	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.Gray{Y: 0xFF}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(2, bounds.Dy()+captionHeight-4),
	}
	drawer.DrawString(caption)

	if err := png.Encode(w, canvas); err != nil {
		return errors.Wrap(err, "present: encoding annotated frame png")
	}
	return nil
}
