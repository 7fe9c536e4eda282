package imaging

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/transform"
)

// FitWidth downscales img to the given width, preserving aspect ratio.
// A width of 0 (or any value not smaller than the current width) returns
// img unchanged; the function never upscales.
func FitWidth(img image.Image, width int) image.Image {
	bounds := img.Bounds()
	if width <= 0 || width >= bounds.Dx() {
		return img
	}

	height := int(math.Round(float64(bounds.Dy()) * float64(width) / float64(bounds.Dx())))
	if height < 1 {
		height = 1
	}
	return transform.Resize(img, width, height, transform.Linear)
}
