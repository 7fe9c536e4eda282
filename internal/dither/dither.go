package dither

import (
	"image"
	"image/color"
	"sync"
)

// threshold is the quantization cut-off. Values strictly above it become
// white; everything else, including exactly 0.5, becomes black.
const threshold = 0.5

// quantize rounds an accumulated value to its output bit.
func quantize(v float32) float32 {
	if v > threshold {
		return 1.0
	}
	return 0.0
}

// Apply runs one error-diffusion pass over img with the given kernel and
// returns a grayscale image containing only pure black (0) and pure white
// (255) pixels. The output shares img's bounds. The input carries straight
// (non-premultiplied) channels; see NewBuffer.
//
// Each call builds its own Buffer, so Apply is safe to call concurrently on
// the same input image.
func Apply(img *image.NRGBA, k Kernel) *image.Gray {
	bounds := img.Bounds()
	buf := NewBuffer(img)
	out := image.NewGray(bounds)

	// Column-major walk: all rows of column x before column x+1.
	for x := 0; x < buf.Width(); x++ {
		for y := 0; y < buf.Height(); y++ {
			old := buf.At(x, y)
			bit := quantize(old)
			diff := old - bit

			for _, t := range k.Taps {
				buf.Add(x, y, t.DX, t.DY, diff*t.Weight)
			}

			c := color.Gray{Y: 0}
			if bit == 1.0 {
				c = color.Gray{Y: 255}
			}
			out.SetGray(x+bounds.Min.X, y+bounds.Min.Y, c)
		}
	}
	return out
}

// Result pairs a dithered image with the kernel label that produced it.
type Result struct {
	Label string
	Image *image.Gray
}

// ApplyAll dithers img once per registered kernel. Each pass owns an
// independent Buffer, so the passes run concurrently. Results are returned
// in Kernels() order.
func ApplyAll(img *image.NRGBA) []Result {
	kernels := Kernels()
	results := make([]Result, len(kernels))

	var wg sync.WaitGroup
	for i, k := range kernels {
		wg.Add(1)
		go func(i int, k Kernel) {
			defer wg.Done()
			results[i] = Result{Label: k.Name, Image: Apply(img, k)}
		}(i, k)
	}
	wg.Wait()

	return results
}
