package dither

import "image"

// Buffer is the mutable accumulation grid for one error-diffusion pass.
//
// Cells are addressed column-first and hold the pixel's normalized luminance
// plus whatever quantization error has already been diffused into it. Values
// may transiently leave [0,1] when a cell collects error from several
// neighbors. A Buffer is created fresh for each pass and never shared
// between passes.
type Buffer struct {
	w, h  int
	cells []float32
}

// NewBuffer builds a buffer from a decoded image. Each cell is initialized
// to the pixel's relative luminance normalized to [0,1].
//
// The input must be non-alpha-premultiplied: luminance is computed from the
// straight color channels, so a transparent white pixel still reads as
// white. This is why the buffer takes *image.NRGBA rather than the
// premultiplying image.Image interface.
func NewBuffer(img *image.NRGBA) *Buffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	b := &Buffer{w: w, h: h, cells: make([]float32, w*h)}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			c := img.NRGBAAt(x+bounds.Min.X, y+bounds.Min.Y)
			b.cells[x*h+y] = Luminance(c.R, c.G, c.B, c.A) / 255.0
		}
	}
	return b
}

// Width returns the number of columns.
func (b *Buffer) Width() int { return b.w }

// Height returns the number of rows.
func (b *Buffer) Height() int { return b.h }

// At returns the accumulated value at column x, row y.
func (b *Buffer) At(x, y int) float32 {
	return b.cells[x*b.h+y]
}

// Add accumulates amount into the cell at (x+dx, y+dy). Targets outside the
// grid are silently dropped: error diffused past the image edge is discarded
// rather than wrapped or clamped. This is the single place the boundary
// policy is enforced.
func (b *Buffer) Add(x, y, dx, dy int, amount float32) {
	tx, ty := x+dx, y+dy
	if tx < 0 || tx >= b.w || ty < 0 || ty >= b.h {
		return
	}
	b.cells[tx*b.h+ty] += amount
}
