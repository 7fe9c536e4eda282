// Package dither implements 1-bit error-diffusion dithering.
//
// The package converts a decoded color image into a pure black/white image
// by thresholding each pixel's relative luminance and propagating the
// quantization error to neighboring pixels. Two diffusion kernels are
// provided: an Atkinson-style kernel and Floyd-Steinberg.
//
// # Traversal Order
//
// Pixels are visited column-major: every row of column 0, then every row of
// column 1, and so on. Taps that point into the current or a later column
// accumulate error into cells that have not been quantized yet; taps that
// land in an already-visited column have no effect on the output. The order
// is part of the output contract and must not change.
//
// # Boundary Handling
//
// Error diffused past the image edge is silently dropped (Buffer.Add is a
// no-op for out-of-range targets). Border pixels therefore receive less
// correction than interior pixels.
//
// # Concurrency
//
// A single pass is inherently sequential: each pixel's result depends on
// mutations made by earlier pixels in traversal order. Passes with different
// kernels share no state, so ApplyAll runs them concurrently.
package dither
