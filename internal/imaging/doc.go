// Package imaging is the I/O boundary around the dithering core.
//
// It decodes source images (PNG, JPEG, GIF, BMP, TIFF) into the pixel grid
// the core consumes, and writes the core's 1-bit output grids back to disk,
// deriving one file name per diffusion kernel from the input file's name.
//
// # Error Classification
//
// All fallible behavior of the program lives in this package; the core is
// pure computation and cannot fail. Failures wrap one of four sentinel
// errors (ErrSourceUnreadable, ErrSourceUndecodable, ErrOutputDirUnavailable,
// ErrEncodeFailed) so callers can classify with errors.Is while the message
// keeps the path and underlying cause.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The remaining functions
// are stateless.
package imaging
