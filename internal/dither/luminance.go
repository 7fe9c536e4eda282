package dither

// Luminance returns the relative luminance of an 8-bit RGBA pixel using the
// ITU-R BT.709 weights (0.2126*R + 0.7152*G + 0.0722*B). Alpha is ignored.
//
// The result ranges from 0 (black) to 255 (white).
func Luminance(r, g, b, a uint8) float32 {
	return 0.2126*float32(r) + 0.7152*float32(g) + 0.0722*float32(b)
}
