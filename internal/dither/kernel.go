package dither

// Tap is one error-diffusion target: an offset from the current pixel and
// the fraction of the quantization error it receives.
type Tap struct {
	DX, DY int
	Weight float32
}

// Kernel describes one error-diffusion variant as a flat table of taps. The
// driver applies every tap in order; repeated offsets accumulate.
type Kernel struct {
	// Name labels the output files produced from this kernel.
	Name string
	Taps []Tap
}

// Atkinson is the Atkinson-style diffusion kernel used by this tool.
//
// The tap table is deliberately not the textbook Atkinson kernel: the (0,+1)
// and (0,+2) taps appear twice while the (+1,0) and (+2,0) neighbors are
// never touched, so (0,+1) and (0,+2) each receive 2/8 of the error and only
// 6/8 is redistributed in total. Output compatibility depends on this exact
// table.
var Atkinson = Kernel{
	Name: "atkinson",
	Taps: []Tap{
		{-1, 1, 1.0 / 8},
		{0, 1, 1.0 / 8},
		{0, 2, 1.0 / 8},
		{1, 1, 1.0 / 8},
		{0, 1, 1.0 / 8},
		{0, 2, 1.0 / 8},
	},
}

// FloydSteinberg distributes the full quantization error across the four
// classic neighbors.
var FloydSteinberg = Kernel{
	Name: "floyd",
	Taps: []Tap{
		{1, 0, 7.0 / 16},
		{-1, 1, 3.0 / 16},
		{0, 1, 5.0 / 16},
		{1, 1, 1.0 / 16},
	},
}

// Kernels returns the diffusion variants applied by ApplyAll, in output order.
func Kernels() []Kernel {
	return []Kernel{Atkinson, FloydSteinberg}
}
