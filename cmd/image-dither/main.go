package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/image-dither/internal/dither"
	"github.com/ironsheep/image-dither/internal/imaging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// options holds the parsed command line.
type options struct {
	outDir      string
	width       int
	showVersion bool
}

// newFlagSet wires up the command's flags. The -v shorthand shares the
// version flag's variable.
func newFlagSet() (*flag.FlagSet, *options) {
	opts := &options{}
	fs := flag.NewFlagSet("image-dither", flag.ExitOnError)
	fs.StringVar(&opts.outDir, "out", "out", "directory for dithered output files")
	fs.IntVar(&opts.width, "width", 0, "downscale the image to this width before dithering (0 = keep size)")
	fs.BoolVar(&opts.showVersion, "version", false, "print version information")
	fs.BoolVar(&opts.showVersion, "v", false, "print version information (shorthand)")
	fs.Usage = usage
	return fs, opts
}

func main() {
	fs, opts := newFlagSet()
	_ = fs.Parse(os.Args[1:]) // ExitOnError: Parse never returns on failure

	if opts.showVersion {
		fmt.Printf("image-dither %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	// Missing input path prints usage and exits cleanly.
	if fs.NArg() < 1 {
		usage()
		return
	}
	path := fs.Arg(0)

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cache := imaging.NewImageCache()
	img, err := cache.Load(path)
	if err != nil {
		log.Fatalf("loading input: %v", err)
	}

	src := imaging.ToNRGBA(imaging.FitWidth(img, opts.width))
	results := dither.ApplyAll(src)

	if err := imaging.SaveAll(opts.outDir, path, results); err != nil {
		log.Fatalf("saving output: %v", err)
	}

	for _, res := range results {
		fmt.Println(imaging.OutputPath(opts.outDir, path, res.Label))
	}
}

func usage() {
	fmt.Println("image-dither - 1-bit error-diffusion dithering")
	fmt.Println()
	fmt.Println("Usage: image-dither [options] /path/to/image")
	fmt.Println()
	fmt.Println("Produces two black/white copies of the image in the output directory,")
	fmt.Println("one per diffusion kernel: <stem>.atkinson.<ext> and <stem>.floyd.<ext>.")
	fmt.Println("Supported formats: PNG, JPEG, GIF, BMP, TIFF.")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -out DIR      directory for output files (default \"out\")")
	fmt.Println("  -width N      downscale to N pixels wide before dithering (default 0, keep size)")
	fmt.Println("  -version, -v  print version information")
}
