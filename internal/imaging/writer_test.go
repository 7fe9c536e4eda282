package imaging

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/image-dither/internal/dither"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name      string
		dir       string
		inputPath string
		label     string
		want      string
	}{
		{
			name:      "png input",
			dir:       "out",
			inputPath: "/photos/lenna.png",
			label:     "atkinson",
			want:      filepath.Join("out", "lenna.atkinson.png"),
		},
		{
			name:      "jpeg keeps original extension",
			dir:       "out",
			inputPath: "portrait.jpeg",
			label:     "floyd",
			want:      filepath.Join("out", "portrait.floyd.jpeg"),
		},
		{
			name:      "missing extension falls back to png",
			dir:       "out",
			inputPath: "/scans/document",
			label:     "atkinson",
			want:      filepath.Join("out", "document.atkinson.png"),
		},
		{
			name:      "dotted stem keeps only the last extension",
			dir:       "results",
			inputPath: "archive.v2.bmp",
			label:     "floyd",
			want:      filepath.Join("results", "archive.v2.floyd.bmp"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OutputPath(tt.dir, tt.inputPath, tt.label)
			if got != tt.want {
				t.Errorf("OutputPath(%q, %q, %q): got %q, want %q",
					tt.dir, tt.inputPath, tt.label, got, tt.want)
			}
		})
	}
}

func TestEnsureOutputDir(t *testing.T) {
	t.Run("creates nested directories", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "a", "b", "out")
		if err := EnsureOutputDir(dir); err != nil {
			t.Fatalf("EnsureOutputDir failed: %v", err)
		}
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("directory was not created: %v", err)
		}
	})

	t.Run("existing directory is fine", func(t *testing.T) {
		dir := t.TempDir()
		if err := EnsureOutputDir(dir); err != nil {
			t.Errorf("EnsureOutputDir on existing dir failed: %v", err)
		}
	})

	t.Run("file in the way", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "blocker")
		if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to write blocker file: %v", err)
		}
		err := EnsureOutputDir(filepath.Join(blocker, "out"))
		if !errors.Is(err, ErrOutputDirUnavailable) {
			t.Errorf("error kind: got %v, want ErrOutputDirUnavailable", err)
		}
	})
}

func TestSave_RoundTripBilevel(t *testing.T) {
	// Dither a gradient, save it as PNG, and decode it back: the file must
	// contain only the two emitted colors, no intermediate grays.
	img := image.NewNRGBA(image.Rect(0, 0, 16, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			g := uint8(x * 255 / 15)
			img.Set(x, y, color.NRGBA{g, g, g, 255})
		}
	}

	for _, k := range dither.Kernels() {
		t.Run(k.Name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "gradient."+k.Name+".png")
			if err := Save(path, dither.Apply(img, k)); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			loaded, err := NewImageCache().Load(path)
			if err != nil {
				t.Fatalf("reload failed: %v", err)
			}

			for y := 0; y < 8; y++ {
				for x := 0; x < 16; x++ {
					r, g, b, _ := loaded.At(x, y).RGBA()
					if r != g || g != b {
						t.Fatalf("pixel (%d,%d) is not gray: %d %d %d", x, y, r, g, b)
					}
					if r != 0 && r != 0xFFFF {
						t.Fatalf("pixel (%d,%d) is not bilevel: %d", x, y, r)
					}
				}
			}
		})
	}
}

func TestSave_UnsupportedExtension(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	err := Save(filepath.Join(t.TempDir(), "result.xyz"), img)
	if !errors.Is(err, ErrEncodeFailed) {
		t.Errorf("error kind: got %v, want ErrEncodeFailed", err)
	}
}

func TestSaveAll(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.NRGBA{200, 200, 200, 255})
		}
	}
	results := dither.ApplyAll(img)

	dir := filepath.Join(t.TempDir(), "out")
	if err := SaveAll(dir, "/photos/sample.png", results); err != nil {
		t.Fatalf("SaveAll failed: %v", err)
	}

	for _, name := range []string{"sample.atkinson.png", "sample.floyd.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected output file %s: %v", name, err)
		}
	}
}

func TestSaveAll_ReportsEveryFailure(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	results := dither.ApplyAll(img)

	// The .xyz extension makes both encodes fail; both failures must
	// surface in the aggregated error.
	err := SaveAll(t.TempDir(), "sample.xyz", results)
	if !errors.Is(err, ErrEncodeFailed) {
		t.Fatalf("error kind: got %v, want ErrEncodeFailed", err)
	}
	for _, label := range []string{"atkinson", "floyd"} {
		if !strings.Contains(err.Error(), label) {
			t.Errorf("aggregated error should mention the %s output: %v", label, err)
		}
	}
}

func TestPipeline_EndToEnd(t *testing.T) {
	// Full pipeline on the 2x2 checkerboard: decode, dither with both
	// kernels, save, and verify the files on disk.
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.RGBA{255, 255, 255, 255})
	src.Set(1, 0, color.RGBA{0, 0, 0, 255})
	src.Set(0, 1, color.RGBA{0, 0, 0, 255})
	src.Set(1, 1, color.RGBA{255, 255, 255, 255})

	inputDir := t.TempDir()
	inputPath := filepath.Join(inputDir, "board.png")
	f, err := os.Create(inputPath)
	if err != nil {
		t.Fatalf("failed to create input: %v", err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatalf("failed to encode input: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close input: %v", err)
	}

	cache := NewImageCache()
	img, err := cache.Load(inputPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	results := dither.ApplyAll(ToNRGBA(img))

	outDir := filepath.Join(inputDir, "out")
	if err := SaveAll(outDir, inputPath, results); err != nil {
		t.Fatalf("SaveAll failed: %v", err)
	}

	for _, label := range []string{"atkinson", "floyd"} {
		path := OutputPath(outDir, inputPath, label)
		loaded, err := cache.Load(path)
		if err != nil {
			t.Fatalf("reload of %s output failed: %v", label, err)
		}

		if loaded.Bounds().Dx() != 2 || loaded.Bounds().Dy() != 2 {
			t.Errorf("%s dimensions: got %dx%d, want 2x2",
				label, loaded.Bounds().Dx(), loaded.Bounds().Dy())
		}

		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				r, _, _, _ := loaded.At(x, y).RGBA()
				if r != 0 && r != 0xFFFF {
					t.Errorf("%s pixel (%d,%d) is not bilevel: %d", label, x, y, r)
				}
			}
		}

		// Top-left was full white, which normalizes above the threshold.
		if r, _, _, _ := loaded.At(0, 0).RGBA(); r != 0xFFFF {
			t.Errorf("%s top-left pixel should be white", label)
		}
	}
}
