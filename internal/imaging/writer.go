package imaging

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-dither/internal/dither"
)

// EnsureOutputDir creates dir (and any missing parents) if it does not
// exist. It must succeed before any encoding is attempted.
func EnsureOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputDirUnavailable, dir, err)
	}
	return nil
}

// OutputPath derives the output file name for one kernel label from the
// input file's base name: <stem>.<label>.<ext>. Inputs without an extension
// fall back to .png so the encoder always has a format to work with.
func OutputPath(dir, inputPath, label string) string {
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if ext == "" {
		ext = ".png"
	}
	return filepath.Join(dir, fmt.Sprintf("%s.%s%s", stem, label, ext))
}

// Save encodes img into the format implied by path's extension and writes
// it to disk. Failures wrap ErrEncodeFailed.
func Save(path string, img image.Image) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncodeFailed, path, err)
	}
	return nil
}

// SaveAll writes every dithered result into dir, naming each file after the
// input path and the result's kernel label. Every save is attempted even if
// an earlier one fails; the returned error aggregates all failures so a bad
// encode cannot hide behind a good one.
func SaveAll(dir, inputPath string, results []dither.Result) error {
	if err := EnsureOutputDir(dir); err != nil {
		return err
	}

	var errs []error
	for _, res := range results {
		if err := Save(OutputPath(dir, inputPath, res.Label), res.Image); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
