package imaging

import "errors"

// Failure classes reported by this package. Each error returned from the
// boundary wraps exactly one of these, plus the path and underlying cause.
var (
	// ErrSourceUnreadable means the input file could not be opened or read.
	ErrSourceUnreadable = errors.New("source image unreadable")

	// ErrSourceUndecodable means the input file was read but is not a valid
	// image in any supported format.
	ErrSourceUndecodable = errors.New("source image undecodable")

	// ErrOutputDirUnavailable means the output directory does not exist and
	// could not be created.
	ErrOutputDirUnavailable = errors.New("output directory unavailable")

	// ErrEncodeFailed means a dithered result could not be encoded or
	// written to disk.
	ErrEncodeFailed = errors.New("image encode failed")
)
