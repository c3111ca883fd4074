package utils

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"
)

// Supported compression formats
const (
	FormatGz = "gz"
	FormatXz = "xz"
)

// NewCompressor wraps w in a compressing writer for the given format
func NewCompressor(w io.Writer, format string) (io.WriteCloser, error) {
	switch format {
	case FormatGz:
		return gzip.NewWriter(w), nil
	case FormatXz:
		return xz.NewWriter(w)
	default:
		return nil, fmt.Errorf("unsupported compression format: %s", format)
	}
}

// NewDecompressor wraps r in a decompressing reader for the given format
func NewDecompressor(r io.Reader, format string) (io.Reader, error) {
	switch format {
	case FormatGz:
		return gzip.NewReader(r)
	case FormatXz:
		return xz.NewReader(r)
	default:
		return nil, fmt.Errorf("unsupported compression format: %s", format)
	}
}
