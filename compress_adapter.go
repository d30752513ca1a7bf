// SPDX-License-Identifier: MIT

package bsdiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/dsnet/compress/bzip2"
)

// brotliQuality and brotliWindow match the Android-compatible reference
// writer settings: quality 11, log2 window size 20.
const (
	brotliQuality = 11
	brotliWindow  = 20
)

// compressStream compresses data with the codec named by alg.
func compressStream(alg CompressionAlgorithm, data []byte) ([]byte, error) {
	switch alg {
	case AlgNone:
		return data, nil
	case AlgBz2:
		var buf bytes.Buffer
		w, err := bzip2.NewWriterLevel(&buf, bzip2.BestCompression)
		if err != nil {
			return nil, fmt.Errorf("%w: bzip2 writer: %v", ErrCompressionFailed, err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("%w: bzip2 write: %v", ErrCompressionFailed, err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("%w: bzip2 close: %v", ErrCompressionFailed, err)
		}
		return buf.Bytes(), nil
	case AlgBrotli:
		var buf bytes.Buffer
		w := brotli.NewWriterOptions(&buf, brotli.WriterOptions{
			Quality: brotliQuality,
			LGWin:   brotliWindow,
		})
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("%w: brotli write: %v", ErrCompressionFailed, err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("%w: brotli close: %v", ErrCompressionFailed, err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: unknown compression tag %d", ErrInvalidData, alg)
	}
}

// decompressStream decompresses data with the codec named by alg.
func decompressStream(alg CompressionAlgorithm, data []byte) ([]byte, error) {
	switch alg {
	case AlgNone:
		return data, nil
	case AlgBz2:
		r, err := bzip2.NewReader(bytes.NewReader(data), nil)
		if err != nil {
			return nil, fmt.Errorf("%w: bzip2 reader: %v", ErrCompressionFailed, err)
		}
		defer r.Close()
		out, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w: bzip2 read: %v", ErrCompressionFailed, err)
		}
		return out, nil
	case AlgBrotli:
		r := brotli.NewReader(bytes.NewReader(data))
		out, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w: brotli read: %v", ErrCompressionFailed, err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unknown compression tag %d", ErrInvalidData, alg)
	}
}

// validAlgorithm reports whether tag is one of the known wire values.
func validAlgorithm(tag byte) bool {
	switch CompressionAlgorithm(tag) {
	case AlgNone, AlgBz2, AlgBrotli:
		return true
	default:
		return false
	}
}
