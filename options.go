// SPDX-License-Identifier: MIT

package bsdiff

// CompressionAlgorithm tags which codec compresses one of the three patch
// streams. The numeric values are part of the wire format (the BSDF2 magic
// embeds one byte per stream) and must not be renumbered.
type CompressionAlgorithm byte

const (
	// AlgNone stores a stream uncompressed.
	AlgNone CompressionAlgorithm = 0
	// AlgBz2 compresses a stream with bzip2.
	AlgBz2 CompressionAlgorithm = 1
	// AlgBrotli compresses a stream with Brotli (quality 11, window 20).
	AlgBrotli CompressionAlgorithm = 2
)

// DiffOptions configures patch construction.
type DiffOptions struct {
	// ControlAlg, DiffAlg, ExtraAlg select the compression codec applied to
	// the control, diff and extra streams respectively.
	ControlAlg CompressionAlgorithm
	DiffAlg    CompressionAlgorithm
	ExtraAlg   CompressionAlgorithm
}

// DefaultDiffOptions returns options producing a legacy BSDIFF40 patch:
// bzip2 on all three streams, matching the classic bsdiff tool.
func DefaultDiffOptions() *DiffOptions {
	return &DiffOptions{
		ControlAlg: AlgBz2,
		DiffAlg:    AlgBz2,
		ExtraAlg:   AlgBz2,
	}
}

// MaxNewSize is the hard ceiling on a patch's declared reconstructed size.
// No ApplyOptions may raise it; they may only lower it.
const MaxNewSize = 2 << 30 // 2 GiB

// ApplyOptions configures patch application.
type ApplyOptions struct {
	// MaxNewSize overrides the default 2 GiB ceiling on the declared
	// reconstructed size. Zero means "use the default"; values above
	// MaxNewSize are clamped down to it.
	MaxNewSize int64
	// MaxInputSize limits how many patch bytes ApplyStream may consume
	// (0 = no limit).
	MaxInputSize int64
}

// DefaultApplyOptions returns options with the default 2 GiB ceiling and no
// input limit.
func DefaultApplyOptions() *ApplyOptions {
	return &ApplyOptions{MaxNewSize: MaxNewSize}
}

func (o *ApplyOptions) maxNewSize() int64 {
	if o == nil || o.MaxNewSize <= 0 || o.MaxNewSize > MaxNewSize {
		return MaxNewSize
	}
	return o.MaxNewSize
}

func (o *ApplyOptions) maxInputSize() int64 {
	if o == nil {
		return 0
	}
	return o.MaxInputSize
}
