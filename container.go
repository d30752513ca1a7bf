// SPDX-License-Identifier: MIT

package bsdiff

import "fmt"

const (
	headerSize  = 32
	legacyMagic = "BSDIFF40"
	bsdf2Magic  = "BSDF2"
)

// Diff builds a patch that reconstructs new when applied to old. A nil opts
// produces a legacy "BSDIFF40" patch (bzip2 on all three streams); a non-nil
// opts selects per-stream compression and, unless every stream resolves to
// bzip2, produces the "BSDF2" container.
func Diff(old, new []byte, opts *DiffOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDiffOptions()
	}

	control, diff, extra := buildDelta(old, new)

	cCompressed, err := compressStream(opts.ControlAlg, control)
	if err != nil {
		return nil, err
	}
	dCompressed, err := compressStream(opts.DiffAlg, diff)
	if err != nil {
		return nil, err
	}
	eCompressed, err := compressStream(opts.ExtraAlg, extra)
	if err != nil {
		return nil, err
	}

	header := make([]byte, headerSize)
	if opts.ControlAlg == AlgBz2 && opts.DiffAlg == AlgBz2 && opts.ExtraAlg == AlgBz2 {
		copy(header[0:8], legacyMagic)
	} else {
		copy(header[0:5], bsdf2Magic)
		header[5] = byte(opts.ControlAlg)
		header[6] = byte(opts.DiffAlg)
		header[7] = byte(opts.ExtraAlg)
	}
	encodeInt64(int64(len(cCompressed)), header[8:16])
	encodeInt64(int64(len(dCompressed)), header[16:24])
	encodeInt64(int64(len(new)), header[24:32])

	patch := make([]byte, 0, headerSize+len(cCompressed)+len(dCompressed)+len(eCompressed))
	patch = append(patch, header...)
	patch = append(patch, cCompressed...)
	patch = append(patch, dCompressed...)
	patch = append(patch, eCompressed...)
	return patch, nil
}

// Apply reconstructs new from old and patch, accepting either the legacy
// BSDIFF40 container or the tagged BSDF2 container.
func Apply(old, patch []byte, opts *ApplyOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultApplyOptions()
	}

	ctrlAlg, diffAlg, extraAlg, ctrlLen, diffLen, newSize, payload, err := parseHeader(patch, opts.maxNewSize())
	if err != nil {
		return nil, err
	}

	if ctrlLen > int64(len(payload)) {
		return nil, fmt.Errorf("%w: control length %d exceeds remaining patch length %d", ErrInvalidData, ctrlLen, len(payload))
	}
	cCompressed := payload[:ctrlLen]
	rest := payload[ctrlLen:]

	if diffLen > int64(len(rest)) {
		return nil, fmt.Errorf("%w: diff length %d exceeds remaining patch length %d", ErrInvalidData, diffLen, len(rest))
	}
	dCompressed := rest[:diffLen]
	eCompressed := rest[diffLen:]

	control, err := decompressStream(ctrlAlg, cCompressed)
	if err != nil {
		return nil, err
	}
	diff, err := decompressStream(diffAlg, dCompressed)
	if err != nil {
		return nil, err
	}
	extra, err := decompressStream(extraAlg, eCompressed)
	if err != nil {
		return nil, err
	}

	return applyDelta(old, control, diff, extra, newSize)
}

// parseHeader validates and decodes a patch's 32-byte header, returning the
// three compression tags, the compressed control/diff lengths, the declared
// new size, and the remaining patch bytes after the header.
func parseHeader(patch []byte, maxNewSize int64) (ctrlAlg, diffAlg, extraAlg CompressionAlgorithm, ctrlLen, diffLen, newSize int64, payload []byte, err error) {
	if len(patch) < headerSize {
		err = fmt.Errorf("%w: patch is %d bytes, need at least %d for header", ErrInvalidData, len(patch), headerSize)
		return
	}

	magic := patch[0:8]
	switch {
	case string(magic) == legacyMagic:
		ctrlAlg, diffAlg, extraAlg = AlgBz2, AlgBz2, AlgBz2
	case string(magic[0:5]) == bsdf2Magic:
		if !validAlgorithm(magic[5]) || !validAlgorithm(magic[6]) || !validAlgorithm(magic[7]) {
			err = fmt.Errorf("%w: unknown compression tag in BSDF2 magic %x", ErrInvalidData, magic[5:8])
			return
		}
		ctrlAlg = CompressionAlgorithm(magic[5])
		diffAlg = CompressionAlgorithm(magic[6])
		extraAlg = CompressionAlgorithm(magic[7])
	default:
		err = fmt.Errorf("%w: unrecognized magic %q", ErrInvalidData, magic)
		return
	}

	ctrlLen = decodeInt64(patch[8:16])
	diffLen = decodeInt64(patch[16:24])
	newSize = decodeInt64(patch[24:32])

	if ctrlLen < 0 {
		err = fmt.Errorf("%w: negative control length %d", ErrInvalidData, ctrlLen)
		return
	}
	if diffLen < 0 {
		err = fmt.Errorf("%w: negative diff length %d", ErrInvalidData, diffLen)
		return
	}
	if newSize < 0 {
		err = fmt.Errorf("%w: negative new size %d", ErrInvalidData, newSize)
		return
	}
	if newSize > maxNewSize {
		err = fmt.Errorf("%w: declared new size %d exceeds limit %d", ErrResourceExhausted, newSize, maxNewSize)
		return
	}

	payload = patch[headerSize:]
	return
}
