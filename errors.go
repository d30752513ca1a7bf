// SPDX-License-Identifier: MIT

package bsdiff

import "errors"

// Sentinel errors for patch construction and application.
var (
	// ErrInvalidData is returned when a patch is structurally malformed: bad
	// magic, negative lengths, truncated streams, a control stream whose
	// length is not a multiple of 24, or a final state that does not match
	// the declared sizes.
	ErrInvalidData = errors.New("bsdiff: invalid patch data")
	// ErrUnexpectedEOF is returned by the streaming applier when the input
	// reader ends before a control tuple or its payload is fully read.
	ErrUnexpectedEOF = errors.New("bsdiff: unexpected end of input")
	// ErrResourceExhausted is returned when a patch declares a new-file size
	// larger than the configured limit.
	ErrResourceExhausted = errors.New("bsdiff: declared size exceeds limit")
	// ErrCompressionFailed is returned when the underlying compression codec
	// (bzip2 or brotli) fails; the codec's error text is included in the
	// message, but the codec error itself is not wrapped.
	ErrCompressionFailed = errors.New("bsdiff: compression codec error")
)
