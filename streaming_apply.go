// SPDX-License-Identifier: MIT

package bsdiff

import (
	"fmt"
	"io"
)

// ApplyStream is the streaming counterpart to Apply: it reads 24-byte
// control tuples sequentially from ctrl, drawing add bytes from diff and
// copy bytes from extra as it goes, and writes the reconstructed bytes into
// out (which must have length newSize or more). It is meant for callers
// that have already separated the three patch streams themselves, e.g. one
// leg of a larger container format. A nil opts uses DefaultApplyOptions.
//
// Running out of input on any of the three readers is reported as
// ErrUnexpectedEOF rather than ErrInvalidData, since in the streaming case
// that is a distinct, potentially retryable condition rather than evidence
// of a structurally malformed patch. Exceeding opts.MaxInputSize across the
// three readers combined is reported as ErrResourceExhausted.
func ApplyStream(old []byte, ctrl, diff, extra io.Reader, newSize int64, out []byte, opts *ApplyOptions) (int64, error) {
	if opts == nil {
		opts = DefaultApplyOptions()
	}
	if newSize < 0 {
		return 0, fmt.Errorf("%w: negative new size %d", ErrInvalidData, newSize)
	}
	if newSize > opts.maxNewSize() {
		return 0, fmt.Errorf("%w: declared new size %d exceeds limit %d", ErrResourceExhausted, newSize, opts.maxNewSize())
	}
	if int64(len(out)) < newSize {
		return 0, fmt.Errorf("%w: output buffer has length %d, need at least %d", ErrInvalidData, len(out), newSize)
	}

	budget := opts.maxInputSize()
	var consumed int64
	chargeInput := func(n int64) error {
		if budget <= 0 {
			return nil
		}
		consumed += n
		if consumed > budget {
			return fmt.Errorf("%w: stream input %d exceeds MaxInputSize %d", ErrResourceExhausted, consumed, budget)
		}
		return nil
	}

	var written, oldpos int64
	var tupleBuf [24]byte

	for written < newSize {
		if _, err := io.ReadFull(ctrl, tupleBuf[:]); err != nil {
			return written, fmt.Errorf("%w: reading control tuple: %v", ErrUnexpectedEOF, err)
		}
		if err := chargeInput(int64(len(tupleBuf))); err != nil {
			return written, err
		}

		addLen := decodeInt64(tupleBuf[0:8])
		copyLen := decodeInt64(tupleBuf[8:16])
		seek := decodeInt64(tupleBuf[16:24])

		if addLen < 0 {
			return written, fmt.Errorf("%w: negative add length %d", ErrInvalidData, addLen)
		}
		if copyLen < 0 {
			return written, fmt.Errorf("%w: negative copy length %d", ErrInvalidData, copyLen)
		}
		if written+addLen+copyLen > newSize {
			return written, fmt.Errorf("%w: reconstructed size would exceed declared size %d", ErrInvalidData, newSize)
		}

		if addLen > 0 {
			diffChunk := make([]byte, addLen)
			if _, err := io.ReadFull(diff, diffChunk); err != nil {
				return written, fmt.Errorf("%w: reading diff payload: %v", ErrUnexpectedEOF, err)
			}
			if err := chargeInput(addLen); err != nil {
				return written, err
			}
			for j := int64(0); j < addLen; j++ {
				var oldByte byte
				if idx := oldpos + j; idx >= 0 && idx < int64(len(old)) {
					oldByte = old[idx]
				}
				out[written+j] = oldByte + diffChunk[j]
			}
			written += addLen
			oldpos += addLen
		}

		if copyLen > 0 {
			if _, err := io.ReadFull(extra, out[written:written+copyLen]); err != nil {
				return written, fmt.Errorf("%w: reading extra payload: %v", ErrUnexpectedEOF, err)
			}
			if err := chargeInput(copyLen); err != nil {
				return written, err
			}
			written += copyLen
		}

		newOldpos := oldpos + seek
		if (seek > 0 && newOldpos < oldpos) || (seek < 0 && newOldpos > oldpos) {
			return written, fmt.Errorf("%w: seek overflow at oldpos %d seek %d", ErrInvalidData, oldpos, seek)
		}
		if newOldpos < 0 {
			return written, fmt.Errorf("%w: seek produced negative old position %d", ErrInvalidData, newOldpos)
		}
		oldpos = newOldpos
	}

	return written, nil
}
