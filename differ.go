// SPDX-License-Identifier: MIT

package bsdiff

import "bytes"

// goodEnoughMargin is the acceptance-predicate slack used when deciding
// whether a new candidate match is significantly better than continuing to
// extend the previous one. Kept as an unexported constant rather than a
// tunable, matching the reference bsdiff algorithm bit-for-bit.
const goodEnoughMargin = 8

// controlTuple is one (add_len, copy_len, seek) step of reconstruction.
type controlTuple struct {
	addLen  int64
	copyLen int64
	seek    int64
}

func (c controlTuple) appendTo(buf *bytes.Buffer) {
	var tmp [8]byte
	encodeInt64(c.addLen, tmp[:])
	buf.Write(tmp[:])
	encodeInt64(c.copyLen, tmp[:])
	buf.Write(tmp[:])
	encodeInt64(c.seek, tmp[:])
	buf.Write(tmp[:])
}

// buildDelta runs the greedy bsdiff differ over old and new, returning the
// raw (uncompressed) control, diff and extra streams.
func buildDelta(old, new []byte) (control, diff, extra []byte) {
	I := buildSuffixArray(old)
	oldsize := len(old)
	newsize := len(new)

	var ctrlBuf, diffBuf, extraBuf bytes.Buffer

	var pos, length int
	var lastscan, lastpos, lastoffset int

	scan := 0
	for scan < newsize {
		var oldscore int
		scan += length
		scsc := scan

		for scan < newsize {
			pos, length = search(I, old, new[scan:], 0, oldsize)

			for ; scsc < scan+length; scsc++ {
				if scsc+lastoffset < oldsize && old[scsc+lastoffset] == new[scsc] {
					oldscore++
				}
			}

			if (length == oldscore && length != 0) || length > oldscore+goodEnoughMargin {
				break
			}

			if scan+lastoffset < oldsize && old[scan+lastoffset] == new[scan] {
				oldscore--
			}
			scan++
		}

		if length != oldscore || scan == newsize {
			var s, sf, lenf int
			for i := 0; lastscan+i < scan && lastpos+i < oldsize; {
				if old[lastpos+i] == new[lastscan+i] {
					s++
				}
				i++
				if s*2-i > sf*2-lenf {
					sf = s
					lenf = i
				}
			}

			lenb := 0
			if scan < newsize {
				var s, sb int
				for i := 1; scan >= lastscan+i && pos >= i; i++ {
					if old[pos-i] == new[scan-i] {
						s++
					}
					if s*2-i > sb*2-lenb {
						sb = s
						lenb = i
					}
				}
			}

			if lastscan+lenf > scan-lenb {
				overlap := (lastscan + lenf) - (scan - lenb)
				var s, ss, lens int
				for i := 0; i < overlap; i++ {
					if new[lastscan+lenf-overlap+i] == old[lastpos+lenf-overlap+i] {
						s++
					}
					if new[scan-lenb+i] == old[pos-lenb+i] {
						s--
					}
					if s > ss {
						ss = s
						lens = i + 1
					}
				}
				lenf += lens - overlap
				lenb -= lens
			}

			for i := 0; i < lenf; i++ {
				diffBuf.WriteByte(new[lastscan+i] - old[lastpos+i])
			}
			extraBuf.Write(new[lastscan+lenf : scan-lenb])

			tuple := controlTuple{
				addLen:  int64(lenf),
				copyLen: int64((scan - lenb) - (lastscan + lenf)),
				seek:    int64((pos - lenb) - (lastpos + lenf)),
			}
			tuple.appendTo(&ctrlBuf)

			lastscan = scan - lenb
			lastpos = pos - lenb
			lastoffset = pos - scan
		}
	}

	// An empty new is still described by one zero-length tuple.
	if newsize == 0 {
		controlTuple{}.appendTo(&ctrlBuf)
	}

	return ctrlBuf.Bytes(), diffBuf.Bytes(), extraBuf.Bytes()
}
