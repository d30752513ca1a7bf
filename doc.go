// SPDX-License-Identifier: MIT

/*
Package bsdiff implements the bsdiff binary delta algorithm and the extended
BSDF2 patch container that layers pluggable per-stream compression on top of
it.

A patch is built from an old and a new byte slice and replayed against the
old slice to reconstruct the new one:

	patch, err := bsdiff.Diff(old, new, nil)
	...
	restored, err := bsdiff.Apply(old, patch, nil)

Diff with nil options produces a legacy "BSDIFF40" patch (bzip2 on all three
internal streams), compatible with the original bsdiff/bspatch tools. Passing
a *DiffOptions selects per-stream compression and produces the "BSDF2"
container when any stream uses an algorithm other than bzip2:

	patch, err := bsdiff.Diff(old, new, &bsdiff.DiffOptions{
		ControlAlg: bsdiff.AlgBrotli,
		DiffAlg:    bsdiff.AlgBrotli,
		ExtraAlg:   bsdiff.AlgNone,
	})

Apply accepts either container form transparently. ApplyStream offers a
lower-level entry point that reads control tuples one at a time from an
io.Reader and writes directly into a caller-supplied buffer, for callers
that have already separated the three streams themselves.
*/
package bsdiff
