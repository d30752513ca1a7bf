// SPDX-License-Identifier: MIT

package bsdiff

import "bytes"

// matchlen returns the length of the common prefix of a and b.
func matchlen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// search finds, among the suffixes indexed by I[st:en+1] (sorted
// lexicographically), the one with the longest common prefix against query.
// It returns the suffix's starting offset in old and the match length.
func search(I []int, old, query []byte, st, en int) (pos, n int) {
	if en-st < 2 {
		x := matchlen(old[I[st]:], query)
		y := matchlen(old[I[en]:], query)
		if x > y {
			return I[st], x
		}
		return I[en], y
	}

	x := st + (en-st)/2
	cmpLen := min(len(old)-I[x], len(query))
	if bytes.Compare(old[I[x]:I[x]+cmpLen], query[:cmpLen]) < 0 {
		return search(I, old, query, x, en)
	}
	return search(I, old, query, st, x)
}
