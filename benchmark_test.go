// SPDX-License-Identifier: MIT

package bsdiff

import (
	"bytes"
	"fmt"
	"testing"
)

func benchmarkInputPairs() map[string][2][]byte {
	base := bytes.Repeat([]byte("bsdiff benchmark payload line, repeated for bulk. "), 4096)
	modified := append([]byte{}, base...)
	for i := 1000; i < len(modified) && i < 1064; i++ {
		modified[i] ^= 0xff
	}
	modified = append(modified, []byte("-- appended tail content for the new file --")...)

	return map[string][2][]byte{
		"text-200k": {base, modified},
	}
}

func BenchmarkDiff(b *testing.B) {
	for name, pair := range benchmarkInputPairs() {
		old, new_ := pair[0], pair[1]
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(new_)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := Diff(old, new_, nil); err != nil {
					b.Fatalf("Diff failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkApply(b *testing.B) {
	for name, pair := range benchmarkInputPairs() {
		old, new_ := pair[0], pair[1]
		patch, err := Diff(old, new_, nil)
		if err != nil {
			b.Fatalf("setup Diff failed for %s: %v", name, err)
		}

		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(new_)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := Apply(old, patch, nil); err != nil {
					b.Fatalf("Apply failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	for name, pair := range benchmarkInputPairs() {
		old, new_ := pair[0], pair[1]
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(new_)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				patch, err := Diff(old, new_, nil)
				if err != nil {
					b.Fatalf("Diff failed: %v", err)
				}
				if _, err := Apply(old, patch, nil); err != nil {
					b.Fatalf("Apply failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkBuildSuffixArray(b *testing.B) {
	sizes := []int{1 << 12, 1 << 16}
	for _, n := range sizes {
		data := bytes.Repeat([]byte("suffix array workload "), n/22+1)[:n]
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = buildSuffixArray(data)
			}
		})
	}
}
