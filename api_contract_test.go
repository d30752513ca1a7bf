package bsdiff

import (
	"bytes"
	"errors"
	"testing"
)

func TestAPIContract_EmptyOldNonEmptyNew(t *testing.T) {
	old := []byte{}
	new_ := []byte("abcdef")

	patch, err := Diff(old, new_, nil)
	if err != nil {
		t.Fatalf("Diff failed: %v", err)
	}

	out, err := Apply(old, patch, nil)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !bytes.Equal(out, new_) {
		t.Fatalf("round trip mismatch: got %q want %q", out, new_)
	}
}

func TestAPIContract_SingleByteSubstitution(t *testing.T) {
	old := []byte("Hello, world!")
	new_ := []byte("Hello, World!")

	patch, err := Diff(old, new_, nil)
	if err != nil {
		t.Fatalf("Diff failed: %v", err)
	}
	out, err := Apply(old, patch, nil)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !bytes.Equal(out, new_) {
		t.Fatalf("round trip mismatch: got %q want %q", out, new_)
	}
}

func TestAPIContract_RejectsUnknownMagic(t *testing.T) {
	patch := make([]byte, 32)
	copy(patch, []byte("XYZXYZXY"))

	_, err := Apply([]byte("old"), patch, nil)
	if !errors.Is(err, ErrInvalidData) {
		t.Fatalf("expected ErrInvalidData, got %v", err)
	}
}

func TestAPIContract_RejectsControlLengthNotMultipleOf24(t *testing.T) {
	old := []byte("0123456789")
	new_ := []byte("0123456789X")

	_, err := Diff(old, new_, DefaultDiffOptions())
	if err != nil {
		t.Fatalf("Diff failed: %v", err)
	}

	// Corrupt the declared (compressed) control length so the decompressed
	// control stream can no longer land on a 24-byte boundary is hard to
	// force externally; instead exercise the check directly.
	_, err = applyDelta(old, make([]byte, 23), nil, nil, 0)
	if !errors.Is(err, ErrInvalidData) {
		t.Fatalf("expected ErrInvalidData for misaligned control stream, got %v", err)
	}
}

func TestAPIContract_RejectsOversizedNewSize(t *testing.T) {
	patch := make([]byte, 32)
	copy(patch, []byte(legacyMagic))
	encodeInt64(0, patch[8:16])
	encodeInt64(0, patch[16:24])
	encodeInt64(3<<30, patch[24:32]) // 3 GiB

	_, err := Apply([]byte{}, patch, nil)
	if !errors.Is(err, ErrResourceExhausted) {
		t.Fatalf("expected ErrResourceExhausted, got %v", err)
	}
}

func TestAPIContract_AllCompressionTagsRoundTrip(t *testing.T) {
	old := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog"), 50)
	new_ := append(append([]byte{}, old[:200]...), []byte("INSERTED PAYLOAD")...)
	new_ = append(new_, old[200:]...)

	algs := []CompressionAlgorithm{AlgNone, AlgBz2, AlgBrotli}
	for _, ctrl := range algs {
		for _, diff := range algs {
			for _, extra := range algs {
				opts := &DiffOptions{ControlAlg: ctrl, DiffAlg: diff, ExtraAlg: extra}
				patch, err := Diff(old, new_, opts)
				if err != nil {
					t.Fatalf("Diff(%v,%v,%v) failed: %v", ctrl, diff, extra, err)
				}
				out, err := Apply(old, patch, nil)
				if err != nil {
					t.Fatalf("Apply(%v,%v,%v) failed: %v", ctrl, diff, extra, err)
				}
				if !bytes.Equal(out, new_) {
					t.Fatalf("round trip mismatch for tags (%v,%v,%v)", ctrl, diff, extra)
				}
			}
		}
	}
}
