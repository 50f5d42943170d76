package feeder

import (
	"bytes"
	"testing"
)

func collect(seq func(func([]byte) bool)) [][]byte {
	var out [][]byte
	seq(func(b []byte) bool {
		cp := make([]byte, len(b))
		copy(cp, b)
		out = append(out, cp)
		return true
	})
	return out
}

func reassemble(frags [][]byte) []byte {
	var out []byte
	for _, f := range frags {
		out = append(out, f...)
	}
	return out
}

func TestFixedSizeReassembles(t *testing.T) {
	data := []byte("0123456789abcdef")
	frags := collect(FixedSize(data, 5))
	if got := reassemble(frags); !bytes.Equal(got, data) {
		t.Errorf("reassembled = %q, want %q", got, data)
	}
	for i, f := range frags[:len(frags)-1] {
		if len(f) != 5 {
			t.Errorf("fragment %d has length %d, want 5", i, len(f))
		}
	}
}

func TestFixedSizeZeroMeansWhole(t *testing.T) {
	data := []byte("hello")
	frags := collect(FixedSize(data, 0))
	if len(frags) != 1 || !bytes.Equal(frags[0], data) {
		t.Errorf("FixedSize(data, 0) = %v, want a single whole fragment", frags)
	}
}

func TestByteAtATime(t *testing.T) {
	data := []byte("abc")
	frags := collect(ByteAtATime(data))
	if len(frags) != 3 {
		t.Fatalf("got %d fragments, want 3", len(frags))
	}
	for i, f := range frags {
		if len(f) != 1 || f[0] != data[i] {
			t.Errorf("fragment %d = %v, want [%d]", i, f, data[i])
		}
	}
}

func TestRandomReassemblesAndIsDeterministic(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")

	first := collect(Random(data, 42, 4))
	second := collect(Random(data, 42, 4))

	if got := reassemble(first); !bytes.Equal(got, data) {
		t.Errorf("reassembled = %q, want %q", got, data)
	}
	if len(first) != len(second) {
		t.Fatalf("same seed produced different fragment counts: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !bytes.Equal(first[i], second[i]) {
			t.Errorf("fragment %d differs between runs: %v vs %v", i, first[i], second[i])
		}
	}
	for _, f := range first {
		if len(f) < 1 || len(f) > 4 {
			t.Errorf("fragment length %d outside [1,4]", len(f))
		}
	}
}

func TestRandomDifferentSeeds(t *testing.T) {
	data := bytes.Repeat([]byte("x"), 64)
	a := collect(Random(data, 1, 8))
	b := collect(Random(data, 2, 8))
	if len(a) == len(b) {
		same := true
		for i := range a {
			if len(a[i]) != len(b[i]) {
				same = false
				break
			}
		}
		if same {
			t.Skip("seeds happened to produce identical fragment sizes; not a failure, just uninformative")
		}
	}
}

func TestFixedSizeEmptyInput(t *testing.T) {
	frags := collect(FixedSize(nil, 4))
	if len(frags) != 0 {
		t.Errorf("expected no fragments for empty input, got %v", frags)
	}
}
