// Package feeder splits a byte slice into fragments for driving a
// resp.Parser one chunk at a time. It exists to exercise and demonstrate
// the parser's fragmentation invariance: the same input, split any way,
// must produce the same committed values in the same order.
package feeder

import "iter"

// FixedSize yields consecutive fragments of at most n bytes. n <= 0 is
// treated as "the whole input in one fragment".
func FixedSize(data []byte, n int) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		if n <= 0 {
			if len(data) > 0 {
				yield(data)
			}
			return
		}
		for len(data) > 0 {
			end := n
			if end > len(data) {
				end = len(data)
			}
			if !yield(data[:end]) {
				return
			}
			data = data[end:]
		}
	}
}

// ByteAtATime yields one byte per fragment, the most adversarial
// fragmentation a caller can feed a Parser.
func ByteAtATime(data []byte) iter.Seq[[]byte] {
	return FixedSize(data, 1)
}

// Random yields fragments of pseudo-random size between 1 and maxSize
// bytes (inclusive), deterministic for a given seed so a reported bug is
// reproducible. It uses a small xorshift generator rather than math/rand
// so callers get the exact same split across Go versions and platforms.
func Random(data []byte, seed uint64, maxSize int) iter.Seq[[]byte] {
	if maxSize < 1 {
		maxSize = 1
	}
	return func(yield func([]byte) bool) {
		state := seed
		if state == 0 {
			state = 1
		}
		next := func() uint64 {
			state ^= state << 13
			state ^= state >> 7
			state ^= state << 17
			return state
		}

		for len(data) > 0 {
			n := int(next()%uint64(maxSize)) + 1
			if n > len(data) {
				n = len(data)
			}
			if !yield(data[:n]) {
				return
			}
			data = data[n:]
		}
	}
}
