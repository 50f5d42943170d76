package codec

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
)

// gzipCodec lets respdump inflate a payload that a producer stored gzip-
// compressed inside a bulk string, so the inspector can show the plaintext
// instead of a block of noise.
type gzipCodec struct{}

func (gzipCodec) Serialize(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)

	// w must be closed before reading buf.Bytes(): Close flushes the gzip
	// footer, a defer here would run after the return value is already read.
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, fmt.Errorf("gzip write failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("gzip close failed: %w", err)
	}
	return buf.Bytes(), nil
}

func (gzipCodec) Deserialize(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gzip reader init failed: %w", err)
	}
	defer r.Close()

	decoded, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gzip read failed: %w", err)
	}
	return decoded, nil
}
