// Package codec provides optional display-layer transforms for bulk string
// payloads. It is a CLI inspection convenience only: nothing in internal/resp
// imports it, and it never participates in parsing or encoding wire frames.
package codec

import (
	"fmt"
	"strings"
)

// Codec transforms a bulk string payload for human inspection and back.
// Serialize is what a tool applies before showing a payload (e.g. rendering
// binary data as base64); Deserialize reverses it.
type Codec interface {
	Serialize([]byte) ([]byte, error)
	Deserialize([]byte) ([]byte, error)
}

// Get returns a Codec by name. The empty string and "raw" both select the
// identity codec, so callers can treat "no transform requested" the same as
// an explicit pass-through.
func Get(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case "", "raw":
		return identityCodec{}, nil
	case "base64":
		return base64Codec{}, nil
	case "gzip":
		return gzipCodec{}, nil
	case "snappy":
		return snappyCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown codec: %q", name)
	}
}

type identityCodec struct{}

func (identityCodec) Serialize(data []byte) ([]byte, error)   { return data, nil }
func (identityCodec) Deserialize(data []byte) ([]byte, error) { return data, nil }
