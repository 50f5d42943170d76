package codec

import "github.com/golang/snappy"

// snappyCodec mirrors gzipCodec for payloads a producer stored snappy-
// compressed, a common choice for latency-sensitive Redis clients.
type snappyCodec struct{}

func (snappyCodec) Serialize(data []byte) ([]byte, error) {
	return snappy.Encode(nil, data), nil
}

func (snappyCodec) Deserialize(data []byte) ([]byte, error) {
	return snappy.Decode(nil, data)
}
