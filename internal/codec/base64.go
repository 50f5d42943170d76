package codec

import "encoding/base64"

// base64Codec renders a bulk string payload as printable base64, useful for
// displaying binary-safe values (the RESP2 BulkString payload may contain
// any byte, including CR and LF) in a terminal or log line.
type base64Codec struct{}

func (base64Codec) Serialize(data []byte) ([]byte, error) {
	return []byte(base64.StdEncoding.EncodeToString(data)), nil
}

func (base64Codec) Deserialize(data []byte) ([]byte, error) {
	return base64.StdEncoding.DecodeString(string(data))
}
