package tui

import (
	"encoding/hex"
	"strings"
)

// decodeFeedLine turns a line typed into the feed input into raw bytes.
// A "0x" prefix selects hex decoding (spaces allowed between byte pairs,
// for pasting in a wire capture); anything else is fed as literal text
// with "\r\n" and "\n" expanded, so typing "+OK\r\n" behaves as expected.
func decodeFeedLine(line string) ([]byte, error) {
	if strings.HasPrefix(line, "0x") {
		clean := strings.ReplaceAll(line[2:], " ", "")
		return hex.DecodeString(clean)
	}
	replacer := strings.NewReplacer(`\r`, "\r", `\n`, "\n")
	return []byte(replacer.Replace(line)), nil
}
