package resp

import (
	"strconv"
	"unicode/utf8"
)

// lineResult is returned by readLine. Exactly one of its constructors
// applies: a complete line, or a request for more bytes with the cursor
// already advanced past what was safely scanned.
type lineResult struct {
	complete   bool
	text       string
	nextCursor int
}

// readLine scans buf[cursor:] for the first '\r'. If it finds one and the
// following byte is already present, it returns the decoded text of
// buf[start:crIndex] and a cursor positioned just past the CRLF. If no
// '\r' exists yet, or the '\r' is the last byte currently buffered, it
// reports that more bytes are needed and advances the cursor only as far
// as it safely scanned, so a re-feed never rescans settled bytes.
//
// A dangling '\r' is deliberately NOT skipped: the returned cursor points
// at it, so the next call re-examines it in case the next byte turns out
// not to be '\n'.
func readLine(buf []byte, cursor, start int) (lineResult, error) {
	cr := -1
	for i := cursor; i < len(buf); i++ {
		if buf[i] == '\r' {
			cr = i
			break
		}
	}
	if cr < 0 {
		return lineResult{nextCursor: len(buf)}, nil
	}

	lfIndex := cr + 1
	if lfIndex >= len(buf) {
		// The '\r' is buffered but its successor is not yet available.
		// Rewind to the '\r' itself so the next feed re-checks it.
		return lineResult{nextCursor: cr}, nil
	}

	if buf[lfIndex] != '\n' {
		return lineResult{}, invalidLineErr(
			"expected '\\n' after '\\r', got " + strconv.QuoteRune(rune(buf[lfIndex])))
	}

	raw := buf[start:cr]
	if !utf8.Valid(raw) {
		return lineResult{}, invalidLineErr("line is not valid UTF-8")
	}
	text := string(raw)
	if containsByte(raw, '\n') {
		return lineResult{}, invalidLineErr("line contains premature '\\n'")
	}

	return lineResult{complete: true, text: text, nextCursor: cr + 2}, nil
}

func containsByte(b []byte, target byte) bool {
	for _, c := range b {
		if c == target {
			return true
		}
	}
	return false
}

// readBlob returns the size payload bytes at buf[cursor:] plus their
// trailing CRLF, iff all of it is already buffered. The trailing CRLF is
// required and, per the strict reading this module adopts, verified
// byte-for-byte rather than merely counted.
func readBlob(buf []byte, cursor, size int) (data []byte, nextCursor int, ok bool, err error) {
	end := cursor + size + 2
	if len(buf) < end {
		return nil, 0, false, nil
	}
	if buf[cursor+size] != '\r' || buf[cursor+size+1] != '\n' {
		return nil, 0, false, invalidLineErr("expected CRLF after payload")
	}
	data = buf[cursor : cursor+size]
	return data, end, true, nil
}

// sizeResult is the outcome of readSize: a known non-negative size, the
// -1 null sentinel, or a request for more bytes.
type sizeResult struct {
	kind       sizeResultKind
	size       int
	nextCursor int
}

type sizeResultKind int

const (
	sizeResultNeedMore sizeResultKind = iota
	sizeResultNull
	sizeResultSize
)

// readSize layers a signed 64-bit decimal parse on top of readLine. A
// value below -1 is a parse error; -1 is the null sentinel; any other
// value is a size.
func readSize(buf []byte, cursor, start int) (sizeResult, error) {
	line, err := readLine(buf, cursor, start)
	if err != nil {
		return sizeResult{}, err
	}
	if !line.complete {
		return sizeResult{kind: sizeResultNeedMore, nextCursor: line.nextCursor}, nil
	}

	n, err := strconv.ParseInt(line.text, 10, 64)
	if err != nil {
		return sizeResult{}, invalidSizeTextErr(line.text)
	}
	if n < -1 {
		return sizeResult{}, invalidSizeErr(n)
	}
	if n == -1 {
		return sizeResult{kind: sizeResultNull, nextCursor: line.nextCursor}, nil
	}
	if n > int64(^uint(0)>>1) {
		return sizeResult{}, invalidSizeErr(n)
	}
	return sizeResult{kind: sizeResultSize, size: int(n), nextCursor: line.nextCursor}, nil
}
