package resp

import (
	"reflect"
	"testing"
)

func TestReadLine(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		buf := []byte("hello!\r\n")
		res, err := readLine(buf, 0, 0)
		if err != nil {
			t.Fatalf("readLine() error = %v", err)
		}
		if !res.complete || res.text != "hello!" || res.nextCursor != 8 {
			t.Errorf("readLine() = %#v, want complete line %q at cursor 8", res, "hello!")
		}
	})

	t.Run("invalid CR without LF", func(t *testing.T) {
		buf := []byte("hello!\rx")
		if _, err := readLine(buf, 0, 0); err == nil {
			t.Error("readLine() expected error, got nil")
		}
	})

	t.Run("invalid embedded LF", func(t *testing.T) {
		buf := []byte("hel\nlo!\r\n")
		if _, err := readLine(buf, 0, 0); err == nil {
			t.Error("readLine() expected error, got nil")
		}
	})

	t.Run("remainder", func(t *testing.T) {
		buf := []byte("hello!\r\nextra")
		res, err := readLine(buf, 0, 0)
		if err != nil {
			t.Fatalf("readLine() error = %v", err)
		}
		if !res.complete || res.text != "hello!" || res.nextCursor != 8 {
			t.Errorf("readLine() = %#v, want complete line %q at cursor 8", res, "hello!")
		}
	})

	t.Run("none progresses cursor", func(t *testing.T) {
		buf := []byte("hello!")
		res, err := readLine(buf, 0, 0)
		if err != nil {
			t.Fatalf("readLine() error = %v", err)
		}
		if res.complete || res.nextCursor != 6 {
			t.Errorf("readLine() = %#v, want incomplete at cursor 6", res)
		}
	})

	t.Run("end on CR", func(t *testing.T) {
		buf := []byte("hello!\r")
		res, err := readLine(buf, 0, 0)
		if err != nil {
			t.Fatalf("readLine() error = %v", err)
		}
		if res.complete || res.nextCursor != 6 {
			t.Errorf("readLine() = %#v, want incomplete rewound to the '\\r' at cursor 6", res)
		}
	})

	t.Run("offset", func(t *testing.T) {
		buf := []byte("123hello!\r\nextra")
		res, err := readLine(buf, 3, 3)
		if err != nil {
			t.Fatalf("readLine() error = %v", err)
		}
		if !res.complete || res.text != "hello!" || res.nextCursor != 11 {
			t.Errorf("readLine() = %#v, want complete line %q at cursor 11", res, "hello!")
		}
	})

	t.Run("offset end on CR", func(t *testing.T) {
		buf := []byte("123hello!\r")
		res, err := readLine(buf, 3, 3)
		if err != nil {
			t.Fatalf("readLine() error = %v", err)
		}
		if res.complete || res.nextCursor != 9 {
			t.Errorf("readLine() = %#v, want incomplete rewound to the '\\r' at cursor 9", res)
		}
	})

	t.Run("offset start", func(t *testing.T) {
		buf := []byte("123hello!\r\nextra")
		res, err := readLine(buf, 3, 0)
		if err != nil {
			t.Fatalf("readLine() error = %v", err)
		}
		if !res.complete || res.text != "123hello!" || res.nextCursor != 11 {
			t.Errorf("readLine() = %#v, want complete line %q at cursor 11", res, "123hello!")
		}
	})

	t.Run("resume re-examines a dangling CR", func(t *testing.T) {
		first, err := readLine([]byte("hello!\r"), 0, 0)
		if err != nil {
			t.Fatalf("readLine() error = %v", err)
		}
		if first.complete {
			t.Fatal("readLine() unexpectedly completed on a dangling '\\r'")
		}
		second, err := readLine([]byte("hello!\r\n"), first.nextCursor, 0)
		if err != nil {
			t.Fatalf("readLine() error = %v", err)
		}
		if !second.complete || second.text != "hello!" {
			t.Errorf("readLine() resumed = %#v, want complete line %q", second, "hello!")
		}
	})
}

func TestReadBlob(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		buf := []byte("test\r\n")
		data, end, ok, err := readBlob(buf, 0, 4)
		if err != nil {
			t.Fatalf("readBlob() error = %v", err)
		}
		if !ok || string(data) != "test" || end != 6 {
			t.Errorf("readBlob() = data=%q end=%d ok=%v, want %q 6 true", data, end, ok, "test")
		}
	})

	t.Run("short", func(t *testing.T) {
		buf := []byte("test\r")
		_, _, ok, err := readBlob(buf, 0, 4)
		if err != nil {
			t.Fatalf("readBlob() error = %v", err)
		}
		if ok {
			t.Error("readBlob() expected ok = false for a truncated payload")
		}
	})

	t.Run("offset", func(t *testing.T) {
		buf := []byte("1234test\r\n")
		data, end, ok, err := readBlob(buf, 4, 4)
		if err != nil {
			t.Fatalf("readBlob() error = %v", err)
		}
		if !ok || string(data) != "test" || end != 10 {
			t.Errorf("readBlob() = data=%q end=%d ok=%v, want %q 10 true", data, end, ok, "test")
		}
	})

	t.Run("malformed trailing CRLF", func(t *testing.T) {
		buf := []byte("testXY")
		if _, _, _, err := readBlob(buf, 0, 4); err == nil {
			t.Error("readBlob() expected error for a non-CRLF trailer, got nil")
		}
	})
}

func TestReadSize(t *testing.T) {
	t.Run("size", func(t *testing.T) {
		res, err := readSize([]byte("5\r\n"), 0, 0)
		if err != nil {
			t.Fatalf("readSize() error = %v", err)
		}
		if res.kind != sizeResultSize || res.size != 5 || res.nextCursor != 3 {
			t.Errorf("readSize() = %#v, want size 5 at cursor 3", res)
		}
	})

	t.Run("null", func(t *testing.T) {
		res, err := readSize([]byte("-1\r\n"), 0, 0)
		if err != nil {
			t.Fatalf("readSize() error = %v", err)
		}
		if res.kind != sizeResultNull {
			t.Errorf("readSize() = %#v, want Null", res)
		}
	})

	t.Run("need more", func(t *testing.T) {
		res, err := readSize([]byte("5"), 0, 0)
		if err != nil {
			t.Fatalf("readSize() error = %v", err)
		}
		if res.kind != sizeResultNeedMore {
			t.Errorf("readSize() = %#v, want NeedMore", res)
		}
	})

	t.Run("below negative one is an error", func(t *testing.T) {
		if _, err := readSize([]byte("-2\r\n"), 0, 0); err == nil {
			t.Error("readSize() expected error for -2, got nil")
		}
	})

	t.Run("non numeric is an error", func(t *testing.T) {
		if _, err := readSize([]byte("nope\r\n"), 0, 0); err == nil {
			t.Error("readSize() expected error for non-numeric text, got nil")
		}
	})
}

func TestReadLineRejectsInvalidUTF8(t *testing.T) {
	buf := append([]byte{0xff, 0xfe}, "\r\n"...)
	if _, err := readLine(buf, 0, 0); err == nil {
		t.Error("readLine() expected error for invalid UTF-8, got nil")
	}
}

func TestReadLineResultTypeShape(t *testing.T) {
	var zero lineResult
	if zero.complete || zero.text != "" || zero.nextCursor != 0 {
		t.Errorf("zero value of lineResult changed shape: %#v", zero)
	}
	_ = reflect.TypeOf(lineResult{})
}
