package resp

import (
	"reflect"
	"testing"
)

// roundTrip encodes v and feeds the result straight back through a fresh
// Parser, asserting the parser reproduces v exactly.
func roundTrip(t *testing.T, v RespValue) {
	t.Helper()
	p := NewDefaultParser()
	got, err := p.Feed(v.Encode())
	if err != nil {
		t.Fatalf("Feed(Encode(%#v)) error = %v", v, err)
	}
	want := []RespValue{v}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Feed(Encode(%#v)) = %#v, want %#v", v, got, want)
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	ss, err := NewSimpleString("OK")
	if err != nil {
		t.Fatal(err)
	}
	errVal, err := NewError("ERR something bad happened")
	if err != nil {
		t.Fatal(err)
	}

	values := []RespValue{
		ss,
		errVal,
		NewInteger(0),
		NewInteger(-12345),
		NewInteger(9223372036854775807),
		NewBulkString([]byte("hello world")),
		NewBulkString([]byte{}),
		NewBulkString([]byte{0x00, 0x01, 0xff, '\r', '\n'}),
		NewNullBulkString(),
		NewNullArray(),
		NewArray(nil),
		NewArray([]RespValue{NewInteger(1), NewInteger(2), NewInteger(3)}),
		MakeCommand([][]byte{[]byte("SET"), []byte("key"), []byte("value")}),
	}

	for _, v := range values {
		v := v
		t.Run(v.Kind().String(), func(t *testing.T) {
			roundTrip(t, v)
		})
	}
}

func TestEncodeParseRoundTripNested(t *testing.T) {
	nested := NewArray([]RespValue{
		NewNullArray(),
		NewArray([]RespValue{NewBulkString([]byte("hello")), NewBulkString([]byte("world"))}),
		NewArray([]RespValue{
			SimpleString{Text: "test"},
			Error{Text: "test3"},
			NewInteger(-12345),
			NewBulkString([]byte("ab")),
			NewNullBulkString(),
		}),
	})
	roundTrip(t, nested)
}

func TestNewSimpleStringRejectsCRLF(t *testing.T) {
	for _, text := range []string{"bad\r", "bad\n", "bad\r\ninjected"} {
		if _, err := NewSimpleString(text); err == nil {
			t.Errorf("NewSimpleString(%q) expected error, got nil", text)
		}
	}
}

func TestNewErrorRejectsCRLF(t *testing.T) {
	for _, text := range []string{"bad\r", "bad\n"} {
		if _, err := NewError(text); err == nil {
			t.Errorf("NewError(%q) expected error, got nil", text)
		}
	}
}

func TestMakeCommandEncoding(t *testing.T) {
	cmd := MakeCommand([][]byte{[]byte("GET"), []byte("key")})
	want := "*2\r\n$3\r\nGET\r\n$3\r\nkey\r\n"
	if string(cmd.Encode()) != want {
		t.Errorf("MakeCommand().Encode() = %q, want %q", cmd.Encode(), want)
	}
}

func TestArrayEncodeEmpty(t *testing.T) {
	if got, want := string(NewArray(nil).Encode()), "*0\r\n"; got != want {
		t.Errorf("empty Array.Encode() = %q, want %q", got, want)
	}
}

func TestBulkStringEncodeEmpty(t *testing.T) {
	if got, want := string(NewBulkString(nil).Encode()), "$0\r\n\r\n"; got != want {
		t.Errorf("empty BulkString.Encode() = %q, want %q", got, want)
	}
}
