package envelope

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/llrp-go/llrp"
)

func TestWriteMessageThenReadMessage(t *testing.T) {
	want := Message{Ver: 1, Type: 1, ID: 12345, Value: []byte{0x01, 0x02, 0x03, 0x04}}

	var buf bytes.Buffer
	if err := WriteMessage(&buf, want); err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}

	got, err := ReadMessage(&buf)
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	if got.Ver != want.Ver || got.Type != want.Type || got.ID != want.ID {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if !bytes.Equal(got.Value, want.Value) {
		t.Fatalf("value mismatch: got %x, want %x", got.Value, want.Value)
	}
}

func TestWriteMessageEmptyBody(t *testing.T) {
	want := Message{Ver: 1, Type: 62, ID: 0}

	var buf bytes.Buffer
	if err := WriteMessage(&buf, want); err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}
	if buf.Len() != headerLength {
		t.Fatalf("got %d bytes, want %d", buf.Len(), headerLength)
	}

	got, err := ReadMessage(&buf)
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	if len(got.Value) != 0 {
		t.Fatalf("got %d-byte value, want empty", len(got.Value))
	}
}

func TestWriteMessagePrefixPacking(t *testing.T) {
	msg := Message{Ver: 1, Type: 0x3FF, ID: 0}
	var buf bytes.Buffer
	if err := WriteMessage(&buf, msg); err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}
	raw := buf.Bytes()
	// ver=1 (0b001), type=0x3FF (10 bits all set):
	// byte0 = (ver<<2) | (type>>8) = 0b000001 << 2 | 0b11 = 0b00000111
	if raw[0] != 0b0000_0111 {
		t.Fatalf("byte0 = %08b, want %08b", raw[0], 0b0000_0111)
	}
	if raw[1] != 0xFF {
		t.Fatalf("byte1 = %02x, want ff", raw[1])
	}
}

func TestReadMessageLengthTooShort(t *testing.T) {
	buf := []byte{
		0x04, 0x01, // ver=1, type=1
		0x00, 0x00, 0x00, 0x09, // length=9, below the 10-byte floor
		0x00, 0x00, 0x00, 0x00,
	}
	_, err := ReadMessage(bytes.NewReader(buf))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var e *llrp.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *llrp.Error, got %T", err)
	}
	if e.Kind != llrp.KindTlvLengthInvalid {
		t.Fatalf("got Kind %v, want KindTlvLengthInvalid", e.Kind)
	}
}

func TestReadMessageShortBody(t *testing.T) {
	buf := []byte{
		0x04, 0x01,
		0x00, 0x00, 0x00, 0x0C, // length=12, body should be 2 bytes but only 1 follows
		0x00, 0x00, 0x00, 0x00,
		0xAB,
	}
	_, err := ReadMessage(bytes.NewReader(buf))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var e *llrp.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *llrp.Error, got %T", err)
	}
	if e.Kind != llrp.KindIO {
		t.Fatalf("got Kind %v, want KindIO", e.Kind)
	}
}

func TestReadMessageEOF(t *testing.T) {
	_, err := ReadMessage(bytes.NewReader(nil))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var e *llrp.Error
	if !errors.As(err, &e) || e.Kind != llrp.KindIO {
		t.Fatalf("got %v, want a wrapped io error", err)
	}
	if !errors.Is(e.Wrapped, io.EOF) {
		t.Fatalf("wrapped error = %v, want io.EOF", e.Wrapped)
	}
}
