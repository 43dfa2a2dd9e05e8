package llrp

import "testing"

func TestDecodeBitsPacksMultipleSubByteFields(t *testing.T) {
	// A single reserved-bit header byte: 1 bit flag, 3-bit mode, 4-bit count.
	e := NewEncoder()
	EncodeBits[uint8](e, 1, 1)
	EncodeBits[uint8](e, 0b101, 3)
	EncodeBits[uint8](e, 0b1100, 4)

	if len(e.Bytes()) != 1 {
		t.Fatalf("got %d bytes, want 1 (fields should pack into one byte)", len(e.Bytes()))
	}

	d := NewDecoder(e.Bytes(), DecodeOptions{Strict: true})
	flag, err := DecodeBits[uint8](d, 1)
	if err != nil || flag != 1 {
		t.Fatalf("flag = %v, %v", flag, err)
	}
	mode, err := DecodeBits[uint8](d, 3)
	if err != nil || mode != 0b101 {
		t.Fatalf("mode = %v, %v", mode, err)
	}
	count, err := DecodeBits[uint8](d, 4)
	if err != nil || count != 0b1100 {
		t.Fatalf("count = %v, %v", count, err)
	}
}

func TestDecodeBitsSpanningByteBoundary(t *testing.T) {
	// A 12-bit field followed by a 4-bit field, spanning two bytes.
	e := NewEncoder()
	EncodeBits[uint16](e, 0xABC, 12)
	EncodeBits[uint8](e, 0xD, 4)

	if len(e.Bytes()) != 2 {
		t.Fatalf("got %d bytes, want 2", len(e.Bytes()))
	}

	d := NewDecoder(e.Bytes(), DecodeOptions{Strict: true})
	hi, err := DecodeBits[uint16](d, 12)
	if err != nil || hi != 0xABC {
		t.Fatalf("hi = %x, %v", hi, err)
	}
	lo, err := DecodeBits[uint8](d, 4)
	if err != nil || lo != 0xD {
		t.Fatalf("lo = %x, %v", lo, err)
	}
}

func TestEndTLVTrailingBitsStrict(t *testing.T) {
	e := NewEncoder()
	token := e.BeginTLV(900)
	EncodeBits[uint8](e, 1, 1)
	e.buf = e.bits.flush(e.buf)
	e.EndTLV(token)

	d := NewDecoder(e.Bytes(), DecodeOptions{Strict: true})
	if _, err := d.BeginTLV(900); err != nil {
		t.Fatalf("BeginTLV: %v", err)
	}
	if _, err := DecodeBits[uint8](d, 1); err != nil {
		t.Fatalf("DecodeBits: %v", err)
	}
	// 7 bits of the byte remain unread; in strict mode that's an error.
	err := d.EndTLV(len(e.Bytes()))
	lerr, ok := err.(*Error)
	if !ok || lerr.Kind != KindTrailingBits {
		t.Fatalf("got %v, want KindTrailingBits", err)
	}
}

