package llrp

import "testing"

// A BitArray's payload length is NumBits/8, truncated toward zero, not
// rounded up. A 15-bit count carries exactly 1 payload byte on the wire;
// the 16th bit is the sender's responsibility to pad for if it matters.
func TestReadBitArrayTruncatesNonByteAlignedCount(t *testing.T) {
	e := NewEncoder()
	e.WriteUint16(15)
	e.WriteBytes([]byte{0xAB})
	e.WriteUint8(0xFF) // a following field's byte; must survive untouched

	d := NewDecoder(e.Bytes(), DecodeOptions{Strict: true})
	ba, err := d.ReadBitArray()
	if err != nil {
		t.Fatalf("ReadBitArray: %v", err)
	}
	if ba.NumBits != 15 {
		t.Fatalf("NumBits = %d, want 15", ba.NumBits)
	}
	if len(ba.Data) != 1 || ba.Data[0] != 0xAB {
		t.Fatalf("Data = %v, want [0xAB]", ba.Data)
	}

	next, err := d.ReadUint8()
	if err != nil {
		t.Fatalf("ReadUint8 (following field): %v", err)
	}
	if next != 0xFF {
		t.Fatalf("following field = %#x, want 0xff (rounding up would have stolen this byte)", next)
	}
	if d.Remaining() != 0 {
		t.Fatalf("Remaining = %d, want 0", d.Remaining())
	}
}

// A zero-bit BitArray has no payload bytes at all.
func TestReadBitArrayZeroBits(t *testing.T) {
	e := NewEncoder()
	e.WriteUint16(0)

	d := NewDecoder(e.Bytes(), DecodeOptions{Strict: true})
	ba, err := d.ReadBitArray()
	if err != nil {
		t.Fatalf("ReadBitArray: %v", err)
	}
	if ba.NumBits != 0 || len(ba.Data) != 0 {
		t.Fatalf("got %+v, want zero bits and no payload", ba)
	}
}

// WriteBitArray/ReadBitArray round-trip for byte-aligned bit counts.
func TestBitArrayRoundTripByteAligned(t *testing.T) {
	e := NewEncoder()
	want := BitArray{NumBits: 16, Data: []byte{0x0F, 0xF0}}
	e.WriteBitArray(want)

	d := NewDecoder(e.Bytes(), DecodeOptions{Strict: true})
	got, err := d.ReadBitArray()
	if err != nil {
		t.Fatalf("ReadBitArray: %v", err)
	}
	if got.NumBits != want.NumBits || len(got.Data) != len(want.Data) ||
		got.Data[0] != want.Data[0] || got.Data[1] != want.Data[1] {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
