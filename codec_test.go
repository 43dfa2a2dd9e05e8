package llrp

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecoderPrimitiveRoundTrip(t *testing.T) {
	e := NewEncoder()
	e.WriteUint8(0xAB)
	e.WriteUint16(0x1234)
	e.WriteUint32(0xDEADBEEF)
	e.WriteUint64(0x0102030405060708)
	e.WriteInt8(-1)
	e.WriteEPC96([12]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})
	e.WriteString("epc")
	e.WriteBitArray(BitArray{NumBits: 8, Data: []byte{0b101_00000}})

	d := NewDecoder(e.Bytes(), DecodeOptions{Strict: true})

	u8, err := d.ReadUint8()
	if err != nil || u8 != 0xAB {
		t.Fatalf("ReadUint8 = %v, %v", u8, err)
	}
	u16, err := d.ReadUint16()
	if err != nil || u16 != 0x1234 {
		t.Fatalf("ReadUint16 = %v, %v", u16, err)
	}
	u32, err := d.ReadUint32()
	if err != nil || u32 != 0xDEADBEEF {
		t.Fatalf("ReadUint32 = %v, %v", u32, err)
	}
	u64, err := d.ReadUint64()
	if err != nil || u64 != 0x0102030405060708 {
		t.Fatalf("ReadUint64 = %v, %v", u64, err)
	}
	i8, err := d.ReadInt8()
	if err != nil || i8 != -1 {
		t.Fatalf("ReadInt8 = %v, %v", i8, err)
	}
	epc, err := d.ReadEPC96()
	if err != nil || epc != [12]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12} {
		t.Fatalf("ReadEPC96 = %v, %v", epc, err)
	}
	s, err := d.ReadString()
	if err != nil || s != "epc" {
		t.Fatalf("ReadString = %q, %v", s, err)
	}
	ba, err := d.ReadBitArray()
	if err != nil || ba.NumBits != 8 || !bytes.Equal(ba.Data, []byte{0b101_00000}) {
		t.Fatalf("ReadBitArray = %+v, %v", ba, err)
	}
	if d.Remaining() != 0 {
		t.Fatalf("Remaining = %d, want 0", d.Remaining())
	}
}

func TestReadBytesToEnd(t *testing.T) {
	e := NewEncoder()
	e.WriteBytes([]byte{0x01, 0x02, 0x03})
	d := NewDecoder(e.Bytes(), DecodeOptions{Strict: true})
	got, err := d.ReadBytesToEnd(len(e.Bytes()))
	if err != nil {
		t.Fatalf("ReadBytesToEnd: %v", err)
	}
	if !bytes.Equal(got, []byte{0x01, 0x02, 0x03}) {
		t.Fatalf("got %x", got)
	}
}

// tvThing is a minimal TV-shaped fixture satisfying tvValue[tvThing].
type tvThing struct{ V uint16 }

func (v *tvThing) CanDecodeTvType(typeNum uint16) bool { return typeNum == 6 }
func (v *tvThing) DecodeTV(d *Decoder) error {
	if err := d.BeginTV(6); err != nil {
		return err
	}
	x, err := d.ReadUint16()
	if err != nil {
		return err
	}
	v.V = x
	return nil
}
func (v *tvThing) EncodeTV(e *Encoder) {
	e.WriteTV(6)
	e.WriteUint16(v.V)
}

func TestTVHeaderRoundTrip(t *testing.T) {
	e := NewEncoder()
	want := tvThing{V: 42}
	want.EncodeTV(e)

	d := NewDecoder(e.Bytes(), DecodeOptions{Strict: true})
	got, err := DecodeTVOption[tvThing, *tvThing](d)
	if err != nil {
		t.Fatalf("DecodeTVOption: %v", err)
	}
	if got == nil || got.V != 42 {
		t.Fatalf("got %+v, want V=42", got)
	}
	if d.Remaining() != 0 {
		t.Fatalf("Remaining = %d, want 0", d.Remaining())
	}
}

func TestTVOptionNoMatchLeavesCursor(t *testing.T) {
	e := NewEncoder()
	e.WriteTV(7) // a different TV type
	e.WriteUint8(0x01)
	before := e.Bytes()

	d := NewDecoder(before, DecodeOptions{Strict: true})
	got, err := DecodeTVOption[tvThing, *tvThing](d)
	if err != nil {
		t.Fatalf("DecodeTVOption: %v", err)
	}
	if got != nil {
		t.Fatalf("got %+v, want nil", got)
	}
	if d.Remaining() != len(before) {
		t.Fatalf("Remaining = %d, want %d (cursor should not advance)", d.Remaining(), len(before))
	}
}

// tlvThing is a minimal TLV-shaped fixture satisfying tlvValue[tlvThing].
type tlvThing struct{ V uint32 }

func (v *tlvThing) CanDecodeType(typeNum uint16) bool { return typeNum == 900 }
func (v *tlvThing) DecodeTLV(d *Decoder) error {
	bodyEnd, err := d.BeginTLV(900)
	if err != nil {
		return err
	}
	x, err := d.ReadUint32()
	if err != nil {
		return err
	}
	v.V = x
	return d.EndTLV(bodyEnd)
}
func (v *tlvThing) EncodeTLV(e *Encoder) {
	token := e.BeginTLV(900)
	e.WriteUint32(v.V)
	e.EndTLV(token)
}

func TestTLVVecRoundTrip(t *testing.T) {
	e := NewEncoder()
	want := []tlvThing{{V: 1}, {V: 2}, {V: 3}}
	EncodeVec[tlvThing, *tlvThing](e, want)

	d := NewDecoder(e.Bytes(), DecodeOptions{Strict: true})
	got, err := DecodeVec[tlvThing, *tlvThing](d)
	if err != nil {
		t.Fatalf("DecodeVec: %v", err)
	}
	if len(got) != 3 || got[0].V != 1 || got[1].V != 2 || got[2].V != 3 {
		t.Fatalf("got %+v", got)
	}
}

func TestEndTLVTrailingBytesStrict(t *testing.T) {
	e := NewEncoder()
	token := e.BeginTLV(900)
	e.WriteUint32(1)
	e.WriteUint8(0xFF) // extra trailing byte inside the declared body
	e.EndTLV(token)

	d := NewDecoder(e.Bytes(), DecodeOptions{Strict: true})
	var v tlvThing
	err := v.DecodeTLV(d)
	var lerr *Error
	if !errors.As(err, &lerr) || lerr.Kind != KindTrailingBytes {
		t.Fatalf("got %v, want KindTrailingBytes", err)
	}
}

func TestEndTLVTrailingBytesRelaxed(t *testing.T) {
	e := NewEncoder()
	token := e.BeginTLV(900)
	e.WriteUint32(1)
	e.WriteUint8(0xFF)
	e.EndTLV(token)

	d := NewDecoder(e.Bytes(), DecodeOptions{Strict: false})
	var v tlvThing
	if err := v.DecodeTLV(d); err != nil {
		t.Fatalf("DecodeTLV (relaxed): %v", err)
	}
	if v.V != 1 {
		t.Fatalf("V = %d, want 1", v.V)
	}
}

func TestBeginTLVWrongTypeErrors(t *testing.T) {
	e := NewEncoder()
	token := e.BeginTLV(901)
	e.EndTLV(token)

	d := NewDecoder(e.Bytes(), DecodeOptions{Strict: true})
	var v tlvThing
	err := v.DecodeTLV(d)
	var lerr *Error
	if !errors.As(err, &lerr) || lerr.Kind != KindInvalidType {
		t.Fatalf("got %v, want KindInvalidType", err)
	}
}

func TestReadArrayRoundTrip(t *testing.T) {
	e := NewEncoder()
	WriteArray(e, []uint16{10, 20, 30}, func(e *Encoder, v uint16) { e.WriteUint16(v) })

	d := NewDecoder(e.Bytes(), DecodeOptions{Strict: true})
	got, err := ReadArray(d, func(d *Decoder) (uint16, error) { return d.ReadUint16() })
	if err != nil {
		t.Fatalf("ReadArray: %v", err)
	}
	if len(got) != 3 || got[0] != 10 || got[1] != 20 || got[2] != 30 {
		t.Fatalf("got %v", got)
	}
}
