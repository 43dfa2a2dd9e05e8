package llrp

/*
value.go contains the fixed, schema-independent primitive read/write
methods generated field bodies call for the Manual and ArrayOfT encoding
kinds (spec.md §4.6): the plain integer widths, the 96-bit EPC, the
length-prefixed UTF-8 string, and the bit array. Because LLRP's primitive
set is small and fixed by the wire format rather than by user-defined
types, this repo gives each primitive a concrete typed method instead of
the teacher's reflection-driven adapter registry (adapt.go/adapt_on.go).
*/

import "encoding/binary"

// ReadUint8 reads a single unsigned byte.
func (d *Decoder) ReadUint8() (uint8, error) {
	b, err := d.c.takeByte()
	return b, err
}

// ReadUint16 reads a big-endian u16.
func (d *Decoder) ReadUint16() (uint16, error) { return d.c.takeUint16() }

// ReadUint32 reads a big-endian u32.
func (d *Decoder) ReadUint32() (uint32, error) { return d.c.takeUint32() }

// ReadUint64 reads a big-endian u64.
func (d *Decoder) ReadUint64() (uint64, error) { return d.c.takeUint64() }

// ReadInt8 reads a signed byte.
func (d *Decoder) ReadInt8() (int8, error) {
	b, err := d.c.takeByte()
	return int8(b), err
}

// ReadInt16 reads a big-endian signed 16-bit integer.
func (d *Decoder) ReadInt16() (int16, error) {
	v, err := d.c.takeUint16()
	return int16(v), err
}

// ReadInt32 reads a big-endian signed 32-bit integer.
func (d *Decoder) ReadInt32() (int32, error) {
	v, err := d.c.takeUint32()
	return int32(v), err
}

// ReadInt64 reads a big-endian signed 64-bit integer.
func (d *Decoder) ReadInt64() (int64, error) {
	v, err := d.c.takeUint64()
	return int64(v), err
}

// ReadEPC96 reads a fixed 96-bit (12-byte) EPC value, LLRP's u96 type.
func (d *Decoder) ReadEPC96() ([12]byte, error) {
	var out [12]byte
	b, err := d.c.takeBytes(12)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

// ReadBytes reads a fixed-size byte array, e.g. a reserved-field or
// manually-sized binary blob the schema declares with a literal length.
func (d *Decoder) ReadBytes(n int) ([]byte, error) {
	b, err := d.c.takeBytes(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// ReadBytesToEnd reads every remaining byte up to bodyEnd, the ArrayOfT
// realisation of the schema's bytesToEnd encoding kind (a trailing
// variable-length payload with no count prefix, e.g. read/write data).
func (d *Decoder) ReadBytesToEnd(bodyEnd int) ([]byte, error) {
	n := bodyEnd - d.c.offset()
	if n < 0 {
		return nil, errTlvLengthInvalid(n)
	}
	return d.ReadBytes(n)
}

// ReadString reads a length-prefixed UTF-8 string: a u16 byte count
// followed by that many bytes, the utf8v encoding kind.
func (d *Decoder) ReadString() (string, error) {
	n, err := d.ReadUint16()
	if err != nil {
		return "", err
	}
	b, err := d.c.takeBytes(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// BitArray is the u1v encoding kind: a variable-length run of individual
// bits, stored packed MSB-first within Data. NumBits may be less than
// len(Data)*8; the trailing bits of the final byte are padding.
type BitArray struct {
	NumBits int
	Data    []byte
}

// ReadBitArray reads a u16 bit count followed by NumBits/8 packed bytes.
// The source truncates rather than rounds up: a non-byte-aligned NumBits
// (e.g. 15) still carries only 1 payload byte, not 2. The sender is
// responsible for padding NumBits out to a byte boundary when it wants
// the trailing bits preserved; rounding up here would silently consume a
// byte belonging to the next field.
func (d *Decoder) ReadBitArray() (BitArray, error) {
	n, err := d.ReadUint16()
	if err != nil {
		return BitArray{}, err
	}
	nBytes := int(n) / 8
	b, err := d.ReadBytes(nBytes)
	if err != nil {
		return BitArray{}, err
	}
	return BitArray{NumBits: int(n), Data: b}, nil
}

// WriteUint8 appends a single byte.
func (e *Encoder) WriteUint8(v uint8) { e.buf = append(e.buf, v) }

// WriteUint16 appends a big-endian u16.
func (e *Encoder) WriteUint16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	e.buf = append(e.buf, b[:]...)
}

// WriteUint32 appends a big-endian u32.
func (e *Encoder) WriteUint32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	e.buf = append(e.buf, b[:]...)
}

// WriteUint64 appends a big-endian u64.
func (e *Encoder) WriteUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	e.buf = append(e.buf, b[:]...)
}

// WriteInt8 appends a signed byte.
func (e *Encoder) WriteInt8(v int8) { e.WriteUint8(uint8(v)) }

// WriteInt16 appends a big-endian signed 16-bit integer.
func (e *Encoder) WriteInt16(v int16) { e.WriteUint16(uint16(v)) }

// WriteInt32 appends a big-endian signed 32-bit integer.
func (e *Encoder) WriteInt32(v int32) { e.WriteUint32(uint32(v)) }

// WriteInt64 appends a big-endian signed 64-bit integer.
func (e *Encoder) WriteInt64(v int64) { e.WriteUint64(uint64(v)) }

// WriteEPC96 appends a fixed 96-bit EPC value.
func (e *Encoder) WriteEPC96(v [12]byte) { e.buf = append(e.buf, v[:]...) }

// WriteBytes appends raw bytes verbatim, with no length prefix.
func (e *Encoder) WriteBytes(b []byte) { e.buf = append(e.buf, b...) }

// WriteString appends a u16 byte-count prefix followed by s's bytes.
func (e *Encoder) WriteString(s string) {
	e.WriteUint16(uint16(len(s)))
	e.buf = append(e.buf, s...)
}

// WriteBitArray appends a u16 bit-count prefix followed by v's packed
// bytes.
func (e *Encoder) WriteBitArray(v BitArray) {
	e.WriteUint16(uint16(v.NumBits))
	e.buf = append(e.buf, v.Data...)
}
