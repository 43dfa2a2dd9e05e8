package llrp

/*
header.go decodes and encodes LLRP parameter headers: the 1-byte TV header
(high bit set, 7-bit type 1-127) and the 4-byte TLV header (6 reserved
bits + 10-bit type 128-1023, followed by a 16-bit length counting the
entire parameter including this header), per spec.md §4.4.
*/

import "encoding/binary"

const (
	tvTypeMask  = 0x80
	tvTypeBits  = 0x7F
	tlvTypeMask = 0x03FF

	// tlvHeaderLen is the byte size of a TLV header: 2 bytes of
	// reserved+type, 2 bytes of length.
	tlvHeaderLen = 4
)

// paramHeader describes a parameter's header as peeked or consumed from
// the wire, independent of whether it turned out to be TV or TLV shaped.
type paramHeader struct {
	IsTV    bool
	TypeNum uint16

	// Length is the TLV parameter's total length (header included). Zero
	// for TV headers, which carry no length field.
	Length uint16
}

// peekParamHeader inspects the next parameter's header without consuming
// it, so Option/Vec scanning can decide whether to stop.
func peekParamHeader(c *cursor) (paramHeader, error) {
	first, err := c.peekBytes(1)
	if err != nil {
		return paramHeader{}, err
	}
	if first[0]&tvTypeMask != 0 {
		return paramHeader{IsTV: true, TypeNum: uint16(first[0] & tvTypeBits)}, nil
	}
	raw, err := c.peekBytes(tlvHeaderLen)
	if err != nil {
		return paramHeader{}, err
	}
	typeNum := binary.BigEndian.Uint16(raw[0:2]) & tlvTypeMask
	length := binary.BigEndian.Uint16(raw[2:4])
	return paramHeader{IsTV: false, TypeNum: typeNum, Length: length}, nil
}

// readTVHeader consumes a 1-byte TV header and returns its type number.
// It errors if the high bit isn't set (the next parameter is TLV-shaped).
func readTVHeader(c *cursor) (uint16, error) {
	b, err := c.takeByte()
	if err != nil {
		return 0, err
	}
	if b&tvTypeMask == 0 {
		return 0, errInvalidTvType(int(b))
	}
	return uint16(b & tvTypeBits), nil
}

// requireTVHeader consumes a TV header and checks its type matches want.
func requireTVHeader(c *cursor, want uint16) error {
	got, err := readTVHeader(c)
	if err != nil {
		return err
	}
	if got != want {
		return errInvalidTvType(int(got))
	}
	return nil
}

// writeTVHeader appends a 1-byte TV header for typeNum (1-127).
func writeTVHeader(out []byte, typeNum uint16) []byte {
	return append(out, byte(typeNum&tvTypeBits)|tvTypeMask)
}

// readTLVHeader consumes a 4-byte TLV header and returns its type number
// and total parameter length. It validates the length is at least the
// header's own size and does not exceed the bytes remaining in c.
func readTLVHeader(c *cursor) (typeNum uint16, length uint16, err error) {
	raw, err := c.takeBytes(tlvHeaderLen)
	if err != nil {
		return 0, 0, err
	}
	typeNum = binary.BigEndian.Uint16(raw[0:2]) & tlvTypeMask
	length = binary.BigEndian.Uint16(raw[2:4])
	if int(length) < tlvHeaderLen || int(length)-tlvHeaderLen > c.remaining() {
		return 0, 0, errTlvLengthInvalid(int(length))
	}
	return typeNum, length, nil
}

// requireTLVHeader consumes a TLV header and checks its type matches
// want, returning the parameter body's length (header excluded).
func requireTLVHeader(c *cursor, want uint16) (bodyLen int, err error) {
	typeNum, length, err := readTLVHeader(c)
	if err != nil {
		return 0, err
	}
	if typeNum != want {
		return 0, errInvalidType(int(typeNum))
	}
	return int(length) - tlvHeaderLen, nil
}

// writeTLVHeader appends a 4-byte TLV header for typeNum with the given
// body length; the emitted Length field is bodyLen+4 per the wire format.
func writeTLVHeader(out []byte, typeNum uint16, bodyLen int) []byte {
	var hdr [tlvHeaderLen]byte
	binary.BigEndian.PutUint16(hdr[0:2], typeNum&tlvTypeMask)
	binary.BigEndian.PutUint16(hdr[2:4], uint16(bodyLen+tlvHeaderLen))
	return append(out, hdr[:]...)
}

// reserveTLVHeader appends a zeroed TLV header and returns the output
// slice plus the offset of its length field, so the encoder can fill in
// the body length after emitting the body (mirrors the reserve-then-
// backpatch pattern the generated Encode methods use for nested
// parameters of statically-unknown size).
func reserveTLVHeader(out []byte, typeNum uint16) (buf []byte, lenOffset int) {
	var hdr [tlvHeaderLen]byte
	binary.BigEndian.PutUint16(hdr[0:2], typeNum&tlvTypeMask)
	lenOffset = len(out) + 2
	return append(out, hdr[:]...), lenOffset
}

// patchTLVLength backfills a TLV header reserved via reserveTLVHeader now
// that the parameter's total length (header included) is known.
func patchTLVLength(out []byte, lenOffset int, totalLen int) {
	binary.BigEndian.PutUint16(out[lenOffset:lenOffset+2], uint16(totalLen))
}
