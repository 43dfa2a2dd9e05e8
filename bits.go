package llrp

/*
bits.go contains the MSB-first bit accumulator used to decode and encode
the sub-byte integer fields LLRP's wire format packs together (u1..u15
fields such as a parameter's reserved-bit header, or a C1G2 singulation
control byte's session/tag-population/tag-transit-time trio). Bytes are
the unit the cursor hands out; bits are consumed and produced high-bit
first within each byte, matching spec.md §4.3.
*/

import "golang.org/x/exp/constraints"

// bitReader accumulates leftover bits from a partially consumed byte so
// that a run of sub-byte fields can be read back to back without forcing
// byte alignment between them.
type bitReader struct {
	cur    byte
	nValid uint // number of unread bits left in cur, held in its low-order nValid bits
}

// readBits consumes the next n bits (1..64) from c, pulling fresh bytes
// from the cursor as the leftover buffer empties, MSB-first.
func (r *bitReader) readBits(c *cursor, n int) (uint64, error) {
	if n < 0 || n > 64 {
		return 0, errTlvLengthInvalid(n)
	}
	var result uint64
	remaining := n
	for remaining > 0 {
		if r.nValid == 0 {
			b, err := c.takeByte()
			if err != nil {
				return 0, err
			}
			r.cur = b
			r.nValid = 8
		}
		take := remaining
		if take > int(r.nValid) {
			take = int(r.nValid)
		}
		shift := int(r.nValid) - take
		mask := byte((1 << uint(take)) - 1)
		bits := (r.cur >> uint(shift)) & mask
		result = (result << uint(take)) | uint64(bits)
		r.nValid -= uint(take)
		remaining -= take
	}
	return result, nil
}

// pending reports how many bits of the current byte remain unread. A
// non-zero value at the point a parameter's body is expected to end is a
// KindTrailingBits condition.
func (r *bitReader) pending() int {
	return int(r.nValid)
}

// bitWriter is the encode-side mirror of bitReader: it accumulates bits
// into a pending byte and appends completed bytes to the caller's buffer.
type bitWriter struct {
	cur    byte
	nValid uint // bits already placed in cur, high-order-aligned
}

// writeBits appends the low n bits of val to out, MSB-first, buffering
// any bits that don't fill a whole byte.
func (w *bitWriter) writeBits(out []byte, val uint64, n int) []byte {
	remaining := n
	for remaining > 0 {
		space := 8 - int(w.nValid)
		take := remaining
		if take > space {
			take = space
		}
		shift := remaining - take
		mask := uint64((1 << uint(take)) - 1)
		bits := byte((val >> uint(shift)) & mask)
		w.cur |= bits << uint(space-take)
		w.nValid += uint(take)
		remaining -= take
		if w.nValid == 8 {
			out = append(out, w.cur)
			w.cur = 0
			w.nValid = 0
		}
	}
	return out
}

// flush pads the pending byte with zero bits and appends it, if any bits
// are outstanding. Every LLRP parameter body is byte-aligned at its end,
// so a well-formed field layout calls flush with nValid already 0; flush
// is defensive for callers assembling reserved-bit headers by hand.
func (w *bitWriter) flush(out []byte) []byte {
	if w.nValid > 0 {
		out = append(out, w.cur)
		w.cur = 0
		w.nValid = 0
	}
	return out
}

// ReadBits reads an n-bit MSB-first field and converts it to T, the
// generic realisation of the per-width decode helpers a generated field
// body calls (u1 -> uint8 via n=1, which the caller turns into a bool;
// u2..u15 -> uint8/uint16 via n<8/n<16). T is an integer type, never bool.
func ReadBits[T constraints.Integer](r *bitReader, c *cursor, n int) (T, error) {
	v, err := r.readBits(c, n)
	if err != nil {
		return 0, err
	}
	return T(v), nil
}

// WriteBits is ReadBits's encode-side mirror.
func WriteBits[T constraints.Integer](w *bitWriter, out []byte, val T, n int) []byte {
	return w.writeBits(out, uint64(val), n)
}

// DecodeBits reads an n-bit MSB-first field from d and converts it to T.
// Generated field bodies call this for the RawBits encoding kind (u1..u15)
// instead of touching Decoder's unexported bit reader directly.
func DecodeBits[T constraints.Integer](d *Decoder, n int) (T, error) {
	return ReadBits[T](&d.bits, d.c, n)
}

// EncodeBits is DecodeBits's encode-side mirror.
func EncodeBits[T constraints.Integer](e *Encoder, val T, n int) {
	e.buf = WriteBits(&e.bits, e.buf, val, n)
}
