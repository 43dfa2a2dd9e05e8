package llrp

/*
cursor.go contains the byte cursor used by Decoder to walk a message or
parameter's backing slice. It tracks only an offset into a borrowed slice;
it never copies the input except when a caller asks for owned bytes.
*/

import "encoding/binary"

// cursor is a read cursor over a borrowed byte slice.
type cursor struct {
	buf []byte
	off int
}

func newCursor(buf []byte) *cursor {
	return &cursor{buf: buf}
}

// remaining returns the number of unread bytes.
func (c *cursor) remaining() int {
	return len(c.buf) - c.off
}

// offset returns the cursor's current position.
func (c *cursor) offset() int {
	return c.off
}

// need checks that n bytes remain, returning an *Error otherwise.
func (c *cursor) need(n int) error {
	if c.remaining() < n {
		return errInsufficientData(n, c.remaining())
	}
	return nil
}

// peekBytes returns the next n bytes without advancing the cursor.
func (c *cursor) peekBytes(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	return c.buf[c.off : c.off+n], nil
}

// takeBytes returns the next n bytes and advances the cursor past them.
// The returned slice aliases the cursor's backing array.
func (c *cursor) takeBytes(n int) ([]byte, error) {
	b, err := c.peekBytes(n)
	if err != nil {
		return nil, err
	}
	c.off += n
	return b, nil
}

// takeByte reads a single byte.
func (c *cursor) takeByte() (byte, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	b := c.buf[c.off]
	c.off++
	return b, nil
}

// takeUint16 reads a big-endian u16.
func (c *cursor) takeUint16() (uint16, error) {
	b, err := c.takeBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// takeUint32 reads a big-endian u32.
func (c *cursor) takeUint32() (uint32, error) {
	b, err := c.takeBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// takeUint64 reads a big-endian u64.
func (c *cursor) takeUint64() (uint64, error) {
	b, err := c.takeBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// rewind moves the cursor to an absolute offset. EndTLV's relaxed mode
// uses it to skip to the end of a parameter body.
func (c *cursor) rewind(off int) {
	c.off = off
}

// atEnd reports whether every byte has been consumed.
func (c *cursor) atEnd() bool {
	return c.remaining() == 0
}
