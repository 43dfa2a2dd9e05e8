// Package envelope adapts LLRP's 10-byte message framing (spec.md §4.10)
// onto an io.Reader/io.Writer, the layer above the codec runtime that a
// transport (TCP connection, file of captured traffic) reads and writes
// whole messages through. It is grounded on the original implementation's
// binary.rs read_message/write_message pair.
package envelope

import (
	"encoding/binary"
	"io"

	"github.com/llrp-go/llrp"
)

// headerLength is the fixed size of the version/type prefix, the 4-byte
// total length, and the 4-byte message id.
const headerLength = 10

// Message is one framed LLRP message: the envelope's version and type
// fields plus the raw, still-encoded message body. Callers decode Value
// through the messages package's Decode, or a specific
// generated type's Decode method.
type Message struct {
	// Ver is the 3-bit protocol version carried in the envelope prefix.
	// LLRP readers in the wild only ever send 1.
	Ver uint8

	// Type is the message's 10-bit type number, the same id
	// messages.Decode looks up in its Registry.
	Type uint16

	// ID is the message's 32-bit correlation id, echoed back by a
	// reader's response to the request that carries it.
	ID uint32

	// Value is the message's encoded body, exactly Length-10 bytes.
	Value []byte
}

// ReadMessage reads one framed message from r: the 2-byte version/type
// prefix, the 4-byte total length, the 4-byte id, and then exactly
// length-10 bytes of body. It reports KindTlvLengthInvalid if length is
// below the 10-byte header floor, and wraps any underlying I/O error
// (io.EOF when r has no bytes left, io.ErrUnexpectedEOF when it ends
// partway through the header or body) via llrp.WrapIO.
func ReadMessage(r io.Reader) (Message, error) {
	var hdr [headerLength]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return Message{}, llrp.WrapIO(err)
	}

	prefix := binary.BigEndian.Uint16(hdr[0:2])
	ver := uint8((prefix >> 10) & 0b111)
	msgType := prefix & 0b11_1111_1111

	length := binary.BigEndian.Uint32(hdr[2:6])
	if length < headerLength {
		return Message{}, &llrp.Error{Kind: llrp.KindTlvLengthInvalid, RawLen: int(length)}
	}

	id := binary.BigEndian.Uint32(hdr[6:10])

	value := make([]byte, length-headerLength)
	if _, err := io.ReadFull(r, value); err != nil {
		return Message{}, llrp.WrapIO(err)
	}

	return Message{Ver: ver, Type: msgType, ID: id, Value: value}, nil
}

// WriteMessage writes msg to w as a framed message: the 2-byte prefix
// packing Ver and Type, the 4-byte total length (len(msg.Value)+10), the
// 4-byte id, and then msg.Value. Any underlying write error is wrapped
// via llrp.WrapIO.
func WriteMessage(w io.Writer, msg Message) error {
	var hdr [headerLength]byte
	prefix := (uint16(msg.Ver&0b111) << 10) | (msg.Type & 0b11_1111_1111)
	binary.BigEndian.PutUint16(hdr[0:2], prefix)
	binary.BigEndian.PutUint32(hdr[2:6], uint32(len(msg.Value)+headerLength))
	binary.BigEndian.PutUint32(hdr[6:10], msg.ID)

	if _, err := w.Write(hdr[:]); err != nil {
		return llrp.WrapIO(err)
	}
	if len(msg.Value) > 0 {
		if _, err := w.Write(msg.Value); err != nil {
			return llrp.WrapIO(err)
		}
	}
	return nil
}
