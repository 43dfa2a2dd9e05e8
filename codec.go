package llrp

/*
codec.go contains the Decoder/Encoder facade generated field bodies are
written against, plus the generic container machinery (DecodeOption,
DecodeVec, DecodeTVOption, ...) that realises spec.md §9's capability-set
field decoding as compile-time generic instantiation instead of a runtime
registry. It is grounded on the teacher's Packet/PDU cursor plus its
top-level Marshal/Unmarshal entry points, adapted to LLRP's single
concrete wire format.
*/

// DecodeOptions controls decode-time strictness. Strict mode rejects
// trailing bytes or bits left over at the end of a parameter's body;
// relaxed mode skips them, for interoperating with readers that pad
// parameters beyond their declared fields. The zero value DecodeOptions{}
// is relaxed; strict decoding is selected only by Strict: true.
type DecodeOptions struct {
	Strict bool
}

// Decoder reads LLRP wire data from a borrowed byte slice.
type Decoder struct {
	c    *cursor
	bits bitReader
	opts DecodeOptions
}

// NewDecoder creates a Decoder over buf. buf is not copied; the caller
// must not mutate it while decoding is in progress.
func NewDecoder(buf []byte, opts DecodeOptions) *Decoder {
	return &Decoder{c: newCursor(buf), opts: opts}
}

// Remaining reports how many bytes are left unread.
func (d *Decoder) Remaining() int { return d.c.remaining() }

// Strict reports the decoder's configured strictness.
func (d *Decoder) Strict() bool { return d.opts.Strict }

// BeginTLV consumes a TLV header whose type must equal want, and returns
// the absolute buffer offset at which the parameter's body ends.
func (d *Decoder) BeginTLV(want uint16) (bodyEnd int, err error) {
	bodyLen, err := requireTLVHeader(d.c, want)
	if err != nil {
		return 0, err
	}
	end := d.c.offset() + bodyLen
	if end > len(d.c.buf) {
		return 0, errTlvLengthInvalid(bodyLen)
	}
	return end, nil
}

// PeekParamHeader inspects the next parameter's header without consuming
// it. Option/Vec scanning uses this to decide whether to stop.
func (d *Decoder) PeekParamHeader() (paramHeader, error) {
	return peekParamHeader(d.c)
}

// BeginTV consumes a TV header whose type must equal want. TV parameter
// bodies have a schema-fixed size, so there is no length to validate here.
func (d *Decoder) BeginTV(want uint16) error {
	return requireTVHeader(d.c, want)
}

// EndTLV checks that the cursor has reached bodyEnd exactly and that no
// bits remain buffered, honouring Strict. In relaxed mode it skips ahead
// to bodyEnd and discards any pending bits instead of failing.
func (d *Decoder) EndTLV(bodyEnd int) error {
	if d.c.offset() != bodyEnd {
		if d.opts.Strict {
			return errTrailingBytes(bodyEnd - d.c.offset())
		}
		d.c.rewind(bodyEnd)
	}
	if d.bits.pending() != 0 {
		if d.opts.Strict {
			return errTrailingBits(d.bits.pending())
		}
		d.bits = bitReader{}
	}
	return nil
}

// EndMessage checks that the entire message body was consumed, the
// top-level counterpart of EndTLV used by the message dispatcher
// (messages.Decode and the generated Dispatch).
func (d *Decoder) EndMessage() error {
	if !d.c.atEnd() {
		if d.opts.Strict {
			return errTrailingBytes(d.c.remaining())
		}
	}
	return nil
}

// ReadArray reads a uint16 element count followed by that many elements,
// each produced by decodeOne. It realises the ArrayOfT encoding kind for
// element types that are not themselves bytes (spec.md §4.6's word/array
// fields, e.g. a C1G2Read result's 16-bit data words).
func ReadArray[T any](d *Decoder, decodeOne func(*Decoder) (T, error)) ([]T, error) {
	n, err := d.ReadUint16()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, n)
	for i := 0; i < int(n); i++ {
		v, err := decodeOne(d)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// WriteArray is ReadArray's encode-side mirror.
func WriteArray[T any](e *Encoder, vs []T, encodeOne func(*Encoder, T)) {
	e.WriteUint16(uint16(len(vs)))
	for _, v := range vs {
		encodeOne(e, v)
	}
}

// tlvValue is the capability set a generated TLV-parameter type's pointer
// receiver must satisfy for DecodeOption/DecodeVec to drive it.
type tlvValue[T any] interface {
	*T
	CanDecodeType(typeNum uint16) bool
	DecodeTLV(d *Decoder) error
	EncodeTLV(e *Encoder)
}

// tvValue is tlvValue's TV-parameter counterpart.
type tvValue[T any] interface {
	*T
	CanDecodeTvType(typeNum uint16) bool
	DecodeTV(d *Decoder) error
	EncodeTV(e *Encoder)
}

// DecodeOption decodes an optional TLV-shaped parameter: if the next
// parameter's header doesn't match PT's type, it returns (nil, nil)
// without consuming anything, exactly as an Option field in spec.md §4.5
// requires. Any error other than a type mismatch propagates.
func DecodeOption[T any, PT tlvValue[T]](d *Decoder) (*T, error) {
	if d.c.remaining() == 0 {
		return nil, nil
	}
	hdr, err := peekParamHeader(d.c)
	if err != nil {
		return nil, err
	}
	if hdr.IsTV {
		return nil, nil
	}
	var t T
	p := PT(&t)
	if !p.CanDecodeType(hdr.TypeNum) {
		return nil, nil
	}
	if err := p.DecodeTLV(d); err != nil {
		return nil, err
	}
	return &t, nil
}

// DecodeVec decodes zero or more consecutive TLV-shaped parameters of the
// same generated type, stopping at the first parameter PT can't claim.
func DecodeVec[T any, PT tlvValue[T]](d *Decoder) ([]T, error) {
	var out []T
	for {
		v, err := DecodeOption[T, PT](d)
		if err != nil {
			return nil, err
		}
		if v == nil {
			break
		}
		out = append(out, *v)
	}
	return out, nil
}

// EncodeOption encodes v if non-nil; a nil v writes nothing, the encode
// side of an absent Option field.
func EncodeOption[T any, PT tlvValue[T]](e *Encoder, v *T) {
	if v == nil {
		return
	}
	p := PT(v)
	p.EncodeTLV(e)
}

// EncodeVec encodes every element of vs in order.
func EncodeVec[T any, PT tlvValue[T]](e *Encoder, vs []T) {
	for i := range vs {
		p := PT(&vs[i])
		p.EncodeTLV(e)
	}
}

// DecodeTVOption is DecodeOption's TV-parameter counterpart.
func DecodeTVOption[T any, PT tvValue[T]](d *Decoder) (*T, error) {
	if d.c.remaining() == 0 {
		return nil, nil
	}
	hdr, err := peekParamHeader(d.c)
	if err != nil {
		return nil, err
	}
	if !hdr.IsTV {
		return nil, nil
	}
	var t T
	p := PT(&t)
	if !p.CanDecodeTvType(hdr.TypeNum) {
		return nil, nil
	}
	if err := p.DecodeTV(d); err != nil {
		return nil, err
	}
	return &t, nil
}

// EncodeTVOption is EncodeOption's TV-parameter counterpart.
func EncodeTVOption[T any, PT tvValue[T]](e *Encoder, v *T) {
	if v == nil {
		return
	}
	p := PT(v)
	p.EncodeTV(e)
}

// DecodeTVVec is DecodeVec's TV-parameter counterpart, for the rare
// repeated TV field.
func DecodeTVVec[T any, PT tvValue[T]](d *Decoder) ([]T, error) {
	var out []T
	for {
		v, err := DecodeTVOption[T, PT](d)
		if err != nil {
			return nil, err
		}
		if v == nil {
			break
		}
		out = append(out, *v)
	}
	return out, nil
}

// EncodeTVVec is DecodeTVVec's encode-side mirror.
func EncodeTVVec[T any, PT tvValue[T]](e *Encoder, vs []T) {
	for i := range vs {
		p := PT(&vs[i])
		p.EncodeTV(e)
	}
}

// choiceValue is the capability set a generated Choice type's pointer
// receiver must satisfy. Unlike tlvValue/tvValue, a Choice's variants may
// straddle both the TV and TLV id spaces at once (spec.md §9, "TV vs field
// encoding of optional TV parameters"), so it exposes both predicates; the
// id ranges are disjoint by construction, so exactly one ever matches a
// given peeked header.
type choiceValue[T any] interface {
	*T
	CanDecodeType(typeNum uint16) bool
	CanDecodeTvType(typeNum uint16) bool
	DecodeChoice(d *Decoder) error
	EncodeChoice(e *Encoder)
}

// DecodeChoiceOption peeks the next header and, depending on whether it is
// TV- or TLV-shaped, tests the matching predicate before delegating to
// DecodeChoice. A non-match leaves the cursor untouched and returns
// (nil, nil), exactly like DecodeOption/DecodeTVOption.
func DecodeChoiceOption[T any, PT choiceValue[T]](d *Decoder) (*T, error) {
	if d.c.remaining() == 0 {
		return nil, nil
	}
	hdr, err := peekParamHeader(d.c)
	if err != nil {
		return nil, err
	}
	var t T
	p := PT(&t)
	if hdr.IsTV {
		if !p.CanDecodeTvType(hdr.TypeNum) {
			return nil, nil
		}
	} else {
		if !p.CanDecodeType(hdr.TypeNum) {
			return nil, nil
		}
	}
	if err := p.DecodeChoice(d); err != nil {
		return nil, err
	}
	return &t, nil
}

// DecodeChoiceVec decodes zero or more consecutive choice-shaped
// parameters, stopping at the first header neither predicate accepts.
func DecodeChoiceVec[T any, PT choiceValue[T]](d *Decoder) ([]T, error) {
	var out []T
	for {
		v, err := DecodeChoiceOption[T, PT](d)
		if err != nil {
			return nil, err
		}
		if v == nil {
			break
		}
		out = append(out, *v)
	}
	return out, nil
}

// EncodeChoiceOption encodes v if non-nil via its active variant.
func EncodeChoiceOption[T any, PT choiceValue[T]](e *Encoder, v *T) {
	if v == nil {
		return
	}
	p := PT(v)
	p.EncodeChoice(e)
}

// EncodeChoiceVec encodes every element of vs in order.
func EncodeChoiceVec[T any, PT choiceValue[T]](e *Encoder, vs []T) {
	for i := range vs {
		p := PT(&vs[i])
		p.EncodeChoice(e)
	}
}

// Encoder appends LLRP wire data to a growable byte buffer.
type Encoder struct {
	buf  []byte
	bits bitWriter
}

// NewEncoder creates an Encoder with an empty buffer.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Bytes returns the bytes written so far. The returned slice aliases the
// Encoder's internal buffer.
func (e *Encoder) Bytes() []byte { return e.buf }

// BeginTLV appends a placeholder TLV header for typeNum and returns a
// token BeginTLV's caller must pass to EndTLV once the body is written.
func (e *Encoder) BeginTLV(typeNum uint16) (token int) {
	var lenOffset int
	e.buf, lenOffset = reserveTLVHeader(e.buf, typeNum)
	return lenOffset
}

// EndTLV backfills the TLV header reserved by BeginTLV now that the body
// has been appended.
func (e *Encoder) EndTLV(token int) {
	totalLen := len(e.buf) - (token - 2)
	patchTLVLength(e.buf, token, totalLen)
}

// WriteTV appends a 1-byte TV header for typeNum.
func (e *Encoder) WriteTV(typeNum uint16) {
	e.buf = writeTVHeader(e.buf, typeNum)
}
