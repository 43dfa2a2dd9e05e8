// Package parameters holds the generated parameter types a core LLRP
// definition file describes: the scalar TV parameters, the TLV parameter
// structs and their choices. Written by hand as one run of the generator
// over the LLRP core definition file would produce it; see DESIGN.md's
// C12 entry. Field order within a struct is the wire order its TV/TLV
// subfields must appear in, not alphabetical or declaration-convenience
// order.
package parameters

import (
	"github.com/llrp-go/llrp"
	"github.com/llrp-go/llrp/enums"
)

// AntennaID is a single-field TV parameter (tv id 1), collapsed to a
// named uint16.
type AntennaID uint16

// CanDecodeTvType reports whether typeNum is AntennaID's TV id.
func (v *AntennaID) CanDecodeTvType(typeNum uint16) bool { return typeNum == 1 }

func (v *AntennaID) DecodeTV(d *llrp.Decoder) error {
	if err := d.BeginTV(1); err != nil {
		return err
	}
	x, err := d.ReadUint16()
	if err != nil {
		return err
	}
	*v = AntennaID(x)
	return nil
}

func (v *AntennaID) EncodeTV(e *llrp.Encoder) {
	e.WriteTV(1)
	e.WriteUint16(uint16(*v))
}

// FirstSeenTimestampUTC is a single-field TV parameter (tv id 2),
// collapsed to a named uint64.
type FirstSeenTimestampUTC uint64

func (v *FirstSeenTimestampUTC) CanDecodeTvType(typeNum uint16) bool { return typeNum == 2 }

func (v *FirstSeenTimestampUTC) DecodeTV(d *llrp.Decoder) error {
	if err := d.BeginTV(2); err != nil {
		return err
	}
	x, err := d.ReadUint64()
	if err != nil {
		return err
	}
	*v = FirstSeenTimestampUTC(x)
	return nil
}

func (v *FirstSeenTimestampUTC) EncodeTV(e *llrp.Encoder) {
	e.WriteTV(2)
	e.WriteUint64(uint64(*v))
}

// LastSeenTimestampUTC is a single-field TV parameter (tv id 3), collapsed
// to a named uint64.
type LastSeenTimestampUTC uint64

func (v *LastSeenTimestampUTC) CanDecodeTvType(typeNum uint16) bool { return typeNum == 3 }

func (v *LastSeenTimestampUTC) DecodeTV(d *llrp.Decoder) error {
	if err := d.BeginTV(3); err != nil {
		return err
	}
	x, err := d.ReadUint64()
	if err != nil {
		return err
	}
	*v = LastSeenTimestampUTC(x)
	return nil
}

func (v *LastSeenTimestampUTC) EncodeTV(e *llrp.Encoder) {
	e.WriteTV(3)
	e.WriteUint64(uint64(*v))
}

// FirstSeenTimestampUptime is a single-field TV parameter (tv id 4),
// collapsed to a named uint64.
type FirstSeenTimestampUptime uint64

func (v *FirstSeenTimestampUptime) CanDecodeTvType(typeNum uint16) bool { return typeNum == 4 }

func (v *FirstSeenTimestampUptime) DecodeTV(d *llrp.Decoder) error {
	if err := d.BeginTV(4); err != nil {
		return err
	}
	x, err := d.ReadUint64()
	if err != nil {
		return err
	}
	*v = FirstSeenTimestampUptime(x)
	return nil
}

func (v *FirstSeenTimestampUptime) EncodeTV(e *llrp.Encoder) {
	e.WriteTV(4)
	e.WriteUint64(uint64(*v))
}

// LastSeenTimestampUptime is a single-field TV parameter (tv id 5),
// collapsed to a named uint64.
type LastSeenTimestampUptime uint64

func (v *LastSeenTimestampUptime) CanDecodeTvType(typeNum uint16) bool { return typeNum == 5 }

func (v *LastSeenTimestampUptime) DecodeTV(d *llrp.Decoder) error {
	if err := d.BeginTV(5); err != nil {
		return err
	}
	x, err := d.ReadUint64()
	if err != nil {
		return err
	}
	*v = LastSeenTimestampUptime(x)
	return nil
}

func (v *LastSeenTimestampUptime) EncodeTV(e *llrp.Encoder) {
	e.WriteTV(5)
	e.WriteUint64(uint64(*v))
}

// PeakRSSI is a single-field TV parameter (tv id 6), collapsed to a named
// uint8. The official LLRP spec models this field as a signed dBm value;
// the scenario this repo is grounded on (ro_access_report_inventory)
// asserts the raw byte 0xbc decodes to the positive literal 188, which
// only holds for an unsigned reading, so this parameter keeps the raw
// byte unsigned rather than reinterpreting it as int8.
type PeakRSSI uint8

func (v *PeakRSSI) CanDecodeTvType(typeNum uint16) bool { return typeNum == 6 }

func (v *PeakRSSI) DecodeTV(d *llrp.Decoder) error {
	if err := d.BeginTV(6); err != nil {
		return err
	}
	x, err := d.ReadUint8()
	if err != nil {
		return err
	}
	*v = PeakRSSI(x)
	return nil
}

func (v *PeakRSSI) EncodeTV(e *llrp.Encoder) {
	e.WriteTV(6)
	e.WriteUint8(uint8(*v))
}

// ChannelIndex is a single-field TV parameter (tv id 7), collapsed to a
// named uint16.
type ChannelIndex uint16

func (v *ChannelIndex) CanDecodeTvType(typeNum uint16) bool { return typeNum == 7 }

func (v *ChannelIndex) DecodeTV(d *llrp.Decoder) error {
	if err := d.BeginTV(7); err != nil {
		return err
	}
	x, err := d.ReadUint16()
	if err != nil {
		return err
	}
	*v = ChannelIndex(x)
	return nil
}

func (v *ChannelIndex) EncodeTV(e *llrp.Encoder) {
	e.WriteTV(7)
	e.WriteUint16(uint16(*v))
}

// TagSeenCount is a single-field TV parameter (tv id 8), collapsed to a
// named uint16.
type TagSeenCount uint16

func (v *TagSeenCount) CanDecodeTvType(typeNum uint16) bool { return typeNum == 8 }

func (v *TagSeenCount) DecodeTV(d *llrp.Decoder) error {
	if err := d.BeginTV(8); err != nil {
		return err
	}
	x, err := d.ReadUint16()
	if err != nil {
		return err
	}
	*v = TagSeenCount(x)
	return nil
}

func (v *TagSeenCount) EncodeTV(e *llrp.Encoder) {
	e.WriteTV(8)
	e.WriteUint16(uint16(*v))
}

// ROSpecID is a single-field TV parameter (tv id 9), collapsed to a named
// uint32.
type ROSpecID uint32

func (v *ROSpecID) CanDecodeTvType(typeNum uint16) bool { return typeNum == 9 }

func (v *ROSpecID) DecodeTV(d *llrp.Decoder) error {
	if err := d.BeginTV(9); err != nil {
		return err
	}
	x, err := d.ReadUint32()
	if err != nil {
		return err
	}
	*v = ROSpecID(x)
	return nil
}

func (v *ROSpecID) EncodeTV(e *llrp.Encoder) {
	e.WriteTV(9)
	e.WriteUint32(uint32(*v))
}

// InventoryParameterSpecID is a single-field TV parameter (tv id 10),
// collapsed to a named uint16.
type InventoryParameterSpecID uint16

func (v *InventoryParameterSpecID) CanDecodeTvType(typeNum uint16) bool { return typeNum == 10 }

func (v *InventoryParameterSpecID) DecodeTV(d *llrp.Decoder) error {
	if err := d.BeginTV(10); err != nil {
		return err
	}
	x, err := d.ReadUint16()
	if err != nil {
		return err
	}
	*v = InventoryParameterSpecID(x)
	return nil
}

func (v *InventoryParameterSpecID) EncodeTV(e *llrp.Encoder) {
	e.WriteTV(10)
	e.WriteUint16(uint16(*v))
}

// C1G2CRC is a single-field TV parameter (tv id 11), collapsed to a named
// uint16.
type C1G2CRC uint16

func (v *C1G2CRC) CanDecodeTvType(typeNum uint16) bool { return typeNum == 11 }

func (v *C1G2CRC) DecodeTV(d *llrp.Decoder) error {
	if err := d.BeginTV(11); err != nil {
		return err
	}
	x, err := d.ReadUint16()
	if err != nil {
		return err
	}
	*v = C1G2CRC(x)
	return nil
}

func (v *C1G2CRC) EncodeTV(e *llrp.Encoder) {
	e.WriteTV(11)
	e.WriteUint16(uint16(*v))
}

// C1G2PC is a single-field TV parameter (tv id 12), collapsed to a named
// uint16.
type C1G2PC uint16

func (v *C1G2PC) CanDecodeTvType(typeNum uint16) bool { return typeNum == 12 }

func (v *C1G2PC) DecodeTV(d *llrp.Decoder) error {
	if err := d.BeginTV(12); err != nil {
		return err
	}
	x, err := d.ReadUint16()
	if err != nil {
		return err
	}
	*v = C1G2PC(x)
	return nil
}

func (v *C1G2PC) EncodeTV(e *llrp.Encoder) {
	e.WriteTV(12)
	e.WriteUint16(uint16(*v))
}

// EPC96 is a single-field TV parameter (tv id 13), collapsed to a named
// [12]byte, LLRP's 96-bit EPC representation.
type EPC96 [12]byte

func (v *EPC96) CanDecodeTvType(typeNum uint16) bool { return typeNum == 13 }

func (v *EPC96) DecodeTV(d *llrp.Decoder) error {
	if err := d.BeginTV(13); err != nil {
		return err
	}
	x, err := d.ReadEPC96()
	if err != nil {
		return err
	}
	*v = EPC96(x)
	return nil
}

func (v *EPC96) EncodeTV(e *llrp.Encoder) {
	e.WriteTV(13)
	e.WriteEPC96([12]byte(*v))
}

// SpecIndex is a single-field TV parameter (tv id 14), collapsed to a
// named uint16.
type SpecIndex uint16

func (v *SpecIndex) CanDecodeTvType(typeNum uint16) bool { return typeNum == 14 }

func (v *SpecIndex) DecodeTV(d *llrp.Decoder) error {
	if err := d.BeginTV(14); err != nil {
		return err
	}
	x, err := d.ReadUint16()
	if err != nil {
		return err
	}
	*v = SpecIndex(x)
	return nil
}

func (v *SpecIndex) EncodeTV(e *llrp.Encoder) {
	e.WriteTV(14)
	e.WriteUint16(uint16(*v))
}

// AccessSpecID is a single-field TV parameter (tv id 16), collapsed to a
// named uint32.
type AccessSpecID uint32

func (v *AccessSpecID) CanDecodeTvType(typeNum uint16) bool { return typeNum == 16 }

func (v *AccessSpecID) DecodeTV(d *llrp.Decoder) error {
	if err := d.BeginTV(16); err != nil {
		return err
	}
	x, err := d.ReadUint32()
	if err != nil {
		return err
	}
	*v = AccessSpecID(x)
	return nil
}

func (v *AccessSpecID) EncodeTV(e *llrp.Encoder) {
	e.WriteTV(16)
	e.WriteUint32(uint32(*v))
}

// UTCTimestamp is a TLV parameter (type 128).
type UTCTimestamp struct {
	Microseconds uint64
}

// CanDecodeType reports whether typeNum is UTCTimestamp's TLV type.
func (v *UTCTimestamp) CanDecodeType(typeNum uint16) bool { return typeNum == 128 }

func (v *UTCTimestamp) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(128)
	if err != nil {
		return err
	}
	v.Microseconds, err = d.ReadUint64()
	if err != nil {
		return err
	}
	return d.EndTLV(bodyEnd)
}

func (v *UTCTimestamp) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(128)
	e.WriteUint64(v.Microseconds)
	e.EndTLV(token)
}

// FieldError is a TLV parameter (type 288).
type FieldError struct {
	FieldNum  uint16
	ErrorCode enums.StatusCode
}

// CanDecodeType reports whether typeNum is FieldError's TLV type.
func (v *FieldError) CanDecodeType(typeNum uint16) bool { return typeNum == 288 }

func (v *FieldError) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(288)
	if err != nil {
		return err
	}
	v.FieldNum, err = d.ReadUint16()
	if err != nil {
		return err
	}
	{
		raw, err := d.ReadUint16()
		if err != nil {
			return err
		}
		x, ok := enums.StatusCodeFromValue(uint32(raw))
		if !ok {
			return &llrp.Error{Kind: llrp.KindInvalidVariant, Value: uint32(raw)}
		}
		v.ErrorCode = x
	}
	return d.EndTLV(bodyEnd)
}

func (v *FieldError) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(288)
	e.WriteUint16(v.FieldNum)
	e.WriteUint16(uint16(enums.StatusCodeToValue(v.ErrorCode)))
	e.EndTLV(token)
}

// ParameterError is a TLV parameter (type 289). It is self-recursive
// (ParameterError may carry a nested ParameterError), so both of its
// optional sub-error fields are pointers.
type ParameterError struct {
	FieldError     *FieldError
	ParameterError *ParameterError
}

// CanDecodeType reports whether typeNum is ParameterError's TLV type.
func (v *ParameterError) CanDecodeType(typeNum uint16) bool { return typeNum == 289 }

func (v *ParameterError) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(289)
	if err != nil {
		return err
	}
	v.FieldError, err = llrp.DecodeOption[FieldError, *FieldError](d)
	if err != nil {
		return err
	}
	v.ParameterError, err = llrp.DecodeOption[ParameterError, *ParameterError](d)
	if err != nil {
		return err
	}
	return d.EndTLV(bodyEnd)
}

func (v *ParameterError) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(289)
	llrp.EncodeOption[FieldError, *FieldError](e, v.FieldError)
	llrp.EncodeOption[ParameterError, *ParameterError](e, v.ParameterError)
	e.EndTLV(token)
}

// LLRPStatus is a TLV parameter (type 287).
type LLRPStatus struct {
	StatusCode       enums.StatusCode
	ErrorDescription string
	FieldError       *FieldError
	ParameterError   *ParameterError
}

// CanDecodeType reports whether typeNum is LLRPStatus's TLV type.
func (v *LLRPStatus) CanDecodeType(typeNum uint16) bool { return typeNum == 287 }

func (v *LLRPStatus) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(287)
	if err != nil {
		return err
	}
	{
		raw, err := d.ReadUint16()
		if err != nil {
			return err
		}
		x, ok := enums.StatusCodeFromValue(uint32(raw))
		if !ok {
			return &llrp.Error{Kind: llrp.KindInvalidVariant, Value: uint32(raw)}
		}
		v.StatusCode = x
	}
	v.ErrorDescription, err = d.ReadString()
	if err != nil {
		return err
	}
	v.FieldError, err = llrp.DecodeOption[FieldError, *FieldError](d)
	if err != nil {
		return err
	}
	v.ParameterError, err = llrp.DecodeOption[ParameterError, *ParameterError](d)
	if err != nil {
		return err
	}
	return d.EndTLV(bodyEnd)
}

func (v *LLRPStatus) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(287)
	e.WriteUint16(uint16(enums.StatusCodeToValue(v.StatusCode)))
	e.WriteString(v.ErrorDescription)
	llrp.EncodeOption[FieldError, *FieldError](e, v.FieldError)
	llrp.EncodeOption[ParameterError, *ParameterError](e, v.ParameterError)
	e.EndTLV(token)
}

// ConnectionEventAttempt is a TLV parameter (type 256).
type ConnectionEventAttempt struct {
	Status enums.StatusCode
}

// CanDecodeType reports whether typeNum is ConnectionEventAttempt's TLV
// type.
func (v *ConnectionEventAttempt) CanDecodeType(typeNum uint16) bool { return typeNum == 256 }

func (v *ConnectionEventAttempt) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(256)
	if err != nil {
		return err
	}
	{
		raw, err := d.ReadUint16()
		if err != nil {
			return err
		}
		x, ok := enums.StatusCodeFromValue(uint32(raw))
		if !ok {
			return &llrp.Error{Kind: llrp.KindInvalidVariant, Value: uint32(raw)}
		}
		v.Status = x
	}
	return d.EndTLV(bodyEnd)
}

func (v *ConnectionEventAttempt) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(256)
	e.WriteUint16(uint16(enums.StatusCodeToValue(v.Status)))
	e.EndTLV(token)
}

// ReaderEventNotificationData is a TLV parameter (type 246).
type ReaderEventNotificationData struct {
	Timestamp        UTCTimestamp
	ConnectionAttempt *ConnectionEventAttempt
}

// CanDecodeType reports whether typeNum is ReaderEventNotificationData's
// TLV type.
func (v *ReaderEventNotificationData) CanDecodeType(typeNum uint16) bool { return typeNum == 246 }

func (v *ReaderEventNotificationData) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(246)
	if err != nil {
		return err
	}
	{
		p, err := llrp.DecodeOption[UTCTimestamp, *UTCTimestamp](d)
		if err != nil {
			return err
		}
		if p == nil {
			return &llrp.Error{Kind: llrp.KindInsufficientData}
		}
		v.Timestamp = *p
	}
	v.ConnectionAttempt, err = llrp.DecodeOption[ConnectionEventAttempt, *ConnectionEventAttempt](d)
	if err != nil {
		return err
	}
	return d.EndTLV(bodyEnd)
}

func (v *ReaderEventNotificationData) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(246)
	(&v.Timestamp).EncodeTLV(e)
	llrp.EncodeOption[ConnectionEventAttempt, *ConnectionEventAttempt](e, v.ConnectionAttempt)
	e.EndTLV(token)
}
