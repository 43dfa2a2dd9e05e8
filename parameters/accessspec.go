package parameters

import "github.com/llrp-go/llrp"

// AccessSpecStopTrigger is a TLV parameter (type 208).
type AccessSpecStopTrigger struct {
	TriggerType    uint8
	OperationCount uint16
}

func (v *AccessSpecStopTrigger) CanDecodeType(typeNum uint16) bool { return typeNum == 208 }

func (v *AccessSpecStopTrigger) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(208)
	if err != nil {
		return err
	}
	v.TriggerType, err = d.ReadUint8()
	if err != nil {
		return err
	}
	v.OperationCount, err = d.ReadUint16()
	if err != nil {
		return err
	}
	return d.EndTLV(bodyEnd)
}

func (v *AccessSpecStopTrigger) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(208)
	e.WriteUint8(v.TriggerType)
	e.WriteUint16(v.OperationCount)
	e.EndTLV(token)
}

// C1G2TargetTag is a TLV parameter (type 339).
type C1G2TargetTag struct {
	MemoryBankAndMatch uint8
	Pointer            uint16
	TagMask            llrp.BitArray
	TagData            llrp.BitArray
}

func (v *C1G2TargetTag) CanDecodeType(typeNum uint16) bool { return typeNum == 339 }

func (v *C1G2TargetTag) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(339)
	if err != nil {
		return err
	}
	v.MemoryBankAndMatch, err = d.ReadUint8()
	if err != nil {
		return err
	}
	v.Pointer, err = d.ReadUint16()
	if err != nil {
		return err
	}
	v.TagMask, err = d.ReadBitArray()
	if err != nil {
		return err
	}
	v.TagData, err = d.ReadBitArray()
	if err != nil {
		return err
	}
	return d.EndTLV(bodyEnd)
}

func (v *C1G2TargetTag) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(339)
	e.WriteUint8(v.MemoryBankAndMatch)
	e.WriteUint16(v.Pointer)
	e.WriteBitArray(v.TagMask)
	e.WriteBitArray(v.TagData)
	e.EndTLV(token)
}

// C1G2TagSpec is a TLV parameter (type 338).
type C1G2TagSpec struct {
	TagPattern1 C1G2TargetTag
	TagPattern2 *C1G2TargetTag
}

func (v *C1G2TagSpec) CanDecodeType(typeNum uint16) bool { return typeNum == 338 }

func (v *C1G2TagSpec) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(338)
	if err != nil {
		return err
	}
	{
		p, err := llrp.DecodeOption[C1G2TargetTag, *C1G2TargetTag](d)
		if err != nil {
			return err
		}
		if p == nil {
			return &llrp.Error{Kind: llrp.KindInsufficientData}
		}
		v.TagPattern1 = *p
	}
	v.TagPattern2, err = llrp.DecodeOption[C1G2TargetTag, *C1G2TargetTag](d)
	if err != nil {
		return err
	}
	return d.EndTLV(bodyEnd)
}

func (v *C1G2TagSpec) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(338)
	(&v.TagPattern1).EncodeTLV(e)
	llrp.EncodeOption[C1G2TargetTag, *C1G2TargetTag](e, v.TagPattern2)
	e.EndTLV(token)
}

// C1G2Read is a TLV parameter (type 341), an OpSpec choice variant.
type C1G2Read struct {
	OpSpecID       uint16
	AccessPassword uint32
	MemoryBank     uint8
	WordPtr        uint16
	WordCount      uint16
}

func (v *C1G2Read) CanDecodeType(typeNum uint16) bool { return typeNum == 341 }

func (v *C1G2Read) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(341)
	if err != nil {
		return err
	}
	v.OpSpecID, err = d.ReadUint16()
	if err != nil {
		return err
	}
	v.AccessPassword, err = d.ReadUint32()
	if err != nil {
		return err
	}
	v.MemoryBank, err = llrp.DecodeBits[uint8](d, 2)
	if err != nil {
		return err
	}
	if _, err := llrp.DecodeBits[uint8](d, 6); err != nil {
		return err
	}
	v.WordPtr, err = d.ReadUint16()
	if err != nil {
		return err
	}
	v.WordCount, err = d.ReadUint16()
	if err != nil {
		return err
	}
	return d.EndTLV(bodyEnd)
}

func (v *C1G2Read) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(341)
	e.WriteUint16(v.OpSpecID)
	e.WriteUint32(v.AccessPassword)
	llrp.EncodeBits[uint8](e, v.MemoryBank, 2)
	llrp.EncodeBits[uint8](e, 0, 6)
	e.WriteUint16(v.WordPtr)
	e.WriteUint16(v.WordCount)
	e.EndTLV(token)
}

// C1G2BlockWrite is a TLV parameter (type 347), an OpSpec choice variant.
type C1G2BlockWrite struct {
	OpSpecID       uint16
	AccessPassword uint32
	MemoryBank     uint8
	WordPtr        uint16
	WriteData      []uint16
}

func (v *C1G2BlockWrite) CanDecodeType(typeNum uint16) bool { return typeNum == 347 }

func (v *C1G2BlockWrite) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(347)
	if err != nil {
		return err
	}
	v.OpSpecID, err = d.ReadUint16()
	if err != nil {
		return err
	}
	v.AccessPassword, err = d.ReadUint32()
	if err != nil {
		return err
	}
	v.MemoryBank, err = llrp.DecodeBits[uint8](d, 2)
	if err != nil {
		return err
	}
	if _, err := llrp.DecodeBits[uint8](d, 6); err != nil {
		return err
	}
	v.WordPtr, err = d.ReadUint16()
	if err != nil {
		return err
	}
	v.WriteData, err = llrp.ReadArray(d, func(d *llrp.Decoder) (uint16, error) { return d.ReadUint16() })
	if err != nil {
		return err
	}
	return d.EndTLV(bodyEnd)
}

func (v *C1G2BlockWrite) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(347)
	e.WriteUint16(v.OpSpecID)
	e.WriteUint32(v.AccessPassword)
	llrp.EncodeBits[uint8](e, v.MemoryBank, 2)
	llrp.EncodeBits[uint8](e, 0, 6)
	e.WriteUint16(v.WordPtr)
	llrp.WriteArray(e, v.WriteData, func(e *llrp.Encoder, v uint16) { e.WriteUint16(v) })
	e.EndTLV(token)
}

// OpSpec is a choice (tagged union) over its variant fields.
type OpSpec struct {
	Read       *C1G2Read
	BlockWrite *C1G2BlockWrite
}

func (v *OpSpec) CanDecodeType(typeNum uint16) bool {
	switch typeNum {
	case 341, 347:
		return true
	}
	return false
}

func (v *OpSpec) CanDecodeTvType(typeNum uint16) bool {
	return false
}

func (v *OpSpec) DecodeChoice(d *llrp.Decoder) error {
	hdr, err := d.PeekParamHeader()
	if err != nil {
		return err
	}
	switch {
	case !hdr.IsTV && hdr.TypeNum == 341:
		var x C1G2Read
		if err := x.DecodeTLV(d); err != nil {
			return err
		}
		v.Read = &x
		return nil
	case !hdr.IsTV && hdr.TypeNum == 347:
		var x C1G2BlockWrite
		if err := x.DecodeTLV(d); err != nil {
			return err
		}
		v.BlockWrite = &x
		return nil
	}
	if hdr.IsTV {
		return &llrp.Error{Kind: llrp.KindInvalidTvType, TypeNum: int(hdr.TypeNum)}
	}
	return &llrp.Error{Kind: llrp.KindInvalidType, TypeNum: int(hdr.TypeNum)}
}

func (v *OpSpec) EncodeChoice(e *llrp.Encoder) {
	switch {
	case v.Read != nil:
		v.Read.EncodeTLV(e)
	case v.BlockWrite != nil:
		v.BlockWrite.EncodeTLV(e)
	}
}

// AccessCommand is a TLV parameter (type 209). Its Custom field (vendor
// extension data) is omitted, same rationale as AiSpec's.
type AccessCommand struct {
	TagSpec C1G2TagSpec
	OpSpec  []OpSpec
}

func (v *AccessCommand) CanDecodeType(typeNum uint16) bool { return typeNum == 209 }

func (v *AccessCommand) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(209)
	if err != nil {
		return err
	}
	{
		p, err := llrp.DecodeOption[C1G2TagSpec, *C1G2TagSpec](d)
		if err != nil {
			return err
		}
		if p == nil {
			return &llrp.Error{Kind: llrp.KindInsufficientData}
		}
		v.TagSpec = *p
	}
	v.OpSpec, err = llrp.DecodeChoiceVec[OpSpec, *OpSpec](d)
	if err != nil {
		return err
	}
	return d.EndTLV(bodyEnd)
}

func (v *AccessCommand) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(209)
	(&v.TagSpec).EncodeTLV(e)
	llrp.EncodeChoiceVec[OpSpec, *OpSpec](e, v.OpSpec)
	e.EndTLV(token)
}

// AccessReportSpec is a TLV parameter (type 239).
type AccessReportSpec struct {
	Trigger uint8
}

func (v *AccessReportSpec) CanDecodeType(typeNum uint16) bool { return typeNum == 239 }

func (v *AccessReportSpec) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(239)
	if err != nil {
		return err
	}
	v.Trigger, err = d.ReadUint8()
	if err != nil {
		return err
	}
	return d.EndTLV(bodyEnd)
}

func (v *AccessReportSpec) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(239)
	e.WriteUint8(v.Trigger)
	e.EndTLV(token)
}

// AccessSpec is a TLV parameter (type 207).
type AccessSpec struct {
	ID           uint32
	AntennaID    uint16
	ProtocolID   uint8
	CurrentState bool
	ROSpecID     uint32
	StopTrigger  AccessSpecStopTrigger
	Command      AccessCommand
	ReportSpec   *AccessReportSpec
}

func (v *AccessSpec) CanDecodeType(typeNum uint16) bool { return typeNum == 207 }

func (v *AccessSpec) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(207)
	if err != nil {
		return err
	}
	v.ID, err = d.ReadUint32()
	if err != nil {
		return err
	}
	v.AntennaID, err = d.ReadUint16()
	if err != nil {
		return err
	}
	v.ProtocolID, err = d.ReadUint8()
	if err != nil {
		return err
	}
	{
		flag, ferr := llrp.DecodeBits[uint8](d, 1)
		if ferr != nil {
			return ferr
		}
		v.CurrentState = flag != 0
	}
	if _, err := llrp.DecodeBits[uint8](d, 7); err != nil {
		return err
	}
	v.ROSpecID, err = d.ReadUint32()
	if err != nil {
		return err
	}
	{
		p, err := llrp.DecodeOption[AccessSpecStopTrigger, *AccessSpecStopTrigger](d)
		if err != nil {
			return err
		}
		if p == nil {
			return &llrp.Error{Kind: llrp.KindInsufficientData}
		}
		v.StopTrigger = *p
	}
	{
		p, err := llrp.DecodeOption[AccessCommand, *AccessCommand](d)
		if err != nil {
			return err
		}
		if p == nil {
			return &llrp.Error{Kind: llrp.KindInsufficientData}
		}
		v.Command = *p
	}
	v.ReportSpec, err = llrp.DecodeOption[AccessReportSpec, *AccessReportSpec](d)
	if err != nil {
		return err
	}
	return d.EndTLV(bodyEnd)
}

func (v *AccessSpec) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(207)
	e.WriteUint32(v.ID)
	e.WriteUint16(v.AntennaID)
	e.WriteUint8(v.ProtocolID)
	{
		var flag uint8
		if v.CurrentState {
			flag = 1
		}
		llrp.EncodeBits[uint8](e, flag, 1)
	}
	llrp.EncodeBits[uint8](e, 0, 7)
	e.WriteUint32(v.ROSpecID)
	(&v.StopTrigger).EncodeTLV(e)
	(&v.Command).EncodeTLV(e)
	llrp.EncodeOption[AccessReportSpec, *AccessReportSpec](e, v.ReportSpec)
	e.EndTLV(token)
}
