package parameters

import "github.com/llrp-go/llrp"

// EPCData is a TLV parameter (type 241), the variable-length (non-96-bit)
// EPC representation. Added for completeness alongside the TV-encoded
// EPC96 variant the scenarios this package is grounded on exercise; no
// scenario exercises EPCData's own bytes.
type EPCData struct {
	EPC llrp.BitArray
}

func (v *EPCData) CanDecodeType(typeNum uint16) bool { return typeNum == 241 }

func (v *EPCData) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(241)
	if err != nil {
		return err
	}
	v.EPC, err = d.ReadBitArray()
	if err != nil {
		return err
	}
	return d.EndTLV(bodyEnd)
}

func (v *EPCData) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(241)
	e.WriteBitArray(v.EPC)
	e.EndTLV(token)
}

// EpcDataParameter is a choice (tagged union) over its variant fields.
type EpcDataParameter struct {
	Epc96   *EPC96
	EPCData *EPCData
}

func (v *EpcDataParameter) CanDecodeType(typeNum uint16) bool {
	switch typeNum {
	case 241:
		return true
	}
	return false
}

func (v *EpcDataParameter) CanDecodeTvType(typeNum uint16) bool {
	switch typeNum {
	case 13:
		return true
	}
	return false
}

func (v *EpcDataParameter) DecodeChoice(d *llrp.Decoder) error {
	hdr, err := d.PeekParamHeader()
	if err != nil {
		return err
	}
	switch {
	case hdr.IsTV && hdr.TypeNum == 13:
		var x EPC96
		if err := x.DecodeTV(d); err != nil {
			return err
		}
		v.Epc96 = &x
		return nil
	case !hdr.IsTV && hdr.TypeNum == 241:
		var x EPCData
		if err := x.DecodeTLV(d); err != nil {
			return err
		}
		v.EPCData = &x
		return nil
	}
	if hdr.IsTV {
		return &llrp.Error{Kind: llrp.KindInvalidTvType, TypeNum: int(hdr.TypeNum)}
	}
	return &llrp.Error{Kind: llrp.KindInvalidType, TypeNum: int(hdr.TypeNum)}
}

func (v *EpcDataParameter) EncodeChoice(e *llrp.Encoder) {
	switch {
	case v.Epc96 != nil:
		v.Epc96.EncodeTV(e)
	case v.EPCData != nil:
		v.EPCData.EncodeTLV(e)
	}
}

// C1G2ReadOpSpecResult is a TLV parameter (type 349), an OpSpecResult
// choice variant.
type C1G2ReadOpSpecResult struct {
	Result   uint8
	OpSpecID uint16
	ReadData []uint16
}

func (v *C1G2ReadOpSpecResult) CanDecodeType(typeNum uint16) bool { return typeNum == 349 }

func (v *C1G2ReadOpSpecResult) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(349)
	if err != nil {
		return err
	}
	v.Result, err = d.ReadUint8()
	if err != nil {
		return err
	}
	v.OpSpecID, err = d.ReadUint16()
	if err != nil {
		return err
	}
	v.ReadData, err = llrp.ReadArray(d, func(d *llrp.Decoder) (uint16, error) { return d.ReadUint16() })
	if err != nil {
		return err
	}
	return d.EndTLV(bodyEnd)
}

func (v *C1G2ReadOpSpecResult) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(349)
	e.WriteUint8(v.Result)
	e.WriteUint16(v.OpSpecID)
	llrp.WriteArray(e, v.ReadData, func(e *llrp.Encoder, v uint16) { e.WriteUint16(v) })
	e.EndTLV(token)
}

// C1G2BlockWriteOpSpecResult is a TLV parameter (type 354), an
// OpSpecResult choice variant.
type C1G2BlockWriteOpSpecResult struct {
	Result       uint8
	OpSpecID     uint16
	WordsWritten uint16
}

func (v *C1G2BlockWriteOpSpecResult) CanDecodeType(typeNum uint16) bool { return typeNum == 354 }

func (v *C1G2BlockWriteOpSpecResult) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(354)
	if err != nil {
		return err
	}
	v.Result, err = d.ReadUint8()
	if err != nil {
		return err
	}
	v.OpSpecID, err = d.ReadUint16()
	if err != nil {
		return err
	}
	v.WordsWritten, err = d.ReadUint16()
	if err != nil {
		return err
	}
	return d.EndTLV(bodyEnd)
}

func (v *C1G2BlockWriteOpSpecResult) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(354)
	e.WriteUint8(v.Result)
	e.WriteUint16(v.OpSpecID)
	e.WriteUint16(v.WordsWritten)
	e.EndTLV(token)
}

// OpSpecResult is a choice (tagged union) over its variant fields.
type OpSpecResult struct {
	ReadResult       *C1G2ReadOpSpecResult
	BlockWriteResult *C1G2BlockWriteOpSpecResult
}

func (v *OpSpecResult) CanDecodeType(typeNum uint16) bool {
	switch typeNum {
	case 349, 354:
		return true
	}
	return false
}

func (v *OpSpecResult) CanDecodeTvType(typeNum uint16) bool {
	return false
}

func (v *OpSpecResult) DecodeChoice(d *llrp.Decoder) error {
	hdr, err := d.PeekParamHeader()
	if err != nil {
		return err
	}
	switch {
	case !hdr.IsTV && hdr.TypeNum == 349:
		var x C1G2ReadOpSpecResult
		if err := x.DecodeTLV(d); err != nil {
			return err
		}
		v.ReadResult = &x
		return nil
	case !hdr.IsTV && hdr.TypeNum == 354:
		var x C1G2BlockWriteOpSpecResult
		if err := x.DecodeTLV(d); err != nil {
			return err
		}
		v.BlockWriteResult = &x
		return nil
	}
	if hdr.IsTV {
		return &llrp.Error{Kind: llrp.KindInvalidTvType, TypeNum: int(hdr.TypeNum)}
	}
	return &llrp.Error{Kind: llrp.KindInvalidType, TypeNum: int(hdr.TypeNum)}
}

func (v *OpSpecResult) EncodeChoice(e *llrp.Encoder) {
	switch {
	case v.ReadResult != nil:
		v.ReadResult.EncodeTLV(e)
	case v.BlockWriteResult != nil:
		v.BlockWriteResult.EncodeTLV(e)
	}
}

// TagReportData is a TLV parameter (type 240). Its Custom field (vendor
// extension data) is omitted, same rationale as AiSpec's.
type TagReportData struct {
	EpcData                  EpcDataParameter
	ROSpecID                 *ROSpecID
	SpecIndex                *SpecIndex
	InventoryParameterSpecID *InventoryParameterSpecID
	AntennaID                *AntennaID
	PeakRSSI                 *PeakRSSI
	ChannelIndex             *ChannelIndex
	FirstSeenTimestampUTC    *FirstSeenTimestampUTC
	FirstSeenTimestampUptime *FirstSeenTimestampUptime
	LastSeenTimestampUTC     *LastSeenTimestampUTC
	LastSeenTimestampUptime  *LastSeenTimestampUptime
	TagSeenCount             *TagSeenCount
	C1G2PC                   *C1G2PC
	C1G2CRC                  *C1G2CRC
	AccessSpecID             *AccessSpecID
	OpSpecResult             []OpSpecResult
}

func (v *TagReportData) CanDecodeType(typeNum uint16) bool { return typeNum == 240 }

func (v *TagReportData) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(240)
	if err != nil {
		return err
	}
	{
		p, err := llrp.DecodeChoiceOption[EpcDataParameter, *EpcDataParameter](d)
		if err != nil {
			return err
		}
		if p == nil {
			return &llrp.Error{Kind: llrp.KindInsufficientData}
		}
		v.EpcData = *p
	}
	v.ROSpecID, err = llrp.DecodeTVOption[ROSpecID, *ROSpecID](d)
	if err != nil {
		return err
	}
	v.SpecIndex, err = llrp.DecodeTVOption[SpecIndex, *SpecIndex](d)
	if err != nil {
		return err
	}
	v.InventoryParameterSpecID, err = llrp.DecodeTVOption[InventoryParameterSpecID, *InventoryParameterSpecID](d)
	if err != nil {
		return err
	}
	v.AntennaID, err = llrp.DecodeTVOption[AntennaID, *AntennaID](d)
	if err != nil {
		return err
	}
	v.PeakRSSI, err = llrp.DecodeTVOption[PeakRSSI, *PeakRSSI](d)
	if err != nil {
		return err
	}
	v.ChannelIndex, err = llrp.DecodeTVOption[ChannelIndex, *ChannelIndex](d)
	if err != nil {
		return err
	}
	v.FirstSeenTimestampUTC, err = llrp.DecodeTVOption[FirstSeenTimestampUTC, *FirstSeenTimestampUTC](d)
	if err != nil {
		return err
	}
	v.FirstSeenTimestampUptime, err = llrp.DecodeTVOption[FirstSeenTimestampUptime, *FirstSeenTimestampUptime](d)
	if err != nil {
		return err
	}
	v.LastSeenTimestampUTC, err = llrp.DecodeTVOption[LastSeenTimestampUTC, *LastSeenTimestampUTC](d)
	if err != nil {
		return err
	}
	v.LastSeenTimestampUptime, err = llrp.DecodeTVOption[LastSeenTimestampUptime, *LastSeenTimestampUptime](d)
	if err != nil {
		return err
	}
	v.TagSeenCount, err = llrp.DecodeTVOption[TagSeenCount, *TagSeenCount](d)
	if err != nil {
		return err
	}
	v.C1G2PC, err = llrp.DecodeTVOption[C1G2PC, *C1G2PC](d)
	if err != nil {
		return err
	}
	v.C1G2CRC, err = llrp.DecodeTVOption[C1G2CRC, *C1G2CRC](d)
	if err != nil {
		return err
	}
	v.AccessSpecID, err = llrp.DecodeTVOption[AccessSpecID, *AccessSpecID](d)
	if err != nil {
		return err
	}
	v.OpSpecResult, err = llrp.DecodeChoiceVec[OpSpecResult, *OpSpecResult](d)
	if err != nil {
		return err
	}
	return d.EndTLV(bodyEnd)
}

func (v *TagReportData) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(240)
	(&v.EpcData).EncodeChoice(e)
	llrp.EncodeTVOption[ROSpecID, *ROSpecID](e, v.ROSpecID)
	llrp.EncodeTVOption[SpecIndex, *SpecIndex](e, v.SpecIndex)
	llrp.EncodeTVOption[InventoryParameterSpecID, *InventoryParameterSpecID](e, v.InventoryParameterSpecID)
	llrp.EncodeTVOption[AntennaID, *AntennaID](e, v.AntennaID)
	llrp.EncodeTVOption[PeakRSSI, *PeakRSSI](e, v.PeakRSSI)
	llrp.EncodeTVOption[ChannelIndex, *ChannelIndex](e, v.ChannelIndex)
	llrp.EncodeTVOption[FirstSeenTimestampUTC, *FirstSeenTimestampUTC](e, v.FirstSeenTimestampUTC)
	llrp.EncodeTVOption[FirstSeenTimestampUptime, *FirstSeenTimestampUptime](e, v.FirstSeenTimestampUptime)
	llrp.EncodeTVOption[LastSeenTimestampUTC, *LastSeenTimestampUTC](e, v.LastSeenTimestampUTC)
	llrp.EncodeTVOption[LastSeenTimestampUptime, *LastSeenTimestampUptime](e, v.LastSeenTimestampUptime)
	llrp.EncodeTVOption[TagSeenCount, *TagSeenCount](e, v.TagSeenCount)
	llrp.EncodeTVOption[C1G2PC, *C1G2PC](e, v.C1G2PC)
	llrp.EncodeTVOption[C1G2CRC, *C1G2CRC](e, v.C1G2CRC)
	llrp.EncodeTVOption[AccessSpecID, *AccessSpecID](e, v.AccessSpecID)
	llrp.EncodeChoiceVec[OpSpecResult, *OpSpecResult](e, v.OpSpecResult)
	e.EndTLV(token)
}
