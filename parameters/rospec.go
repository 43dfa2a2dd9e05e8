package parameters

import (
	"github.com/llrp-go/llrp"
	"github.com/llrp-go/llrp/enums"
)

// GPITriggerValue is a TLV parameter (type 181). Not exercised by any of
// the scenarios this package is grounded on; its field set follows
// original_source/llrp/src/parameters.rs's GPITriggerValue struct
// (gpi_port_num, gpi_event, timeout) directly rather than the official
// LLRP spec's bit-for-bit layout.
type GPITriggerValue struct {
	GPIPortNum uint16
	GPIEvent   bool
	Timeout    uint64
}

func (v *GPITriggerValue) CanDecodeType(typeNum uint16) bool { return typeNum == 181 }

func (v *GPITriggerValue) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(181)
	if err != nil {
		return err
	}
	v.GPIPortNum, err = d.ReadUint16()
	if err != nil {
		return err
	}
	{
		flag, ferr := llrp.DecodeBits[uint8](d, 1)
		if ferr != nil {
			return ferr
		}
		v.GPIEvent = flag != 0
	}
	if _, err := llrp.DecodeBits[uint8](d, 7); err != nil {
		return err
	}
	v.Timeout, err = d.ReadUint64()
	if err != nil {
		return err
	}
	return d.EndTLV(bodyEnd)
}

func (v *GPITriggerValue) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(181)
	e.WriteUint16(v.GPIPortNum)
	{
		var flag uint8
		if v.GPIEvent {
			flag = 1
		}
		llrp.EncodeBits[uint8](e, flag, 1)
	}
	llrp.EncodeBits[uint8](e, 0, 7)
	e.WriteUint64(v.Timeout)
	e.EndTLV(token)
}

// PeriodicTriggerValue is a TLV parameter (type 180).
type PeriodicTriggerValue struct {
	Offset  uint32
	Period  uint32
	UTCTime *UTCTimestamp
}

func (v *PeriodicTriggerValue) CanDecodeType(typeNum uint16) bool { return typeNum == 180 }

func (v *PeriodicTriggerValue) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(180)
	if err != nil {
		return err
	}
	v.Offset, err = d.ReadUint32()
	if err != nil {
		return err
	}
	v.Period, err = d.ReadUint32()
	if err != nil {
		return err
	}
	v.UTCTime, err = llrp.DecodeOption[UTCTimestamp, *UTCTimestamp](d)
	if err != nil {
		return err
	}
	return d.EndTLV(bodyEnd)
}

func (v *PeriodicTriggerValue) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(180)
	e.WriteUint32(v.Offset)
	e.WriteUint32(v.Period)
	llrp.EncodeOption[UTCTimestamp, *UTCTimestamp](e, v.UTCTime)
	e.EndTLV(token)
}

// RoSpecStartTrigger is a TLV parameter (type 179).
type RoSpecStartTrigger struct {
	TriggerType          uint8
	PeriodicTriggerValue *PeriodicTriggerValue
	GPITriggerValue      *GPITriggerValue
}

func (v *RoSpecStartTrigger) CanDecodeType(typeNum uint16) bool { return typeNum == 179 }

func (v *RoSpecStartTrigger) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(179)
	if err != nil {
		return err
	}
	v.TriggerType, err = d.ReadUint8()
	if err != nil {
		return err
	}
	v.PeriodicTriggerValue, err = llrp.DecodeOption[PeriodicTriggerValue, *PeriodicTriggerValue](d)
	if err != nil {
		return err
	}
	v.GPITriggerValue, err = llrp.DecodeOption[GPITriggerValue, *GPITriggerValue](d)
	if err != nil {
		return err
	}
	return d.EndTLV(bodyEnd)
}

func (v *RoSpecStartTrigger) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(179)
	e.WriteUint8(v.TriggerType)
	llrp.EncodeOption[PeriodicTriggerValue, *PeriodicTriggerValue](e, v.PeriodicTriggerValue)
	llrp.EncodeOption[GPITriggerValue, *GPITriggerValue](e, v.GPITriggerValue)
	e.EndTLV(token)
}

// RoSpecStopTrigger is a TLV parameter (type 182).
type RoSpecStopTrigger struct {
	TriggerType          uint8
	DurationTriggerValue uint32
	GPITriggerValue      *GPITriggerValue
}

func (v *RoSpecStopTrigger) CanDecodeType(typeNum uint16) bool { return typeNum == 182 }

func (v *RoSpecStopTrigger) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(182)
	if err != nil {
		return err
	}
	v.TriggerType, err = d.ReadUint8()
	if err != nil {
		return err
	}
	v.DurationTriggerValue, err = d.ReadUint32()
	if err != nil {
		return err
	}
	v.GPITriggerValue, err = llrp.DecodeOption[GPITriggerValue, *GPITriggerValue](d)
	if err != nil {
		return err
	}
	return d.EndTLV(bodyEnd)
}

func (v *RoSpecStopTrigger) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(182)
	e.WriteUint8(v.TriggerType)
	e.WriteUint32(v.DurationTriggerValue)
	llrp.EncodeOption[GPITriggerValue, *GPITriggerValue](e, v.GPITriggerValue)
	e.EndTLV(token)
}

// RoBoundarySpec is a TLV parameter (type 178).
type RoBoundarySpec struct {
	StartTrigger RoSpecStartTrigger
	StopTrigger  RoSpecStopTrigger
}

func (v *RoBoundarySpec) CanDecodeType(typeNum uint16) bool { return typeNum == 178 }

func (v *RoBoundarySpec) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(178)
	if err != nil {
		return err
	}
	{
		p, err := llrp.DecodeOption[RoSpecStartTrigger, *RoSpecStartTrigger](d)
		if err != nil {
			return err
		}
		if p == nil {
			return &llrp.Error{Kind: llrp.KindInsufficientData}
		}
		v.StartTrigger = *p
	}
	{
		p, err := llrp.DecodeOption[RoSpecStopTrigger, *RoSpecStopTrigger](d)
		if err != nil {
			return err
		}
		if p == nil {
			return &llrp.Error{Kind: llrp.KindInsufficientData}
		}
		v.StopTrigger = *p
	}
	return d.EndTLV(bodyEnd)
}

func (v *RoBoundarySpec) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(178)
	(&v.StartTrigger).EncodeTLV(e)
	(&v.StopTrigger).EncodeTLV(e)
	e.EndTLV(token)
}

// TagObservationTriggerValue is a TLV parameter (type 185). Not exercised
// by any of the scenarios this package is grounded on.
type TagObservationTriggerValue struct {
	TriggerType      uint8
	NumberOfTags     uint16
	NumberOfAttempts uint16
	T                uint16
	Timeout          uint32
}

func (v *TagObservationTriggerValue) CanDecodeType(typeNum uint16) bool { return typeNum == 185 }

func (v *TagObservationTriggerValue) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(185)
	if err != nil {
		return err
	}
	v.TriggerType, err = d.ReadUint8()
	if err != nil {
		return err
	}
	v.NumberOfTags, err = d.ReadUint16()
	if err != nil {
		return err
	}
	v.NumberOfAttempts, err = d.ReadUint16()
	if err != nil {
		return err
	}
	v.T, err = d.ReadUint16()
	if err != nil {
		return err
	}
	v.Timeout, err = d.ReadUint32()
	if err != nil {
		return err
	}
	return d.EndTLV(bodyEnd)
}

func (v *TagObservationTriggerValue) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(185)
	e.WriteUint8(v.TriggerType)
	e.WriteUint16(v.NumberOfTags)
	e.WriteUint16(v.NumberOfAttempts)
	e.WriteUint16(v.T)
	e.WriteUint32(v.Timeout)
	e.EndTLV(token)
}

// AiSpecStopTrigger is a TLV parameter (type 184).
type AiSpecStopTrigger struct {
	TriggerType                uint8
	DurationTriggerValue       uint32
	GPITriggerValue            *GPITriggerValue
	TagObservationTriggerValue *TagObservationTriggerValue
}

func (v *AiSpecStopTrigger) CanDecodeType(typeNum uint16) bool { return typeNum == 184 }

func (v *AiSpecStopTrigger) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(184)
	if err != nil {
		return err
	}
	v.TriggerType, err = d.ReadUint8()
	if err != nil {
		return err
	}
	v.DurationTriggerValue, err = d.ReadUint32()
	if err != nil {
		return err
	}
	v.GPITriggerValue, err = llrp.DecodeOption[GPITriggerValue, *GPITriggerValue](d)
	if err != nil {
		return err
	}
	v.TagObservationTriggerValue, err = llrp.DecodeOption[TagObservationTriggerValue, *TagObservationTriggerValue](d)
	if err != nil {
		return err
	}
	return d.EndTLV(bodyEnd)
}

func (v *AiSpecStopTrigger) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(184)
	e.WriteUint8(v.TriggerType)
	e.WriteUint32(v.DurationTriggerValue)
	llrp.EncodeOption[GPITriggerValue, *GPITriggerValue](e, v.GPITriggerValue)
	llrp.EncodeOption[TagObservationTriggerValue, *TagObservationTriggerValue](e, v.TagObservationTriggerValue)
	e.EndTLV(token)
}

// C1G2RfControl is a TLV parameter (type 335).
type C1G2RfControl struct {
	ModeIndex uint16
	Tari      uint16
}

func (v *C1G2RfControl) CanDecodeType(typeNum uint16) bool { return typeNum == 335 }

func (v *C1G2RfControl) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(335)
	if err != nil {
		return err
	}
	v.ModeIndex, err = d.ReadUint16()
	if err != nil {
		return err
	}
	v.Tari, err = d.ReadUint16()
	if err != nil {
		return err
	}
	return d.EndTLV(bodyEnd)
}

func (v *C1G2RfControl) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(335)
	e.WriteUint16(v.ModeIndex)
	e.WriteUint16(v.Tari)
	e.EndTLV(token)
}

// C1G2SingulationControl is a TLV parameter (type 336).
type C1G2SingulationControl struct {
	Session        uint8
	TagPopulation  uint16
	TagTransitTime uint32
}

func (v *C1G2SingulationControl) CanDecodeType(typeNum uint16) bool { return typeNum == 336 }

func (v *C1G2SingulationControl) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(336)
	if err != nil {
		return err
	}
	v.Session, err = d.ReadUint8()
	if err != nil {
		return err
	}
	v.TagPopulation, err = d.ReadUint16()
	if err != nil {
		return err
	}
	v.TagTransitTime, err = d.ReadUint32()
	if err != nil {
		return err
	}
	return d.EndTLV(bodyEnd)
}

func (v *C1G2SingulationControl) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(336)
	e.WriteUint8(v.Session)
	e.WriteUint16(v.TagPopulation)
	e.WriteUint32(v.TagTransitTime)
	e.EndTLV(token)
}

// C1G2InventoryCommand is a TLV parameter (type 330). Its Filter field
// (a list of C1G2Filter tag-selection masks) is omitted: the original
// implementation this package is grounded on never implements
// C1G2Filter either, and no scenario this package is grounded on
// exercises one.
type C1G2InventoryCommand struct {
	TagInventoryStateAware bool
	RFControl              *C1G2RfControl
	SingulationControl     *C1G2SingulationControl
}

func (v *C1G2InventoryCommand) CanDecodeType(typeNum uint16) bool { return typeNum == 330 }

func (v *C1G2InventoryCommand) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(330)
	if err != nil {
		return err
	}
	{
		flag, ferr := llrp.DecodeBits[uint8](d, 1)
		if ferr != nil {
			return ferr
		}
		v.TagInventoryStateAware = flag != 0
	}
	if _, err := llrp.DecodeBits[uint8](d, 7); err != nil {
		return err
	}
	v.RFControl, err = llrp.DecodeOption[C1G2RfControl, *C1G2RfControl](d)
	if err != nil {
		return err
	}
	v.SingulationControl, err = llrp.DecodeOption[C1G2SingulationControl, *C1G2SingulationControl](d)
	if err != nil {
		return err
	}
	return d.EndTLV(bodyEnd)
}

func (v *C1G2InventoryCommand) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(330)
	{
		var flag uint8
		if v.TagInventoryStateAware {
			flag = 1
		}
		llrp.EncodeBits[uint8](e, flag, 1)
	}
	llrp.EncodeBits[uint8](e, 0, 7)
	llrp.EncodeOption[C1G2RfControl, *C1G2RfControl](e, v.RFControl)
	llrp.EncodeOption[C1G2SingulationControl, *C1G2SingulationControl](e, v.SingulationControl)
	e.EndTLV(token)
}

// AntennaConfiguration is a TLV parameter (type 222). Its RFReceiver and
// RFTransmitter fields are omitted: the original implementation this
// package is grounded on leaves both unimplemented, and no scenario this
// package is grounded on exercises either.
type AntennaConfiguration struct {
	AntennaID        uint16
	InventoryCommand []C1G2InventoryCommand
}

func (v *AntennaConfiguration) CanDecodeType(typeNum uint16) bool { return typeNum == 222 }

func (v *AntennaConfiguration) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(222)
	if err != nil {
		return err
	}
	v.AntennaID, err = d.ReadUint16()
	if err != nil {
		return err
	}
	v.InventoryCommand, err = llrp.DecodeVec[C1G2InventoryCommand, *C1G2InventoryCommand](d)
	if err != nil {
		return err
	}
	return d.EndTLV(bodyEnd)
}

func (v *AntennaConfiguration) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(222)
	e.WriteUint16(v.AntennaID)
	llrp.EncodeVec[C1G2InventoryCommand, *C1G2InventoryCommand](e, v.InventoryCommand)
	e.EndTLV(token)
}

// InventorySpec is a TLV parameter (type 186).
type InventorySpec struct {
	SpecID               uint16
	ProtocolID           enums.AirProtocol
	AntennaConfiguration []AntennaConfiguration
}

func (v *InventorySpec) CanDecodeType(typeNum uint16) bool { return typeNum == 186 }

func (v *InventorySpec) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(186)
	if err != nil {
		return err
	}
	v.SpecID, err = d.ReadUint16()
	if err != nil {
		return err
	}
	{
		raw, err := d.ReadUint8()
		if err != nil {
			return err
		}
		x, ok := enums.AirProtocolFromValue(uint32(raw))
		if !ok {
			return &llrp.Error{Kind: llrp.KindInvalidVariant, Value: uint32(raw)}
		}
		v.ProtocolID = x
	}
	v.AntennaConfiguration, err = llrp.DecodeVec[AntennaConfiguration, *AntennaConfiguration](d)
	if err != nil {
		return err
	}
	return d.EndTLV(bodyEnd)
}

func (v *InventorySpec) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(186)
	e.WriteUint16(v.SpecID)
	e.WriteUint8(uint8(enums.AirProtocolToValue(v.ProtocolID)))
	llrp.EncodeVec[AntennaConfiguration, *AntennaConfiguration](e, v.AntennaConfiguration)
	e.EndTLV(token)
}

// AiSpec is a TLV parameter (type 183). Its Custom field (vendor
// extension data) is omitted — out of scope per spec.md's non-goals for
// vendor-proprietary parameters.
type AiSpec struct {
	AntennaIDs    []uint16
	StopTrigger   AiSpecStopTrigger
	InventorySpec []InventorySpec
}

func (v *AiSpec) CanDecodeType(typeNum uint16) bool { return typeNum == 183 }

func (v *AiSpec) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(183)
	if err != nil {
		return err
	}
	v.AntennaIDs, err = llrp.ReadArray(d, func(d *llrp.Decoder) (uint16, error) { return d.ReadUint16() })
	if err != nil {
		return err
	}
	{
		p, err := llrp.DecodeOption[AiSpecStopTrigger, *AiSpecStopTrigger](d)
		if err != nil {
			return err
		}
		if p == nil {
			return &llrp.Error{Kind: llrp.KindInsufficientData}
		}
		v.StopTrigger = *p
	}
	v.InventorySpec, err = llrp.DecodeVec[InventorySpec, *InventorySpec](d)
	if err != nil {
		return err
	}
	return d.EndTLV(bodyEnd)
}

func (v *AiSpec) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(183)
	llrp.WriteArray(e, v.AntennaIDs, func(e *llrp.Encoder, v uint16) { e.WriteUint16(v) })
	(&v.StopTrigger).EncodeTLV(e)
	llrp.EncodeVec[InventorySpec, *InventorySpec](e, v.InventorySpec)
	e.EndTLV(token)
}

// RoReportSpec is a TLV parameter (type 237). The original implementation
// this package is grounded on leaves its body unimplemented (an empty
// marker struct); this package mirrors that scope boundary.
type RoReportSpec struct{}

func (v *RoReportSpec) CanDecodeType(typeNum uint16) bool { return typeNum == 237 }

func (v *RoReportSpec) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(237)
	if err != nil {
		return err
	}
	return d.EndTLV(bodyEnd)
}

func (v *RoReportSpec) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(237)
	e.EndTLV(token)
}

// RoSpec is a TLV parameter (type 177).
type RoSpec struct {
	ID             uint32
	Priority       uint8
	CurrentState   uint8
	BoundarySpec   RoBoundarySpec
	SpecList       []AiSpec
	ReportSpec     *RoReportSpec
}

func (v *RoSpec) CanDecodeType(typeNum uint16) bool { return typeNum == 177 }

func (v *RoSpec) DecodeTLV(d *llrp.Decoder) error {
	bodyEnd, err := d.BeginTLV(177)
	if err != nil {
		return err
	}
	v.ID, err = d.ReadUint32()
	if err != nil {
		return err
	}
	v.Priority, err = d.ReadUint8()
	if err != nil {
		return err
	}
	v.CurrentState, err = d.ReadUint8()
	if err != nil {
		return err
	}
	{
		p, err := llrp.DecodeOption[RoBoundarySpec, *RoBoundarySpec](d)
		if err != nil {
			return err
		}
		if p == nil {
			return &llrp.Error{Kind: llrp.KindInsufficientData}
		}
		v.BoundarySpec = *p
	}
	v.SpecList, err = llrp.DecodeVec[AiSpec, *AiSpec](d)
	if err != nil {
		return err
	}
	v.ReportSpec, err = llrp.DecodeOption[RoReportSpec, *RoReportSpec](d)
	if err != nil {
		return err
	}
	return d.EndTLV(bodyEnd)
}

func (v *RoSpec) EncodeTLV(e *llrp.Encoder) {
	token := e.BeginTLV(177)
	e.WriteUint32(v.ID)
	e.WriteUint8(v.Priority)
	e.WriteUint8(v.CurrentState)
	(&v.BoundarySpec).EncodeTLV(e)
	llrp.EncodeVec[AiSpec, *AiSpec](e, v.SpecList)
	llrp.EncodeOption[RoReportSpec, *RoReportSpec](e, v.ReportSpec)
	e.EndTLV(token)
}
