// Package messages holds the generated top-level message types a core
// LLRP definition file describes, plus the dispatch table (dispatch.go)
// that Decode consults by envelope type number.
// Written by hand as one run of the generator over the LLRP core
// definition file would produce it; see DESIGN.md's C12 entry.
package messages

import (
	"github.com/llrp-go/llrp"
	"github.com/llrp-go/llrp/enums"
	"github.com/llrp-go/llrp/parameters"
)

// GetReaderCapabilities is message type 1.
type GetReaderCapabilities struct {
	RequestedData enums.ReaderCapabilitiesRequestedData
}

// MessageID returns GetReaderCapabilities's envelope type number.
func (v *GetReaderCapabilities) MessageID() uint16 { return 1 }

// Decode populates v's fields from d. It does not check that d is fully
// consumed; the package-level Decode (dispatch.go) owns that check.
func (v *GetReaderCapabilities) Decode(d *llrp.Decoder) error {
	raw, err := d.ReadUint8()
	if err != nil {
		return err
	}
	x, ok := enums.ReaderCapabilitiesRequestedDataFromValue(uint32(raw))
	if !ok {
		return &llrp.Error{Kind: llrp.KindInvalidVariant, Value: uint32(raw)}
	}
	v.RequestedData = x
	return nil
}

// Encode serialises v's payload (message body only; no envelope).
func (v *GetReaderCapabilities) Encode() []byte {
	e := llrp.NewEncoder()
	e.WriteUint8(uint8(enums.ReaderCapabilitiesRequestedDataToValue(v.RequestedData)))
	return e.Bytes()
}

// GetReaderCapabilitiesResponse is message type 11.
type GetReaderCapabilitiesResponse struct {
	Status                      parameters.LLRPStatus
	GeneralDeviceCapabilities   *parameters.GeneralDeviceCapabilities
	LLRPCapabilities            *parameters.LLRPCapabilities
	RegulatoryCapabilities      *parameters.RegulatoryCapabilities
	AirProtocolLLRPCapabilities *parameters.AirProtocolLLRPCapabilities
}

func (v *GetReaderCapabilitiesResponse) MessageID() uint16 { return 11 }

func (v *GetReaderCapabilitiesResponse) Decode(d *llrp.Decoder) error {
	var err error
	{
		p, err := llrp.DecodeOption[parameters.LLRPStatus, *parameters.LLRPStatus](d)
		if err != nil {
			return err
		}
		if p == nil {
			return &llrp.Error{Kind: llrp.KindInsufficientData}
		}
		v.Status = *p
	}
	v.GeneralDeviceCapabilities, err = llrp.DecodeOption[parameters.GeneralDeviceCapabilities, *parameters.GeneralDeviceCapabilities](d)
	if err != nil {
		return err
	}
	v.LLRPCapabilities, err = llrp.DecodeOption[parameters.LLRPCapabilities, *parameters.LLRPCapabilities](d)
	if err != nil {
		return err
	}
	v.RegulatoryCapabilities, err = llrp.DecodeOption[parameters.RegulatoryCapabilities, *parameters.RegulatoryCapabilities](d)
	if err != nil {
		return err
	}
	v.AirProtocolLLRPCapabilities, err = llrp.DecodeOption[parameters.AirProtocolLLRPCapabilities, *parameters.AirProtocolLLRPCapabilities](d)
	if err != nil {
		return err
	}
	return nil
}

func (v *GetReaderCapabilitiesResponse) Encode() []byte {
	e := llrp.NewEncoder()
	(&v.Status).EncodeTLV(e)
	llrp.EncodeOption[parameters.GeneralDeviceCapabilities, *parameters.GeneralDeviceCapabilities](e, v.GeneralDeviceCapabilities)
	llrp.EncodeOption[parameters.LLRPCapabilities, *parameters.LLRPCapabilities](e, v.LLRPCapabilities)
	llrp.EncodeOption[parameters.RegulatoryCapabilities, *parameters.RegulatoryCapabilities](e, v.RegulatoryCapabilities)
	llrp.EncodeOption[parameters.AirProtocolLLRPCapabilities, *parameters.AirProtocolLLRPCapabilities](e, v.AirProtocolLLRPCapabilities)
	return e.Bytes()
}

// GetReaderConfig is message type 2.
type GetReaderConfig struct {
	AntennaID     uint16
	RequestedData enums.ConfigRequestedData
}

func (v *GetReaderConfig) MessageID() uint16 { return 2 }

func (v *GetReaderConfig) Decode(d *llrp.Decoder) error {
	var err error
	v.AntennaID, err = d.ReadUint16()
	if err != nil {
		return err
	}
	raw, err := d.ReadUint8()
	if err != nil {
		return err
	}
	x, ok := enums.ConfigRequestedDataFromValue(uint32(raw))
	if !ok {
		return &llrp.Error{Kind: llrp.KindInvalidVariant, Value: uint32(raw)}
	}
	v.RequestedData = x
	return nil
}

func (v *GetReaderConfig) Encode() []byte {
	e := llrp.NewEncoder()
	e.WriteUint16(v.AntennaID)
	e.WriteUint8(uint8(enums.ConfigRequestedDataToValue(v.RequestedData)))
	return e.Bytes()
}

// GetReaderConfigResponse is message type 12.
type GetReaderConfigResponse struct {
	Status                      parameters.LLRPStatus
	ReaderEventNotificationSpec *parameters.ReaderEventNotificationSpec
	AntennaProperties           []parameters.AntennaProperties
	AntennaConfiguration        []parameters.AntennaConfiguration
	RoReportSpec                *parameters.RoReportSpec
	AccessReportSpec            *parameters.AccessReportSpec
	KeepAliveSpec               *parameters.KeepAliveSpec
	EventsAndReports            *parameters.EventsAndReports
}

func (v *GetReaderConfigResponse) MessageID() uint16 { return 12 }

func (v *GetReaderConfigResponse) Decode(d *llrp.Decoder) error {
	var err error
	{
		p, err := llrp.DecodeOption[parameters.LLRPStatus, *parameters.LLRPStatus](d)
		if err != nil {
			return err
		}
		if p == nil {
			return &llrp.Error{Kind: llrp.KindInsufficientData}
		}
		v.Status = *p
	}
	v.ReaderEventNotificationSpec, err = llrp.DecodeOption[parameters.ReaderEventNotificationSpec, *parameters.ReaderEventNotificationSpec](d)
	if err != nil {
		return err
	}
	v.AntennaProperties, err = llrp.DecodeVec[parameters.AntennaProperties, *parameters.AntennaProperties](d)
	if err != nil {
		return err
	}
	v.AntennaConfiguration, err = llrp.DecodeVec[parameters.AntennaConfiguration, *parameters.AntennaConfiguration](d)
	if err != nil {
		return err
	}
	v.RoReportSpec, err = llrp.DecodeOption[parameters.RoReportSpec, *parameters.RoReportSpec](d)
	if err != nil {
		return err
	}
	v.AccessReportSpec, err = llrp.DecodeOption[parameters.AccessReportSpec, *parameters.AccessReportSpec](d)
	if err != nil {
		return err
	}
	v.KeepAliveSpec, err = llrp.DecodeOption[parameters.KeepAliveSpec, *parameters.KeepAliveSpec](d)
	if err != nil {
		return err
	}
	v.EventsAndReports, err = llrp.DecodeOption[parameters.EventsAndReports, *parameters.EventsAndReports](d)
	if err != nil {
		return err
	}
	return nil
}

func (v *GetReaderConfigResponse) Encode() []byte {
	e := llrp.NewEncoder()
	(&v.Status).EncodeTLV(e)
	llrp.EncodeOption[parameters.ReaderEventNotificationSpec, *parameters.ReaderEventNotificationSpec](e, v.ReaderEventNotificationSpec)
	llrp.EncodeVec[parameters.AntennaProperties, *parameters.AntennaProperties](e, v.AntennaProperties)
	llrp.EncodeVec[parameters.AntennaConfiguration, *parameters.AntennaConfiguration](e, v.AntennaConfiguration)
	llrp.EncodeOption[parameters.RoReportSpec, *parameters.RoReportSpec](e, v.RoReportSpec)
	llrp.EncodeOption[parameters.AccessReportSpec, *parameters.AccessReportSpec](e, v.AccessReportSpec)
	llrp.EncodeOption[parameters.KeepAliveSpec, *parameters.KeepAliveSpec](e, v.KeepAliveSpec)
	llrp.EncodeOption[parameters.EventsAndReports, *parameters.EventsAndReports](e, v.EventsAndReports)
	return e.Bytes()
}

// SetReaderConfig is message type 3.
type SetReaderConfig struct {
	ResetToFactoryDefault       bool
	ReaderEventNotificationSpec *parameters.ReaderEventNotificationSpec
	AntennaProperties           []parameters.AntennaProperties
	AntennaConfiguration        []parameters.AntennaConfiguration
	RoReportSpec                *parameters.RoReportSpec
	AccessReportSpec            *parameters.AccessReportSpec
	KeepAliveSpec               *parameters.KeepAliveSpec
	EventsAndReports            *parameters.EventsAndReports
}

func (v *SetReaderConfig) MessageID() uint16 { return 3 }

func (v *SetReaderConfig) Decode(d *llrp.Decoder) error {
	flag, err := llrp.DecodeBits[uint8](d, 1)
	if err != nil {
		return err
	}
	v.ResetToFactoryDefault = flag != 0
	if _, err := llrp.DecodeBits[uint8](d, 7); err != nil {
		return err
	}
	v.ReaderEventNotificationSpec, err = llrp.DecodeOption[parameters.ReaderEventNotificationSpec, *parameters.ReaderEventNotificationSpec](d)
	if err != nil {
		return err
	}
	v.AntennaProperties, err = llrp.DecodeVec[parameters.AntennaProperties, *parameters.AntennaProperties](d)
	if err != nil {
		return err
	}
	v.AntennaConfiguration, err = llrp.DecodeVec[parameters.AntennaConfiguration, *parameters.AntennaConfiguration](d)
	if err != nil {
		return err
	}
	v.RoReportSpec, err = llrp.DecodeOption[parameters.RoReportSpec, *parameters.RoReportSpec](d)
	if err != nil {
		return err
	}
	v.AccessReportSpec, err = llrp.DecodeOption[parameters.AccessReportSpec, *parameters.AccessReportSpec](d)
	if err != nil {
		return err
	}
	v.KeepAliveSpec, err = llrp.DecodeOption[parameters.KeepAliveSpec, *parameters.KeepAliveSpec](d)
	if err != nil {
		return err
	}
	v.EventsAndReports, err = llrp.DecodeOption[parameters.EventsAndReports, *parameters.EventsAndReports](d)
	if err != nil {
		return err
	}
	return nil
}

func (v *SetReaderConfig) Encode() []byte {
	e := llrp.NewEncoder()
	var flag uint8
	if v.ResetToFactoryDefault {
		flag = 1
	}
	llrp.EncodeBits[uint8](e, flag, 1)
	llrp.EncodeBits[uint8](e, 0, 7)
	llrp.EncodeOption[parameters.ReaderEventNotificationSpec, *parameters.ReaderEventNotificationSpec](e, v.ReaderEventNotificationSpec)
	llrp.EncodeVec[parameters.AntennaProperties, *parameters.AntennaProperties](e, v.AntennaProperties)
	llrp.EncodeVec[parameters.AntennaConfiguration, *parameters.AntennaConfiguration](e, v.AntennaConfiguration)
	llrp.EncodeOption[parameters.RoReportSpec, *parameters.RoReportSpec](e, v.RoReportSpec)
	llrp.EncodeOption[parameters.AccessReportSpec, *parameters.AccessReportSpec](e, v.AccessReportSpec)
	llrp.EncodeOption[parameters.KeepAliveSpec, *parameters.KeepAliveSpec](e, v.KeepAliveSpec)
	llrp.EncodeOption[parameters.EventsAndReports, *parameters.EventsAndReports](e, v.EventsAndReports)
	return e.Bytes()
}

// SetReaderConfigResponse is message type 13.
type SetReaderConfigResponse struct {
	Status parameters.LLRPStatus
}

func (v *SetReaderConfigResponse) MessageID() uint16 { return 13 }

func (v *SetReaderConfigResponse) Decode(d *llrp.Decoder) error {
	p, err := llrp.DecodeOption[parameters.LLRPStatus, *parameters.LLRPStatus](d)
	if err != nil {
		return err
	}
	if p == nil {
		return &llrp.Error{Kind: llrp.KindInsufficientData}
	}
	v.Status = *p
	return nil
}

func (v *SetReaderConfigResponse) Encode() []byte {
	e := llrp.NewEncoder()
	(&v.Status).EncodeTLV(e)
	return e.Bytes()
}

// CloseConnection is message type 14.
type CloseConnection struct{}

func (v *CloseConnection) MessageID() uint16 { return 14 }

func (v *CloseConnection) Decode(d *llrp.Decoder) error { return nil }

func (v *CloseConnection) Encode() []byte { return llrp.NewEncoder().Bytes() }

// CloseConnectionResponse is message type 4.
type CloseConnectionResponse struct {
	Status parameters.LLRPStatus
}

func (v *CloseConnectionResponse) MessageID() uint16 { return 4 }

func (v *CloseConnectionResponse) Decode(d *llrp.Decoder) error {
	p, err := llrp.DecodeOption[parameters.LLRPStatus, *parameters.LLRPStatus](d)
	if err != nil {
		return err
	}
	if p == nil {
		return &llrp.Error{Kind: llrp.KindInsufficientData}
	}
	v.Status = *p
	return nil
}

func (v *CloseConnectionResponse) Encode() []byte {
	e := llrp.NewEncoder()
	(&v.Status).EncodeTLV(e)
	return e.Bytes()
}

// AddRoSpec is message type 20.
type AddRoSpec struct {
	RoSpec parameters.RoSpec
}

func (v *AddRoSpec) MessageID() uint16 { return 20 }

func (v *AddRoSpec) Decode(d *llrp.Decoder) error {
	p, err := llrp.DecodeOption[parameters.RoSpec, *parameters.RoSpec](d)
	if err != nil {
		return err
	}
	if p == nil {
		return &llrp.Error{Kind: llrp.KindInsufficientData}
	}
	v.RoSpec = *p
	return nil
}

func (v *AddRoSpec) Encode() []byte {
	e := llrp.NewEncoder()
	(&v.RoSpec).EncodeTLV(e)
	return e.Bytes()
}

// AddRoSpecResponse is message type 30.
type AddRoSpecResponse struct {
	Status parameters.LLRPStatus
}

func (v *AddRoSpecResponse) MessageID() uint16 { return 30 }

func (v *AddRoSpecResponse) Decode(d *llrp.Decoder) error {
	p, err := llrp.DecodeOption[parameters.LLRPStatus, *parameters.LLRPStatus](d)
	if err != nil {
		return err
	}
	if p == nil {
		return &llrp.Error{Kind: llrp.KindInsufficientData}
	}
	v.Status = *p
	return nil
}

func (v *AddRoSpecResponse) Encode() []byte {
	e := llrp.NewEncoder()
	(&v.Status).EncodeTLV(e)
	return e.Bytes()
}

// DeleteRoSpec is message type 21.
type DeleteRoSpec struct {
	ROSpecID uint32
}

func (v *DeleteRoSpec) MessageID() uint16 { return 21 }

func (v *DeleteRoSpec) Decode(d *llrp.Decoder) error {
	var err error
	v.ROSpecID, err = d.ReadUint32()
	return err
}

func (v *DeleteRoSpec) Encode() []byte {
	e := llrp.NewEncoder()
	e.WriteUint32(v.ROSpecID)
	return e.Bytes()
}

// DeleteRoSpecResponse is message type 31.
type DeleteRoSpecResponse struct {
	Status parameters.LLRPStatus
}

func (v *DeleteRoSpecResponse) MessageID() uint16 { return 31 }

func (v *DeleteRoSpecResponse) Decode(d *llrp.Decoder) error {
	p, err := llrp.DecodeOption[parameters.LLRPStatus, *parameters.LLRPStatus](d)
	if err != nil {
		return err
	}
	if p == nil {
		return &llrp.Error{Kind: llrp.KindInsufficientData}
	}
	v.Status = *p
	return nil
}

func (v *DeleteRoSpecResponse) Encode() []byte {
	e := llrp.NewEncoder()
	(&v.Status).EncodeTLV(e)
	return e.Bytes()
}

// StartRoSpec is message type 22.
type StartRoSpec struct {
	ROSpecID uint32
}

func (v *StartRoSpec) MessageID() uint16 { return 22 }

func (v *StartRoSpec) Decode(d *llrp.Decoder) error {
	var err error
	v.ROSpecID, err = d.ReadUint32()
	return err
}

func (v *StartRoSpec) Encode() []byte {
	e := llrp.NewEncoder()
	e.WriteUint32(v.ROSpecID)
	return e.Bytes()
}

// StartRoSpecResponse is message type 32.
type StartRoSpecResponse struct {
	Status parameters.LLRPStatus
}

func (v *StartRoSpecResponse) MessageID() uint16 { return 32 }

func (v *StartRoSpecResponse) Decode(d *llrp.Decoder) error {
	p, err := llrp.DecodeOption[parameters.LLRPStatus, *parameters.LLRPStatus](d)
	if err != nil {
		return err
	}
	if p == nil {
		return &llrp.Error{Kind: llrp.KindInsufficientData}
	}
	v.Status = *p
	return nil
}

func (v *StartRoSpecResponse) Encode() []byte {
	e := llrp.NewEncoder()
	(&v.Status).EncodeTLV(e)
	return e.Bytes()
}

// StopRoSpec is message type 23.
type StopRoSpec struct {
	ROSpecID uint32
}

func (v *StopRoSpec) MessageID() uint16 { return 23 }

func (v *StopRoSpec) Decode(d *llrp.Decoder) error {
	var err error
	v.ROSpecID, err = d.ReadUint32()
	return err
}

func (v *StopRoSpec) Encode() []byte {
	e := llrp.NewEncoder()
	e.WriteUint32(v.ROSpecID)
	return e.Bytes()
}

// StopRoSpecResponse is message type 33.
type StopRoSpecResponse struct {
	Status parameters.LLRPStatus
}

func (v *StopRoSpecResponse) MessageID() uint16 { return 33 }

func (v *StopRoSpecResponse) Decode(d *llrp.Decoder) error {
	p, err := llrp.DecodeOption[parameters.LLRPStatus, *parameters.LLRPStatus](d)
	if err != nil {
		return err
	}
	if p == nil {
		return &llrp.Error{Kind: llrp.KindInsufficientData}
	}
	v.Status = *p
	return nil
}

func (v *StopRoSpecResponse) Encode() []byte {
	e := llrp.NewEncoder()
	(&v.Status).EncodeTLV(e)
	return e.Bytes()
}

// EnableRoSpec is message type 24.
type EnableRoSpec struct {
	ROSpecID uint32
}

func (v *EnableRoSpec) MessageID() uint16 { return 24 }

func (v *EnableRoSpec) Decode(d *llrp.Decoder) error {
	var err error
	v.ROSpecID, err = d.ReadUint32()
	return err
}

func (v *EnableRoSpec) Encode() []byte {
	e := llrp.NewEncoder()
	e.WriteUint32(v.ROSpecID)
	return e.Bytes()
}

// EnableRoSpecResponse is message type 34.
type EnableRoSpecResponse struct {
	Status parameters.LLRPStatus
}

func (v *EnableRoSpecResponse) MessageID() uint16 { return 34 }

func (v *EnableRoSpecResponse) Decode(d *llrp.Decoder) error {
	p, err := llrp.DecodeOption[parameters.LLRPStatus, *parameters.LLRPStatus](d)
	if err != nil {
		return err
	}
	if p == nil {
		return &llrp.Error{Kind: llrp.KindInsufficientData}
	}
	v.Status = *p
	return nil
}

func (v *EnableRoSpecResponse) Encode() []byte {
	e := llrp.NewEncoder()
	(&v.Status).EncodeTLV(e)
	return e.Bytes()
}

// DisableRoSpec is message type 25.
type DisableRoSpec struct {
	ROSpecID uint32
}

func (v *DisableRoSpec) MessageID() uint16 { return 25 }

func (v *DisableRoSpec) Decode(d *llrp.Decoder) error {
	var err error
	v.ROSpecID, err = d.ReadUint32()
	return err
}

func (v *DisableRoSpec) Encode() []byte {
	e := llrp.NewEncoder()
	e.WriteUint32(v.ROSpecID)
	return e.Bytes()
}

// DisableRoSpecResponse is message type 35.
type DisableRoSpecResponse struct {
	Status parameters.LLRPStatus
}

func (v *DisableRoSpecResponse) MessageID() uint16 { return 35 }

func (v *DisableRoSpecResponse) Decode(d *llrp.Decoder) error {
	p, err := llrp.DecodeOption[parameters.LLRPStatus, *parameters.LLRPStatus](d)
	if err != nil {
		return err
	}
	if p == nil {
		return &llrp.Error{Kind: llrp.KindInsufficientData}
	}
	v.Status = *p
	return nil
}

func (v *DisableRoSpecResponse) Encode() []byte {
	e := llrp.NewEncoder()
	(&v.Status).EncodeTLV(e)
	return e.Bytes()
}

// GetRoSpecs is message type 26.
type GetRoSpecs struct{}

func (v *GetRoSpecs) MessageID() uint16 { return 26 }

func (v *GetRoSpecs) Decode(d *llrp.Decoder) error { return nil }

func (v *GetRoSpecs) Encode() []byte { return llrp.NewEncoder().Bytes() }

// GetRoSpecsResponse is message type 36.
type GetRoSpecsResponse struct {
	Status parameters.LLRPStatus
	RoSpec []parameters.RoSpec
}

func (v *GetRoSpecsResponse) MessageID() uint16 { return 36 }

func (v *GetRoSpecsResponse) Decode(d *llrp.Decoder) error {
	var err error
	{
		p, err := llrp.DecodeOption[parameters.LLRPStatus, *parameters.LLRPStatus](d)
		if err != nil {
			return err
		}
		if p == nil {
			return &llrp.Error{Kind: llrp.KindInsufficientData}
		}
		v.Status = *p
	}
	v.RoSpec, err = llrp.DecodeVec[parameters.RoSpec, *parameters.RoSpec](d)
	if err != nil {
		return err
	}
	return nil
}

func (v *GetRoSpecsResponse) Encode() []byte {
	e := llrp.NewEncoder()
	(&v.Status).EncodeTLV(e)
	llrp.EncodeVec[parameters.RoSpec, *parameters.RoSpec](e, v.RoSpec)
	return e.Bytes()
}

// AddAccessSpec is message type 40.
type AddAccessSpec struct {
	AccessSpec parameters.AccessSpec
}

func (v *AddAccessSpec) MessageID() uint16 { return 40 }

func (v *AddAccessSpec) Decode(d *llrp.Decoder) error {
	p, err := llrp.DecodeOption[parameters.AccessSpec, *parameters.AccessSpec](d)
	if err != nil {
		return err
	}
	if p == nil {
		return &llrp.Error{Kind: llrp.KindInsufficientData}
	}
	v.AccessSpec = *p
	return nil
}

func (v *AddAccessSpec) Encode() []byte {
	e := llrp.NewEncoder()
	(&v.AccessSpec).EncodeTLV(e)
	return e.Bytes()
}

// AddAccessSpecResponse is message type 50.
type AddAccessSpecResponse struct {
	Status parameters.LLRPStatus
}

func (v *AddAccessSpecResponse) MessageID() uint16 { return 50 }

func (v *AddAccessSpecResponse) Decode(d *llrp.Decoder) error {
	p, err := llrp.DecodeOption[parameters.LLRPStatus, *parameters.LLRPStatus](d)
	if err != nil {
		return err
	}
	if p == nil {
		return &llrp.Error{Kind: llrp.KindInsufficientData}
	}
	v.Status = *p
	return nil
}

func (v *AddAccessSpecResponse) Encode() []byte {
	e := llrp.NewEncoder()
	(&v.Status).EncodeTLV(e)
	return e.Bytes()
}

// DeleteAccessSpec is message type 41.
type DeleteAccessSpec struct {
	AccessSpecID uint32
}

func (v *DeleteAccessSpec) MessageID() uint16 { return 41 }

func (v *DeleteAccessSpec) Decode(d *llrp.Decoder) error {
	var err error
	v.AccessSpecID, err = d.ReadUint32()
	return err
}

func (v *DeleteAccessSpec) Encode() []byte {
	e := llrp.NewEncoder()
	e.WriteUint32(v.AccessSpecID)
	return e.Bytes()
}

// DeleteAccessSpecResponse is message type 51.
type DeleteAccessSpecResponse struct {
	Status parameters.LLRPStatus
}

func (v *DeleteAccessSpecResponse) MessageID() uint16 { return 51 }

func (v *DeleteAccessSpecResponse) Decode(d *llrp.Decoder) error {
	p, err := llrp.DecodeOption[parameters.LLRPStatus, *parameters.LLRPStatus](d)
	if err != nil {
		return err
	}
	if p == nil {
		return &llrp.Error{Kind: llrp.KindInsufficientData}
	}
	v.Status = *p
	return nil
}

func (v *DeleteAccessSpecResponse) Encode() []byte {
	e := llrp.NewEncoder()
	(&v.Status).EncodeTLV(e)
	return e.Bytes()
}

// EnableAccessSpec is message type 42.
type EnableAccessSpec struct {
	AccessSpecID uint32
}

func (v *EnableAccessSpec) MessageID() uint16 { return 42 }

func (v *EnableAccessSpec) Decode(d *llrp.Decoder) error {
	var err error
	v.AccessSpecID, err = d.ReadUint32()
	return err
}

func (v *EnableAccessSpec) Encode() []byte {
	e := llrp.NewEncoder()
	e.WriteUint32(v.AccessSpecID)
	return e.Bytes()
}

// EnableAccessSpecResponse is message type 52.
type EnableAccessSpecResponse struct {
	Status parameters.LLRPStatus
}

func (v *EnableAccessSpecResponse) MessageID() uint16 { return 52 }

func (v *EnableAccessSpecResponse) Decode(d *llrp.Decoder) error {
	p, err := llrp.DecodeOption[parameters.LLRPStatus, *parameters.LLRPStatus](d)
	if err != nil {
		return err
	}
	if p == nil {
		return &llrp.Error{Kind: llrp.KindInsufficientData}
	}
	v.Status = *p
	return nil
}

func (v *EnableAccessSpecResponse) Encode() []byte {
	e := llrp.NewEncoder()
	(&v.Status).EncodeTLV(e)
	return e.Bytes()
}

// DisableAccessSpec is message type 43.
type DisableAccessSpec struct {
	AccessSpecID uint32
}

func (v *DisableAccessSpec) MessageID() uint16 { return 43 }

func (v *DisableAccessSpec) Decode(d *llrp.Decoder) error {
	var err error
	v.AccessSpecID, err = d.ReadUint32()
	return err
}

func (v *DisableAccessSpec) Encode() []byte {
	e := llrp.NewEncoder()
	e.WriteUint32(v.AccessSpecID)
	return e.Bytes()
}

// DisableAccessSpecResponse is message type 53.
type DisableAccessSpecResponse struct {
	Status parameters.LLRPStatus
}

func (v *DisableAccessSpecResponse) MessageID() uint16 { return 53 }

func (v *DisableAccessSpecResponse) Decode(d *llrp.Decoder) error {
	p, err := llrp.DecodeOption[parameters.LLRPStatus, *parameters.LLRPStatus](d)
	if err != nil {
		return err
	}
	if p == nil {
		return &llrp.Error{Kind: llrp.KindInsufficientData}
	}
	v.Status = *p
	return nil
}

func (v *DisableAccessSpecResponse) Encode() []byte {
	e := llrp.NewEncoder()
	(&v.Status).EncodeTLV(e)
	return e.Bytes()
}

// GetAccessSpecs is message type 44.
type GetAccessSpecs struct{}

func (v *GetAccessSpecs) MessageID() uint16 { return 44 }

func (v *GetAccessSpecs) Decode(d *llrp.Decoder) error { return nil }

func (v *GetAccessSpecs) Encode() []byte { return llrp.NewEncoder().Bytes() }

// GetAccessSpecsResponse is message type 54.
type GetAccessSpecsResponse struct {
	Status     parameters.LLRPStatus
	AccessSpec []parameters.AccessSpec
}

func (v *GetAccessSpecsResponse) MessageID() uint16 { return 54 }

func (v *GetAccessSpecsResponse) Decode(d *llrp.Decoder) error {
	var err error
	{
		p, err := llrp.DecodeOption[parameters.LLRPStatus, *parameters.LLRPStatus](d)
		if err != nil {
			return err
		}
		if p == nil {
			return &llrp.Error{Kind: llrp.KindInsufficientData}
		}
		v.Status = *p
	}
	v.AccessSpec, err = llrp.DecodeVec[parameters.AccessSpec, *parameters.AccessSpec](d)
	if err != nil {
		return err
	}
	return nil
}

func (v *GetAccessSpecsResponse) Encode() []byte {
	e := llrp.NewEncoder()
	(&v.Status).EncodeTLV(e)
	llrp.EncodeVec[parameters.AccessSpec, *parameters.AccessSpec](e, v.AccessSpec)
	return e.Bytes()
}

// GetReport is message type 60.
type GetReport struct{}

func (v *GetReport) MessageID() uint16 { return 60 }

func (v *GetReport) Decode(d *llrp.Decoder) error { return nil }

func (v *GetReport) Encode() []byte { return llrp.NewEncoder().Bytes() }

// RoAccessReport is message type 61.
type RoAccessReport struct {
	TagReportData []parameters.TagReportData
}

func (v *RoAccessReport) MessageID() uint16 { return 61 }

func (v *RoAccessReport) Decode(d *llrp.Decoder) error {
	var err error
	v.TagReportData, err = llrp.DecodeVec[parameters.TagReportData, *parameters.TagReportData](d)
	return err
}

func (v *RoAccessReport) Encode() []byte {
	e := llrp.NewEncoder()
	llrp.EncodeVec[parameters.TagReportData, *parameters.TagReportData](e, v.TagReportData)
	return e.Bytes()
}

// KeepAlive is message type 62.
type KeepAlive struct{}

func (v *KeepAlive) MessageID() uint16 { return 62 }

func (v *KeepAlive) Decode(d *llrp.Decoder) error { return nil }

func (v *KeepAlive) Encode() []byte { return llrp.NewEncoder().Bytes() }

// KeepAliveAck is message type 72.
type KeepAliveAck struct{}

func (v *KeepAliveAck) MessageID() uint16 { return 72 }

func (v *KeepAliveAck) Decode(d *llrp.Decoder) error { return nil }

func (v *KeepAliveAck) Encode() []byte { return llrp.NewEncoder().Bytes() }

// ReaderEventNotification is message type 63.
type ReaderEventNotification struct {
	ReaderEventNotificationData parameters.ReaderEventNotificationData
}

func (v *ReaderEventNotification) MessageID() uint16 { return 63 }

func (v *ReaderEventNotification) Decode(d *llrp.Decoder) error {
	p, err := llrp.DecodeOption[parameters.ReaderEventNotificationData, *parameters.ReaderEventNotificationData](d)
	if err != nil {
		return err
	}
	if p == nil {
		return &llrp.Error{Kind: llrp.KindInsufficientData}
	}
	v.ReaderEventNotificationData = *p
	return nil
}

func (v *ReaderEventNotification) Encode() []byte {
	e := llrp.NewEncoder()
	(&v.ReaderEventNotificationData).EncodeTLV(e)
	return e.Bytes()
}

// EnableEventsAndReports is message type 64.
type EnableEventsAndReports struct{}

func (v *EnableEventsAndReports) MessageID() uint16 { return 64 }

func (v *EnableEventsAndReports) Decode(d *llrp.Decoder) error { return nil }

func (v *EnableEventsAndReports) Encode() []byte { return llrp.NewEncoder().Bytes() }

// ErrorMessage is message type 100.
type ErrorMessage struct {
	Status parameters.LLRPStatus
}

func (v *ErrorMessage) MessageID() uint16 { return 100 }

func (v *ErrorMessage) Decode(d *llrp.Decoder) error {
	p, err := llrp.DecodeOption[parameters.LLRPStatus, *parameters.LLRPStatus](d)
	if err != nil {
		return err
	}
	if p == nil {
		return &llrp.Error{Kind: llrp.KindInsufficientData}
	}
	v.Status = *p
	return nil
}

func (v *ErrorMessage) Encode() []byte {
	e := llrp.NewEncoder()
	(&v.Status).EncodeTLV(e)
	return e.Bytes()
}
