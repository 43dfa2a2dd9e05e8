package messages

import "github.com/llrp-go/llrp"

// Message is the common shape every type in this package implements. The
// envelope adapter splits off a frame's 10-byte header; Decode then looks
// up the frame's type number in Registry and hands the body to the chosen
// Message's Decode method.
type Message interface {
	MessageID() uint16
	Decode(d *llrp.Decoder) error
	Encode() []byte
}

// Registry maps an envelope message type number to a constructor for the
// Go type that decodes it. It covers the request/response surface this
// package implements; type numbers outside it (vendor CUSTOM_MESSAGE,
// and the capability/config parameter's sibling message types this repo
// doesn't model) are reported as unknown by Lookup.
var Registry = map[uint16]func() Message{
	1:   func() Message { return &GetReaderCapabilities{} },
	11:  func() Message { return &GetReaderCapabilitiesResponse{} },
	2:   func() Message { return &GetReaderConfig{} },
	12:  func() Message { return &GetReaderConfigResponse{} },
	3:   func() Message { return &SetReaderConfig{} },
	13:  func() Message { return &SetReaderConfigResponse{} },
	14:  func() Message { return &CloseConnection{} },
	4:   func() Message { return &CloseConnectionResponse{} },
	20:  func() Message { return &AddRoSpec{} },
	30:  func() Message { return &AddRoSpecResponse{} },
	21:  func() Message { return &DeleteRoSpec{} },
	31:  func() Message { return &DeleteRoSpecResponse{} },
	22:  func() Message { return &StartRoSpec{} },
	32:  func() Message { return &StartRoSpecResponse{} },
	23:  func() Message { return &StopRoSpec{} },
	33:  func() Message { return &StopRoSpecResponse{} },
	24:  func() Message { return &EnableRoSpec{} },
	34:  func() Message { return &EnableRoSpecResponse{} },
	25:  func() Message { return &DisableRoSpec{} },
	35:  func() Message { return &DisableRoSpecResponse{} },
	26:  func() Message { return &GetRoSpecs{} },
	36:  func() Message { return &GetRoSpecsResponse{} },
	40:  func() Message { return &AddAccessSpec{} },
	50:  func() Message { return &AddAccessSpecResponse{} },
	41:  func() Message { return &DeleteAccessSpec{} },
	51:  func() Message { return &DeleteAccessSpecResponse{} },
	42:  func() Message { return &EnableAccessSpec{} },
	52:  func() Message { return &EnableAccessSpecResponse{} },
	43:  func() Message { return &DisableAccessSpec{} },
	53:  func() Message { return &DisableAccessSpecResponse{} },
	44:  func() Message { return &GetAccessSpecs{} },
	54:  func() Message { return &GetAccessSpecsResponse{} },
	60:  func() Message { return &GetReport{} },
	61:  func() Message { return &RoAccessReport{} },
	62:  func() Message { return &KeepAlive{} },
	72:  func() Message { return &KeepAliveAck{} },
	63:  func() Message { return &ReaderEventNotification{} },
	64:  func() Message { return &EnableEventsAndReports{} },
	100: func() Message { return &ErrorMessage{} },
}

// Lookup returns a fresh, zero-valued Message for typeNum, ready for
// Decode. The second return is false when typeNum isn't in Registry.
func Lookup(typeNum uint16) (Message, bool) {
	ctor, ok := Registry[typeNum]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// Decode looks up typeNum in Registry and decodes d's remaining bytes
// into the resulting Message, then checks via d.EndMessage that the body
// was fully consumed. It returns llrp.KindUnknownMessageID if typeNum
// isn't registered.
func Decode(typeNum uint16, d *llrp.Decoder) (Message, error) {
	msg, ok := Lookup(typeNum)
	if !ok {
		return nil, &llrp.Error{Kind: llrp.KindUnknownMessageID, MessageID: typeNum}
	}
	if err := msg.Decode(d); err != nil {
		return nil, err
	}
	if err := d.EndMessage(); err != nil {
		return nil, err
	}
	return msg, nil
}
