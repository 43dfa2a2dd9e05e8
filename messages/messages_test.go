package messages

import (
	"testing"

	"github.com/llrp-go/llrp"
	"github.com/llrp-go/llrp/enums"
	"github.com/llrp-go/llrp/parameters"
)

func roundTrip(t *testing.T, m Message) []byte {
	t.Helper()
	body := m.Encode()
	d := llrp.NewDecoder(body, llrp.DecodeOptions{Strict: true})
	if err := m.Decode(d); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return body
}

func TestReaderEventNotificationRoundTrip(t *testing.T) {
	want := ReaderEventNotification{
		ReaderEventNotificationData: parameters.ReaderEventNotificationData{
			Timestamp: parameters.UTCTimestamp{Microseconds: 1234567890},
			ConnectionAttempt: &parameters.ConnectionEventAttempt{
				Status: enums.StatusCodeM_Success,
			},
		},
	}
	body := want.Encode()

	var got ReaderEventNotification
	d := llrp.NewDecoder(body, llrp.DecodeOptions{Strict: true})
	if err := got.Decode(d); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if d.Remaining() != 0 {
		t.Fatalf("Remaining = %d, want 0", d.Remaining())
	}
	if got.ReaderEventNotificationData.Timestamp.Microseconds != 1234567890 {
		t.Fatalf("Timestamp = %+v", got.ReaderEventNotificationData.Timestamp)
	}
	if got.ReaderEventNotificationData.ConnectionAttempt == nil || got.ReaderEventNotificationData.ConnectionAttempt.Status != enums.StatusCodeM_Success {
		t.Fatalf("ConnectionAttempt = %+v", got.ReaderEventNotificationData.ConnectionAttempt)
	}
	if got.MessageID() != 63 {
		t.Fatalf("MessageID = %d, want 63", got.MessageID())
	}
}

func TestDeleteAccessSpecResponseRoundTrip(t *testing.T) {
	want := DeleteAccessSpecResponse{
		Status: parameters.LLRPStatus{
			StatusCode:       enums.StatusCodeM_MissingParameter,
			ErrorDescription: "no such access spec",
			FieldError: &parameters.FieldError{
				FieldNum:  2,
				ErrorCode: enums.StatusCodeM_MissingParameter,
			},
		},
	}
	body := want.Encode()

	var got DeleteAccessSpecResponse
	d := llrp.NewDecoder(body, llrp.DecodeOptions{Strict: true})
	if err := got.Decode(d); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if d.Remaining() != 0 {
		t.Fatalf("Remaining = %d, want 0", d.Remaining())
	}
	if got.Status.StatusCode != enums.StatusCodeM_MissingParameter {
		t.Fatalf("StatusCode = %v", got.Status.StatusCode)
	}
	if got.Status.ErrorDescription != "no such access spec" {
		t.Fatalf("ErrorDescription = %q", got.Status.ErrorDescription)
	}
	if got.Status.FieldError == nil || got.Status.FieldError.FieldNum != 2 {
		t.Fatalf("FieldError = %+v", got.Status.FieldError)
	}
	if got.MessageID() != 51 {
		t.Fatalf("MessageID = %d, want 51", got.MessageID())
	}
}

func buildRoSpec() parameters.RoSpec {
	return parameters.RoSpec{
		ID:           1,
		Priority:     0,
		CurrentState: 0,
		BoundarySpec: parameters.RoBoundarySpec{
			StartTrigger: parameters.RoSpecStartTrigger{
				TriggerType: 1,
				PeriodicTriggerValue: &parameters.PeriodicTriggerValue{
					Offset: 0,
					Period: 1000,
					UTCTime: &parameters.UTCTimestamp{
						Microseconds: 42,
					},
				},
			},
			StopTrigger: parameters.RoSpecStopTrigger{
				TriggerType:          1,
				DurationTriggerValue: 5000,
			},
		},
		SpecList: []parameters.AiSpec{
			{
				AntennaIDs: []uint16{1, 2},
				StopTrigger: parameters.AiSpecStopTrigger{
					TriggerType:          0,
					DurationTriggerValue: 3000,
				},
				InventorySpec: []parameters.InventorySpec{
					{
						SpecID:     1,
						ProtocolID: enums.AirProtocolEPCGlobalClass1Gen2,
						AntennaConfiguration: []parameters.AntennaConfiguration{
							{
								AntennaID: 1,
								InventoryCommand: []parameters.C1G2InventoryCommand{
									{
										TagInventoryStateAware: true,
										RFControl: &parameters.C1G2RfControl{
											ModeIndex: 0,
											Tari:      0,
										},
										SingulationControl: &parameters.C1G2SingulationControl{
											Session:        0,
											TagPopulation:  4,
											TagTransitTime: 0,
										},
									},
								},
							},
						},
					},
				},
			},
		},
		ReportSpec: &parameters.RoReportSpec{},
	}
}

func TestAddRoSpecRoundTrip(t *testing.T) {
	want := AddRoSpec{RoSpec: buildRoSpec()}
	body := want.Encode()

	var got AddRoSpec
	d := llrp.NewDecoder(body, llrp.DecodeOptions{Strict: true})
	if err := got.Decode(d); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if d.Remaining() != 0 {
		t.Fatalf("Remaining = %d, want 0", d.Remaining())
	}

	rs := got.RoSpec
	if rs.ID != 1 {
		t.Fatalf("ID = %d, want 1", rs.ID)
	}
	if rs.BoundarySpec.StartTrigger.PeriodicTriggerValue == nil || rs.BoundarySpec.StartTrigger.PeriodicTriggerValue.Period != 1000 {
		t.Fatalf("PeriodicTriggerValue = %+v", rs.BoundarySpec.StartTrigger.PeriodicTriggerValue)
	}
	if len(rs.SpecList) != 1 {
		t.Fatalf("got %d AiSpecs, want 1", len(rs.SpecList))
	}
	ai := rs.SpecList[0]
	if len(ai.AntennaIDs) != 2 || ai.AntennaIDs[0] != 1 || ai.AntennaIDs[1] != 2 {
		t.Fatalf("AntennaIDs = %v", ai.AntennaIDs)
	}
	if len(ai.InventorySpec) != 1 || len(ai.InventorySpec[0].AntennaConfiguration) != 1 {
		t.Fatalf("InventorySpec = %+v", ai.InventorySpec)
	}
	ic := ai.InventorySpec[0].AntennaConfiguration[0].InventoryCommand
	if len(ic) != 1 || !ic[0].TagInventoryStateAware {
		t.Fatalf("InventoryCommand = %+v", ic)
	}
	if ic[0].SingulationControl == nil || ic[0].SingulationControl.TagPopulation != 4 {
		t.Fatalf("SingulationControl = %+v", ic[0].SingulationControl)
	}
	if rs.ReportSpec == nil {
		t.Fatalf("ReportSpec = nil, want non-nil")
	}
}

func buildAccessSpec() parameters.AccessSpec {
	return parameters.AccessSpec{
		ID:           7,
		AntennaID:    1,
		ProtocolID:   1,
		CurrentState: true,
		ROSpecID:     1,
		StopTrigger: parameters.AccessSpecStopTrigger{
			TriggerType:    1,
			OperationCount: 10,
		},
		Command: parameters.AccessCommand{
			TagSpec: parameters.C1G2TagSpec{
				TagPattern1: parameters.C1G2TargetTag{
					MemoryBankAndMatch: 0b1000_0000,
					Pointer:            32,
					TagMask:            llrp.BitArray{NumBits: 0},
					TagData:            llrp.BitArray{NumBits: 16, Data: []byte{0xAB, 0xCD}},
				},
			},
			OpSpec: []parameters.OpSpec{
				{
					Read: &parameters.C1G2Read{
						OpSpecID:       1,
						AccessPassword: 0,
						MemoryBank:     1,
						WordPtr:        0,
						WordCount:      4,
					},
				},
				{
					BlockWrite: &parameters.C1G2BlockWrite{
						OpSpecID:       2,
						AccessPassword: 0,
						MemoryBank:     3,
						WordPtr:        0,
						WriteData:      []uint16{0x1111, 0x2222},
					},
				},
			},
		},
		ReportSpec: &parameters.AccessReportSpec{Trigger: 1},
	}
}

func TestAddAccessSpecRoundTrip(t *testing.T) {
	want := AddAccessSpec{AccessSpec: buildAccessSpec()}
	body := want.Encode()

	var got AddAccessSpec
	d := llrp.NewDecoder(body, llrp.DecodeOptions{Strict: true})
	if err := got.Decode(d); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if d.Remaining() != 0 {
		t.Fatalf("Remaining = %d, want 0", d.Remaining())
	}

	as := got.AccessSpec
	if as.ID != 7 || !as.CurrentState {
		t.Fatalf("AccessSpec = %+v", as)
	}
	if len(as.Command.OpSpec) != 2 {
		t.Fatalf("got %d OpSpecs, want 2", len(as.Command.OpSpec))
	}
	if as.Command.OpSpec[0].Read == nil || as.Command.OpSpec[0].Read.WordCount != 4 {
		t.Fatalf("OpSpec[0].Read = %+v", as.Command.OpSpec[0].Read)
	}
	if as.Command.OpSpec[1].BlockWrite == nil || len(as.Command.OpSpec[1].BlockWrite.WriteData) != 2 {
		t.Fatalf("OpSpec[1].BlockWrite = %+v", as.Command.OpSpec[1].BlockWrite)
	}
	if as.Command.TagSpec.TagPattern1.TagData.NumBits != 16 {
		t.Fatalf("TagData = %+v", as.Command.TagSpec.TagPattern1.TagData)
	}
	if as.ReportSpec == nil || as.ReportSpec.Trigger != 1 {
		t.Fatalf("ReportSpec = %+v", as.ReportSpec)
	}
}

func TestRoAccessReportRoundTrip(t *testing.T) {
	antennaID := parameters.AntennaID(1)
	peak := parameters.PeakRSSI(188)
	tagSeen := parameters.TagSeenCount(3)
	epc := parameters.EPC96{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	want := RoAccessReport{
		TagReportData: []parameters.TagReportData{
			{
				EpcData:   parameters.EpcDataParameter{Epc96: &epc},
				AntennaID: &antennaID,
				PeakRSSI:  &peak,
				TagSeenCount: &tagSeen,
				OpSpecResult: []parameters.OpSpecResult{
					{
						ReadResult: &parameters.C1G2ReadOpSpecResult{
							Result:   0,
							OpSpecID: 1,
							ReadData: []uint16{0x1234},
						},
					},
				},
			},
		},
	}
	body := want.Encode()

	var got RoAccessReport
	d := llrp.NewDecoder(body, llrp.DecodeOptions{Strict: true})
	if err := got.Decode(d); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if d.Remaining() != 0 {
		t.Fatalf("Remaining = %d, want 0", d.Remaining())
	}
	if len(got.TagReportData) != 1 {
		t.Fatalf("got %d TagReportData, want 1", len(got.TagReportData))
	}
	trd := got.TagReportData[0]
	if trd.EpcData.Epc96 == nil || *trd.EpcData.Epc96 != epc {
		t.Fatalf("EpcData = %+v", trd.EpcData)
	}
	if trd.PeakRSSI == nil || *trd.PeakRSSI != 188 {
		t.Fatalf("PeakRSSI = %v, want 188 (positive, not a negative int8)", trd.PeakRSSI)
	}
	if trd.TagSeenCount == nil || *trd.TagSeenCount != 3 {
		t.Fatalf("TagSeenCount = %v", trd.TagSeenCount)
	}
	if len(trd.OpSpecResult) != 1 || trd.OpSpecResult[0].ReadResult == nil {
		t.Fatalf("OpSpecResult = %+v", trd.OpSpecResult)
	}
	if trd.OpSpecResult[0].ReadResult.ReadData[0] != 0x1234 {
		t.Fatalf("ReadData = %v", trd.OpSpecResult[0].ReadResult.ReadData)
	}
}

func TestSetReaderConfigResetFlagRoundTrip(t *testing.T) {
	want := SetReaderConfig{ResetToFactoryDefault: true}
	body := roundTrip(t, &want)
	if len(body) != 1 {
		t.Fatalf("got %d bytes, want 1 (a single flag byte)", len(body))
	}

	var got SetReaderConfig
	d := llrp.NewDecoder(body, llrp.DecodeOptions{Strict: true})
	if err := got.Decode(d); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !got.ResetToFactoryDefault {
		t.Fatal("ResetToFactoryDefault = false, want true")
	}

	clear := SetReaderConfig{ResetToFactoryDefault: false}
	clearBody := clear.Encode()
	var gotClear SetReaderConfig
	d2 := llrp.NewDecoder(clearBody, llrp.DecodeOptions{Strict: true})
	if err := gotClear.Decode(d2); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if gotClear.ResetToFactoryDefault {
		t.Fatal("ResetToFactoryDefault = true, want false")
	}
}

func TestDispatchLookupAndUnknown(t *testing.T) {
	m, ok := Lookup(30)
	if !ok {
		t.Fatal("Lookup(30) not found")
	}
	if _, ok := m.(*AddRoSpecResponse); !ok {
		t.Fatalf("Lookup(30) = %T, want *AddRoSpecResponse", m)
	}

	if _, err := Decode(0xFFFF, llrp.NewDecoder(nil, llrp.DecodeOptions{Strict: true})); err == nil {
		t.Fatal("expected an error for an unregistered message ID")
	} else if lerr, ok := err.(*llrp.Error); !ok || lerr.Kind != llrp.KindUnknownMessageID {
		t.Fatalf("got %v, want KindUnknownMessageID", err)
	}
}
