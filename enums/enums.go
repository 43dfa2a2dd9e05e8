// Package enums holds the generated enumeration types a schema's
// <field enumeration="..."/> attribute declares (spec.md §4.6's Enum
// encoding kind). Written by hand as one run of the generator over the
// LLRP core definition file would produce it; see DESIGN.md's C12 entry.
package enums

// StatusCode is a generated enumeration over an underlying uint16.
type StatusCode uint16

const (
	StatusCodeM_Success                    StatusCode = 0
	StatusCodeM_ParameterError             StatusCode = 100
	StatusCodeM_FieldError                 StatusCode = 101
	StatusCodeM_UnexpectedParameter        StatusCode = 102
	StatusCodeM_MissingParameter           StatusCode = 103
	StatusCodeM_DuplicateParameter         StatusCode = 104
	StatusCodeM_OverflowParameter          StatusCode = 105
	StatusCodeM_OverflowField              StatusCode = 106
	StatusCodeM_UnknownParameter           StatusCode = 107
	StatusCodeM_UnknownField               StatusCode = 108
	StatusCodeM_UnsupportedMessage         StatusCode = 109
	StatusCodeM_UnsupportedVersion         StatusCode = 110
	StatusCodeM_UnsupportedParameter       StatusCode = 111
	StatusCodeP_ParameterError             StatusCode = 200
	StatusCodeP_FieldError                 StatusCode = 201
	StatusCodeP_UnexpectedParameter        StatusCode = 202
	StatusCodeP_MissingParameter           StatusCode = 203
	StatusCodeP_DuplicateParameter         StatusCode = 204
	StatusCodeP_OverflowParameter          StatusCode = 205
	StatusCodeP_OverflowField              StatusCode = 206
	StatusCodeP_UnknownParameter           StatusCode = 207
	StatusCodeP_UnknownField               StatusCode = 208
	StatusCodeP_UnsupportedParameter       StatusCode = 209
	StatusCodeA_Invalid                    StatusCode = 300
	StatusCodeA_OutOfRange                 StatusCode = 301
	StatusCodeR_DeviceError                StatusCode = 401
)

// StatusCodeFromValue maps a raw wire value to its StatusCode variant,
// failing if v names no known variant (spec.md's KindInvalidVariant).
func StatusCodeFromValue(v uint32) (StatusCode, bool) {
	switch StatusCode(v) {
	case StatusCodeM_Success:
		return StatusCodeM_Success, true
	case StatusCodeM_ParameterError:
		return StatusCodeM_ParameterError, true
	case StatusCodeM_FieldError:
		return StatusCodeM_FieldError, true
	case StatusCodeM_UnexpectedParameter:
		return StatusCodeM_UnexpectedParameter, true
	case StatusCodeM_MissingParameter:
		return StatusCodeM_MissingParameter, true
	case StatusCodeM_DuplicateParameter:
		return StatusCodeM_DuplicateParameter, true
	case StatusCodeM_OverflowParameter:
		return StatusCodeM_OverflowParameter, true
	case StatusCodeM_OverflowField:
		return StatusCodeM_OverflowField, true
	case StatusCodeM_UnknownParameter:
		return StatusCodeM_UnknownParameter, true
	case StatusCodeM_UnknownField:
		return StatusCodeM_UnknownField, true
	case StatusCodeM_UnsupportedMessage:
		return StatusCodeM_UnsupportedMessage, true
	case StatusCodeM_UnsupportedVersion:
		return StatusCodeM_UnsupportedVersion, true
	case StatusCodeM_UnsupportedParameter:
		return StatusCodeM_UnsupportedParameter, true
	case StatusCodeP_ParameterError:
		return StatusCodeP_ParameterError, true
	case StatusCodeP_FieldError:
		return StatusCodeP_FieldError, true
	case StatusCodeP_UnexpectedParameter:
		return StatusCodeP_UnexpectedParameter, true
	case StatusCodeP_MissingParameter:
		return StatusCodeP_MissingParameter, true
	case StatusCodeP_DuplicateParameter:
		return StatusCodeP_DuplicateParameter, true
	case StatusCodeP_OverflowParameter:
		return StatusCodeP_OverflowParameter, true
	case StatusCodeP_OverflowField:
		return StatusCodeP_OverflowField, true
	case StatusCodeP_UnknownParameter:
		return StatusCodeP_UnknownParameter, true
	case StatusCodeP_UnknownField:
		return StatusCodeP_UnknownField, true
	case StatusCodeP_UnsupportedParameter:
		return StatusCodeP_UnsupportedParameter, true
	case StatusCodeA_Invalid:
		return StatusCodeA_Invalid, true
	case StatusCodeA_OutOfRange:
		return StatusCodeA_OutOfRange, true
	case StatusCodeR_DeviceError:
		return StatusCodeR_DeviceError, true
	}
	return 0, false
}

// StatusCodeToValue returns v's underlying wire value.
func StatusCodeToValue(v StatusCode) uint32 { return uint32(v) }

// AirProtocol is a generated enumeration over an underlying uint16.
type AirProtocol uint16

const (
	AirProtocolUnspecified          AirProtocol = 0
	AirProtocolEPCGlobalClass1Gen2  AirProtocol = 1
)

// AirProtocolFromValue maps a raw wire value to its AirProtocol variant,
// failing if v names no known variant (spec.md's KindInvalidVariant).
func AirProtocolFromValue(v uint32) (AirProtocol, bool) {
	switch AirProtocol(v) {
	case AirProtocolUnspecified:
		return AirProtocolUnspecified, true
	case AirProtocolEPCGlobalClass1Gen2:
		return AirProtocolEPCGlobalClass1Gen2, true
	}
	return 0, false
}

// AirProtocolToValue returns v's underlying wire value.
func AirProtocolToValue(v AirProtocol) uint32 { return uint32(v) }

// ReaderCapabilitiesRequestedData is a generated enumeration over an
// underlying uint16.
type ReaderCapabilitiesRequestedData uint16

const (
	ReaderCapabilitiesRequestedDataAll                       ReaderCapabilitiesRequestedData = 0
	ReaderCapabilitiesRequestedDataGeneralDeviceCapabilities ReaderCapabilitiesRequestedData = 1
	ReaderCapabilitiesRequestedDataLLRPCapabilities          ReaderCapabilitiesRequestedData = 2
	ReaderCapabilitiesRequestedDataRegulatoryCapabilities    ReaderCapabilitiesRequestedData = 3
	ReaderCapabilitiesRequestedDataAirProtocolLLRPCapabilities ReaderCapabilitiesRequestedData = 4
)

// ReaderCapabilitiesRequestedDataFromValue maps a raw wire value to its
// ReaderCapabilitiesRequestedData variant, failing if v names no known
// variant (spec.md's KindInvalidVariant).
func ReaderCapabilitiesRequestedDataFromValue(v uint32) (ReaderCapabilitiesRequestedData, bool) {
	switch ReaderCapabilitiesRequestedData(v) {
	case ReaderCapabilitiesRequestedDataAll:
		return ReaderCapabilitiesRequestedDataAll, true
	case ReaderCapabilitiesRequestedDataGeneralDeviceCapabilities:
		return ReaderCapabilitiesRequestedDataGeneralDeviceCapabilities, true
	case ReaderCapabilitiesRequestedDataLLRPCapabilities:
		return ReaderCapabilitiesRequestedDataLLRPCapabilities, true
	case ReaderCapabilitiesRequestedDataRegulatoryCapabilities:
		return ReaderCapabilitiesRequestedDataRegulatoryCapabilities, true
	case ReaderCapabilitiesRequestedDataAirProtocolLLRPCapabilities:
		return ReaderCapabilitiesRequestedDataAirProtocolLLRPCapabilities, true
	}
	return 0, false
}

// ReaderCapabilitiesRequestedDataToValue returns v's underlying wire value.
func ReaderCapabilitiesRequestedDataToValue(v ReaderCapabilitiesRequestedData) uint32 {
	return uint32(v)
}

// ConfigRequestedData is a generated enumeration over an underlying uint16.
type ConfigRequestedData uint16

const (
	ConfigRequestedDataAll                         ConfigRequestedData = 0
	ConfigRequestedDataIdentification               ConfigRequestedData = 1
	ConfigRequestedDataAntennaProperties             ConfigRequestedData = 2
	ConfigRequestedDataAntennaConfiguration          ConfigRequestedData = 3
	ConfigRequestedDataRoReportSpec                  ConfigRequestedData = 4
	ConfigRequestedDataReaderEventNotificationSpec   ConfigRequestedData = 5
	ConfigRequestedDataAccessReportSpec              ConfigRequestedData = 6
	ConfigRequestedDataLLRPConfigurationStateValue   ConfigRequestedData = 7
	ConfigRequestedDataKeepAliveSpec                 ConfigRequestedData = 8
	ConfigRequestedDataGpoWriteData                  ConfigRequestedData = 9
	ConfigRequestedDataGpiPortCurrentState           ConfigRequestedData = 10
	ConfigRequestedDataEventsAndReports              ConfigRequestedData = 11
)

// ConfigRequestedDataFromValue maps a raw wire value to its
// ConfigRequestedData variant, failing if v names no known variant
// (spec.md's KindInvalidVariant).
func ConfigRequestedDataFromValue(v uint32) (ConfigRequestedData, bool) {
	switch ConfigRequestedData(v) {
	case ConfigRequestedDataAll:
		return ConfigRequestedDataAll, true
	case ConfigRequestedDataIdentification:
		return ConfigRequestedDataIdentification, true
	case ConfigRequestedDataAntennaProperties:
		return ConfigRequestedDataAntennaProperties, true
	case ConfigRequestedDataAntennaConfiguration:
		return ConfigRequestedDataAntennaConfiguration, true
	case ConfigRequestedDataRoReportSpec:
		return ConfigRequestedDataRoReportSpec, true
	case ConfigRequestedDataReaderEventNotificationSpec:
		return ConfigRequestedDataReaderEventNotificationSpec, true
	case ConfigRequestedDataAccessReportSpec:
		return ConfigRequestedDataAccessReportSpec, true
	case ConfigRequestedDataLLRPConfigurationStateValue:
		return ConfigRequestedDataLLRPConfigurationStateValue, true
	case ConfigRequestedDataKeepAliveSpec:
		return ConfigRequestedDataKeepAliveSpec, true
	case ConfigRequestedDataGpoWriteData:
		return ConfigRequestedDataGpoWriteData, true
	case ConfigRequestedDataGpiPortCurrentState:
		return ConfigRequestedDataGpiPortCurrentState, true
	case ConfigRequestedDataEventsAndReports:
		return ConfigRequestedDataEventsAndReports, true
	}
	return 0, false
}

// ConfigRequestedDataToValue returns v's underlying wire value.
func ConfigRequestedDataToValue(v ConfigRequestedData) uint32 { return uint32(v) }
