// Package ir turns parsed schema.Doc definitions into the normalised
// model package codegen emits from: TV parameters discovered ahead of
// regular fields, field identifiers resolved to exported Go names, and
// field types resolved to their Go realisation, mirroring the original
// generator's repr.rs (parse_definitions/type_of/field_ident/map_field)
// field-for-field, adapted to Go's pointer-collapsed container model.
package ir

// DefKind discriminates the five shapes a top-level definition can take.
type DefKind int

const (
	DefMessage DefKind = iota
	DefParameter
	DefTvParameter
	DefEnum
	DefChoice
)

// Definition is one top-level schema entity: a message, a TLV or TV
// parameter, an enumeration, or a choice (tagged union of parameters).
type Definition struct {
	Kind DefKind

	// ID is the message/parameter type number (TLV: 128-1023, messages:
	// schema-defined, TV: 1-127).
	ID uint16

	Name string

	// Fields holds the field list for Message, Parameter, TvParameter and
	// Choice definitions.
	Fields []Field

	// Variants holds the enumeration's (value, name) pairs for Enum
	// definitions.
	Variants []EnumVariant
}

// Container describes how a field's base type is wrapped. Go collapses
// the original's Raw/Box/Option/OptionBox/Vec five-way split to three
// cases: Go pointers are already nilable and heap-indirectable, so Box,
// Option and OptionBox all realise as Pointer.
type Container int

const (
	ContainerRaw Container = iota
	ContainerPointer
	ContainerSlice
)

// EncodingKind classifies how a field's bytes are laid out on the wire.
type EncodingKind int

const (
	// EncodingRawBits is a fixed-width sub-byte or byte-aligned integer
	// packed MSB-first (u1..u15).
	EncodingRawBits EncodingKind = iota

	// EncodingTlvParameter is a nested TLV-shaped parameter.
	EncodingTlvParameter

	// EncodingTvParameter is a nested TV-shaped parameter; TvID carries
	// its 7-bit type number.
	EncodingTvParameter

	// EncodingArrayOfT is a u16-count-prefixed array of Inner-encoded
	// elements (u8v/u16v/u32v/u64v/bytesToEnd).
	EncodingArrayOfT

	// EncodingEnum is Inner's encoding, read then mapped through an
	// enumeration's value table.
	EncodingEnum

	// EncodingManual is one of the primitive types with a concrete typed
	// Decoder/Encoder method (u8/u16/u32/u64/s8../u96/u1v/utf8v).
	EncodingManual
)

// Encoding is a field's wire-layout descriptor.
type Encoding struct {
	Kind EncodingKind

	// NumBits applies to EncodingRawBits.
	NumBits int

	// TvID applies to EncodingTvParameter.
	TvID uint8

	// Inner applies to EncodingArrayOfT and EncodingEnum.
	Inner *Field
}

// Field is one field of a message, parameter or choice definition.
type Field struct {
	// GoName is the field's exported Go identifier ("" for reserved
	// fields, which codegen emits as inline skipped bits rather than a
	// stored struct field).
	GoName string

	// GoType is the field's base Go type, unwrapped from Container (e.g.
	// "uint16", "string", "ParameterError", "llrp.BitArray").
	GoType string

	Container Container
	Encoding  Encoding

	// Reserved marks a schema <reserved bitCount="N"/> field: its bits
	// are consumed/emitted but never stored.
	Reserved bool
}

// EnumVariant is one (name, value) pair of an enumeration definition.
type EnumVariant struct {
	GoName string
	Value  uint16
}
