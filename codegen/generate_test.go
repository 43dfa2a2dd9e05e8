package codegen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/llrp-go/llrp/ir"
)

func TestGenerateProducesExpectedFileSet(t *testing.T) {
	defs := []ir.Definition{
		{
			Kind: ir.DefEnum,
			Name: "StatusCode",
			Variants: []ir.EnumVariant{
				{GoName: "MSuccess", Value: 0},
				{GoName: "RDeviceError", Value: 401},
			},
		},
		{
			Kind: ir.DefTvParameter,
			ID:   6,
			Name: "PeakRSSI",
			Fields: []ir.Field{
				{GoName: "PeakRSSI", GoType: "uint8", Container: ir.ContainerRaw, Encoding: ir.Encoding{Kind: ir.EncodingManual}},
			},
		},
		{
			Kind: ir.DefParameter,
			ID:   287,
			Name: "LLRPStatus",
			Fields: []ir.Field{
				{GoName: "Status", GoType: "StatusCode", Container: ir.ContainerRaw, Encoding: ir.Encoding{Kind: ir.EncodingEnum, Inner: &ir.Field{GoType: "uint16"}}},
			},
		},
		{
			Kind: ir.DefMessage,
			ID:   30,
			Name: "AddRoSpecResponse",
			Fields: []ir.Field{
				{GoName: "Status", GoType: "LLRPStatus", Container: ir.ContainerRaw, Encoding: ir.Encoding{Kind: ir.EncodingTlvParameter}},
			},
		},
	}

	out, err := Generate(defs, "github.com/llrp-go/llrp/generated")
	require.NoError(t, err)

	for _, name := range []string{"enums/enums.go", "parameters/parameters.go", "messages/messages.go", "messages/dispatch.go"} {
		require.Contains(t, out, name, "missing generated file")
	}

	enums := string(out["enums/enums.go"])
	require.Contains(t, enums, "type StatusCode uint16")
	require.NotContains(t, enums, `"github.com/llrp-go/llrp"`, "enums.go must not import the codec runtime")

	params := string(out["parameters/parameters.go"])
	require.Contains(t, params, "type PeakRSSI uint8")
	require.Contains(t, params, "func (v *LLRPStatus) DecodeTLV")

	msgs := string(out["messages/messages.go"])
	require.Contains(t, msgs, "func (v *AddRoSpecResponse) MessageID() uint16 { return 30 }")
	require.Contains(t, msgs, `"github.com/llrp-go/llrp/generated/parameters"`)

	dispatch := string(out["messages/dispatch.go"])
	require.Contains(t, dispatch, "case 30:")
	require.Contains(t, dispatch, "KindUnknownMessageID")
}

func TestGenerateEnumOnlyOmitsParameterAndMessageImports(t *testing.T) {
	defs := []ir.Definition{
		{Kind: ir.DefEnum, Name: "AirProtocol", Variants: []ir.EnumVariant{{GoName: "Unspecified", Value: 0}}},
	}
	out, err := Generate(defs, "github.com/llrp-go/llrp/generated")
	require.NoError(t, err)
	params := string(out["parameters/parameters.go"])
	require.NotContains(t, params, "import", "parameters.go with no parameters should have no imports")
}

func TestScalarAliasRejectsMultiFieldParameter(t *testing.T) {
	d := ir.Definition{
		Kind: ir.DefTvParameter,
		ID:   9,
		Name: "TwoFields",
		Fields: []ir.Field{
			{GoName: "A", GoType: "uint8", Container: ir.ContainerRaw, Encoding: ir.Encoding{Kind: ir.EncodingManual}},
			{GoName: "B", GoType: "uint8", Container: ir.ContainerRaw, Encoding: ir.Encoding{Kind: ir.EncodingManual}},
		},
	}
	_, ok := scalarAlias(d)
	require.False(t, ok, "scalarAlias should reject a two-field parameter")
}

func TestScalarAliasRejectsPointerContainer(t *testing.T) {
	d := ir.Definition{
		Kind: ir.DefTvParameter,
		ID:   9,
		Name: "OneOptionalField",
		Fields: []ir.Field{
			{GoName: "A", GoType: "uint8", Container: ir.ContainerPointer, Encoding: ir.Encoding{Kind: ir.EncodingManual}},
		},
	}
	_, ok := scalarAlias(d)
	require.False(t, ok, "scalarAlias should reject a pointer-container field")
}

// A single-bit (u1) field normalizes to GoType "bool", which does not
// satisfy constraints.Integer; DecodeBits/EncodeBits must always be
// instantiated with uint8 for these fields, converting to/from bool
// around the call.
func TestGenerateSingleBitFieldAvoidsBoolBitsInstantiation(t *testing.T) {
	defs := []ir.Definition{
		{
			Kind: ir.DefParameter,
			ID:   207,
			Name: "AccessSpec",
			Fields: []ir.Field{
				{GoName: "CurrentState", GoType: "bool", Container: ir.ContainerRaw, Encoding: ir.Encoding{Kind: ir.EncodingRawBits, NumBits: 1}},
				{Reserved: true, GoType: "bool", Container: ir.ContainerRaw, Encoding: ir.Encoding{Kind: ir.EncodingRawBits, NumBits: 1}},
			},
		},
		{
			Kind: ir.DefTvParameter,
			ID:   9,
			Name: "SingleFlag",
			Fields: []ir.Field{
				{GoName: "SingleFlag", GoType: "bool", Container: ir.ContainerRaw, Encoding: ir.Encoding{Kind: ir.EncodingRawBits, NumBits: 1}},
			},
		},
	}

	out, err := Generate(defs, "github.com/llrp-go/llrp/generated")
	require.NoError(t, err)

	params := string(out["parameters/parameters.go"])
	require.NotContains(t, params, "DecodeBits[bool]")
	require.NotContains(t, params, "EncodeBits[bool]")
	require.Contains(t, params, "DecodeBits[uint8](d, 1)")
}
