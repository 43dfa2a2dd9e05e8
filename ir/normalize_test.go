package ir

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/llrp-go/llrp/schema"
)

func parse(t *testing.T, doc string) []Definition {
	t.Helper()
	d, err := schema.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	defs, err := Normalize(d)
	require.NoError(t, err)
	return defs
}

func TestNormalizeTvParameterRecognisedByReference(t *testing.T) {
	const doc = `<?xml version="1.0"?>
<llrpdef>
  <parameterDefinition name="AntennaID" typeNum="1">
    <field type="u16" name="AntennaID"/>
  </parameterDefinition>
  <parameterDefinition name="TagReportData" typeNum="240">
    <parameter type="AntennaID" repeat="0-1"/>
  </parameterDefinition>
</llrpdef>`

	defs := parse(t, doc)
	require.Len(t, defs, 2)
	require.Equal(t, DefTvParameter, defs[0].Kind)
	require.EqualValues(t, 1, defs[0].ID)

	trd := defs[1]
	require.Equal(t, DefParameter, trd.Kind)
	require.Equal(t, "TagReportData", trd.Name)
	require.Len(t, trd.Fields, 1)

	f := trd.Fields[0]
	require.Equal(t, EncodingTvParameter, f.Encoding.Kind)
	require.EqualValues(t, 1, f.Encoding.TvID)
	require.Equal(t, ContainerPointer, f.Container, "repeat=0-1 should collapse to ContainerPointer")
}

func TestNormalizeRecursiveParameterUsesPointer(t *testing.T) {
	const doc = `<?xml version="1.0"?>
<llrpdef>
  <parameterDefinition name="ParameterError" typeNum="289">
    <field type="u16" name="ParameterType"/>
    <parameter type="ParameterError" repeat="1"/>
  </parameterDefinition>
</llrpdef>`

	defs := parse(t, doc)
	require.Len(t, defs, 1)
	fields := defs[0].Fields
	require.Len(t, fields, 2)
	self := fields[1]
	require.Equal(t, ContainerPointer, self.Container, "self-referential field at repeat=1 should still collapse to ContainerPointer")
}

func TestNormalizeEnumFieldSelectsRawOrSliceContainer(t *testing.T) {
	const doc = `<?xml version="1.0"?>
<llrpdef>
  <parameterDefinition name="LLRPStatus" typeNum="287">
    <field type="u16" name="StatusCode" enumeration="StatusCode"/>
  </parameterDefinition>
  <enumerationDefinition name="StatusCode">
    <entry value="0" name="M_Success"/>
  </enumerationDefinition>
</llrpdef>`

	defs := parse(t, doc)
	status := defs[0]
	require.Len(t, status.Fields, 1)
	f := status.Fields[0]
	require.Equal(t, "StatusCode", f.GoName, "a field name with no identOverrides entry keeps its schema spelling")
	require.Equal(t, EncodingEnum, f.Encoding.Kind)
	require.Equal(t, "StatusCode", f.GoType)
	require.Equal(t, ContainerRaw, f.Container, "non-array enum field should be ContainerRaw")
}

func TestNormalizeReservedFieldHasNoGoName(t *testing.T) {
	const doc = `<?xml version="1.0"?>
<llrpdef>
  <parameterDefinition name="C1G2SingulationControl" typeNum="336">
    <field type="u8" name="Session"/>
    <reserved bitCount="4"/>
  </parameterDefinition>
</llrpdef>`

	defs := parse(t, doc)
	fields := defs[0].Fields
	require.Len(t, fields, 2)
	r := fields[1]
	require.True(t, r.Reserved)
	require.Empty(t, r.GoName)
	require.Equal(t, EncodingRawBits, r.Encoding.Kind)
	require.EqualValues(t, 4, r.Encoding.NumBits)
}

func TestNormalizeMessageNameExportedFromScreamingSnakeCase(t *testing.T) {
	const doc = `<?xml version="1.0"?>
<llrpdef>
  <messageDefinition name="ADD_ROSPEC" typeNum="20">
  </messageDefinition>
</llrpdef>`

	defs := parse(t, doc)
	require.Equal(t, "AddRospec", defs[0].Name)
	require.EqualValues(t, 20, defs[0].ID)
}

func TestNormalizeRepeatNToSlice(t *testing.T) {
	const doc = `<?xml version="1.0"?>
<llrpdef>
  <parameterDefinition name="AntennaID" typeNum="1">
    <field type="u16" name="AntennaID"/>
  </parameterDefinition>
  <parameterDefinition name="RoAccessReport" typeNum="61">
    <parameter type="AntennaID" repeat="0-N"/>
  </parameterDefinition>
</llrpdef>`

	defs := parse(t, doc)
	f := defs[1].Fields[0]
	require.Equal(t, ContainerSlice, f.Container, "repeat=0-N should collapse to ContainerSlice")
}

func TestNormalizeUnrecognisedFieldElementErrors(t *testing.T) {
	const doc = `<?xml version="1.0"?>
<llrpdef>
  <parameterDefinition name="Bad" typeNum="900">
    <bogus/>
  </parameterDefinition>
</llrpdef>`

	d, err := schema.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	_, err = Normalize(d)
	require.Error(t, err)
}
