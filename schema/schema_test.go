package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const doc = `<?xml version="1.0" encoding="UTF-8"?>
<llrpdef xmlns="http://www.llrp.org/ltk/schema/core/encoding/xml/1.0">
  <parameterDefinition name="AntennaID" typeNum="1">
    <field type="u16" name="AntennaID"/>
  </parameterDefinition>
  <parameterDefinition name="LLRPStatus" typeNum="287">
    <field type="StatusCode" name="StatusCode" enumeration="StatusCode"/>
    <field type="utf8v" name="ErrorDescription"/>
    <reserved bitCount="3"/>
  </parameterDefinition>
  <enumerationDefinition name="StatusCode">
    <entry value="0" name="M_Success"/>
    <entry value="401" name="R_DeviceError"/>
  </enumerationDefinition>
  <messageDefinition name="ADD_ROSPEC" typeNum="20">
    <parameter type="RoSpec" repeat="1"/>
  </messageDefinition>
</llrpdef>
`

func TestParseClassifiesTopLevelEntries(t *testing.T) {
	d, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, d.Definitions, 4)

	kinds := make([]string, len(d.Definitions))
	for i, e := range d.Definitions {
		kinds[i] = e.Kind()
	}
	require.Equal(t, []string{KindParameter, KindParameter, KindEnum, KindMessage}, kinds)
}

func TestParseParameterFields(t *testing.T) {
	d, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	status := d.Definitions[1]
	require.Equal(t, "LLRPStatus", status.Name)
	require.EqualValues(t, 287, status.TypeNum)
	require.Len(t, status.Fields, 3)
	require.Equal(t, "StatusCode", status.Fields[0].Enumeration)
	require.Equal(t, FieldReserved, status.Fields[2].XMLName.Local)
	require.EqualValues(t, 3, status.Fields[2].BitCount)
}

func TestParseEnumEntries(t *testing.T) {
	d, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	enum := d.Definitions[2]
	require.Len(t, enum.Entries, 2)
	require.EqualValues(t, 401, enum.Entries[1].Value)
	require.Equal(t, "R_DeviceError", enum.Entries[1].Name)
}

func TestParseInvalidXML(t *testing.T) {
	_, err := Parse(strings.NewReader("not xml"))
	require.Error(t, err)
}
