package ir

import (
	"fmt"
	"strings"

	"github.com/llrp-go/llrp/schema"
)

// recursiveTypes names parameter types that self-reference and must
// therefore decode through a pointer even at Repeat "1" (a plain value
// field of its own type would make the Go struct infinitely large).
// ParameterError is LLRP's one such type: a status parameter may nest
// another ParameterError describing a sub-field's error.
var recursiveTypes = map[string]bool{
	"ParameterError": true,
}

// identOverrides renames the handful of field names whose literal XML
// spelling reads awkwardly as a Go struct field, mirroring the original
// generator's field_ident table. Go field names otherwise need no
// snake_case conversion (XML field names are already suitable Go
// identifiers), unlike the Rust original.
var identOverrides = map[string]string{
	"LLRPStatus": "Status",
}

type tvParam struct {
	id     uint8
	goType string
}

// Normalize converts a parsed schema.Doc into the emitter's definition
// list. It runs the original generator's two passes: first it discovers
// every TV-ranged parameter (type number 1-127) so that regular field
// resolution can recognise a reference to one and choose the TV decode
// path; then it resolves every definition's fields in document order.
func Normalize(doc *schema.Doc) ([]Definition, error) {
	tvParams := map[string]tvParam{}
	for _, entry := range doc.Definitions {
		if entry.Kind() != schema.KindParameter {
			continue
		}
		if entry.TypeNum > 127 {
			continue
		}
		tvParams[entry.Name] = tvParam{id: uint8(entry.TypeNum), goType: entry.Name}
	}

	var defs []Definition

	for _, entry := range doc.Definitions {
		if entry.Kind() == schema.KindParameter && entry.TypeNum <= 127 {
			fields := entry.Fields
			if len(fields) > 0 && fields[0].XMLName.Local == schema.FieldAnnotation {
				fields = fields[1:]
			}
			parsed, err := parseFields(fields, tvParams)
			if err != nil {
				return nil, fmt.Errorf("ir: parameter %s: %w", entry.Name, err)
			}
			defs = append(defs, Definition{
				Kind:   DefTvParameter,
				ID:     entry.TypeNum,
				Name:   entry.Name,
				Fields: parsed,
			})
			continue
		}

		switch entry.Kind() {
		case schema.KindMessage:
			parsed, err := parseFields(entry.Fields, tvParams)
			if err != nil {
				return nil, fmt.Errorf("ir: message %s: %w", entry.Name, err)
			}
			defs = append(defs, Definition{
				Kind:   DefMessage,
				ID:     entry.TypeNum,
				Name:   toExportedWords(entry.Name),
				Fields: parsed,
			})

		case schema.KindParameter:
			if entry.TypeNum >= 2048 {
				return nil, fmt.Errorf("ir: parameter %s: type num %d out of range", entry.Name, entry.TypeNum)
			}
			parsed, err := parseFields(entry.Fields, tvParams)
			if err != nil {
				return nil, fmt.Errorf("ir: parameter %s: %w", entry.Name, err)
			}
			defs = append(defs, Definition{
				Kind:   DefParameter,
				ID:     entry.TypeNum,
				Name:   entry.Name,
				Fields: parsed,
			})

		case schema.KindEnum:
			variants := make([]EnumVariant, len(entry.Entries))
			for i, e := range entry.Entries {
				variants[i] = EnumVariant{GoName: exportName(e.Name), Value: e.Value}
			}
			defs = append(defs, Definition{Kind: DefEnum, Name: entry.Name, Variants: variants})

		case schema.KindChoice:
			parsed, err := parseFields(entry.Fields, tvParams)
			if err != nil {
				return nil, fmt.Errorf("ir: choice %s: %w", entry.Name, err)
			}
			defs = append(defs, Definition{Kind: DefChoice, Name: entry.Name, Fields: parsed})

		case schema.KindNamespace:
			// Namespace metadata carries no codegen-relevant content.
		}
	}

	return defs, nil
}

func parseFields(fields []schema.Field, tvParams map[string]tvParam) ([]Field, error) {
	var out []Field
	for _, f := range fields {
		switch f.XMLName.Local {
		case schema.FieldAnnotation:
			continue

		case schema.FieldChoice, schema.FieldParameter:
			repeat := f.Repeat
			if repeat == "" {
				repeat = "0-1"
			}
			out = append(out, mapField(f.Type, f.Type, repeat, tvParams))

		case schema.FieldField:
			if f.Enumeration != "" {
				inner := innerField(f.Type)
				var ty Container
				if inner.Encoding.Kind == EncodingArrayOfT {
					ty = ContainerSlice
				} else {
					ty = ContainerRaw
				}
				out = append(out, Field{
					GoName:    fieldIdent(f.Name),
					GoType:    f.Enumeration,
					Container: ty,
					Encoding:  Encoding{Kind: EncodingEnum, Inner: inner},
				})
				continue
			}
			out = append(out, mapField(f.Name, f.Type, "1", tvParams))

		case schema.FieldReserved:
			reservedField := mapField("__reserved", fmt.Sprintf("u%d", f.BitCount), "1", tvParams)
			reservedField.Reserved = true
			reservedField.GoName = ""
			out = append(out, reservedField)

		default:
			return nil, fmt.Errorf("ir: unrecognised field element %q", f.XMLName.Local)
		}
	}
	return out, nil
}

// typeOf maps a schema wire-type name to its Go base type and encoding,
// the direct port of the original generator's type_of table.
func typeOf(typeName string) (string, Encoding) {
	switch typeName {
	case "u1":
		return "bool", Encoding{Kind: EncodingRawBits, NumBits: 1}
	case "u2":
		return "uint8", Encoding{Kind: EncodingRawBits, NumBits: 2}
	case "u3":
		return "uint8", Encoding{Kind: EncodingRawBits, NumBits: 3}
	case "u4":
		return "uint8", Encoding{Kind: EncodingRawBits, NumBits: 4}
	case "u5":
		return "uint8", Encoding{Kind: EncodingRawBits, NumBits: 5}
	case "u6":
		return "uint8", Encoding{Kind: EncodingRawBits, NumBits: 6}
	case "u7":
		return "uint8", Encoding{Kind: EncodingRawBits, NumBits: 7}
	case "u9":
		return "uint16", Encoding{Kind: EncodingRawBits, NumBits: 9}
	case "u10":
		return "uint16", Encoding{Kind: EncodingRawBits, NumBits: 10}
	case "u11":
		return "uint16", Encoding{Kind: EncodingRawBits, NumBits: 11}
	case "u12":
		return "uint16", Encoding{Kind: EncodingRawBits, NumBits: 12}
	case "u13":
		return "uint16", Encoding{Kind: EncodingRawBits, NumBits: 13}
	case "u14":
		return "uint16", Encoding{Kind: EncodingRawBits, NumBits: 14}
	case "u15":
		return "uint16", Encoding{Kind: EncodingRawBits, NumBits: 15}

	case "u8":
		return "uint8", Encoding{Kind: EncodingManual}
	case "u16":
		return "uint16", Encoding{Kind: EncodingManual}
	case "u32":
		return "uint32", Encoding{Kind: EncodingManual}
	case "u64":
		return "uint64", Encoding{Kind: EncodingManual}
	case "u96":
		return "[12]byte", Encoding{Kind: EncodingManual}
	case "s8":
		return "int8", Encoding{Kind: EncodingManual}
	case "s16":
		return "int16", Encoding{Kind: EncodingManual}
	case "s32":
		return "int32", Encoding{Kind: EncodingManual}
	case "s64":
		return "int64", Encoding{Kind: EncodingManual}
	case "u1v":
		return "llrp.BitArray", Encoding{Kind: EncodingManual}
	case "utf8v":
		return "string", Encoding{Kind: EncodingManual}

	case "u8v", "bytesToEnd":
		return "[]uint8", Encoding{Kind: EncodingArrayOfT, Inner: innerField("u8")}
	case "u16v":
		return "[]uint16", Encoding{Kind: EncodingArrayOfT, Inner: innerField("u16")}
	case "u32v":
		return "[]uint32", Encoding{Kind: EncodingArrayOfT, Inner: innerField("u32")}
	case "u64v":
		return "[]uint64", Encoding{Kind: EncodingArrayOfT, Inner: innerField("u64")}

	default:
		return typeName, Encoding{Kind: EncodingTlvParameter}
	}
}

func innerField(typeName string) *Field {
	ty, enc := typeOf(typeName)
	return &Field{GoName: "", GoType: ty, Container: ContainerRaw, Encoding: enc}
}

func fieldIdent(name string) string {
	if o, ok := identOverrides[name]; ok {
		return o
	}
	return exportName(name)
}

// exportName capitalises name's first rune, the minimal transform
// needed to turn an LLRP schema identifier (already PascalCase, e.g.
// "AntennaID", "ROSpecID") into an exported Go identifier.
func exportName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// toExportedWords turns a SCREAMING_SNAKE_CASE schema message name (e.g.
// "GET_READER_CAPABILITIES") into UpperCamelCase ("GetReaderCapabilities").
func toExportedWords(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	var b strings.Builder
	for _, w := range words {
		if w == "" {
			continue
		}
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(strings.ToLower(w[1:]))
	}
	if b.Len() == 0 {
		return name
	}
	return b.String()
}

func mapField(name, typeName, repeat string, tvParams map[string]tvParam) Field {
	ident := fieldIdent(name)

	var baseType string
	var encoding Encoding
	if tv, ok := tvParams[typeName]; ok {
		baseType = tv.goType
		encoding = Encoding{Kind: EncodingTvParameter, TvID: tv.id}
	} else {
		baseType, encoding = typeOf(typeName)
	}

	recursive := recursiveTypes[typeName]

	var container Container
	switch repeat {
	case "1":
		if recursive {
			container = ContainerPointer
		} else {
			container = ContainerRaw
		}
	case "0-1":
		container = ContainerPointer
	case "0-N", "1-N":
		container = ContainerSlice
	default:
		container = ContainerPointer
	}

	return Field{GoName: ident, GoType: baseType, Container: container, Encoding: encoding}
}
