package codegen

import (
	"fmt"
	"strings"

	"github.com/llrp-go/llrp/ir"
)

// renderEnum emits a named uint16 type, one constant per variant, and the
// ToValue/FromValue conversion pair field.go's EncodingEnum case calls.
// The original generator's define_enum (codegen.rs) does the same thing
// via quote!; here it's string concatenation run through go/format.
func renderEnum(d ir.Definition) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "// %s is a generated enumeration over an underlying uint16.\n", d.Name)
	fmt.Fprintf(&b, "type %s uint16\n\n", d.Name)

	fmt.Fprintf(&b, "const (\n")
	for _, v := range d.Variants {
		fmt.Fprintf(&b, "\t%s%s %s = %d\n", d.Name, v.GoName, d.Name, v.Value)
	}
	fmt.Fprintf(&b, ")\n\n")

	fmt.Fprintf(&b, "// %sFromValue maps a raw wire value to its %s variant, failing\n", d.Name, d.Name)
	fmt.Fprintf(&b, "// if v names no known variant (spec.md's KindInvalidVariant).\n")
	fmt.Fprintf(&b, "func %sFromValue(v uint32) (%s, bool) {\n\tswitch %s(v) {\n", d.Name, d.Name, d.Name)
	for _, v := range d.Variants {
		fmt.Fprintf(&b, "\tcase %s%s:\n\t\treturn %s%s, true\n", d.Name, v.GoName, d.Name, v.GoName)
	}
	fmt.Fprintf(&b, "\t}\n\treturn 0, false\n}\n\n")

	fmt.Fprintf(&b, "// %sToValue returns v's underlying wire value.\n", d.Name)
	fmt.Fprintf(&b, "func %sToValue(v %s) uint32 { return uint32(v) }\n", d.Name, d.Name)

	return b.String(), nil
}

// scalarAlias reports whether d (a TV parameter definition) has exactly
// one non-reserved, raw-container, manually-encoded or raw-bits field, the condition
// under which spec.md §4.8/§4.9 collapses a TV parameter to a type alias
// instead of a struct.
func scalarAlias(d ir.Definition) (ir.Field, bool) {
	if len(d.Fields) != 1 {
		return ir.Field{}, false
	}
	f := d.Fields[0]
	if f.Reserved || f.Container != ir.ContainerRaw {
		return ir.Field{}, false
	}
	if f.Encoding.Kind != ir.EncodingManual && f.Encoding.Kind != ir.EncodingRawBits {
		return ir.Field{}, false
	}
	return f, true
}

// needsErrVar reports whether fields contains at least one field whose
// decodeStmt rendering assigns through a pre-declared `err` via `=`
// rather than introducing its own block-scoped `err` via `:=`. A scalar
// (non-slice, non-pointer) TlvParameter/TvParameter/choice field's
// decodeStmt is a self-contained `{ ... }` block, so a struct made up
// entirely of such fields would otherwise leave a hoisted `var err error`
// unused.
func needsErrVar(fields []ir.Field) bool {
	for _, f := range fields {
		switch f.Encoding.Kind {
		case ir.EncodingTlvParameter, ir.EncodingTvParameter:
			if f.Container != ir.ContainerRaw {
				return true
			}
		case ir.EncodingRawBits:
			if f.GoType != "bool" {
				return true
			}
		default:
			return true
		}
	}
	return false
}

// renderParameter emits a TLV parameter's or TV parameter's Go
// realisation: a scalar TV parameter collapses to a named host-type alias
// (spec.md §4.9, "TV parameter, single-field"); everything else becomes a
// struct implementing the CanDecodeType/DecodeTLV/EncodeTLV (TLV) or
// CanDecodeTvType/DecodeTV/EncodeTV (TV) capability set codec.go's
// DecodeOption/DecodeVec/DecodeTVOption/DecodeTVVec generics drive.
func renderParameter(d ir.Definition, reg *registry) (string, error) {
	if d.Kind == ir.DefTvParameter {
		return renderTvParameter(d, reg)
	}
	return renderTlvParameter(d, reg)
}

func renderTvParameter(d ir.Definition, reg *registry) (string, error) {
	var b strings.Builder

	if f, ok := scalarAlias(d); ok {
		hostTy := fieldGoType("parameters", f, reg)
		fmt.Fprintf(&b, "// %s is a single-field TV parameter (tv id %d), collapsed to\n", d.Name, d.ID)
		fmt.Fprintf(&b, "// a named %s.\n", hostTy)
		fmt.Fprintf(&b, "type %s %s\n\n", d.Name, hostTy)

		fmt.Fprintf(&b, "// CanDecodeTvType reports whether typeNum is %s's TV id.\n", d.Name)
		fmt.Fprintf(&b, "func (v *%s) CanDecodeTvType(typeNum uint16) bool { return typeNum == %d }\n\n", d.Name, d.ID)

		fmt.Fprintf(&b, "func (v *%s) DecodeTV(d *llrp.Decoder) error {\n", d.Name)
		fmt.Fprintf(&b, "\tif err := d.BeginTV(%d); err != nil {\n\t\treturn err\n\t}\n", d.ID)
		if f.Encoding.Kind == ir.EncodingRawBits && hostTy == "bool" {
			fmt.Fprintf(&b, "\tflag, err := llrp.DecodeBits[uint8](d, %d)\n\tif err != nil {\n\t\treturn err\n\t}\n", f.Encoding.NumBits)
			fmt.Fprintf(&b, "\t*v = %s(flag != 0)\n\treturn nil\n}\n\n", d.Name)
		} else if f.Encoding.Kind == ir.EncodingRawBits {
			fmt.Fprintf(&b, "\tx, err := llrp.DecodeBits[%s](d, %d)\n\tif err != nil {\n\t\treturn err\n\t}\n", hostTy, f.Encoding.NumBits)
			fmt.Fprintf(&b, "\t*v = %s(x)\n\treturn nil\n}\n\n", d.Name)
		} else {
			fmt.Fprintf(&b, "\tx, err := d.%s()\n\tif err != nil {\n\t\treturn err\n\t}\n", readMethodFor(f.GoType))
			fmt.Fprintf(&b, "\t*v = %s(x)\n\treturn nil\n}\n\n", d.Name)
		}

		fmt.Fprintf(&b, "func (v *%s) EncodeTV(e *llrp.Encoder) {\n", d.Name)
		fmt.Fprintf(&b, "\te.WriteTV(%d)\n", d.ID)
		if f.Encoding.Kind == ir.EncodingRawBits && hostTy == "bool" {
			fmt.Fprintf(&b, "\tvar flag uint8\n\tif bool(*v) {\n\t\tflag = 1\n\t}\n\tllrp.EncodeBits[uint8](e, flag, %d)\n", f.Encoding.NumBits)
		} else if f.Encoding.Kind == ir.EncodingRawBits {
			fmt.Fprintf(&b, "\tllrp.EncodeBits[%s](e, %s(*v), %d)\n", hostTy, hostTy, f.Encoding.NumBits)
		} else {
			fmt.Fprintf(&b, "\te.%s(%s(*v))\n", writeMethodFor(f.GoType), hostTy)
		}
		fmt.Fprintf(&b, "}\n")
		return b.String(), nil
	}

	fmt.Fprintf(&b, "// %s is a TV parameter (tv id %d).\n", d.Name, d.ID)
	fmt.Fprintf(&b, "type %s struct {\n", d.Name)
	for _, f := range d.Fields {
		if decl := structFieldDecl("parameters", f, reg); decl != "" {
			fmt.Fprintf(&b, "\t%s\n", decl)
		}
	}
	fmt.Fprintf(&b, "}\n\n")

	fmt.Fprintf(&b, "// CanDecodeTvType reports whether typeNum is %s's TV id.\n", d.Name)
	fmt.Fprintf(&b, "func (v *%s) CanDecodeTvType(typeNum uint16) bool { return typeNum == %d }\n\n", d.Name, d.ID)

	fmt.Fprintf(&b, "func (v *%s) DecodeTV(d *llrp.Decoder) error {\n", d.Name)
	fmt.Fprintf(&b, "\tif err := d.BeginTV(%d); err != nil {\n\t\treturn err\n\t}\n", d.ID)
	if needsErrVar(d.Fields) {
		fmt.Fprintf(&b, "\tvar err error\n")
	}
	for _, f := range d.Fields {
		fmt.Fprintf(&b, "\t%s\n", decodeStmt("parameters", f, reg, "v"))
	}
	fmt.Fprintf(&b, "\treturn nil\n}\n\n")

	fmt.Fprintf(&b, "func (v *%s) EncodeTV(e *llrp.Encoder) {\n", d.Name)
	fmt.Fprintf(&b, "\te.WriteTV(%d)\n", d.ID)
	for _, f := range d.Fields {
		if stmt := encodeStmt("parameters", f, reg, "v"); stmt != "" {
			fmt.Fprintf(&b, "\t%s\n", stmt)
		}
	}
	fmt.Fprintf(&b, "}\n")
	return b.String(), nil
}

func renderTlvParameter(d ir.Definition, reg *registry) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "// %s is a TLV parameter (type %d).\n", d.Name, d.ID)
	fmt.Fprintf(&b, "type %s struct {\n", d.Name)
	for _, f := range d.Fields {
		if decl := structFieldDecl("parameters", f, reg); decl != "" {
			fmt.Fprintf(&b, "\t%s\n", decl)
		}
	}
	fmt.Fprintf(&b, "}\n\n")

	fmt.Fprintf(&b, "// CanDecodeType reports whether typeNum is %s's TLV type.\n", d.Name)
	fmt.Fprintf(&b, "func (v *%s) CanDecodeType(typeNum uint16) bool { return typeNum == %d }\n\n", d.Name, d.ID)

	fmt.Fprintf(&b, "func (v *%s) DecodeTLV(d *llrp.Decoder) error {\n", d.Name)
	fmt.Fprintf(&b, "\tbodyEnd, err := d.BeginTLV(%d)\n\tif err != nil {\n\t\treturn err\n\t}\n", d.ID)
	for _, f := range d.Fields {
		fmt.Fprintf(&b, "\t%s\n", decodeStmt("parameters", f, reg, "v"))
	}
	fmt.Fprintf(&b, "\treturn d.EndTLV(bodyEnd)\n}\n\n")

	fmt.Fprintf(&b, "func (v *%s) EncodeTLV(e *llrp.Encoder) {\n", d.Name)
	fmt.Fprintf(&b, "\ttoken := e.BeginTLV(%d)\n", d.ID)
	for _, f := range d.Fields {
		if stmt := encodeStmt("parameters", f, reg, "v"); stmt != "" {
			fmt.Fprintf(&b, "\t%s\n", stmt)
		}
	}
	fmt.Fprintf(&b, "\te.EndTLV(token)\n}\n")
	return b.String(), nil
}

// renderChoice emits a Choice's Go realisation: a struct with one pointer
// field per variant, plus the CanDecodeType/CanDecodeTvType/DecodeChoice/
// EncodeChoice capability set codec.go's DecodeChoiceOption/
// DecodeChoiceVec generics drive. Variants may be TLV- or TV-encoded
// (spec.md §9's disjoint-id-range design note); each variant field's
// Encoding.Kind already records which, courtesy of ir.mapField's
// tvParams lookup.
func renderChoice(d ir.Definition, reg *registry) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "// %s is a choice (tagged union) over its variant fields.\n", d.Name)
	fmt.Fprintf(&b, "type %s struct {\n", d.Name)
	for _, f := range d.Fields {
		fmt.Fprintf(&b, "\t%s *%s\n", f.GoName, reg.qualify("parameters", f.GoType))
	}
	fmt.Fprintf(&b, "}\n\n")

	var tlvIDs, tvIDs []string
	for _, f := range d.Fields {
		if f.Encoding.Kind == ir.EncodingTvParameter {
			tvIDs = append(tvIDs, fmt.Sprintf("%d", f.Encoding.TvID))
		} else {
			tlvIDs = append(tlvIDs, fmt.Sprintf("%d", reg.typeNum[f.GoType]))
		}
	}
	fmt.Fprintf(&b, "func (v *%s) CanDecodeType(typeNum uint16) bool {\n", d.Name)
	if len(tlvIDs) == 0 {
		fmt.Fprintf(&b, "\treturn false\n}\n\n")
	} else {
		fmt.Fprintf(&b, "\tswitch typeNum {\n\tcase %s:\n\t\treturn true\n\t}\n\treturn false\n}\n\n", strings.Join(tlvIDs, ", "))
	}
	fmt.Fprintf(&b, "func (v *%s) CanDecodeTvType(typeNum uint16) bool {\n", d.Name)
	if len(tvIDs) == 0 {
		fmt.Fprintf(&b, "\treturn false\n}\n\n")
	} else {
		fmt.Fprintf(&b, "\tswitch typeNum {\n\tcase %s:\n\t\treturn true\n\t}\n\treturn false\n}\n\n", strings.Join(tvIDs, ", "))
	}

	fmt.Fprintf(&b, "func (v *%s) DecodeChoice(d *llrp.Decoder) error {\n", d.Name)
	fmt.Fprintf(&b, "\thdr, err := d.PeekParamHeader()\n\tif err != nil {\n\t\treturn err\n\t}\n")
	fmt.Fprintf(&b, "\tswitch {\n")
	for _, f := range d.Fields {
		elem := reg.qualify("parameters", f.GoType)
		if f.Encoding.Kind == ir.EncodingTvParameter {
			fmt.Fprintf(&b, "\tcase hdr.IsTV && hdr.TypeNum == %d:\n", f.Encoding.TvID)
			fmt.Fprintf(&b, "\t\tvar x %s\n\t\tif err := x.DecodeTV(d); err != nil {\n\t\t\treturn err\n\t\t}\n\t\tv.%s = &x\n\t\treturn nil\n", elem, f.GoName)
		} else {
			fmt.Fprintf(&b, "\tcase !hdr.IsTV && hdr.TypeNum == %d:\n", reg.typeNum[f.GoType])
			fmt.Fprintf(&b, "\t\tvar x %s\n\t\tif err := x.DecodeTLV(d); err != nil {\n\t\t\treturn err\n\t\t}\n\t\tv.%s = &x\n\t\treturn nil\n", elem, f.GoName)
		}
	}
	fmt.Fprintf(&b, "\t}\n\tif hdr.IsTV {\n\t\treturn &llrp.Error{Kind: llrp.KindInvalidTvType, TypeNum: int(hdr.TypeNum)}\n\t}\n\treturn &llrp.Error{Kind: llrp.KindInvalidType, TypeNum: int(hdr.TypeNum)}\n}\n\n")

	fmt.Fprintf(&b, "func (v *%s) EncodeChoice(e *llrp.Encoder) {\n\tswitch {\n", d.Name)
	for _, f := range d.Fields {
		if f.Encoding.Kind == ir.EncodingTvParameter {
			fmt.Fprintf(&b, "\tcase v.%s != nil:\n\t\tv.%s.EncodeTV(e)\n", f.GoName, f.GoName)
		} else {
			fmt.Fprintf(&b, "\tcase v.%s != nil:\n\t\tv.%s.EncodeTLV(e)\n", f.GoName, f.GoName)
		}
	}
	fmt.Fprintf(&b, "\t}\n}\n")

	return b.String(), nil
}

// renderMessage emits a top-level message's struct, MessageID accessor,
// and Decode/Encode pair. Messages never validate trailing bytes
// themselves (spec.md §4.9); only the generated Dispatch does, via
// Decoder.EndMessage.
func renderMessage(d ir.Definition, reg *registry) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "// %s is message type %d.\n", d.Name, d.ID)
	fmt.Fprintf(&b, "type %s struct {\n", d.Name)
	for _, f := range d.Fields {
		if decl := structFieldDecl("messages", f, reg); decl != "" {
			fmt.Fprintf(&b, "\t%s\n", decl)
		}
	}
	fmt.Fprintf(&b, "}\n\n")

	fmt.Fprintf(&b, "// MessageID returns %s's envelope type number.\n", d.Name)
	fmt.Fprintf(&b, "func (v *%s) MessageID() uint16 { return %d }\n\n", d.Name, d.ID)

	fmt.Fprintf(&b, "// Decode populates v's fields from d. It does not check that d is\n")
	fmt.Fprintf(&b, "// fully consumed; Dispatch owns that check.\n")
	fmt.Fprintf(&b, "func (v *%s) Decode(d *llrp.Decoder) error {\n", d.Name)
	if needsErrVar(d.Fields) {
		fmt.Fprintf(&b, "\tvar err error\n")
	}
	for _, f := range d.Fields {
		fmt.Fprintf(&b, "\t%s\n", decodeStmt("messages", f, reg, "v"))
	}
	fmt.Fprintf(&b, "\treturn nil\n}\n\n")

	fmt.Fprintf(&b, "// Encode serialises v's payload (message body only; no envelope).\n")
	fmt.Fprintf(&b, "func (v *%s) Encode() []byte {\n\te := llrp.NewEncoder()\n", d.Name)
	for _, f := range d.Fields {
		if stmt := encodeStmt("messages", f, reg, "v"); stmt != "" {
			fmt.Fprintf(&b, "\t%s\n", stmt)
		}
	}
	fmt.Fprintf(&b, "\treturn e.Bytes()\n}\n")

	return b.String(), nil
}
