package codegen

import (
	"fmt"
	"strings"

	"github.com/llrp-go/llrp/ir"
)

// fieldGoType renders f's full Go type (container applied) as it should
// be spelled from within pkg.
func fieldGoType(pkg string, f ir.Field, reg *registry) string {
	base := reg.qualify(pkg, f.GoType)
	switch f.Container {
	case ir.ContainerPointer:
		return "*" + base
	case ir.ContainerSlice:
		return "[]" + base
	default:
		return base
	}
}

// structFieldDecl renders f as a struct field declaration line, or ""
// for a reserved field (reserved bits are decoded and discarded, never
// stored — spec.md carries no requirement to round-trip their value).
func structFieldDecl(pkg string, f ir.Field, reg *registry) string {
	if f.Reserved {
		return ""
	}
	return fmt.Sprintf("%s %s", f.GoName, fieldGoType(pkg, f, reg))
}

// readMethodFor returns the Decoder method name for a Manual-encoded
// base type.
func readMethodFor(goType string) string {
	switch goType {
	case "uint8":
		return "ReadUint8"
	case "uint16":
		return "ReadUint16"
	case "uint32":
		return "ReadUint32"
	case "uint64":
		return "ReadUint64"
	case "int8":
		return "ReadInt8"
	case "int16":
		return "ReadInt16"
	case "int32":
		return "ReadInt32"
	case "int64":
		return "ReadInt64"
	case "[12]byte":
		return "ReadEPC96"
	case "string":
		return "ReadString"
	case "llrp.BitArray":
		return "ReadBitArray"
	default:
		return "ReadUint8"
	}
}

func writeMethodFor(goType string) string {
	switch goType {
	case "uint8":
		return "WriteUint8"
	case "uint16":
		return "WriteUint16"
	case "uint32":
		return "WriteUint32"
	case "uint64":
		return "WriteUint64"
	case "int8":
		return "WriteInt8"
	case "int16":
		return "WriteInt16"
	case "int32":
		return "WriteInt32"
	case "int64":
		return "WriteInt64"
	case "[12]byte":
		return "WriteEPC96"
	case "string":
		return "WriteString"
	case "llrp.BitArray":
		return "WriteBitArray"
	default:
		return "WriteUint8"
	}
}

// decodeStmt renders the statements that decode f into v.<GoName> (or,
// for a reserved field, decode and discard). target is the receiver
// variable name ("v").
func decodeStmt(pkg string, f ir.Field, reg *registry, target string) string {
	lhs := "_"
	if !f.Reserved {
		lhs = target + "." + f.GoName
	}
	ty := reg.qualify(pkg, f.GoType)

	switch f.Encoding.Kind {
	case ir.EncodingRawBits:
		if ty == "bool" {
			return fmt.Sprintf(strings.TrimSpace(`
{
	flag, ferr := llrp.DecodeBits[uint8](d, %d)
	if ferr != nil {
		return ferr
	}
	%s = flag != 0
}`), f.Encoding.NumBits, lhs)
		}
		return fmt.Sprintf("%s, err = llrp.DecodeBits[%s](d, %d)\nif err != nil {\n\treturn err\n}",
			lhs, ty, f.Encoding.NumBits)

	case ir.EncodingTlvParameter:
		elem := reg.qualify(pkg, f.GoType)
		decodeOptFn, decodeVecFn := "llrp.DecodeOption", "llrp.DecodeVec"
		if reg.isChoice(f.GoType) {
			decodeOptFn, decodeVecFn = "llrp.DecodeChoiceOption", "llrp.DecodeChoiceVec"
		}
		switch f.Container {
		case ir.ContainerSlice:
			return fmt.Sprintf("%s, err = %s[%s, *%s](d)\nif err != nil {\n\treturn err\n}", lhs, decodeVecFn, elem, elem)
		case ir.ContainerPointer:
			return fmt.Sprintf("%s, err = %s[%s, *%s](d)\nif err != nil {\n\treturn err\n}", lhs, decodeOptFn, elem, elem)
		default:
			return fmt.Sprintf(
				"{\n\tp, err := %s[%s, *%s](d)\n\tif err != nil {\n\t\treturn err\n\t}\n\tif p == nil {\n\t\treturn &llrp.Error{Kind: llrp.KindInsufficientData}\n\t}\n\t%s = *p\n}",
				decodeOptFn, elem, elem, lhs)
		}

	case ir.EncodingTvParameter:
		elem := reg.qualify(pkg, f.GoType)
		tvID := f.Encoding.TvID
		switch f.Container {
		case ir.ContainerSlice:
			return fmt.Sprintf("%s, err = llrp.DecodeTVVec[%s, *%s](d)\nif err != nil {\n\treturn err\n}", lhs, elem, elem)
		case ir.ContainerPointer:
			return fmt.Sprintf("%s, err = llrp.DecodeTVOption[%s, *%s](d)\nif err != nil {\n\treturn err\n}", lhs, elem, elem)
		default:
			return fmt.Sprintf(
				"{\n\tp, err := llrp.DecodeTVOption[%s, *%s](d)\n\tif err != nil {\n\t\treturn err\n\t}\n\tif p == nil {\n\t\treturn &llrp.Error{Kind: llrp.KindInsufficientData}\n\t}\n\t%s = *p\n}\n_ = %d",
				elem, elem, lhs, tvID)
		}

	case ir.EncodingArrayOfT:
		innerTy := reg.qualify(pkg, f.Encoding.Inner.GoType)
		method := readMethodFor(f.Encoding.Inner.GoType)
		return fmt.Sprintf(
			"%s, err = llrp.ReadArray(d, func(d *llrp.Decoder) (%s, error) { return d.%s() })\nif err != nil {\n\treturn err\n}",
			lhs, innerTy, method)

	case ir.EncodingEnum:
		inner := f.Encoding.Inner
		if inner.Encoding.Kind == ir.EncodingArrayOfT {
			innerElemTy := reg.qualify(pkg, inner.Encoding.Inner.GoType)
			method := readMethodFor(inner.Encoding.Inner.GoType)
			return fmt.Sprintf(strings.TrimSpace(`
raw, err := llrp.ReadArray(d, func(d *llrp.Decoder) (%s, error) { return d.%s() })
if err != nil {
	return err
}
%s = make([]%s, len(raw))
for i, rv := range raw {
	v, ok := %s(uint32(rv))
	if !ok {
		return &llrp.Error{Kind: llrp.KindInvalidVariant, Value: uint32(rv)}
	}
	%s[i] = v
}`), innerElemTy, method, lhs, ty, enumFromValueFunc(f.GoType), lhs)
		}
		var readOne string
		switch inner.Encoding.Kind {
		case ir.EncodingRawBits:
			readOne = fmt.Sprintf("llrp.DecodeBits[%s](d, %d)", reg.qualify(pkg, inner.GoType), inner.Encoding.NumBits)
		default:
			readOne = fmt.Sprintf("d.%s()", readMethodFor(inner.GoType))
		}
		return fmt.Sprintf(strings.TrimSpace(`
raw, err := %s
if err != nil {
	return err
}
{
	v, ok := %s(uint32(raw))
	if !ok {
		return &llrp.Error{Kind: llrp.KindInvalidVariant, Value: uint32(raw)}
	}
	%s = v
}`), readOne, enumFromValueFunc(f.GoType), lhs)

	default: // EncodingManual
		method := readMethodFor(f.GoType)
		return fmt.Sprintf("%s, err = d.%s()\nif err != nil {\n\treturn err\n}", lhs, method)
	}
}

// encodeStmt renders the statements that encode v.<GoName> via e.
func encodeStmt(pkg string, f ir.Field, reg *registry, target string) string {
	if f.Reserved {
		if f.Encoding.Kind == ir.EncodingRawBits {
			ty := reg.qualify(pkg, f.GoType)
			if ty == "bool" {
				ty = "uint8"
			}
			return fmt.Sprintf("llrp.EncodeBits[%s](e, 0, %d)", ty, f.Encoding.NumBits)
		}
		return ""
	}
	rhs := target + "." + f.GoName
	elem := reg.qualify(pkg, f.GoType)

	switch f.Encoding.Kind {
	case ir.EncodingRawBits:
		if elem == "bool" {
			return fmt.Sprintf(strings.TrimSpace(`
{
	var flag uint8
	if %s {
		flag = 1
	}
	llrp.EncodeBits[uint8](e, flag, %d)
}`), rhs, f.Encoding.NumBits)
		}
		return fmt.Sprintf("llrp.EncodeBits[%s](e, %s, %d)", elem, rhs, f.Encoding.NumBits)

	case ir.EncodingTlvParameter:
		if reg.isChoice(f.GoType) {
			switch f.Container {
			case ir.ContainerSlice:
				return fmt.Sprintf("llrp.EncodeChoiceVec[%s, *%s](e, %s)", elem, elem, rhs)
			case ir.ContainerPointer:
				return fmt.Sprintf("llrp.EncodeChoiceOption[%s, *%s](e, %s)", elem, elem, rhs)
			default:
				return fmt.Sprintf("(&%s).EncodeChoice(e)", rhs)
			}
		}
		switch f.Container {
		case ir.ContainerSlice:
			return fmt.Sprintf("llrp.EncodeVec[%s, *%s](e, %s)", elem, elem, rhs)
		case ir.ContainerPointer:
			return fmt.Sprintf("llrp.EncodeOption[%s, *%s](e, %s)", elem, elem, rhs)
		default:
			return fmt.Sprintf("(&%s).EncodeTLV(e)", rhs)
		}

	case ir.EncodingTvParameter:
		switch f.Container {
		case ir.ContainerSlice:
			return fmt.Sprintf("llrp.EncodeTVVec[%s, *%s](e, %s)", elem, elem, rhs)
		case ir.ContainerPointer:
			return fmt.Sprintf("llrp.EncodeTVOption[%s, *%s](e, %s)", elem, elem, rhs)
		default:
			return fmt.Sprintf("(&%s).EncodeTV(e)", rhs)
		}

	case ir.EncodingArrayOfT:
		method := writeMethodFor(f.Encoding.Inner.GoType)
		innerTy := reg.qualify(pkg, f.Encoding.Inner.GoType)
		return fmt.Sprintf("llrp.WriteArray(e, %s, func(e *llrp.Encoder, v %s) { e.%s(v) })", rhs, innerTy, method)

	case ir.EncodingEnum:
		inner := f.Encoding.Inner
		if inner.Encoding.Kind == ir.EncodingArrayOfT {
			method := writeMethodFor(inner.Encoding.Inner.GoType)
			innerElemTy := reg.qualify(pkg, inner.Encoding.Inner.GoType)
			return fmt.Sprintf(strings.TrimSpace(`
raw := make([]%s, len(%s))
for i, v := range %s {
	raw[i] = %s(%s(v))
}
llrp.WriteArray(e, raw, func(e *llrp.Encoder, v %s) { e.%s(v) })`), innerElemTy, rhs, rhs, innerElemTy, enumToValueFunc(f.GoType), innerElemTy, method)
		}
		switch inner.Encoding.Kind {
		case ir.EncodingRawBits:
			innerTy := reg.qualify(pkg, inner.GoType)
			return fmt.Sprintf("llrp.EncodeBits[%s](e, %s(%s(%s)), %d)", innerTy, innerTy, enumToValueFunc(f.GoType), rhs, inner.Encoding.NumBits)
		default:
			method := writeMethodFor(inner.GoType)
			return fmt.Sprintf("e.%s(%s(%s(%s)))", method, inner.GoType, enumToValueFunc(f.GoType), rhs)
		}

	default: // EncodingManual
		method := writeMethodFor(f.GoType)
		return fmt.Sprintf("e.%s(%s)", method, rhs)
	}
}

func enumFromValueFunc(enumName string) string {
	return "enums." + enumName + "FromValue"
}

func enumToValueFunc(enumName string) string {
	return "enums." + enumName + "ToValue"
}
