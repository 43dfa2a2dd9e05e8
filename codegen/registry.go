// Package codegen turns a normalised ir.Definition list into Go source,
// the direct port of the original generator's codegen.rs (define_message,
// define_parameter, define_enum, define_choice, decode_field) targeting
// text/template + go/format instead of quote!/proc_macro2::TokenStream.
package codegen

import "github.com/llrp-go/llrp/ir"

// registry records which generated package a type name lives in, and its
// wire identity, so field type references and choice dispatch tables can
// be built across the message/parameter/enum package split.
type registry struct {
	// paramKind maps a parameter/TV-parameter/choice name to its kind.
	paramKind map[string]ir.DefKind
	enumNames map[string]bool
	typeNum   map[string]uint16 // parameter & message name -> TLV/message type num
	tvID      map[string]uint8  // TV parameter name -> TV type num
}

func buildRegistry(defs []ir.Definition) *registry {
	r := &registry{
		paramKind: map[string]ir.DefKind{},
		enumNames: map[string]bool{},
		typeNum:   map[string]uint16{},
		tvID:      map[string]uint8{},
	}
	for _, d := range defs {
		switch d.Kind {
		case ir.DefParameter:
			r.paramKind[d.Name] = ir.DefParameter
			r.typeNum[d.Name] = d.ID
		case ir.DefTvParameter:
			r.paramKind[d.Name] = ir.DefTvParameter
			r.tvID[d.Name] = uint8(d.ID)
		case ir.DefChoice:
			r.paramKind[d.Name] = ir.DefChoice
		case ir.DefEnum:
			r.enumNames[d.Name] = true
		case ir.DefMessage:
			r.typeNum[d.Name] = d.ID
		}
	}
	return r
}

// isParamPackageType reports whether name is a generated type living in
// package parameters (a parameter, TV parameter, or choice).
func (r *registry) isParamPackageType(name string) bool {
	_, ok := r.paramKind[name]
	return ok
}

func (r *registry) isEnumType(name string) bool {
	return r.enumNames[name]
}

func (r *registry) isChoice(name string) bool {
	return r.paramKind[name] == ir.DefChoice
}

// qualify returns how GoType should be spelled from within fromPkg,
// qualifying it with the defining package's import name when the two
// differ. Builtin types and types already local to fromPkg are returned
// unqualified.
func (r *registry) qualify(fromPkg, goType string) string {
	switch {
	case r.isParamPackageType(goType):
		if fromPkg == "parameters" {
			return goType
		}
		return "parameters." + goType
	case r.isEnumType(goType):
		if fromPkg == "enums" {
			return goType
		}
		return "enums." + goType
	default:
		return goType
	}
}
