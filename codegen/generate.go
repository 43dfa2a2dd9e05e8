package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"github.com/llrp-go/llrp/ir"
)

// Generate renders a full set of Go source files from defs: one file per
// generated package (enums, parameters, messages) plus a dispatch file,
// each gofmt'd via go/format.Source. pkgImport is the module path the
// parameters/enums packages are imported under from messages.go (e.g.
// "github.com/llrp-go/llrp/generated/<name>").
func Generate(defs []ir.Definition, pkgImport string) (map[string][]byte, error) {
	reg := buildRegistry(defs)

	var enumSrc, paramSrc, msgSrc strings.Builder
	var dispatchCases []string

	for _, d := range defs {
		switch d.Kind {
		case ir.DefEnum:
			src, err := renderEnum(d)
			if err != nil {
				return nil, err
			}
			enumSrc.WriteString(src)
			enumSrc.WriteString("\n\n")

		case ir.DefParameter, ir.DefTvParameter:
			src, err := renderParameter(d, reg)
			if err != nil {
				return nil, err
			}
			paramSrc.WriteString(src)
			paramSrc.WriteString("\n\n")

		case ir.DefChoice:
			src, err := renderChoice(d, reg)
			if err != nil {
				return nil, err
			}
			paramSrc.WriteString(src)
			paramSrc.WriteString("\n\n")

		case ir.DefMessage:
			src, err := renderMessage(d, reg)
			if err != nil {
				return nil, err
			}
			msgSrc.WriteString(src)
			msgSrc.WriteString("\n\n")
			dispatchCases = append(dispatchCases, fmt.Sprintf(
				"case %d:\n\tvar v %s\n\tif err := v.Decode(d); err != nil {\n\t\treturn nil, err\n\t}\n\tif err := d.EndMessage(); err != nil {\n\t\treturn nil, err\n\t}\n\treturn &v, nil",
				d.ID, d.Name))
		}
	}

	out := map[string][]byte{}

	// enums.go never touches the codec runtime directly (it's pure
	// constants and FromValue/ToValue conversions), so it must not import
	// package llrp at all, or the generated package would not compile
	// (an unused import is a compile error).
	enumFile, err := formatFile("enums", false, nil, enumSrc.String())
	if err != nil {
		return nil, fmt.Errorf("codegen: enums: %w", err)
	}
	out["enums/enums.go"] = enumFile

	var paramExtra []string
	if strings.Contains(paramSrc.String(), "enums.") {
		paramExtra = append(paramExtra, pkgImport+"/enums")
	}
	paramFile, err := formatFile("parameters", paramSrc.Len() > 0, paramExtra, paramSrc.String())
	if err != nil {
		return nil, fmt.Errorf("codegen: parameters: %w", err)
	}
	out["parameters/parameters.go"] = paramFile

	var msgExtra []string
	if strings.Contains(msgSrc.String(), "parameters.") {
		msgExtra = append(msgExtra, pkgImport+"/parameters")
	}
	if strings.Contains(msgSrc.String(), "enums.") {
		msgExtra = append(msgExtra, pkgImport+"/enums")
	}
	msgFile, err := formatFile("messages", msgSrc.Len() > 0, msgExtra, msgSrc.String())
	if err != nil {
		return nil, fmt.Errorf("codegen: messages: %w", err)
	}
	out["messages/messages.go"] = msgFile

	dispatchFile, err := renderDispatch(dispatchCases)
	if err != nil {
		return nil, fmt.Errorf("codegen: dispatch: %w", err)
	}
	out["messages/dispatch.go"] = dispatchFile

	return out, nil
}

var fileTmpl = template.Must(template.New("file").Parse(`// Code generated by llrpgen. DO NOT EDIT.

package {{.Package}}
{{if or .NeedLLRP .Extra}}
import (
{{if .NeedLLRP}}	"github.com/llrp-go/llrp"
{{end}}{{range .Extra}}	"{{.}}"
{{end}})
{{end}}
{{.Body}}
`))

// formatFile renders one generated package file. needLLRP controls whether
// the codec runtime import is emitted (enums.go never needs it); extra
// names additional same-module package imports (parameters/enums).
func formatFile(pkg string, needLLRP bool, extra []string, body string) ([]byte, error) {
	var buf bytes.Buffer
	err := fileTmpl.Execute(&buf, struct {
		Package  string
		NeedLLRP bool
		Extra    []string
		Body     string
	}{pkg, needLLRP, extra, body})
	if err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}

var dispatchTmpl = template.Must(template.New("dispatch").Parse(`// Code generated by llrpgen. DO NOT EDIT.

package messages

import "github.com/llrp-go/llrp"

// Message is implemented by every generated message type.
type Message interface {
	MessageID() uint16
}

// Dispatch decodes a message body given its envelope type number,
// returning the concrete generated Message type.
func Dispatch(id uint16, body []byte, opts llrp.DecodeOptions) (Message, error) {
	d := llrp.NewDecoder(body, opts)
	switch id {
{{range .Cases}}	{{.}}
{{end}}	}
	return nil, &llrp.Error{Kind: llrp.KindUnknownMessageID, MessageID: id}
}
`))

func renderDispatch(cases []string) ([]byte, error) {
	var buf bytes.Buffer
	if err := dispatchTmpl.Execute(&buf, struct{ Cases []string }{cases}); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}
