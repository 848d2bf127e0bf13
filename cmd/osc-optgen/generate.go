package main

import (
	"fmt"
	"strings"
	"text/template"
)

var funcMap = template.FuncMap{
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
}

// genOption is one variable of the generated catalog.
type genOption struct {
	Ident string
	Wire  string
	Base  string // base wire name, set for support options
	Type  string
	Codec string
	Array bool
}

type genData struct {
	Source   string
	Package  string
	Options  []genOption
	Supports []genOption
	All      []string
}

const catalogTmpl = `// Code generated by osc-optgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import "github.com/theta-osc/osc-go/pkg/osc"

// Device options.
var (
{{- range .Options}}
	// {{.Ident}} is the {{quote .Wire}} option.
	{{.Ident}} = osc.NewOption[{{.Type}}]({{quote .Wire}}, {{.Codec}})
{{- end}}
)

// Support options list the values accepted by their base option.
var (
{{- range .Supports}}
	// {{.Ident}} is the {{quote .Wire}} option.
	{{.Ident}} = osc.{{if .Array}}NewArrayOption{{else}}NewOption{{end}}[{{.Type}}]({{quote .Wire}}, {{.Codec}})
{{- end}}
)

// allOptions lists the catalog in table order, each option followed by
// its support option.
var allOptions = []osc.Named{
{{- range .All}}
	{{.}},
{{- end}}
}
`

var catalogTemplate = template.Must(template.New("catalog").Funcs(funcMap).Parse(catalogTmpl))

// Generate renders the catalog source for t. source names the table file
// in the header comment.
func Generate(t *Table, source string) (string, error) {
	data := genData{Source: source, Package: t.Package}
	for _, o := range t.Options {
		data.Options = append(data.Options, genOption{
			Ident: o.GoName(),
			Wire:  o.Wire,
			Type:  o.Type,
			Codec: o.Codec,
		})
		data.All = append(data.All, o.GoName())

		if s := o.Support; s != nil {
			data.Supports = append(data.Supports, genOption{
				Ident: o.SupportGoName(),
				Wire:  s.Wire,
				Base:  o.Wire,
				Type:  s.Type,
				Codec: s.Codec,
				Array: s.Kind == KindArray,
			})
			data.All = append(data.All, o.SupportGoName())
		}
	}

	var b strings.Builder
	if err := catalogTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering catalog: %w", err)
	}
	return b.String(), nil
}
