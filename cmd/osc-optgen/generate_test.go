package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func mustContain(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Errorf("output missing %q", want)
	}
}

func sampleTable(t *testing.T) *Table {
	t.Helper()
	table, err := ParseTable([]byte(`
package: theta
options:
  - name: ISO
    wire: iso
    type: ISO
    support: {kind: array}
  - name: CaptureInterval
    wire: captureInterval
    type: int
    codec: osc.Int()
    support: {kind: scalar, type: CaptureIntervalSupport}
  - name: DateTimeZone
    wire: dateTimeZone
    type: DateTimeZone
`))
	if err != nil {
		t.Fatalf("ParseTable failed: %v", err)
	}
	return table
}

func TestGenerate_Variables(t *testing.T) {
	output, err := Generate(sampleTable(t), "options.yaml")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	mustContain(t, output, "// Code generated by osc-optgen from options.yaml. DO NOT EDIT.")
	mustContain(t, output, "package theta")
	mustContain(t, output, `OptionISO = osc.NewOption[ISO]("iso", osc.JSON[ISO]())`)
	mustContain(t, output, `OptionISOSupport = osc.NewArrayOption[ISO]("isoSupport", osc.JSON[ISO]())`)
	mustContain(t, output, `OptionCaptureIntervalSupport = osc.NewOption[CaptureIntervalSupport]("captureIntervalSupport", osc.JSON[CaptureIntervalSupport]())`)
	mustContain(t, output, `OptionDateTimeZone = osc.NewOption[DateTimeZone]("dateTimeZone", osc.JSON[DateTimeZone]())`)
}

func TestGenerate_AllOptionsOrder(t *testing.T) {
	output, err := Generate(sampleTable(t), "options.yaml")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := []string{
		"OptionISO", "OptionISOSupport",
		"OptionCaptureInterval", "OptionCaptureIntervalSupport",
		"OptionDateTimeZone",
	}
	if got := allOptionsList(t, output); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("allOptions = %v, want %v", got, want)
	}
}

func TestGenerate_ParsesAsGo(t *testing.T) {
	output, err := Generate(sampleTable(t), "options.yaml")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if _, err := parser.ParseFile(token.NewFileSet(), "options_gen.go", output, 0); err != nil {
		t.Fatalf("generated code does not parse: %v", err)
	}
}

// TestGenerate_CatalogUpToDate regenerates the theta catalog and compares
// the declared variables with the checked in file.
func TestGenerate_CatalogUpToDate(t *testing.T) {
	tablePath := catalogTable(t)
	table, err := LoadTable(tablePath)
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}
	output, err := Generate(table, filepath.Base(tablePath))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	checkedIn, err := os.ReadFile(filepath.Join(filepath.Dir(tablePath), "options_gen.go"))
	if err != nil {
		t.Fatalf("reading options_gen.go: %v", err)
	}

	want := declaredVars(t, string(checkedIn))
	got := declaredVars(t, output)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("options_gen.go is stale; run go generate ./pkg/theta")
	}
	if strings.Join(allOptionsList(t, output), ",") != strings.Join(allOptionsList(t, string(checkedIn)), ",") {
		t.Errorf("allOptions in options_gen.go is stale; run go generate ./pkg/theta")
	}
}

func parseSource(t *testing.T, src string) *ast.File {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "options_gen.go", src, 0)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return f
}

// declaredVars returns the sorted package level variable names with the
// source of their initializer.
func declaredVars(t *testing.T, src string) []string {
	t.Helper()
	f := parseSource(t, src)
	var out []string
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.VAR {
			continue
		}
		for _, spec := range gd.Specs {
			vs := spec.(*ast.ValueSpec)
			for i, name := range vs.Names {
				init := ""
				if i < len(vs.Values) {
					init = exprString(src, vs.Values[i])
				}
				out = append(out, name.Name+"="+init)
			}
		}
	}
	sort.Strings(out)
	return out
}

func allOptionsList(t *testing.T, src string) []string {
	t.Helper()
	f := parseSource(t, src)
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.VAR {
			continue
		}
		for _, spec := range gd.Specs {
			vs := spec.(*ast.ValueSpec)
			if len(vs.Names) != 1 || vs.Names[0].Name != "allOptions" || len(vs.Values) != 1 {
				continue
			}
			lit, ok := vs.Values[0].(*ast.CompositeLit)
			if !ok {
				t.Fatal("allOptions is not a composite literal")
			}
			var names []string
			for _, elt := range lit.Elts {
				if id, ok := elt.(*ast.Ident); ok {
					names = append(names, id.Name)
				}
			}
			return names
		}
	}
	t.Fatal("allOptions not found")
	return nil
}

// exprString returns the source of e with all whitespace removed, so that
// formatting differences do not matter.
func exprString(src string, e ast.Expr) string {
	// Positions from a fresh FileSet start at base 1.
	text := src[e.Pos()-1 : e.End()-1]
	return strings.Join(strings.Fields(text), "")
}
