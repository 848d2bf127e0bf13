package main

import (
	"fmt"
	"go/token"
	"os"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/theta-osc/osc-go/pkg/osc"
)

// Support kinds.
const (
	KindArray  = "array"
	KindScalar = "scalar"
)

// Table is the option table loaded from YAML.
type Table struct {
	Package string      `yaml:"package"`
	Options []OptionDef `yaml:"options"`
}

// OptionDef describes one device option.
type OptionDef struct {
	Name    string      `yaml:"name"`  // Go identifier suffix
	Wire    string      `yaml:"wire"`  // option key on the wire
	Type    string      `yaml:"type"`  // Go value type
	Codec   string      `yaml:"codec"` // osc.Codec expression
	Support *SupportDef `yaml:"support"`
}

// SupportDef describes the companion <wire>Support option.
type SupportDef struct {
	Kind  string `yaml:"kind"` // "array" or "scalar"
	Wire  string `yaml:"wire"`
	Type  string `yaml:"type"`
	Codec string `yaml:"codec"`
}

// GoName returns the variable name of the option.
func (o OptionDef) GoName() string { return "Option" + o.Name }

// SupportGoName returns the variable name of the support option.
func (o OptionDef) SupportGoName() string { return o.GoName() + osc.SupportSuffix }

// LoadTable reads and validates a table file.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	t, err := ParseTable(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ParseTable parses a table, fills in defaults and validates it.
func ParseTable(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing option table: %w", err)
	}
	t.applyDefaults()
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func defaultCodec(typ string) string { return "osc.JSON[" + typ + "]()" }

func (t *Table) applyDefaults() {
	for i := range t.Options {
		o := &t.Options[i]
		if o.Codec == "" && o.Type != "" {
			o.Codec = defaultCodec(o.Type)
		}
		s := o.Support
		if s == nil {
			continue
		}
		if s.Wire == "" {
			s.Wire = osc.SupportName(o.Wire)
		}
		if s.Type == "" {
			s.Type = o.Type
		}
		if s.Codec == "" {
			if s.Kind == KindArray && s.Type == o.Type {
				s.Codec = o.Codec
			} else if s.Type != "" {
				s.Codec = defaultCodec(s.Type)
			}
		}
	}
}

// Validate rejects incomplete entries, duplicate names and support
// entries that do not follow the <wire>Support convention.
func (t *Table) Validate() error {
	if t.Package == "" {
		return fmt.Errorf("missing package")
	}
	if len(t.Options) == 0 {
		return fmt.Errorf("no options")
	}

	wires := make(map[string]string)
	idents := make(map[string]string)
	claim := func(wire, ident, owner string) error {
		if prev, ok := wires[wire]; ok {
			return fmt.Errorf("%s: duplicate wire name %q (also used by %s)", owner, wire, prev)
		}
		if prev, ok := idents[ident]; ok {
			return fmt.Errorf("%s: duplicate identifier %s (also used by %s)", owner, ident, prev)
		}
		wires[wire] = owner
		idents[ident] = owner
		return nil
	}

	for i, o := range t.Options {
		owner := fmt.Sprintf("option %d (%s)", i, o.Wire)
		switch {
		case o.Name == "":
			return fmt.Errorf("%s: missing name", owner)
		case !isExportedIdent(o.Name):
			return fmt.Errorf("%s: name %q is not an exported Go identifier", owner, o.Name)
		case o.Wire == "":
			return fmt.Errorf("option %d (%s): missing wire name", i, o.Name)
		case o.Type == "":
			return fmt.Errorf("%s: missing type", owner)
		}
		if err := claim(o.Wire, o.GoName(), owner); err != nil {
			return err
		}

		s := o.Support
		if s == nil {
			continue
		}
		if s.Kind != KindArray && s.Kind != KindScalar {
			return fmt.Errorf("%s: support kind %q, want %s or %s", owner, s.Kind, KindArray, KindScalar)
		}
		if want := osc.SupportName(o.Wire); s.Wire != want {
			return fmt.Errorf("%s: support wire name %q, want %q", owner, s.Wire, want)
		}
		if s.Type == "" {
			return fmt.Errorf("%s: missing support type", owner)
		}
		if err := claim(s.Wire, o.SupportGoName(), owner+" support"); err != nil {
			return err
		}
	}
	return nil
}

func isExportedIdent(s string) bool {
	if !token.IsIdentifier(s) {
		return false
	}
	return unicode.IsUpper([]rune(s)[0])
}
