// Command osc-optgen generates the typed option catalog from an option
// table.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

func main() {
	tablePath := flag.String("table", "", "Path to the option table YAML")
	output := flag.String("output", "", "Output path for the generated Go file")
	pkg := flag.String("package", "", "Package name (overrides the table)")
	flag.Parse()

	if *tablePath == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "Usage: osc-optgen -table <options.yaml> -output <options_gen.go> [-package <name>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*tablePath, *output, *pkg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(tablePath, output, pkg string) error {
	table, err := LoadTable(tablePath)
	if err != nil {
		return err
	}
	if pkg != "" {
		table.Package = pkg
	}

	code, err := Generate(table, filepath.Base(tablePath))
	if err != nil {
		return err
	}
	if err := writeFormatted(output, code); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	fmt.Printf("  generated %s (%d options)\n", output, len(table.Options))
	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
