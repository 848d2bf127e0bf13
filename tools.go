//go:build tools

package tools

// mockery pins the generator that writes pkg/osc/mocks. Run: mockery
// (from the module root) to regenerate them.
import (
	_ "github.com/vektra/mockery/v2"
)
