package theta

//go:generate go run ../../cmd/osc-optgen -table options.yaml -output options_gen.go -package theta

import (
	"sync"

	"github.com/theta-osc/osc-go/pkg/osc"
)

// AllOptions returns every option of the catalog, each base option
// followed by its support option.
func AllOptions() []osc.Named {
	return append([]osc.Named(nil), allOptions...)
}

// OptionNames returns the wire names of AllOptions.
func OptionNames() []string { return osc.Names(allOptions...) }

var (
	byWireOnce sync.Once
	byWire     map[string]osc.Named
)

// LookupOption finds a catalog option by wire name.
func LookupOption(name string) (osc.Named, bool) {
	byWireOnce.Do(func() {
		byWire = make(map[string]osc.Named, len(allOptions))
		for _, o := range allOptions {
			byWire[o.Name()] = o
		}
	})
	o, ok := byWire[name]
	return o, ok
}
