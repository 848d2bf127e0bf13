package discovery

import (
	"context"
	"time"
)

// Browser provides mDNS service browsing capabilities.
type Browser interface {
	// Browse searches for OSC cameras. The channel delivers each camera
	// once, when it is first seen, and is closed when ctx is done or the
	// browser is stopped.
	Browse(ctx context.Context) (<-chan *CameraService, error)

	// Stop stops all active browsing operations.
	Stop()
}

// BrowserConfig configures browser behavior.
type BrowserConfig struct {
	// BrowseTimeout bounds Browse when ctx carries no deadline.
	// Zero means no extra bound. Default: 10 seconds.
	BrowseTimeout time.Duration

	// Interface specifies which network interface to use.
	// Empty string means all interfaces.
	Interface string
}

// DefaultBrowserConfig returns the default browser configuration.
func DefaultBrowserConfig() BrowserConfig {
	return BrowserConfig{
		BrowseTimeout: BrowseTimeout,
		Interface:     "",
	}
}

// serviceEntry is the part of a zeroconf entry the browser uses.
type serviceEntry struct {
	Instance string
	Host     string
	Port     uint16
	Text     []string
	Addrs    []string
}

func (e serviceEntry) toService() *CameraService {
	return &CameraService{
		InstanceName: e.Instance,
		Host:         e.Host,
		Port:         e.Port,
		Addresses:    append([]string(nil), e.Addrs...),
		TXT:          StringsToTXTRecords(e.Text),
	}
}

// aggregate tracks services by instance name and emits each new one on
// out. Addresses from later entries of the same instance are merged; a
// service whose addresses are all removed is forgotten and emitted again
// if it comes back. It returns when ctx is done or entries is closed.
func aggregate(ctx context.Context, entries, removed <-chan serviceEntry, out chan<- *CameraService) {
	services := make(map[string]*CameraService)

	for {
		select {
		case entry, ok := <-entries:
			if !ok {
				return
			}
			svc := entry.toService()
			existing, found := services[svc.InstanceName]
			if found {
				existing.Addresses = mergeAddresses(existing.Addresses, svc.Addresses)
				continue
			}
			services[svc.InstanceName] = svc
			select {
			case out <- svc.Clone():
			case <-ctx.Done():
				return
			}

		case entry, ok := <-removed:
			if !ok {
				removed = nil
				continue
			}
			if existing, found := services[entry.Instance]; found {
				existing.Addresses = removeAddresses(existing.Addresses, entry.Addrs)
				if len(existing.Addresses) == 0 {
					delete(services, entry.Instance)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}

// mergeAddresses adds new addresses to existing list, avoiding duplicates.
func mergeAddresses(existing, new []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, addr := range existing {
		seen[addr] = true
	}

	for _, addr := range new {
		if !seen[addr] {
			existing = append(existing, addr)
			seen[addr] = true
		}
	}
	return existing
}

// removeAddresses removes the given addresses from the list.
func removeAddresses(addresses, gone []string) []string {
	toRemove := make(map[string]bool, len(gone))
	for _, addr := range gone {
		toRemove[addr] = true
	}

	result := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		if !toRemove[addr] {
			result = append(result, addr)
		}
	}
	return result
}
