package discovery

import (
	"context"
	"net"
	"sync"

	"github.com/enbility/zeroconf/v3"
)

// MDNSBrowser implements the Browser interface using zeroconf.
type MDNSBrowser struct {
	config BrowserConfig

	mu      sync.Mutex
	stopped bool
	cancels []context.CancelFunc
}

// NewMDNSBrowser creates a new mDNS browser.
func NewMDNSBrowser(config BrowserConfig) *MDNSBrowser {
	return &MDNSBrowser{config: config}
}

// Browse searches for OSC cameras.
// Services are aggregated by instance name - addresses from multiple interfaces
// are combined into a single entry. Removals are handled when interfaces disappear.
func (b *MDNSBrowser) Browse(ctx context.Context) (<-chan *CameraService, error) {
	b.mu.Lock()
	if b.stopped {
		b.mu.Unlock()
		return nil, ErrBrowserStopped
	}
	var cancel context.CancelFunc
	if _, hasDeadline := ctx.Deadline(); !hasDeadline && b.config.BrowseTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, b.config.BrowseTimeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	b.cancels = append(b.cancels, cancel)
	b.mu.Unlock()

	out := make(chan *CameraService)
	zcEntries := make(chan *zeroconf.ServiceEntry)
	zcRemoved := make(chan *zeroconf.ServiceEntry)
	entries := make(chan serviceEntry)
	removed := make(chan serviceEntry)

	go func() {
		defer close(entries)
		defer close(removed)
		for {
			select {
			case e, ok := <-zcEntries:
				if !ok {
					return
				}
				if !forward(ctx, entries, e) {
					return
				}
			case e, ok := <-zcRemoved:
				if !ok {
					zcRemoved = nil
					continue
				}
				if !forward(ctx, removed, e) {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		defer close(out)
		defer cancel()
		aggregate(ctx, entries, removed, out)
	}()

	opts := b.browserOptions()
	go func() {
		_ = zeroconf.Browse(ctx, ServiceTypeOSC, Domain, zcEntries, zcRemoved, opts...)
	}()

	return out, nil
}

func forward(ctx context.Context, ch chan<- serviceEntry, e *zeroconf.ServiceEntry) bool {
	select {
	case ch <- fromZeroconf(e):
		return true
	case <-ctx.Done():
		return false
	}
}

// Stop stops all active browsing operations. Later Browse calls fail.
func (b *MDNSBrowser) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopped = true
	for _, cancel := range b.cancels {
		cancel()
	}
	b.cancels = nil
}

// browserOptions returns zeroconf client options based on config.
func (b *MDNSBrowser) browserOptions() []zeroconf.ClientOption {
	var opts []zeroconf.ClientOption

	// Select specific interface if configured
	if b.config.Interface != "" {
		iface, err := net.InterfaceByName(b.config.Interface)
		if err == nil {
			opts = append(opts, zeroconf.SelectIfaces([]net.Interface{*iface}))
		}
	}

	return opts
}

// fromZeroconf converts a zeroconf entry, IPv4 addresses first.
func fromZeroconf(entry *zeroconf.ServiceEntry) serviceEntry {
	addrs := make([]string, 0, len(entry.AddrIPv4)+len(entry.AddrIPv6))
	for _, ip := range entry.AddrIPv4 {
		addrs = append(addrs, ip.String())
	}
	for _, ip := range entry.AddrIPv6 {
		addrs = append(addrs, ip.String())
	}

	return serviceEntry{
		Instance: entry.Instance,
		Host:     entry.HostName,
		Port:     uint16(entry.Port),
		Text:     entry.Text,
		Addrs:    addrs,
	}
}

// Ensure MDNSBrowser implements Browser interface.
var _ Browser = (*MDNSBrowser)(nil)
