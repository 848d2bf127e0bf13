package discovery

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAggregate(t *testing.T) (entries, removed chan serviceEntry, out chan *CameraService, cancel context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	entries = make(chan serviceEntry)
	removed = make(chan serviceEntry)
	out = make(chan *CameraService, 8)
	done := make(chan struct{})
	go func() {
		defer close(done)
		aggregate(ctx, entries, removed, out)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return entries, removed, out, cancel
}

func receive(t *testing.T, out <-chan *CameraService) *CameraService {
	t.Helper()
	select {
	case svc := <-out:
		return svc
	case <-time.After(time.Second):
		t.Fatal("no service emitted")
		return nil
	}
}

func assertNothing(t *testing.T, out <-chan *CameraService) {
	t.Helper()
	select {
	case svc := <-out:
		t.Fatalf("unexpected service %+v", svc)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestAggregateMergesInterfaces(t *testing.T) {
	entries, _, out, _ := runAggregate(t)

	entries <- serviceEntry{
		Instance: "THETAYL00105377",
		Host:     "thetayl00105377.local.",
		Port:     80,
		Text:     []string{"model=RICOH THETA X"},
		Addrs:    []string{"192.168.1.1"},
	}
	svc := receive(t, out)
	assert.Equal(t, "THETAYL00105377", svc.InstanceName)
	assert.Equal(t, []string{"192.168.1.1"}, svc.Addresses)
	assert.Equal(t, "RICOH THETA X", svc.TXT["model"])

	// Second interface: merged, not emitted again.
	entries <- serviceEntry{Instance: "THETAYL00105377", Addrs: []string{"fe80::1", "192.168.1.1"}}
	assertNothing(t, out)

	// The emitted copy is not mutated by later merges.
	assert.Equal(t, []string{"192.168.1.1"}, svc.Addresses)
}

func TestAggregateForgetsServiceWithoutAddresses(t *testing.T) {
	entries, removed, out, _ := runAggregate(t)

	entries <- serviceEntry{Instance: "cam", Addrs: []string{"10.0.0.2", "10.0.0.3"}}
	receive(t, out)

	removed <- serviceEntry{Instance: "cam", Addrs: []string{"10.0.0.2"}}
	entries <- serviceEntry{Instance: "cam", Addrs: []string{"10.0.0.2"}}
	assertNothing(t, out)

	removed <- serviceEntry{Instance: "cam", Addrs: []string{"10.0.0.2", "10.0.0.3"}}
	entries <- serviceEntry{Instance: "cam", Addrs: []string{"10.0.0.4"}}
	svc := receive(t, out)
	assert.Equal(t, []string{"10.0.0.4"}, svc.Addresses)
}

func TestAggregateStopsWhenEntriesClose(t *testing.T) {
	entries := make(chan serviceEntry)
	removed := make(chan serviceEntry)
	out := make(chan *CameraService)
	done := make(chan struct{})
	go func() {
		defer close(done)
		aggregate(context.Background(), entries, removed, out)
	}()

	close(removed)
	close(entries)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("aggregate did not return")
	}
}

func TestMergeAndRemoveAddresses(t *testing.T) {
	merged := mergeAddresses([]string{"a", "b"}, []string{"b", "c"})
	assert.Equal(t, []string{"a", "b", "c"}, merged)

	assert.Equal(t, []string{"a"}, removeAddresses(merged, []string{"b", "c", "x"}))
	assert.Empty(t, removeAddresses([]string{"a"}, []string{"a"}))
}

func TestMDNSBrowserStop(t *testing.T) {
	b := NewMDNSBrowser(DefaultBrowserConfig())
	b.Stop()

	_, err := b.Browse(context.Background())
	require.ErrorIs(t, err, ErrBrowserStopped)
}
