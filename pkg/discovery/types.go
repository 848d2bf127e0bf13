package discovery

import (
	"errors"
	"net"
	"strconv"
	"time"
)

// Service type constants for mDNS.
const (
	// ServiceTypeOSC is the service type announced by OSC cameras.
	ServiceTypeOSC = "_osc._tcp"

	// Domain is the mDNS domain.
	Domain = "local"

	// DefaultPort is the HTTP port of an OSC camera.
	DefaultPort = 80
)

// Timing constants.
const (
	// BrowseTimeout is the default time spent collecting announcements.
	BrowseTimeout = 10 * time.Second
)

// Errors.
var (
	// ErrNoAddress is returned when a service has no usable address.
	ErrNoAddress = errors.New("discovery: service has no address")

	// ErrBrowserStopped is returned by Browse after Stop.
	ErrBrowserStopped = errors.New("discovery: browser stopped")
)

// CameraService is one camera found via mDNS.
type CameraService struct {
	// InstanceName is the DNS-SD instance, e.g. "THETAYL00105377".
	InstanceName string

	// Host is the advertised host name.
	Host string

	// Port is the advertised HTTP port.
	Port uint16

	// Addresses are the IP addresses seen on all interfaces, IPv4 first.
	Addresses []string

	// TXT holds the announced TXT records.
	TXT TXTRecordMap
}

// Endpoint returns the camera base URL built from the first address, or
// the host name when no address is known.
func (s *CameraService) Endpoint() string {
	host := s.Host
	if len(s.Addresses) > 0 {
		host = s.Addresses[0]
	}
	if host == "" {
		return ""
	}
	port := s.Port
	if port == 0 {
		port = DefaultPort
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(int(port)))
}

// Clone returns a deep copy, so a consumer may keep it while the browser
// keeps merging addresses into its own copy.
func (s *CameraService) Clone() *CameraService {
	c := *s
	c.Addresses = append([]string(nil), s.Addresses...)
	if s.TXT != nil {
		c.TXT = make(TXTRecordMap, len(s.TXT))
		for k, v := range s.TXT {
			c.TXT[k] = v
		}
	}
	return &c
}
