package theta

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/icholy/digest"

	"github.com/theta-osc/osc-go/pkg/log"
	"github.com/theta-osc/osc-go/pkg/mjpeg"
	"github.com/theta-osc/osc-go/pkg/osc"
)

// Well-known endpoints.
const (
	// DefaultEndpoint is the camera address in access point mode.
	DefaultEndpoint = "http://192.168.1.1"

	// PluginEndpoint is the camera address seen from a plugin running on
	// the camera itself.
	PluginEndpoint = "http://127.0.0.1:8080"
)

// Config configures a Camera.
type Config struct {
	// Endpoint is the camera base URL. Default: DefaultEndpoint.
	Endpoint string

	// Username and Password enable digest authentication, used in client
	// mode. Both empty disables it.
	Username string
	Password string

	// PollInterval separates status polls. Default: osc.DefaultPollInterval.
	PollInterval time.Duration

	// HTTPClient overrides the JSON transport. When set, Username and
	// Password are not applied to it.
	HTTPClient osc.Doer

	// StreamHTTPClient overrides the live preview transport.
	StreamHTTPClient osc.Doer

	Logger         *slog.Logger
	ProtocolLogger log.Logger
	Metrics        *osc.Metrics
}

// DefaultConfig returns a Config for the access point address.
func DefaultConfig() Config {
	return Config{
		Endpoint:     DefaultEndpoint,
		PollInterval: osc.DefaultPollInterval,
	}
}

// Camera is a THETA camera reached over OSC.
type Camera struct {
	client *osc.Client
}

// New creates a camera from cfg.
func New(cfg Config) (*Camera, error) {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	occ := osc.Config{
		Endpoint:         cfg.Endpoint,
		HTTPClient:       cfg.HTTPClient,
		StreamHTTPClient: cfg.StreamHTTPClient,
		PollInterval:     cfg.PollInterval,
		Logger:           cfg.Logger,
		ProtocolLogger:   cfg.ProtocolLogger,
		Metrics:          cfg.Metrics,
	}
	if cfg.Username != "" || cfg.Password != "" {
		if occ.HTTPClient == nil {
			occ.HTTPClient = &http.Client{
				Timeout:   osc.DefaultRequestTimeout,
				Transport: digestTransport(cfg.Username, cfg.Password),
			}
		}
		if occ.StreamHTTPClient == nil {
			occ.StreamHTTPClient = &http.Client{
				Transport: digestTransport(cfg.Username, cfg.Password),
			}
		}
	}

	client, err := osc.NewClient(occ)
	if err != nil {
		return nil, err
	}
	return &Camera{client: client}, nil
}

func digestTransport(username, password string) *digest.Transport {
	return &digest.Transport{Username: username, Password: password}
}

// NewDefault creates a camera at DefaultEndpoint.
func NewDefault() (*Camera, error) { return New(DefaultConfig()) }

// NewForPlugin creates a camera at PluginEndpoint.
func NewForPlugin() (*Camera, error) {
	cfg := DefaultConfig()
	cfg.Endpoint = PluginEndpoint
	return New(cfg)
}

// NewWithDigest creates a camera that authenticates with HTTP digest, as
// required in client mode.
func NewWithDigest(endpoint, username, password string) (*Camera, error) {
	cfg := DefaultConfig()
	cfg.Endpoint = endpoint
	cfg.Username = username
	cfg.Password = password
	return New(cfg)
}

// NewFromClient wraps an existing protocol client.
func NewFromClient(client *osc.Client) *Camera { return &Camera{client: client} }

// Client returns the underlying protocol client.
func (c *Camera) Client() *osc.Client { return c.client }

// Endpoint returns the camera base URL.
func (c *Camera) Endpoint() string { return c.client.Endpoint() }

// Info fetches /osc/info.
func (c *Camera) Info(ctx context.Context) (Info, error) {
	return osc.Info[Info](ctx, c.client)
}

// State fetches /osc/state.
func (c *Camera) State(ctx context.Context) (osc.State[State], error) {
	return osc.FetchState[State](ctx, c.client)
}

// CheckForUpdates posts the last known state fingerprint.
func (c *Camera) CheckForUpdates(ctx context.Context, fingerprint string) (osc.Updates, error) {
	return c.client.CheckForUpdates(ctx, fingerprint)
}

// CommandStatus polls an in-progress command once.
func CommandStatus[R any](ctx context.Context, c *Camera, resp *osc.CommandResponse[R]) (*osc.CommandResponse[R], error) {
	return osc.PollStatus(ctx, c.client, resp)
}

// Await polls resp until it is no longer in progress.
func Await[R any](ctx context.Context, c *Camera, resp *osc.CommandResponse[R]) (*osc.CommandResponse[R], error) {
	return osc.Await(ctx, c.client, resp)
}

// GetOptions reads the named options.
func (c *Camera) GetOptions(ctx context.Context, opts ...osc.Named) (osc.OptionSet, error) {
	return c.client.GetOptions(ctx, opts...)
}

// SetOptions writes every option in set.
func (c *Camera) SetOptions(ctx context.Context, set osc.OptionSet) error {
	return c.client.SetOptions(ctx, set)
}

// SetOptionsFunc builds an option set with fn and writes it.
func (c *Camera) SetOptionsFunc(ctx context.Context, fn func(b *osc.OptionSetBuilder)) error {
	return c.client.SetOptionsFunc(ctx, fn)
}

// GetOption reads one scalar option.
func GetOption[T any](ctx context.Context, c *Camera, opt osc.Option[T]) (T, error) {
	return osc.GetOption(ctx, c.client, opt)
}

// GetArrayOption reads one array option.
func GetArrayOption[T any](ctx context.Context, c *Camera, opt osc.ArrayOption[T]) ([]T, error) {
	return osc.GetArrayOption(ctx, c.client, opt)
}

// SetOption writes one scalar option.
func SetOption[T any](ctx context.Context, c *Camera, opt osc.Option[T], v T) error {
	return osc.SetOption(ctx, c.client, opt, v)
}

// SetArrayOption writes one array option.
func SetArrayOption[T any](ctx context.Context, c *Camera, opt osc.ArrayOption[T], vs []T) error {
	return osc.SetArrayOption(ctx, c.client, opt, vs)
}

// TakePicture starts a still capture. The response is usually in progress.
func (c *Camera) TakePicture(ctx context.Context) (*osc.CommandResponse[TakePictureResult], error) {
	return osc.Execute(ctx, c.client, TakePictureCommand, osc.Unit{})
}

// StartCapture starts a video or interval capture. An empty mode sends no
// parameters and lets the capture mode option decide.
func (c *Camera) StartCapture(ctx context.Context, mode StartCaptureMode) (*osc.CommandResponse[CaptureResult], error) {
	var params *StartCaptureParams
	if mode != "" {
		params = &StartCaptureParams{Mode: mode}
	}
	return osc.Execute(ctx, c.client, StartCaptureCommand, params)
}

// StopCapture stops a running capture.
func (c *Camera) StopCapture(ctx context.Context) (*osc.CommandResponse[CaptureResult], error) {
	return osc.Execute(ctx, c.client, StopCaptureCommand, osc.Unit{})
}

// ListFiles lists stored files.
func (c *Camera) ListFiles(ctx context.Context, params ListFilesParams) (*osc.CommandResponse[ListFilesResult], error) {
	if params.EntryCount <= 0 {
		return nil, fmt.Errorf("%w: listFiles requires a positive entry count", osc.ErrUsage)
	}
	return osc.Execute(ctx, c.client, ListFilesCommand, params)
}

// Delete deletes files by URL. At least one URL is required.
func (c *Camera) Delete(ctx context.Context, fileURLs ...string) (*osc.CommandResponse[osc.Unit], error) {
	if len(fileURLs) == 0 {
		return nil, fmt.Errorf("%w: delete requires at least one file URL", osc.ErrUsage)
	}
	return osc.Execute(ctx, c.client, DeleteCommand, DeleteParams{FileURLs: fileURLs})
}

// GetMetadata reads the Exif and XMP metadata of a still image.
func (c *Camera) GetMetadata(ctx context.Context, fileURL string) (*osc.CommandResponse[Metadata], error) {
	return osc.Execute(ctx, c.client, GetMetadataCommand, GetMetadataParams{FileURL: fileURL})
}

// Reset restores the default settings.
func (c *Camera) Reset(ctx context.Context) (*osc.CommandResponse[osc.Unit], error) {
	return osc.Execute(ctx, c.client, ResetCommand, osc.Unit{})
}

// FinishWlan turns the wireless LAN off.
func (c *Camera) FinishWlan(ctx context.Context) (*osc.CommandResponse[osc.Unit], error) {
	return osc.Execute(ctx, c.client, FinishWlanCommand, osc.Unit{})
}

// GetMySetting reads stored "my setting" values for mode. At least one
// option is required.
func (c *Camera) GetMySetting(ctx context.Context, mode CaptureMode, opts ...osc.Named) (*osc.CommandResponse[osc.OptionsResult], error) {
	if len(opts) == 0 {
		return nil, fmt.Errorf("%w: getMySetting requires at least one option", osc.ErrUsage)
	}
	return osc.Execute(ctx, c.client, GetMySettingCommand, GetMySettingParams{
		Mode:        mode,
		OptionNames: osc.Names(opts...),
	})
}

// SetMySetting stores option values for mode.
func (c *Camera) SetMySetting(ctx context.Context, mode CaptureMode, set osc.OptionSet) (*osc.CommandResponse[osc.Unit], error) {
	return osc.Execute(ctx, c.client, SetMySettingCommand, SetMySettingParams{Mode: mode, Options: set})
}

// DeleteMySetting removes the stored values for mode.
func (c *Camera) DeleteMySetting(ctx context.Context, mode CaptureMode) (*osc.CommandResponse[osc.Unit], error) {
	return osc.Execute(ctx, c.client, DeleteMySettingCommand, DeleteMySettingParams{Mode: mode})
}

// StopSelfTimer cancels a running self-timer.
func (c *Camera) StopSelfTimer(ctx context.Context) (*osc.CommandResponse[osc.Unit], error) {
	return osc.Execute(ctx, c.client, StopSelfTimerCommand, osc.Unit{})
}

// ConvertVideoFormats transcodes a video file on the camera. Await the
// response for the converted file URL.
func (c *Camera) ConvertVideoFormats(ctx context.Context, params ConvertVideoFormatsParams) (*osc.CommandResponse[ConvertVideoFormatsResult], error) {
	return osc.Execute(ctx, c.client, ConvertVideoFormatsCommand, params)
}

// CancelVideoConvert stops a running ConvertVideoFormats.
func (c *Camera) CancelVideoConvert(ctx context.Context) (*osc.CommandResponse[osc.Unit], error) {
	return osc.Execute(ctx, c.client, CancelVideoConvertCommand, osc.Unit{})
}

// SetBluetoothDevice registers a Bluetooth peer and returns the camera's
// device name.
func (c *Camera) SetBluetoothDevice(ctx context.Context, uuid string) (*osc.CommandResponse[SetBluetoothDeviceResult], error) {
	return osc.Execute(ctx, c.client, SetBluetoothDeviceCommand, SetBluetoothDeviceParams{UUID: uuid})
}

// ListAccessPoints lists the access points stored for client mode.
func (c *Camera) ListAccessPoints(ctx context.Context) (*osc.CommandResponse[ListAccessPointsResult], error) {
	return osc.Execute(ctx, c.client, ListAccessPointsCommand, osc.Unit{})
}

// SetAccessPoint adds or replaces an access point used in client mode.
func (c *Camera) SetAccessPoint(ctx context.Context, ap AccessPoint) (*osc.CommandResponse[osc.Unit], error) {
	if err := ap.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", osc.ErrUsage, err)
	}
	return osc.Execute(ctx, c.client, SetAccessPointCommand, ap)
}

// DeleteAccessPoint removes the stored access point for ssid.
func (c *Camera) DeleteAccessPoint(ctx context.Context, ssid string) (*osc.CommandResponse[osc.Unit], error) {
	return osc.Execute(ctx, c.client, DeleteAccessPointCommand, DeleteAccessPointParams{SSID: ssid})
}

// ListPlugins lists the installed plugins.
func (c *Camera) ListPlugins(ctx context.Context) (*osc.CommandResponse[ListPluginsResult], error) {
	return osc.Execute(ctx, c.client, ListPluginsCommand, osc.Unit{})
}

// SetPlugin selects the plugin started by the mode button.
func (c *Camera) SetPlugin(ctx context.Context, packageName string) (*osc.CommandResponse[osc.Unit], error) {
	return osc.Execute(ctx, c.client, SetPluginCommand, SetPluginParams{PackageName: packageName, Boot: true})
}

// PluginControl boots or finishes a plugin. An empty packageName targets
// the selected plugin.
func (c *Camera) PluginControl(ctx context.Context, action PluginAction, packageName string) (*osc.CommandResponse[osc.Unit], error) {
	return osc.Execute(ctx, c.client, PluginControlCommand, PluginControlParams{Action: action, Plugin: packageName})
}

// GetPluginOrders returns the plugins assigned to the mode button slots.
func (c *Camera) GetPluginOrders(ctx context.Context) (*osc.CommandResponse[PluginOrders], error) {
	return osc.Execute(ctx, c.client, GetPluginOrdersCommand, osc.Unit{})
}

// SetPluginOrders assigns plugins to the mode button slots. An empty name
// clears a slot.
func (c *Camera) SetPluginOrders(ctx context.Context, packageNames []string) (*osc.CommandResponse[osc.Unit], error) {
	return osc.Execute(ctx, c.client, SetPluginOrdersCommand, PluginOrders{PluginOrders: packageNames})
}

// LivePreview opens the motion-JPEG preview. The caller closes the
// demuxer.
func (c *Camera) LivePreview(ctx context.Context) (*mjpeg.Demuxer, error) {
	return c.client.LivePreview(ctx)
}
