package theta

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/theta-osc/osc-go/pkg/osc"
)

// requireFields fails unless data is an object holding every name.
func requireFields(data []byte, names ...string) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	for _, name := range names {
		if _, ok := doc[name]; !ok {
			return fmt.Errorf("missing %q", name)
		}
	}
	return nil
}

// State is the camera state returned by /osc/state.
type State struct {
	BatteryLevel                float64         `json:"batteryLevel"`
	StorageURI                  string          `json:"storageUri"`
	StorageID                   string          `json:"_storageID,omitempty"`
	CaptureStatus               CaptureStatus   `json:"_captureStatus"`
	RecordedTime                int             `json:"_recordedTime"`
	RecordableTime              int             `json:"_recordableTime"`
	CapturedPictures            int             `json:"_capturedPictures"`
	CompositeShootingElapsedSec *int            `json:"_compositeShootingElapsedTime,omitempty"`
	LatestFileURL               osc.OptionalURL `json:"_latestFileUrl"`
	BatteryState                BatteryState    `json:"_batteryState"`
	APIVersion                  APIVersion      `json:"_apiVersion"`
	PluginRunning               bool            `json:"_pluginRunning"`
	PluginWebServer             bool            `json:"_pluginWebServer"`
	Function                    Function        `json:"_function,omitempty"`
	MySettingChanged            *bool           `json:"_mySettingChanged,omitempty"`
	CurrentMicrophone           Microphone      `json:"_currentMicrophone,omitempty"`
	CurrentStorage              StorageLocation `json:"_currentStorage,omitempty"`
	CameraErrors                []CameraError   `json:"_cameraError"`
	BatteryInsert               *bool           `json:"_batteryInsert,omitempty"`
}

// UnmarshalJSON requires the fields every model reports.
func (s *State) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "batteryLevel", "storageUri", "_captureStatus", "_batteryState", "_apiVersion"); err != nil {
		return fmt.Errorf("state: %w", err)
	}
	type plain State
	return json.Unmarshal(data, (*plain)(s))
}

// Busy reports whether a capture or conversion is running.
func (s State) Busy() bool {
	return s.CaptureStatus != "" && s.CaptureStatus != CaptureStatusIdle
}

// Endpoints lists the ports of the camera web server.
type Endpoints struct {
	HTTPPort        int `json:"httpPort"`
	HTTPUpdatesPort int `json:"httpUpdatesPort"`
}

// Info is the device information returned by /osc/info.
type Info struct {
	Manufacturer        string       `json:"manufacturer"`
	Model               string       `json:"model"`
	SerialNumber        string       `json:"serialNumber"`
	WlanMacAddress      string       `json:"_wlanMacAddress,omitempty"`
	BluetoothMacAddress string       `json:"_bluetoothMacAddress,omitempty"`
	FirmwareVersion     string       `json:"firmwareVersion"`
	SupportURL          string       `json:"supportUrl"`
	GPS                 bool         `json:"gps"`
	Gyro                bool         `json:"gyro"`
	Uptime              int          `json:"uptime"`
	API                 []string     `json:"api"`
	Endpoints           Endpoints    `json:"endpoints"`
	APILevel            []APIVersion `json:"apiLevel"`
}

// UnmarshalJSON requires the identifying fields.
func (i *Info) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "manufacturer", "model", "firmwareVersion"); err != nil {
		return fmt.Errorf("info: %w", err)
	}
	type plain Info
	return json.Unmarshal(data, (*plain)(i))
}

// UptimeDuration returns Uptime as a duration.
func (i Info) UptimeDuration() time.Duration { return time.Duration(i.Uptime) * time.Second }

// SupportsAPILevel reports whether the camera lists v.
func (i Info) SupportsAPILevel(v APIVersion) bool {
	for _, level := range i.APILevel {
		if level == v {
			return true
		}
	}
	return false
}

// FileInfo is an entry of camera.listFiles.
type FileInfo struct {
	Name                     string          `json:"name,omitempty"`
	FileURL                  string          `json:"fileUrl"`
	Size                     int64           `json:"size"`
	DateTimeZone             *DateTimeZone   `json:"dateTimeZone,omitempty"`
	LocalTime                *DateTime       `json:"dateTime,omitempty"`
	Lat                      float64         `json:"lat,omitempty"`
	Lng                      float64         `json:"lng,omitempty"`
	Width                    int             `json:"width,omitempty"`
	Height                   int             `json:"height,omitempty"`
	Thumbnail                string          `json:"thumbnail,omitempty"`
	ThumbSize                int             `json:"_thumbSize,omitempty"`
	IntervalCaptureGroupID   string          `json:"_intervalCaptureGroupId,omitempty"`
	CompositeShootingGroupID string          `json:"_compositeShootingGroupId,omitempty"`
	AutoBracketGroupID       string          `json:"_autoBracketGroupId,omitempty"`
	RecordTime               int             `json:"_recordTime,omitempty"`
	IsProcessed              bool            `json:"isProcessed"`
	PreviewURL               osc.OptionalURL `json:"previewUrl"`
	Codec                    string          `json:"_codec,omitempty"`
	ProjectionType           *ProjectionType `json:"_projectionType,omitempty"`
}

// UnmarshalJSON requires fileUrl.
func (f *FileInfo) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "fileUrl"); err != nil {
		return fmt.Errorf("file info: %w", err)
	}
	type plain FileInfo
	return json.Unmarshal(data, (*plain)(f))
}

// DateTime returns the capture time. dateTimeZone wins over dateTime.
func (f FileInfo) DateTime() (time.Time, bool) {
	switch {
	case f.DateTimeZone != nil && !f.DateTimeZone.IsZero():
		return f.DateTimeZone.Time, true
	case f.LocalTime != nil && !f.LocalTime.IsZero():
		return f.LocalTime.Time, true
	default:
		return time.Time{}, false
	}
}

// Exif holds the EXIF tags of a still image. Integer tags arrive as
// floating point numbers.
type Exif struct {
	ExifVersion             string         `json:"ExifVersion,omitempty"`
	ImageDescription        string         `json:"ImageDescription,omitempty"`
	DateTime                *DateTime      `json:"DateTime,omitempty"`
	ImageWidth              osc.RoundedInt `json:"ImageWidth"`
	ImageLength             osc.RoundedInt `json:"ImageLength"`
	ColorSpace              osc.RoundedInt `json:"ColorSpace"`
	Compression             osc.RoundedInt `json:"Compression"`
	Orientation             osc.RoundedInt `json:"Orientation"`
	Flash                   osc.RoundedInt `json:"Flash"`
	FocalLength             *float64       `json:"FocalLength,omitempty"`
	WhiteBalance            osc.RoundedInt `json:"WhiteBalance"`
	ExposureTime            *float64       `json:"ExposureTime,omitempty"`
	FNumber                 *float64       `json:"FNumber,omitempty"`
	ExposureProgram         osc.RoundedInt `json:"ExposureProgram"`
	PhotographicSensitivity osc.RoundedInt `json:"PhotographicSensitivity"`
	ApertureValue           *float64       `json:"ApertureValue,omitempty"`
	BrightnessValue         *float64       `json:"BrightnessValue,omitempty"`
	ExposureBiasValue       *float64       `json:"ExposureBiasValue,omitempty"`
	GPSLatitudeRef          string         `json:"GPSLatitudeRef,omitempty"`
	GPSLatitude             *float64       `json:"GPSLatitude,omitempty"`
	GPSLongitudeRef         string         `json:"GPSLongitudeRef,omitempty"`
	GPSLongitude            *float64       `json:"GPSLongitude,omitempty"`
	Make                    string         `json:"Make,omitempty"`
	Model                   string         `json:"Model,omitempty"`
	Software                string         `json:"Software,omitempty"`
	Copyright               string         `json:"Copyright,omitempty"`
}

// XMP holds the photo sphere XMP tags of a still image.
type XMP struct {
	ProjectionType               string  `json:"ProjectionType"`
	UsePanoramaViewer            bool    `json:"UsePanoramaViewer"`
	PoseHeadingDegrees           float64 `json:"PoseHeadingDegrees"`
	CroppedAreaImageWidthPixels  int     `json:"CroppedAreaImageWidthPixels"`
	CroppedAreaImageHeightPixels int     `json:"CroppedAreaImageHeightPixels"`
	FullPanoWidthPixels          int     `json:"FullPanoWidthPixels"`
	FullPanoHeightPixels         int     `json:"FullPanoHeightPixels"`
	CroppedAreaLeftPixels        int     `json:"CroppedAreaLeftPixels"`
	CroppedAreaTopPixels         int     `json:"CroppedAreaTopPixels"`
}

// Metadata is the result of camera._getMetadata. XMP is nil when the
// camera sent an empty object.
type Metadata struct {
	Exif Exif `json:"exif"`
	XMP  *XMP `json:"xmp"`
}

// UnmarshalJSON requires exif and treats an empty xmp object as absent.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	var doc struct {
		Exif *Exif          `json:"exif"`
		XMP  map[string]any `json:"xmp"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc.Exif == nil {
		return errors.New(`metadata: missing "exif"`)
	}
	m.Exif = *doc.Exif
	m.XMP = nil
	if len(doc.XMP) == 0 {
		return nil
	}
	var raw struct {
		XMP XMP `json:"xmp"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("metadata xmp: %w", err)
	}
	m.XMP = &raw.XMP
	return nil
}

// AccessPoint is a wireless LAN the camera joins in client mode.
type AccessPoint struct {
	SSID                string              `json:"ssid"`
	Security            Security            `json:"security,omitempty"`
	IsStealth           *bool               `json:"isStealth,omitempty"`
	Password            string              `json:"password,omitempty"`
	ConnectionPriority  *int                `json:"connectionPriority,omitempty"`
	IPAddressAllocation IPAddressAllocation `json:"ipAddressAllocation,omitempty"`
	IPAddress           string              `json:"ipAddress,omitempty"`
	SubnetMask          string              `json:"subnetMask,omitempty"`
	DefaultGateway      string              `json:"defaultGateway,omitempty"`
}

// Validate requires the SSID.
func (a AccessPoint) Validate() error {
	if a.SSID == "" {
		return errors.New(`access point: missing "ssid"`)
	}
	return nil
}

// FileFormat is a still or video output format.
type FileFormat struct {
	Type      FormatType `json:"type"`
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	Framerate *int       `json:"_framerate,omitempty"`
	Codec     VideoCodec `json:"_codec,omitempty"`
}

// Validate requires the type and a size.
func (f FileFormat) Validate() error {
	if f.Type == "" {
		return errors.New(`file format: missing "type"`)
	}
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("file format: invalid size %dx%d", f.Width, f.Height)
	}
	return nil
}

func (f FileFormat) String() string {
	s := fmt.Sprintf("%s %dx%d", f.Type, f.Width, f.Height)
	if f.Framerate != nil {
		s += fmt.Sprintf(" %dfps", *f.Framerate)
	}
	return s
}

func framerate(n int) *int { return &n }

// Well-known file formats.
var (
	FileFormatJPEG11008x5504 = FileFormat{Type: FormatJPEG, Width: 11008, Height: 5504}
	FileFormatJPEG6720x3360  = FileFormat{Type: FormatJPEG, Width: 6720, Height: 3360}
	FileFormatJPEG5504x2752  = FileFormat{Type: FormatJPEG, Width: 5504, Height: 2752}
	FileFormatJPEG5376x2688  = FileFormat{Type: FormatJPEG, Width: 5376, Height: 2688}
	FileFormatJPEG2048x1024  = FileFormat{Type: FormatJPEG, Width: 2048, Height: 1024}
	FileFormatRAW6720x3360   = FileFormat{Type: FormatRAW, Width: 6720, Height: 3360}

	FileFormatMP47680x3840At10 = FileFormat{Type: FormatMP4, Width: 7680, Height: 3840, Framerate: framerate(10), Codec: VideoCodecH264}
	FileFormatMP45760x2880At30 = FileFormat{Type: FormatMP4, Width: 5760, Height: 2880, Framerate: framerate(30), Codec: VideoCodecH264}
	FileFormatMP43840x1920At60 = FileFormat{Type: FormatMP4, Width: 3840, Height: 1920, Framerate: framerate(60), Codec: VideoCodecH264}
	FileFormatMP43840x1920At30 = FileFormat{Type: FormatMP4, Width: 3840, Height: 1920, Framerate: framerate(30), Codec: VideoCodecH264}
	FileFormatMP41920x960At60  = FileFormat{Type: FormatMP4, Width: 1920, Height: 960, Framerate: framerate(60), Codec: VideoCodecH264}
	FileFormatMP41920x960At30  = FileFormat{Type: FormatMP4, Width: 1920, Height: 960, Framerate: framerate(30), Codec: VideoCodecH264}
	FileFormatMP43840x1920     = FileFormat{Type: FormatMP4, Width: 3840, Height: 1920, Codec: VideoCodecH264}
	FileFormatMP41920x960      = FileFormat{Type: FormatMP4, Width: 1920, Height: 960, Codec: VideoCodecH264}
	FileFormatMP41920x1080     = FileFormat{Type: FormatMP4, Width: 1920, Height: 1080}
	FileFormatMP41280x720      = FileFormat{Type: FormatMP4, Width: 1280, Height: 720}
)

// PreviewFormat is the size and frame rate of the live preview.
type PreviewFormat struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	Framerate int `json:"framerate"`
}

// Validate requires a size and a frame rate.
func (p PreviewFormat) Validate() error {
	if p.Width <= 0 || p.Height <= 0 || p.Framerate <= 0 {
		return fmt.Errorf("preview format: invalid %dx%d@%d", p.Width, p.Height, p.Framerate)
	}
	return nil
}

func (p PreviewFormat) String() string {
	return fmt.Sprintf("%dx%d@%dfps", p.Width, p.Height, p.Framerate)
}

// Well-known preview formats.
var (
	PreviewFormat1920x960At8  = PreviewFormat{Width: 1920, Height: 960, Framerate: 8}
	PreviewFormat1024x512At30 = PreviewFormat{Width: 1024, Height: 512, Framerate: 30}
	PreviewFormat1024x512At8  = PreviewFormat{Width: 1024, Height: 512, Framerate: 8}
	PreviewFormat640x320At30  = PreviewFormat{Width: 640, Height: 320, Framerate: 30}
	PreviewFormat640x320At10  = PreviewFormat{Width: 640, Height: 320, Framerate: 10}
	PreviewFormat640x320At8   = PreviewFormat{Width: 640, Height: 320, Framerate: 8}
)

// GpsInfo is the position written into captured files. The camera uses
// 65535 for both coordinates when no position is set.
type GpsInfo struct {
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	Altitude     float64 `json:"_altitude"`
	DateTimeZone string  `json:"_dateTimeZone"`
	Datum        string  `json:"_datum"`
}

// NoPosition is the coordinate value meaning "unset".
const NoPosition = 65535

// HasPosition reports whether a position is set.
func (g GpsInfo) HasPosition() bool { return g.Lat != NoPosition && g.Lng != NoPosition }

// TimeShift configures time shift shooting.
type TimeShift struct {
	FirstShooting  ShootingOrder `json:"firstShooting"`
	FirstInterval  int           `json:"firstInterval"`
	SecondInterval int           `json:"secondInterval"`
}

// TopBottomCorrectionRotation is a manual leveling angle in degrees.
type TopBottomCorrectionRotation struct {
	Pitch float64 `json:"pitch"`
	Roll  float64 `json:"roll"`
	Yaw   float64 `json:"yaw"`
}

// PluginInfo describes an installed plugin.
type PluginInfo struct {
	PluginName  string     `json:"pluginName"`
	PackageName string     `json:"packageName"`
	Version     string     `json:"version"`
	Type        PluginType `json:"type"`
	Running     bool       `json:"running"`
	Foreground  bool       `json:"foreground"`
	Boot        bool       `json:"boot"`
	WebServer   bool       `json:"webServer"`
	ExitStatus  string     `json:"exitStatus,omitempty"`
	Message     string     `json:"message,omitempty"`
}

// Validate requires the package name.
func (p PluginInfo) Validate() error {
	if p.PackageName == "" {
		return errors.New(`plugin info: missing "packageName"`)
	}
	return nil
}
