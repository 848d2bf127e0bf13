package theta

import (
	"github.com/theta-osc/osc-go/pkg/osc"
)

// TakePictureResult is the result of camera.takePicture.
type TakePictureResult struct {
	FileURL string `json:"fileUrl"`

	// DNGFileURL is set when RAW capture is enabled.
	DNGFileURL osc.OptionalURL `json:"_dngFileUrl"`
}

// StartCaptureParams is the parameter of camera.startCapture.
type StartCaptureParams struct {
	Mode StartCaptureMode `json:"_mode,omitempty"`
}

// CaptureResult is the result of camera.startCapture and
// camera.stopCapture.
type CaptureResult struct {
	FileURLs []string `json:"fileUrls"`
}

// ListFilesParams is the parameter of camera.listFiles.
type ListFilesParams struct {
	FileType      FileType  `json:"fileType"`
	StartPosition *int      `json:"startPosition,omitempty"`
	StartFileURL  string    `json:"_startFileUrl,omitempty"`
	EntryCount    int       `json:"entryCount"`
	MaxThumbSize  *int      `json:"maxThumbSize,omitempty"`
	Detail        *bool     `json:"_detail,omitempty"`
	Sort          SortOrder `json:"_sort,omitempty"`
}

// DefaultEntryCount is the page size of DefaultListFilesParams.
const DefaultEntryCount = 10

// DefaultListFilesParams lists the newest files of any type without
// thumbnails.
func DefaultListFilesParams() ListFilesParams {
	noThumb := 0
	return ListFilesParams{
		FileType:     FileTypeAll,
		EntryCount:   DefaultEntryCount,
		MaxThumbSize: &noThumb,
	}
}

// ListFilesResult is the result of camera.listFiles.
type ListFilesResult struct {
	Entries      []FileInfo `json:"entries"`
	TotalEntries int        `json:"totalEntries"`
}

// DeleteParams is the parameter of camera.delete.
type DeleteParams struct {
	FileURLs []string `json:"fileUrls"`
}

// GetMetadataParams is the parameter of camera._getMetadata.
type GetMetadataParams struct {
	FileURL string `json:"fileUrl"`
}

// GetMySettingParams is the parameter of camera._getMySetting.
type GetMySettingParams struct {
	Mode        CaptureMode `json:"mode"`
	OptionNames []string    `json:"optionNames"`
}

// SetMySettingParams is the parameter of camera._setMySetting.
type SetMySettingParams struct {
	Mode    CaptureMode   `json:"mode"`
	Options osc.OptionSet `json:"options"`
}

// DeleteMySettingParams is the parameter of camera._deleteMySetting.
type DeleteMySettingParams struct {
	Mode CaptureMode `json:"mode"`
}

// ConvertVideoFormatsParams is the parameter of camera._convertVideoFormats.
type ConvertVideoFormatsParams struct {
	FileURL             string                  `json:"fileUrl"`
	Size                ImageSize               `json:"size"`
	ProjectionType      ProjectionType          `json:"projectionType,omitempty"`
	Codec               VideoCodec              `json:"codec,omitempty"`
	TopBottomCorrection TopBottomCorrectionType `json:"topBottomCorrection,omitempty"`
}

// ConvertVideoFormatsResult is the result of camera._convertVideoFormats.
type ConvertVideoFormatsResult struct {
	FileURL string `json:"fileUrl"`
}

// SetBluetoothDeviceParams is the parameter of camera._setBluetoothDevice.
type SetBluetoothDeviceParams struct {
	UUID string `json:"uuid"`
}

// SetBluetoothDeviceResult is the result of camera._setBluetoothDevice.
type SetBluetoothDeviceResult struct {
	DeviceName string `json:"deviceName"`
}

// ListAccessPointsResult is the result of camera._listAccessPoints.
type ListAccessPointsResult struct {
	AccessPoints []AccessPoint `json:"accessPoints"`
}

// DeleteAccessPointParams is the parameter of camera._deleteAccessPoint.
type DeleteAccessPointParams struct {
	SSID string `json:"ssid"`
}

// ListPluginsResult is the result of camera._listPlugins.
type ListPluginsResult struct {
	Plugins []PluginInfo `json:"plugins"`
}

// SetPluginParams is the parameter of camera._setPlugin.
type SetPluginParams struct {
	PackageName string `json:"packageName"`
	Boot        bool   `json:"boot"`
}

// PluginControlParams is the parameter of camera._pluginControl.
type PluginControlParams struct {
	Action PluginAction `json:"action"`
	Plugin string       `json:"plugin,omitempty"`
}

// PluginOrders is the parameter of camera._setPluginOrders and the result
// of camera._getPluginOrders.
type PluginOrders struct {
	PluginOrders []string `json:"pluginOrders"`
}

// Standard OSC commands.
var (
	TakePictureCommand    = osc.NewCommand("camera.takePicture", osc.Void(), osc.JSON[TakePictureResult]())
	StartCaptureCommand   = osc.NewCommand("camera.startCapture", osc.JSON[*StartCaptureParams](), osc.JSON[CaptureResult]())
	StopCaptureCommand    = osc.NewCommand("camera.stopCapture", osc.Void(), osc.JSON[CaptureResult]())
	ListFilesCommand      = osc.NewCommand("camera.listFiles", osc.JSON[ListFilesParams](), osc.JSON[ListFilesResult]())
	DeleteCommand         = osc.NewCommand("camera.delete", osc.JSON[DeleteParams](), osc.Void())
	ResetCommand          = osc.NewCommand("camera.reset", osc.Void(), osc.Void())
	GetOptionsCommand     = osc.GetOptionsCommand
	SetOptionsCommand     = osc.SetOptionsCommand
	GetLivePreviewCommand = osc.LivePreviewCommand
)

// Vendor commands.
var (
	FinishWlanCommand          = osc.NewCommand("camera._finishWlan", osc.Void(), osc.Void())
	GetMetadataCommand         = osc.NewCommand("camera._getMetadata", osc.JSON[GetMetadataParams](), osc.JSON[Metadata]())
	GetMySettingCommand        = osc.NewCommand("camera._getMySetting", osc.JSON[GetMySettingParams](), osc.JSON[osc.OptionsResult]())
	SetMySettingCommand        = osc.NewCommand("camera._setMySetting", osc.JSON[SetMySettingParams](), osc.Void())
	DeleteMySettingCommand     = osc.NewCommand("camera._deleteMySetting", osc.JSON[DeleteMySettingParams](), osc.Void())
	StopSelfTimerCommand       = osc.NewCommand("camera._stopSelfTimer", osc.Void(), osc.Void())
	ConvertVideoFormatsCommand = osc.NewCommand("camera._convertVideoFormats", osc.JSON[ConvertVideoFormatsParams](), osc.JSON[ConvertVideoFormatsResult]())
	CancelVideoConvertCommand  = osc.NewCommand("camera._cancelVideoConvert", osc.Void(), osc.Void())
	SetBluetoothDeviceCommand  = osc.NewCommand("camera._setBluetoothDevice", osc.JSON[SetBluetoothDeviceParams](), osc.JSON[SetBluetoothDeviceResult]())
	ListAccessPointsCommand    = osc.NewCommand("camera._listAccessPoints", osc.Void(), osc.JSON[ListAccessPointsResult]())
	SetAccessPointCommand      = osc.NewCommand("camera._setAccessPoint", osc.JSON[AccessPoint](), osc.Void())
	DeleteAccessPointCommand   = osc.NewCommand("camera._deleteAccessPoint", osc.JSON[DeleteAccessPointParams](), osc.Void())
	ListPluginsCommand         = osc.NewCommand("camera._listPlugins", osc.Void(), osc.JSON[ListPluginsResult]())
	SetPluginCommand           = osc.NewCommand("camera._setPlugin", osc.JSON[SetPluginParams](), osc.Void())
	PluginControlCommand       = osc.NewCommand("camera._pluginControl", osc.JSON[PluginControlParams](), osc.Void())
	GetPluginOrdersCommand     = osc.NewCommand("camera._getPluginOrders", osc.Void(), osc.JSON[PluginOrders]())
	SetPluginOrdersCommand     = osc.NewCommand("camera._setPluginOrders", osc.JSON[PluginOrders](), osc.Void())
)

// CommandNames returns the wire names of every catalog command.
func CommandNames() []string {
	return []string{
		TakePictureCommand.Name(),
		StartCaptureCommand.Name(),
		StopCaptureCommand.Name(),
		ListFilesCommand.Name(),
		DeleteCommand.Name(),
		ResetCommand.Name(),
		GetOptionsCommand.Name(),
		SetOptionsCommand.Name(),
		GetLivePreviewCommand.Name(),
		FinishWlanCommand.Name(),
		GetMetadataCommand.Name(),
		GetMySettingCommand.Name(),
		SetMySettingCommand.Name(),
		DeleteMySettingCommand.Name(),
		StopSelfTimerCommand.Name(),
		ConvertVideoFormatsCommand.Name(),
		CancelVideoConvertCommand.Name(),
		SetBluetoothDeviceCommand.Name(),
		ListAccessPointsCommand.Name(),
		SetAccessPointCommand.Name(),
		DeleteAccessPointCommand.Name(),
		ListPluginsCommand.Name(),
		SetPluginCommand.Name(),
		PluginControlCommand.Name(),
		GetPluginOrdersCommand.Name(),
		SetPluginOrdersCommand.Name(),
	}
}
