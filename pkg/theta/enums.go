package theta

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/theta-osc/osc-go/pkg/osc"
)

func isJSONNull(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// decodeEnum decodes a JSON string into dst, rejecting values not in known.
// A JSON null leaves dst untouched.
func decodeEnum[T ~string](data []byte, dst *T, known []T, what string) error {
	if isJSONNull(data) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	if !slices.Contains(known, T(s)) {
		return fmt.Errorf("unknown %s %q", what, s)
	}
	*dst = T(s)
	return nil
}

func decodeIntEnum[T ~int](data []byte, dst *T, known []T, what string) error {
	if isJSONNull(data) {
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	if !slices.Contains(known, T(n)) {
		return fmt.Errorf("unknown %s %d", what, n)
	}
	*dst = T(n)
	return nil
}

// enumCodec validates on encode as well as on decode.
func enumCodec[T comparable](known []T) osc.Codec[T] { return osc.Enum(known...) }

// AIAutoThumbnail toggles AI-selected thumbnails.
type AIAutoThumbnail string

const (
	AIAutoThumbnailOn  AIAutoThumbnail = "ON"
	AIAutoThumbnailOff AIAutoThumbnail = "OFF"
)

var aiAutoThumbnails = []AIAutoThumbnail{AIAutoThumbnailOn, AIAutoThumbnailOff}

func (v *AIAutoThumbnail) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, aiAutoThumbnails, "ai auto thumbnail")
}

// Authentication selects the HTTP authentication of the camera web API.
type Authentication string

const (
	AuthenticationNone   Authentication = "none"
	AuthenticationDigest Authentication = "digest"
)

var authentications = []Authentication{AuthenticationNone, AuthenticationDigest}

func (v *Authentication) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, authentications, "authentication")
}

// Bitrate is the video quality preset.
type Bitrate string

const (
	BitrateAuto   Bitrate = "Auto"
	BitrateNormal Bitrate = "Normal"
	BitrateFine   Bitrate = "Fine"
)

var bitrates = []Bitrate{BitrateAuto, BitrateNormal, BitrateFine}

func (v *Bitrate) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, bitrates, "bitrate")
}

// BluetoothPower switches the Bluetooth radio.
type BluetoothPower string

const (
	BluetoothPowerOn  BluetoothPower = "ON"
	BluetoothPowerOff BluetoothPower = "OFF"
)

var bluetoothPowers = []BluetoothPower{BluetoothPowerOn, BluetoothPowerOff}

func (v *BluetoothPower) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, bluetoothPowers, "bluetooth power")
}

// BluetoothRole is the Bluetooth LE role of the camera.
type BluetoothRole string

const (
	BluetoothRoleCentral           BluetoothRole = "Central"
	BluetoothRolePeripheral        BluetoothRole = "Peripheral"
	BluetoothRoleCentralPeripheral BluetoothRole = "Central_Peripheral"
)

var bluetoothRoles = []BluetoothRole{BluetoothRoleCentral, BluetoothRolePeripheral, BluetoothRoleCentralPeripheral}

func (v *BluetoothRole) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, bluetoothRoles, "bluetooth role")
}

// CameraControlSource tells whether the body buttons or the app operate
// the camera.
type CameraControlSource string

const (
	CameraControlSourceCamera CameraControlSource = "camera"
	CameraControlSourceApp    CameraControlSource = "app"
)

var cameraControlSources = []CameraControlSource{CameraControlSourceCamera, CameraControlSourceApp}

func (v *CameraControlSource) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, cameraControlSources, "camera control source")
}

// CameraMode is the top level mode of the camera.
type CameraMode string

const (
	CameraModeCapture  CameraMode = "capture"
	CameraModePlayback CameraMode = "_playback"
	CameraModeSetting  CameraMode = "_setting"
	CameraModePlugin   CameraMode = "_plugin"
)

var cameraModes = []CameraMode{CameraModeCapture, CameraModePlayback, CameraModeSetting, CameraModePlugin}

func (v *CameraMode) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, cameraModes, "camera mode")
}

// CaptureMode selects still image, video or streaming capture.
type CaptureMode string

const (
	CaptureModeImage         CaptureMode = "image"
	CaptureModeVideo         CaptureMode = "video"
	CaptureModeInterval      CaptureMode = "interval"
	CaptureModeLiveStreaming CaptureMode = "_liveStreaming"
)

var captureModes = []CaptureMode{CaptureModeImage, CaptureModeVideo, CaptureModeInterval, CaptureModeLiveStreaming}

func (v *CaptureMode) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, captureModes, "capture mode")
}

// FaceDetect toggles face detection.
type FaceDetect string

const (
	FaceDetectOn  FaceDetect = "ON"
	FaceDetectOff FaceDetect = "OFF"
)

var faceDetects = []FaceDetect{FaceDetectOn, FaceDetectOff}

func (v *FaceDetect) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, faceDetects, "face detect")
}

// Filter is the image processing filter.
type Filter string

const (
	FilterOff            Filter = "off"
	FilterDRComp         Filter = "DR Comp"
	FilterNoiseReduction Filter = "Noise Reduction"
	FilterHDR            Filter = "hdr"
	FilterHandheldHDR    Filter = "Hh hdr"
)

var filters = []Filter{FilterOff, FilterDRComp, FilterNoiseReduction, FilterHDR, FilterHandheldHDR}

func (v *Filter) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, filters, "filter")
}

// Function is the shooting function.
type Function string

const (
	FunctionNormal    Function = "normal"
	FunctionSelfTimer Function = "selfTimer"
	FunctionMySetting Function = "mySetting"
)

var functions = []Function{FunctionNormal, FunctionSelfTimer, FunctionMySetting}

func (v *Function) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, functions, "function")
}

// GPSTagRecording toggles writing GPS data into files.
type GPSTagRecording string

const (
	GPSTagRecordingOn  GPSTagRecording = "on"
	GPSTagRecordingOff GPSTagRecording = "off"
)

var gpsTagRecordings = []GPSTagRecording{GPSTagRecordingOn, GPSTagRecordingOff}

func (v *GPSTagRecording) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, gpsTagRecordings, "gps tag recording")
}

// HDMIResolution is the HDMI output resolution.
type HDMIResolution string

const (
	HDMIResolutionAuto      HDMIResolution = "Auto"
	HDMIResolution1920x1080 HDMIResolution = "L"
	HDMIResolution1280x720  HDMIResolution = "M"
	HDMIResolution720x480   HDMIResolution = "S"
)

var hdmiResolutions = []HDMIResolution{HDMIResolutionAuto, HDMIResolution1920x1080, HDMIResolution1280x720, HDMIResolution720x480}

func (v *HDMIResolution) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, hdmiResolutions, "HDMI resolution")
}

// ImageStitching selects the stitching method for still images.
type ImageStitching string

const (
	ImageStitchingAuto        ImageStitching = "auto"
	ImageStitchingStatic      ImageStitching = "static"
	ImageStitchingDynamicAuto ImageStitching = "dynamicAuto"
	ImageStitchingDynamicSave ImageStitching = "dynamicSave"
	ImageStitchingDynamicLoad ImageStitching = "dynamicLoad"
	ImageStitchingNone        ImageStitching = "none"
)

var imageStitchings = []ImageStitching{
	ImageStitchingAuto, ImageStitchingStatic, ImageStitchingDynamicAuto,
	ImageStitchingDynamicSave, ImageStitchingDynamicLoad, ImageStitchingNone,
}

func (v *ImageStitching) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, imageStitchings, "image stitching")
}

// Microphone selects the microphone used for recording.
type Microphone string

const (
	MicrophoneAuto     Microphone = "Auto"
	MicrophoneInternal Microphone = "InternalMic"
	MicrophoneExternal Microphone = "ExternalMic"
)

var microphones = []Microphone{MicrophoneAuto, MicrophoneInternal, MicrophoneExternal}

func (v *Microphone) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, microphones, "microphone")
}

// MicrophoneChannel is the channel layout of the internal microphone.
type MicrophoneChannel string

const (
	MicrophoneChannel4_1 MicrophoneChannel = "4ch+1ch"
	MicrophoneChannel1   MicrophoneChannel = "1ch"
)

var microphoneChannels = []MicrophoneChannel{MicrophoneChannel4_1, MicrophoneChannel1}

func (v *MicrophoneChannel) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, microphoneChannels, "microphone channel")
}

// MicrophoneGain is the recording gain.
type MicrophoneGain string

const (
	MicrophoneGainNormal     MicrophoneGain = "normal"
	MicrophoneGainMegaVolume MicrophoneGain = "megavolume"
	MicrophoneGainMute       MicrophoneGain = "mute"
)

var microphoneGains = []MicrophoneGain{MicrophoneGainNormal, MicrophoneGainMegaVolume, MicrophoneGainMute}

func (v *MicrophoneGain) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, microphoneGains, "microphone gain")
}

// NetworkType is the wireless LAN role.
type NetworkType string

const (
	NetworkTypeOff         NetworkType = "OFF"
	NetworkTypeAccessPoint NetworkType = "AP"
	NetworkTypeClient      NetworkType = "CL"
)

var networkTypes = []NetworkType{NetworkTypeOff, NetworkTypeAccessPoint, NetworkTypeClient}

func (v *NetworkType) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, networkTypes, "network type")
}

// PowerSaving toggles the power saving mode.
type PowerSaving string

const (
	PowerSavingOn  PowerSaving = "ON"
	PowerSavingOff PowerSaving = "OFF"
)

var powerSavings = []PowerSaving{PowerSavingOn, PowerSavingOff}

func (v *PowerSaving) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, powerSavings, "power saving")
}

// ShootingMethod selects how a still capture sequence is taken.
type ShootingMethod string

const (
	ShootingMethodNormal        ShootingMethod = "normal"
	ShootingMethodInterval      ShootingMethod = "interval"
	ShootingMethodMoveInterval  ShootingMethod = "moveInterval"
	ShootingMethodFixedInterval ShootingMethod = "fixedInterval"
	ShootingMethodBracket       ShootingMethod = "bracket"
	ShootingMethodComposite     ShootingMethod = "composite"
	ShootingMethodContinuous    ShootingMethod = "continuous"
	ShootingMethodTimeShift     ShootingMethod = "timeShift"
)

var shootingMethods = []ShootingMethod{
	ShootingMethodNormal, ShootingMethodInterval, ShootingMethodMoveInterval, ShootingMethodFixedInterval,
	ShootingMethodBracket, ShootingMethodComposite, ShootingMethodContinuous, ShootingMethodTimeShift,
}

func (v *ShootingMethod) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, shootingMethods, "shooting method")
}

// TopBottomCorrection selects the leveling correction.
type TopBottomCorrection string

const (
	TopBottomCorrectionApply     TopBottomCorrection = "Apply"
	TopBottomCorrectionApplyAuto TopBottomCorrection = "ApplyAuto"
	TopBottomCorrectionApplySave TopBottomCorrection = "ApplySave"
	TopBottomCorrectionApplyLoad TopBottomCorrection = "ApplyLoad"
	TopBottomCorrectionDisapply  TopBottomCorrection = "Disapply"
)

var topBottomCorrections = []TopBottomCorrection{
	TopBottomCorrectionApply, TopBottomCorrectionApplyAuto, TopBottomCorrectionApplySave,
	TopBottomCorrectionApplyLoad, TopBottomCorrectionDisapply,
}

func (v *TopBottomCorrection) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, topBottomCorrections, "top bottom correction")
}

// VideoStitching selects where videos are stitched.
type VideoStitching string

const (
	VideoStitchingNone     VideoStitching = "none"
	VideoStitchingOnDevice VideoStitching = "ondevice"
)

var videoStitchings = []VideoStitching{VideoStitchingNone, VideoStitchingOnDevice}

func (v *VideoStitching) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, videoStitchings, "video stitching")
}

// VisibilityReduction hides the selfie stick in images.
type VisibilityReduction string

const (
	VisibilityReductionOn  VisibilityReduction = "ON"
	VisibilityReductionOff VisibilityReduction = "OFF"
)

var visibilityReductions = []VisibilityReduction{VisibilityReductionOn, VisibilityReductionOff}

func (v *VisibilityReduction) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, visibilityReductions, "visibility reduction")
}

// WhiteBalance is the white balance preset.
type WhiteBalance string

const (
	WhiteBalanceAuto                 WhiteBalance = "auto"
	WhiteBalanceDaylight             WhiteBalance = "daylight"
	WhiteBalanceShade                WhiteBalance = "shade"
	WhiteBalanceCloudyDaylight       WhiteBalance = "cloudy-daylight"
	WhiteBalanceIncandescent         WhiteBalance = "incandescent"
	WhiteBalanceWarmWhiteFluorescent WhiteBalance = "_warmWhiteFluorescent"
	WhiteBalanceDaylightFluorescent  WhiteBalance = "_dayLightFluorescent"
	WhiteBalanceDayWhiteFluorescent  WhiteBalance = "_dayWhiteFluorescent"
	WhiteBalanceFluorescent          WhiteBalance = "fluorescent"
	WhiteBalanceBulbFluorescent      WhiteBalance = "_bulbFluorescent"
	WhiteBalanceColorTemperature     WhiteBalance = "_colorTemperature"
)

var whiteBalances = []WhiteBalance{
	WhiteBalanceAuto, WhiteBalanceDaylight, WhiteBalanceShade, WhiteBalanceCloudyDaylight,
	WhiteBalanceIncandescent, WhiteBalanceWarmWhiteFluorescent, WhiteBalanceDaylightFluorescent,
	WhiteBalanceDayWhiteFluorescent, WhiteBalanceFluorescent, WhiteBalanceBulbFluorescent,
	WhiteBalanceColorTemperature,
}

func (v *WhiteBalance) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, whiteBalances, "white balance")
}

// Record and command enumerations.

// CaptureStatus is the capture activity reported in the state.
type CaptureStatus string

const (
	CaptureStatusIdle                        CaptureStatus = "idle"
	CaptureStatusShooting                    CaptureStatus = "shooting"
	CaptureStatusSelfTimerCountdown          CaptureStatus = "self-timer countdown"
	CaptureStatusBracketShooting             CaptureStatus = "bracket shooting"
	CaptureStatusConverting                  CaptureStatus = "converting"
	CaptureStatusTimeShiftShooting           CaptureStatus = "timeShift shooting"
	CaptureStatusContinuousShooting          CaptureStatus = "continuous shooting"
	CaptureStatusRetrospectiveImageRecording CaptureStatus = "retrospective image recording"
)

var captureStatuses = []CaptureStatus{
	CaptureStatusIdle, CaptureStatusShooting, CaptureStatusSelfTimerCountdown, CaptureStatusBracketShooting,
	CaptureStatusConverting, CaptureStatusTimeShiftShooting, CaptureStatusContinuousShooting,
	CaptureStatusRetrospectiveImageRecording,
}

func (v *CaptureStatus) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, captureStatuses, "capture status")
}

// BatteryState is the charging state.
type BatteryState string

const (
	BatteryStateDisconnect BatteryState = "disconnect"
	BatteryStateCharging   BatteryState = "charging"
	BatteryStateCharged    BatteryState = "charged"
)

var batteryStates = []BatteryState{BatteryStateDisconnect, BatteryStateCharging, BatteryStateCharged}

func (v *BatteryState) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, batteryStates, "battery state")
}

// StorageLocation is the active storage medium.
type StorageLocation string

const (
	StorageInternal StorageLocation = "IN"
	StorageSDCard   StorageLocation = "SD"
)

var storageLocations = []StorageLocation{StorageInternal, StorageSDCard}

func (v *StorageLocation) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, storageLocations, "storage location")
}

// StartCaptureMode is the _mode parameter of camera.startCapture.
type StartCaptureMode string

const (
	StartCaptureInterval  StartCaptureMode = "interval"
	StartCaptureComposite StartCaptureMode = "composite"
	StartCaptureBracket   StartCaptureMode = "bracket"
	StartCaptureTimeShift StartCaptureMode = "timeShift"
)

var startCaptureModes = []StartCaptureMode{StartCaptureInterval, StartCaptureComposite, StartCaptureBracket, StartCaptureTimeShift}

func (v *StartCaptureMode) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, startCaptureModes, "start capture mode")
}

// FileType filters camera.listFiles.
type FileType string

const (
	FileTypeAll   FileType = "all"
	FileTypeImage FileType = "image"
	FileTypeVideo FileType = "video"
)

var fileTypes = []FileType{FileTypeAll, FileTypeImage, FileTypeVideo}

func (v *FileType) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, fileTypes, "file type")
}

// SortOrder orders camera.listFiles entries.
type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
)

var sortOrders = []SortOrder{SortNewest, SortOldest}

func (v *SortOrder) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, sortOrders, "sort order")
}

// FormatType is the container of a FileFormat.
type FormatType string

const (
	FormatJPEG FormatType = "jpeg"
	FormatRAW  FormatType = "raw+"
	FormatMP4  FormatType = "mp4"
)

var formatTypes = []FormatType{FormatJPEG, FormatRAW, FormatMP4}

func (v *FormatType) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, formatTypes, "file format type")
}

// ProjectionType is the image projection of a file.
type ProjectionType string

const (
	ProjectionEquirectangular ProjectionType = "Equirectangular"
	ProjectionDualFisheye     ProjectionType = "Dual-Fisheye"
)

var projectionTypes = []ProjectionType{ProjectionEquirectangular, ProjectionDualFisheye}

func (v *ProjectionType) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, projectionTypes, "projection type")
}

// VideoCodec is the codec of a converted video.
type VideoCodec string

// VideoCodecH264 is the only codec the converter produces.
const VideoCodecH264 VideoCodec = "H.264/MPEG-4 AVC"

var videoCodecs = []VideoCodec{VideoCodecH264}

func (v *VideoCodec) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, videoCodecs, "video codec")
}

// ImageSize is the output size of camera._convertVideoFormats.
type ImageSize string

const (
	ImageSize3840x1920 ImageSize = "3840x1920"
	ImageSize1920x960  ImageSize = "1920x960"
)

var imageSizes = []ImageSize{ImageSize3840x1920, ImageSize1920x960}

func (v *ImageSize) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, imageSizes, "image size")
}

// Dimensions parses the size; ok is false for a malformed value.
func (v ImageSize) Dimensions() (width, height int, ok bool) {
	if _, err := fmt.Sscanf(string(v), "%dx%d", &width, &height); err != nil {
		return 0, 0, false
	}
	return width, height, true
}

// TopBottomCorrectionType is the leveling applied by video conversion.
type TopBottomCorrectionType string

const (
	CorrectionApply               TopBottomCorrectionType = "Apply"
	CorrectionApplyFixedDirection TopBottomCorrectionType = "ApplyFixedDirection"
	CorrectionDisapply            TopBottomCorrectionType = "Disapply"
)

var topBottomCorrectionTypes = []TopBottomCorrectionType{CorrectionApply, CorrectionApplyFixedDirection, CorrectionDisapply}

func (v *TopBottomCorrectionType) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, topBottomCorrectionTypes, "top bottom correction type")
}

// Security is the protection of a wireless access point.
type Security string

const (
	SecurityNone       Security = "none"
	SecurityWEP        Security = "WEP"
	SecurityWPAWPA2PSK Security = "WPA/WPA2 PSK"
)

var securities = []Security{SecurityNone, SecurityWEP, SecurityWPAWPA2PSK}

func (v *Security) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, securities, "security")
}

// IPAddressAllocation selects DHCP or a static address.
type IPAddressAllocation string

const (
	IPAddressDynamic IPAddressAllocation = "dynamic"
	IPAddressStatic  IPAddressAllocation = "static"
)

var ipAddressAllocations = []IPAddressAllocation{IPAddressDynamic, IPAddressStatic}

func (v *IPAddressAllocation) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, ipAddressAllocations, "ip address allocation")
}

// ShootingOrder selects which lens fires first in time shift shooting.
type ShootingOrder string

const (
	ShootingOrderFront ShootingOrder = "front"
	ShootingOrderRear  ShootingOrder = "rear"
)

var shootingOrders = []ShootingOrder{ShootingOrderFront, ShootingOrderRear}

func (v *ShootingOrder) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, shootingOrders, "shooting order")
}

// PluginType tells preinstalled plugins from user installed ones.
type PluginType string

const (
	PluginTypeSystem PluginType = "system"
	PluginTypeUser   PluginType = "user"
)

var pluginTypes = []PluginType{PluginTypeSystem, PluginTypeUser}

func (v *PluginType) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, pluginTypes, "plugin type")
}

// PluginAction starts or stops a plugin.
type PluginAction string

const (
	PluginBoot   PluginAction = "boot"
	PluginFinish PluginAction = "finish"
)

var pluginActions = []PluginAction{PluginBoot, PluginFinish}

func (v *PluginAction) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, v, pluginActions, "plugin action")
}
