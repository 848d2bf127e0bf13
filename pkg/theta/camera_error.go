package theta

// CameraError is an entry of the _cameraError state list. Codes the
// firmware adds later are kept as received.
type CameraError string

// Known camera error codes.
const (
	ErrorNotSupportedFileSystem  CameraError = "0x00000040"
	ErrorMediaNotReady           CameraError = "0x00000100"
	ErrorNotEnoughBattery        CameraError = "0x00000200"
	ErrorInvalidFile             CameraError = "0x00000400"
	ErrorPluginBoot              CameraError = "0x00000800"
	ErrorInProgress              CameraError = "0x00001000"
	ErrorBatteryHighTemperature  CameraError = "0x00200000"
	ErrorCaptureHWFailed         CameraError = "0x00400000"
	ErrorCaptureSWFailed         CameraError = "0x00800000"
	ErrorCantUseThisCard         CameraError = "0x01000000"
	ErrorFormatInternalMem       CameraError = "0x02000000"
	ErrorFormatCard              CameraError = "0x04000000"
	ErrorInternalMemAccessFailed CameraError = "0x08000000"
	ErrorCardAccessFailed        CameraError = "0x10000000"
	ErrorUnexpected              CameraError = "0x20000000"
	ErrorBatteryChargeFailed     CameraError = "0x40000000"
	ErrorHighTemperature         CameraError = "0x80000000"
)

var cameraErrorNames = map[CameraError]string{
	ErrorNotSupportedFileSystem:  "NOT_SUPPORTED_FILE_SYSTEM",
	ErrorMediaNotReady:           "MEDIA_NOT_READY",
	ErrorNotEnoughBattery:        "NOT_ENOUGH_BATTERY",
	ErrorInvalidFile:             "INVALID_FILE",
	ErrorPluginBoot:              "PLUGIN_BOOT_ERROR",
	ErrorInProgress:              "IN_PROGRESS_ERROR",
	ErrorBatteryHighTemperature:  "BATTERY_HIGH_TEMPERATURE",
	ErrorCaptureHWFailed:         "CAPTURE_HW_FAILED",
	ErrorCaptureSWFailed:         "CAPTURE_SW_FAILED",
	ErrorCantUseThisCard:         "CANT_USE_THIS_CARD",
	ErrorFormatInternalMem:       "FORMAT_INTERNAL_MEM",
	ErrorFormatCard:              "FORMAT_CARD",
	ErrorInternalMemAccessFailed: "INTERNAL_MEM_ACCESS_FAIL",
	ErrorCardAccessFailed:        "CARD_ACCESS_FAIL",
	ErrorUnexpected:              "UNEXPECTED_ERROR",
	ErrorBatteryChargeFailed:     "BATTERY_CHARGE_FAIL",
	ErrorHighTemperature:         "HIGH_TEMPERATURE",
}

// Known reports whether e is one of the documented codes.
func (e CameraError) Known() bool {
	_, ok := cameraErrorNames[e]
	return ok
}

// Name returns the symbolic name, or the raw code when unknown.
func (e CameraError) Name() string {
	if name, ok := cameraErrorNames[e]; ok {
		return name
	}
	return string(e)
}

func (e CameraError) String() string { return e.Name() }
