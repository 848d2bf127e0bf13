package theta

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theta-osc/osc-go/pkg/osc"
)

const stateJSON = `{
	"batteryLevel": 0.8,
	"storageUri": "http://192.168.1.1/files/abcde/",
	"_captureStatus": "shooting",
	"_recordedTime": 0,
	"_recordableTime": 0,
	"_capturedPictures": 3,
	"_latestFileUrl": "",
	"_batteryState": "charging",
	"_apiVersion": 2,
	"_pluginRunning": false,
	"_pluginWebServer": true,
	"_function": "selfTimer",
	"_currentStorage": "SD",
	"_cameraError": ["0x00000200", "0x00000003"]
}`

func TestStateDecode(t *testing.T) {
	var s State
	require.NoError(t, json.Unmarshal([]byte(stateJSON), &s))

	assert.InDelta(t, 0.8, s.BatteryLevel, 1e-9)
	assert.Equal(t, CaptureStatusShooting, s.CaptureStatus)
	assert.Equal(t, BatteryStateCharging, s.BatteryState)
	assert.Equal(t, APIVersion2_1, s.APIVersion)
	assert.Equal(t, StorageSDCard, s.CurrentStorage)
	assert.Equal(t, FunctionSelfTimer, s.Function)
	assert.False(t, s.LatestFileURL.Valid())
	assert.True(t, s.Busy())

	require.Len(t, s.CameraErrors, 2)
	assert.Equal(t, "NOT_ENOUGH_BATTERY", s.CameraErrors[0].Name())
	assert.True(t, s.CameraErrors[0].Known())
	assert.Equal(t, "0x00000003", s.CameraErrors[1].Name())
	assert.False(t, s.CameraErrors[1].Known())
}

func TestStateDecodeRejects(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"missing capture status", `{"batteryLevel":1,"storageUri":"","_batteryState":"charged","_apiVersion":2}`},
		{"unknown capture status", `{"batteryLevel":1,"storageUri":"","_captureStatus":"dancing","_batteryState":"charged","_apiVersion":2}`},
		{"unknown api version", `{"batteryLevel":1,"storageUri":"","_captureStatus":"idle","_batteryState":"charged","_apiVersion":7}`},
		{"not an object", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s State
			assert.Error(t, json.Unmarshal([]byte(tt.json), &s))
		})
	}
}

func TestEnumDecode(t *testing.T) {
	var f Filter
	require.NoError(t, json.Unmarshal([]byte(`"Noise Reduction"`), &f))
	assert.Equal(t, FilterNoiseReduction, f)

	err := json.Unmarshal([]byte(`"sepia"`), &f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"sepia"`)

	var m CaptureMode
	require.NoError(t, json.Unmarshal([]byte(`"_liveStreaming"`), &m))
	assert.Equal(t, CaptureModeLiveStreaming, m)
	assert.Error(t, json.Unmarshal([]byte(`"Image"`), &m))
}

func TestEnumCodecRejectsUnknownOnEncode(t *testing.T) {
	_, err := OptionWhiteBalance.Codec().Encode(WhiteBalance("purple"))
	assert.Error(t, err)

	raw, err := OptionWhiteBalance.Codec().Encode(WhiteBalanceAuto)
	require.NoError(t, err)
	assert.JSONEq(t, `"auto"`, string(raw))
}

func TestInfoDecode(t *testing.T) {
	data := `{
		"manufacturer": "RICOH",
		"model": "RICOH THETA Z1",
		"serialNumber": "10010104",
		"_wlanMacAddress": "58:38:79:12:34:5a",
		"firmwareVersion": "2.10.3",
		"supportUrl": "https://theta360.com/en/support/",
		"gps": false,
		"gyro": true,
		"uptime": 67,
		"api": ["/osc/info", "/osc/state"],
		"endpoints": {"httpPort": 80, "httpUpdatesPort": 80},
		"apiLevel": [1, 2]
	}`
	var info Info
	require.NoError(t, json.Unmarshal([]byte(data), &info))

	assert.Equal(t, "RICOH THETA Z1", info.Model)
	assert.Equal(t, 67*time.Second, info.UptimeDuration())
	assert.Equal(t, 80, info.Endpoints.HTTPPort)
	assert.True(t, info.SupportsAPILevel(APIVersion2_1))

	assert.Error(t, json.Unmarshal([]byte(`{"manufacturer":"RICOH","model":"X"}`), &info))
}

func TestFileInfoDecode(t *testing.T) {
	data := `{
		"name": "R0010015.JPG",
		"fileUrl": "http://192.168.1.1/files/150100525831424d42075b53ce68c300/100RICOH/R0010015.JPG",
		"size": 4051440,
		"dateTimeZone": "2015:07:10 11:05:18+09:00",
		"width": 5376,
		"height": 2688,
		"isProcessed": true,
		"previewUrl": "",
		"_projectionType": "Equirectangular"
	}`
	var f FileInfo
	require.NoError(t, json.Unmarshal([]byte(data), &f))

	assert.Equal(t, int64(4051440), f.Size)
	assert.False(t, f.PreviewURL.Valid())
	require.NotNil(t, f.ProjectionType)
	assert.Equal(t, ProjectionEquirectangular, *f.ProjectionType)

	ts, ok := f.DateTime()
	require.True(t, ok)
	assert.True(t, time.Date(2015, 7, 10, 2, 5, 18, 0, time.UTC).Equal(ts))

	var missing FileInfo
	assert.Error(t, json.Unmarshal([]byte(`{"name":"x"}`), &missing))
}

func TestFileInfoLocalTime(t *testing.T) {
	var f FileInfo
	require.NoError(t, json.Unmarshal([]byte(`{"fileUrl":"u","dateTime":"2015:07:10 11:05:18","isProcessed":true,"previewUrl":""}`), &f))

	ts, ok := f.DateTime()
	require.True(t, ok)
	assert.Equal(t, time.Date(2015, 7, 10, 11, 5, 18, 0, time.UTC), ts)

	var none FileInfo
	require.NoError(t, json.Unmarshal([]byte(`{"fileUrl":"u"}`), &none))
	_, ok = none.DateTime()
	assert.False(t, ok)
}

func TestMetadataDecode(t *testing.T) {
	t.Run("with xmp", func(t *testing.T) {
		var m Metadata
		require.NoError(t, json.Unmarshal([]byte(`{
			"exif": {"ImageWidth": 5376.0, "ImageLength": 2688.0, "FNumber": 2.0, "ExposureProgram": 2.0},
			"xmp": {"ProjectionType": "equirectangular", "FullPanoWidthPixels": 5376}
		}`), &m))
		assert.Equal(t, osc.RoundedInt(5376), m.Exif.ImageWidth)
		assert.Equal(t, osc.RoundedInt(2), m.Exif.ExposureProgram)
		require.NotNil(t, m.Exif.FNumber)
		assert.InDelta(t, 2.0, *m.Exif.FNumber, 1e-9)
		require.NotNil(t, m.XMP)
		assert.Equal(t, 5376, m.XMP.FullPanoWidthPixels)
	})

	t.Run("empty xmp is absent", func(t *testing.T) {
		var m Metadata
		require.NoError(t, json.Unmarshal([]byte(`{"exif": {"ImageWidth": 1.0}, "xmp": {}}`), &m))
		assert.Nil(t, m.XMP)
	})

	t.Run("missing exif", func(t *testing.T) {
		var m Metadata
		assert.Error(t, json.Unmarshal([]byte(`{"xmp": {}}`), &m))
	})
}

func TestRecordValidation(t *testing.T) {
	tests := []struct {
		name  string
		codec func([]byte) error
		json  string
		ok    bool
	}{
		{"access point", decodeWith[AccessPoint], `{"ssid":"home","security":"WPA/WPA2 PSK"}`, true},
		{"access point without ssid", decodeWith[AccessPoint], `{"security":"none"}`, false},
		{"access point unknown security", decodeWith[AccessPoint], `{"ssid":"x","security":"WPA3"}`, false},
		{"plugin", decodeWith[PluginInfo], `{"pluginName":"p","packageName":"com.example.p","version":"1.0","type":"user","running":false,"foreground":false,"boot":true,"webServer":false,"exitStatus":"success","message":""}`, true},
		{"plugin without package", decodeWith[PluginInfo], `{"pluginName":"p"}`, false},
		{"capture interval range", decodeWith[CaptureIntervalSupport], `{"minInterval":6,"maxInterval":3600}`, true},
		{"capture interval inverted", decodeWith[CaptureIntervalSupport], `{"minInterval":3600,"maxInterval":6}`, false},
		{"file format", decodeWith[FileFormat], `{"type":"jpeg","width":5376,"height":2688}`, true},
		{"file format unknown type", decodeWith[FileFormat], `{"type":"png","width":1,"height":1}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.codec([]byte(tt.json))
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func decodeWith[T any](data []byte) error {
	_, err := osc.JSON[T]().Decode(data)
	return err
}

func TestGpsInfoHasPosition(t *testing.T) {
	assert.True(t, GpsInfo{Lat: 35.68, Lng: 139.76}.HasPosition())
	assert.False(t, GpsInfo{Lat: NoPosition, Lng: NoPosition}.HasPosition())
}

func TestAutoBracket(t *testing.T) {
	iso := ISO(100)
	speed := ShutterSpeed(0.01)
	ab, err := NewAutoBracket(
		BracketParameter{ISO: &iso, ShutterSpeed: &speed},
		BracketParameter{ISO: &iso},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, ab.Len())

	data, err := json.Marshal(ab)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"_bracketNumber": 2,
		"_bracketParameters": [{"iso": 100, "shutterSpeed": 0.01}, {"iso": 100}]
	}`, string(data))

	var back AutoBracket
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, ab.Parameters(), back.Parameters())
}

func TestAutoBracketRequiresParameters(t *testing.T) {
	_, err := NewAutoBracket()
	assert.ErrorIs(t, err, osc.ErrUsage)

	_, err = json.Marshal(AutoBracket{})
	assert.ErrorIs(t, err, osc.ErrUsage)

	var ab AutoBracket
	assert.Error(t, json.Unmarshal([]byte(`{"_bracketNumber":0,"_bracketParameters":[]}`), &ab))
}
