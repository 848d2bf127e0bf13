package theta

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theta-osc/osc-go/pkg/osc"
)

type commandCall struct {
	Name       string          `json:"name"`
	Parameters json.RawMessage `json:"parameters,omitempty"`
}

// fakeCamera answers /osc/commands/execute per command name and serves
// any other path with a fixed handler.
type fakeCamera struct {
	mu       sync.Mutex
	calls    []commandCall
	paths    []string
	commands map[string]http.HandlerFunc
	handlers map[string]http.HandlerFunc
}

func newFakeCamera() *fakeCamera {
	return &fakeCamera{
		commands: make(map[string]http.HandlerFunc),
		handlers: make(map[string]http.HandlerFunc),
	}
}

func (f *fakeCamera) command(name string, h http.HandlerFunc) { f.commands[name] = h }
func (f *fakeCamera) handle(path string, h http.HandlerFunc)  { f.handlers[path] = h }

func (f *fakeCamera) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.paths = append(f.paths, r.URL.Path)
	f.mu.Unlock()

	if r.URL.Path != osc.PathExecute {
		if h, ok := f.handlers[r.URL.Path]; ok {
			h(w, r)
			return
		}
		http.NotFound(w, r)
		return
	}

	body, _ := io.ReadAll(r.Body)
	var call commandCall
	if err := json.Unmarshal(body, &call); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	f.mu.Lock()
	f.calls = append(f.calls, call)
	h, ok := f.commands[call.Name]
	f.mu.Unlock()
	if !ok {
		answer(http.StatusBadRequest, `{"name":"`+call.Name+`","state":"error","error":{"code":"unknownCommand","message":"no such command"}}`)(w, r)
		return
	}
	h(w, r)
}

func (f *fakeCamera) lastCall(t *testing.T) commandCall {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.calls)
	return f.calls[len(f.calls)-1]
}

func (f *fakeCamera) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeCamera) pathCount(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, p := range f.paths {
		if p == path {
			n++
		}
	}
	return n
}

func answer(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json;charset=utf-8")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}
}

// minimalResults are the smallest valid results of commands that have
// any.
var minimalResults = map[string]string{
	"camera.startCapture":         `{"fileUrls":[]}`,
	"camera.stopCapture":          `{"fileUrls":[]}`,
	"camera.listFiles":            `{"entries":[],"totalEntries":0}`,
	"camera._getMetadata":         `{"exif":{},"xmp":{}}`,
	"camera._getMySetting":        `{"options":{}}`,
	"camera._convertVideoFormats": `{"fileUrl":"http://a/1_converted.MP4"}`,
	"camera._setBluetoothDevice":  `{"deviceName":"00100104"}`,
	"camera._listAccessPoints":    `{"accessPoints":[]}`,
	"camera._listPlugins":         `{"plugins":[]}`,
	"camera._getPluginOrders":     `{"pluginOrders":[]}`,
}

func done(name, results string) http.HandlerFunc {
	if results == "" {
		results = minimalResults[name]
	}
	if results == "" {
		return answer(http.StatusOK, `{"name":"`+name+`","state":"done"}`)
	}
	return answer(http.StatusOK, `{"name":"`+name+`","state":"done","results":`+results+`}`)
}

func newTestCamera(t *testing.T, fake *fakeCamera) *Camera {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	cam, err := New(Config{Endpoint: srv.URL, PollInterval: 5 * time.Millisecond})
	require.NoError(t, err)
	return cam
}

func TestConstructors(t *testing.T) {
	cam, err := NewDefault()
	require.NoError(t, err)
	assert.Equal(t, DefaultEndpoint, cam.Endpoint())

	cam, err = NewForPlugin()
	require.NoError(t, err)
	assert.Equal(t, PluginEndpoint, cam.Endpoint())

	cam, err = NewWithDigest("http://192.168.1.5", "THETAYL00100104", "00100104")
	require.NoError(t, err)
	assert.Equal(t, "http://192.168.1.5", cam.Endpoint())

	_, err = New(Config{Endpoint: "ftp://camera"})
	assert.ErrorIs(t, err, osc.ErrInvalidEndpoint)
}

func TestTakePictureAwait(t *testing.T) {
	fake := newFakeCamera()
	fake.command("camera.takePicture", answer(http.StatusOK,
		`{"name":"camera.takePicture","state":"inProgress","id":"7","progress":{"completion":0}}`))

	var mu sync.Mutex
	polls := 0
	fake.handle(osc.PathStatus, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		polls++
		n := polls
		mu.Unlock()
		if n < 2 {
			answer(http.StatusOK, `{"name":"camera.takePicture","state":"inProgress","id":"7","progress":{"completion":0.5}}`)(w, r)
			return
		}
		done("camera.takePicture", `{"fileUrl":"http://192.168.1.1/files/100RICOH/R0010015.JPG"}`)(w, r)
	})
	cam := newTestCamera(t, fake)

	resp, err := cam.TakePicture(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.InProgress())
	assert.Empty(t, fake.lastCall(t).Parameters)

	finished, err := Await(context.Background(), cam, resp)
	require.NoError(t, err)
	assert.True(t, finished.Done())
	assert.Equal(t, "http://192.168.1.1/files/100RICOH/R0010015.JPG", finished.Value().FileURL)
	assert.False(t, finished.Value().DNGFileURL.Valid())
	assert.Equal(t, 2, fake.pathCount(osc.PathStatus))
}

func TestCommandStatus(t *testing.T) {
	fake := newFakeCamera()
	fake.command("camera.startCapture", answer(http.StatusOK, `{"name":"camera.startCapture","state":"inProgress","id":"9"}`))
	fake.handle(osc.PathStatus, done("camera.startCapture", `{"fileUrls":["a","b"]}`))
	cam := newTestCamera(t, fake)

	resp, err := cam.StartCapture(context.Background(), StartCaptureInterval)
	require.NoError(t, err)
	assert.JSONEq(t, `{"_mode":"interval"}`, string(fake.lastCall(t).Parameters))

	next, err := CommandStatus(context.Background(), cam, resp)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, next.Value().FileURLs)
}

func TestStartCaptureWithoutModeSendsNoParameters(t *testing.T) {
	fake := newFakeCamera()
	fake.command("camera.startCapture", done("camera.startCapture", ""))
	cam := newTestCamera(t, fake)

	_, err := cam.StartCapture(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, fake.lastCall(t).Parameters)
}

func TestCaptureDoneWithoutResults(t *testing.T) {
	fake := newFakeCamera()
	fake.command("camera.startCapture", answer(http.StatusOK, `{"name":"camera.startCapture","state":"done"}`))
	fake.command("camera.stopCapture", answer(http.StatusOK, `{"name":"camera.stopCapture","state":"done"}`))
	cam := newTestCamera(t, fake)

	resp, err := cam.StartCapture(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, resp.Done())
	assert.Nil(t, resp.Result)

	resp, err = cam.StopCapture(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.Done())
	assert.Empty(t, resp.Value().FileURLs)
}

func TestCommandParameters(t *testing.T) {
	mode := CaptureModeImage
	tests := []struct {
		name    string
		command string
		call    func(ctx context.Context, cam *Camera) error
		want    string
	}{
		{
			name:    "list files",
			command: "camera.listFiles",
			call: func(ctx context.Context, cam *Camera) error {
				_, err := cam.ListFiles(ctx, DefaultListFilesParams())
				return err
			},
			want: `{"fileType":"all","entryCount":10,"maxThumbSize":0}`,
		},
		{
			name:    "delete",
			command: "camera.delete",
			call: func(ctx context.Context, cam *Camera) error {
				_, err := cam.Delete(ctx, "http://a/1.JPG", "http://a/2.JPG")
				return err
			},
			want: `{"fileUrls":["http://a/1.JPG","http://a/2.JPG"]}`,
		},
		{
			name:    "get metadata",
			command: "camera._getMetadata",
			call: func(ctx context.Context, cam *Camera) error {
				_, err := cam.GetMetadata(ctx, "http://a/1.JPG")
				return err
			},
			want: `{"fileUrl":"http://a/1.JPG"}`,
		},
		{
			name:    "get my setting",
			command: "camera._getMySetting",
			call: func(ctx context.Context, cam *Camera) error {
				_, err := cam.GetMySetting(ctx, mode, OptionISO, OptionShutterSpeed)
				return err
			},
			want: `{"mode":"image","optionNames":["iso","shutterSpeed"]}`,
		},
		{
			name:    "set my setting",
			command: "camera._setMySetting",
			call: func(ctx context.Context, cam *Camera) error {
				set, err := osc.BuildOptionSet(func(b *osc.OptionSetBuilder) { OptionISO.Put(b, 400) })
				if err != nil {
					return err
				}
				_, err = cam.SetMySetting(ctx, mode, set)
				return err
			},
			want: `{"mode":"image","options":{"iso":400}}`,
		},
		{
			name:    "delete my setting",
			command: "camera._deleteMySetting",
			call: func(ctx context.Context, cam *Camera) error {
				_, err := cam.DeleteMySetting(ctx, mode)
				return err
			},
			want: `{"mode":"image"}`,
		},
		{
			name:    "convert video",
			command: "camera._convertVideoFormats",
			call: func(ctx context.Context, cam *Camera) error {
				_, err := cam.ConvertVideoFormats(ctx, ConvertVideoFormatsParams{FileURL: "http://a/1.MP4", Size: ImageSize1920x960})
				return err
			},
			want: `{"fileUrl":"http://a/1.MP4","size":"1920x960"}`,
		},
		{
			name:    "bluetooth device",
			command: "camera._setBluetoothDevice",
			call: func(ctx context.Context, cam *Camera) error {
				_, err := cam.SetBluetoothDevice(ctx, "00000000-0000-0000-0000-000000000000")
				return err
			},
			want: `{"uuid":"00000000-0000-0000-0000-000000000000"}`,
		},
		{
			name:    "set access point",
			command: "camera._setAccessPoint",
			call: func(ctx context.Context, cam *Camera) error {
				_, err := cam.SetAccessPoint(ctx, AccessPoint{SSID: "home", Security: SecurityWPAWPA2PSK, Password: "secret"})
				return err
			},
			want: `{"ssid":"home","security":"WPA/WPA2 PSK","password":"secret"}`,
		},
		{
			name:    "delete access point",
			command: "camera._deleteAccessPoint",
			call: func(ctx context.Context, cam *Camera) error {
				_, err := cam.DeleteAccessPoint(ctx, "home")
				return err
			},
			want: `{"ssid":"home"}`,
		},
		{
			name:    "set plugin",
			command: "camera._setPlugin",
			call: func(ctx context.Context, cam *Camera) error {
				_, err := cam.SetPlugin(ctx, "com.example.plugin")
				return err
			},
			want: `{"packageName":"com.example.plugin","boot":true}`,
		},
		{
			name:    "plugin control",
			command: "camera._pluginControl",
			call: func(ctx context.Context, cam *Camera) error {
				_, err := cam.PluginControl(ctx, PluginBoot, "com.example.plugin")
				return err
			},
			want: `{"action":"boot","plugin":"com.example.plugin"}`,
		},
		{
			name:    "set plugin orders",
			command: "camera._setPluginOrders",
			call: func(ctx context.Context, cam *Camera) error {
				_, err := cam.SetPluginOrders(ctx, []string{"com.example.a", "", "com.example.b"})
				return err
			},
			want: `{"pluginOrders":["com.example.a","","com.example.b"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeCamera()
			fake.command(tt.command, done(tt.command, ""))
			cam := newTestCamera(t, fake)

			require.NoError(t, tt.call(context.Background(), cam))
			call := fake.lastCall(t)
			assert.Equal(t, tt.command, call.Name)
			assert.JSONEq(t, tt.want, string(call.Parameters))
		})
	}
}

func TestCommandsWithoutParameters(t *testing.T) {
	tests := []struct {
		command string
		call    func(ctx context.Context, cam *Camera) error
	}{
		{"camera.stopCapture", func(ctx context.Context, cam *Camera) error { _, err := cam.StopCapture(ctx); return err }},
		{"camera.reset", func(ctx context.Context, cam *Camera) error { _, err := cam.Reset(ctx); return err }},
		{"camera._finishWlan", func(ctx context.Context, cam *Camera) error { _, err := cam.FinishWlan(ctx); return err }},
		{"camera._stopSelfTimer", func(ctx context.Context, cam *Camera) error { _, err := cam.StopSelfTimer(ctx); return err }},
		{"camera._cancelVideoConvert", func(ctx context.Context, cam *Camera) error { _, err := cam.CancelVideoConvert(ctx); return err }},
		{"camera._listAccessPoints", func(ctx context.Context, cam *Camera) error { _, err := cam.ListAccessPoints(ctx); return err }},
		{"camera._listPlugins", func(ctx context.Context, cam *Camera) error { _, err := cam.ListPlugins(ctx); return err }},
		{"camera._getPluginOrders", func(ctx context.Context, cam *Camera) error { _, err := cam.GetPluginOrders(ctx); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			fake := newFakeCamera()
			fake.command(tt.command, done(tt.command, ""))
			cam := newTestCamera(t, fake)

			require.NoError(t, tt.call(context.Background(), cam))
			call := fake.lastCall(t)
			assert.Equal(t, tt.command, call.Name)
			assert.Empty(t, call.Parameters)
		})
	}
}

func TestUsageErrorsSendNothing(t *testing.T) {
	fake := newFakeCamera()
	cam := newTestCamera(t, fake)
	ctx := context.Background()

	_, err := cam.Delete(ctx)
	assert.ErrorIs(t, err, osc.ErrUsage)

	_, err = cam.GetMySetting(ctx, CaptureModeImage)
	assert.ErrorIs(t, err, osc.ErrUsage)

	_, err = cam.SetAccessPoint(ctx, AccessPoint{})
	assert.ErrorIs(t, err, osc.ErrUsage)

	params := DefaultListFilesParams()
	params.EntryCount = 0
	_, err = cam.ListFiles(ctx, params)
	assert.ErrorIs(t, err, osc.ErrUsage)

	_, err = cam.GetOptions(ctx)
	assert.ErrorIs(t, err, osc.ErrUsage)

	assert.Zero(t, fake.callCount())
}

func TestListFilesResult(t *testing.T) {
	fake := newFakeCamera()
	fake.command("camera.listFiles", done("camera.listFiles", `{
		"entries": [
			{"name":"R0010015.JPG","fileUrl":"http://a/R0010015.JPG","size":4051440,"dateTimeZone":"2015:07:10 11:05:18+09:00","isProcessed":true,"previewUrl":""},
			{"name":"R0010016.MP4","fileUrl":"http://a/R0010016.MP4","size":1024,"isProcessed":true,"previewUrl":"","_recordTime":12}
		],
		"totalEntries": 2
	}`))
	cam := newTestCamera(t, fake)

	resp, err := cam.ListFiles(context.Background(), DefaultListFilesParams())
	require.NoError(t, err)
	result := resp.Value()
	assert.Equal(t, 2, result.TotalEntries)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, 12, result.Entries[1].RecordTime)
}

func TestCameraErrorIsProtocolError(t *testing.T) {
	fake := newFakeCamera()
	fake.command("camera.takePicture", answer(http.StatusBadRequest,
		`{"name":"camera.takePicture","state":"error","error":{"code":"disabledCommand","message":"Command is currently disabled"}}`))
	cam := newTestCamera(t, fake)

	_, err := cam.TakePicture(context.Background())
	require.Error(t, err)
	assert.True(t, osc.IsErrorCode(err, osc.CodeDisabledCommand))
}

func TestInfoAndState(t *testing.T) {
	fake := newFakeCamera()
	fake.handle(osc.PathInfo, answer(http.StatusOK,
		`{"manufacturer":"RICOH","model":"RICOH THETA X","serialNumber":"1","firmwareVersion":"1.0","supportUrl":"","gps":true,"gyro":true,"uptime":1,"api":[],"endpoints":{"httpPort":80,"httpUpdatesPort":80},"apiLevel":[2]}`))
	fake.handle(osc.PathState, answer(http.StatusOK, `{"fingerprint":"FIG_0001","state":`+stateJSON+`}`))
	cam := newTestCamera(t, fake)

	info, err := cam.Info(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "RICOH THETA X", info.Model)

	st, err := cam.State(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "FIG_0001", st.Fingerprint)
	assert.Equal(t, CaptureStatusShooting, st.State.CaptureStatus)
}

func TestTypedOptionHelpers(t *testing.T) {
	fake := newFakeCamera()
	fake.command("camera.getOptions", done("camera.getOptions", `{"options":{"iso":400,"isoSupport":[0,100,200,400]}}`))
	fake.command("camera.setOptions", done("camera.setOptions", ""))
	cam := newTestCamera(t, fake)
	ctx := context.Background()

	iso, err := GetOption(ctx, cam, OptionISO)
	require.NoError(t, err)
	assert.Equal(t, ISO(400), iso)

	supported, err := GetArrayOption(ctx, cam, OptionISOSupport)
	require.NoError(t, err)
	assert.Equal(t, []ISO{ISOAuto, 100, 200, 400}, supported)

	require.NoError(t, SetOption(ctx, cam, OptionExposureProgram, ExposureProgramManual))
	assert.JSONEq(t, `{"options":{"exposureProgram":1}}`, string(fake.lastCall(t).Parameters))

	require.NoError(t, SetArrayOption(ctx, cam, OptionISOSupport, []ISO{100}))
	assert.JSONEq(t, `{"options":{"isoSupport":[100]}}`, string(fake.lastCall(t).Parameters))

	err = cam.SetOptionsFunc(ctx, func(b *osc.OptionSetBuilder) {
		OptionWhiteBalance.Put(b, WhiteBalance("purple"))
	})
	require.Error(t, err)
	assert.Equal(t, "camera.setOptions", fake.lastCall(t).Name)
	assert.Contains(t, string(fake.lastCall(t).Parameters), "isoSupport")
}
