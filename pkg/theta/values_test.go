package theta

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutterSpeedString(t *testing.T) {
	tests := []struct {
		speed ShutterSpeed
		want  string
	}{
		{ShutterSpeedAuto, "Auto"},
		{1.0, "1"},
		{0.01, "1/100"},
		{0.5, "1/2"},
		{0.00004, "1/25000"},
		{0.0000625, "1/16000"},
		{0.00007812, "1/12800"},
		{0.003, "1/330"},
		{0.01666666, "1/60"},
		{0.4, "1/2.5"},
		{0.625, "1/1.6"},
		{0.76923076, "1/1.3"},
		{1.3, "1.3"},
		{2.5, "2.5"},
		{60, "60"},
		{1.25, "1.3"},
		{1.15, "1.1"},
		{1.05, "1.1"},
		{0.8, "1/1.3"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.speed.String())
		})
	}
}

func TestValueStrings(t *testing.T) {
	tests := []struct {
		name string
		v    interface{ String() string }
		want string
	}{
		{"aperture auto", ApertureAuto, "Auto"},
		{"aperture", Aperture2_1, "F2.1"},
		{"aperture whole", Aperture2_0, "F2"},
		{"iso", ISO(400), "ISO400"},
		{"compensation positive", ExposureCompensation(0.3), "+0.3EV"},
		{"compensation zero", ExposureCompensation(0), "0EV"},
		{"compensation negative", ExposureCompensation(-1.7), "-1.7EV"},
		{"wlan 2.4", WlanFrequency2_4, "2.4GHz"},
		{"wlan 5", WlanFrequency5, "5GHz"},
		{"exposure program", ExposureProgramShutterSpeed, "SHUTTER_SPEED"},
		{"api version", APIVersion2_1, "v2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestWlanFrequencyDecode(t *testing.T) {
	var f WlanFrequency
	require.NoError(t, json.Unmarshal([]byte(`5`), &f))
	assert.Equal(t, WlanFrequency5, f)

	require.NoError(t, json.Unmarshal([]byte(`2.4`), &f))
	assert.Equal(t, WlanFrequency2_4, f)

	assert.Error(t, json.Unmarshal([]byte(`6`), &f))
	assert.Error(t, json.Unmarshal([]byte(`"5"`), &f))
}

func TestExposureProgramDecode(t *testing.T) {
	var p ExposureProgram
	require.NoError(t, json.Unmarshal([]byte(`9`), &p))
	assert.Equal(t, ExposureProgramISO, p)

	err := json.Unmarshal([]byte(`5`), &p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown exposure program 5")
	assert.Len(t, ExposurePrograms(), 5)
}

func TestDateTimeZone(t *testing.T) {
	var d DateTimeZone
	require.NoError(t, json.Unmarshal([]byte(`"2022:02:26 19:27:44+09:00"`), &d))

	want := time.Date(2022, 2, 26, 10, 27, 44, 0, time.UTC)
	assert.True(t, want.Equal(d.Time), "got %v", d.Time)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2022:02:26 19:27:44+09:00"`, string(data))

	assert.Error(t, json.Unmarshal([]byte(`"2022-02-26T19:27:44Z"`), &d))
}

func TestDateTime(t *testing.T) {
	var d DateTime
	require.NoError(t, json.Unmarshal([]byte(`"2022:02:26 19:27:44"`), &d))
	assert.Equal(t, time.Date(2022, 2, 26, 19, 27, 44, 0, time.UTC), d.Time)
	assert.Equal(t, "2022:02:26 19:27:44", d.String())
}

func TestDateTimeEmpty(t *testing.T) {
	var d DateTimeZone
	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.IsZero())
}
