package theta

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"time"
)

// Aperture is an F-number. AUTO (0) lets the camera choose.
type Aperture float64

// ApertureAuto selects the aperture automatically.
const ApertureAuto Aperture = 0

// Apertures found on THETA lenses.
const (
	Aperture2_0 Aperture = 2.0
	Aperture2_1 Aperture = 2.1
	Aperture2_4 Aperture = 2.4
	Aperture3_5 Aperture = 3.5
	Aperture5_6 Aperture = 5.6
)

func (a Aperture) String() string {
	if a == ApertureAuto {
		return "Auto"
	}
	return "F" + formatDecimal(float64(a))
}

// ISO is a sensitivity value. AUTO (0) lets the camera choose.
type ISO int

// ISOAuto selects the sensitivity automatically.
const ISOAuto ISO = 0

func (i ISO) String() string { return "ISO" + strconv.Itoa(int(i)) }

// ShutterSpeed is an exposure time in seconds. AUTO (0) lets the camera
// choose.
type ShutterSpeed float64

// ShutterSpeedAuto selects the exposure time automatically.
const ShutterSpeedAuto ShutterSpeed = 0

// String renders exposures of one second or more as seconds ("1.3") and
// shorter ones as a reciprocal ("1/100"). Numbers above 200 round to the
// tens place, smaller ones to one decimal with a trailing ".0" removed.
func (s ShutterSpeed) String() string {
	v := float64(s)
	if v == 0 {
		return "Auto"
	}
	if v >= 1 {
		return roundSpeed(v)
	}
	return "1/" + roundSpeed(1/v)
}

func roundSpeed(v float64) string {
	if v > 200 {
		return strconv.FormatFloat(roundHalfUp(v, -1), 'f', 0, 64)
	}
	return formatDecimal(roundHalfUp(v, 1))
}

// roundHalfUp rounds positive v to scale decimal places (tens for -1),
// with ties going up. The tie is decided on the exact binary value of v,
// so 1.15, stored as 1.1499999..., rounds to 1.1.
func roundHalfUp(v float64, scale int) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	r := new(big.Rat).SetFloat64(v)
	pow := new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs(scale))), nil))
	if scale >= 0 {
		r.Mul(r, pow)
	} else {
		r.Quo(r, pow)
	}
	r.Add(r, big.NewRat(1, 2))
	n := new(big.Rat).SetInt(new(big.Int).Quo(r.Num(), r.Denom()))
	if scale >= 0 {
		n.Quo(n, pow)
	} else {
		n.Mul(n, pow)
	}
	f, _ := n.Float64()
	return f
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// formatDecimal prints v with the fewest digits that identify it, so 2
// prints as "2" and 2.5 as "2.5".
func formatDecimal(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// ExposureCompensation is a bias in EV steps.
type ExposureCompensation float64

func (e ExposureCompensation) String() string {
	sign := ""
	if e > 0 {
		sign = "+"
	}
	return sign + formatDecimal(float64(e)) + "EV"
}

// WlanFrequency is the wireless LAN band in GHz.
type WlanFrequency float64

// Wireless LAN bands.
const (
	WlanFrequency2_4 WlanFrequency = 2.4
	WlanFrequency5   WlanFrequency = 5
)

var wlanFrequencies = []WlanFrequency{WlanFrequency2_4, WlanFrequency5}

// WlanFrequencies returns the known bands.
func WlanFrequencies() []WlanFrequency { return append([]WlanFrequency(nil), wlanFrequencies...) }

func (f WlanFrequency) String() string {
	return formatDecimal(roundHalfUp(float64(f), 1)) + "GHz"
}

// UnmarshalJSON accepts only the known bands.
func (f *WlanFrequency) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("wlan frequency: %w", err)
	}
	for _, known := range wlanFrequencies {
		if WlanFrequency(v) == known {
			*f = known
			return nil
		}
	}
	return fmt.Errorf("unknown wlan frequency %v", v)
}

// WlanChannel is a 2.4GHz channel. Zero leaves the choice to the camera.
type WlanChannel int

// Wireless LAN channels.
const (
	WlanChannelAny WlanChannel = 0
	WlanChannel1   WlanChannel = 1
	WlanChannel6   WlanChannel = 6
	WlanChannel11  WlanChannel = 11
)

// ExposureProgram selects which exposure parameters the user controls.
type ExposureProgram int

// Exposure programs.
const (
	ExposureProgramManual       ExposureProgram = 1
	ExposureProgramAuto         ExposureProgram = 2
	ExposureProgramAperture     ExposureProgram = 3
	ExposureProgramShutterSpeed ExposureProgram = 4
	ExposureProgramISO          ExposureProgram = 9
)

var exposurePrograms = []ExposureProgram{
	ExposureProgramManual,
	ExposureProgramAuto,
	ExposureProgramAperture,
	ExposureProgramShutterSpeed,
	ExposureProgramISO,
}

// ExposurePrograms returns the known exposure programs.
func ExposurePrograms() []ExposureProgram {
	return append([]ExposureProgram(nil), exposurePrograms...)
}

func (p ExposureProgram) String() string {
	switch p {
	case ExposureProgramManual:
		return "MANUAL"
	case ExposureProgramAuto:
		return "AUTO"
	case ExposureProgramAperture:
		return "APERTURE"
	case ExposureProgramShutterSpeed:
		return "SHUTTER_SPEED"
	case ExposureProgramISO:
		return "ISO_SPEED"
	default:
		return "UNKNOWN"
	}
}

// UnmarshalJSON accepts only the known programs.
func (p *ExposureProgram) UnmarshalJSON(data []byte) error {
	return decodeIntEnum(data, p, exposurePrograms, "exposure program")
}

// APIVersion is the OSC API level.
type APIVersion int

// API levels.
const (
	APIVersion2_0 APIVersion = 1
	APIVersion2_1 APIVersion = 2
)

var apiVersions = []APIVersion{APIVersion2_0, APIVersion2_1}

func (v APIVersion) String() string {
	switch v {
	case APIVersion2_0:
		return "v2.0"
	case APIVersion2_1:
		return "v2.1"
	default:
		return "UNKNOWN"
	}
}

// UnmarshalJSON accepts only the known levels.
func (v *APIVersion) UnmarshalJSON(data []byte) error {
	return decodeIntEnum(data, v, apiVersions, "api version")
}

// Date and time layouts used by the camera.
const (
	dateTimeZoneLayout = "2006:01:02 15:04:05-07:00"
	dateTimeLayout     = "2006:01:02 15:04:05"
)

// DateTimeZone is a timestamp with offset, "2022:02:26 19:27:44+09:00".
type DateTimeZone struct {
	time.Time
}

// NewDateTimeZone wraps t. Sub-second precision is not transmitted.
func NewDateTimeZone(t time.Time) DateTimeZone { return DateTimeZone{Time: t} }

func (d DateTimeZone) String() string { return d.Format(dateTimeZoneLayout) }

// MarshalJSON encodes the camera layout.
func (d DateTimeZone) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateTimeZoneLayout))
}

// UnmarshalJSON parses the camera layout.
func (d *DateTimeZone) UnmarshalJSON(data []byte) error {
	t, err := parseTime(data, dateTimeZoneLayout, time.UTC)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// DateTime is a local timestamp without offset, "2022:02:26 19:27:44".
// It is parsed in UTC.
type DateTime struct {
	time.Time
}

func (d DateTime) String() string { return d.Format(dateTimeLayout) }

// MarshalJSON encodes the camera layout.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateTimeLayout))
}

// UnmarshalJSON parses the camera layout.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	t, err := parseTime(data, dateTimeLayout, time.UTC)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func parseTime(data []byte, layout string, loc *time.Location) (time.Time, error) {
	if isJSONNull(data) {
		return time.Time{}, nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return time.Time{}, err
	}
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(layout, s, loc)
}
