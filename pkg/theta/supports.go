package theta

import "fmt"

func checkRange[T int | float64](what string, lo, hi T) error {
	if lo > hi {
		return fmt.Errorf("%s: minimum %v above maximum %v", what, lo, hi)
	}
	return nil
}

// BracketNumberSupport is the range of _bracketNumber.
type BracketNumberSupport struct {
	MinNumber int `json:"minNumber"`
	MaxNumber int `json:"maxNumber"`
	StepSize  int `json:"stepSize"`
}

func (s BracketNumberSupport) Validate() error {
	return checkRange("bracket number support", s.MinNumber, s.MaxNumber)
}

// CaptureIntervalSupport is the range of captureInterval in seconds.
type CaptureIntervalSupport struct {
	MinInterval int `json:"minInterval"`
	MaxInterval int `json:"maxInterval"`
}

func (s CaptureIntervalSupport) Validate() error {
	return checkRange("capture interval support", s.MinInterval, s.MaxInterval)
}

// CaptureNumberSupport is the range of captureNumber. Limitless is the
// value meaning "until stopped".
type CaptureNumberSupport struct {
	Limitless int `json:"_limitless"`
	MinNumber int `json:"minNumber"`
	MaxNumber int `json:"maxNumber"`
}

func (s CaptureNumberSupport) Validate() error {
	return checkRange("capture number support", s.MinNumber, s.MaxNumber)
}

// ColorTemperatureSupport is the range of _colorTemperature in kelvin.
type ColorTemperatureSupport struct {
	MinTemperature int `json:"minTemperature"`
	MaxTemperature int `json:"maxTemperature"`
	StepSize       int `json:"stepSize"`
}

func (s ColorTemperatureSupport) Validate() error {
	return checkRange("color temperature support", s.MinTemperature, s.MaxTemperature)
}

// Contains reports whether k is a selectable temperature.
func (s ColorTemperatureSupport) Contains(k int) bool {
	if k < s.MinTemperature || k > s.MaxTemperature {
		return false
	}
	return s.StepSize <= 0 || (k-s.MinTemperature)%s.StepSize == 0
}

// ShutterVolumeSupport is the range of _shutterVolume.
type ShutterVolumeSupport struct {
	MinShutterVolume int `json:"minShutterVolume"`
	MaxShutterVolume int `json:"maxShutterVolume"`
}

func (s ShutterVolumeSupport) Validate() error {
	return checkRange("shutter volume support", s.MinShutterVolume, s.MaxShutterVolume)
}

// IntervalSupport is a range of intervals in seconds.
type IntervalSupport struct {
	MinInterval int `json:"minInterval"`
	MaxInterval int `json:"maxInterval"`
	StepSize    int `json:"stepSize"`
}

// TimeShiftSupport lists the legal _timeShift settings.
type TimeShiftSupport struct {
	FirstShooting  []ShootingOrder `json:"firstShooting"`
	FirstInterval  IntervalSupport `json:"firstInterval"`
	SecondInterval IntervalSupport `json:"secondInterval"`
}

func (s TimeShiftSupport) Validate() error {
	if err := checkRange("time shift first interval", s.FirstInterval.MinInterval, s.FirstInterval.MaxInterval); err != nil {
		return err
	}
	return checkRange("time shift second interval", s.SecondInterval.MinInterval, s.SecondInterval.MaxInterval)
}

// PitchSupport, RollSupport and YawSupport are angle ranges in degrees.
type PitchSupport struct {
	MinPitch float64 `json:"minPitch"`
	MaxPitch float64 `json:"maxPitch"`
	StepSize float64 `json:"stepSize"`
}

type RollSupport struct {
	MinRoll  float64 `json:"minRoll"`
	MaxRoll  float64 `json:"maxRoll"`
	StepSize float64 `json:"stepSize"`
}

type YawSupport struct {
	MinYaw   float64 `json:"minYaw"`
	MaxYaw   float64 `json:"maxYaw"`
	StepSize float64 `json:"stepSize"`
}

// TopBottomCorrectionRotationSupport lists the legal manual leveling
// angles.
type TopBottomCorrectionRotationSupport struct {
	Pitch PitchSupport `json:"pitch"`
	Roll  RollSupport  `json:"roll"`
	Yaw   YawSupport   `json:"yaw"`
}

func (s TopBottomCorrectionRotationSupport) Validate() error {
	if err := checkRange("pitch support", s.Pitch.MinPitch, s.Pitch.MaxPitch); err != nil {
		return err
	}
	if err := checkRange("roll support", s.Roll.MinRoll, s.Roll.MaxRoll); err != nil {
		return err
	}
	return checkRange("yaw support", s.Yaw.MinYaw, s.Yaw.MaxYaw)
}

// Contains reports whether r lies within every range.
func (s TopBottomCorrectionRotationSupport) Contains(r TopBottomCorrectionRotation) bool {
	return r.Pitch >= s.Pitch.MinPitch && r.Pitch <= s.Pitch.MaxPitch &&
		r.Roll >= s.Roll.MinRoll && r.Roll <= s.Roll.MaxRoll &&
		r.Yaw >= s.Yaw.MinYaw && r.Yaw <= s.Yaw.MaxYaw
}
