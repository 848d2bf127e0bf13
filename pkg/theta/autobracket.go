package theta

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/theta-osc/osc-go/pkg/osc"
)

// BracketParameter is one exposure of an auto bracket sequence. Nil
// fields are left to the camera.
type BracketParameter struct {
	ISO                  *ISO                  `json:"iso,omitempty"`
	ShutterSpeed         *ShutterSpeed         `json:"shutterSpeed,omitempty"`
	ColorTemperature     *int                  `json:"_colorTemperature,omitempty"`
	ExposureProgram      *ExposureProgram      `json:"exposureProgram,omitempty"`
	Aperture             *Aperture             `json:"aperture,omitempty"`
	ExposureCompensation *ExposureCompensation `json:"exposureCompensation,omitempty"`
	WhiteBalance         *WhiteBalance         `json:"whiteBalance,omitempty"`
}

// AutoBracket is the _autoBracket option: a non-empty list of exposures.
// On the wire the count travels next to the list.
type AutoBracket struct {
	params []BracketParameter
}

// NewAutoBracket returns a bracket of the given exposures. At least one is
// required.
func NewAutoBracket(params ...BracketParameter) (AutoBracket, error) {
	if len(params) == 0 {
		return AutoBracket{}, fmt.Errorf("%w: auto bracket needs at least one parameter", osc.ErrUsage)
	}
	return AutoBracket{params: append([]BracketParameter(nil), params...)}, nil
}

// Parameters returns a copy of the exposures.
func (a AutoBracket) Parameters() []BracketParameter {
	return append([]BracketParameter(nil), a.params...)
}

// Len returns the number of exposures.
func (a AutoBracket) Len() int { return len(a.params) }

type autoBracketWire struct {
	BracketNumber     int                `json:"_bracketNumber"`
	BracketParameters []BracketParameter `json:"_bracketParameters"`
}

// MarshalJSON writes {"_bracketNumber": n, "_bracketParameters": [...]}.
func (a AutoBracket) MarshalJSON() ([]byte, error) {
	if len(a.params) == 0 {
		return nil, fmt.Errorf("%w: auto bracket needs at least one parameter", osc.ErrUsage)
	}
	return json.Marshal(autoBracketWire{BracketNumber: len(a.params), BracketParameters: a.params})
}

// UnmarshalJSON reads the parameter list; _bracketNumber is derived.
func (a *AutoBracket) UnmarshalJSON(data []byte) error {
	var w struct {
		BracketParameters []BracketParameter `json:"_bracketParameters"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if len(w.BracketParameters) == 0 {
		return errors.New(`auto bracket: missing or empty "_bracketParameters"`)
	}
	a.params = w.BracketParameters
	return nil
}
