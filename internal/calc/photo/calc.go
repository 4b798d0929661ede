package photo

import (
	"errors"
	"math"

	"Photon/internal/consts"
)

var (
	ErrNonPositive = errors.New("threshold value must be strictly positive")
	ErrAmbiguous   = errors.New("exactly one of wavelength_um or frequency_hz is required")
	ErrOutOfRange  = errors.New("threshold value out of representable range")
)

// Input carries one threshold quantity. Wavelength is in micrometers,
// the unit students type in.
type Input struct {
	WavelengthUM float64 `json:"wavelength_um,omitempty"`
	FrequencyHz  float64 `json:"frequency_hz,omitempty"`
}

type Result struct {
	FrequencyHz float64 `json:"frequency_hz"`
	WavelengthM float64 `json:"wavelength_m"`
	WorkJ       float64 `json:"work_j"`
	WorkEV      float64 `json:"work_ev"`
}

// WavelengthUM reports the threshold wavelength in micrometers.
func (r Result) WavelengthUM() float64 {
	return r.WavelengthM / consts.Micro
}

// Finite reports whether every derived quantity is a finite number.
func (r Result) Finite() bool {
	for _, v := range []float64{r.FrequencyHz, r.WavelengthM, r.WorkJ, r.WorkEV} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// FromWavelength derives frequency and work function from a threshold
// wavelength in meters. lambdaM must be positive; it is not checked.
func FromWavelength(lambdaM float64) Result {
	f := consts.LightSpeed / lambdaM
	w := consts.Planck * f
	return Result{
		FrequencyHz: f,
		WavelengthM: lambdaM,
		WorkJ:       w,
		WorkEV:      w / consts.ElectronVolt,
	}
}

// FromFrequency derives wavelength and work function from a threshold
// frequency in hertz. f must be positive; it is not checked.
func FromFrequency(f float64) Result {
	w := consts.Planck * f
	return Result{
		FrequencyHz: f,
		WavelengthM: consts.LightSpeed / f,
		WorkJ:       w,
		WorkEV:      w / consts.ElectronVolt,
	}
}

func Calculate(in Input) (Result, error) {
	hasL, hasF := in.WavelengthUM != 0, in.FrequencyHz != 0
	if hasL == hasF {
		return Result{}, ErrAmbiguous
	}
	if hasL {
		if in.WavelengthUM < 0 {
			return Result{}, ErrNonPositive
		}
		return checked(FromWavelength(in.WavelengthUM * consts.Micro))
	}
	if in.FrequencyHz < 0 {
		return Result{}, ErrNonPositive
	}
	return checked(FromFrequency(in.FrequencyHz))
}

// checked rejects results that overflowed, e.g. from subnormal inputs.
func checked(r Result) (Result, error) {
	if !r.Finite() || r.WavelengthM == 0 || r.FrequencyHz == 0 {
		return Result{}, ErrOutOfRange
	}
	return r, nil
}

// Source names which quantity was given, for history records.
func (in Input) Source() string {
	if in.WavelengthUM != 0 {
		return "wavelength"
	}
	return "frequency"
}
