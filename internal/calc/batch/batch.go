package batch

import (
	"errors"
	"fmt"
	"io"
	"strings"

	photo "Photon/internal/calc/photo"
	"Photon/internal/consts"
)

// Given is the one threshold quantity a material is tabulated with.
// The other one is always derived.
type Given interface {
	derive() photo.Result
	value() float64
}

// WavelengthGiven is a threshold wavelength in meters.
type WavelengthGiven float64

// FrequencyGiven is a threshold frequency in hertz.
type FrequencyGiven float64

func (g WavelengthGiven) derive() photo.Result { return photo.FromWavelength(float64(g)) }
func (g WavelengthGiven) value() float64       { return float64(g) }
func (g FrequencyGiven) derive() photo.Result  { return photo.FromFrequency(float64(g)) }
func (g FrequencyGiven) value() float64        { return float64(g) }

type Material struct {
	Name  string
	Given Given
}

type Row struct {
	Name   string       `json:"name"`
	Given  string       `json:"given"`
	Result photo.Result `json:"result"`
}

var ErrNoMaterials = errors.New("no materials")

// Materials returns the classroom table in its fixed order.
func Materials() []Material {
	return []Material{
		{Name: "a. Argent (Ag)", Given: WavelengthGiven(0.27e-6)},
		{Name: "b. Platine (Pt)", Given: FrequencyGiven(4.5e14)},
		{Name: "c. Césium (Cs)", Given: WavelengthGiven(0.19e-6)},
		{Name: "d. Calcium (Ca)", Given: FrequencyGiven(6.7e14)},
	}
}

func Derive(m Material) photo.Result {
	return m.Given.derive()
}

func givenKind(g Given) string {
	switch g.(type) {
	case WavelengthGiven:
		return "wavelength"
	case FrequencyGiven:
		return "frequency"
	}
	return ""
}

func Calculate(ms []Material) ([]Row, error) {
	if len(ms) == 0 {
		return nil, ErrNoMaterials
	}
	out := make([]Row, 0, len(ms))
	for _, m := range ms {
		if m.Given == nil {
			return nil, fmt.Errorf("%s: no threshold value", m.Name)
		}
		if v := m.Given.value(); !(v > 0) {
			return nil, fmt.Errorf("%s: %w", m.Name, photo.ErrNonPositive)
		}
		res := Derive(m)
		if !res.Finite() || res.WavelengthM == 0 || res.FrequencyHz == 0 {
			return nil, fmt.Errorf("%s: %w", m.Name, photo.ErrOutOfRange)
		}
		out = append(out, Row{Name: m.Name, Given: givenKind(m.Given), Result: res})
	}
	return out, nil
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// WriteReport prints one block per material, then the completed table.
func WriteReport(w io.Writer, ms []Material) error {
	rows, err := Calculate(ms)
	if err != nil {
		return err
	}
	p := &printer{w: w}
	p.printf("%s\n", strings.Repeat("=", 70))
	p.printf("CALCUL DES VALEURS MANQUANTES POUR L'EFFET PHOTOÉLECTRIQUE\n")
	p.printf("%s\n", strings.Repeat("=", 70))

	for i, m := range ms {
		res := rows[i].Result
		p.printf("\n%s\n%s\n", m.Name, strings.Repeat("-", 50))
		switch m.Given.(type) {
		case WavelengthGiven:
			p.printf("  Longueur d'onde seuil: %.2f μm\n", res.WavelengthUM())
			p.printf("  Fréquence seuil: %.2e Hz\n", res.FrequencyHz)
		case FrequencyGiven:
			p.printf("  Fréquence seuil: %.2e Hz\n", res.FrequencyHz)
			p.printf("  Longueur d'onde seuil: %.2f μm\n", res.WavelengthUM())
		}
		p.printf("  Travail d'extraction: %.2e J\n", res.WorkJ)
		p.printf("  Travail d'extraction: %.2f eV\n", res.WorkEV)
	}

	p.printf("\n%s\nTABLEAU COMPLÉTÉ\n%s\n", strings.Repeat("=", 70), strings.Repeat("=", 70))
	p.printf("%-20s %-20s %-20s %s\n", "Matériau", "Fréquence seuil", "Longueur d'onde", "Travail (eV)")
	p.printf("%s\n", strings.Repeat("-", 70))
	for _, m := range ms {
		res := Derive(m)
		p.printf("%-20s %-20s %-20s %.2f\n",
			m.Name,
			fmt.Sprintf("%.2e Hz", res.FrequencyHz),
			fmt.Sprintf("%.2f μm", res.WavelengthM/consts.Micro),
			res.WorkEV)
	}
	p.printf("%s\n", strings.Repeat("=", 70))
	return p.err
}
