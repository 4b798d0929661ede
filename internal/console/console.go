// Package console implements the interactive threshold calculator:
// a line-oriented menu loop over an arbitrary reader and writer.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	photo "Photon/internal/calc/photo"
	"Photon/internal/consts"

	"github.com/rs/zerolog"
)

// ErrInputExhausted is returned once the input stream is closed.
var ErrInputExhausted = errors.New("input stream exhausted")

type State int

const (
	AwaitingMenuChoice State = iota
	WavelengthFlow
	FrequencyFlow
	AwaitingContinuePrompt
	Terminated
)

func (s State) String() string {
	switch s {
	case AwaitingMenuChoice:
		return "menu"
	case WavelengthFlow:
		return "wavelength"
	case FrequencyFlow:
		return "frequency"
	case AwaitingContinuePrompt:
		return "continue"
	case Terminated:
		return "terminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var affirmative = map[string]bool{"O": true, "OUI": true, "Y": true, "YES": true}

var (
	heavyRule = strings.Repeat("=", 60)
	lightRule = strings.Repeat("-", 60)
)

type Calculator struct {
	in  *bufio.Reader
	out io.Writer
	log zerolog.Logger
}

func New(in io.Reader, out io.Writer, log zerolog.Logger) *Calculator {
	return &Calculator{
		in:  bufio.NewReader(in),
		out: out,
		log: log.With().Str("component", "console").Logger(),
	}
}

// readLine returns the next trimmed line. A final line without a newline
// is still returned; the read after it reports ErrInputExhausted.
func (c *Calculator) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputExhausted
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// ObtainValue prompts until the user types a finite, strictly positive
// number.
func (c *Calculator) ObtainValue(label string) (float64, error) {
	for {
		fmt.Fprintf(c.out, "\nEntrez la valeur de %s: ", label)
		line, err := c.readLine()
		if err != nil {
			fmt.Fprintln(c.out, "\n⚠ Erreur: Entrée interrompue.")
			return 0, err
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			c.log.Debug().Str("input", line).Msg("rejected: not a number")
			fmt.Fprintln(c.out, "⚠ Erreur: Veuillez entrer un nombre valide!")
			continue
		}
		if v <= 0 {
			c.log.Debug().Float64("value", v).Msg("rejected: not positive")
			fmt.Fprintln(c.out, "⚠ Erreur: La valeur doit être strictement positive!")
			continue
		}
		return v, nil
	}
}

// Run drives the menu until the user quits or input runs out. The
// farewell block is printed in both cases.
func (c *Calculator) Run() error {
	fmt.Fprintf(c.out, "\n%s\n   BIENVENUE DANS LE CALCULATEUR PHOTOÉLECTRIQUE\n%s\n", heavyRule, heavyRule)

	var runErr error
	state := AwaitingMenuChoice
	for state != Terminated {
		next, err := c.step(state)
		if err != nil {
			runErr = err
			next = Terminated
		}
		c.log.Debug().Stringer("from", state).Stringer("to", next).Msg("transition")
		state = next
	}

	if errors.Is(runErr, ErrInputExhausted) {
		c.log.Info().Msg("input closed, leaving calculator")
	}
	fmt.Fprintf(c.out, "\n%s\n   Merci d'avoir utilisé le calculateur!\n   Au revoir!\n%s\n\n", heavyRule, heavyRule)
	return runErr
}

func (c *Calculator) step(s State) (State, error) {
	switch s {
	case AwaitingMenuChoice:
		c.printMenu()
		fmt.Fprint(c.out, "\nVotre choix (L/F/Q): ")
		choice, err := c.readLine()
		if err != nil {
			return s, err
		}
		switch strings.ToUpper(choice) {
		case "L":
			return WavelengthFlow, nil
		case "F":
			return FrequencyFlow, nil
		case "Q":
			return Terminated, nil
		}
		fmt.Fprintln(c.out, "\n⚠ Choix invalide! Veuillez entrer L, F ou Q.")
		return AwaitingMenuChoice, nil

	case WavelengthFlow:
		um, err := c.ObtainValue("la longueur d'onde seuil (en μm)")
		if err != nil {
			return s, err
		}
		c.printWavelengthResult(um, photo.FromWavelength(um*consts.Micro))
		return AwaitingContinuePrompt, nil

	case FrequencyFlow:
		f, err := c.ObtainValue("la fréquence seuil (en Hz)")
		if err != nil {
			return s, err
		}
		c.printFrequencyResult(photo.FromFrequency(f))
		return AwaitingContinuePrompt, nil

	case AwaitingContinuePrompt:
		fmt.Fprint(c.out, "\n\nVoulez-vous faire un autre calcul? (O/N): ")
		answer, err := c.readLine()
		if err != nil {
			return s, err
		}
		if affirmative[strings.ToUpper(answer)] {
			return AwaitingMenuChoice, nil
		}
		return Terminated, nil
	}
	return Terminated, fmt.Errorf("unknown state %v", s)
}

func (c *Calculator) printMenu() {
	fmt.Fprintf(c.out, "\n%s\n   CALCULATEUR EFFET PHOTOÉLECTRIQUE\n%s\n", heavyRule, heavyRule)
	fmt.Fprintln(c.out, "\nQue souhaitez-vous entrer comme donnée ?")
	fmt.Fprintln(c.out, "\n  [L] - Longueur d'onde seuil (en μm)")
	fmt.Fprintln(c.out, "  [F] - Fréquence seuil (en Hz)")
	fmt.Fprintln(c.out, "  [Q] - Quitter le programme")
	fmt.Fprintf(c.out, "\n%s\n", lightRule)
}

func (c *Calculator) printHeader() {
	fmt.Fprintf(c.out, "\n%s\n   RÉSULTATS DU CALCUL\n%s\n", heavyRule, heavyRule)
	fmt.Fprintln(c.out, "\n  Donnée entrée:")
}

func (c *Calculator) printWork(res photo.Result) {
	fmt.Fprintf(c.out, "    • Travail d'extraction: %.4e J\n", res.WorkJ)
	fmt.Fprintf(c.out, "    • Travail d'extraction: %.3f eV\n", res.WorkEV)
	fmt.Fprintln(c.out, heavyRule)
}

func (c *Calculator) printWavelengthResult(um float64, res photo.Result) {
	c.printHeader()
	fmt.Fprintf(c.out, "    • Longueur d'onde seuil: %g μm (%g m)\n", um, res.WavelengthM)
	fmt.Fprintln(c.out, "\n  Valeurs calculées:")
	fmt.Fprintf(c.out, "    • Fréquence seuil: %.4e Hz\n", res.FrequencyHz)
	c.printWork(res)
}

func (c *Calculator) printFrequencyResult(res photo.Result) {
	c.printHeader()
	fmt.Fprintf(c.out, "    • Fréquence seuil: %.4e Hz\n", res.FrequencyHz)
	fmt.Fprintln(c.out, "\n  Valeurs calculées:")
	fmt.Fprintf(c.out, "    • Longueur d'onde seuil: %.3f μm (%.4e m)\n", res.WavelengthUM(), res.WavelengthM)
	c.printWork(res)
}
