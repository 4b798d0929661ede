package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	batch "Photon/internal/calc/batch"

	"github.com/xuri/excelize/v2"
)

var ErrEmptySheet = errors.New("empty sheet")

// ReadMaterials reads materials from the first sheet of a workbook.
// Expected columns: name, kind (lambda in meters or f in hertz), value.
// The first row is a header. Rows that do not parse or carry a
// non-positive value are skipped and counted.
func ReadMaterials(r io.Reader) ([]batch.Material, int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, 0, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, 0, ErrEmptySheet
	}

	var out []batch.Material
	skipped := 0
	for _, row := range rows[1:] {
		m, err := parseRow(row)
		if err != nil {
			skipped++
			continue
		}
		out = append(out, m)
	}
	return out, skipped, nil
}

func parseRow(row []string) (batch.Material, error) {
	if len(row) < 3 {
		return batch.Material{}, fmt.Errorf("bad row")
	}
	name := strings.TrimSpace(row[0])
	if name == "" {
		return batch.Material{}, fmt.Errorf("missing name")
	}
	v, err := toFloat(row[2])
	if err != nil {
		return batch.Material{}, err
	}
	if !(v > 0) {
		return batch.Material{}, fmt.Errorf("%s: non-positive value", name)
	}
	switch strings.ToLower(strings.TrimSpace(row[1])) {
	case "lambda", "wavelength", "λ":
		return batch.Material{Name: name, Given: batch.WavelengthGiven(v)}, nil
	case "f", "frequency":
		return batch.Material{Name: name, Given: batch.FrequencyGiven(v)}, nil
	}
	return batch.Material{}, fmt.Errorf("%s: unknown kind %q", name, row[1])
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// WriteTable writes the completed table as a workbook.
func WriteTable(w io.Writer, rows []batch.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := []interface{}{"Matériau", "Fréquence seuil (Hz)", "Longueur d'onde (µm)", "Travail (J)", "Travail (eV)"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{
			row.Name,
			row.Result.FrequencyHz,
			row.Result.WavelengthUM(),
			row.Result.WorkJ,
			row.Result.WorkEV,
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(sheet, "A", "E", 22); err != nil {
		return err
	}
	return f.Write(w)
}
