package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	batch "Photon/internal/calc/batch"
	importer "Photon/internal/calc/importer"
	report "Photon/internal/calc/report"
	"Photon/internal/logger"

	"github.com/rs/zerolog"
)

func loadMaterials(path string, log zerolog.Logger) ([]batch.Material, error) {
	if path == "" {
		return batch.Materials(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open materials workbook: %w", err)
	}
	defer f.Close()

	materials, skipped, err := importer.ReadMaterials(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if skipped > 0 {
		log.Warn().Int("skipped", skipped).Str("file", path).Msg("Ignored malformed rows")
	}
	if len(materials) == 0 {
		return nil, fmt.Errorf("%s: no usable rows: %w", path, batch.ErrNoMaterials)
	}
	return materials, nil
}

func export(path string, rows []batch.Row, write func(io.Writer, []batch.Row) error, log zerolog.Logger) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := write(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	log.Info().Str("file", path).Msg("Table exported")
	return nil
}

func run(args []string, stdout io.Writer, log zerolog.Logger) error {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	in := fs.String("in", "", "read materials from an xlsx workbook (name | lambda|f | value)")
	pdfPath := fs.String("pdf", "", "also write the completed table as PDF")
	xlsxPath := fs.String("xlsx", "", "also write the completed table as xlsx")
	if err := fs.Parse(args); err != nil {
		return err
	}

	materials, err := loadMaterials(*in, log)
	if err != nil {
		return err
	}
	if err := batch.WriteReport(stdout, materials); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if *pdfPath == "" && *xlsxPath == "" {
		return nil
	}
	rows, err := batch.Calculate(materials)
	if err != nil {
		return err
	}
	if err := export(*pdfPath, rows, report.RenderPDF, log); err != nil {
		return err
	}
	return export(*xlsxPath, rows, importer.WriteTable, log)
}

func main() {
	log := logger.NewConsole(os.Getenv("LOG_LEVEL")).With().Str("component", "batch").Logger()
	if err := run(os.Args[1:], os.Stdout, log); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal().Err(err).Msg("Batch report failed")
	}
}
