package report

import (
	"fmt"
	"io"
	"net/http"
	"time"

	batch "Photon/internal/calc/batch"

	"github.com/phpdave11/gofpdf"
)

const Title = "Effet photoélectrique : tableau complété"

// RenderPDF lays the derived batch rows out as a single A4 table.
func RenderPDF(w io.Writer, rows []batch.Row) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	widths := []float64{50, 45, 45, 40}
	pdf.SetFont("Helvetica", "B", 11)
	for i, head := range []string{"Matériau", "Fréquence seuil", "Longueur d'onde", "Travail (eV)"} {
		pdf.CellFormat(widths[i], 8, tr(head), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range rows {
		cells := []string{
			row.Name,
			fmt.Sprintf("%.2e Hz", row.Result.FrequencyHz),
			fmt.Sprintf("%.2f µm", row.Result.WavelengthUM()),
			fmt.Sprintf("%.2f", row.Result.WorkEV),
		}
		for i, c := range cells {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 7, tr(c), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	return pdf.Output(w)
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	rows, err := batch.Calculate(batch.Materials())
	if err != nil {
		http.Error(w, "Calculation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"photoelectric.pdf\"")
	if err := RenderPDF(w, rows); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
