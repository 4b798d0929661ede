package importer

import (
	"bytes"
	"encoding/json"
	"net/http"

	batch "Photon/internal/calc/batch"
)

const MaxUploadSize = 10 << 20 // 10MB

type Handler struct{}

type ImportResult struct {
	Count   int         `json:"count"`
	Skipped int         `json:"skipped"`
	Results []batch.Row `json:"results"`
}

func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	materials, skipped, err := ReadMaterials(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	rows, err := batch.Calculate(materials)
	if err != nil {
		http.Error(w, "No usable rows", http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(ImportResult{Count: len(rows), Skipped: skipped, Results: rows}); err != nil {
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(buf.Bytes())
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	rows, err := batch.Calculate(batch.Materials())
	if err != nil {
		http.Error(w, "Calculation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"photoelectric.xlsx\"")
	if err := WriteTable(w, rows); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}
