package batch

import (
	"bytes"
	"encoding/json"
	"net/http"
)

type Handler struct{}

func (h *Handler) Materials(w http.ResponseWriter, r *http.Request) {
	res, err := Calculate(Materials())
	if err != nil {
		http.Error(w, "Calculation error", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(res); err != nil {
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(buf.Bytes())
}
