package photo

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"Photon/internal/repo"

	"github.com/rs/zerolog"
)

// Handler serves calculations. Repo is optional: without it nothing is
// recorded and history is empty.
type Handler struct {
	Repo repo.Repository
	Log  zerolog.Logger
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		h.Log.Error().Err(err).Str("component", "photo").Msg("encode response failed")
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(buf.Bytes())
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		if errors.Is(err, ErrAmbiguous) || errors.Is(err, ErrNonPositive) || errors.Is(err, ErrOutOfRange) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	if h.Repo != nil {
		entry := repo.Entry{
			Source:      input.Source(),
			FrequencyHz: res.FrequencyHz,
			WavelengthM: res.WavelengthM,
			WorkJ:       res.WorkJ,
			WorkEV:      res.WorkEV,
		}
		if _, err := h.Repo.Record(r.Context(), entry); err != nil {
			// the result is still valid, history is best effort
			h.Log.Warn().Err(err).Str("component", "photo").Msg("history record failed")
		}
	}
	h.writeJSON(w, res)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}
	entries := []repo.Entry{}
	if h.Repo != nil {
		got, err := h.Repo.Recent(r.Context(), limit)
		if err != nil {
			h.Log.Error().Err(err).Str("component", "photo").Msg("history read failed")
			http.Error(w, "DB error", http.StatusInternalServerError)
			return
		}
		if got != nil {
			entries = got
		}
	}
	h.writeJSON(w, entries)
}
