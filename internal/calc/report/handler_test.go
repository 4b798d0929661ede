package report

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	batch "Photon/internal/calc/batch"
)

func TestRenderPDF(t *testing.T) {
	rows, err := batch.Calculate(batch.Materials())
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := RenderPDF(&buf, rows); err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output is not a PDF: %q", buf.Bytes()[:min(16, buf.Len())])
	}
}

func TestHandlerGenerate(t *testing.T) {
	rec := httptest.NewRecorder()
	(&Handler{}).Generate(rec, httptest.NewRequest(http.MethodGet, "/api/report/pdf", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
}
