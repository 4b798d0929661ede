package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	batch "Photon/internal/calc/batch"

	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return &buf
}

func TestReadMaterials(t *testing.T) {
	buf := workbook(t, [][]interface{}{
		{"name", "kind", "value"},
		{"Argent", "lambda", "0.27e-6"},
		{"Platine", "F", 4.5e14},
		{"Zinc", "joules", "1"},
		{"Vide", "f", "0"},
		{"Court"},
		{"Sodium", "wavelength", "abc"},
	})

	ms, skipped, err := ReadMaterials(buf)
	if err != nil {
		t.Fatalf("ReadMaterials: %v", err)
	}
	if len(ms) != 2 {
		t.Fatalf("got %d materials, want 2: %+v", len(ms), ms)
	}
	if skipped != 4 {
		t.Errorf("skipped = %d, want 4", skipped)
	}
	if g, ok := ms[0].Given.(batch.WavelengthGiven); !ok || float64(g) != 0.27e-6 {
		t.Errorf("Argent given = %#v", ms[0].Given)
	}
	if g, ok := ms[1].Given.(batch.FrequencyGiven); !ok || float64(g) != 4.5e14 {
		t.Errorf("Platine given = %#v", ms[1].Given)
	}
}

func TestReadMaterialsEmpty(t *testing.T) {
	buf := workbook(t, [][]interface{}{{"name", "kind", "value"}})
	if _, _, err := ReadMaterials(buf); !errors.Is(err, ErrEmptySheet) {
		t.Errorf("err = %v, want ErrEmptySheet", err)
	}
	if _, _, err := ReadMaterials(bytes.NewReader([]byte("not a workbook"))); err == nil {
		t.Errorf("garbage input accepted")
	}
}

func TestWriteTable(t *testing.T) {
	rows, _ := batch.Calculate(batch.Materials())
	var buf bytes.Buffer
	if err := WriteTable(&buf, rows); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()
	got, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(rows)+1 {
		t.Fatalf("rows = %d, want %d", len(got), len(rows)+1)
	}
	if got[0][0] != "Matériau" || got[1][0] != "a. Argent (Ag)" || got[4][0] != "d. Calcium (Ca)" {
		t.Errorf("unexpected first column: %v", got)
	}
}

func TestHandlerImport(t *testing.T) {
	wb := workbook(t, [][]interface{}{
		{"name", "kind", "value"},
		{"Argent", "lambda", "0.27e-6"},
		{"Vide", "f", "-1"},
	})
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, _ := mw.CreateFormFile("file", "materials.xlsx")
	part.Write(wb.Bytes())
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	(&Handler{}).Import(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}
	var res ImportResult
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if res.Count != 1 || res.Skipped != 1 || res.Results[0].Name != "Argent" {
		t.Errorf("result = %+v", res)
	}
}

func TestHandlerImportWithoutFile(t *testing.T) {
	rec := httptest.NewRecorder()
	(&Handler{}).Import(rec, httptest.NewRequest(http.MethodPost, "/api/import", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
}
