package repo

import (
	"context"
	"testing"
)

func TestMemoryHistoryRecent(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryHistory()
	for i, src := range []string{"wavelength", "frequency", "wavelength"} {
		id, err := m.Record(ctx, Entry{Source: src, WorkEV: float64(i)})
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
		if id != i+1 {
			t.Errorf("id = %d, want %d", id, i+1)
		}
	}

	got, err := m.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != 3 || got[1].ID != 2 {
		t.Errorf("expected newest first, got ids %d,%d", got[0].ID, got[1].ID)
	}
	if got[0].CreatedAt.IsZero() {
		t.Errorf("CreatedAt not set")
	}

	all, _ := m.Recent(ctx, 0)
	if len(all) != 3 {
		t.Errorf("limit 0 should return everything, got %d", len(all))
	}
}
