package views

import (
	"encoding/json"
	"path/filepath"
	"testing"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "views.json"))
}

func TestSaveAndList(t *testing.T) {
	s := tempStore(t)

	v, err := s.Save("my view", TypeParallelCategories, json.RawMessage(`{"filters":{"platform":["Instagram"]}}`))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if v.ID == "" || v.Name != "my view" || v.Type != TypeParallelCategories {
		t.Errorf("saved view = %+v", v)
	}

	all, err := s.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 1 || all[0].ID != v.ID {
		t.Errorf("All = %+v", all)
	}
	// State stays an opaque blob.
	var state map[string]any
	if err := json.Unmarshal(all[0].State, &state); err != nil {
		t.Errorf("state not preserved: %v", err)
	}
}

func TestEmptyStore(t *testing.T) {
	s := tempStore(t)
	all, err := s.All()
	if err != nil {
		t.Fatalf("All on missing file: %v", err)
	}
	if all != nil {
		t.Errorf("All = %v, want nil", all)
	}
}

func TestByType(t *testing.T) {
	s := tempStore(t)
	if _, err := s.Save("a", TypeParallelCategories, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Save("b", Type3DPlot, nil); err != nil {
		t.Fatal(err)
	}
	plots, err := s.ByType(Type3DPlot)
	if err != nil {
		t.Fatal(err)
	}
	if len(plots) != 1 || plots[0].Name != "b" {
		t.Errorf("ByType = %+v", plots)
	}
}

func TestSaveRejectsUnknownType(t *testing.T) {
	s := tempStore(t)
	if _, err := s.Save("x", "pie-in-the-sky", nil); err == nil {
		t.Fatal("expected error for unknown view type")
	}
}

func TestGetRenameDelete(t *testing.T) {
	s := tempStore(t)
	v, err := s.Save("old name", Type3DPlot, nil)
	if err != nil {
		t.Fatal(err)
	}

	got, err := s.Get(v.ID)
	if err != nil || got.Name != "old name" {
		t.Fatalf("Get = %+v, %v", got, err)
	}

	if err := s.Rename(v.ID, "new name"); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	got, _ = s.Get(v.ID)
	if got.Name != "new name" {
		t.Errorf("renamed view = %+v", got)
	}

	if err := s.Delete(v.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(v.ID); err == nil {
		t.Error("deleted view still present")
	}
	if err := s.Delete(v.ID); err == nil {
		t.Error("expected error deleting a missing view")
	}
}
