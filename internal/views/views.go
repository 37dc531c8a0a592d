// Package views persists named analysis views (filter and axis selections)
// so a configuration can be reloaded later. The pipeline itself never
// inspects a view's state; it is an opaque blob owned by the surface that
// saved it.
package views

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Known view types.
const (
	TypeParallelCategories = "parallel-categories"
	Type3DPlot             = "3d-plot"
)

// SavedView is one stored analysis configuration.
type SavedView struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Timestamp time.Time       `json:"timestamp"`
	Type      string          `json:"type"`
	State     json.RawMessage `json:"state"`
}

// Store reads and writes the saved-views file.
type Store struct {
	path string
}

// NewStore returns a store backed by the JSON file at path. The file is
// created on first save.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// All returns every saved view, newest first. A missing file is an empty
// store, not an error.
func (s *Store) All() ([]SavedView, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read views: %w", err)
	}
	var views []SavedView
	if err := json.Unmarshal(b, &views); err != nil {
		return nil, fmt.Errorf("parse views: %w", err)
	}
	sort.SliceStable(views, func(i, j int) bool { return views[i].Timestamp.After(views[j].Timestamp) })
	return views, nil
}

// ByType returns the saved views of one type, newest first.
func (s *Store) ByType(viewType string) ([]SavedView, error) {
	all, err := s.All()
	if err != nil {
		return nil, err
	}
	out := make([]SavedView, 0, len(all))
	for _, v := range all {
		if v.Type == viewType {
			out = append(out, v)
		}
	}
	return out, nil
}

// Get returns the view with the given id.
func (s *Store) Get(id string) (SavedView, error) {
	all, err := s.All()
	if err != nil {
		return SavedView{}, err
	}
	for _, v := range all {
		if v.ID == id {
			return v, nil
		}
	}
	return SavedView{}, fmt.Errorf("view %s not found", id)
}

// Save appends a new view and persists the store.
func (s *Store) Save(name, viewType string, state json.RawMessage) (SavedView, error) {
	if viewType != TypeParallelCategories && viewType != Type3DPlot {
		return SavedView{}, fmt.Errorf("unknown view type %q", viewType)
	}
	if state == nil {
		state = json.RawMessage("{}")
	}
	view := SavedView{
		ID:        uuid.NewString(),
		Name:      name,
		Timestamp: time.Now(),
		Type:      viewType,
		State:     state,
	}
	all, err := s.All()
	if err != nil {
		return SavedView{}, err
	}
	all = append(all, view)
	if err := s.write(all); err != nil {
		return SavedView{}, err
	}
	return view, nil
}

// Rename changes a view's display name.
func (s *Store) Rename(id, name string) error {
	all, err := s.All()
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].ID == id {
			all[i].Name = name
			return s.write(all)
		}
	}
	return fmt.Errorf("view %s not found", id)
}

// Delete removes a view by id.
func (s *Store) Delete(id string) error {
	all, err := s.All()
	if err != nil {
		return err
	}
	out := all[:0]
	found := false
	for _, v := range all {
		if v.ID == id {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		return fmt.Errorf("view %s not found", id)
	}
	return s.write(out)
}

// write persists the full view list with a temp-file rename so a crash
// cannot leave a half-written store.
func (s *Store) write(views []SavedView) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir views dir: %w", err)
	}
	b, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal views: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("atomic rename: %w", err)
	}
	return nil
}
