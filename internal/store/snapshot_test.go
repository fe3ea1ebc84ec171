package store

import (
	"errors"
	"testing"
	"time"
)

func TestSnapshotRepository_CreateAndGet(t *testing.T) {
	s := newTestStore(t)

	sn := &Snapshot{
		ID:     "snap-1",
		Path:   "portfolio_canvas.jpg",
		Source: SnapshotSourceGesture,
	}

	if err := s.Snapshots().Create(sn); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if sn.CreatedAt.IsZero() {
		t.Error("Create() should set CreatedAt")
	}

	got, err := s.Snapshots().GetByID("snap-1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}

	if got.Path != sn.Path {
		t.Errorf("path = %q, want %q", got.Path, sn.Path)
	}
	if got.Source != SnapshotSourceGesture {
		t.Errorf("source = %q, want %q", got.Source, SnapshotSourceGesture)
	}
}

func TestSnapshotRepository_GetByID_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Snapshots().GetByID("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() error = %v, want %v", err, ErrNotFound)
	}
}

func TestSnapshotRepository_List_NewestFirst(t *testing.T) {
	s := newTestStore(t)

	for i, id := range []string{"snap-old", "snap-mid", "snap-new"} {
		sn := &Snapshot{
			ID:     id,
			Path:   "canvas.jpg",
			Source: SnapshotSourceHotkey,
		}
		if err := s.Snapshots().Create(sn); err != nil {
			t.Fatalf("Create(%d) error = %v", i, err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	snapshots, err := s.Snapshots().List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(snapshots) != 3 {
		t.Fatalf("len = %d, want 3", len(snapshots))
	}
	if snapshots[0].ID != "snap-new" {
		t.Errorf("first = %q, want snap-new (newest first)", snapshots[0].ID)
	}
	if snapshots[2].ID != "snap-old" {
		t.Errorf("last = %q, want snap-old", snapshots[2].ID)
	}
}

func TestSnapshotRepository_Delete(t *testing.T) {
	s := newTestStore(t)

	sn := &Snapshot{ID: "snap-1", Path: "canvas.jpg", Source: SnapshotSourceGesture}
	if err := s.Snapshots().Create(sn); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := s.Snapshots().Delete("snap-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := s.Snapshots().GetByID("snap-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() after delete error = %v, want %v", err, ErrNotFound)
	}
}

func TestSnapshotRepository_Delete_NotFound(t *testing.T) {
	s := newTestStore(t)

	if err := s.Snapshots().Delete("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() error = %v, want %v", err, ErrNotFound)
	}
}

func TestSnapshotRepository_RejectsUnknownSource(t *testing.T) {
	s := newTestStore(t)

	sn := &Snapshot{ID: "snap-1", Path: "canvas.jpg", Source: "telepathy"}
	if err := s.Snapshots().Create(sn); err == nil {
		t.Error("Create() with unknown source should fail the CHECK constraint")
	}
}
