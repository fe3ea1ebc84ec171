package store

import (
	"errors"
	"testing"
	"time"
)

func TestTranscriptRepository_CreateAndGet(t *testing.T) {
	s := newTestStore(t)

	tr := &Transcript{
		ID:        "tr-1",
		Text:      "HELLO WORLD",
		Language:  "en",
		AudioPath: "speech.mp3",
	}

	if err := s.Transcripts().Create(tr); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := s.Transcripts().GetByID("tr-1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}

	if got.Text != "HELLO WORLD" {
		t.Errorf("text = %q, want HELLO WORLD", got.Text)
	}
	if got.Language != "en" {
		t.Errorf("language = %q, want en", got.Language)
	}
	if got.AudioPath != "speech.mp3" {
		t.Errorf("audio path = %q, want speech.mp3", got.AudioPath)
	}
}

func TestTranscriptRepository_FrenchTranscript(t *testing.T) {
	s := newTestStore(t)

	tr := &Transcript{ID: "tr-fr", Text: "BONJOUR", Language: "fr"}
	if err := s.Transcripts().Create(tr); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := s.Transcripts().GetByID("tr-fr")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Language != "fr" {
		t.Errorf("language = %q, want fr", got.Language)
	}
}

func TestTranscriptRepository_RejectsUnknownLanguage(t *testing.T) {
	s := newTestStore(t)

	tr := &Transcript{ID: "tr-1", Text: "HOLA", Language: "es"}
	if err := s.Transcripts().Create(tr); err == nil {
		t.Error("Create() with unsupported language should fail the CHECK constraint")
	}
}

func TestTranscriptRepository_List_NewestFirst(t *testing.T) {
	s := newTestStore(t)

	for _, id := range []string{"tr-old", "tr-new"} {
		tr := &Transcript{ID: id, Text: "TEXT", Language: "en"}
		if err := s.Transcripts().Create(tr); err != nil {
			t.Fatalf("Create(%s) error = %v", id, err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	transcripts, err := s.Transcripts().List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(transcripts) != 2 {
		t.Fatalf("len = %d, want 2", len(transcripts))
	}
	if transcripts[0].ID != "tr-new" {
		t.Errorf("first = %q, want tr-new (newest first)", transcripts[0].ID)
	}
}

func TestTranscriptRepository_Delete(t *testing.T) {
	s := newTestStore(t)

	tr := &Transcript{ID: "tr-1", Text: "TEXT", Language: "en"}
	if err := s.Transcripts().Create(tr); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := s.Transcripts().Delete("tr-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if err := s.Transcripts().Delete("tr-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want %v", err, ErrNotFound)
	}
}
