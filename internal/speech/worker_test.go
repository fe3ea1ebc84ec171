package speech

import (
	"errors"
	"sync"
	"testing"
	"time"
)

type stubSynth struct {
	mu    sync.Mutex
	calls []Request
	err   error
	block chan struct{}
}

func (s *stubSynth) Speak(text string, translate bool) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, Request{Text: text, Translate: translate})
	return s.err
}

func (s *stubSynth) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

type stubTranscripts struct {
	mu        sync.Mutex
	texts     []string
	languages []string
}

func (s *stubTranscripts) RecordTranscript(text, language string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texts = append(s.texts, text)
	s.languages = append(s.languages, language)
	return nil
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestWorker_ProcessesRequests(t *testing.T) {
	synth := &stubSynth{}
	transcripts := &stubTranscripts{}

	w := NewWorker(synth, transcripts)
	w.Start()
	defer w.Stop()

	if !w.Enqueue("HELLO", false) {
		t.Fatal("Enqueue() = false, want true")
	}

	waitFor(t, time.Second, func() bool { return synth.callCount() == 1 })

	synth.mu.Lock()
	call := synth.calls[0]
	synth.mu.Unlock()

	if call.Text != "HELLO" || call.Translate {
		t.Errorf("call = %+v, want HELLO untranslated", call)
	}

	waitFor(t, time.Second, func() bool {
		transcripts.mu.Lock()
		defer transcripts.mu.Unlock()
		return len(transcripts.texts) == 1
	})

	transcripts.mu.Lock()
	defer transcripts.mu.Unlock()
	if transcripts.languages[0] != "en" {
		t.Errorf("language = %q, want en", transcripts.languages[0])
	}
}

func TestWorker_TranslatedRequestRecordsFrench(t *testing.T) {
	synth := &stubSynth{}
	transcripts := &stubTranscripts{}

	w := NewWorker(synth, transcripts)
	w.Start()
	defer w.Stop()

	w.Enqueue("BONJOUR", true)

	waitFor(t, time.Second, func() bool {
		transcripts.mu.Lock()
		defer transcripts.mu.Unlock()
		return len(transcripts.languages) == 1
	})

	transcripts.mu.Lock()
	defer transcripts.mu.Unlock()
	if transcripts.languages[0] != "fr" {
		t.Errorf("language = %q, want fr", transcripts.languages[0])
	}
}

func TestWorker_SynthesisFailureSkipsTranscript(t *testing.T) {
	synth := &stubSynth{err: errors.New("watson unavailable")}
	transcripts := &stubTranscripts{}

	w := NewWorker(synth, transcripts)
	w.Start()
	defer w.Stop()

	w.Enqueue("HELLO", false)

	waitFor(t, time.Second, func() bool { return synth.callCount() == 1 })

	// Give the worker a beat; no transcript may appear
	time.Sleep(20 * time.Millisecond)

	transcripts.mu.Lock()
	defer transcripts.mu.Unlock()
	if len(transcripts.texts) != 0 {
		t.Errorf("failed synthesis recorded %d transcripts, want 0", len(transcripts.texts))
	}
}

func TestWorker_EnqueueDropsWhenFull(t *testing.T) {
	block := make(chan struct{})
	synth := &stubSynth{block: block}

	w := NewWorker(synth, nil)
	w.Start()

	// One request occupies the worker, then fill the queue
	w.Enqueue("busy", false)
	accepted := 0
	for i := 0; i < queueSize+4; i++ {
		if w.Enqueue("queued", false) {
			accepted++
		}
	}

	if accepted > queueSize {
		t.Errorf("accepted %d queued requests, queue size is %d", accepted, queueSize)
	}

	if w.Pending() == 0 {
		t.Error("expected pending requests while the worker is blocked")
	}

	close(block)
	w.Stop()
}

func TestWorker_StartStopIdempotent(t *testing.T) {
	w := NewWorker(&stubSynth{}, nil)

	// Stop before Start is a no-op
	w.Stop()

	w.Start()
	w.Start()
	w.Stop()
	w.Stop()
}

func TestWorker_NilTranscriptsRecorder(t *testing.T) {
	synth := &stubSynth{}

	w := NewWorker(synth, nil)
	w.Start()
	defer w.Stop()

	w.Enqueue("HELLO", false)

	waitFor(t, time.Second, func() bool { return synth.callCount() == 1 })
}
