package speech

import (
	"log"
	"sync"
)

// queueSize bounds pending speech requests. The header cooldown already
// rate-limits triggers, so a small buffer is enough; extra requests are
// dropped rather than stalling the frame loop.
const queueSize = 8

// Request is one fire-and-forget speech job.
type Request struct {
	Text      string
	Translate bool
}

// Synthesizer turns text into audible speech.
type Synthesizer interface {
	Speak(text string, translate bool) error
}

// TranscriptRecorder persists the text of a completed synthesis.
type TranscriptRecorder interface {
	RecordTranscript(text, language string) error
}

// Worker consumes speech requests on its own goroutine so network and
// playback latency never stalls the video loop. Requests are one-way:
// no result, no cancellation; failures are logged and dropped.
type Worker struct {
	synth       Synthesizer
	transcripts TranscriptRecorder
	queue       chan Request
	stopCh      chan struct{}
	doneCh      chan struct{}
	mu          sync.Mutex
	started     bool
}

// NewWorker creates a Worker. transcripts may be nil.
func NewWorker(synth Synthesizer, transcripts TranscriptRecorder) *Worker {
	return &Worker{
		synth:       synth,
		transcripts: transcripts,
		queue:       make(chan Request, queueSize),
	}
}

// Start launches the consumer goroutine.
func (w *Worker) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		return
	}

	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.started = true
	go w.run()
}

// Stop halts the consumer. A request already being spoken finishes;
// queued requests are discarded.
func (w *Worker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.started {
		return
	}

	close(w.stopCh)
	<-w.doneCh
	w.started = false
}

// Enqueue hands a request to the worker without blocking. Returns false
// when the queue is full and the request was dropped.
func (w *Worker) Enqueue(text string, translate bool) bool {
	select {
	case w.queue <- Request{Text: text, Translate: translate}:
		return true
	default:
		return false
	}
}

// Pending returns the number of queued requests.
func (w *Worker) Pending() int {
	return len(w.queue)
}

func (w *Worker) run() {
	defer close(w.doneCh)

	for {
		select {
		case <-w.stopCh:
			return
		case req := <-w.queue:
			w.process(req)
		}
	}
}

func (w *Worker) process(req Request) {
	if err := w.synth.Speak(req.Text, req.Translate); err != nil {
		log.Printf("speech: %v", err)
		return
	}

	if w.transcripts != nil {
		language := "en"
		if req.Translate {
			language = "fr"
		}
		if err := w.transcripts.RecordTranscript(req.Text, language); err != nil {
			log.Printf("record transcript: %v", err)
		}
	}
}
