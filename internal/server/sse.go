package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/abhisek/fracmap/internal/agent"
)

// sseStream writes server-sent events to one client connection.
type sseStream struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// newSSEStream prepares the response for event streaming. Returns an
// error when the underlying writer cannot flush.
func newSSEStream(w http.ResponseWriter) (*sseStream, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("response writer does not support streaming")
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	return &sseStream{w: w, flusher: flusher}, nil
}

// send writes one named event with a JSON payload and flushes.
func (s *sseStream) send(name string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", name, err)
	}
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", name, payload); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// sendAll streams a batch of agent events in order.
func (s *sseStream) sendAll(events []agent.Event) error {
	for _, e := range events {
		if err := s.send(e.Name, e.Data); err != nil {
			return err
		}
	}
	return nil
}

// sendError surfaces a failure on an already-open stream, where HTTP
// status codes can no longer change.
func (s *sseStream) sendError(msg string) {
	_ = s.send("error", map[string]string{"error": msg})
}
