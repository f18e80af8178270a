package progrock

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
)

var _ progrock.Writer = (*Renderer)(nil)

// Renderer is a progrock.Writer printing vertex output and completions as plain lines.
// It discards everything until an output is set.
type Renderer struct {
	mu    sync.Mutex
	out   io.Writer
	names map[string]string
}

// NewRenderer creates a Renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out:   out,
		names: make(map[string]string),
	}
}

// SetOutput redirects subsequent updates to out.
func (r *Renderer) SetOutput(out io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.out = out
}

// WriteStatus renders one status update.
func (r *Renderer) WriteStatus(update *progrock.StatusUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, v := range update.Vertexes {
		r.names[v.Id] = v.Name
	}

	for _, l := range update.Logs {
		name := r.names[l.Vertex]
		for _, line := range bytes.Split(bytes.TrimRight(l.Data, "\n"), []byte("\n")) {
			if len(line) == 0 {
				continue
			}
			if _, err := fmt.Fprintf(r.out, "  %s | %s\n", name, line); err != nil {
				return err
			}
		}
	}

	for _, v := range update.Vertexes {
		if v.Completed == nil {
			continue
		}
		if err := r.renderCompleted(v); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderCompleted(v *progrock.Vertex) error {
	var err error
	switch {
	case v.Error != nil:
		_, err = fmt.Fprintf(r.out, "✗ %s: %s\n", v.Name, *v.Error)
	case v.Cached:
		_, err = fmt.Fprintf(r.out, "✓ %s (cached)\n", v.Name)
	default:
		_, err = fmt.Fprintf(r.out, "✓ %s\n", v.Name)
	}
	return err
}

// Close leaves the underlying output open; it belongs to the caller.
func (r *Renderer) Close() error {
	return nil
}
