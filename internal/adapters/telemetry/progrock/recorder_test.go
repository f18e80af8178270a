package progrock_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	sieveprogrock "go.trai.ch/sieve/internal/adapters/telemetry/progrock"
	"go.trai.ch/sieve/internal/core/domain"
)

// captureWriter keeps the latest state of every vertex and all log data.
type captureWriter struct {
	mu       sync.Mutex
	vertexes map[string]*progrock.Vertex
	logs     bytes.Buffer
}

func newCaptureWriter() *captureWriter {
	return &captureWriter{vertexes: make(map[string]*progrock.Vertex)}
}

func (w *captureWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, v := range update.Vertexes {
		w.vertexes[v.Name] = v
	}
	for _, l := range update.Logs {
		w.logs.Write(l.Data)
	}
	return nil
}

func (w *captureWriter) Close() error { return nil }

func (w *captureWriter) vertex(t *testing.T, name string) *progrock.Vertex {
	t.Helper()
	w.mu.Lock()
	defer w.mu.Unlock()
	v, ok := w.vertexes[name]
	require.True(t, ok, "vertex %q was not recorded", name)
	return v
}

func TestNew(t *testing.T) {
	assert.NotNil(t, sieveprogrock.New())
}

func TestRecorder_CompletedVertex(t *testing.T) {
	w := newCaptureWriter()
	recorder := sieveprogrock.NewRecorder(w)

	_, vertex := recorder.Record(context.Background(), "resolve python")
	vertex.Log(domain.LogLevelInfo, "2 files (2 expanded, 0 explicit)")
	vertex.Complete(nil)
	require.NoError(t, recorder.Close())

	v := w.vertex(t, "resolve python")
	assert.NotNil(t, v.Completed)
	assert.Nil(t, v.Error)
	assert.False(t, v.Cached)
	assert.Contains(t, w.logs.String(), "[INFO] 2 files (2 expanded, 0 explicit)")
}

func TestRecorder_CachedVertex(t *testing.T) {
	w := newCaptureWriter()
	recorder := sieveprogrock.NewRecorder(w)

	_, vertex := recorder.Record(context.Background(), "resolve go")
	vertex.Cached()
	vertex.Complete(nil)

	v := w.vertex(t, "resolve go")
	assert.True(t, v.Cached)
	assert.NotNil(t, v.Completed)
}

func TestRecorder_FailedVertex(t *testing.T) {
	w := newCaptureWriter()
	recorder := sieveprogrock.NewRecorder(w)

	_, vertex := recorder.Record(context.Background(), "resolve python")
	vertex.Log(domain.LogLevelError, "version control query failed")
	vertex.Complete(errors.New("not a git repository"))

	v := w.vertex(t, "resolve python")
	require.NotNil(t, v.Error)
	assert.Equal(t, "not a git repository", *v.Error)
	assert.Contains(t, w.logs.String(), "version control query failed")
}

func TestRecorder_SameNameSharesDigest(t *testing.T) {
	w := newCaptureWriter()
	recorder := sieveprogrock.NewRecorder(w)

	_, first := recorder.Record(context.Background(), "resolve c")
	first.Complete(nil)
	firstID := w.vertex(t, "resolve c").Id

	_, second := recorder.Record(context.Background(), "resolve c")
	second.Cached()
	second.Complete(nil)

	assert.Equal(t, firstID, w.vertex(t, "resolve c").Id)
}
