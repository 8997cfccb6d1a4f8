package gen

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

// Writer writes generated files in parallel. Go files are rendered and
// formatted with goimports; files whose content is unchanged on disk are
// not rewritten.
type Writer struct {
	dir     string
	workers int
	files   []fileTask

	// Metrics for performance monitoring
	mu      sync.Mutex
	metrics WriterMetrics
}

// WriterMetrics tracks write performance.
type WriterMetrics struct {
	FilesWritten int
	FilesSkipped int
	TotalBytes   int64
	RenderTime   time.Duration
	FormatTime   time.Duration
	WriteTime    time.Duration
}

// fileTask represents a single file write.
type fileTask struct {
	name string    // output file path (relative to dir)
	file *jen.File // rendered and formatted when set
	raw  []byte    // written verbatim otherwise
}

// NewWriter creates a writer for the given output directory.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir, workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers sets the number of parallel workers.
func (w *Writer) WithWorkers(n int) *Writer {
	if n > 0 {
		w.workers = n
	}
	return w
}

// AddFile queues a Go file. Nil files are ignored.
func (w *Writer) AddFile(name string, f *jen.File) {
	if f != nil {
		w.files = append(w.files, fileTask{name: name, file: f})
	}
}

// AddRaw queues a file written verbatim.
func (w *Writer) AddRaw(name string, b []byte) {
	w.files = append(w.files, fileTask{name: name, raw: b})
}

// Metrics returns the write metrics.
func (w *Writer) Metrics() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

// Write writes all queued files.
func (w *Writer) Write(ctx context.Context) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)
	for _, f := range w.files {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return w.writeFile(f)
			}
		})
	}
	return eg.Wait()
}

func (w *Writer) writeFile(f fileTask) error {
	fullPath := filepath.Join(w.dir, f.name)
	content := f.raw
	if f.file != nil {
		start := time.Now()
		var buf bytes.Buffer
		if err := f.file.Render(&buf); err != nil {
			return NewGenerationError("render", f.name, "jennifer render failed", err)
		}
		rendered := time.Since(start)

		start = time.Now()
		formatted, err := imports.Process(fullPath, buf.Bytes(), nil)
		if err != nil {
			debugPath := fullPath + ".error"
			_ = os.WriteFile(debugPath, buf.Bytes(), 0o644)
			return NewGenerationError("format", f.name, "unformatted written to "+debugPath, err)
		}
		content = formatted
		w.mu.Lock()
		w.metrics.RenderTime += rendered
		w.metrics.FormatTime += time.Since(start)
		w.mu.Unlock()
	}

	if snapshotUnchanged(fullPath, content) {
		w.mu.Lock()
		w.metrics.FilesSkipped++
		w.mu.Unlock()
		return nil
	}
	start := time.Now()
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", f.name, err)
	}
	if err := os.WriteFile(fullPath, content, 0o644); err != nil {
		return NewGenerationError("write", f.name, "write failed", err)
	}

	w.mu.Lock()
	w.metrics.FilesWritten++
	w.metrics.TotalBytes += int64(len(content))
	w.metrics.WriteTime += time.Since(start)
	w.mu.Unlock()
	return nil
}
