package gen

import (
	"slices"
	"sync"
)

// Diagnostic is a non-fatal configuration problem of one table.
type Diagnostic struct {
	Table   string
	Message string
	Err     *ValidationError
}

func (d Diagnostic) String() string { return d.Message }

// Diagnostics is an ordered, append-only, concurrency-safe diagnostic sink.
type Diagnostics struct {
	mu    sync.Mutex
	items []Diagnostic
}

// Add appends a diagnostic for err.
func (ds *Diagnostics) Add(err *ValidationError) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.items = append(ds.items, Diagnostic{Table: err.Table, Message: err.Error(), Err: err})
}

// All returns a copy of the diagnostics in emission order.
func (ds *Diagnostics) All() []Diagnostic {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return slices.Clone(ds.items)
}

// Messages returns the diagnostic messages in emission order.
func (ds *Diagnostics) Messages() []string {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	msgs := make([]string, len(ds.items))
	for i, d := range ds.items {
		msgs[i] = d.Message
	}
	return msgs
}

// Len returns the number of diagnostics.
func (ds *Diagnostics) Len() int {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return len(ds.items)
}
