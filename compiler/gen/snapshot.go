package gen

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/syssam/logicaldelete/schema"
)

// SnapshotExt is the file extension of table snapshots.
const SnapshotExt = ".snapshot"

// snapshotVersion is bumped when the encoded layout changes.
const snapshotVersion = 1

// Snapshot is the encoded outcome of one table: its effective status and
// final operation set.
type Snapshot struct {
	Version  int           `msgpack:"version"`
	PluginID string        `msgpack:"plugin_id"`
	Dialect  string        `msgpack:"dialect"`
	Status   string        `msgpack:"status"`
	Table    *schema.Table `msgpack:"table"`
}

// NewSnapshot returns the snapshot of a processed table.
func NewSnapshot(c *Config, t *schema.Table, ec *EffectiveConfig) *Snapshot {
	return &Snapshot{
		Version:  snapshotVersion,
		PluginID: c.pluginID(),
		Dialect:  c.dialect(),
		Status:   ec.statusString(),
		Table:    t,
	}
}

// Encode returns the msgpack encoding of s. Equal snapshots encode to
// equal bytes.
func (s *Snapshot) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("encode snapshot of %s: %w", s.Table.Name, err)
	}
	return buf.Bytes(), nil
}

// DecodeSnapshot decodes an encoded snapshot.
func DecodeSnapshot(b []byte) (*Snapshot, error) {
	s := &Snapshot{}
	if err := msgpack.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if s.Version != snapshotVersion {
		return nil, fmt.Errorf("decode snapshot: unsupported version %d", s.Version)
	}
	return s, nil
}

// ReadSnapshot reads the snapshot file at path. A missing file returns
// nil and no error.
func ReadSnapshot(path string) (*Snapshot, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return DecodeSnapshot(b)
}

// snapshotUnchanged reports whether the file at path holds exactly b.
func snapshotUnchanged(path string, b []byte) bool {
	old, err := os.ReadFile(path)
	return err == nil && bytes.Equal(old, b)
}
