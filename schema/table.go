package schema

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/syssam/logicaldelete/schema/field"
)

// Column is an introspected table column.
type Column struct {
	Name       string         `msgpack:"name" json:"name"`
	NativeType string         `msgpack:"native_type" json:"native_type"`
	Category   field.Category `msgpack:"category" json:"category"`
	Nullable   bool           `msgpack:"nullable,omitempty" json:"nullable,omitempty"`
}

// NewColumn returns a column with its category classified from nativeType.
func NewColumn(name, nativeType string) *Column {
	return &Column{Name: name, NativeType: nativeType, Category: field.Classify(nativeType)}
}

// GoType returns the Go type of the column values.
func (c *Column) GoType() string { return field.GoType(c.NativeType) }

// Table is an introspected table with its generated operations.
type Table struct {
	Name       string       `msgpack:"name" json:"name"`
	PrimaryKey []string     `msgpack:"primary_key,omitempty" json:"primary_key,omitempty"`
	Columns    []*Column    `msgpack:"columns" json:"columns"`
	Operations []*Operation `msgpack:"operations,omitempty" json:"operations,omitempty"`
	Constants  []*Constant  `msgpack:"constants,omitempty" json:"constants,omitempty"`
}

// NewTable returns a table with the given columns.
func NewTable(name string, columns ...*Column) *Table {
	return &Table{Name: name, Columns: columns}
}

// SetPrimaryKey sets the primary-key column names and returns t.
func (t *Table) SetPrimaryKey(columns ...string) *Table {
	t.PrimaryKey = columns
	return t
}

// Column returns the column with the given name. Names are matched
// case-insensitively.
func (t *Table) Column(name string) (*Column, bool) {
	for _, c := range t.Columns {
		if EqualName(c.Name, name) {
			return c, true
		}
	}
	return nil, false
}

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// HasPrimaryKey reports whether the table declares a primary key.
func (t *Table) HasPrimaryKey() bool { return len(t.PrimaryKey) > 0 }

// IsPrimaryKey reports whether the named column is part of the primary key.
func (t *Table) IsPrimaryKey(name string) bool {
	return slices.ContainsFunc(t.PrimaryKey, func(k string) bool { return strings.EqualFold(k, name) })
}

// PrimaryKeyColumns returns the primary-key columns. Names without a
// matching column are skipped.
func (t *Table) PrimaryKeyColumns() []*Column {
	var cs []*Column
	for _, name := range t.PrimaryKey {
		if c, ok := t.Column(name); ok {
			cs = append(cs, c)
		}
	}
	return cs
}

// Operation returns the operation with the given id.
func (t *Table) Operation(id string) (*Operation, bool) {
	i := slices.IndexFunc(t.Operations, func(op *Operation) bool { return op.ID == id })
	if i < 0 {
		return nil, false
	}
	return t.Operations[i], true
}

// AddOperation replaces the operation with the same id, or appends op.
func (t *Table) AddOperation(op *Operation) {
	if i := slices.IndexFunc(t.Operations, func(o *Operation) bool { return o.ID == op.ID }); i >= 0 {
		t.Operations[i] = op
		return
	}
	t.Operations = append(t.Operations, op)
}

// OperationsOf returns the operations of the given target in order.
func (t *Table) OperationsOf(target Target) []*Operation {
	var ops []*Operation
	for _, op := range t.Operations {
		if op.Target == target {
			ops = append(ops, op)
		}
	}
	return ops
}

// AddConstant replaces the constant with the same name, or appends c.
func (t *Table) AddConstant(c *Constant) {
	if i := slices.IndexFunc(t.Constants, func(o *Constant) bool { return o.Name == c.Name }); i >= 0 {
		t.Constants[i] = c
		return
	}
	t.Constants = append(t.Constants, c)
}

// Clone returns a deep copy of t.
func (t *Table) Clone() *Table {
	c := &Table{
		Name:       t.Name,
		PrimaryKey: slices.Clone(t.PrimaryKey),
		Columns:    make([]*Column, len(t.Columns)),
		Operations: make([]*Operation, len(t.Operations)),
	}
	for i, col := range t.Columns {
		cc := *col
		c.Columns[i] = &cc
	}
	for i, op := range t.Operations {
		c.Operations[i] = op.Clone()
	}
	for _, k := range t.Constants {
		kc := *k
		c.Constants = append(c.Constants, &kc)
	}
	return c
}

// EqualName reports whether two SQL identifiers name the same object.
// Names are compared under full Unicode case folding, so "STRASSE" and
// "straße" are equal.
func EqualName(a, b string) bool {
	if strings.EqualFold(a, b) {
		return true
	}
	fold := cases.Fold()
	return fold.String(a) == fold.String(b)
}
