package sql

import (
	"fmt"
	"slices"
	"strings"

	"github.com/syssam/logicaldelete/dialect"
)

// Kind is the kind of a statement template.
type Kind string

// Statement kinds.
const (
	KindSelect Kind = "select"
	KindInsert Kind = "insert"
	KindUpdate Kind = "update"
	KindDelete Kind = "delete"
)

// Value is the right-hand side of an assignment or a condition: a named
// parameter bound at execution time or a literal embedded in the text.
type Value struct {
	Param   string `msgpack:"param,omitempty" json:"param,omitempty"`
	Literal string `msgpack:"literal,omitempty" json:"literal,omitempty"`
}

// Param returns a Value bound from the named argument.
func Param(name string) Value { return Value{Param: name} }

// Lit returns a Value embedding the given literal text.
func Lit(text string) Value { return Value{Literal: text} }

// IsParam reports whether v is a named parameter.
func (v Value) IsParam() bool { return v.Param != "" }

func (v Value) String() string {
	if v.IsParam() {
		return ":" + v.Param
	}
	return v.Literal
}

// Assignment is a "column = value" item of a set clause.
type Assignment struct {
	Column string `msgpack:"column" json:"column"`
	Value  Value  `msgpack:"value" json:"value"`
}

// Cond is a binary condition "column op value".
type Cond struct {
	Column string `msgpack:"column" json:"column"`
	Op     string `msgpack:"op" json:"op"`
	Value  Value  `msgpack:"value" json:"value"`
}

// EQ returns the condition "column = v".
func EQ(column string, v Value) Cond { return Cond{Column: column, Op: opEQ, Value: v} }

// NEQ returns the condition "column <> v".
func NEQ(column string, v Value) Cond { return Cond{Column: column, Op: opNEQ, Value: v} }

func (c Cond) String() string {
	return c.Column + " " + c.Op + " " + c.Value.String()
}

// Statement is a dialect-neutral template of one generated operation.
type Statement struct {
	Kind    Kind         `msgpack:"kind" json:"kind"`
	Table   string       `msgpack:"table" json:"table"`
	Columns []string     `msgpack:"columns,omitempty" json:"columns,omitempty"`
	Set     []Assignment `msgpack:"set,omitempty" json:"set,omitempty"`
	// Where conditions are ANDed. When ByExample is set they follow the
	// example clause.
	Where     []Cond `msgpack:"where,omitempty" json:"where,omitempty"`
	ByExample bool   `msgpack:"by_example,omitempty" json:"by_example,omitempty"`
	// Count turns a select into "select count(*)".
	Count bool `msgpack:"count,omitempty" json:"count,omitempty"`
}

// Clone returns a deep copy of s.
func (s *Statement) Clone() *Statement {
	if s == nil {
		return nil
	}
	c := *s
	c.Columns = slices.Clone(s.Columns)
	c.Set = slices.Clone(s.Set)
	c.Where = slices.Clone(s.Where)
	return &c
}

// Equal reports whether two statements render the same template.
func (s *Statement) Equal(o *Statement) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.Kind == o.Kind && s.Table == o.Table && s.ByExample == o.ByExample && s.Count == o.Count &&
		slices.Equal(s.Columns, o.Columns) && slices.Equal(s.Set, o.Set) && slices.Equal(s.Where, o.Where)
}

// Args holds the execution-time inputs of a statement.
type Args struct {
	// Values binds the named parameters.
	Values map[string]any
	// Example supplies the dynamic clause of by-example statements.
	Example *Example
}

// Render returns the query text of s in the given dialect and its bound
// arguments in placeholder order.
func (s *Statement) Render(d string, args Args) (string, []any, error) {
	b := &builder{dialect: d, values: args.Values}
	s.write(b, args.Example)
	if b.err != nil {
		return "", nil, b.err
	}
	return b.String(), b.args, nil
}

// String returns the template with parameters written as ":name" and the
// example clause as "<example>".
func (s *Statement) String() string {
	b := &builder{display: true}
	s.write(b, nil)
	return b.String()
}

func (s *Statement) write(b *builder, ex *Example) {
	switch s.Kind {
	case KindSelect:
		b.WriteString("select ")
		if ex != nil && ex.Distinct && s.ByExample {
			b.WriteString("distinct ")
		}
		if s.Count {
			b.WriteString("count(*)")
		} else {
			b.WriteString(strings.Join(s.Columns, ", "))
		}
		b.WriteString(" from " + s.Table)
		s.writeWhere(b, ex)
		if ex != nil && s.ByExample && !s.Count && ex.OrderByClause != "" {
			b.WriteString(" order by " + ex.OrderByClause)
		}
	case KindInsert:
		b.WriteString("insert into " + s.Table + " (")
		for i, a := range s.Set {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(a.Column)
		}
		b.WriteString(") values (")
		for i, a := range s.Set {
			if i > 0 {
				b.WriteString(", ")
			}
			b.value(a.Value)
		}
		b.WriteString(")")
	case KindUpdate:
		b.WriteString("update " + s.Table + " set ")
		for i, a := range s.Set {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(a.Column + " = ")
			b.value(a.Value)
		}
		s.writeWhere(b, ex)
	case KindDelete:
		b.WriteString("delete from " + s.Table)
		s.writeWhere(b, ex)
	default:
		b.fail(fmt.Errorf("sql: unknown statement kind %q", s.Kind))
	}
}

func (s *Statement) writeWhere(b *builder, ex *Example) {
	wrote := false
	switch {
	case !s.ByExample:
	case b.display:
		b.WriteString(" <example>")
		wrote = true
	default:
		groups := ex.valid()
		if len(groups) > 0 {
			b.WriteString(" WHERE ")
			// Several ORed groups are wrapped so that static conditions
			// bind to the whole clause.
			wrap := len(groups) > 1 && len(s.Where) > 0
			if wrap {
				b.WriteString("( ")
			}
			ex.write(b)
			if wrap {
				b.WriteString(" )")
			}
			wrote = true
		}
	}
	for i, c := range s.Where {
		switch {
		case wrote || i > 0:
			b.WriteString(" and ")
		default:
			b.WriteString(" where ")
		}
		b.cond(c)
	}
}

// builder accumulates query text and bound arguments.
type builder struct {
	strings.Builder
	dialect string
	values  map[string]any
	args    []any
	display bool
	err     error
}

func (b *builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// arg binds v and writes its placeholder.
func (b *builder) arg(v any) {
	if b.display {
		b.WriteString("?")
		return
	}
	b.args = append(b.args, v)
	b.WriteString(dialect.Placeholder(b.dialect, len(b.args)))
}

func (b *builder) value(v Value) {
	switch {
	case !v.IsParam():
		b.WriteString(v.Literal)
	case b.display:
		b.WriteString(":" + v.Param)
	default:
		x, ok := b.values[v.Param]
		if !ok {
			b.fail(fmt.Errorf("sql: missing value for parameter %q", v.Param))
		}
		b.arg(x)
	}
}

func (b *builder) cond(c Cond) {
	b.WriteString(c.Column + " " + c.Op)
	if c.Op == opIsNull || c.Op == opNotNull {
		return
	}
	b.WriteString(" ")
	b.value(c.Value)
}
