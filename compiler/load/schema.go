package load

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/syssam/logicaldelete/schema"
)

// Schema is the content of a schema file: the tables an upstream
// generator or a previous inspection produced.
type Schema struct {
	Tables []*Table `yaml:"tables"`
}

// Table represents a schema.Table loaded from a schema file.
type Table struct {
	Name       string    `yaml:"name"`
	PrimaryKey []string  `yaml:"primaryKey,omitempty,flow"`
	Columns    []*Column `yaml:"columns"`
}

// Column represents a schema.Column loaded from a schema file.
type Column struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Nullable bool   `yaml:"nullable,omitempty"`
}

// NewTable creates a loaded table from a schema table.
func NewTable(t *schema.Table) *Table {
	lt := &Table{Name: t.Name, PrimaryKey: t.PrimaryKey}
	for _, c := range t.Columns {
		lt.Columns = append(lt.Columns, &Column{Name: c.Name, Type: c.NativeType, Nullable: c.Nullable})
	}
	return lt
}

// Table converts the loaded table. Column categories are classified from
// their native types.
func (t *Table) Table() (*schema.Table, error) {
	if t.Name == "" {
		return nil, fmt.Errorf("load: table without a name")
	}
	st := schema.NewTable(t.Name)
	for _, c := range t.Columns {
		if c.Name == "" {
			return nil, fmt.Errorf("load: table %s: column without a name", t.Name)
		}
		col := schema.NewColumn(c.Name, c.Type)
		col.Nullable = c.Nullable
		st.Columns = append(st.Columns, col)
	}
	for _, pk := range t.PrimaryKey {
		if _, ok := st.Column(pk); !ok {
			return nil, fmt.Errorf("load: table %s: primary key column %q not found", t.Name, pk)
		}
	}
	return st.SetPrimaryKey(t.PrimaryKey...), nil
}

// MarshalSchema encodes tables into a schema file.
func MarshalSchema(tables []*schema.Table) ([]byte, error) {
	s := &Schema{}
	for _, t := range tables {
		s.Tables = append(s.Tables, NewTable(t))
	}
	return yaml.Marshal(s)
}

// UnmarshalSchema decodes the given buffer to tables.
func UnmarshalSchema(buf []byte) ([]*schema.Table, error) {
	s := &Schema{}
	if err := yaml.Unmarshal(buf, s); err != nil {
		return nil, fmt.Errorf("load: decode schema: %w", err)
	}
	tables := make([]*schema.Table, 0, len(s.Tables))
	for _, lt := range s.Tables {
		t, err := lt.Table()
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// ReadSchema reads and decodes the schema file at path.
func ReadSchema(path string) ([]*schema.Table, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: read schema: %w", err)
	}
	return UnmarshalSchema(buf)
}
