package load

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"ariga.io/atlas/sql/migrate"
	"ariga.io/atlas/sql/mysql"
	"ariga.io/atlas/sql/postgres"
	atlas "ariga.io/atlas/sql/schema"
	"ariga.io/atlas/sql/sqlite"

	"github.com/syssam/logicaldelete/dialect"
	"github.com/syssam/logicaldelete/dialect/sql"
	"github.com/syssam/logicaldelete/schema"
)

// Inspect introspects the tables of the database behind drv. With names,
// only those tables are returned, in the given order; otherwise all tables
// are returned sorted by name.
func Inspect(ctx context.Context, drv *sql.Driver, names ...string) ([]*schema.Table, error) {
	var (
		d          migrate.Driver
		formatType func(atlas.Type) (string, error)
		name       string
		err        error
	)
	switch drv.Dialect() {
	case dialect.SQLite:
		name = "main"
		d, err = sqlite.Open(drv.DB())
		formatType = sqlite.FormatType
	case dialect.Postgres:
		d, err = postgres.Open(drv.DB())
		formatType = postgres.FormatType
	case dialect.MySQL:
		d, err = mysql.Open(drv.DB())
		formatType = mysql.FormatType
	default:
		return nil, fmt.Errorf("load: inspect: unsupported dialect %q", drv.Dialect())
	}
	if err != nil {
		return nil, fmt.Errorf("load: open atlas driver: %w", err)
	}
	s, err := d.InspectSchema(ctx, name, &atlas.InspectOptions{Tables: names})
	if err != nil {
		return nil, fmt.Errorf("load: inspect schema: %w", err)
	}
	tables := make([]*schema.Table, 0, len(s.Tables))
	for _, at := range s.Tables {
		t, err := convertTable(at, formatType)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	if len(names) == 0 {
		slices.SortFunc(tables, func(a, b *schema.Table) int { return strings.Compare(a.Name, b.Name) })
		return tables, nil
	}
	return pick(tables, names)
}

func convertTable(at *atlas.Table, formatType func(atlas.Type) (string, error)) (*schema.Table, error) {
	t := schema.NewTable(at.Name)
	for _, ac := range at.Columns {
		native, err := nativeType(ac, formatType)
		if err != nil {
			return nil, fmt.Errorf("load: table %s: column %s: %w", at.Name, ac.Name, err)
		}
		c := schema.NewColumn(ac.Name, native)
		c.Nullable = ac.Type != nil && ac.Type.Null
		t.Columns = append(t.Columns, c)
	}
	if pk := at.PrimaryKey; pk != nil {
		for _, p := range pk.Parts {
			if p.C != nil {
				t.PrimaryKey = append(t.PrimaryKey, p.C.Name)
			}
		}
	}
	return t, nil
}

// nativeType returns the declared type of c, or the formatted atlas type
// when the declaration is unknown.
func nativeType(c *atlas.Column, formatType func(atlas.Type) (string, error)) (string, error) {
	switch {
	case c.Type == nil:
		return "", errors.New("missing column type")
	case c.Type.Raw != "":
		return c.Type.Raw, nil
	case c.Type.Type == nil:
		return "", errors.New("missing column type")
	default:
		return formatType(c.Type.Type)
	}
}

// pick orders tables like names. Missing tables are an error.
func pick(tables []*schema.Table, names []string) ([]*schema.Table, error) {
	picked := make([]*schema.Table, 0, len(names))
	for _, n := range names {
		i := slices.IndexFunc(tables, func(t *schema.Table) bool { return strings.EqualFold(t.Name, n) })
		if i < 0 {
			return nil, fmt.Errorf("load: table %q not found", n)
		}
		picked = append(picked, tables[i])
	}
	return picked, nil
}

// LoadTables returns the tables of the config, read from its schema file
// or introspected from the database at its DSN. When Only is set, only the
// overridden tables are returned.
func (c *Config) LoadTables(ctx context.Context) ([]*schema.Table, error) {
	var names []string
	if c.Only {
		names = c.TableNames()
	}
	switch {
	case c.Schema != "":
		tables, err := ReadSchema(c.Schema)
		if err != nil {
			return nil, err
		}
		if names == nil {
			return tables, nil
		}
		return pick(tables, names)
	case c.DSN != "":
		drv, err := sql.Open(c.DriverName(), c.DSN)
		if err != nil {
			return nil, fmt.Errorf("load: open database: %w", err)
		}
		defer drv.Close()
		return Inspect(ctx, drv, names...)
	default:
		return nil, errors.New("load: config has neither a schema file nor a dsn")
	}
}
