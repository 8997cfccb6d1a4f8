package gen

import (
	"errors"
	"log/slog"
	"maps"
	"strings"

	"github.com/syssam/logicaldelete/dialect"
)

// Option configures code generation.
type Option func(*Config) error

// WithPluginID sets the prefix of diagnostics.
func WithPluginID(id string) Option {
	return func(c *Config) error {
		if strings.TrimSpace(id) == "" {
			return NewConfigError("PluginID", nil, "plugin id cannot be empty")
		}
		c.PluginID = id
		return nil
	}
}

// WithDialect sets the SQL dialect. Driver names such as "pgx" and
// "sqlite3" are accepted.
func WithDialect(name string) Option {
	return func(c *Config) error {
		switch d := dialect.Normalize(name); d {
		case dialect.SQLite, dialect.MySQL, dialect.Postgres:
			c.Dialect = d
			return nil
		default:
			return NewConfigError("Dialect", name, "unsupported dialect; use sqlite, mysql, or postgres")
		}
	}
}

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithPackage sets the output package import path.
// For example: "github.com/org/project/mapper".
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithFeatures enables specific features.
func WithFeatures(features ...Feature) Option {
	return func(c *Config) error {
		c.Features = append(c.Features, features...)
		return nil
	}
}

// WithFeatureNames enables features by name.
func WithFeatureNames(names ...string) Option {
	return func(c *Config) error {
		for _, name := range names {
			f, ok := FeatureByName(name)
			if !ok {
				return NewConfigError("Feature", name, "unexpected feature name")
			}
			c.Features = append(c.Features, f)
		}
		return nil
	}
}

// WithLogicalDelete sets the global logical-delete configuration.
func WithLogicalDelete(ld LogicalDelete) Option {
	return func(c *Config) error {
		c.LogicalDelete = ld
		return nil
	}
}

// WithTable sets the override of a single table.
func WithTable(name string, ld LogicalDelete) Option {
	return func(c *Config) error {
		if name == "" {
			return NewConfigError("Table", nil, "table name cannot be empty")
		}
		if c.Tables == nil {
			c.Tables = make(map[string]LogicalDelete)
		}
		c.Tables[name] = ld
		return nil
	}
}

// WithTables merges per-table overrides.
func WithTables(tables map[string]LogicalDelete) Option {
	return func(c *Config) error {
		if c.Tables == nil {
			c.Tables = make(map[string]LogicalDelete, len(tables))
		}
		maps.Copy(c.Tables, tables)
		return nil
	}
}

// WithWorkers bounds parallel table processing.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return NewConfigError("Workers", n, "workers cannot be negative")
		}
		c.Workers = n
		return nil
	}
}

// WithLogger sets the logger of the run.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{PluginID: DefaultPluginID, Dialect: dialect.SQLite}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
