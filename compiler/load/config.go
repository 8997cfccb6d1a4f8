package load

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/syssam/logicaldelete/compiler/gen"
	"github.com/syssam/logicaldelete/schema"
)

// Config is the content of a configuration file.
type Config struct {
	PluginID string `yaml:"pluginId,omitempty"`
	Dialect  string `yaml:"dialect,omitempty"`
	// Driver is the database/sql driver name. Defaults to the dialect.
	Driver string `yaml:"driver,omitempty"`
	// DSN is the data source name used by schema introspection. ${VAR}
	// references are expanded.
	DSN string `yaml:"dsn,omitempty"`
	// Schema is a schema file used instead of introspection.
	Schema   string   `yaml:"schema,omitempty"`
	Package  string   `yaml:"package,omitempty"`
	Target   string   `yaml:"target,omitempty"`
	Header   string   `yaml:"header,omitempty"`
	Workers  int      `yaml:"workers,omitempty"`
	Features []string `yaml:"features,omitempty"`
	// LogicalDelete is the global logical-delete configuration.
	LogicalDelete gen.LogicalDelete `yaml:"logicalDelete,omitempty"`
	// Tables are the per-table overrides. Only listed tables are
	// processed when Only is set.
	Tables []TableConfig `yaml:"tables,omitempty"`
	Only   bool          `yaml:"only,omitempty"`

	path string
}

// TableConfig is the override of a single table.
type TableConfig struct {
	Name          string            `yaml:"name"`
	LogicalDelete gen.LogicalDelete `yaml:"logicalDelete,omitempty"`
}

// LoadConfig reads the configuration file at path. A .env file next to it
// is loaded into the environment first; variables already set win.
// Relative target and schema paths are resolved against the file directory.
func LoadConfig(path string) (*Config, error) {
	dir := filepath.Dir(path)
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	c, err := ParseConfig(buf)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	c.path = path
	c.Target = resolve(dir, c.Target)
	c.Schema = resolve(dir, c.Schema)
	return c, nil
}

// ParseConfig decodes a configuration. Unknown fields are rejected.
func ParseConfig(buf []byte) (*Config, error) {
	c := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(buf))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	c.DSN = os.ExpandEnv(c.DSN)
	c.Target = os.ExpandEnv(c.Target)
	for i, t := range c.Tables {
		if t.Name == "" {
			return nil, errors.New("table override without a name")
		}
		for _, prev := range c.Tables[:i] {
			if schema.EqualName(prev.Name, t.Name) {
				return nil, fmt.Errorf("duplicate table override %q", t.Name)
			}
		}
	}
	return c, nil
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string { return c.path }

// DriverName returns the database/sql driver name of the config.
func (c *Config) DriverName() string {
	if c.Driver != "" {
		return c.Driver
	}
	return c.Dialect
}

// TableNames returns the names of the overridden tables.
func (c *Config) TableNames() []string {
	names := make([]string, len(c.Tables))
	for i, t := range c.Tables {
		names[i] = t.Name
	}
	return names
}

// Options converts the file content to generator options.
func (c *Config) Options() []gen.Option {
	opts := []gen.Option{gen.WithLogicalDelete(c.LogicalDelete)}
	if c.PluginID != "" {
		opts = append(opts, gen.WithPluginID(c.PluginID))
	}
	if d := c.Dialect; d != "" || c.Driver != "" {
		if d == "" {
			d = c.Driver
		}
		opts = append(opts, gen.WithDialect(d))
	}
	if c.Package != "" {
		opts = append(opts, gen.WithPackage(c.Package))
	}
	if c.Target != "" {
		opts = append(opts, gen.WithTarget(c.Target))
	}
	if c.Header != "" {
		opts = append(opts, gen.WithHeader(c.Header))
	}
	if c.Workers != 0 {
		opts = append(opts, gen.WithWorkers(c.Workers))
	}
	if len(c.Features) > 0 {
		opts = append(opts, gen.WithFeatureNames(c.Features...))
	}
	for _, t := range c.Tables {
		opts = append(opts, gen.WithTable(t.Name, t.LogicalDelete))
	}
	return opts
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
