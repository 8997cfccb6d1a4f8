package gen

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/syssam/logicaldelete/dialect"
	"github.com/syssam/logicaldelete/schema"
)

// DefaultPluginID prefixes every diagnostic unless WithPluginID is used.
const DefaultPluginID = "logicaldelete"

// Config holds the configuration of a generation run.
type Config struct {
	// PluginID prefixes diagnostics.
	PluginID string
	// Dialect selects placeholder style and boolean comparison literals.
	Dialect string
	// Package is the import path of the generated mapper package.
	Package string
	// Target is the output directory of generated files.
	Target string
	// Header is the comment written at the top of generated files.
	Header string
	// Features are the enabled feature flags.
	Features []Feature
	// LogicalDelete is the global configuration.
	LogicalDelete LogicalDelete
	// Tables holds the per-table overrides keyed by table name.
	Tables map[string]LogicalDelete
	// Workers bounds parallel table processing. Zero means GOMAXPROCS.
	Workers int
	// Logger receives run records. Nil means slog.Default().
	Logger *slog.Logger
}

// Output groups the emission settings.
type Output struct {
	Package string
	Target  string
	Header  string
}

// Output returns the emission settings of the config.
func (c *Config) Output() Output {
	return Output{Package: c.Package, Target: c.Target, Header: c.Header}
}

// FeatureEnabled reports if the given feature name is enabled.
// It's exported to be used by the emitters.
func (c *Config) FeatureEnabled(name string) (bool, error) {
	for _, f := range allFeatures {
		if name == f.Name {
			return slices.ContainsFunc(c.Features, func(e Feature) bool { return e.Name == name }), nil
		}
	}
	return false, NewConfigError("Feature", name, "unexpected feature name")
}

// Override returns the per-table override of the given table. An exact
// name match wins; otherwise names are matched like column names.
func (c *Config) Override(table string) LogicalDelete {
	if ld, ok := c.Tables[table]; ok {
		return ld
	}
	for _, name := range slices.Sorted(maps.Keys(c.Tables)) {
		if schema.EqualName(name, table) {
			return c.Tables[name]
		}
	}
	return LogicalDelete{}
}

func (c *Config) pluginID() string {
	if c.PluginID == "" {
		return DefaultPluginID
	}
	return c.PluginID
}

func (c *Config) dialect() string {
	if c.Dialect == "" {
		return dialect.SQLite
	}
	return c.Dialect
}

func (c *Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}
