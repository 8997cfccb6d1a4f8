package gen

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/logicaldelete/dialect"
)

func TestNewConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		c, err := NewConfig()
		require.NoError(t, err)
		assert.Equal(t, DefaultPluginID, c.PluginID)
		assert.Equal(t, dialect.SQLite, c.Dialect)
		assert.Equal(t, slog.Default(), c.logger())
	})

	t.Run("Options", func(t *testing.T) {
		c, err := NewConfig(
			WithPluginID("ld"),
			WithDialect("pgx"),
			WithPackage("example.com/app/mapper"),
			WithTarget("/tmp/mapper"),
			WithHeader("// header"),
			WithWorkers(2),
			WithFeatureNames("logicaldelete/restore"),
			WithLogicalDelete(LogicalDelete{Column: "del_flag"}),
			WithTable("tb", LogicalDelete{DeleteValue: "1"}),
			WithTables(map[string]LogicalDelete{"tc": {Enabled: Bool(false)}}),
		)
		require.NoError(t, err)
		assert.Equal(t, "ld", c.PluginID)
		assert.Equal(t, dialect.Postgres, c.Dialect)
		assert.Equal(t, Output{Package: "example.com/app/mapper", Target: "/tmp/mapper", Header: "// header"}, c.Output())
		assert.Equal(t, 2, c.Workers)
		assert.Equal(t, "1", c.Override("tb").DeleteValue)
		assert.False(t, c.Override("tc").IsEnabled())
		assert.Equal(t, LogicalDelete{}, c.Override("missing"))

		enabled, err := c.FeatureEnabled(FeatureRestore.Name)
		require.NoError(t, err)
		assert.True(t, enabled)
		enabled, err = c.FeatureEnabled(FeatureSnapshot.Name)
		require.NoError(t, err)
		assert.False(t, enabled)
		_, err = c.FeatureEnabled("unknown")
		assert.True(t, IsConfigError(err))
	})

	t.Run("Invalid", func(t *testing.T) {
		for name, opt := range map[string]Option{
			"PluginID": WithPluginID(" "),
			"Dialect":  WithDialect("oracle"),
			"Package":  WithPackage(""),
			"Target":   WithTarget(""),
			"Feature":  WithFeatureNames("unknown"),
			"Table":    WithTable("", LogicalDelete{}),
			"Workers":  WithWorkers(-1),
		} {
			t.Run(name, func(t *testing.T) {
				_, err := NewConfig(opt)
				assert.True(t, IsConfigError(err), "got %v", err)
			})
		}
	})

	t.Run("MustNewConfigPanics", func(t *testing.T) {
		assert.Panics(t, func() { MustNewConfig(WithDialect("oracle")) })
	})
}

func TestFeatures(t *testing.T) {
	f, ok := FeatureByName("schema/snapshot")
	require.True(t, ok)
	assert.Equal(t, Experimental, f.Stage)
	_, ok = FeatureByName("privacy")
	assert.False(t, ok)
	assert.Equal(t, "alpha", FeatureRestore.Stage.String())
	assert.Equal(t, "unknown", FeatureStage(0).String())

	c := &Config{Features: []Feature{FeatureSnapshot, FeatureRestore}}
	assert.Equal(t, "schema/snapshot,logicaldelete/restore", enabledFeatures(c))
}

func TestConfig_ApplyAll(t *testing.T) {
	c := &Config{}
	err := c.ApplyAll(WithDialect("oracle"), WithWorkers(-1), WithPluginID("ld"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Dialect")
	assert.Contains(t, err.Error(), "Workers")
	assert.Equal(t, "ld", c.PluginID)
}

func TestConfig_Override(t *testing.T) {
	c := MustNewConfig(
		WithTable("tb", LogicalDelete{Column: "del_flag"}),
		WithTable("TB", LogicalDelete{Column: "ts_1"}),
		WithTable("straße", LogicalDelete{Column: "geloescht"}),
	)
	assert.Equal(t, "del_flag", c.Override("tb").Column)
	assert.Equal(t, "ts_1", c.Override("TB").Column)
	assert.Equal(t, "ts_1", c.Override("Tb").Column)
	assert.Equal(t, "geloescht", c.Override("STRASSE").Column)
	assert.Equal(t, LogicalDelete{}, c.Override("tc"))
}
