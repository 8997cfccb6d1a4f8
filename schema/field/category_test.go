package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		native string
		want   Category
	}{
		{"INTEGER", Numeric},
		{"bigint", Numeric},
		{"BIGINT UNSIGNED", Numeric},
		{"int(11) unsigned zerofill", Numeric},
		{"tinyint(1)", Numeric},
		{"decimal(10,2)", Numeric},
		{"NUMERIC(5, 0)", Numeric},
		{"double precision", Numeric},
		{"Double  Precision", Numeric},
		{"real", Numeric},
		{"float8", Numeric},
		{"varchar(20)", String},
		{"VARCHAR", String},
		{"character varying(255)", String},
		{"char(1)", String},
		{"text", String},
		{"longtext", String},
		{"boolean", Boolean},
		{"BOOL", Boolean},
		{"bit(1)", Boolean},
		{"BIT", Boolean},
		{"timestamp", Unsupported},
		{"datetime", Unsupported},
		{"blob", Unsupported},
		{"json", Unsupported},
		{"uuid", Unsupported},
		{"", Unsupported},
	}
	for _, tt := range tests {
		t.Run(tt.native, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.native))
		})
	}
}

func TestCategory(t *testing.T) {
	t.Run("names", func(t *testing.T) {
		assert.Equal(t, "numeric", Numeric.String())
		assert.Equal(t, "string", String.String())
		assert.Equal(t, "boolean", Boolean.String())
		assert.Equal(t, "unsupported", Unsupported.String())
		assert.Equal(t, "unsupported", Category(42).String())
	})

	t.Run("supported", func(t *testing.T) {
		assert.True(t, Numeric.Supported())
		assert.True(t, String.Supported())
		assert.True(t, Boolean.Supported())
		assert.False(t, Unsupported.Supported())
	})
}

func TestGoType(t *testing.T) {
	tests := map[string]string{
		"BIGINT":        "int64",
		"int unsigned":  "int64",
		"decimal(10,2)": "float64",
		"NUMERIC":       "float64",
		"real":          "float64",
		"double":        "float64",
		"varchar(20)":   "string",
		"boolean":       "bool",
		"bit(1)":        "bool",
		"timestamp":     "time.Time",
		"datetime(6)":   "time.Time",
		"blob":          "[]byte",
		"bytea":         "[]byte",
		"json":          "any",
	}
	for native, want := range tests {
		t.Run(native, func(t *testing.T) {
			assert.Equal(t, want, GoType(native))
		})
	}
}
