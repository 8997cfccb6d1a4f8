package sql

import (
	"testing"

	"github.com/syssam/logicaldelete/dialect"
	"github.com/syssam/logicaldelete/schema/field"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatLiteral(t *testing.T) {
	tests := []struct {
		name     string
		category field.Category
		raw      string
		want     string
		wantErr  bool
	}{
		{name: "numeric", category: field.Numeric, raw: "1", want: "1"},
		{name: "numeric trimmed", category: field.Numeric, raw: " 0 ", want: "0"},
		{name: "numeric decimal", category: field.Numeric, raw: "-1.50", want: "-1.50"},
		{name: "numeric exponent", category: field.Numeric, raw: "1e3", want: "1e3"},
		{name: "numeric invalid", category: field.Numeric, raw: "Y", wantErr: true},
		{name: "numeric empty", category: field.Numeric, raw: "", wantErr: true},
		{name: "string", category: field.String, raw: "Y", want: "'Y'"},
		{name: "string quote", category: field.String, raw: "it's", want: "'it''s'"},
		{name: "string empty", category: field.String, raw: "", want: "''"},
		{name: "boolean true", category: field.Boolean, raw: "true", want: "true"},
		{name: "boolean one", category: field.Boolean, raw: "1", want: "true"},
		{name: "boolean zero", category: field.Boolean, raw: "0", want: "false"},
		{name: "boolean yes", category: field.Boolean, raw: "YES", want: "true"},
		{name: "boolean invalid", category: field.Boolean, raw: "maybe", wantErr: true},
		{name: "unsupported", category: field.Unsupported, raw: "1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatLiteral(tt.category, tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidLiteral)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCriteriaLiteral(t *testing.T) {
	got, err := CriteriaLiteral(dialect.SQLite, field.Boolean, "true")
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	got, err = CriteriaLiteral(dialect.MySQL, field.Boolean, "false")
	require.NoError(t, err)
	assert.Equal(t, "0", got)

	got, err = CriteriaLiteral(dialect.Postgres, field.Boolean, "1")
	require.NoError(t, err)
	assert.Equal(t, "true", got)

	got, err = CriteriaLiteral(dialect.SQLite, field.String, "Y")
	require.NoError(t, err)
	assert.Equal(t, "'Y'", got)

	_, err = CriteriaLiteral(dialect.SQLite, field.Boolean, "nope")
	assert.ErrorIs(t, err, ErrInvalidLiteral)
}

func TestQuote(t *testing.T) {
	assert.Equal(t, "'abc'", Quote("abc"))
	assert.Equal(t, "'a''b''c'", Quote("a'b'c"))
	assert.Equal(t, `'a\b'`, Quote(`a\b`))
}

func TestQuoteDialect(t *testing.T) {
	assert.Equal(t, `'a\\b'`, QuoteDialect(dialect.MySQL, `a\b`))
	assert.Equal(t, `'it''s\\'`, QuoteDialect("mysql", `it's\`))
	assert.Equal(t, `'a\b'`, QuoteDialect(dialect.SQLite, `a\b`))
	assert.Equal(t, `'a\b'`, QuoteDialect(dialect.Postgres, `a\b`))

	got, err := CriteriaLiteral(dialect.MySQL, field.String, `D\`)
	require.NoError(t, err)
	assert.Equal(t, `'D\\'`, got)
	got, err = FormatDialectLiteral(dialect.MySQL, field.Numeric, "1")
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	assert.Equal(t, `update tb set a = 'x\\y'`, Interpolate(dialect.MySQL, "update tb set a = ?", []any{`x\y`}))
}
