package gen

import (
	"strings"

	"github.com/syssam/logicaldelete/dialect/sql"
	"github.com/syssam/logicaldelete/schema"
	"github.com/syssam/logicaldelete/schema/field"
)

// Status is the outcome of validating a table.
type Status uint8

const (
	// Disabled tables have no delete column configured, or are turned off.
	// They are left untouched and produce no diagnostic.
	Disabled Status = iota
	// Valid tables are synthesized.
	Valid
	// Invalid tables produce exactly one diagnostic and keep their plain
	// physical-delete operations.
	Invalid
)

func (s Status) String() string {
	switch s {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "disabled"
	}
}

// EffectiveConfig is the resolved and validated configuration of a table.
type EffectiveConfig struct {
	Table  string
	Status Status
	// Err is set when Status is Invalid.
	Err *ValidationError
	// Config is the resolved configuration.
	Config LogicalDelete
	// Column and Category are set once the delete column is matched.
	Column   *schema.Column
	Category field.Category
	// DeleteLiteral and UnDeleteLiteral are the literals written by
	// assignments and constants.
	DeleteLiteral   string
	UnDeleteLiteral string
	// DeletedCriteria and NotDeletedCriteria are the literals used in
	// comparisons.
	DeletedCriteria    string
	NotDeletedCriteria string
}

// Valid reports whether the table is ready for synthesis.
func (ec *EffectiveConfig) Valid() bool {
	return ec != nil && ec.Status == Valid
}

// Validate checks a resolved configuration against the table columns. The
// checks run in a fixed order and the first failure wins:
//
//  1. the delete column has an unsupported type
//  2. the delete column does not exist
//  3. the delete/un-delete values are not both configured
//  4. a value is not a valid literal of the column category
func Validate(pluginID, d string, ld LogicalDelete, t *schema.Table) *EffectiveConfig {
	ec := &EffectiveConfig{Table: t.Name, Config: ld}
	column := strings.TrimSpace(ld.Column)
	if column == "" || !ld.IsEnabled() {
		ec.Status = Disabled
		return ec
	}
	invalid := func(err *ValidationError) *EffectiveConfig {
		err.PluginID, err.Table = pluginID, t.Name
		ec.Status, ec.Err = Invalid, err
		return ec
	}
	c, ok := t.Column(column)
	switch {
	case ok && !c.Category.Supported():
		return invalid(&ValidationError{Column: c.Name, Kind: ErrUnsupportedColumnType})
	case !ok:
		return invalid(&ValidationError{Column: column, Kind: ErrColumnNotFound})
	}
	ec.Column, ec.Category = c, c.Category
	if ld.DeleteValue == "" || ld.UnDeleteValue == "" {
		return invalid(&ValidationError{Column: c.Name, Kind: ErrMissingDeleteValue})
	}
	var err error
	for _, lit := range []struct {
		raw           string
		plain, inCrit *string
	}{
		{ld.DeleteValue, &ec.DeleteLiteral, &ec.DeletedCriteria},
		{ld.UnDeleteValue, &ec.UnDeleteLiteral, &ec.NotDeletedCriteria},
	} {
		if *lit.plain, err = sql.FormatDialectLiteral(d, c.Category, lit.raw); err == nil {
			*lit.inCrit, err = sql.CriteriaLiteral(d, c.Category, lit.raw)
		}
		if err != nil {
			return invalid(&ValidationError{
				Column:   c.Name,
				Value:    lit.raw,
				Category: c.Category.String(),
				Kind:     ErrMalformedDeleteValue,
				Cause:    err,
			})
		}
	}
	ec.Status = Valid
	return ec
}

// Validate resolves and validates the configuration of t.
func (c *Config) Validate(t *schema.Table) *EffectiveConfig {
	return Validate(c.pluginID(), c.dialect(), Resolve(c.LogicalDelete, c.Override(t.Name)), t)
}
