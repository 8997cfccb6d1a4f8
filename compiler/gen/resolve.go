package gen

// Default constant name suffixes.
const (
	DefaultDeletedConstName    = "IsDeleted"
	DefaultNotDeletedConstName = "NotDeleted"
)

// LogicalDelete is one level of the logical-delete configuration: the
// global settings or the override of a single table.
type LogicalDelete struct {
	// Column is the name of the delete flag column.
	Column string `yaml:"column,omitempty"`
	// DeleteValue is the raw value marking a row as deleted.
	DeleteValue string `yaml:"logicalDeleteValue,omitempty"`
	// UnDeleteValue is the raw value marking a row as not deleted.
	UnDeleteValue string `yaml:"logicalUnDeleteValue,omitempty"`
	// Enabled turns the feature off for a table when false. Nil inherits.
	Enabled *bool `yaml:"enabled,omitempty"`
	// DeletedConstName and NotDeletedConstName are the suffixes of the
	// generated constants.
	DeletedConstName    string `yaml:"deletedConstName,omitempty"`
	NotDeletedConstName string `yaml:"notDeletedConstName,omitempty"`
}

// IsEnabled reports whether the feature is enabled. Nil means enabled.
func (ld LogicalDelete) IsEnabled() bool {
	return ld.Enabled == nil || *ld.Enabled
}

// Resolve merges the global configuration with a table override. Every
// non-empty override field replaces the global field; unset fields fall
// back to their defaults. No validation is done.
func Resolve(global, table LogicalDelete) LogicalDelete {
	return LogicalDelete{
		Column:              pick(table.Column, global.Column, ""),
		DeleteValue:         pick(table.DeleteValue, global.DeleteValue, ""),
		UnDeleteValue:       pick(table.UnDeleteValue, global.UnDeleteValue, ""),
		Enabled:             pickBool(table.Enabled, global.Enabled, true),
		DeletedConstName:    pick(table.DeletedConstName, global.DeletedConstName, DefaultDeletedConstName),
		NotDeletedConstName: pick(table.NotDeletedConstName, global.NotDeletedConstName, DefaultNotDeletedConstName),
	}
}

func pick(table, global, def string) string {
	switch {
	case table != "":
		return table
	case global != "":
		return global
	default:
		return def
	}
}

func pickBool(table, global *bool, def bool) *bool {
	v := def
	switch {
	case table != nil:
		v = *table
	case global != nil:
		v = *global
	}
	return &v
}

// Bool returns a pointer to b, for LogicalDelete.Enabled.
func Bool(b bool) *bool { return &b }
