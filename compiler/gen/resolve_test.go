package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	global := LogicalDelete{Column: "del_flag", DeleteValue: "1", UnDeleteValue: "0"}

	t.Run("GlobalOnly", func(t *testing.T) {
		ld := Resolve(global, LogicalDelete{})
		assert.Equal(t, "del_flag", ld.Column)
		assert.Equal(t, "1", ld.DeleteValue)
		assert.Equal(t, "0", ld.UnDeleteValue)
		assert.True(t, ld.IsEnabled())
		assert.Equal(t, DefaultDeletedConstName, ld.DeletedConstName)
		assert.Equal(t, DefaultNotDeletedConstName, ld.NotDeletedConstName)
	})

	t.Run("OverrideWinsFieldWise", func(t *testing.T) {
		ld := Resolve(global, LogicalDelete{Column: "is_deleted", DeleteValue: "Y", DeletedConstName: "Gone"})
		assert.Equal(t, "is_deleted", ld.Column)
		assert.Equal(t, "Y", ld.DeleteValue)
		assert.Equal(t, "0", ld.UnDeleteValue)
		assert.Equal(t, "Gone", ld.DeletedConstName)
		assert.Equal(t, DefaultNotDeletedConstName, ld.NotDeletedConstName)
	})

	t.Run("Enabled", func(t *testing.T) {
		assert.False(t, Resolve(global, LogicalDelete{Enabled: Bool(false)}).IsEnabled())
		off := global
		off.Enabled = Bool(false)
		assert.False(t, Resolve(off, LogicalDelete{}).IsEnabled())
		assert.True(t, Resolve(off, LogicalDelete{Enabled: Bool(true)}).IsEnabled())
	})

	t.Run("Empty", func(t *testing.T) {
		ld := Resolve(LogicalDelete{}, LogicalDelete{})
		assert.Empty(t, ld.Column)
		assert.Empty(t, ld.DeleteValue)
	})
}
