package gen

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnostics(t *testing.T) {
	var ds Diagnostics
	ds.Add(&ValidationError{PluginID: "ld", Table: "ta", Column: "x", Kind: ErrColumnNotFound})
	ds.Add(&ValidationError{PluginID: "ld", Table: "tb", Kind: ErrMissingDeleteValue})

	assert.Equal(t, 2, ds.Len())
	all := ds.All()
	assert.Equal(t, "ta", all[0].Table)
	assert.Equal(t, "tb", all[1].Table)
	assert.Equal(t, all[0].Message, all[0].String())
	assert.Equal(t, []string{
		"ld: ta has no column matching the configured logical-delete column (x)",
		"ld: tb has no configured logical-delete value; configure logicalDeleteValue and logicalUnDeleteValue globally or per table",
	}, ds.Messages())

	all[0].Message = "changed"
	assert.NotEqual(t, "changed", ds.All()[0].Message)
}

func TestDiagnostics_Concurrent(t *testing.T) {
	var (
		ds Diagnostics
		wg sync.WaitGroup
	)
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ds.Add(&ValidationError{Table: "tb", Kind: ErrColumnNotFound})
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, ds.Len())
}
