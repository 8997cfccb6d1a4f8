package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/logicaldelete/schema"
)

// Emitter generates the Go file of a processed table. Emitters live in
// their own packages and receive a GeneratorHelper, which keeps this
// package free of emission details.
//
//	g := gen.NewGenerator(cfg)
//	g.WithEmitter(mapper.New(g))
type Emitter interface {
	// Name returns the emitter name, e.g. "mapper".
	Name() string
	// FileName returns the generated file name of t.
	FileName(t *schema.Table) string
	// GenTable generates the file of t. ec is never nil.
	GenTable(t *schema.Table, ec *EffectiveConfig) *jen.File
}

// GeneratorHelper provides helper methods for emitter implementations.
// Generator implements this interface.
type GeneratorHelper interface {
	// NewFile creates a new Jennifer file with the standard header comment.
	NewFile(pkg string) *jen.File

	// Pkg returns the output package name.
	Pkg() string

	// Dialect returns the configured SQL dialect.
	Dialect() string

	// SQLPkg returns the import path for the dialect/sql package.
	SQLPkg() string

	// SessionPkg returns the import path for the session package.
	SessionPkg() string

	// FeatureEnabled reports if the given feature name is enabled.
	FeatureEnabled(name string) bool
}
