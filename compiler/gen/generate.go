package gen

import (
	"context"
	"path"
	"path/filepath"
	"runtime"

	"github.com/dave/jennifer/jen"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/logicaldelete/schema"
)

const (
	// DefaultHeader is written at the top of generated files.
	DefaultHeader = "Code generated by logicaldelete, DO NOT EDIT."

	sqlPkg     = "github.com/syssam/logicaldelete/dialect/sql"
	sessionPkg = "github.com/syssam/logicaldelete/session"
)

// Generator runs the logical-delete transformation over a set of tables
// and, on Generate, writes the files of its emitters.
//
// Example:
//
//	g := gen.NewGenerator(cfg)
//	g.WithEmitter(mapper.New(g))
//	res, err := g.Generate(ctx, tables)
type Generator struct {
	config   *Config
	emitters []Emitter
}

// NewGenerator creates a generator for the given config.
func NewGenerator(c *Config) *Generator {
	if c == nil {
		c = &Config{}
	}
	return &Generator{config: c}
}

// WithEmitter registers emitters, invoked in registration order.
func (g *Generator) WithEmitter(e ...Emitter) *Generator {
	g.emitters = append(g.emitters, e...)
	return g
}

// Config returns the generator config.
func (g *Generator) Config() *Config { return g.config }

// TableResult is the outcome of one table.
type TableResult struct {
	Table  *schema.Table
	Config *EffectiveConfig
}

// Result is the outcome of a run.
type Result struct {
	RunID  string
	Tables []*TableResult
	// Diagnostics are ordered like the input tables.
	Diagnostics []Diagnostic
}

// Table returns the result of the named table.
func (r *Result) Table(name string) (*TableResult, bool) {
	for _, t := range r.Tables {
		if t.Table.Name == name {
			return t, true
		}
	}
	return nil, false
}

// Count returns the number of tables with the given status.
func (r *Result) Count(s Status) int {
	n := 0
	for _, t := range r.Tables {
		if t.Config.Status == s {
			n++
		}
	}
	return n
}

// Run transforms tables in place. Tables without operations receive the
// standard CRUD set first. Invalid tables are left unchanged and reported
// as diagnostics; they never fail the run.
func (g *Generator) Run(ctx context.Context, tables []*schema.Table) (*Result, error) {
	res := &Result{RunID: uuid.NewString(), Tables: make([]*TableResult, len(tables))}
	log := g.config.logger().With("run", res.RunID, "plugin", g.config.pluginID())
	log.InfoContext(ctx, "run started",
		"tables", len(tables),
		"dialect", g.config.dialect(),
		"features", enabledFeatures(g.config),
	)
	restore, err := g.config.FeatureEnabled(FeatureRestore.Name)
	if err != nil {
		return nil, err
	}

	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers())
	for i, t := range tables {
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if len(t.Operations) == 0 {
				AddStandardOperations(t)
			}
			ec := g.config.Validate(t)
			if ec.Valid() {
				if err := Synthesize(t, ec, SynthOptions{Restore: restore}); err != nil {
					return NewGenerationError("synthesize", t.Name, "synthesis failed", err)
				}
			}
			res.Tables[i] = &TableResult{Table: t, Config: ec}
			return nil
		})
	}
	if err := errg.Wait(); err != nil {
		return nil, err
	}

	var ds Diagnostics
	for _, tr := range res.Tables {
		if err := tr.Config.Err; err != nil {
			ds.Add(err)
			log.WarnContext(ctx, err.Error(), "table", tr.Table.Name, "status", tr.Config.Status)
			continue
		}
		log.DebugContext(ctx, "table processed",
			"table", tr.Table.Name,
			"status", tr.Config.Status,
			"operations", len(tr.Table.Operations),
		)
	}
	res.Diagnostics = ds.All()
	log.InfoContext(ctx, "run finished",
		"valid", res.Count(Valid),
		"invalid", res.Count(Invalid),
		"disabled", res.Count(Disabled),
	)
	return res, nil
}

// Generate runs the transformation and writes the emitter files of every
// table to the target directory.
func (g *Generator) Generate(ctx context.Context, tables []*schema.Table) (*Result, error) {
	if g.config.Target == "" {
		return nil, NewConfigError("Target", nil, "missing target directory in config")
	}
	if len(g.emitters) == 0 {
		return nil, NewConfigError("Emitter", nil, "no emitter set: call WithEmitter() before Generate()")
	}
	res, err := g.Run(ctx, tables)
	if err != nil {
		return nil, err
	}
	snapshots := g.FeatureEnabled(FeatureSnapshot.Name)
	w := NewWriter(g.config.Target).WithWorkers(g.workers())
	for _, tr := range res.Tables {
		for _, e := range g.emitters {
			w.AddFile(e.FileName(tr.Table), e.GenTable(tr.Table, tr.Config))
		}
		if snapshots {
			b, err := NewSnapshot(g.config, tr.Table, tr.Config).Encode()
			if err != nil {
				return nil, NewGenerationError("snapshot", tr.Table.Name, "encode failed", err)
			}
			w.AddRaw(tr.Table.Name+SnapshotExt, b)
		}
	}
	if err := w.Write(ctx); err != nil {
		return nil, err
	}
	if err := cleanupFeatures(g.config); err != nil {
		return nil, err
	}
	m := w.Metrics()
	g.config.logger().InfoContext(ctx, "files written",
		"run", res.RunID,
		"target", g.config.Target,
		"written", m.FilesWritten,
		"unchanged", m.FilesSkipped,
	)
	return res, nil
}

func (g *Generator) workers() int {
	if g.config.Workers > 0 {
		return g.config.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// =============================================================================
// GeneratorHelper interface implementation
// =============================================================================

// NewFile creates a new Jennifer file with the standard header comment.
func (g *Generator) NewFile(pkg string) *jen.File {
	f := jen.NewFile(pkg)
	header := g.config.Header
	if header == "" {
		header = DefaultHeader
	}
	f.HeaderComment(header)
	return f
}

// Pkg returns the output package name.
func (g *Generator) Pkg() string {
	switch {
	case g.config.Package != "":
		return path.Base(g.config.Package)
	case g.config.Target != "":
		return filepath.Base(g.config.Target)
	default:
		return "mapper"
	}
}

// Dialect returns the configured SQL dialect.
func (g *Generator) Dialect() string { return g.config.dialect() }

// SQLPkg returns the import path for the dialect/sql package.
func (g *Generator) SQLPkg() string { return sqlPkg }

// SessionPkg returns the import path for the session package.
func (g *Generator) SessionPkg() string { return sessionPkg }

// FeatureEnabled reports if the given feature name is enabled.
func (g *Generator) FeatureEnabled(name string) bool {
	enabled, _ := g.config.FeatureEnabled(name)
	return enabled
}

var _ GeneratorHelper = (*Generator)(nil)
