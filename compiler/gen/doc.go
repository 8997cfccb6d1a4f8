// Package gen implements the logical-delete transformation and the code
// generation pipeline built on top of it.
//
// # Architecture
//
// A run processes every table independently:
//
//	schema.Table (columns + mapper operations)
//	        ↓
//	   Resolve (global config + per-table override)
//	        ↓
//	   Validate (EffectiveConfig: Disabled / Valid / Invalid)
//	        ↓
//	   Synthesize (rewrite deletes, add filtered selects and criteria helpers)
//	        ↓
//	   Emitter (jennifer files) + Writer
//
// Invalid tables never fail a run. They keep their operations unchanged
// and are reported as Diagnostics, ordered like the input tables.
//
// # Emitters
//
// Emitters live in their own packages and receive a GeneratorHelper,
// which the Generator implements:
//
//	g := gen.NewGenerator(cfg)
//	g.WithEmitter(mapper.New(g))
//	res, err := g.Generate(ctx, tables)
//
// # Feature Flags
//
//   - schema/snapshot: writes a msgpack snapshot of every processed table.
//   - logicaldelete/restore: adds restoreByPrimaryKey to tables with a
//     primary key.
package gen
