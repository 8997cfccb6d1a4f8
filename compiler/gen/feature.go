package gen

import (
	"os"
	"path/filepath"
	"strings"
)

var (
	// FeatureSnapshot writes a msgpack snapshot of every synthesized table
	// next to the generated files. Files whose snapshot did not change are
	// not rewritten.
	FeatureSnapshot = Feature{
		Name:        "schema/snapshot",
		Stage:       Experimental,
		Default:     false,
		Description: "Schema snapshot stores the synthesized operation set of each table and skips rewriting unchanged tables",
		cleanup: func(c *Config) error {
			return removeGlob(c.Target, "*"+SnapshotExt)
		},
	}

	// FeatureRestore synthesizes restoreByPrimaryKey, the inverse of the
	// rewritten delete.
	FeatureRestore = Feature{
		Name:        "logicaldelete/restore",
		Stage:       Alpha,
		Default:     false,
		Description: "Restore adds restoreByPrimaryKey, setting the logical-delete column back to the un-delete value",
	}

	// AllFeatures holds a list of all feature-flags.
	AllFeatures = []Feature{
		FeatureSnapshot,
		FeatureRestore,
	}
	// allFeatures includes all public and private features.
	allFeatures = AllFeatures
)

// FeatureByName returns the feature with the given name.
func FeatureByName(name string) (Feature, bool) {
	for _, f := range allFeatures {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}

// FeatureStage describes the stage of the codegen feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development, and actively being tested.
	Experimental

	// Alpha features are features whose initial development was finished,
	// but we expect breaking-changes to their APIs.
	Alpha

	// Beta features are Alpha features with a documented API; no
	// breaking-changes are expected for them.
	Beta

	// Stable features are Beta features that were running for a while.
	Stable
)

func (s FeatureStage) String() string {
	switch s {
	case Experimental:
		return "experimental"
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	case Stable:
		return "stable"
	default:
		return "unknown"
	}
}

// A Feature of the codegen.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default values indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string

	// cleanup used to cleanup all changes when a feature-flag is removed.
	// e.g. delete files from previous codegen runs.
	cleanup func(*Config) error
}

// cleanupFeatures runs the cleanup of every feature that is not enabled.
func cleanupFeatures(c *Config) error {
	for _, f := range allFeatures {
		if f.cleanup == nil {
			continue
		}
		if enabled, _ := c.FeatureEnabled(f.Name); enabled {
			continue
		}
		if err := f.cleanup(c); err != nil {
			return NewGenerationError("cleanup", f.Name, "feature cleanup failed", err)
		}
	}
	return nil
}

// removeGlob removes the files of dir matching pattern.
func removeGlob(dir, pattern string) error {
	if dir == "" {
		return nil
	}
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return err
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// enabledFeatures returns the names of the enabled features.
func enabledFeatures(c *Config) string {
	names := make([]string, 0, len(c.Features))
	for _, f := range c.Features {
		names = append(names, f.Name)
	}
	return strings.Join(names, ",")
}
