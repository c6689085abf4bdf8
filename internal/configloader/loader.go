// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical merging,
// environment variable support, and validation.
package configloader

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/seolint/pkg/config"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// Overrides contains settings from CLI flags. These take highest precedence.
	Overrides *Overrides
}

// LoadResult contains the resolved settings and metadata.
type LoadResult struct {
	// Settings is the final merged configuration.
	Settings *config.Settings

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final settings by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.Overrides)
//  2. Environment variables (SEOLINT_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.seolint.yaml upward search)
//  5. User config ($XDG_CONFIG_HOME/seolint/config.yaml)
//  6. System config (/etc/seolint/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{
		Paths: &ConfigPaths{},
	}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	settings := config.Default()

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	result.Paths = paths

	if opts.ExplicitPath != "" {
		result.Paths.Explicit = opts.ExplicitPath
	}

	// Load files lowest to highest precedence. Each file decodes onto the
	// accumulated settings, so keys absent from a file keep earlier values.

	if !opts.IgnoreSystemConfig && paths.System != "" {
		if err := applyConfigFile(settings, paths.System); err != nil {
			return nil, fmt.Errorf("load system config: %w", err)
		}
		result.LoadedFrom = append(result.LoadedFrom, paths.System)
	}

	if !opts.IgnoreUserConfig && paths.User != "" {
		if err := applyConfigFile(settings, paths.User); err != nil {
			return nil, fmt.Errorf("load user config: %w", err)
		}
		result.LoadedFrom = append(result.LoadedFrom, paths.User)
	}

	if !opts.IgnoreProjectConfig && paths.Project != "" && opts.ExplicitPath == "" {
		if err := applyConfigFile(settings, paths.Project); err != nil {
			return nil, fmt.Errorf("load project config: %w", err)
		}
		result.LoadedFrom = append(result.LoadedFrom, paths.Project)
	}

	if opts.ExplicitPath != "" {
		if err := applyConfigFile(settings, opts.ExplicitPath); err != nil {
			return nil, fmt.Errorf("load explicit config: %w", err)
		}
		result.LoadedFrom = append(result.LoadedFrom, opts.ExplicitPath)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(settings); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if err := opts.Overrides.Apply(settings); err != nil {
		return nil, fmt.Errorf("apply flags: %w", err)
	}

	validation := Validate(settings)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Message)
	}

	result.Settings = settings
	return result, nil
}

// applyConfigFile decodes a YAML file onto the settings. Only keys present in
// the file are changed.
func applyConfigFile(settings *config.Settings, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	if err := yaml.Unmarshal(content, settings); err != nil {
		return fmt.Errorf("parse YAML: %w", err)
	}

	return nil
}

// WriteDefaultConfig writes the starter configuration template to path.
// It refuses to overwrite an existing file.
func WriteDefaultConfig(path string) error {
	if fileExists(path) {
		return fmt.Errorf("%s already exists", path)
	}

	if err := os.WriteFile(path, []byte(Template), configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}
