// Package config loads default display settings from YAML configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/temirov/file-struct-stringer/internal/types"
	"github.com/temirov/file-struct-stringer/internal/utils"
)

const (
	errorWorkingDirectoryFormat  = "determine working directory: %w"
	errorResolvePathFormat       = "resolve configuration path %s: %w"
	errorStatFormat              = "stat configuration %s: %w"
	errorDirectoryFormat         = "configuration path %s is a directory"
	errorExplicitMissingFormat   = "configuration file %s does not exist"
	errorReadFormat              = "read configuration from %s: %w"
	errorDecodeFormat            = "decode configuration from %s: %w"
	errorNegativeDashCountFormat = "dashes must be non-negative, got %d"
)

// ErrNegativeDashCount reports a dash count below zero.
var ErrNegativeDashCount = errors.New("negative dash count")

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration holds display defaults. Nil fields are unset.
type ApplicationConfiguration struct {
	FoldersOnly *bool    `mapstructure:"folders_only" yaml:"folders_only"`
	Format      []string `mapstructure:"format" yaml:"format,omitempty"`
	Dashes      *int     `mapstructure:"dashes" yaml:"dashes"`
	Copy        *bool    `mapstructure:"copy" yaml:"copy"`
}

// LoadApplicationConfiguration loads configuration from the global file and
// then overlays the local or explicitly requested file.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, err := os.Getwd()
		if err != nil {
			return ApplicationConfiguration{}, fmt.Errorf(errorWorkingDirectoryFormat, err)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, err := os.UserHomeDir(); err == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName)
		globalConfig, loadErr := loadConfigurationFromPath(globalPath, false)
		if loadErr != nil {
			return ApplicationConfiguration{}, loadErr
		}
		merged = merged.Merge(globalConfig)
	}

	localPath, resolveErr := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	if resolveErr != nil {
		return ApplicationConfiguration{}, resolveErr
	}
	localConfig, loadErr := loadConfigurationFromPath(localPath, options.ExplicitFilePath != "")
	if loadErr != nil {
		return ApplicationConfiguration{}, loadErr
	}
	merged = merged.Merge(localConfig)

	if err := merged.Validate(); err != nil {
		return ApplicationConfiguration{}, err
	}
	return merged, nil
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) (string, error) {
	if explicitPath == "" {
		return filepath.Join(workingDirectory, utils.LocalConfigFileName), nil
	}
	if filepath.IsAbs(explicitPath) {
		return explicitPath, nil
	}
	if workingDirectory == "" {
		absolute, err := filepath.Abs(explicitPath)
		if err != nil {
			return "", fmt.Errorf(errorResolvePathFormat, explicitPath, err)
		}
		return absolute, nil
	}
	return filepath.Join(workingDirectory, explicitPath), nil
}

func loadConfigurationFromPath(path string, required bool) (ApplicationConfiguration, error) {
	info, statErr := os.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			if required {
				return ApplicationConfiguration{}, fmt.Errorf(errorExplicitMissingFormat, path)
			}
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf(errorStatFormat, path, statErr)
	}
	if info.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf(errorDirectoryFormat, path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	reader.SetConfigType("yaml")
	if readErr := reader.ReadInConfig(); readErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf(errorReadFormat, path, readErr)
	}
	var configuration ApplicationConfiguration
	if decodeErr := reader.Unmarshal(&configuration); decodeErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf(errorDecodeFormat, path, decodeErr)
	}
	return configuration, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
// An explicitly empty format list clears an inherited one.
func (configuration ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := configuration
	if override.FoldersOnly != nil {
		result.FoldersOnly = cloneBool(override.FoldersOnly)
	}
	if override.Format != nil {
		result.Format = append([]string{}, override.Format...)
	}
	if override.Dashes != nil {
		result.Dashes = cloneInt(override.Dashes)
	}
	if override.Copy != nil {
		result.Copy = cloneBool(override.Copy)
	}
	return result
}

// Validate reports values that cannot drive a rendering run.
func (configuration ApplicationConfiguration) Validate() error {
	if configuration.Dashes != nil && *configuration.Dashes < 0 {
		return fmt.Errorf(errorNegativeDashCountFormat+": %w", *configuration.Dashes, ErrNegativeDashCount)
	}
	return nil
}

// DisplayOptions converts the configuration into run options, applying
// built-in defaults to unset fields. An empty format list means no filter.
func (configuration ApplicationConfiguration) DisplayOptions() types.DisplayOptions {
	options := types.DisplayOptions{DashCount: types.DefaultDashCount}
	if configuration.FoldersOnly != nil {
		options.FoldersOnly = *configuration.FoldersOnly
	}
	if extensions := NormalizeExtensions(configuration.Format); len(extensions) > 0 {
		options.Extensions = extensions
	}
	if configuration.Dashes != nil {
		options.DashCount = *configuration.Dashes
	}
	return options
}

// CopyEnabled reports whether clipboard copying is switched on.
func (configuration ApplicationConfiguration) CopyEnabled() bool {
	return configuration.Copy != nil && *configuration.Copy
}

// NormalizeExtensions trims and lower-cases extensions, dropping duplicates.
// A nil input stays nil so an absent allow-list remains distinguishable.
func NormalizeExtensions(extensions []string) []string {
	if extensions == nil {
		return nil
	}
	normalized := make([]string, 0, len(extensions))
	for _, extension := range extensions {
		normalized = append(normalized, strings.ToLower(strings.TrimSpace(extension)))
	}
	return utils.DeduplicatePatterns(normalized)
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

func cloneInt(value *int) *int {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
