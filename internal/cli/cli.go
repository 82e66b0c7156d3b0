// Package cli provides the command line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/temirov/file-struct-stringer/internal/commands"
	"github.com/temirov/file-struct-stringer/internal/config"
	"github.com/temirov/file-struct-stringer/internal/output"
	"github.com/temirov/file-struct-stringer/internal/services/clipboard"
	"github.com/temirov/file-struct-stringer/internal/types"
	"github.com/temirov/file-struct-stringer/internal/utils"
)

const (
	foldersOnlyFlagName      = "folders-only"
	foldersOnlyFlagShorthand = "f"
	formatFlagName           = "format"
	formatFlagShorthand      = "e"
	dashesFlagName           = "dashes"
	dashesFlagShorthand      = "d"
	copyFlagName             = "copy"
	configFlagName           = "config"
	verboseFlagName          = "verbose"
	versionFlagName          = "version"
	globalFlagName           = "global"
	forceFlagName            = "force"

	foldersOnlyFlagDescription = "list only folders, no files"
	formatFlagDescription      = "filter by file extensions (comma-separated, e.g. \"rs,toml\")"
	dashesFlagDescription      = "number of dashes in branch characters"
	copyFlagDescription        = "copy the rendered tree to the clipboard"
	configFlagDescription      = "path to a configuration file"
	verboseFlagDescription     = "log skipped directories to standard error"
	versionFlagDescription     = "print the application version and exit"
	globalFlagDescription      = "write the configuration into the home directory"
	forceFlagDescription       = "overwrite an existing configuration file"

	defaultPath          = "."
	emptyExtension       = ""
	versionTemplate      = utils.ApplicationName + " version: %s\n"
	rootUse              = utils.ApplicationName + " [path]"
	rootShortDescription = "Convert folder structures into readable text format"
	rootLongDescription  = `file-struct-stringer prints the directory tree under a path.
Directories named .git, node_modules, target, .idea and .vscode are skipped.
Use --folders-only to hide files, --format to keep only some extensions and --dashes to size the branches.`
	rootUsageExample = `  # Render the current directory
  file-struct-stringer

  # Render only Rust and TOML files with longer branches
  file-struct-stringer ./project -e rs,toml -d 3

  # List folders and copy the result to the clipboard
  file-struct-stringer -f --copy`

	initUse              = "init"
	initShortDescription = "write a default configuration file"
	initSuccessFormat    = "configuration written to %s\n"

	// errorPathMissingFormat reports a missing root path.
	errorPathMissingFormat = "Path '%s' does not exist"
	// errorNegativeDashesFormat reports an invalid dashes flag.
	errorNegativeDashesFormat = "--%s must be non-negative, got %d"
	// errorLoggerFormat reports failure to build the run logger.
	errorLoggerFormat = "initialize logger: %w"
	// errorWriteOutputFormat reports failure to write the rendered tree.
	errorWriteOutputFormat = "write output: %w"
	// errorCopyFormat reports failure to copy the rendered tree.
	errorCopyFormat = "copy to clipboard: %w"
)

// ErrPathMissing is matched by errors reporting a rendering root that does not exist.
var ErrPathMissing = errors.New("path does not exist")

// PathMissingError reports a rendering root that does not exist.
type PathMissingError struct {
	Path string
}

func (pathError *PathMissingError) Error() string {
	return fmt.Sprintf(errorPathMissingFormat, pathError.Path)
}

// Is reports whether target is ErrPathMissing.
func (pathError *PathMissingError) Is(target error) bool {
	return target == ErrPathMissing
}

// Execute runs the file-struct-stringer application.
func Execute() error {
	rootCommand := NewRootCommand(clipboard.NewService())
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// rootSettings stores the values bound to the root command flags.
type rootSettings struct {
	foldersOnly bool
	extensions  []string
	dashCount   int
	copyEnabled bool
	configPath  string
	verbose     bool
	showVersion bool
}

// NewRootCommand builds the root Cobra command. Rendered trees are copied
// through copier when copying is enabled.
func NewRootCommand(copier clipboard.Copier) *cobra.Command {
	var settings rootSettings

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if settings.showVersion {
				_, writeError := fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return writeError
			}
			rootPath := defaultPath
			if len(arguments) > 0 {
				rootPath = arguments[0]
			}
			return runTree(command, rootPath, settings, copier)
		},
	}

	flagSet := rootCommand.Flags()
	registerBooleanFlag(flagSet, &settings.foldersOnly, foldersOnlyFlagName, foldersOnlyFlagShorthand, false, foldersOnlyFlagDescription)
	flagSet.StringSliceVarP(&settings.extensions, formatFlagName, formatFlagShorthand, nil, formatFlagDescription)
	flagSet.IntVarP(&settings.dashCount, dashesFlagName, dashesFlagShorthand, types.DefaultDashCount, dashesFlagDescription)
	registerBooleanFlag(flagSet, &settings.copyEnabled, copyFlagName, "", false, copyFlagDescription)
	flagSet.StringVar(&settings.configPath, configFlagName, "", configFlagDescription)
	registerBooleanFlag(flagSet, &settings.verbose, verboseFlagName, "", false, verboseFlagDescription)
	registerBooleanFlag(flagSet, &settings.showVersion, versionFlagName, "", false, versionFlagDescription)

	rootCommand.AddCommand(createInitCommand())
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// createInitCommand returns the init subcommand.
func createInitCommand() *cobra.Command {
	var globalTarget bool
	var forceOverwrite bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if globalTarget {
				target = config.InitTargetGlobal
			}
			destinationPath, initError := config.InitializeConfiguration(config.InitOptions{Target: target, Force: forceOverwrite})
			if initError != nil {
				return initError
			}
			_, writeError := fmt.Fprintf(command.OutOrStdout(), initSuccessFormat, destinationPath)
			return writeError
		},
	}
	registerBooleanFlag(initCommand.Flags(), &globalTarget, globalFlagName, "", false, globalFlagDescription)
	registerBooleanFlag(initCommand.Flags(), &forceOverwrite, forceFlagName, "", false, forceFlagDescription)
	return initCommand
}

// runTree validates the root, resolves options and renders the tree.
func runTree(command *cobra.Command, rootPath string, settings rootSettings, copier clipboard.Copier) error {
	if validationError := validateRootPath(rootPath); validationError != nil {
		return validationError
	}

	configuration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{ExplicitFilePath: settings.configPath})
	if configurationError != nil {
		return configurationError
	}
	options, copyEnabled, optionsError := resolveDisplayOptions(command.Flags(), configuration, settings)
	if optionsError != nil {
		return optionsError
	}

	logger, loggerError := utils.NewApplicationLogger(settings.verbose)
	if loggerError != nil {
		return fmt.Errorf(errorLoggerFormat, loggerError)
	}
	defer func() {
		_ = logger.Sync()
	}()

	entries := commands.NewTreeBuilder(options, logger).GetTreeData(rootPath)
	renderedTree := output.RenderTree(rootPath, entries, options.DashCount)
	if _, writeError := io.WriteString(command.OutOrStdout(), renderedTree); writeError != nil {
		return fmt.Errorf(errorWriteOutputFormat, writeError)
	}
	if copyEnabled && copier != nil {
		if copyError := copier.Copy(renderedTree); copyError != nil {
			return fmt.Errorf(errorCopyFormat, copyError)
		}
	}
	return nil
}

// resolveDisplayOptions layers explicitly set flags over configuration defaults.
func resolveDisplayOptions(flagSet *pflag.FlagSet, configuration config.ApplicationConfiguration, settings rootSettings) (types.DisplayOptions, bool, error) {
	options := configuration.DisplayOptions()
	copyEnabled := configuration.CopyEnabled()

	if flagSet.Changed(foldersOnlyFlagName) {
		options.FoldersOnly = settings.foldersOnly
	}
	if flagSet.Changed(formatFlagName) {
		options.Extensions = config.NormalizeExtensions(settings.extensions)
		if len(options.Extensions) == 0 {
			options.Extensions = []string{emptyExtension}
		}
	}
	if flagSet.Changed(dashesFlagName) {
		if settings.dashCount < 0 {
			return types.DisplayOptions{}, false, fmt.Errorf(errorNegativeDashesFormat, dashesFlagName, settings.dashCount)
		}
		options.DashCount = settings.dashCount
	}
	if flagSet.Changed(copyFlagName) {
		copyEnabled = settings.copyEnabled
	}
	return options, copyEnabled, nil
}

// validateRootPath confirms that the rendering root exists. Any stat failure,
// including a path running through a regular file, counts as missing.
func validateRootPath(rootPath string) error {
	if _, fileStatusError := os.Stat(rootPath); fileStatusError != nil {
		return &PathMissingError{Path: rootPath}
	}
	return nil
}
