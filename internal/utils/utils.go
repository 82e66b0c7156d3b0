// Package utils contains general helper functions used across the file-struct-stringer tool.
package utils

import (
	"path/filepath"
	"strings"
)

// Configuration file constants used across the project.
const (
	// ApplicationName is the command name and the stem of its configuration files.
	ApplicationName = "file-struct-stringer"
	// ConfigFileName is the name of the configuration file inside the global configuration directory.
	ConfigFileName = "config.yaml"
	// LocalConfigFileName is the name of the configuration file looked up in the working directory.
	LocalConfigFileName = "." + ApplicationName + ".yaml"
	// GlobalConfigDirectoryName is the directory under the home directory holding global configuration.
	GlobalConfigDirectoryName = "." + ApplicationName
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"
)

const (
	extensionSeparator = "."
	currentDirectory   = "."
	parentDirectory    = ".."
)

// ignoredDirectoryNames lists directories that are never descended into.
var ignoredDirectoryNames = map[string]struct{}{
	GitDirectoryName: {},
	"node_modules":   {},
	"target":         {},
	".idea":          {},
	".vscode":        {},
}

// IsIgnoredDirectoryName reports whether a directory with the given name is skipped during traversal.
func IsIgnoredDirectoryName(name string) bool {
	_, ignored := ignoredDirectoryNames[name]
	return ignored
}

// DeduplicatePatterns removes duplicate values from a slice while preserving order.
// The first occurrence of each unique value is kept.
func DeduplicatePatterns(patterns []string) []string {
	if patterns == nil {
		return nil
	}
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if _, exists := encounteredPatterns[pattern]; !exists {
			encounteredPatterns[pattern] = struct{}{}
			result = append(result, pattern)
		}
	}
	return result
}

// RelativeComponents returns the path components of fullPath below root.
// It returns nil when fullPath is root itself or does not lie under it.
func RelativeComponents(fullPath, root string) []string {
	relativePath, relErr := filepath.Rel(filepath.Clean(root), filepath.Clean(fullPath))
	if relErr != nil || relativePath == currentDirectory {
		return nil
	}
	if relativePath == parentDirectory || strings.HasPrefix(relativePath, parentDirectory+string(filepath.Separator)) {
		return nil
	}
	return strings.Split(relativePath, string(filepath.Separator))
}

// ComparePaths orders two paths component by component, comparing each
// component as a byte string. A path that is a prefix of another sorts first.
func ComparePaths(left, right string) int {
	leftComponents := strings.Split(filepath.Clean(left), string(filepath.Separator))
	rightComponents := strings.Split(filepath.Clean(right), string(filepath.Separator))
	for index := 0; index < len(leftComponents) && index < len(rightComponents); index++ {
		if comparison := strings.Compare(leftComponents[index], rightComponents[index]); comparison != 0 {
			return comparison
		}
	}
	switch {
	case len(leftComponents) < len(rightComponents):
		return -1
	case len(leftComponents) > len(rightComponents):
		return 1
	default:
		return 0
	}
}

// FileExtension returns the text after the final dot of name.
// A name whose only dot is its first character has no extension.
func FileExtension(name string) (string, bool) {
	separatorIndex := strings.LastIndex(name, extensionSeparator)
	if separatorIndex <= 0 {
		return "", false
	}
	return name[separatorIndex+1:], true
}

// RootDisplayName returns the name printed for the rendering root: the last
// element of rootPath, or rootPath itself when it has no final name element.
func RootDisplayName(rootPath string) string {
	trimmedPath := strings.TrimRight(rootPath, string(filepath.Separator))
	if trimmedPath == "" {
		return rootPath
	}
	baseName := filepath.Base(trimmedPath)
	if baseName == currentDirectory || baseName == parentDirectory {
		return rootPath
	}
	return baseName
}
