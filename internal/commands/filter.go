package commands

import (
	"path/filepath"
	"strings"

	"github.com/temirov/file-struct-stringer/internal/types"
	"github.com/temirov/file-struct-stringer/internal/utils"
)

// ShouldInclude reports whether entry is rendered under options.
// Directories are always included so the tree keeps its structure.
func ShouldInclude(entry types.Entry, options types.DisplayOptions) bool {
	if entry.IsDir() {
		return true
	}
	if options.FoldersOnly {
		return false
	}
	if !options.HasExtensionFilter() {
		return true
	}
	extension, hasExtension := utils.FileExtension(filepath.Base(entry.Path))
	if !hasExtension {
		return false
	}
	lowerExtension := strings.ToLower(extension)
	for _, allowedExtension := range options.Extensions {
		if strings.ToLower(allowedExtension) == lowerExtension {
			return true
		}
	}
	return false
}
