// Package commands contains the core logic for collecting the entries of a directory tree.
package commands

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/temirov/file-struct-stringer/internal/types"
	"github.com/temirov/file-struct-stringer/internal/utils"
)

const (
	// skipSubdirectoryMessage is logged when a subdirectory cannot be read.
	skipSubdirectoryMessage = "skipping unreadable directory"
	// skipIgnoredMessage is logged when an ignored directory is pruned.
	skipIgnoredMessage = "skipping ignored directory"

	pathLogKey = "path"
)

// GetTreeData walks rootDirectoryPath and returns every entry that passes the
// builder's filter, sorted by path. The root itself is not part of the result.
// Unreadable subdirectories are listed without their contents; a root that is
// not a readable directory yields an empty list.
func (treeBuilder *TreeBuilder) GetTreeData(rootDirectoryPath string) []types.Entry {
	walkedEntries := treeBuilder.Walk(rootDirectoryPath)
	includedEntries := make([]types.Entry, 0, len(walkedEntries))
	for _, entry := range walkedEntries {
		if ShouldInclude(entry, treeBuilder.Options) {
			includedEntries = append(includedEntries, entry)
		}
	}
	SortEntries(includedEntries)
	return includedEntries
}

// Walk recursively enumerates the entries below rootDirectoryPath, pruning
// directories whose names are on the fixed ignore list.
func (treeBuilder *TreeBuilder) Walk(rootDirectoryPath string) []types.Entry {
	var entries []types.Entry
	treeBuilder.walkDirectory(rootDirectoryPath, &entries)
	return entries
}

func (treeBuilder *TreeBuilder) walkDirectory(currentDirectoryPath string, entries *[]types.Entry) {
	directoryEntries, readDirectoryError := os.ReadDir(currentDirectoryPath)
	if readDirectoryError != nil {
		treeBuilder.logger().Debug(skipSubdirectoryMessage, zap.String(pathLogKey, currentDirectoryPath), zap.Error(readDirectoryError))
		return
	}

	for _, directoryEntry := range directoryEntries {
		childPath := filepath.Join(currentDirectoryPath, directoryEntry.Name())
		if !directoryEntry.IsDir() {
			*entries = append(*entries, types.Entry{Path: childPath, Kind: types.EntryKindFile})
			continue
		}
		if utils.IsIgnoredDirectoryName(directoryEntry.Name()) {
			treeBuilder.logger().Debug(skipIgnoredMessage, zap.String(pathLogKey, childPath))
			continue
		}
		*entries = append(*entries, types.Entry{Path: childPath, Kind: types.EntryKindDirectory})
		treeBuilder.walkDirectory(childPath, entries)
	}
}

func (treeBuilder *TreeBuilder) logger() *zap.Logger {
	if treeBuilder.Logger == nil {
		return zap.NewNop()
	}
	return treeBuilder.Logger
}
