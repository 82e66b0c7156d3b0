package output

import (
	"path/filepath"

	"github.com/temirov/file-struct-stringer/internal/types"
)

// siblingIndex maps a parent path to the path of its last child in list order.
type siblingIndex map[string]string

func newSiblingIndex(entries []types.Entry) siblingIndex {
	index := make(siblingIndex, len(entries))
	for _, entry := range entries {
		entryPath := filepath.Clean(entry.Path)
		index[filepath.Dir(entryPath)] = entryPath
	}
	return index
}

// isLast reports whether path is the final entry among those sharing its parent.
// Paths absent from the list are never last.
func (index siblingIndex) isLast(path string) bool {
	cleanPath := filepath.Clean(path)
	lastChild, found := index[filepath.Dir(cleanPath)]
	return found && lastChild == cleanPath
}
