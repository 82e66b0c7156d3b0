package commands

import (
	"slices"

	"github.com/temirov/file-struct-stringer/internal/types"
	"github.com/temirov/file-struct-stringer/internal/utils"
)

// SortEntries orders entries in place by path, component by component, so
// every directory is directly followed by its whole subtree.
func SortEntries(entries []types.Entry) {
	slices.SortStableFunc(entries, func(left, right types.Entry) int {
		return utils.ComparePaths(left.Path, right.Path)
	})
}
