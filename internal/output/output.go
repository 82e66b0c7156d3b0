// Package output renders collected directory entries as a text tree.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/file-struct-stringer/internal/types"
	"github.com/temirov/file-struct-stringer/internal/utils"
)

const (
	treeBranchConnector = "├"
	treeLastConnector   = "└"
	treeHorizontalGlyph = "─"
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "

	directorySuffix = "/"
	headerFormat    = "%s" + directorySuffix + "\n"
	lineFormat      = "%s%s %s%s\n"

	invalidNameReplacement = "\uFFFD"
)

// TreeRenderer formats one sorted entry list relative to its root.
type TreeRenderer struct {
	root      string
	entries   []types.Entry
	dashCount int
	siblings  siblingIndex
}

// NewTreeRenderer prepares a renderer for entries, which must be sorted as
// produced by commands.SortEntries.
func NewTreeRenderer(root string, entries []types.Entry, dashCount int) *TreeRenderer {
	if dashCount < 0 {
		dashCount = 0
	}
	return &TreeRenderer{
		root:      root,
		entries:   entries,
		dashCount: dashCount,
		siblings:  newSiblingIndex(entries),
	}
}

// WriteTree writes the header line followed by one line per entry.
func (renderer *TreeRenderer) WriteTree(writer io.Writer) error {
	if _, writeError := fmt.Fprintf(writer, headerFormat, displayName(utils.RootDisplayName(renderer.root))); writeError != nil {
		return writeError
	}
	for _, entry := range renderer.entries {
		if _, writeError := io.WriteString(writer, renderer.FormatEntry(entry)); writeError != nil {
			return writeError
		}
	}
	return nil
}

// FormatEntry returns the rendered line for entry, including the trailing newline.
func (renderer *TreeRenderer) FormatEntry(entry types.Entry) string {
	suffix := ""
	if entry.IsDir() {
		suffix = directorySuffix
	}
	return fmt.Sprintf(lineFormat, renderer.indentation(entry.Path), renderer.branch(entry.Path), displayName(filepath.Base(entry.Path)), suffix)
}

// indentation emits one segment per ancestor between the root and the entry:
// a vertical bar while the ancestor still has siblings below it.
func (renderer *TreeRenderer) indentation(entryPath string) string {
	components := utils.RelativeComponents(entryPath, renderer.root)
	if len(components) < 2 {
		return ""
	}
	var builder strings.Builder
	for level := 0; level < len(components)-1; level++ {
		ancestorPath := filepath.Join(append([]string{renderer.root}, components[:level+1]...)...)
		if renderer.siblings.isLast(ancestorPath) {
			builder.WriteString(treeLastPadding)
		} else {
			builder.WriteString(treeBranchPadding)
		}
	}
	return builder.String()
}

func (renderer *TreeRenderer) branch(entryPath string) string {
	connector := treeBranchConnector
	if renderer.siblings.isLast(entryPath) {
		connector = treeLastConnector
	}
	return connector + strings.Repeat(treeHorizontalGlyph, renderer.dashCount)
}

// displayName replaces byte sequences that are not valid UTF-8.
func displayName(name string) string {
	return strings.ToValidUTF8(name, invalidNameReplacement)
}

// WriteTree renders entries below root to writer.
func WriteTree(writer io.Writer, root string, entries []types.Entry, dashCount int) error {
	return NewTreeRenderer(root, entries, dashCount).WriteTree(writer)
}

// RenderTree returns the rendered tree as a string.
func RenderTree(root string, entries []types.Entry, dashCount int) string {
	var builder strings.Builder
	_ = WriteTree(&builder, root, entries, dashCount)
	return builder.String()
}

// PrintTree renders entries below root to standard output.
func PrintTree(root string, entries []types.Entry, dashCount int) error {
	return WriteTree(os.Stdout, root, entries, dashCount)
}
