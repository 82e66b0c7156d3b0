// Package types defines every cross-package data structure used by the file-struct-stringer CLI.
package types

const (
	EntryKindFile      = "file"
	EntryKindDirectory = "directory"

	DefaultDashCount = 2
)

// Entry is one filesystem path discovered under the rendering root.
type Entry struct {
	Path string
	Kind string
}

// IsDir reports whether the entry represents a directory.
func (entry Entry) IsDir() bool {
	return entry.Kind == EntryKindDirectory
}

// DisplayOptions is the immutable configuration of a single run.
// A nil Extensions slice means no extension filtering; a non-nil empty slice
// is an allow-list that matches no file.
type DisplayOptions struct {
	FoldersOnly bool
	Extensions  []string
	DashCount   int
}

// HasExtensionFilter reports whether an extension allow-list is present.
func (options DisplayOptions) HasExtensionFilter() bool {
	return options.Extensions != nil
}
