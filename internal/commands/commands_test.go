package commands_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/temirov/file-struct-stringer/internal/commands"
	"github.com/temirov/file-struct-stringer/internal/types"
)

const (
	sourceDirectoryName  = "src"
	nestedDirectoryName  = "nested"
	emptyDirectoryName   = "docs"
	nodeModulesName      = "node_modules"
	gitDirectoryName     = ".git"
	mainSourceFileName   = "main.rs"
	upperSourceFileName  = "LIB.RS"
	manifestFileName     = "Cargo.toml"
	readmeFileName       = "README.md"
	makefileName         = "Makefile"
	dependencyFileName   = "index.js"
	targetFileName       = "target"
	gitConfigFileName    = "config"
	docsNotesFileName    = "notes.txt"
	dashedSiblingDirName = "src-gen"
)

// createFixtureTree builds a small project layout inside a temporary directory.
func createFixtureTree(testingHandle *testing.T) string {
	testingHandle.Helper()
	rootDirectory := testingHandle.TempDir()
	directories := []string{
		filepath.Join(rootDirectory, sourceDirectoryName, nestedDirectoryName),
		filepath.Join(rootDirectory, emptyDirectoryName),
		filepath.Join(rootDirectory, nodeModulesName, "pkg"),
		filepath.Join(rootDirectory, sourceDirectoryName, nodeModulesName),
		filepath.Join(rootDirectory, gitDirectoryName),
		filepath.Join(rootDirectory, dashedSiblingDirName),
	}
	for _, directoryPath := range directories {
		if makeDirError := os.MkdirAll(directoryPath, 0o755); makeDirError != nil {
			testingHandle.Fatalf("mkdir %s: %v", directoryPath, makeDirError)
		}
	}
	files := []string{
		filepath.Join(rootDirectory, manifestFileName),
		filepath.Join(rootDirectory, readmeFileName),
		filepath.Join(rootDirectory, makefileName),
		filepath.Join(rootDirectory, targetFileName),
		filepath.Join(rootDirectory, sourceDirectoryName, mainSourceFileName),
		filepath.Join(rootDirectory, sourceDirectoryName, nestedDirectoryName, upperSourceFileName),
		filepath.Join(rootDirectory, sourceDirectoryName, nodeModulesName, dependencyFileName),
		filepath.Join(rootDirectory, nodeModulesName, "pkg", dependencyFileName),
		filepath.Join(rootDirectory, gitDirectoryName, gitConfigFileName),
		filepath.Join(rootDirectory, emptyDirectoryName, docsNotesFileName),
	}
	for _, filePath := range files {
		if writeError := os.WriteFile(filePath, []byte("x"), 0o644); writeError != nil {
			testingHandle.Fatalf("write %s: %v", filePath, writeError)
		}
	}
	return rootDirectory
}

func relativePaths(testingHandle *testing.T, rootDirectory string, entries []types.Entry) []string {
	testingHandle.Helper()
	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		relativePath, relError := filepath.Rel(rootDirectory, entry.Path)
		if relError != nil {
			testingHandle.Fatalf("rel %s: %v", entry.Path, relError)
		}
		result = append(result, filepath.ToSlash(relativePath))
	}
	return result
}

func assertPaths(testingHandle *testing.T, actual []string, expected []string) {
	testingHandle.Helper()
	if len(actual) != len(expected) {
		testingHandle.Fatalf("expected %d entries %v, got %d entries %v", len(expected), expected, len(actual), actual)
	}
	for index := range expected {
		if actual[index] != expected[index] {
			testingHandle.Fatalf("entry %d: expected %s, got %s (all: %v)", index, expected[index], actual[index], actual)
		}
	}
}

// TestGetTreeData verifies walking, filtering and ordering across option combinations.
func TestGetTreeData(testingHandle *testing.T) {
	testCases := []struct {
		name     string
		options  types.DisplayOptions
		expected []string
	}{
		{
			name:    "no_filter",
			options: types.DisplayOptions{DashCount: types.DefaultDashCount},
			expected: []string{
				"Cargo.toml",
				"Makefile",
				"README.md",
				"docs",
				"docs/notes.txt",
				"src",
				"src/main.rs",
				"src/nested",
				"src/nested/LIB.RS",
				"src-gen",
				"target",
			},
		},
		{
			name:    "folders_only",
			options: types.DisplayOptions{FoldersOnly: true},
			expected: []string{
				"docs",
				"src",
				"src/nested",
				"src-gen",
			},
		},
		{
			name:    "extension_filter_is_case_insensitive",
			options: types.DisplayOptions{Extensions: []string{"RS"}},
			expected: []string{
				"docs",
				"src",
				"src/main.rs",
				"src/nested",
				"src/nested/LIB.RS",
				"src-gen",
			},
		},
		{
			name:    "empty_allow_list_keeps_directories_only",
			options: types.DisplayOptions{Extensions: []string{}},
			expected: []string{
				"docs",
				"src",
				"src/nested",
				"src-gen",
			},
		},
		{
			name:    "folders_only_wins_over_extensions",
			options: types.DisplayOptions{FoldersOnly: true, Extensions: []string{"toml"}},
			expected: []string{
				"docs",
				"src",
				"src/nested",
				"src-gen",
			},
		},
	}

	rootDirectory := createFixtureTree(testingHandle)
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(t *testing.T) {
			treeBuilder := commands.NewTreeBuilder(testCase.options, nil)
			entries := treeBuilder.GetTreeData(rootDirectory)
			assertPaths(t, relativePaths(t, rootDirectory, entries), testCase.expected)
		})
	}
}

// TestGetTreeDataMarksEntryKinds verifies the directory discriminator.
func TestGetTreeDataMarksEntryKinds(testingHandle *testing.T) {
	rootDirectory := createFixtureTree(testingHandle)
	entries := commands.NewTreeBuilder(types.DisplayOptions{}, nil).GetTreeData(rootDirectory)
	for _, entry := range entries {
		info, statError := os.Stat(entry.Path)
		if statError != nil {
			testingHandle.Fatalf("stat %s: %v", entry.Path, statError)
		}
		if info.IsDir() != entry.IsDir() {
			testingHandle.Fatalf("entry %s: expected directory=%t, got kind %s", entry.Path, info.IsDir(), entry.Kind)
		}
	}
}

// TestGetTreeDataOnFileRoot verifies that a file root yields no entries.
func TestGetTreeDataOnFileRoot(testingHandle *testing.T) {
	rootDirectory := createFixtureTree(testingHandle)
	entries := commands.NewTreeBuilder(types.DisplayOptions{}, nil).GetTreeData(filepath.Join(rootDirectory, readmeFileName))
	if len(entries) != 0 {
		testingHandle.Fatalf("expected no entries, got %v", entries)
	}
}

// TestWalkSkipsUnreadableSubdirectory verifies that read failures drop only the affected subtree.
func TestWalkSkipsUnreadableSubdirectory(testingHandle *testing.T) {
	if runtime.GOOS == "windows" {
		testingHandle.Skip("permission bits are not enforced on windows")
	}
	if os.Geteuid() == 0 {
		testingHandle.Skip("root ignores directory permissions")
	}
	rootDirectory := testingHandle.TempDir()
	lockedDirectory := filepath.Join(rootDirectory, "locked")
	if makeDirError := os.MkdirAll(filepath.Join(lockedDirectory, "inner"), 0o755); makeDirError != nil {
		testingHandle.Fatalf("mkdir: %v", makeDirError)
	}
	if writeError := os.WriteFile(filepath.Join(rootDirectory, "visible.txt"), []byte("x"), 0o644); writeError != nil {
		testingHandle.Fatalf("write: %v", writeError)
	}
	if chmodError := os.Chmod(lockedDirectory, 0o000); chmodError != nil {
		testingHandle.Fatalf("chmod: %v", chmodError)
	}
	testingHandle.Cleanup(func() {
		_ = os.Chmod(lockedDirectory, 0o755)
	})

	entries := commands.NewTreeBuilder(types.DisplayOptions{}, nil).GetTreeData(rootDirectory)
	assertPaths(testingHandle, relativePaths(testingHandle, rootDirectory, entries), []string{"locked", "visible.txt"})
}

// TestShouldInclude verifies the filter predicate.
func TestShouldInclude(testingHandle *testing.T) {
	directoryEntry := types.Entry{Path: filepath.Join("root", "dir"), Kind: types.EntryKindDirectory}
	sourceEntry := types.Entry{Path: filepath.Join("root", "main.RS"), Kind: types.EntryKindFile}
	bareEntry := types.Entry{Path: filepath.Join("root", "Makefile"), Kind: types.EntryKindFile}
	hiddenEntry := types.Entry{Path: filepath.Join("root", ".rs"), Kind: types.EntryKindFile}

	testCases := []struct {
		name     string
		entry    types.Entry
		options  types.DisplayOptions
		expected bool
	}{
		{name: "directory_always", entry: directoryEntry, options: types.DisplayOptions{FoldersOnly: true, Extensions: []string{"rs"}}, expected: true},
		{name: "file_folders_only", entry: sourceEntry, options: types.DisplayOptions{FoldersOnly: true}, expected: false},
		{name: "file_no_filter", entry: bareEntry, options: types.DisplayOptions{}, expected: true},
		{name: "file_matching_extension", entry: sourceEntry, options: types.DisplayOptions{Extensions: []string{"toml", "rs"}}, expected: true},
		{name: "file_other_extension", entry: sourceEntry, options: types.DisplayOptions{Extensions: []string{"toml"}}, expected: false},
		{name: "file_without_extension", entry: bareEntry, options: types.DisplayOptions{Extensions: []string{"toml"}}, expected: false},
		{name: "hidden_name_is_not_extension", entry: hiddenEntry, options: types.DisplayOptions{Extensions: []string{"rs"}}, expected: false},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(t *testing.T) {
			if actual := commands.ShouldInclude(testCase.entry, testCase.options); actual != testCase.expected {
				t.Fatalf("expected %t, got %t", testCase.expected, actual)
			}
		})
	}
}

// TestSortEntriesKeepsSubtreesContiguous verifies component-wise ordering.
func TestSortEntriesKeepsSubtreesContiguous(testingHandle *testing.T) {
	root := "root"
	entries := []types.Entry{
		{Path: filepath.Join(root, "a-c"), Kind: types.EntryKindDirectory},
		{Path: filepath.Join(root, "a", "b"), Kind: types.EntryKindFile},
		{Path: filepath.Join(root, "b.txt"), Kind: types.EntryKindFile},
		{Path: filepath.Join(root, "a"), Kind: types.EntryKindDirectory},
		{Path: filepath.Join(root, "A.txt"), Kind: types.EntryKindFile},
	}
	commands.SortEntries(entries)
	assertPaths(testingHandle, relativePaths(testingHandle, root, entries), []string{"A.txt", "a", "a/b", "a-c", "b.txt"})
}
