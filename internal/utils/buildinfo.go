package utils

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime/debug"
	"strings"
)

const (
	unknownVersion       = "unknown"
	develVersion         = "(devel)"
	vcsRevisionSetting   = "vcs.revision"
	vcsModifiedSetting   = "vcs.modified"
	shortRevisionLength  = 7
	dirtyRevisionSuffix  = "-dirty"
	gitExecutableName    = "git"
	gitNotFoundFormat    = ".git directory not found in or above %s"
	absolutePathFormat   = "failed to get absolute path for %s: %w"
	modifiedSettingValue = "true"
)

// GetApplicationVersion determines the application version.
// It checks the module version and VCS stamps from the Go build info first,
// then falls back to git describe when run from a checkout.
func GetApplicationVersion() string {
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if buildInfoAvailable {
		if buildInfo.Main.Version != "" && buildInfo.Main.Version != develVersion {
			return buildInfo.Main.Version
		}
		if revision := revisionFromSettings(buildInfo.Settings); revision != "" {
			return revision
		}
	}

	gitDirectoryPath, gitDirectoryError := findGitDirectory(".")
	if gitDirectoryError == nil && gitDirectoryPath != "" {
		for _, describeArguments := range [][]string{
			{"describe", "--tags", "--exact-match"},
			{"describe", "--tags", "--long", "--dirty"},
		} {
			// #nosec G204
			gitCommand := exec.Command(gitExecutableName, describeArguments...)
			gitCommand.Dir = gitDirectoryPath
			gitOutput, gitError := gitCommand.Output()
			if gitError == nil && len(gitOutput) > 0 {
				return strings.TrimSpace(string(gitOutput))
			}
		}
	}

	return unknownVersion
}

func revisionFromSettings(settings []debug.BuildSetting) string {
	var revision, modified string
	for _, setting := range settings {
		switch setting.Key {
		case vcsRevisionSetting:
			revision = setting.Value
		case vcsModifiedSetting:
			modified = setting.Value
		}
	}
	if revision == "" {
		return ""
	}
	if len(revision) > shortRevisionLength {
		revision = revision[:shortRevisionLength]
	}
	if modified == modifiedSettingValue {
		return revision + dirtyRevisionSuffix
	}
	return revision
}

// findGitDirectory searches upward from the provided starting directory
// until it locates a directory containing the .git folder.
func findGitDirectory(startDirectory string) (string, error) {
	absoluteStartDirectory, errorAbsolute := filepath.Abs(startDirectory)
	if errorAbsolute != nil {
		return "", fmt.Errorf(absolutePathFormat, startDirectory, errorAbsolute)
	}

	currentDirectoryPath := absoluteStartDirectory
	for {
		fileInformation, errorStat := os.Stat(filepath.Join(currentDirectoryPath, GitDirectoryName))
		if errorStat == nil && fileInformation.IsDir() {
			return currentDirectoryPath, nil
		}
		parentDirectoryPath := filepath.Dir(currentDirectoryPath)
		if parentDirectoryPath == currentDirectoryPath {
			break
		}
		currentDirectoryPath = parentDirectoryPath
	}

	return "", fmt.Errorf(gitNotFoundFormat, absoluteStartDirectory)
}
