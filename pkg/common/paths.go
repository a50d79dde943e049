package common

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Singleton for resolved workspace paths.
var (
	resolvedWorkspaceDir string
	resolvedPuzzlesDir    string
	resolvedDataDir       string
	resolvedStatsFile     string
	pathsOnce             sync.Once
	pathsError            error
)

// RepoMarkerFiles are files that indicate the root of a nonogram-builder
// workspace. go.mod is reliable here because, unlike the puzzles/ directory
// itself, nothing else in the tree creates one.
var RepoMarkerFiles = []string{"go.mod"}

// initPaths resolves workspace paths once at startup, walking up from the
// current directory to find a marker file.
func initPaths() {
	pathsOnce.Do(func() {
		workspaceRoot, err := findWorkspaceRoot()
		if err != nil {
			pathsError = err
			return
		}

		resolvedWorkspaceDir = workspaceRoot
		resolvedPuzzlesDir = filepath.Join(workspaceRoot, "puzzles")
		resolvedDataDir = filepath.Join(resolvedPuzzlesDir, "data")
		resolvedStatsFile = filepath.Join(resolvedDataDir, "stats.json")

		Verbose("Resolved workspace root: %s", workspaceRoot)
		Verbose("Puzzles directory: %s", resolvedPuzzlesDir)
	})
}

// findWorkspaceRoot searches for the workspace root by looking for marker
// files starting from the current directory and walking up the tree.
func findWorkspaceRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	dir := cwd
	for i := 0; i < 6; i++ {
		if isWorkspaceRoot(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("could not find nonogram-builder workspace root (looked for %v starting from %s)", RepoMarkerFiles, cwd)
}

func isWorkspaceRoot(dir string) bool {
	for _, marker := range RepoMarkerFiles {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

// WorkspaceDir returns the absolute path to the workspace root.
func WorkspaceDir() (string, error) {
	initPaths()
	if pathsError != nil {
		return "", pathsError
	}
	return resolvedWorkspaceDir, nil
}

// PuzzlesDir returns the absolute path to the puzzles directory.
func PuzzlesDir() (string, error) {
	initPaths()
	if pathsError != nil {
		return "", pathsError
	}
	return resolvedPuzzlesDir, nil
}

// DataDir returns the absolute path to the data directory.
func DataDir() (string, error) {
	initPaths()
	if pathsError != nil {
		return "", pathsError
	}
	return resolvedDataDir, nil
}

// StatsFile returns the absolute path to the aggregate stats.json file.
func StatsFile() (string, error) {
	initPaths()
	if pathsError != nil {
		return "", pathsError
	}
	return resolvedStatsFile, nil
}

// PuzzleFilePath returns the absolute path to a specific puzzle file.
func PuzzleFilePath(puzzleID int) (string, error) {
	puzzlesDir, err := PuzzlesDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(puzzlesDir, fmt.Sprintf("puzzle_%d.json", puzzleID)), nil
}

// MustPuzzlesDir returns the puzzles directory path or panics if not found.
// Use sparingly - prefer PuzzlesDir() with proper error handling.
func MustPuzzlesDir() string {
	dir, err := PuzzlesDir()
	if err != nil {
		panic(fmt.Sprintf("failed to resolve puzzles directory: %v", err))
	}
	return dir
}

// ResetPaths resets the cached paths (useful for testing).
func ResetPaths() {
	resolvedWorkspaceDir = ""
	resolvedPuzzlesDir = ""
	resolvedDataDir = ""
	resolvedStatsFile = ""
	pathsOnce = sync.Once{}
	pathsError = nil
}
