package validator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/eng618/nonogram-builder/pkg/common"
	"github.com/eng618/nonogram-builder/pkg/model"
)

// PuzzleStat records the validation outcome for one puzzle file.
type PuzzleStat struct {
	File     string `json:"file"`
	PuzzleID int    `json:"puzzle_id"`
	Solvable bool   `json:"solvable"`
	Outcome  string `json:"outcome"`
	Unique   bool   `json:"unique"`
	TimeMs   int64  `json:"time_ms"`
	Error    string `json:"error,omitempty"`
}

// Validate parses every puzzle_*.json file in the puzzles directory,
// structurally validates it, and — when checkSolvable is set — runs the
// solver against it (bounded by maxDepth) to confirm solvability.
// Solvability checks run concurrently, bounded by runtime.NumCPU. Results
// are written to <data dir>/validation_stats.json.
func Validate(checkSolvable bool, maxDepth int) error {
	puzzlesDir, err := common.PuzzlesDir()
	if err != nil {
		return fmt.Errorf("failed to resolve puzzles directory: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(puzzlesDir, "puzzle_*.json"))
	if err != nil {
		return err
	}

	type validationError struct {
		File  string
		Error string
	}

	if !checkSolvable {
		var failures []validationError
		for _, f := range files {
			if _, err := readPuzzleFile(f); err != nil {
				failures = append(failures, validationError{filepath.Base(f), err.Error()})
			}
		}
		if len(failures) > 0 {
			common.Error("validation failed for %d puzzles:", len(failures))
			for _, fail := range failures {
				common.Error("  %s: %s", fail.File, fail.Error)
			}
			return fmt.Errorf("%d puzzles failed validation", len(failures))
		}
		common.Info("All %d puzzles validated successfully.", len(files))
		return nil
	}

	concurrency := runtime.NumCPU()
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	statsCh := make(chan PuzzleStat, len(files))
	errCh := make(chan validationError, len(files))

	for _, f := range files {
		f := f
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			p, err := readPuzzleFile(f)
			if err != nil {
				errCh <- validationError{filepath.Base(f), err.Error()}
				return
			}

			start := time.Now()
			ok, solvability, serr := IsSolvable(p, maxDepth)
			stat := PuzzleStat{
				File:     f,
				PuzzleID: p.ID,
				Solvable: ok,
				Outcome:  solvability.Outcome,
				Unique:   solvability.Unique,
				TimeMs:   time.Since(start).Milliseconds(),
			}
			if serr != nil {
				stat.Error = serr.Error()
			}
			statsCh <- stat
		}()
	}

	wg.Wait()
	close(statsCh)
	close(errCh)

	var failures []validationError
	for e := range errCh {
		failures = append(failures, e)
	}

	var allStats []PuzzleStat
	var unsolvable []PuzzleStat
	for s := range statsCh {
		allStats = append(allStats, s)
		common.Verbose("puzzle %d (%s): solvable=%v outcome=%s unique=%v time=%dms",
			s.PuzzleID, filepath.Base(s.File), s.Solvable, s.Outcome, s.Unique, s.TimeMs)
		if !s.Solvable {
			unsolvable = append(unsolvable, s)
		}
	}

	if dataDir, err := common.DataDir(); err == nil {
		if err := os.MkdirAll(dataDir, 0o755); err == nil {
			b, _ := json.MarshalIndent(allStats, "", "  ")
			statsPath := filepath.Join(dataDir, "validation_stats.json")
			if err := os.WriteFile(statsPath, b, 0o644); err == nil {
				common.Info("Detailed results written to %s", statsPath)
			}
		}
	}

	hasErrors := false
	if len(failures) > 0 {
		hasErrors = true
		common.Error("structural validation failed for %d puzzles:", len(failures))
		for _, e := range failures {
			common.Error("  %s: %s", e.File, e.Error)
		}
	}
	if len(unsolvable) > 0 {
		hasErrors = true
		common.Error("solvability check failed for %d puzzles:", len(unsolvable))
		for _, s := range unsolvable {
			common.Error("  %s (puzzle %d): outcome=%s", filepath.Base(s.File), s.PuzzleID, s.Outcome)
		}
	}
	if hasErrors {
		return fmt.Errorf("%d puzzles failed validation (see summary above)", len(failures)+len(unsolvable))
	}

	common.Info("All %d puzzles and their solvability validated successfully.", len(files))
	return nil
}

func readPuzzleFile(path string) (model.Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Puzzle{}, err
	}
	var p model.Puzzle
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Puzzle{}, err
	}

	base := filepath.Base(path)
	expected := fmt.Sprintf("puzzle_%d.json", p.ID)
	if base != expected {
		return model.Puzzle{}, fmt.Errorf("filename %s does not match ID %d", base, p.ID)
	}

	if errs := ValidateStructural(p); len(errs) > 0 {
		return model.Puzzle{}, errs[0]
	}

	return p, nil
}
