// Package batch generates a complete themed pack of puzzles in one pass,
// walking a fixed difficulty progression and updating the pack registry.
package batch

import (
	"fmt"
	"time"

	"github.com/eng618/nonogram-builder/pkg/common"
	"github.com/eng618/nonogram-builder/pkg/generator"
	"github.com/eng618/nonogram-builder/pkg/model"
)

const puzzlesPerPack = 15

// tierProgression lays out the difficulty of each puzzle position in a pack:
// 4 trivial, 4 easy, 4 medium, 2 hard, 1 extreme (the pack's "boss" puzzle).
var tierProgression = []string{
	"trivial", "trivial", "trivial", "trivial",
	"easy", "easy", "easy", "easy",
	"medium", "medium", "medium", "medium",
	"hard", "hard",
	"extreme",
}

// Config holds configuration for batch pack generation.
type Config struct {
	PackID    int
	Overwrite bool
	DryRun    bool
	BaseSeed  int64 // 0 = derive from puzzle ID
	Strategy  string
	Backup    bool
}

// Result reports the outcome of generating one puzzle within a pack.
type Result struct {
	PuzzleID     int
	Difficulty   string
	Success      bool
	Error        string
	Attempts     int
	GenerationMS int64
}

// PackBatch is the complete outcome of a GeneratePack run.
type PackBatch struct {
	PackID       int
	Puzzles      []Result
	TotalTime    time.Duration
	SuccessCount int
	FailureCount int
}

// fallbackStrategies is tried in order when the configured strategy fails to
// produce a uniquely solvable puzzle within its attempt budget.
var fallbackStrategies = []string{"random-fill", "symmetric"}

// GeneratePack generates all puzzlesPerPack puzzles for a pack, in
// tierProgression order, and (unless DryRun) writes each puzzle file and
// updates packs.json with the pack's puzzle ID list.
func GeneratePack(cfg Config) (*PackBatch, error) {
	if cfg.PackID < 1 {
		return nil, fmt.Errorf("invalid pack ID: %d", cfg.PackID)
	}

	startTime := time.Now()
	batch := &PackBatch{PackID: cfg.PackID}

	startPuzzleID := (cfg.PackID-1)*puzzlesPerPack + 1
	puzzleIDs := make([]int, puzzlesPerPack)

	if cfg.Backup && !cfg.DryRun {
		for i := range puzzleIDs {
			puzzleIDs[i] = startPuzzleID + i
		}
		if puzzlesDir, err := common.PuzzlesDir(); err == nil {
			if _, err := common.BackupPuzzles(puzzleIDs, puzzlesDir, puzzlesDir+"_backup"); err != nil {
				common.Warning("backup failed: %v (continuing anyway)", err)
			}
		}
	}

	for i, difficulty := range tierProgression {
		puzzleID := startPuzzleID + i
		puzzleIDs[i] = puzzleID
		result := generateOneForPack(puzzleID, difficulty, cfg)
		batch.Puzzles = append(batch.Puzzles, result)
		if result.Success {
			batch.SuccessCount++
		} else {
			batch.FailureCount++
		}
	}

	batch.TotalTime = time.Since(startTime)

	if cfg.DryRun {
		return batch, nil
	}

	if err := updatePackRegistry(cfg.PackID, puzzleIDs); err != nil {
		return batch, err
	}

	return batch, nil
}

// generateOneForPack tries the configured strategy, falling back through
// fallbackStrategies, until one produces a uniquely solvable puzzle.
func generateOneForPack(puzzleID int, difficulty string, cfg Config) Result {
	result := Result{PuzzleID: puzzleID, Difficulty: difficulty}
	start := time.Now()

	strategies := []string{cfg.Strategy}
	for _, fb := range fallbackStrategies {
		if fb != cfg.Strategy {
			strategies = append(strategies, fb)
		}
	}

	baseSeed := cfg.BaseSeed
	if baseSeed == 0 {
		baseSeed = int64(puzzleID) * 31337
	}

	if cfg.DryRun {
		result.Success = true
		common.Info("DRY RUN: would generate puzzle %d (%s) using %s", puzzleID, difficulty, strategies[0])
		return result
	}

	var lastErr error
	for si, strat := range strategies {
		puzzle, stats, err := generator.GenerateOne(puzzleID, difficulty, strat, baseSeed+int64(si)*104729)
		if err != nil {
			lastErr = err
			continue
		}
		if err := generator.WritePuzzle(puzzle, cfg.Overwrite); err != nil {
			lastErr = err
			continue
		}
		result.Success = true
		result.Attempts = stats.Attempts
		result.GenerationMS = time.Since(start).Milliseconds()
		common.Info("generated puzzle %d (%s) using %s in %d attempt(s)", puzzleID, difficulty, strat, stats.Attempts)
		return result
	}

	result.Error = fmt.Sprintf("all strategies failed: %v", lastErr)
	return result
}

func updatePackRegistry(packID int, puzzleIDs []int) error {
	puzzlesDir, err := common.PuzzlesDir()
	if err != nil {
		return fmt.Errorf("failed to resolve puzzles directory: %w", err)
	}
	packsPath := puzzlesDir + "/packs.json"

	registry, err := common.LoadPackRegistry(packsPath)
	if err != nil {
		registry = &model.PackRegistry{Version: "1"}
	}

	found := false
	for i, p := range registry.Packs {
		if p.ID == packID {
			registry.Packs[i].Puzzles = puzzleIDs
			found = true
			break
		}
	}
	if !found {
		registry.Packs = append(registry.Packs, model.Pack{ID: packID, Name: fmt.Sprintf("Pack %d", packID), Puzzles: puzzleIDs})
	}

	return common.SavePackRegistry(packsPath, registry)
}
