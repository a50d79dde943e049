// Package main provides the nonogram-builder CLI tool.
//
// # Overview
//
// nonogram-builder is a command-line tool for solving, generating,
// validating, and rendering nonogram (picross) puzzles. A puzzle is
// described entirely by its row and column hints; the solver reconstructs
// (or disproves) the grid those hints imply.
//
// # Key Features
//
//   - Solving a puzzle description via line-logic, recursive search, or a
//     2-SAT-accelerated search, with single- or all-solutions modes
//   - Strategy-driven puzzle generation with seeded, reproducible output
//   - Uniqueness validation and structural checks, run concurrently across
//     a worker pool
//   - ASCII/Unicode rendering for visual inspection
//   - Themed pack batch generation across a difficulty progression
//
// # Installation & Building
//
//	go build
//	./nonogram-builder --help
//
// # Commands
//
// ## solve
//
// Solve a puzzle description read from a file or stdin.
//
// Examples:
//
//	nonogram-builder solve puzzles/puzzle_1.json
//	nonogram-builder solve --algorithm by-lines puzzles/puzzle_1.json
//	nonogram-builder solve --find-all --max-depth 5 < puzzle.json
//
// Flags:
//
//	-m, --max-depth   Max recursive search depth (default: 3)
//	-f, --find-all    Enumerate every distinct solution
//	-a, --algorithm   by-lines, naive, or 2sat (default: naive)
//
// ## generate
//
// Generate new puzzles with a pluggable grid-fill strategy, retrying with
// a new seed until the solver confirms a unique solution.
//
// Examples:
//
//	nonogram-builder generate --count 10 --difficulty medium
//	nonogram-builder generate --count 1 --seed 42 --strategy symmetric
//	nonogram-builder generate --randomize --difficulty hard
//
// Flags:
//
//	-c, --count         Number of puzzles to generate (default: 10)
//	-d, --difficulty    trivial, easy, medium, hard, extreme (default: medium)
//	-s, --seed          Base seed for deterministic generation
//	-r, --randomize     Seed from a cryptographic source instead
//	--strategy          Grid-fill strategy (default: random-fill)
//	--overwrite         Overwrite existing puzzle files
//
// ## validate
//
// Validate puzzle structure and, optionally, solvability/uniqueness.
//
// Examples:
//
//	nonogram-builder validate
//	nonogram-builder validate --check-solvable --max-depth 5
//
// Flags:
//
//	-s, --check-solvable   Run solver-based solvability checks, recording uniqueness (may be slow)
//	-m, --max-depth        Max recursive search depth (default: 3)
//
// Output:
//   - Console: per-puzzle validation status with timing
//   - validation_stats.json: detailed metrics (when --check-solvable is used)
//
// ## render
//
// Render a puzzle as ASCII or Unicode for quick visual inspection. If the
// puzzle file carries a reference solution that is rendered directly;
// otherwise the by-lines solver fills in whatever it can deduce.
//
// Examples:
//
//	nonogram-builder render --id 1
//	nonogram-builder render --file puzzles/puzzle_33.json --style ascii
//
// Flags:
//
//	-f, --file    Path to a puzzle JSON file
//	-i, --id      Puzzle ID (looked up under puzzles/)
//	-s, --style   ascii or unicode (default: unicode)
//	--color       Colorize filled/empty/unknown cells (default: true)
//
// ## batch
//
// Generate an entire themed pack of puzzles (trivial through extreme) in
// one pass and record the pack's puzzle IDs in packs.json.
//
// Examples:
//
//	nonogram-builder batch --pack 1
//	nonogram-builder batch --pack 2 --overwrite
//	nonogram-builder batch --pack 3 --dry-run
//
// ## stats
//
// Summarize validation_stats.json: how many puzzles were solvable, how
// many had a unique solution, and average/max solve time.
//
// Examples:
//
//	nonogram-builder stats
//	nonogram-builder stats --file puzzles/data/validation_stats.json
//
// ## clean
//
// Remove generated puzzle files and the pack registry, to prepare for a
// fresh generation run.
//
// Examples:
//
//	nonogram-builder clean
//
// # Architecture
//
// ## Package Structure
//
//	cmd/              - Cobra command implementations
//	  ├─ solve/       - Puzzle solving
//	  ├─ generate/    - Puzzle generation
//	  ├─ validate/    - Validation commands
//	  ├─ render/      - Rendering commands
//	  ├─ batch/       - Pack batch generation
//	  ├─ stats/       - Validation statistics summary
//	  └─ clean/       - Cleanup commands
//	pkg/
//	  ├─ common/      - Shared types, utilities, logging, rendering
//	  ├─ nonogram/    - Solver core: fields, lines, line cache, 2-SAT
//	  ├─ generator/   - Strategy registry and generation loop
//	  ├─ batch/       - Pack-level batch orchestration
//	  ├─ validator/   - Structural and solvability validation
//	  ├─ model/       - Data models (Puzzle, Pack)
//	  └─ ui/          - Progress spinner
//
// ## Key Algorithms
//
// ### Line logic (SolveByLines)
//
// Repeatedly recomputes each dirty row/column's set of consistent
// completions against the rest of the grid, intersecting them down to the
// cells every completion agrees on, until no row or column changes.
//
// ### Recursive search (Solve)
//
// When line logic stalls short of a full solution, guesses a cell's value
// and recurses, backtracking on contradiction, up to a configurable depth.
//
// ### 2-SAT acceleration (Solve2SAT)
//
// Encodes the line-logic fixed point's remaining ambiguity as an implication
// graph over pairs of cell assumptions and forces every literal that implies
// its own negation. Pairs are first refined by line logic alone, then by the
// recursive search; whatever is still undetermined is returned as Unsolved.
//
// ### Generation loop
//
// A registered GridStrategy fills a grid, row/column hints are derived by
// run-length encoding, and the solver checks the result has a unique
// solution; on failure the loop reseeds and retries up to a configured
// attempt budget.
//
// # Development Workflow
//
//	# Generate a themed pack and confirm uniqueness
//	nonogram-builder batch --pack 1
//	nonogram-builder validate --check-solvable
//	nonogram-builder render --id 1
//
//	# Solve an externally authored puzzle
//	nonogram-builder solve puzzle.json --algorithm 2sat --find-all
//
// # Configuration
//
// ## Global Flags (available for all commands)
//
//	-v, --verbose              Enable verbose output for debugging
//	-j, --workers string       Worker count (integer, 'half', or 'full'); validated, but no command reads it
//	-w, --working-dir string   Working directory for puzzle paths
package main
