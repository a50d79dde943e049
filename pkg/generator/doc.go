// Package generator produces nonogram puzzles: it fills a grid with a
// pluggable strategy, derives row/column hints from the fill, and retries
// with a new seed until the solver confirms the resulting puzzle has a
// unique solution.
//
// Strategies register themselves in an init() function via RegisterStrategy
// and are looked up by name at generation time, so new fill strategies can
// be added without changing the Generate entry point.
package generator
