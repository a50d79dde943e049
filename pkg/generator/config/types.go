package config

// DifficultySpec defines the grid-size and density envelope for a difficulty tier.
type DifficultySpec struct {
	WidthRange   [2]int
	HeightRange  [2]int
	DensityRange [2]float64 // fraction of cells filled, e.g. [0.35, 0.55]
	MaxDepth     int        // search depth the generator demands the solver stay within
}

// DifficultySpecs tunes generation parameters per difficulty tier, mirroring
// the tier table a puzzle pack is organized around.
var DifficultySpecs = map[string]DifficultySpec{
	"trivial": {WidthRange: [2]int{5, 7}, HeightRange: [2]int{5, 7}, DensityRange: [2]float64{0.35, 0.45}, MaxDepth: 0},
	"easy":    {WidthRange: [2]int{8, 10}, HeightRange: [2]int{8, 10}, DensityRange: [2]float64{0.40, 0.50}, MaxDepth: 0},
	"medium":  {WidthRange: [2]int{10, 15}, HeightRange: [2]int{10, 15}, DensityRange: [2]float64{0.40, 0.55}, MaxDepth: 1},
	"hard":    {WidthRange: [2]int{15, 20}, HeightRange: [2]int{15, 20}, DensityRange: [2]float64{0.45, 0.55}, MaxDepth: 2},
	"extreme": {WidthRange: [2]int{20, 25}, HeightRange: [2]int{20, 25}, DensityRange: [2]float64{0.45, 0.55}, MaxDepth: 3},
}

// GenerationConfig parameterizes a single generation attempt.
type GenerationConfig struct {
	Difficulty     string
	Width, Height  int
	Density        float64
	Seed           int64
	MaxAttempts    int
	RequireUnique  bool
	SolverMaxDepth int
	StrategyName   string
}

// GenerationStats reports how a puzzle came to be. It is returned to the
// caller of the generator and is not written to disk; the puzzle file keeps
// its own seed/attempts/elapsed metadata.
type GenerationStats struct {
	Attempts   int   `json:"attempts"`
	ElapsedMS  int64 `json:"elapsed_ms"`
	Seed       int64 `json:"seed"`
	GridWidth  int   `json:"grid_width"`
	GridHeight int   `json:"grid_height"`
}

// GridStrategy fills a width*height boolean grid (true = filled) according to
// its own placement rules. Implementations must be deterministic given rng.
type GridStrategy interface {
	GenerateGrid(cfg GenerationConfig, rng Randomizer) [][]bool
}

// Randomizer is the subset of *rand.Rand a strategy needs, so strategies
// don't depend directly on math/rand and can be driven by a seeded source.
type Randomizer interface {
	Intn(n int) int
	Float64() float64
}
