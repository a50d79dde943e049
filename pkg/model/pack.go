package model

// Pack groups a themed, size-ordered run of puzzles, the unit the batch
// command generates and records in packs.json.
type Pack struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ThemeSeed string `json:"theme_seed"`
	Puzzles   []int  `json:"puzzles"`
}

// PackRegistry is the persisted contents of packs.json.
type PackRegistry struct {
	Version string `json:"version"`
	Packs   []Pack `json:"packs"`
}
