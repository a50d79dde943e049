package generator

import (
	"fmt"
	"sort"
	"sync"

	"github.com/eng618/nonogram-builder/pkg/generator/config"
)

// StrategyFactory creates a new instance of a grid-fill strategy.
type StrategyFactory func() config.GridStrategy

// StrategyInfo describes a registered strategy.
type StrategyInfo struct {
	Name        string
	Description string
	Factory     StrategyFactory
}

var (
	stMap          = make(map[string]StrategyInfo)
	strategiesLock sync.RWMutex
)

// RegisterStrategy registers a new grid-fill strategy under name.
func RegisterStrategy(name, description string, factory StrategyFactory) {
	strategiesLock.Lock()
	defer strategiesLock.Unlock()

	stMap[name] = StrategyInfo{
		Name:        name,
		Description: description,
		Factory:     factory,
	}
}

// GetStrategy returns a new instance of the requested strategy.
func GetStrategy(name string) (config.GridStrategy, error) {
	strategiesLock.RLock()
	defer strategiesLock.RUnlock()

	info, ok := stMap[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy: %s", name)
	}

	return info.Factory(), nil
}

// ListStrategies returns all registered strategies, sorted by name.
func ListStrategies() []StrategyInfo {
	strategiesLock.RLock()
	defer strategiesLock.RUnlock()

	var list []StrategyInfo
	for _, info := range stMap {
		list = append(list, info)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})

	return list
}

func init() {
	RegisterStrategy("random-fill", "Uniform random fill at the target density", func() config.GridStrategy {
		return &RandomFillStrategy{}
	})
	RegisterStrategy("symmetric", "Horizontally mirrored random fill", func() config.GridStrategy {
		return &SymmetricStrategy{}
	})
}
