// Package registry provides a global registry of CPU targeting strategies.
// Strategies register a factory under an ID so commands can pick one by name
// without hardcoding the set.
package registry

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-battleship/internal/game"
	"github.com/vovakirdan/tui-battleship/internal/targeting"
)

// StrategyInfo contains metadata about a registered strategy.
type StrategyInfo struct {
	ID    string
	Title string
}

// Factory creates a move source drawing random numbers from rng.
// huntAttempts is the random sampling budget for strategies that hunt.
type Factory func(rng *rand.Rand, huntAttempts int) game.MoveSource

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

func init() {
	Register("hunt", "Hunt/target", func(rng *rand.Rand, huntAttempts int) game.MoveSource {
		return targeting.NewEngine(rng, targeting.WithHuntAttempts(huntAttempts))
	})
	Register("random", "Random fire", func(rng *rand.Rand, _ int) game.MoveSource {
		return targeting.NewRandom(rng)
	})
}

// Register adds a strategy factory to the registry.
// Panics if a strategy with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: strategy %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered strategies, sorted by ID.
func List() []StrategyInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]StrategyInfo, 0, len(factories))
	for id := range factories {
		result = append(result, StrategyInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a strategy by its ID.
// Returns an error if the ID is not registered.
func Create(id string, rng *rand.Rand, huntAttempts int) (game.MoveSource, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown strategy %q", id)
	}

	return f(rng, huntAttempts), nil
}

// Exists checks if a strategy with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
