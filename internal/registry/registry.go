// Package registry provides a global registry of play-caller factories.
// Coach personalities register themselves in init() functions, allowing the
// orchestrator to assign callers to teams by ID without hardcoded
// dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/gridiron/internal/config"
	"github.com/vovakirdan/gridiron/internal/league"
	"github.com/vovakirdan/gridiron/internal/rng"
)

// ErrUnknownCaller is returned by Create for an unregistered ID.
var ErrUnknownCaller = errors.New("registry: unknown play caller")

// Situation is what a coach sees before calling a play.
type Situation struct {
	Down      int
	YardsToGo int
	BallOn    int // 0 = own goal line, 100 = opponent goal line
	ScoreDiff int // Own score minus opponent score
	Quarter   int
	Rain      bool
}

// Decision is a fourth-down choice.
type Decision int

const (
	GoForIt Decision = iota
	Punt
	FieldGoal
)

func (d Decision) String() string {
	switch d {
	case Punt:
		return "punt"
	case FieldGoal:
		return "field goal"
	default:
		return "go for it"
	}
}

// Caller is a coaching personality. It chooses plays, makes fourth-down
// decisions and biases the draft toward the positions it values.
type Caller interface {
	// ID returns a unique identifier (e.g., "balanced").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// CallPlay returns a play key from tables for the situation.
	// All randomness is drawn from src.
	CallPlay(sit Situation, tables config.Tables, src rng.Source) string

	// FourthDown decides what to do on fourth down.
	FourthDown(sit Situation) Decision

	// DraftBias multiplies a prospect's value at pos during the draft.
	DraftBias(pos league.Position) float64
}

// CallerInfo contains metadata about a registered caller.
type CallerInfo struct {
	ID    string
	Title string
}

// Factory creates a new caller.
type Factory func() Caller

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a caller factory to the registry.
// Panics if a caller with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: caller %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered callers, sorted by ID.
func List() []CallerInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]CallerInfo, 0, len(factories))
	for id := range factories {
		result = append(result, CallerInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// IDs returns the registered caller IDs in sorted order.
func IDs() []string {
	infos := List()
	ids := make([]string, len(infos))
	for i, info := range infos {
		ids[i] = info.ID
	}
	return ids
}

// Create instantiates a caller by its ID.
func Create(id string) (Caller, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownCaller, id)
	}

	return f(), nil
}

// Exists checks if a caller with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
