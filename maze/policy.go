package maze

import (
	"fmt"
	"strings"
)

// BuildPolicy decides which worklist cell the builder processes next.
type BuildPolicy uint8

const (
	// LatestFirst treats the worklist as a stack. It produces long winding corridors.
	LatestFirst BuildPolicy = iota
	// FirstFirst treats the worklist as a queue. Not a good maze.
	FirstFirst
	// RandomInQueue picks uniformly among the worklist.
	RandomInQueue
	// GloballyRandom picks uniformly among every cell of the grid. Not a good maze.
	GloballyRandom
)

var policyNames = map[BuildPolicy]string{
	LatestFirst:    "latest-first",
	FirstFirst:     "first-first",
	RandomInQueue:  "random-in-queue",
	GloballyRandom: "globally-random",
}

func (p BuildPolicy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("BuildPolicy(%d)", uint8(p))
}

// Valid reports whether p is a defined policy.
func (p BuildPolicy) Valid() bool {
	_, ok := policyNames[p]
	return ok
}

// ParseBuildPolicy resolves a policy from its name or its numeric build mode ("0" to "3").
func ParseBuildPolicy(s string) (BuildPolicy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p, n := range policyNames {
		if name == n || name == fmt.Sprint(uint8(p)) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown build mode %q", ErrInvalidConfiguration, s)
}
