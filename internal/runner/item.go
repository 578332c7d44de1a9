package runner

import (
	"fmt"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// ItemType distinguishes deadly obstacles from collectible coins.
type ItemType uint8

const (
	Obstacle ItemType = iota
	Coin
)

func (t ItemType) String() string {
	switch t {
	case Obstacle:
		return "obstacle"
	case Coin:
		return "coin"
	default:
		return "unknown"
	}
}

// Item is a falling entity. Y is the top edge and is the only field that
// changes after creation.
type Item struct {
	ID   int
	Type ItemType
	Lane int
	Y    float64
}

// Span returns the item's vertical extent.
func (it Item) Span() core.Span {
	return core.SpanAt(it.Y, ItemHeight)
}

// carSpan is the fixed vertical extent of the player's car.
var carSpan = core.SpanAround(CarY, CarHeight)

// mustLane panics when a lane index escapes the valid range. Lanes are
// clamped at every mutation point, so this is unreachable in a correct
// build.
func mustLane(lane int) int {
	if lane < 0 || lane >= Lanes {
		panic(fmt.Sprintf("runner: lane %d out of range [0, %d]", lane, Lanes-1))
	}
	return lane
}
