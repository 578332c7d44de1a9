// Package runner implements the lane runner simulation: a car switches
// between lanes to dodge obstacles and pick up coins while the scroll speed
// ramps up. The package is pure game logic; timing comes from the caller
// and drawing goes through core.Screen.
package runner

import "time"

// Gameplay constants. These are fixed; only presentation is configurable.
const (
	Lanes      = 3
	CenterLane = Lanes / 2

	BaseSpeed = 360.0 // view units per second
	SpeedRamp = 10.0  // view units per second, per second

	SpawnMin    = 360 * time.Millisecond
	SpawnMax    = 900 * time.Millisecond
	CoinChance  = 0.25
	MinSpawnGap = 1.6 // in item heights

	CoinBonus    = 120
	SurvivalRate = 30.0 // points per second survived
)

// Logical view geometry. Positions are in view units; y grows downward.
const (
	ViewHeight      = 640.0
	ItemHeight      = 44.0
	CarHeight       = 52.0
	CarBottomMargin = 40.0

	// CarY is the vertical center of the car.
	CarY = ViewHeight - CarBottomMargin - CarHeight/2
)
