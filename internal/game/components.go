package game

import (
	"github.com/phanxgames/willow"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Direction is the player's facing direction. Once set by input it persists
// until another key overrides it; Stationary exists only as the pre-input
// state, so the player never stops once moving.
type Direction uint8

const (
	Stationary Direction = iota
	Up
	Down
	Left
	Right
)

// Vector returns the unit movement vector for the direction in screen
// coordinates (Y increases downward).
func (d Direction) Vector() dmath.Vec2 {
	switch d {
	case Up:
		return dmath.Vec2{Y: -1}
	case Down:
		return dmath.Vec2{Y: 1}
	case Left:
		return dmath.Vec2{X: -1}
	case Right:
		return dmath.Vec2{X: 1}
	default:
		return dmath.Vec2{}
	}
}

// PlayerData marks the player entity and carries its facing direction.
type PlayerData struct {
	Dir Direction
}

// AnimationData cycles a sprite-sheet frame index through [First, Last] on a
// repeating timer. The timer runs regardless of direction, so the player
// walks in place while stationary.
type AnimationData struct {
	First, Last int
	Index       int
	Interval    float64 // seconds per frame
	Elapsed     float64
}

// Advance accumulates dt and steps the frame index each time the timer
// fires, wrapping from Last back to First. Reports whether Index changed.
func (a *AnimationData) Advance(dt float64) bool {
	a.Elapsed += dt
	changed := false
	for a.Elapsed >= a.Interval {
		a.Elapsed -= a.Interval
		if a.Index >= a.Last {
			a.Index = a.First
		} else {
			a.Index++
		}
		changed = true
	}
	return changed
}

// StickData marks a collectable stick and carries its collision radius.
type StickData struct {
	Radius float64
}

// SessionData is the singleton run state: score, movement speed, current
// rank label, and the pause flag.
type SessionData struct {
	Score  int
	Speed  float64
	Rank   string
	Paused bool
}

// SpriteData links an entity to its scene-graph node.
type SpriteData struct {
	Node *willow.Node
}

var (
	Position  = donburi.NewComponentType[dmath.Vec2]()
	Player    = donburi.NewComponentType[PlayerData]()
	Animation = donburi.NewComponentType[AnimationData]()
	Stick     = donburi.NewComponentType[StickData]()
	Session   = donburi.NewComponentType[SessionData]()
	Sprite    = donburi.NewComponentType[SpriteData]()
)
