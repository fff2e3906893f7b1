package game

import (
	"github.com/phanxgames/willow"
	dmath "github.com/yohamta/donburi/features/math"
)

// circleOverlapsRect reports whether a circle of the given radius centered at
// c intersects the axis-aligned box. Touching counts as overlapping.
func circleOverlapsRect(c dmath.Vec2, radius float64, box willow.Rect) bool {
	nx := clamp(c.X, box.X, box.X+box.Width)
	ny := clamp(c.Y, box.Y, box.Y+box.Height)
	dx := c.X - nx
	dy := c.Y - ny
	return dx*dx+dy*dy <= radius*radius
}

// wrapPosition teleports pos to the opposite edge of the playfield, inset by
// half the sprite size, when its center crosses an edge.
func wrapPosition(pos dmath.Vec2, field willow.Rect, half float64) dmath.Vec2 {
	if pos.X < field.X {
		pos.X = field.X + field.Width - half
	} else if pos.X > field.X+field.Width {
		pos.X = field.X + half
	}
	if pos.Y < field.Y {
		pos.Y = field.Y + field.Height - half
	} else if pos.Y > field.Y+field.Height {
		pos.Y = field.Y + half
	}
	return pos
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
