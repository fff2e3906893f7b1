package game

import (
	"testing"

	"github.com/phanxgames/willow"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestCircleOverlapsRect(t *testing.T) {
	box := willow.Rect{X: 100, Y: 100, Width: 48, Height: 48}

	tests := []struct {
		name   string
		center dmath.Vec2
		radius float64
		expect bool
	}{
		{"center inside", dmath.Vec2{X: 124, Y: 124}, 24, true},
		{"overlapping from left", dmath.Vec2{X: 90, Y: 124}, 24, true},
		{"overlapping from above", dmath.Vec2{X: 124, Y: 80}, 24, true},
		{"touching right edge", dmath.Vec2{X: 172, Y: 124}, 24, true},
		{"touching corner diagonal", dmath.Vec2{X: 165, Y: 165}, 24.05, true},
		{"just past corner diagonal", dmath.Vec2{X: 165, Y: 165}, 24, false},
		{"clear of left edge", dmath.Vec2{X: 75, Y: 124}, 24, false},
		{"clear of bottom edge", dmath.Vec2{X: 124, Y: 173}, 24, false},
		{"far away", dmath.Vec2{X: 500, Y: 500}, 24, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := circleOverlapsRect(tt.center, tt.radius, box)
			if got != tt.expect {
				t.Errorf("circleOverlapsRect(%v, %v, %v) = %v, want %v",
					tt.center, tt.radius, box, got, tt.expect)
			}
		})
	}
}

func TestWrapPosition(t *testing.T) {
	// 960x540 window with 60px bars: playfield y in [60, 480].
	field := willow.Rect{X: 0, Y: 60, Width: 960, Height: 420}
	const half = 24.0

	tests := []struct {
		name string
		pos  dmath.Vec2
		want dmath.Vec2
	}{
		{"inside unchanged", dmath.Vec2{X: 480, Y: 270}, dmath.Vec2{X: 480, Y: 270}},
		{"on left edge unchanged", dmath.Vec2{X: 0, Y: 270}, dmath.Vec2{X: 0, Y: 270}},
		{"past left edge", dmath.Vec2{X: -1, Y: 270}, dmath.Vec2{X: 936, Y: 270}},
		{"past right edge", dmath.Vec2{X: 961, Y: 270}, dmath.Vec2{X: 24, Y: 270}},
		{"past top bar", dmath.Vec2{X: 480, Y: 59}, dmath.Vec2{X: 480, Y: 456}},
		{"past bottom bar", dmath.Vec2{X: 480, Y: 481}, dmath.Vec2{X: 480, Y: 84}},
		{"past corner wraps both", dmath.Vec2{X: -5, Y: 481}, dmath.Vec2{X: 936, Y: 84}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapPosition(tt.pos, field, half)
			if got != tt.want {
				t.Errorf("wrapPosition(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}
