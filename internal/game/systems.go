package game

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/willow"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/pickinsticks/internal/assets"
)

var (
	playerQuery = donburi.NewQuery(filter.Contains(Player, Position, Animation, Sprite))
	stickQuery  = donburi.NewQuery(filter.Contains(Stick, Position, Sprite))
)

// playerEntry returns the player entity, or nil when none exists this frame.
// Every system that targets the player skips its update in that case.
func (g *Game) playerEntry() *donburi.Entry {
	entry, ok := playerQuery.First(g.world)
	if !ok {
		return nil
	}
	return entry
}

// inputSystem polls WASD and the arrow keys and updates the player's facing
// direction. Later checks win when several keys are held, matching the
// W, S, A, D poll order. Left and right also set the sprite flip.
func (g *Game) inputSystem() {
	player := g.playerEntry()
	if player == nil {
		return
	}

	dir := Player.Get(player).Dir
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dir = Up
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dir = Down
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dir = Left
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dir = Right
	}
	g.setDirection(player, dir)
}

// setDirection updates the facing direction and mirrors the sprite when
// facing left.
func (g *Game) setDirection(player *donburi.Entry, dir Direction) {
	Player.Get(player).Dir = dir

	node := Sprite.Get(player).Node
	scale := g.cfg.Player.Scale
	switch dir {
	case Left:
		node.SetScale(-scale, scale)
	case Right:
		node.SetScale(scale, scale)
	}
}

// movementSystem applies direction x speed x dt to the player position.
func (g *Game) movementSystem(dt float64) {
	player := g.playerEntry()
	if player == nil {
		return
	}

	v := Player.Get(player).Dir.Vector()
	if v.X == 0 && v.Y == 0 {
		return
	}
	speed := Session.Get(g.session).Speed
	pos := Position.Get(player)
	pos.X += v.X * speed * dt
	pos.Y += v.Y * speed * dt
	Sprite.Get(player).Node.SetPosition(pos.X, pos.Y)
}

// wrapSystem teleports the player to the opposite playfield edge when its
// center crosses an edge.
func (g *Game) wrapSystem() {
	player := g.playerEntry()
	if player == nil {
		return
	}

	pos := Position.Get(player)
	wrapped := wrapPosition(*pos, g.playfield(), g.playerHalfSize())
	if wrapped != *pos {
		*pos = wrapped
		Sprite.Get(player).Node.SetPosition(pos.X, pos.Y)
	}
}

// animationSystem advances the walk-cycle frame on its repeating timer.
func (g *Game) animationSystem(dt float64) {
	player := g.playerEntry()
	if player == nil {
		return
	}

	anim := Animation.Get(player)
	if anim.Advance(dt) {
		Sprite.Get(player).Node.TextureRegion = g.frames[anim.Index]
	}
}

// collisionSystem tests each live stick's bounding circle against the
// player's sprite box. Hits are despawned after the scan and published as
// pickup events.
func (g *Game) collisionSystem() {
	player := g.playerEntry()
	if player == nil {
		return
	}

	pos := Position.Get(player)
	half := g.playerHalfSize()
	box := willow.Rect{
		X:      pos.X - half,
		Y:      pos.Y - half,
		Width:  half * 2,
		Height: half * 2,
	}

	var hits []*donburi.Entry
	stickQuery.Each(g.world, func(entry *donburi.Entry) {
		if circleOverlapsRect(*Position.Get(entry), Stick.Get(entry).Radius, box) {
			hits = append(hits, entry)
		}
	})
	for _, entry := range hits {
		entity := entry.Entity()
		Sprite.Get(entry).Node.Dispose()
		g.world.Remove(entity)
		PickupEventType.Publish(g.world, PickupEvent{Stick: entity})
	}
}

// rankSystem recomputes the rank label from the threshold table. A change
// flashes the HUD rank text.
func (g *Game) rankSystem() {
	session := Session.Get(g.session)
	label := g.ranks.Label(session.Score)
	if label == session.Rank {
		return
	}
	session.Rank = label

	// Text renders as TextBlock.Color * Node.Color, so the flash rides on
	// the node tint and decays back to white.
	g.nodes.rankText.Color = rankFlashColor
	g.tweens = append(g.tweens,
		willow.TweenColor(g.nodes.rankText, willow.ColorWhite, rankFlashSeconds, ease.OutQuad))
}

// hudSystem rewrites the three HUD text nodes from the session state.
func (g *Game) hudSystem() {
	session := Session.Get(g.session)

	g.setText(g.nodes.scoreText, fmt.Sprintf("Score: %03d", session.Score))
	g.setText(g.nodes.speedText, fmt.Sprintf("Current Speed: %06.2f", session.Speed))
	g.setText(g.nodes.rankText, fmt.Sprintf("Rank: %s", session.Rank))
}

// setText updates a text node's content, skipping the re-layout when the
// content is unchanged.
func (g *Game) setText(node *willow.Node, content string) {
	if node.TextBlock.Content == content {
		return
	}
	node.TextBlock.Content = content
	node.TextBlock.Invalidate()
}

// playerHalfSize is half the rendered player sprite extent. The collision
// box and wrap insets derive from the true sprite size, not the transform
// scale alone.
func (g *Game) playerHalfSize() float64 {
	return assets.CharacterFrameSize * math.Abs(g.cfg.Player.Scale) / 2
}
