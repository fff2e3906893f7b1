// Package game drives a donburi world of per-frame systems on top of a
// willow scene: a player sprite collects sticks while a score/speed/rank
// HUD tracks progress.
package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/willow"
	wecs "github.com/phanxgames/willow/ecs"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	dmath "github.com/yohamta/donburi/features/math"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/pickinsticks/internal/assets"
	"github.com/phanxgames/pickinsticks/internal/config"
)

// The walk cycle uses frames 1..6 of the 7-frame sheet; frame 0 is the
// standing pose and is never shown.
const (
	animFirstFrame = 1
	animLastFrame  = 6
)

// Tween durations for the stick pop-in and the rank flash.
const (
	stickPopSeconds  = 0.25
	rankFlashSeconds = 0.4
)

// rankFlashColor is the highlight the rank text flashes from when the label
// changes.
var rankFlashColor = willow.Color{R: 1, G: 0.85, B: 0.2, A: 1}

// Game owns the donburi world, the willow scene, and the per-frame systems.
type Game struct {
	cfg   config.Config
	world donburi.World
	scene *willow.Scene
	rng   *rand.Rand
	ranks RankTable

	font        *willow.TTFFont
	frames      [assets.CharacterFrameCount]willow.TextureRegion
	stickRegion willow.TextureRegion
	nodes       sceneNodes

	session *donburi.Entry
	tweens  []*willow.TweenGroup
}

// New builds the scene and world for one run. The seed drives stick
// placement; the same seed reproduces the same spawn sequence.
func New(cfg config.Config, lib *assets.Library, seed uint64) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	font, err := willow.LoadTTFFont(goregular.TTF, cfg.HUD.FontSize)
	if err != nil {
		return nil, fmt.Errorf("load hud font: %w", err)
	}

	g := &Game{
		cfg:   cfg,
		world: donburi.NewWorld(),
		scene: willow.NewScene(),
		rng:   rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
		ranks: NewRankTable(cfg.Ranks),
		font:  font,
	}
	g.scene.SetEntityStore(wecs.NewDonburiStore(g.world))
	g.buildScene(lib)

	// Session singleton. Its entity id doubles as the playfield node's
	// EntityID so clicks reach the ECS bridge.
	sessionEntity := g.world.Create(Session)
	g.session = g.world.Entry(sessionEntity)
	Session.SetValue(g.session, SessionData{
		Speed: cfg.Player.StartSpeed,
		Rank:  g.ranks.Label(0),
	})
	g.nodes.playfield.EntityID = uint32(sessionEntity.Id())

	field := g.playfield()
	center := dmath.Vec2{X: field.X + field.Width/2, Y: field.Y + field.Height/2}

	playerEntity := g.world.Create(Player, Position, Animation, Sprite)
	player := g.world.Entry(playerEntity)
	Position.SetValue(player, center)
	Animation.SetValue(player, AnimationData{
		First:    animFirstFrame,
		Last:     animLastFrame,
		Index:    animFirstFrame,
		Interval: cfg.Player.FrameSeconds,
	})
	Sprite.SetValue(player, SpriteData{Node: g.nodes.player})
	g.nodes.player.SetPosition(center.X, center.Y)

	// The first stick spawns at a fixed spot just right of center.
	g.spawnStick(dmath.Vec2{X: center.X + 48, Y: center.Y}, false)

	PickupEventType.Subscribe(g.world, g.onPickup)
	wecs.InteractionEventType.Subscribe(g.world, g.onInteraction)

	return g, nil
}

// Scene returns the willow scene for the engine loop.
func (g *Game) Scene() *willow.Scene {
	return g.scene
}

// Update runs one frame of game systems. Registered with the engine via
// Scene.SetUpdateFunc.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.togglePause()
	}
	// Drain interaction events forwarded by the scene (click toggles pause).
	events.ProcessAllEvents(g.world)

	if !Session.Get(g.session).Paused {
		g.inputSystem()
		g.movementSystem(dt)
		g.wrapSystem()
		g.animationSystem(dt)
		g.collisionSystem()
		PickupEventType.ProcessEvents(g.world)
		g.rankSystem()
	}
	g.hudSystem()
	g.advanceTweens(float32(dt))

	return nil
}

// togglePause flips the pause flag and the overlay text.
func (g *Game) togglePause() {
	session := Session.Get(g.session)
	session.Paused = !session.Paused
	g.nodes.pausedText.Visible = session.Paused
}

// onInteraction handles interaction events from the willow ECS bridge.
func (g *Game) onInteraction(w donburi.World, e willow.InteractionEvent) {
	if e.Type == willow.EventClick {
		g.togglePause()
	}
}

// onPickup resolves a single pickup: bump score and speed, then spawn a
// replacement stick at a random spot inside the playfield.
func (g *Game) onPickup(w donburi.World, e PickupEvent) {
	session := Session.Get(g.session)
	session.Score++
	session.Speed += g.cfg.Player.SpeedPerStick

	g.spawnStick(g.randomStickPos(), true)
}

// spawnStick creates a stick entity with its sprite node. When pop is true
// the node scales in from nothing.
func (g *Game) spawnStick(pos dmath.Vec2, pop bool) {
	node := g.newStickNode(pos.X, pos.Y)

	entity := g.world.Create(Stick, Position, Sprite)
	entry := g.world.Entry(entity)
	Position.SetValue(entry, pos)
	Stick.SetValue(entry, StickData{Radius: g.cfg.Sticks.CollisionRadius})
	Sprite.SetValue(entry, SpriteData{Node: node})

	if pop {
		scale := g.cfg.Sticks.Scale
		node.SetScale(0, 0)
		g.tweens = append(g.tweens, willow.TweenScale(node, scale, scale, stickPopSeconds, ease.OutBack))
	}
}

// randomStickPos picks a uniformly random position inside the playfield,
// inset from each edge so the stick never straddles a boundary.
func (g *Game) randomStickPos() dmath.Vec2 {
	field := g.playfield()
	inset := g.cfg.Sticks.SpawnInset
	return dmath.Vec2{
		X: field.X + inset + g.rng.Float64()*(field.Width-2*inset),
		Y: field.Y + inset + g.rng.Float64()*(field.Height-2*inset),
	}
}

// advanceTweens steps all live tweens and drops finished ones.
func (g *Game) advanceTweens(dt float32) {
	live := g.tweens[:0]
	for _, tw := range g.tweens {
		tw.Update(dt)
		if !tw.Done {
			live = append(live, tw)
		}
	}
	g.tweens = live
}
