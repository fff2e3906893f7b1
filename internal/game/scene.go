package game

import (
	"github.com/phanxgames/willow"

	"github.com/phanxgames/pickinsticks/internal/assets"
)

// Atlas page indices registered with the scene. Each texture gets its own
// page; regions below index into them.
const (
	pageGrass = iota
	pageCharacter
	pageStick
)

// hudPadding is the horizontal inset of the HUD text from the window edges.
const hudPadding = 10.0

// sceneNodes holds the long-lived nodes the systems mutate each frame.
// Stick nodes are transient and tracked through SpriteData instead.
type sceneNodes struct {
	playfield  *willow.Node // clickable surface; a click toggles pause
	player     *willow.Node
	scoreText  *willow.Node
	speedText  *willow.Node
	rankText   *willow.Node
	pausedText *willow.Node
}

// buildScene constructs the static scene graph: tiled grass background,
// player sprite, HUD bars, and text nodes. Sticks are spawned separately.
func (g *Game) buildScene(lib *assets.Library) {
	w := float64(g.cfg.Window.Width)
	h := float64(g.cfg.Window.Height)
	barH := g.cfg.HUD.BarHeight
	root := g.scene.Root()

	g.scene.RegisterPage(pageGrass, lib.Grass)
	g.scene.RegisterPage(pageCharacter, lib.Character)
	g.scene.RegisterPage(pageStick, lib.Stick)

	for i := range g.frames {
		g.frames[i] = willow.TextureRegion{
			Page:      pageCharacter,
			X:         uint16(i * assets.CharacterFrameSize),
			Width:     assets.CharacterFrameSize,
			Height:    assets.CharacterFrameSize,
			OriginalW: assets.CharacterFrameSize,
			OriginalH: assets.CharacterFrameSize,
		}
	}
	stickW := uint16(lib.Stick.Bounds().Dx())
	stickH := uint16(lib.Stick.Bounds().Dy())
	g.stickRegion = willow.TextureRegion{
		Page:      pageStick,
		Width:     stickW,
		Height:    stickH,
		OriginalW: stickW,
		OriginalH: stickH,
	}

	// Grass background, tiled across the whole window. The tiles never
	// change after setup, so the container is render-cached.
	background := willow.NewContainer("background")
	tileW := float64(lib.Grass.Bounds().Dx())
	tileH := float64(lib.Grass.Bounds().Dy())
	grassRegion := willow.TextureRegion{
		Page:      pageGrass,
		Width:     uint16(tileW),
		Height:    uint16(tileH),
		OriginalW: uint16(tileW),
		OriginalH: uint16(tileH),
	}
	for y := 0.0; y < h; y += tileH {
		for x := 0.0; x < w; x += tileW {
			tile := willow.NewSprite("grass", grassRegion)
			tile.X = x
			tile.Y = y
			background.AddChild(tile)
		}
	}
	background.SetCacheAsTexture(true)
	root.AddChild(background)

	// Playfield surface: catches clicks anywhere to toggle pause. The ECS
	// bridge only forwards events from nodes with an EntityID, assigned in
	// New once the session entity exists.
	playfield := willow.NewContainer("playfield")
	playfield.Interactable = true
	playfield.HitShape = willow.HitRect{Width: w, Height: h}
	playfield.ZIndex = 1
	root.AddChild(playfield)
	g.nodes.playfield = playfield

	// Player sprite, pivoted at its center so the left-facing flip mirrors
	// in place.
	player := willow.NewSprite("player", g.frames[animFirstFrame])
	player.PivotX = assets.CharacterFrameSize / 2
	player.PivotY = assets.CharacterFrameSize / 2
	player.ScaleX = g.cfg.Player.Scale
	player.ScaleY = g.cfg.Player.Scale
	player.ZIndex = 2
	playfield.AddChild(player)
	g.nodes.player = player

	// HUD: black bars top and bottom, text laid out across the top bar.
	hud := willow.NewContainer("hud")
	hud.ZIndex = 10
	root.AddChild(hud)

	topBar := willow.NewSprite("hud-top", willow.TextureRegion{})
	topBar.Color = willow.Color{A: 1}
	topBar.ScaleX = w
	topBar.ScaleY = barH
	hud.AddChild(topBar)

	bottomBar := willow.NewSprite("hud-bottom", willow.TextureRegion{})
	bottomBar.Color = willow.Color{A: 1}
	bottomBar.ScaleX = w
	bottomBar.ScaleY = barH
	bottomBar.Y = h - barH
	hud.AddChild(bottomBar)

	_, textH := g.font.MeasureString("Score: 000")
	textY := (barH - textH) / 2

	scoreText := willow.NewText("score", "Score: 000", g.font)
	scoreText.X = hudPadding
	scoreText.Y = textY
	hud.AddChild(scoreText)
	g.nodes.scoreText = scoreText

	speedText := willow.NewText("speed", "Current Speed: 000.00", g.font)
	speedText.TextBlock.Align = willow.TextAlignCenter
	speedText.TextBlock.WrapWidth = w
	speedText.Y = textY
	hud.AddChild(speedText)
	g.nodes.speedText = speedText

	rankText := willow.NewText("rank", "Rank: Weak", g.font)
	rankText.TextBlock.Align = willow.TextAlignRight
	rankText.TextBlock.WrapWidth = w - hudPadding
	rankText.Y = textY
	hud.AddChild(rankText)
	g.nodes.rankText = rankText

	pausedText := willow.NewText("paused", "Paused", g.font)
	pausedText.TextBlock.Align = willow.TextAlignCenter
	pausedText.TextBlock.WrapWidth = w
	pausedText.Y = h / 2
	pausedText.Visible = false
	hud.AddChild(pausedText)
	g.nodes.pausedText = pausedText
}

// newStickNode creates a stick sprite at the given position.
func (g *Game) newStickNode(x, y float64) *willow.Node {
	n := willow.NewSprite("stick", g.stickRegion)
	n.PivotX = float64(g.stickRegion.Width) / 2
	n.PivotY = float64(g.stickRegion.Height) / 2
	n.ScaleX = g.cfg.Sticks.Scale
	n.ScaleY = g.cfg.Sticks.Scale
	n.X = x
	n.Y = y
	n.ZIndex = 1
	g.nodes.playfield.AddChild(n)
	return n
}

// playfield returns the playable area: the window minus the HUD bars.
func (g *Game) playfield() willow.Rect {
	return willow.Rect{
		X:      0,
		Y:      g.cfg.HUD.BarHeight,
		Width:  float64(g.cfg.Window.Width),
		Height: float64(g.cfg.Window.Height) - 2*g.cfg.HUD.BarHeight,
	}
}
