// Package config provides YAML-based game tuning for Pickin' Sticks.
package config

import "fmt"

// Config contains all tuning parameters for the game.
type Config struct {
	Window Window `yaml:"window"`
	HUD    HUD    `yaml:"hud"`
	Player Player `yaml:"player"`
	Sticks Sticks `yaml:"sticks"`
	Ranks  []Rank `yaml:"ranks"`
}

// Window defines the window size and title.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// HUD defines the score bar layout.
type HUD struct {
	BarHeight float64 `yaml:"bar_height"`
	FontSize  float64 `yaml:"font_size"`
}

// Player defines movement and animation parameters.
type Player struct {
	StartSpeed    float64 `yaml:"start_speed"`    // units per second
	SpeedPerStick float64 `yaml:"speed_per_stick"`
	FrameSeconds  float64 `yaml:"frame_seconds"` // animation frame interval
	Scale         float64 `yaml:"scale"`
}

// Sticks defines collectable parameters.
type Sticks struct {
	CollisionRadius float64 `yaml:"collision_radius"`
	SpawnInset      float64 `yaml:"spawn_inset"` // margin from playfield edges
	Scale           float64 `yaml:"scale"`
}

// Rank maps a minimum score to a display label.
type Rank struct {
	MinScore int    `yaml:"min_score"`
	Label    string `yaml:"label"`
}

// Validate reports the first problem that would make the config unusable.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d is not positive", c.Window.Width, c.Window.Height)
	}
	if c.HUD.BarHeight < 0 || c.HUD.BarHeight*2 >= float64(c.Window.Height) {
		return fmt.Errorf("hud bar height %.0f leaves no playfield in a %d-tall window", c.HUD.BarHeight, c.Window.Height)
	}
	if c.HUD.FontSize <= 0 {
		return fmt.Errorf("hud font size %.1f is not positive", c.HUD.FontSize)
	}
	if c.Player.StartSpeed <= 0 {
		return fmt.Errorf("player start speed %.1f is not positive", c.Player.StartSpeed)
	}
	if c.Player.SpeedPerStick < 0 {
		return fmt.Errorf("player speed per stick %.1f is negative", c.Player.SpeedPerStick)
	}
	if c.Player.FrameSeconds <= 0 {
		return fmt.Errorf("player frame interval %.3f is not positive", c.Player.FrameSeconds)
	}
	if c.Player.Scale <= 0 {
		return fmt.Errorf("player scale %.1f is not positive", c.Player.Scale)
	}
	if c.Sticks.CollisionRadius <= 0 {
		return fmt.Errorf("stick collision radius %.1f is not positive", c.Sticks.CollisionRadius)
	}
	if c.Sticks.SpawnInset < 0 {
		return fmt.Errorf("stick spawn inset %.1f is negative", c.Sticks.SpawnInset)
	}
	if c.Sticks.Scale <= 0 {
		return fmt.Errorf("stick scale %.1f is not positive", c.Sticks.Scale)
	}
	if len(c.Ranks) == 0 {
		return fmt.Errorf("rank table is empty")
	}
	for i, r := range c.Ranks {
		if r.Label == "" {
			return fmt.Errorf("rank %d has an empty label", i)
		}
	}
	return nil
}
