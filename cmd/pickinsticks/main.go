// pickinsticks is a 2D arcade collection game: run around a grass field,
// pick up sticks, and watch your rank climb.
//
// Controls:
//
//	WASD/Arrows - Move
//	P or click  - Pause
//
// Flags:
//
//	--config <path>  - Custom game config YAML
//	--seed <value>   - RNG seed for reproducible stick placement (0 = random)
//	--fullscreen     - Start in fullscreen
//	--show-fps       - Show the FPS overlay
//	--debug          - Verbose logging and scene debug checks
package main

import (
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/willow"
	"github.com/spf13/cobra"

	"github.com/phanxgames/pickinsticks/internal/assets"
	"github.com/phanxgames/pickinsticks/internal/config"
	"github.com/phanxgames/pickinsticks/internal/game"
)

var (
	flagConfig     string
	flagSeed       uint64
	flagFullscreen bool
	flagShowFPS    bool
	flagDebug      bool
)

var rootCmd = &cobra.Command{
	Use:           "pickinsticks",
	Short:         "Pickin' Sticks - a tiny arcade collection game",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen")
	rootCmd.Flags().BoolVar(&flagShowFPS, "show-fps", false, "Show the FPS overlay")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging and scene checks")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger().Error("exiting", "error", err)
		os.Exit(1)
	}
}

func logger() *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pickinsticks",
	})
	if flagDebug {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

func run(cmd *cobra.Command, args []string) error {
	l := logger()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	l.Debug("config loaded", "window", cfg.Window, "ranks", len(cfg.Ranks))

	lib, err := assets.Load()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = rand.Uint64()
	}

	g, err := game.New(cfg, lib, seed)
	if err != nil {
		return err
	}

	scene := g.Scene()
	scene.SetUpdateFunc(g.Update)
	if flagDebug {
		scene.SetDebugMode(true)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	if flagFullscreen {
		ebiten.SetFullscreen(true)
	}

	l.Info("starting", "title", cfg.Window.Title, "seed", seed)
	if err := willow.Run(scene, willow.RunConfig{
		Title:   cfg.Window.Title,
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		ShowFPS: flagShowFPS,
	}); err != nil {
		return err
	}
	l.Info("goodbye")
	return nil
}
