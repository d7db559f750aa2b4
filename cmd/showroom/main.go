// Command showroom opens a window onto a configured first-person product showroom.
//
// Usage:
//
//	showroom -config showroom.yaml -profile
//
// Click to look around, WASD or arrows to move, Space to jump, E to inspect a product and
// Escape to close the panel or release the mouse. Edits to the engine section of the config
// file (tick rate, profiling) apply while running; YAML and TOML files are accepted.
package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/Carmen-Shannon/oxy-showroom/engine"
	"github.com/Carmen-Shannon/oxy-showroom/engine/config"
	"github.com/Carmen-Shannon/oxy-showroom/engine/game_object"
	"github.com/Carmen-Shannon/oxy-showroom/engine/loader"
	"github.com/Carmen-Shannon/oxy-showroom/engine/showroom"
	"github.com/Carmen-Shannon/oxy-showroom/engine/window"
)

// logPresenter shows product details and prompts on the log until a UI layer exists.
type logPresenter struct{}

var (
	_ game_object.InfoPresenter = logPresenter{}
	_ showroom.Prompter         = logPresenter{}
)

func (logPresenter) ShowInfo(detail game_object.Detail) {
	log.Printf("[Info] %s: %s %s", detail.Title, detail.Content, detail.ImageURL)
}

func (logPresenter) HideInfo() {
	log.Printf("[Info] closed")
}

func (logPresenter) ShowPrompt(message string) {
	log.Printf("[Prompt] %s", message)
}

func (logPresenter) HidePrompt() {}

func main() {
	configPath := flag.String("config", "", "path to a showroom .yaml or .toml file; built-in defaults when empty")
	profile := flag.Bool("profile", false, "log tick rate and showroom stats every second")
	tickRate := flag.Int("tick", 0, "simulation ticks per second; overrides the config when positive")
	width := flag.Int("width", 1280, "window width in pixels")
	height := flag.Int("height", 720, "window height in pixels")
	noRawMotion := flag.Bool("no-raw-motion", false, "use accelerated mouse motion while looking around")
	flag.Parse()

	cfg := config.Default()
	assetDir := "."
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("[Showroom] %v", err)
		}
		cfg = loaded
		assetDir = filepath.Dir(*configPath)
	}
	if *tickRate > 0 {
		cfg.Engine.TickRate = *tickRate
	}

	win := window.NewWindow(
		window.WithTitle("Showroom"),
		window.WithSize(*width, *height),
		window.WithMinSize(640, 360),
		window.WithRawMotion(!*noRawMotion),
	)

	models := loader.NewLoader(
		loader.WithBaseDir(assetDir),
		loader.WithWorkers(cfg.Engine.Workers),
	)

	room := showroom.NewShowroom(cfg,
		showroom.WithLoader(models),
		showroom.WithPresenter(logPresenter{}),
		showroom.WithCapture(win.Capture()),
		showroom.WithAspect(float32(win.Width())/float32(win.Height())),
	)

	win.SetKeyDownCallback(room.Input().KeyDown)
	win.SetKeyUpCallback(room.Input().KeyUp)
	win.SetMouseMotionCallback(room.View().OnPointerMotion)
	win.SetClickCallback(func(_, _ int32) { room.OnClick() })
	win.SetResizeCallback(room.OnResize)
	win.SetFocusCallback(func(focused bool) {
		if !focused {
			room.Input().Reset()
			room.View().ReleaseCapture()
		}
	})

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithTickRate(float64(cfg.Engine.TickRate)),
		engine.WithProfiling(*profile || cfg.Engine.Profile),
		engine.WithProfilerStats(func() string { return room.Stats().String() }),
		engine.WithTickCallback(room.Frame),
	)
	eng.SetQuitCallback(func() {
		room.Close()
		models.Close()
		if err := win.Close(); err != nil {
			log.Printf("[Showroom] failed to close window: %v", err)
		}
	})

	if *configPath != "" {
		watcher, err := config.Watch(*configPath, func(updated *config.Config) {
			if *tickRate <= 0 {
				eng.SetTickRate(float64(updated.Engine.TickRate))
			}
			if updated.Engine.Profile || *profile {
				eng.EnableProfiler()
			} else {
				eng.DisableProfiler()
			}
		})
		if err != nil {
			log.Printf("[Showroom] live reload disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	room.Start()
	eng.Run()
}
