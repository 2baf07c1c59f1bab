package main

import (
	"flag"
	"os"

	sculptor "github.com/DavidHavoc/3D-pixel-shape-Sculptor"
)

func main() {
	configPath := flag.String("config", sculptor.DefaultConfigPath, "path to the TOML config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := sculptor.NewDefaultLogger("sculptor", *debug)

	cfg, err := sculptor.LoadConfig(*configPath)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
	if cfg.Debug {
		logger.SetDebug(true)
	}

	app := sculptor.NewApp()
	app.AddResources(logger)
	app.UseModules(
		sculptor.NewPlatformWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title),
		sculptor.TimeModule{},
		sculptor.InputModule{},
		sculptor.AssetServerModule{},
		sculptor.UiModule{},
		sculptor.SceneModule{
			Kind: cfg.ShapeKindValue(),
			Dims: sculptor.Dimensions{
				Width:  cfg.Shape.Width,
				Depth:  cfg.Shape.Depth,
				Height: cfg.Shape.Height,
			},
		},
		sculptor.OrbitCameraModule{Config: &cfg.Camera},
		sculptor.RendererModule{},
	)

	logger.Infof("starting %s (%dx%d)", cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	app.Run()
}
