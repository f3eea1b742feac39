//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"ndsgui/app"
	"ndsgui/hal"
	"ndsgui/lvds"
)

func main() {
	var (
		configPath  string
		headless    bool
		hz          int
		ticks       uint64
		screenshot  string
		scale       int
		orientation string
	)
	flag.StringVar(&configPath, "config", "", "TOML host config file.")
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&screenshot, "screenshot", "", "Write both screens to this PNG when a headless run ends.")
	flag.IntVar(&scale, "scale", 2, "Window scale factor.")
	flag.StringVar(&orientation, "orientation", lvds.Horizontal.String(), "Starting orientation: horizontal, rotated-left or rotated-right.")
	flag.Parse()

	cfg := hal.DefaultHostConfig()
	if configPath != "" {
		var err error
		if cfg, err = hal.LoadHostConfig(configPath); err != nil {
			fatal(err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "headless":
			cfg.Headless.Enabled = headless
		case "hz":
			cfg.Headless.Hz = hz
		case "ticks":
			cfg.Headless.Ticks = ticks
		case "screenshot":
			cfg.Headless.Screenshot = screenshot
		case "scale":
			cfg.Scale = scale
		}
	})

	o, err := lvds.ParseOrientation(orientation)
	if err != nil {
		fatal(err)
	}
	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, app.Config{Orientation: o})
	}

	if cfg.Headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, cfg, newApp)
	} else {
		err = hal.RunWindow(cfg, newApp)
	}
	if err != nil && !errors.Is(err, app.ErrQuit) && !errors.Is(err, context.Canceled) {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
