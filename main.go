package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"spincube/app"
	"spincube/hal"
	"spincube/internal/buildinfo"
)

func main() {
	var cfg hal.HeadlessConfig
	var headless bool
	var appCfg app.Config
	flag.IntVar(&cfg.Width, "width", hal.DefaultWidth, "Viewport width in pixels.")
	flag.IntVar(&cfg.Height, "height", hal.DefaultHeight, "Viewport height in pixels.")
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Frame rate in headless mode.")
	flag.Uint64Var(&cfg.Frames, "frames", 0, "Stop after N frames in headless mode, counting the setup frame (0 = run forever).")
	flag.StringVar(&cfg.Snapshot, "snapshot", "", "Write the last headless frame to this PNG file.")
	flag.BoolVar(&appCfg.HUD, "hud", false, "Draw the frame count and cube rotation over the scene.")
	flag.BoolVar(&appCfg.Wireframe, "wireframe", false, "Draw cube edges instead of filled faces.")
	flag.Parse()

	setup := func(h hal.Host) error {
		h.Logger().WriteLineString("spincube " + buildinfo.String())
		d, err := app.Setup(h, appCfg)
		if err != nil {
			return err
		}
		d.Start()
		return nil
	}

	if headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, cfg, setup); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(cfg.Config, setup); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
