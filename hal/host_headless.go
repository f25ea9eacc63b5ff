package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Config

	Hz int
	// Frames stops the run after N frames (0 = run until ctx is done). The
	// frame drawn during setup counts as the first one.
	Frames uint64

	// Snapshot, if set, is a PNG path the first surface is written to on exit.
	Snapshot string
}

// RunHeadless runs the frame loop on a ticker without opening a window.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, setup func(Host) error) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := newHost(cfg.Config)
	if setup != nil {
		if err := setup(h); err != nil {
			return err
		}
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("hal: invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var err error
	if cfg.Frames != 1 {
		var ticks uint64
		if cfg.Frames > 1 {
			ticks = cfg.Frames - 1
		}
		err = runTicks(ctx, h, t.C, ticks)
	}
	if cfg.Snapshot != "" {
		serr := writeSnapshot(cfg.Snapshot, h.display.snapshot())
		switch {
		case serr == nil:
			h.logger.WriteLineString(fmt.Sprintf("hal: snapshot written to %s after %d frames", cfg.Snapshot, h.frames.frames()+1))
		case err == nil:
			err = serr
		}
	}
	return err
}

func runTicks(ctx context.Context, h *hostHAL, ticks <-chan time.Time, limit uint64) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticks:
			h.frames.run()
			if limit > 0 && h.frames.frames() >= limit {
				return nil
			}
		}
	}
}
