//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"os"
	"time"
)

// RunHeadless runs the app without opening a window, feeding scripted input.
//
// newApp receives the HAL and returns the per-vblank step function.
func RunHeadless(ctx context.Context, cfg HostConfig, newApp func(HAL) func() error) error {
	hc := cfg.Headless
	if hc.Hz <= 0 {
		hc.Hz = 60
	}

	sc, err := compileScript(hc.Script)
	if err != nil {
		return err
	}

	h, err := newHostHAL(cfg.Engine, os.Stdout)
	if err != nil {
		return err
	}
	step := newApp(h)

	d := time.Second / time.Duration(hc.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", hc.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	runErr := runTicks(ctx, h, sc, step, hc.Ticks, t.C)
	if hc.Screenshot != "" {
		if err := h.screenshot(hc.Screenshot); err != nil {
			return err
		}
		h.logger.WriteLineString("hal: screenshot written to " + hc.Screenshot)
	}
	return runErr
}

// runTicks steps once per value received from vblank, applying the script first.
func runTicks(ctx context.Context, h *hostHAL, sc script, step func() error, limit uint64, vblank <-chan time.Time) error {
	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-vblank:
			h.input.set(sc.at(tick))
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if limit > 0 && tick >= limit {
				return nil
			}
		}
	}
}
