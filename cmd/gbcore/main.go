// Command gbcore loads a DMG ROM image and runs it against the SM83
// interpreter core, either headless, through the ebiten display window, or
// single-stepped in the bubbletea inspector.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gbcore/cartridge"
	"gbcore/config"
	"gbcore/cpu"
	"gbcore/debugger"
	"gbcore/display"
	"gbcore/mem"
	"gbcore/ppu"
	"gbcore/rom"
)

// hostFrameInterval throttles the close-poll/present loop to roughly the
// DMG's 59.7 Hz frame rate instead of busy-spinning a core.
const hostFrameInterval = 16 * time.Millisecond

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	image, err := os.ReadFile(cfg.ROMPath)
	if err != nil {
		logger.Error("failed to read ROM", "path", cfg.ROMPath, "error", err)
		return 1
	}

	header := rom.ParseHeader(image)
	logger.Info("loaded ROM", "title", header.Title, "ram_size", header.RAMSize())

	cart := cartridge.New(image, header)
	bus := mem.NewMap(cart)
	bridge := ppu.New()
	machine := cpu.NewMachine(bus, bridge)

	if cfg.Debug {
		if err := debugger.Debug(machine); err != nil {
			logger.Error("inspector exited with error", "error", err)
			return 1
		}
		return 0
	}

	if cfg.Headless {
		if err := machine.Run(); err != nil {
			logger.Error("core halted", "error", err)
			return 1
		}
		return 0
	}

	return runWithDisplay(machine, bridge, logger)
}

// runWithDisplay drives the CPU on its own goroutine while the ebiten
// presenter owns the main goroutine, as its window loop requires.
func runWithDisplay(machine *cpu.Machine, bridge *ppu.PPU, logger *slog.Logger) int {
	ebitenPresenter := display.NewEbitenPresenter(3)
	var presenter display.Presenter = ebitenPresenter

	coreErrCh := make(chan error, 1)
	go func() {
		coreErrCh <- machine.Run()
	}()

	go pollAndPresent(presenter, bridge, logger)

	if err := ebitenPresenter.Run("gbcore"); err != nil {
		logger.Error("display exited with error", "error", err)
		return 1
	}

	if err := <-coreErrCh; err != nil {
		logger.Error("core halted", "error", err)
		return 1
	}
	return 0
}

// pollAndPresent hands each VBlank's framebuffer to the presenter and
// forwards the window's close signal to the PPU bridge, ticking at roughly
// the host display's frame rate rather than spinning.
func pollAndPresent(presenter display.Presenter, bridge *ppu.PPU, logger *slog.Logger) {
	ticker := time.NewTicker(hostFrameInterval)
	defer ticker.Stop()
	for range ticker.C {
		if presenter.CloseRequested() {
			bridge.RequestExit()
			return
		}
		if frame, ready := bridge.ConsumeFrame(); ready {
			if err := presenter.Present(frame); err != nil {
				logger.Error("present failed", "error", err)
			}
		}
	}
}
