package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mwegrzyn/bincalc/internal/config"
	"github.com/mwegrzyn/bincalc/internal/debug"
	"github.com/mwegrzyn/bincalc/internal/hw/gpio"
	"github.com/mwegrzyn/bincalc/internal/hw/leds"
	"github.com/mwegrzyn/bincalc/internal/logic/display"
	"github.com/mwegrzyn/bincalc/internal/logic/session"
)

func main() {
	cfgPath := flag.String("config", filepath.Join("configs", "default.yaml"), "path to config file")
	driver := flag.String("driver", "", "override gpio driver (ioctl, rpio or mock)")
	flag.Parse()

	if err := run(*cfgPath, *driver); err != nil {
		log.Fatalf("bincalc: %v", err)
	}
}

func run(cfgPath, driverOverride string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if driverOverride != "" {
		cfg.Driver = driverOverride
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("driver override: %w", err)
		}
	}

	debug.Init(cfg.DebugLevel)
	debug.Info("Binary calculator starting (driver: %s, chip: %s)", cfg.Driver, cfg.ChipPath)
	debug.Info("Buttons on pins %v, LEDs on pins %v", cfg.ButtonPins, cfg.LedPins)

	bank, err := gpio.NewBank(cfg)
	if err != nil {
		return fmt.Errorf("init GPIO: %w", err)
	}
	defer func() {
		if err := bank.Close(); err != nil {
			log.Printf("closing GPIO bank failed: %v", err)
		}
	}()

	// A termination signal has to unblock the wait on the button lines.
	go func() {
		<-ctx.Done()
		_ = bank.Close()
	}()

	ledBank := leds.NewBank(bank)
	presenter := display.NewPresenter(ledBank, display.Timings{
		ShineRepeats: cfg.Presentation.ShineRepeats,
		ShineOn:      cfg.ShineOn(),
		ShineOff:     cfg.ShineOff(),
		BitTime:      cfg.BitTime(),
		Gap:          cfg.GapTime(),
	})
	controller := session.NewController(bank, ledBank, presenter)

	if err := controller.Run(ctx); err != nil {
		if ctx.Err() != nil {
			debug.Info("Interrupted, shutting down")
			return nil
		}
		return fmt.Errorf("session loop: %w", err)
	}
	return nil
}
