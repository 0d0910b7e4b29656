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

	tea "github.com/charmbracelet/bubbletea"

	"showgrip/internal/catalog"
	"showgrip/internal/config"
	"showgrip/internal/eventbus"
	"showgrip/internal/ui"
)

func main() {
	// Parse command line arguments
	var catalogPath string
	flag.StringVar(&catalogPath, "catalog", "", "Path to the master catalog CSV")
	flag.StringVar(&catalogPath, "c", "", "Path to the master catalog CSV (shorthand)")
	flag.Parse()

	// If no path specified, check for remaining args
	if catalogPath == "" && flag.NArg() > 0 {
		catalogPath = flag.Arg(0)
	}

	// Set up logging
	logFile, err := os.OpenFile("showgrip.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigService()
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}

	// The flag beats the configured path; remember it for next time
	if catalogPath != "" {
		abs, err := filepath.Abs(catalogPath)
		if err == nil {
			catalogPath = abs
		}
		cfg.CatalogPath = catalogPath
		if err := configSvc.Save(cfg); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
	}

	// Loader subscribes to load requests on the bus
	_ = catalog.NewLoaderService(ctx, bus)

	// Create UI model
	log.Printf("Creating UI model...")
	uiModel := ui.NewModel(bus, cfg)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	uiModel.SetProgram(p)

	// Forward catalog lifecycle events from the bus into the UI loop
	eventChan := make(chan eventbus.DomainEvent, 100)
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventCatalogLoadStarted, forwardEvent)
	bus.Subscribe(eventbus.EventCatalogLoaded, forwardEvent)
	bus.Subscribe(eventbus.EventCatalogLoadFailed, forwardEvent)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			}
		}
	}()

	// Kick off the initial load
	bus.Publish(eventbus.CatalogLoadRequestedEvent{Path: cfg.CatalogPath})

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// Cleanup. The channel is left open; the bus dispatcher may still
	// be forwarding a late event into it.
	cancel()
}
