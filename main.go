package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"usertable/internal/config"
	"usertable/internal/eventbus"
	"usertable/internal/ui"
	"usertable/internal/userapi"
)

func main() {
	// Parse command line arguments
	var configPath, apiURL string
	flag.StringVar(&configPath, "config", "", "Path to the config file (.toml, .yaml or .yml)")
	flag.StringVar(&configPath, "c", "", "Path to the config file (shorthand)")
	flag.StringVar(&apiURL, "url", "", "URL of the users endpoint, overrides the config")
	flag.Parse()

	if configPath == "" {
		configPath = config.DefaultPath()
	}

	// Create event bus
	bus := eventbus.New()

	// Load configuration with event bus support
	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error, using defaults: %v\n", err)
		cfg = config.DefaultConfig()
	}
	configuredURL := cfg.APIURL
	if apiURL != "" {
		cfg.APIURL = apiURL
	}

	// Set up logging
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	log.Printf("Using config %s, users from %s", configSvc.Path(), cfg.APIURL)

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

	// Save the active filters when the UI asks for it
	saved := make(chan struct{}, 1)
	bus.Subscribe(eventbus.EventFiltersChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.FiltersChangedEvent); ok {
			out := *cfg
			out.APIURL = configuredURL // -url is not persisted
			out.UISettings.DefaultFilters = event.Filters
			if err := configSvc.Save(&out); err != nil {
				log.Printf("Failed to save config: %v", err)
			} else {
				log.Printf("Config saved to %s", configSvc.Path())
			}
			select {
			case saved <- struct{}{}:
			default:
			}
		}
	})

	// Initialize services
	timeout := time.Duration(cfg.Timeout)
	client := userapi.NewClient(cfg.APIURL, timeout)
	_ = userapi.NewLoader(ctx, bus, client, timeout) // Loader subscribes to load requests automatically

	// Create UI model
	uiModel := ui.NewModel(bus, cfg)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward load events to the UI
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	bus.Subscribe(eventbus.EventLoadStarted, forward)
	bus.Subscribe(eventbus.EventUsersLoaded, forward)
	bus.Subscribe(eventbus.EventUsersLoadFailed, forward)

	// Quit the program when a signal arrives
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	// Start initial load
	bus.Publish(eventbus.LoadRequestedEvent{Reason: "startup"})

	if os.Getenv("USERTABLE_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	// Run the UI
	log.Printf("Starting UI...")
	final, err := p.Run()
	if err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		bus.Close()
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// The bus drops queued events on close, so wait for the autosave
	if m, ok := final.(*ui.Model); ok && m.SaveRequested() {
		select {
		case <-saved:
		case <-time.After(2 * time.Second):
			log.Printf("Timed out waiting for config save")
		}
	}

	// Cleanup
	cancel()
	bus.Close()
}
