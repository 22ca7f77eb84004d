// Package main implements the gones NES emulator executable.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/claude/nescore/internal/app"
	"github.com/claude/nescore/internal/version"
)

func main() {
	var (
		romFile    = flag.String("rom", "", "Path to NES ROM file (optional for GUI mode)")
		configFile = flag.String("config", "", "Path to configuration file")
		debug      = flag.Bool("debug", false, "Enable debug mode")
		nogui      = flag.Bool("nogui", false, "Run without GUI (headless mode)")
		help       = flag.Bool("help", false, "Show help message")
		showVer    = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *help {
		printUsage()
		os.Exit(0)
	}

	if *showVer {
		version.PrintBuildInfo()
		os.Exit(0)
	}

	setupGracefulShutdown()

	fmt.Println("gones - Go NES Emulator starting...")

	configPath := *configFile
	if configPath == "" {
		configPath = app.GetDefaultConfigPath()
	}

	application, err := app.NewApplicationWithMode(configPath, *nogui)
	if err != nil {
		log.Fatalf("failed to create application: %v", err)
	}

	if *nogui {
		config := application.GetConfig()
		config.Video.Backend = "headless"
		fmt.Println("headless mode requested")
	}
	defer func() {
		if err := application.Cleanup(); err != nil {
			log.Printf("application cleanup error: %v", err)
		}
	}()

	if *debug {
		config := application.GetConfig()
		config.UpdateDebug(true, true, true)
		fmt.Println("debug mode enabled")
	}

	if *romFile != "" {
		fmt.Printf("loading ROM: %s\n", *romFile)
		if err := application.LoadROM(*romFile); err != nil {
			log.Fatalf("failed to load ROM: %v", err)
		}
		fmt.Println("ROM loaded successfully")
	}

	if *nogui {
		fmt.Println("running in headless mode...")
		if *romFile == "" {
			log.Fatal("ROM file required for headless mode")
		}
		runHeadlessMode(application)
	} else {
		fmt.Println("starting GUI mode...")
		if err := runGUIMode(application); err != nil {
			log.Fatalf("GUI mode failed: %v", err)
		}
	}

	fmt.Println("emulator shutting down...")
}

// runGUIMode runs the full GUI application.
func runGUIMode(application *app.Application) error {
	fmt.Println("initializing GUI application...")

	config := application.GetConfig()
	windowWidth, windowHeight := config.GetWindowResolution()
	fmt.Printf("   Window: %dx%d (Scale: %dx)\n", windowWidth, windowHeight, config.Window.Scale)
	fmt.Printf("   Audio: %s (%d Hz, %.0f%% volume)\n",
		enabledString(config.Audio.Enabled),
		config.Audio.SampleRate,
		config.Audio.Volume*100)
	fmt.Printf("   Video: %s, %s, VSync: %s\n",
		config.Video.Filter,
		config.Video.AspectRatio,
		enabledString(config.Video.VSync))

	fmt.Println("starting main application loop...")
	if err := application.Run(); err != nil {
		return fmt.Errorf("application run failed: %v", err)
	}

	fmt.Printf("session statistics:\n")
	fmt.Printf("   Frames rendered: %d\n", application.GetFrameCount())
	fmt.Printf("   Session time: %v\n", application.GetUptime())
	fmt.Printf("   Average FPS: %.1f\n", application.GetFPS())

	return nil
}

// runHeadlessMode runs the emulator without a window, for testing and automation.
// It drives the console directly through one frame at a time and lets the
// headless graphics backend dump milestone frames as PPM images.
func runHeadlessMode(application *app.Application) {
	const targetFrames = 120

	fmt.Printf("running %d frames headless...\n", targetFrames)

	console := application.GetConsole()
	if console == nil {
		fmt.Println("console not initialized")
		return
	}

	backend := application.GetGraphicsBackend()
	window, err := backend.CreateWindow("gones headless", 256, 240)
	if err != nil {
		log.Fatalf("failed to create headless window: %v", err)
	}
	defer window.Cleanup()

	for frame := 0; frame < targetFrames; frame++ {
		console.Run(1)

		if err := window.RenderFrame(console.FrameBuffer()); err != nil {
			log.Printf("render frame %d failed: %v", frame+1, err)
		}

		if frame%30 == 29 {
			fmt.Printf("   %d/%d frames complete\n", frame+1, targetFrames)
		}
	}

	fmt.Println("headless run complete")
	fmt.Println("generated files:")
	fmt.Println("   - frame_031.ppm")
	fmt.Println("   - frame_061.ppm")
	fmt.Println("   - frame_120.ppm")
	fmt.Printf("total cycles: %d, frames: %d\n", console.CycleCount(), console.FrameCount())
}

// setupGracefulShutdown sets up signal handling for graceful shutdown.
func setupGracefulShutdown() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Println("\ninterrupt received, shutting down gracefully...")
		os.Exit(0)
	}()
}

// enabledString returns "enabled" or "disabled" based on boolean value.
func enabledString(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

func printUsage() {
	fmt.Println("gones - Go NES Emulator")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  An NES (Nintendo Entertainment System) emulator written in Go.")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  gones [options]                    # Start GUI mode without ROM")
	fmt.Println("  gones -rom <file> [options]        # Start with ROM loaded")
	fmt.Println("  gones -nogui -rom <file> [options] # Run headless mode")
	fmt.Println()
	fmt.Println("OPTIONS:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  gones                              # Start GUI with no ROM loaded")
	fmt.Println("  gones -rom game.nes                # Start with ROM loaded")
	fmt.Println("  gones -rom game.nes -debug         # Start with debug info enabled")
	fmt.Println("  gones -config custom.json          # Use custom configuration")
	fmt.Println("  gones -nogui -rom test.nes         # Run headless for testing")
	fmt.Println()
	fmt.Println("CONTROLS (Default):")
	fmt.Println("  Player 1:")
	fmt.Println("    Arrow Keys / WASD - D-Pad")
	fmt.Println("    J                 - A Button")
	fmt.Println("    K                 - B Button")
	fmt.Println("    Enter             - Start")
	fmt.Println("    Space             - Select")
	fmt.Println()
	fmt.Println("  Special Keys:")
	fmt.Println("    Escape (2x)       - Quit (double-tap within 3 seconds)")
	fmt.Println()
	fmt.Println("CONFIGURATION:")
	fmt.Println("  Config file: ./config/gones.json")
	fmt.Println("  ROMs:        ./roms/")
	fmt.Println()
	fmt.Println("SUPPORTED FORMATS:")
	fmt.Println("  - iNES (.nes)")
	fmt.Println("  - NES 2.0 (read as iNES; extended header fields ignored)")
	fmt.Println("  - NROM (Mapper 0)")
	fmt.Println()
	fmt.Println("For more information, visit the project documentation.")
}
