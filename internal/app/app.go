// Package app implements the main NES emulator application with GUI support.
package app

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/claude/nescore/internal/cartridge"
	"github.com/claude/nescore/internal/console"
	"github.com/claude/nescore/internal/graphics"
)

// Application wires a console.Console to a graphics backend and drives the
// main loop: poll input, advance one frame, render, repeat.
type Application struct {
	console *console.Console

	graphicsBackend graphics.Backend
	window          graphics.Window
	videoProcessor  *graphics.VideoProcessor

	config   *Config
	emulator *Emulator

	running     bool
	paused      bool
	initialized bool
	headless    bool

	frameCount          uint64
	startTime           time.Time
	lastFPSTime         time.Time
	frameCountAtLastFPS uint64
	currentFPS          float64

	romPath   string
	cartridge *cartridge.Cartridge

	lastESCTime time.Time
}

// ApplicationError represents application-specific errors
type ApplicationError struct {
	Component string
	Operation string
	Err       error
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("Application %s error during %s: %v", e.Component, e.Operation, e.Err)
}

// NewApplication creates a new NES emulator application
func NewApplication(configPath string) (*Application, error) {
	return NewApplicationWithMode(configPath, false)
}

// NewApplicationWithMode creates a new NES emulator application with optional headless mode
func NewApplicationWithMode(configPath string, headless bool) (*Application, error) {
	app := &Application{
		config:      NewConfig(),
		headless:    headless,
		startTime:   time.Now(),
		lastFPSTime: time.Now(),
	}

	if configPath != "" {
		if err := app.config.LoadFromFile(configPath); err != nil {
			fmt.Printf("[APP_WARNING] Could not load config from %s, using defaults: %v\n", configPath, err)
		}
	}

	if err := app.initializeComponents(headless); err != nil {
		return nil, &ApplicationError{Component: "initialization", Operation: "component setup", Err: err}
	}

	return app, nil
}

// initializeComponents initializes all application components
func (app *Application) initializeComponents(headless bool) error {
	app.console = console.New()

	if err := app.initializeGraphicsBackend(headless); err != nil {
		return fmt.Errorf("failed to initialize graphics backend: %v", err)
	}

	app.emulator = NewEmulator(app.console, app.config)
	app.initialized = true
	return nil
}

// initializeGraphicsBackend initializes the graphics backend based on configuration
func (app *Application) initializeGraphicsBackend(headless bool) error {
	backendType := graphics.BackendEbitengine
	if headless || app.config.Video.Backend == "headless" {
		backendType = graphics.BackendHeadless
	}

	var err error
	app.graphicsBackend, err = graphics.CreateBackend(backendType)
	if err != nil {
		return fmt.Errorf("failed to create graphics backend: %v", err)
	}

	graphicsConfig := graphics.Config{
		WindowTitle:  "gones - Go NES Emulator",
		WindowWidth:  app.config.Window.Width,
		WindowHeight: app.config.Window.Height,
		Fullscreen:   app.config.Window.Fullscreen,
		VSync:        app.config.Video.VSync,
		Filter:       app.config.Video.Filter,
		AspectRatio:  app.config.Video.AspectRatio,
		Headless:     headless,
		Debug:        app.config.Debug.EnableLogging,
	}

	if err := app.graphicsBackend.Initialize(graphicsConfig); err != nil {
		if backendType == graphics.BackendEbitengine {
			fmt.Printf("[APP_WARNING] Ebitengine backend failed (%v), falling back to headless mode\n", err)
			app.graphicsBackend, err = graphics.CreateBackend(graphics.BackendHeadless)
			if err != nil {
				return fmt.Errorf("failed to create fallback headless backend: %v", err)
			}
			graphicsConfig.Headless = true
			if err := app.graphicsBackend.Initialize(graphicsConfig); err != nil {
				return fmt.Errorf("failed to initialize fallback headless backend: %v", err)
			}
		} else {
			return fmt.Errorf("failed to initialize graphics backend: %v", err)
		}
	}

	if !headless && !app.graphicsBackend.IsHeadless() {
		app.window, err = app.graphicsBackend.CreateWindow(
			graphicsConfig.WindowTitle, graphicsConfig.WindowWidth, graphicsConfig.WindowHeight)
		if err != nil {
			return fmt.Errorf("failed to create window: %v", err)
		}
	}

	app.videoProcessor = graphics.NewVideoProcessor(
		app.config.Video.Brightness, app.config.Video.Contrast, app.config.Video.Saturation)

	return nil
}

// LoadROM loads a ROM file into the emulator
func (app *Application) LoadROM(romPath string) error {
	if !app.initialized {
		return errors.New("application not initialized")
	}

	cart, err := cartridge.FromFile(romPath)
	if err != nil {
		return &ApplicationError{Component: "cartridge", Operation: "load ROM", Err: err}
	}

	app.cartridge = cart
	app.romPath = romPath
	app.console.LoadCartridge(cart)

	if app.window != nil {
		app.window.SetTitle(fmt.Sprintf("gones - %s", filepath.Base(romPath)))
	}

	app.emulator.Start()
	return nil
}

// Run starts the main application loop
func (app *Application) Run() error {
	if !app.initialized {
		return errors.New("application not initialized")
	}

	app.running = true
	app.startTime = time.Now()
	app.lastFPSTime = time.Now()

	if app.graphicsBackend.GetName() == "Ebitengine" && app.window != nil {
		if ebitengineWindow, ok := graphics.AsEbitengineWindow(app.window); ok {
			ebitengineWindow.SetEmulatorUpdateFunc(func() error {
				app.processInput()
				if err := app.updateEmulator(); err != nil {
					return err
				}
				if err := app.render(); err != nil {
					return err
				}
				app.updateFPS()
				if app.window.ShouldClose() {
					app.Stop()
				}
				return nil
			})
			return ebitengineWindow.Run()
		}
	}

	for app.running {
		app.processInput()

		if err := app.updateEmulator(); err != nil && app.config.Debug.EnableLogging {
			fmt.Printf("[APP_DEBUG] Emulator update error: %v\n", err)
		}

		if err := app.render(); err != nil && app.config.Debug.EnableLogging {
			fmt.Printf("[APP_ERROR] Render error: %v\n", err)
		}

		app.updateFPS()

		if app.window != nil && app.window.ShouldClose() {
			app.Stop()
		}

		time.Sleep(16 * time.Millisecond)
	}

	return nil
}

// updateEmulator advances the emulator by one frame unless paused or no ROM
func (app *Application) updateEmulator() error {
	if !app.paused && app.cartridge != nil {
		return app.emulator.Update()
	}
	return nil
}

// processInput polls the window for input events and applies them to the
// console's controller ports.
func (app *Application) processInput() {
	if app.window == nil || app.cartridge == nil {
		return
	}

	events := app.window.PollEvents()
	if len(events) == 0 {
		return
	}

	var c1, c2 [8]bool
	var c1Changed, c2Changed bool

	for _, event := range events {
		switch event.Type {
		case graphics.InputEventTypeQuit:
			app.Stop()
			return

		case graphics.InputEventTypeKey:
			app.handleSpecialInput(event)

		case graphics.InputEventTypeButton:
			if idx, ok := player2ButtonIndex(event.Button); ok {
				c2[idx] = event.Pressed
				c2Changed = true
			} else if idx, ok := player1ButtonIndex(event.Button); ok {
				c1[idx] = event.Pressed
				c1Changed = true
			}
		}
	}

	if c1Changed {
		app.console.SetControllerButtons(1, c1)
	}
	if c2Changed {
		app.console.SetControllerButtons(2, c2)
	}
}

// player1ButtonIndex maps a graphics.Button to its index in the
// A,B,Select,Start,Up,Down,Left,Right button array, for player 1.
func player1ButtonIndex(b graphics.Button) (int, bool) {
	switch b {
	case graphics.ButtonA:
		return 0, true
	case graphics.ButtonB:
		return 1, true
	case graphics.ButtonSelect:
		return 2, true
	case graphics.ButtonStart:
		return 3, true
	case graphics.ButtonUp:
		return 4, true
	case graphics.ButtonDown:
		return 5, true
	case graphics.ButtonLeft:
		return 6, true
	case graphics.ButtonRight:
		return 7, true
	default:
		return 0, false
	}
}

// player2ButtonIndex is the same mapping for player 2's buttons.
func player2ButtonIndex(b graphics.Button) (int, bool) {
	switch b {
	case graphics.Button2A:
		return 0, true
	case graphics.Button2B:
		return 1, true
	case graphics.Button2Select:
		return 2, true
	case graphics.Button2Start:
		return 3, true
	case graphics.Button2Up:
		return 4, true
	case graphics.Button2Down:
		return 5, true
	case graphics.Button2Left:
		return 6, true
	case graphics.Button2Right:
		return 7, true
	default:
		return 0, false
	}
}

// handleSpecialInput handles key combinations outside the controller
// protocol: double-tap Escape within 3 seconds to quit.
func (app *Application) handleSpecialInput(event graphics.InputEvent) {
	if !event.Pressed || event.Key != graphics.KeyEscape {
		return
	}

	now := time.Now()
	if !app.lastESCTime.IsZero() && now.Sub(app.lastESCTime) < 3*time.Second {
		app.Stop()
		return
	}
	app.lastESCTime = now
}

// SetControllerButtons sets all button states at once for the given
// controller (1 or 2).
func (app *Application) SetControllerButtons(controller int, buttons [8]bool) {
	app.console.SetControllerButtons(controller, buttons)
}

// GetConsole returns the console for direct access (useful for testing)
func (app *Application) GetConsole() *console.Console {
	return app.console
}

// GetGraphicsBackend returns the active graphics backend
func (app *Application) GetGraphicsBackend() graphics.Backend {
	return app.graphicsBackend
}

// render renders the current frame
func (app *Application) render() error {
	if app.window == nil {
		return nil
	}

	if app.cartridge != nil {
		frame := app.console.FrameBuffer()
		if app.videoProcessor != nil {
			frame = app.videoProcessor.ProcessFrame(frame)
		}
		if err := app.window.RenderFrame(frame); err != nil {
			return fmt.Errorf("failed to render NES frame: %v", err)
		}
	}

	app.window.SwapBuffers()
	return nil
}

// updateFPS recomputes the rolling FPS counter once per second.
func (app *Application) updateFPS() {
	app.frameCount++
	now := time.Now()

	elapsed := now.Sub(app.lastFPSTime)
	if elapsed < time.Second {
		return
	}

	framesInPeriod := app.frameCount - app.frameCountAtLastFPS
	app.currentFPS = float64(framesInPeriod) / elapsed.Seconds()
	app.lastFPSTime = now
	app.frameCountAtLastFPS = app.frameCount

	if app.config.Debug.EnableLogging {
		log.Printf("[FPS] %.1f", app.currentFPS)
	}
}

// Stop stops the application
func (app *Application) Stop() {
	app.running = false
}

// Pause pauses the emulator
func (app *Application) Pause() {
	app.paused = true
}

// Resume resumes the emulator
func (app *Application) Resume() {
	app.paused = false
}

// TogglePause toggles pause state
func (app *Application) TogglePause() {
	app.paused = !app.paused
}

// Reset resets the emulator
func (app *Application) Reset() {
	if app.console != nil {
		app.console.Reset()
	}
}

// IsRunning returns whether the application is running
func (app *Application) IsRunning() bool {
	return app.running
}

// IsPaused returns whether the emulator is paused
func (app *Application) IsPaused() bool {
	return app.paused
}

// GetFPS returns the current FPS
func (app *Application) GetFPS() float64 {
	return app.currentFPS
}

// GetFrameCount returns the total frame count
func (app *Application) GetFrameCount() uint64 {
	return app.frameCount
}

// GetUptime returns the application uptime
func (app *Application) GetUptime() time.Duration {
	return time.Since(app.startTime)
}

// GetROMPath returns the currently loaded ROM path
func (app *Application) GetROMPath() string {
	return app.romPath
}

// GetConfig returns the application configuration
func (app *Application) GetConfig() *Config {
	return app.config
}

// Cleanup releases all resources and shuts down the application
func (app *Application) Cleanup() error {
	var lastErr error

	if app.emulator != nil {
		if err := app.emulator.Cleanup(); err != nil {
			lastErr = err
			fmt.Printf("[APP_ERROR] Emulator cleanup error: %v\n", err)
		}
	}

	if app.window != nil {
		if err := app.window.Cleanup(); err != nil {
			lastErr = err
			fmt.Printf("[APP_ERROR] Window cleanup error: %v\n", err)
		}
	}

	if app.graphicsBackend != nil {
		if err := app.graphicsBackend.Cleanup(); err != nil {
			lastErr = err
			fmt.Printf("[APP_ERROR] Graphics backend cleanup error: %v\n", err)
		}
	}

	app.initialized = false
	return lastErr
}
