//go:build !headless
// +build !headless

package graphics

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitengineBackend implements the Backend interface using Ebitengine
type EbitengineBackend struct {
	initialized bool
	config      Config
	game        *EbitengineGame
}

// EbitengineWindow implements the Window interface for Ebitengine
type EbitengineWindow struct {
	backend            *EbitengineBackend
	title              string
	width              int
	height             int
	game               *EbitengineGame
	running            bool
	events             []InputEvent
	emulatorUpdateFunc func() error
}

// EbitengineGame implements ebiten.Game for the NES emulator
type EbitengineGame struct {
	window       *EbitengineWindow
	frameImage   *ebiten.Image
	nesWidth     int
	nesHeight    int
	windowWidth  int
	windowHeight int

	previousKeyStates map[ebiten.Key]bool
	scale             int
	drawCount         int

	// Reusable image buffer to avoid reallocating every frame
	imageBuffer *image.RGBA
}

// NewEbitengineBackend creates a new Ebitengine graphics backend
func NewEbitengineBackend() Backend {
	return &EbitengineBackend{}
}

// Initialize initializes the Ebitengine backend
func (b *EbitengineBackend) Initialize(config Config) error {
	if b.initialized {
		return fmt.Errorf("Ebitengine backend already initialized")
	}

	b.config = config
	b.initialized = true

	return nil
}

// CreateWindow creates an Ebitengine window
func (b *EbitengineBackend) CreateWindow(title string, width, height int) (Window, error) {
	if !b.initialized {
		return nil, fmt.Errorf("backend not initialized")
	}

	if b.config.Headless {
		return nil, fmt.Errorf("cannot create window in headless mode")
	}

	scale := 1
	if width >= 512 && height >= 480 {
		scale = 2
	}
	if width >= 1024 && height >= 960 {
		scale = 4
	}

	game := &EbitengineGame{
		nesWidth:          256,
		nesHeight:         240,
		windowWidth:       width,
		windowHeight:      height,
		scale:             scale,
		frameImage:        ebiten.NewImage(256, 240),
		previousKeyStates: make(map[ebiten.Key]bool),
		imageBuffer:       image.NewRGBA(image.Rect(0, 0, 256, 240)),
	}

	window := &EbitengineWindow{
		backend: b,
		title:   title,
		width:   width,
		height:  height,
		game:    game,
		running: true,
	}

	game.window = window
	b.game = game

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	ebiten.SetVsyncEnabled(b.config.VSync)

	if b.config.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	ebiten.SetScreenFilterEnabled(b.config.Filter == "linear")

	return window, nil
}

// Cleanup releases all Ebitengine resources
func (b *EbitengineBackend) Cleanup() error {
	b.initialized = false
	return nil
}

// IsHeadless returns true if running in headless mode
func (b *EbitengineBackend) IsHeadless() bool {
	return b.config.Headless
}

// GetName returns the backend name
func (b *EbitengineBackend) GetName() string {
	return "Ebitengine"
}

// EbitengineWindow implementation

// SetTitle sets the window title
func (w *EbitengineWindow) SetTitle(title string) {
	w.title = title
	ebiten.SetWindowTitle(title)
}

// GetSize returns window dimensions
func (w *EbitengineWindow) GetSize() (width, height int) {
	return w.width, w.height
}

// ShouldClose returns true if window should close
func (w *EbitengineWindow) ShouldClose() bool {
	return !w.running
}

// SwapBuffers is handled automatically by Ebitengine
func (w *EbitengineWindow) SwapBuffers() {
}

// PollEvents processes input events and returns them
func (w *EbitengineWindow) PollEvents() []InputEvent {
	events := w.events
	w.events = nil
	return events
}

// RenderFrame converts a 256x240 row-major RGB byte buffer (3 bytes per
// pixel) into the backing Ebitengine image.
func (w *EbitengineWindow) RenderFrame(frameBuffer *[256 * 240 * 3]uint8) error {
	if w.game == nil {
		return fmt.Errorf("game not initialized")
	}

	img := w.game.imageBuffer
	for y := 0; y < 240; y++ {
		for x := 0; x < 256; x++ {
			i := (y*256 + x) * 3
			img.SetRGBA(x, y, color.RGBA{
				R: frameBuffer[i],
				G: frameBuffer[i+1],
				B: frameBuffer[i+2],
				A: 255,
			})
		}
	}

	w.game.frameImage.ReplacePixels(img.Pix)
	return nil
}

// Cleanup releases window resources
func (w *EbitengineWindow) Cleanup() error {
	w.running = false
	return nil
}

// Run starts the Ebitengine game loop
func (w *EbitengineWindow) Run() error {
	if w.game == nil {
		return fmt.Errorf("game not initialized")
	}

	return ebiten.RunGame(w.game)
}

// SetEmulatorUpdateFunc sets the emulator update function
func (w *EbitengineWindow) SetEmulatorUpdateFunc(updateFunc func() error) {
	w.emulatorUpdateFunc = updateFunc
}

// EbitengineGame implementation

// Update implements ebiten.Game.Update
func (g *EbitengineGame) Update() error {
	if g.window == nil {
		return nil
	}

	g.processInput()

	if g.window.emulatorUpdateFunc != nil {
		if err := g.window.emulatorUpdateFunc(); err != nil {
			log.Printf("[Ebitengine] Emulator update error: %v", err)
		}
	}

	return nil
}

// Draw implements ebiten.Game.Draw
func (g *EbitengineGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0, G: 0, B: 0, A: 255})

	if g.frameImage == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}

	scaleX := float64(g.windowWidth) / float64(g.nesWidth)
	scaleY := float64(g.windowHeight) / float64(g.nesHeight)

	scale := scaleX
	if scaleY < scaleX {
		scale = scaleY
	}

	offsetX := (float64(g.windowWidth) - float64(g.nesWidth)*scale) / 2
	offsetY := (float64(g.windowHeight) - float64(g.nesHeight)*scale) / 2

	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(offsetX, offsetY)

	screen.DrawImage(g.frameImage, op)
	g.drawCount++
}

// Layout implements ebiten.Game.Layout
func (g *EbitengineGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	g.windowWidth = outsideWidth
	g.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}

// keyMappings maps Ebitengine keys to the backend's Key enum.
var keyMappings = map[ebiten.Key]Key{
	ebiten.KeyEscape:     KeyEscape,
	ebiten.KeyEnter:      KeyEnter,
	ebiten.KeySpace:      KeySpace,
	ebiten.KeyArrowUp:    KeyUp,
	ebiten.KeyArrowDown:  KeyDown,
	ebiten.KeyArrowLeft:  KeyLeft,
	ebiten.KeyArrowRight: KeyRight,
	ebiten.KeyW:          KeyW,
	ebiten.KeyA:          KeyA,
	ebiten.KeyS:          KeyS,
	ebiten.KeyD:          KeyD,
	ebiten.KeyJ:          KeyJ,
	ebiten.KeyK:          KeyK,
	ebiten.KeyX:          KeyX,
	ebiten.KeyZ:          KeyZ,
	ebiten.Key1:          Key1,
	ebiten.Key2:          Key2,
	ebiten.Key3:          Key3,
	ebiten.Key4:          Key4,
	ebiten.Key5:          Key5,
	ebiten.Key6:          Key6,
	ebiten.Key7:          Key7,
	ebiten.Key8:          Key8,
	ebiten.KeyF1:         KeyF1,
	ebiten.KeyF2:         KeyF2,
	ebiten.KeyF3:         KeyF3,
	ebiten.KeyF4:         KeyF4,
	ebiten.KeyF5:         KeyF5,
	ebiten.KeyF6:         KeyF6,
	ebiten.KeyF7:         KeyF7,
	ebiten.KeyF8:         KeyF8,
	ebiten.KeyF9:         KeyF9,
	ebiten.KeyF10:        KeyF10,
	ebiten.KeyF11:        KeyF11,
	ebiten.KeyF12:        KeyF12,
}

// buttonMappings maps the backend's Key enum to NES controller buttons,
// player 1 on WASD/arrows+JK+Enter/Space, player 2 on the number row.
var buttonMappings = map[Key]Button{
	KeyUp:    ButtonUp,
	KeyDown:  ButtonDown,
	KeyLeft:  ButtonLeft,
	KeyRight: ButtonRight,
	KeyW:     ButtonUp,
	KeyS:     ButtonDown,
	KeyA:     ButtonLeft,
	KeyD:     ButtonRight,
	KeyJ:     ButtonA,
	KeyK:     ButtonB,
	KeyEnter: ButtonStart,
	KeySpace: ButtonSelect,
	Key1:     Button2Up,
	Key2:     Button2Down,
	Key3:     Button2Left,
	Key4:     Button2Right,
	Key5:     Button2A,
	Key6:     Button2B,
	Key7:     Button2Start,
	Key8:     Button2Select,
}

// processInput processes keyboard input and emits key/button/quit events
func (g *EbitengineGame) processInput() {
	if g.window == nil {
		return
	}

	var events []InputEvent

	if ebiten.IsKeyPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		events = append(events, InputEvent{
			Type:    InputEventTypeQuit,
			Pressed: true,
		})
	}

	var rawKeyEvents []InputEvent
	for ebitenKey, key := range keyMappings {
		if inpututil.IsKeyJustPressed(ebitenKey) {
			rawKeyEvents = append(rawKeyEvents, InputEvent{Type: InputEventTypeKey, Key: key, Pressed: true})
			g.previousKeyStates[ebitenKey] = true
		} else if inpututil.IsKeyJustReleased(ebitenKey) {
			rawKeyEvents = append(rawKeyEvents, InputEvent{Type: InputEventTypeKey, Key: key, Pressed: false})
			g.previousKeyStates[ebitenKey] = false
		}
	}

	for _, event := range rawKeyEvents {
		if button, exists := buttonMappings[event.Key]; exists {
			events = append(events, InputEvent{Type: InputEventTypeButton, Button: button, Pressed: event.Pressed})
		} else {
			events = append(events, event)
		}
	}

	g.window.events = append(g.window.events, events...)
}
