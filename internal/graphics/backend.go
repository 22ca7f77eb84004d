// Package graphics decouples the console's per-frame pixel output from
// how it actually reaches a screen (or a file, for headless runs).
package graphics

// Config carries everything a Backend needs to stand up a window and
// a render pipeline; fields a given backend doesn't use are ignored.
type Config struct {
	WindowTitle  string
	WindowWidth  int
	WindowHeight int
	Fullscreen   bool
	VSync        bool

	Filter      string // "nearest", "linear"
	AspectRatio string // "4:3", "stretch"

	Headless bool
	Debug    bool
}

// Backend owns the lifetime of a presentation surface: GUI window,
// headless file dumper, or anything else that can take frames.
type Backend interface {
	Initialize(config Config) error
	CreateWindow(title string, width, height int) (Window, error)
	Cleanup() error
	IsHeadless() bool
	GetName() string
}

// Window receives one decoded frame at a time and reports input back.
type Window interface {
	SetTitle(title string)
	GetSize() (width, height int)
	ShouldClose() bool
	SwapBuffers()
	PollEvents() []InputEvent

	// RenderFrame takes a 256x240 row-major RGB frame (3 bytes per
	// pixel, no padding) and presents it.
	RenderFrame(frameBuffer *[256 * 240 * 3]uint8) error

	Cleanup() error
}

// BackendType selects which Backend implementation CreateBackend hands back.
type BackendType string

const (
	BackendEbitengine BackendType = "ebitengine"
	BackendHeadless   BackendType = "headless"
)

// CreateBackend constructs the requested backend, falling back to the
// GUI backend for anything it doesn't recognize.
func CreateBackend(backendType BackendType) (Backend, error) {
	if backendType == BackendHeadless {
		return NewHeadlessBackend(), nil
	}
	return NewEbitengineBackend(), nil
}

// AsEbitengineWindow recovers the concrete Ebitengine window type from
// behind the Window interface, for callers that need Ebitengine-only
// functionality (e.g. driving its own event loop via Run).
func AsEbitengineWindow(window Window) (*EbitengineWindow, bool) {
	w, ok := window.(*EbitengineWindow)
	return w, ok
}

// InputEventType classifies an InputEvent.
type InputEventType int

const (
	InputEventTypeKey InputEventType = iota
	InputEventTypeButton
	InputEventTypeQuit
)

// InputEvent is a single keyboard or controller-button transition
// reported by a Window's PollEvents.
type InputEvent struct {
	Type      InputEventType
	Key       Key
	Button    Button
	Pressed   bool
	Modifiers ModifierKey
}

// Key enumerates the keyboard keys a Window can report.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeySpace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyJ
	KeyK
	KeyX
	KeyZ
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Button enumerates NES controller buttons for both ports.
type Button int

const (
	ButtonUnknown Button = iota
	ButtonA
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
	Button2A
	Button2B
	Button2Select
	Button2Start
	Button2Up
	Button2Down
	Button2Left
	Button2Right
)

// ModifierKey is a bitmask of held modifier keys.
type ModifierKey int

const (
	ModifierNone  ModifierKey = 0
	ModifierShift ModifierKey = 1 << iota
	ModifierCtrl
	ModifierAlt
	ModifierSuper
)
