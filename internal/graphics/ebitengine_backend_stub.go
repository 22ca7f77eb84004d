//go:build headless
// +build headless

package graphics

import "fmt"

// Under the headless build tag, ebitengine_backend.go is excluded
// from the build (it imports the Ebitengine/GLFW stack, which needs a
// display even to link on some platforms), so EbitengineBackend and
// EbitengineWindow get stand-ins here instead. Initialize,
// CreateWindow, RenderFrame and Run return errStubUnavailable;
// IsHeadless reports true and the remaining methods do nothing.

type EbitengineBackend struct{}

type EbitengineWindow struct{}

func NewEbitengineBackend() Backend {
	return &EbitengineBackend{}
}

var errStubUnavailable = fmt.Errorf("Ebitengine backend not available in headless build")

func (b *EbitengineBackend) Initialize(config Config) error {
	return errStubUnavailable
}

func (b *EbitengineBackend) CreateWindow(title string, width, height int) (Window, error) {
	return nil, errStubUnavailable
}

func (b *EbitengineBackend) Cleanup() error {
	return nil
}

func (b *EbitengineBackend) IsHeadless() bool {
	return true
}

func (b *EbitengineBackend) GetName() string {
	return "Ebitengine-Stub"
}

func (w *EbitengineWindow) SetTitle(title string)                             {}
func (w *EbitengineWindow) GetSize() (width, height int)                      { return 0, 0 }
func (w *EbitengineWindow) ShouldClose() bool                                 { return true }
func (w *EbitengineWindow) SwapBuffers()                                      {}
func (w *EbitengineWindow) PollEvents() []InputEvent                          { return nil }
func (w *EbitengineWindow) Cleanup() error                                    { return nil }
func (w *EbitengineWindow) SetEmulatorUpdateFunc(updateFunc func() error)     {}

func (w *EbitengineWindow) RenderFrame(frameBuffer *[256 * 240 * 3]uint8) error {
	return errStubUnavailable
}

func (w *EbitengineWindow) Run() error {
	return errStubUnavailable
}
