package app

import (
	"fmt"
	"os"
)

// validate clamps every out-of-range field to a safe default instead
// of rejecting the whole file, so a hand-edited config with one typo
// still starts the emulator. Window dimensions are the exception: a
// non-positive width or height can't be clamped to anything useful,
// so it's reported as an error instead.
func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window dimensions: %dx%d", c.Window.Width, c.Window.Height)
	}
	c.validateWindow()
	c.validateVideo()
	c.validateAudio()
	c.validateEmulation()
	c.validateInput()
	return nil
}

func (c *Config) validateWindow() {
	if c.Window.Scale <= 0 {
		c.Window.Scale = 1
	}
}

func clampFloat32(v *float32, lo, hi, fallback float32) {
	if *v < lo || *v > hi {
		*v = fallback
	}
}

func (c *Config) validateVideo() {
	clampFloat32(&c.Video.Brightness, 0.1, 3.0, 1.0)
	clampFloat32(&c.Video.Contrast, 0.1, 3.0, 1.0)
	clampFloat32(&c.Video.Saturation, 0.0, 3.0, 1.0)
}

func (c *Config) validateAudio() {
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = 44100
	}
	if c.Audio.BufferSize <= 0 {
		c.Audio.BufferSize = 1024
	}
	clampFloat32(&c.Audio.Volume, 0.0, 1.0, 0.8)
	if c.Audio.Channels != 1 && c.Audio.Channels != 2 {
		c.Audio.Channels = 2
	}
}

func (c *Config) validateEmulation() {
	if c.Emulation.FrameRate <= 0 {
		c.Emulation.FrameRate = 60.0
	}
	if c.Emulation.RewindBuffer < 0 {
		c.Emulation.RewindBuffer = 0
	}
	if c.Emulation.SaveStateSlots <= 0 {
		c.Emulation.SaveStateSlots = 10
	}
}

func (c *Config) validateInput() {
	clampFloat32(&c.Input.ControllerDeadzone, 0.0, 1.0, 0.1)
	if c.Input.AutofireRate <= 0 {
		c.Input.AutofireRate = 10
	}
}

// createDirectories makes sure every path in Paths exists, creating
// parents as needed.
func (c *Config) createDirectories() error {
	dirs := []string{
		c.Paths.ROMs,
		c.Paths.SaveData,
		c.Paths.SaveStates,
		c.Paths.Screenshots,
		c.Paths.Config,
		c.Paths.Logs,
	}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %v", dir, err)
		}
	}
	return nil
}
