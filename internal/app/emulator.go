// Package app provides emulator integration for the main application.
package app

import (
	"fmt"
	"time"

	"github.com/claude/nescore/internal/console"
)

// Emulator drives a console.Console at a fixed 60Hz frame cadence and
// tracks basic timing statistics for the UI.
type Emulator struct {
	console *console.Console
	config  *Config

	targetFrameTime time.Duration

	actualFrameTime  time.Duration
	emulationTime    time.Duration
	averageFrameTime time.Duration

	isRunning     bool
	lastResetTime time.Time
}

// NewEmulator creates a new emulator instance wrapping an already-loaded
// console.
func NewEmulator(c *console.Console, config *Config) *Emulator {
	e := &Emulator{
		console:         c,
		config:          config,
		targetFrameTime: time.Second / 60,
		lastResetTime:   time.Now(),
	}
	e.Reset()
	return e
}

// Reset clears timing state. It does not reset the underlying console.
func (e *Emulator) Reset() {
	e.actualFrameTime = 0
	e.emulationTime = 0
	e.averageFrameTime = 0
	e.lastResetTime = time.Now()
}

// Start starts the emulator
func (e *Emulator) Start() {
	e.isRunning = true
}

// Stop stops the emulator
func (e *Emulator) Stop() {
	e.isRunning = false
}

// Update runs exactly one frame of emulation, called once per Ebitengine
// tick (60Hz).
func (e *Emulator) Update() error {
	if !e.isRunning {
		return nil
	}

	frameStart := time.Now()
	emulationStart := frameStart

	if e.console == nil {
		return fmt.Errorf("console not initialized")
	}
	e.console.Run(1)

	e.emulationTime = time.Since(emulationStart)
	e.actualFrameTime = time.Since(frameStart)
	e.updateAverageFrameTime()

	return nil
}

func (e *Emulator) updateAverageFrameTime() {
	if e.averageFrameTime == 0 {
		e.averageFrameTime = e.actualFrameTime
		return
	}
	e.averageFrameTime = time.Duration(
		float64(e.averageFrameTime)*0.95 + float64(e.actualFrameTime)*0.05,
	)
}

// FrameBuffer returns the current 256x240x3 row-major RGB frame buffer.
func (e *Emulator) FrameBuffer() *[256 * 240 * 3]uint8 {
	return e.console.FrameBuffer()
}

// GetFrameCount returns the current frame count
func (e *Emulator) GetFrameCount() uint64 {
	return e.console.FrameCount()
}

// GetCycleCount returns the current CPU cycle count
func (e *Emulator) GetCycleCount() uint64 {
	return e.console.CycleCount()
}

// GetEmulationTime returns the time spent in emulation for the last frame
func (e *Emulator) GetEmulationTime() time.Duration {
	return e.emulationTime
}

// GetActualFrameTime returns the wall-clock time of the last Update's
// console.Run(1) call; rendering happens outside Update and is not counted
func (e *Emulator) GetActualFrameTime() time.Duration {
	return e.actualFrameTime
}

// GetAverageFrameTime returns the average frame time
func (e *Emulator) GetAverageFrameTime() time.Duration {
	return e.averageFrameTime
}

// GetTargetFrameTime returns the target frame time (60 FPS)
func (e *Emulator) GetTargetFrameTime() time.Duration {
	return e.targetFrameTime
}

// GetEmulationSpeed returns the emulation speed as a percentage of real-time
func (e *Emulator) GetEmulationSpeed() float64 {
	if e.actualFrameTime == 0 {
		return 0.0
	}
	return float64(e.targetFrameTime) / float64(e.actualFrameTime) * 100.0
}

// IsRunning returns whether the emulator is running
func (e *Emulator) IsRunning() bool {
	return e.isRunning
}

// GetUptime returns the emulator uptime since last reset
func (e *Emulator) GetUptime() time.Duration {
	return time.Since(e.lastResetTime)
}

// SetTargetFrameRate sets the target frame rate
func (e *Emulator) SetTargetFrameRate(fps int) {
	if fps > 0 {
		e.targetFrameTime = time.Second / time.Duration(fps)
	}
}

// StepInstruction executes one CPU instruction
func (e *Emulator) StepInstruction() error {
	if e.console == nil {
		return fmt.Errorf("console not initialized")
	}
	e.console.Advance()
	return nil
}

// EmulatorStats contains emulator performance statistics
type EmulatorStats struct {
	FrameCount       uint64
	CycleCount       uint64
	EmulationTime    time.Duration
	ActualFrameTime  time.Duration
	AverageFrameTime time.Duration
	TargetFrameTime  time.Duration
	EmulationSpeed   float64
	Uptime           time.Duration
	IsRunning        bool
}

// GetPerformanceStats returns basic performance statistics
func (e *Emulator) GetPerformanceStats() EmulatorStats {
	return EmulatorStats{
		FrameCount:       e.GetFrameCount(),
		CycleCount:       e.GetCycleCount(),
		EmulationTime:    e.emulationTime,
		ActualFrameTime:  e.actualFrameTime,
		AverageFrameTime: e.averageFrameTime,
		TargetFrameTime:  e.targetFrameTime,
		EmulationSpeed:   e.GetEmulationSpeed(),
		Uptime:           e.GetUptime(),
		IsRunning:        e.isRunning,
	}
}

// Cleanup stops the emulator
func (e *Emulator) Cleanup() error {
	e.Stop()
	return nil
}
