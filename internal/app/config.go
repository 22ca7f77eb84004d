// Package app wires a cartridge, a console, and a graphics backend
// together behind a single run loop, and owns the JSON-backed settings
// that shape how that loop behaves.
package app

// Config is the full set of user-adjustable settings, grouped by the
// subsystem they affect. Every field round-trips through JSON, so
// renaming a field or a json tag breaks existing config files on disk.
type Config struct {
	Window    WindowConfig    `json:"window"`
	Video     VideoConfig     `json:"video"`
	Audio     AudioConfig     `json:"audio"`
	Input     InputConfig     `json:"input"`
	Emulation EmulationConfig `json:"emulation"`
	Debug     DebugConfig     `json:"debug"`
	Paths     PathsConfig     `json:"paths"`

	configPath string
	loaded     bool
}

// WindowConfig controls the size and chrome of the display window.
type WindowConfig struct {
	Width      int  `json:"width"`
	Height     int  `json:"height"`
	Fullscreen bool `json:"fullscreen"`
	Resizable  bool `json:"resizable"`
	Centered   bool `json:"centered"`
	Scale      int  `json:"scale"`
}

// VideoConfig controls how frames get filtered, scaled, and presented.
type VideoConfig struct {
	VSync        bool    `json:"vsync"`
	FrameSkip    int     `json:"frame_skip"`
	AspectRatio  string  `json:"aspect_ratio"`
	Filter       string  `json:"filter"`
	Backend      string  `json:"backend"`
	Brightness   float32 `json:"brightness"`
	Contrast     float32 `json:"contrast"`
	Saturation   float32 `json:"saturation"`
	ShowOverscan bool    `json:"show_overscan"`
	CropOverscan bool    `json:"crop_overscan"`
}

// AudioConfig controls the APU's output stream.
type AudioConfig struct {
	Enabled    bool    `json:"enabled"`
	SampleRate int     `json:"sample_rate"`
	BufferSize int     `json:"buffer_size"`
	Volume     float32 `json:"volume"`
	Channels   int     `json:"channels"`
	Latency    int     `json:"latency"`
}

// InputConfig binds keyboard keys to NES controller buttons for both
// ports, plus the autofire/deadzone knobs that sit on top of them.
type InputConfig struct {
	Player1Keys        KeyMapping `json:"player1_keys"`
	Player2Keys        KeyMapping `json:"player2_keys"`
	ControllerDeadzone float32    `json:"controller_deadzone"`
	AutofireRate       int        `json:"autofire_rate"`
	EnableAutofire     bool       `json:"enable_autofire"`
}

// KeyMapping names one key per NES controller button.
type KeyMapping struct {
	Up     string `json:"up"`
	Down   string `json:"down"`
	Left   string `json:"left"`
	Right  string `json:"right"`
	A      string `json:"a"`
	B      string `json:"b"`
	Start  string `json:"start"`
	Select string `json:"select"`
}

// EmulationConfig controls console-level behavior: which region's
// timing to emulate, how aggressively, and what happens around saves.
type EmulationConfig struct {
	Region           string  `json:"region"`
	FrameRate        float64 `json:"frame_rate"`
	CycleAccuracy    bool    `json:"cycle_accuracy"`
	EnableSound      bool    `json:"enable_sound"`
	RewindBuffer     int     `json:"rewind_buffer"`
	SaveStateSlots   int     `json:"save_state_slots"`
	AutoSave         bool    `json:"auto_save"`
	PauseOnFocusLoss bool    `json:"pause_on_focus_loss"`
}

// DebugConfig gates developer-facing instrumentation.
type DebugConfig struct {
	ShowFPS         bool   `json:"show_fps"`
	ShowDebugInfo   bool   `json:"show_debug_info"`
	EnableLogging   bool   `json:"enable_logging"`
	LogLevel        string `json:"log_level"`
	CPUTracing      bool   `json:"cpu_tracing"`
	PPUDebugging    bool   `json:"ppu_debugging"`
	MemoryDebugging bool   `json:"memory_debugging"`
}

// PathsConfig names the directories the emulator reads ROMs from and
// writes saves, states, screenshots, and logs into.
type PathsConfig struct {
	ROMs        string `json:"roms"`
	SaveData    string `json:"save_data"`
	SaveStates  string `json:"save_states"`
	Screenshots string `json:"screenshots"`
	Config      string `json:"config"`
	Logs        string `json:"logs"`
}

// NewConfig builds a Config populated with the emulator's shipped
// defaults, composed one subsystem at a time so each section's
// defaults live next to the type they configure.
func NewConfig() *Config {
	return &Config{
		Window:    defaultWindowConfig(),
		Video:     defaultVideoConfig(),
		Audio:     defaultAudioConfig(),
		Input:     defaultInputConfig(),
		Emulation: defaultEmulationConfig(),
		Debug:     defaultDebugConfig(),
		Paths:     defaultPathsConfig(),
	}
}

func defaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:      800,
		Height:     600,
		Fullscreen: false,
		Resizable:  true,
		Centered:   true,
		Scale:      2, // 512x480, i.e. 256x240 doubled
	}
}

func defaultVideoConfig() VideoConfig {
	return VideoConfig{
		VSync:        true,
		FrameSkip:    0,
		AspectRatio:  "4:3",
		Filter:       "nearest",
		Backend:      "ebitengine",
		Brightness:   1.0,
		Contrast:     1.0,
		Saturation:   1.0,
		ShowOverscan: false,
		CropOverscan: true,
	}
}

func defaultAudioConfig() AudioConfig {
	return AudioConfig{
		Enabled:    true,
		SampleRate: 44100,
		BufferSize: 1024,
		Volume:     0.8,
		Channels:   2,
		Latency:    50,
	}
}

func defaultInputConfig() InputConfig {
	return InputConfig{
		Player1Keys: KeyMapping{
			Up: "W", Down: "S", Left: "A", Right: "D",
			A: "J", B: "K", Start: "Return", Select: "Space",
		},
		Player2Keys: KeyMapping{
			Up: "Up", Down: "Down", Left: "Left", Right: "Right",
			A: "N", B: "M", Start: "RShift", Select: "RCtrl",
		},
		ControllerDeadzone: 0.1,
		AutofireRate:       10,
		EnableAutofire:     false,
	}
}

func defaultEmulationConfig() EmulationConfig {
	return EmulationConfig{
		Region:           "NTSC",
		FrameRate:        60.0,
		CycleAccuracy:    true,
		EnableSound:      true,
		RewindBuffer:     30,
		SaveStateSlots:   10,
		AutoSave:         true,
		PauseOnFocusLoss: true,
	}
}

func defaultDebugConfig() DebugConfig {
	return DebugConfig{LogLevel: "INFO"}
}

func defaultPathsConfig() PathsConfig {
	return PathsConfig{
		ROMs:        "./roms",
		SaveData:    "./saves",
		SaveStates:  "./states",
		Screenshots: "./screenshots",
		Config:      "./config",
		Logs:        "./logs",
	}
}

// GetNESResolution returns the console's native pixel dimensions.
func (c *Config) GetNESResolution() (int, int) {
	return 256, 240
}

// GetWindowResolution scales the native resolution by Window.Scale.
func (c *Config) GetWindowResolution() (int, int) {
	w, h := c.GetNESResolution()
	return w * c.Window.Scale, h * c.Window.Scale
}

// GetAspectRatio returns Video.AspectRatio as a float, falling back to
// 4:3 for anything it doesn't recognize.
func (c *Config) GetAspectRatio() float32 {
	switch c.Video.AspectRatio {
	case "16:9":
		return 16.0 / 9.0
	case "original":
		w, h := c.GetNESResolution()
		return float32(w) / float32(h)
	default:
		return 4.0 / 3.0
	}
}

// IsLoaded reports whether this Config came from LoadFromFile rather
// than the compiled-in defaults.
func (c *Config) IsLoaded() bool {
	return c.loaded
}

// GetConfigPath returns the file path this Config was last loaded
// from or saved to, or "" if neither has happened yet.
func (c *Config) GetConfigPath() string {
	return c.configPath
}

// GetDefaultConfigPath returns where the emulator looks for its
// config file when none is given explicitly.
func GetDefaultConfigPath() string {
	return "./config/gones.json"
}

// GetDefaultConfigDir returns the directory GetDefaultConfigPath lives in.
func GetDefaultConfigDir() string {
	return "./config"
}

// UpdateWindow applies new window geometry.
func (c *Config) UpdateWindow(width, height int, fullscreen bool) {
	c.Window.Width = width
	c.Window.Height = height
	c.Window.Fullscreen = fullscreen
}

// UpdateVideo applies new rendering settings.
func (c *Config) UpdateVideo(vsync bool, filter string, brightness, contrast, saturation float32) {
	c.Video.VSync = vsync
	c.Video.Filter = filter
	c.Video.Brightness = brightness
	c.Video.Contrast = contrast
	c.Video.Saturation = saturation
}

// UpdateAudio applies new audio output settings.
func (c *Config) UpdateAudio(enabled bool, volume float32, sampleRate int) {
	c.Audio.Enabled = enabled
	c.Audio.Volume = volume
	c.Audio.SampleRate = sampleRate
}

// UpdateEmulation applies new console-timing settings.
func (c *Config) UpdateEmulation(region string, frameRate float64, cycleAccuracy bool) {
	c.Emulation.Region = region
	c.Emulation.FrameRate = frameRate
	c.Emulation.CycleAccuracy = cycleAccuracy
}

// UpdateDebug applies new developer-instrumentation settings.
func (c *Config) UpdateDebug(showFPS, showDebugInfo, enableLogging bool) {
	c.Debug.ShowFPS = showFPS
	c.Debug.ShowDebugInfo = showDebugInfo
	c.Debug.EnableLogging = enableLogging
}
