package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"heroslider/internal/domain"
	"heroslider/internal/eventbus"
	"heroslider/internal/slider"
)

// Pause policies understood by the slider
const (
	PauseLastEvent = "last-event"
	PauseCounted   = "counted"
)

// ErrNotFound is returned when a config file does not exist
var ErrNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version       int         `toml:"version"`
	AutoPlay      bool        `toml:"auto_play"`
	IntervalMS    int         `toml:"interval_ms"`
	DragThreshold float64     `toml:"drag_threshold"`
	CommitRatio   float64     `toml:"commit_ratio"`
	InitialIndex  int         `toml:"initial_index"`
	PausePolicy   string      `toml:"pause_policy"`
	UISettings    UISettings  `toml:"ui"`
	Log           LogSettings `toml:"log"`
	Slides        []Slide     `toml:"slides"`
}

// UISettings represents terminal UI configuration
type UISettings struct {
	CellWidthPx  int  `toml:"cell_width_px"`
	CellHeightPx int  `toml:"cell_height_px"`
	Mouse        bool `toml:"mouse"`
	ShowHelp     bool `toml:"show_help"`
}

// LogSettings controls the log file
type LogSettings struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Slide is the on-disk form of a slide
type Slide struct {
	Title  string `toml:"title"`
	Body   string `toml:"body"`
	Accent string `toml:"accent,omitempty"`
}

// Deck converts the configured slides into the domain deck
func (c *Config) Deck() domain.Deck {
	slides := make([]domain.Slide, 0, len(c.Slides))
	for _, s := range c.Slides {
		slides = append(slides, domain.Slide{Title: s.Title, Body: s.Body, Accent: s.Accent})
	}
	return domain.Deck{Slides: slides}
}

// SliderOptions maps the timing and gesture settings onto slider options.
// Clock, Bus and Logger are left for the caller.
func (c *Config) SliderOptions() (slider.Options, error) {
	policy, err := slider.ParsePausePolicy(c.PausePolicy)
	if err != nil {
		return slider.Options{}, err
	}
	opts := slider.DefaultOptions()
	opts.Interval = time.Duration(c.IntervalMS) * time.Millisecond
	opts.DragThreshold = c.DragThreshold
	opts.CommitRatio = c.CommitRatio
	opts.InitialIndex = c.InitialIndex
	opts.PausePolicy = policy
	return opts, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.IntervalMS <= 0 {
		return fmt.Errorf("interval_ms must be positive, got %d", c.IntervalMS)
	}
	if c.DragThreshold < 0 {
		return fmt.Errorf("drag_threshold must not be negative, got %g", c.DragThreshold)
	}
	if c.CommitRatio <= 0 || c.CommitRatio >= 1 {
		return fmt.Errorf("commit_ratio must be within (0, 1), got %g", c.CommitRatio)
	}
	if c.InitialIndex < 0 {
		return fmt.Errorf("initial_index must not be negative, got %d", c.InitialIndex)
	}
	switch c.PausePolicy {
	case PauseLastEvent, PauseCounted:
	default:
		return fmt.Errorf("unknown pause_policy %q", c.PausePolicy)
	}
	if c.UISettings.CellWidthPx <= 0 || c.UISettings.CellHeightPx <= 0 {
		return fmt.Errorf("cell size must be positive, got %dx%d", c.UISettings.CellWidthPx, c.UISettings.CellHeightPx)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service rooted in the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "heroslider", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// WithBus attaches an event bus to a config service
func WithBus(svc ConfigService, bus eventbus.EventBus) ConfigService {
	if cs, ok := svc.(*configService); ok {
		cs.bus = bus
	}
	return svc
}

// Path returns the file Load and Save operate on
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, falling back to defaults when the file is missing
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrNotFound) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath, Slides: len(cfg.Slides)})
	}

	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	// Slides from the file replace the demo deck rather than merge with it
	cfg.Slides = nil

	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:       1,
		AutoPlay:      true,
		IntervalMS:    5000,
		DragThreshold: 10,
		CommitRatio:   0.3,
		InitialIndex:  0,
		PausePolicy:   PauseLastEvent,
		UISettings: UISettings{
			CellWidthPx:  8,
			CellHeightPx: 16,
			Mouse:        true,
			ShowHelp:     true,
		},
		Log: LogSettings{
			File:  "heroslider.log",
			Level: "info",
		},
		Slides: []Slide{
			{Title: "Welcome", Body: "Swipe, click the dots, or use the arrow keys.", Accent: "99"},
			{Title: "Autoplay", Body: "Slides advance every few seconds until you hover.", Accent: "39"},
			{Title: "Keyboard", Body: "Home and End jump to the first and last slide.", Accent: "78"},
			{Title: "Drag", Body: "Drag past a third of the width to change slides.", Accent: "214"},
		},
	}
}
