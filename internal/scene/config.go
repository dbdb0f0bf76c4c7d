// Package scene loads and compiles scene descriptions: which elements
// exist, which properties animate, and over which progress sub-ranges.
package scene

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the on-disk scene schema.
type Config struct {
	Title     string           `mapstructure:"title"`
	FPS       int              `mapstructure:"fps"`
	Elements  []ElementConfig  `mapstructure:"elements"`
	Bookmarks []BookmarkConfig `mapstructure:"bookmarks"`
}

// ElementConfig describes one scene element and the progress sub-range
// its animations are scoped to.
type ElementConfig struct {
	ID     string        `mapstructure:"id"`
	Label  string        `mapstructure:"label"`
	From   float64       `mapstructure:"from"`
	To     float64       `mapstructure:"to"`
	Tracks []TrackConfig `mapstructure:"tracks"`
}

// TrackConfig animates a single named property.
type TrackConfig struct {
	Property  string           `mapstructure:"property"`
	Keyframes []KeyframeConfig `mapstructure:"keyframes"`
}

// KeyframeConfig is one interpolation segment: a child-progress sub-range
// mapped onto start/end values. Start and End accept numbers or unit
// strings like "24cell".
type KeyframeConfig struct {
	From   float64 `mapstructure:"from"`
	To     float64 `mapstructure:"to"`
	Start  any     `mapstructure:"start"`
	End    any     `mapstructure:"end"`
	Easing string  `mapstructure:"easing"`
}

// BookmarkConfig is a named progress stop.
type BookmarkConfig struct {
	Name     string  `mapstructure:"name"`
	Progress float64 `mapstructure:"progress"`
}

// Load reads and normalizes a scene config from a YAML file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("title", "kinema")
	v.SetDefault("fps", 30)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene file: %w", err)
	}
	normalize(&cfg)
	return &cfg, nil
}

// normalize applies per-element defaults the flat viper defaults cannot
// express: an element with no declared range spans all of progress.
func normalize(cfg *Config) {
	if cfg.FPS <= 0 {
		cfg.FPS = 30
	}
	for i := range cfg.Elements {
		e := &cfg.Elements[i]
		if e.From == 0 && e.To == 0 {
			e.To = 1
		}
		if e.Label == "" {
			e.Label = e.ID
		}
	}
}

// Default returns the built-in demo scene used when no file is given.
func Default() *Config {
	cfg := &Config{
		Title: "kinema playground",
		FPS:   30,
		Elements: []ElementConfig{
			{
				ID: "hero", Label: "HERO", From: 0, To: 0.6,
				Tracks: []TrackConfig{
					{Property: "--x", Keyframes: []KeyframeConfig{
						{From: 0, To: 1, Start: "0cell", End: "28cell", Easing: "out-cubic"},
					}},
					{Property: "--hue", Keyframes: []KeyframeConfig{
						{From: 0, To: 1, Start: 210, End: 330},
					}},
				},
			},
			{
				ID: "meter", Label: "METER", From: 0.2, To: 0.9,
				Tracks: []TrackConfig{
					{Property: "--w", Keyframes: []KeyframeConfig{
						{From: 0, To: 0.5, Start: "4cell", End: "32cell", Easing: "in-out-sine"},
						{From: 0.5, To: 1, Start: "32cell", End: "14cell", Easing: "out-bounce"},
					}},
					{Property: "--hue", Keyframes: []KeyframeConfig{
						{From: 0, To: 1, Start: 120, End: 30},
					}},
				},
			},
			{
				ID: "pulse", Label: "PULSE",
				Tracks: []TrackConfig{
					{Property: "--x", Keyframes: []KeyframeConfig{
						{From: 0, To: 0.5, Start: "4cell", End: "20cell", Easing: "in-out-quad"},
						{From: 0.5, To: 1, Start: "20cell", End: "4cell", Easing: "in-out-quad"},
					}},
					{Property: "--w", Keyframes: []KeyframeConfig{
						{From: 0, To: 1, Start: "6cell", End: "18cell", Easing: "out-elastic"},
					}},
					{Property: "--hue", Keyframes: []KeyframeConfig{
						{From: 0, To: 1, Start: 0, End: 260},
					}},
				},
			},
		},
		Bookmarks: []BookmarkConfig{
			{Name: "intro", Progress: 0},
			{Name: "build", Progress: 0.25},
			{Name: "peak", Progress: 0.5},
			{Name: "settle", Progress: 0.75},
			{Name: "end", Progress: 1},
		},
	}
	normalize(cfg)
	return cfg
}
