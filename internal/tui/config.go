package tui

import (
	"github.com/bcanseco/rank-generator/internal/tui/themes"
)

// Mode selects how the Generate key produces ranks.
type Mode int

const (
	// ModeNext walks the vocabulary in tier order.
	ModeNext Mode = iota
	// ModeRandom picks any rank.
	ModeRandom
)

func (m Mode) String() string {
	if m == ModeRandom {
		return "random"
	}
	return "next"
}

// ParseMode accepts "next" or "random".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "next", "":
		return ModeNext, true
	case "random":
		return ModeRandom, true
	default:
		return ModeNext, false
	}
}

// Config holds TUI configuration.
type Config struct {
	Theme    themes.Theme
	Title    string
	Mode     Mode
	Width    int
	Height   int
	Postfix  bool
	ShowHelp bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		Theme:  themes.Default,
		Title:  "Rank Generator",
		Mode:   ModeNext,
		Width:  80,
		Height: 24,
	}
}

// WithTheme sets the color theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithTitle sets the header text, usually the vocabulary name.
func WithTitle(title string) Option {
	return func(c *Config) {
		c.Title = title
	}
}

// WithMode sets the starting mode.
func WithMode(mode Mode) Option {
	return func(c *Config) {
		c.Mode = mode
	}
}

// WithPostfix starts with postfixes enabled in next mode.
func WithPostfix(enabled bool) Option {
	return func(c *Config) {
		c.Postfix = enabled
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}
