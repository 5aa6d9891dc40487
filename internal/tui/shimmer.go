package tui

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"
)

// ShimmerConfig holds configuration for shimmer effects
type ShimmerConfig struct {
	Enabled        bool
	ReduceMotion   bool    // static highlight instead of animation
	SpeedMs        int     // tick interval
	WidthRatio     float64 // highlight width relative to the text
	CycleMs        int     // time for one sweep
	PauseBetweenMs int
}

// DefaultShimmerConfig returns default shimmer configuration
func DefaultShimmerConfig() ShimmerConfig {
	return ShimmerConfig{
		Enabled:        true,
		SpeedMs:        100,
		WidthRatio:     0.25,
		CycleMs:        1800,
		PauseBetweenMs: 500,
	}
}

// Shimmer sweeps a highlight across the selected task's text
type Shimmer struct {
	config    ShimmerConfig
	base      [3]int
	highlight [3]int
	trueColor bool

	center     float64
	lastUpdate time.Time
	active     bool
	paused     bool
	pauseStart time.Time
}

func NewShimmer(config ShimmerConfig, theme Theme) *Shimmer {
	return &Shimmer{
		config:     config,
		base:       theme.ShimmerBase,
		highlight:  theme.ShimmerHighlight,
		trueColor:  os.Getenv("COLORTERM") == "truecolor",
		lastUpdate: time.Now(),
		active:     config.Enabled && !config.ReduceMotion,
	}
}

// SetTheme switches the color ramp
func (s *Shimmer) SetTheme(theme Theme) {
	s.base = theme.ShimmerBase
	s.highlight = theme.ShimmerHighlight
}

// advance moves the sweep forward by one tick for text of n glyphs
func (s *Shimmer) advance(n int) {
	if !s.active || n <= 0 {
		return
	}
	now := time.Now()
	if now.Sub(s.lastUpdate).Milliseconds() < int64(s.config.SpeedMs) {
		return
	}
	s.lastUpdate = now

	if s.paused {
		if now.Sub(s.pauseStart).Milliseconds() >= int64(s.config.PauseBetweenMs) {
			s.paused = false
			s.center = -float64(n) * s.config.WidthRatio
		}
		return
	}

	ticksPerCycle := float64(s.config.CycleMs) / float64(s.config.SpeedMs)
	// the sweep starts before the text and ends after it
	distance := float64(n) * (1.0 + 2.0*s.config.WidthRatio)
	s.center += distance / ticksPerCycle

	end := float64(n) * (1.0 + s.config.WidthRatio)
	if s.center >= end {
		s.paused = true
		s.pauseStart = now
		s.center = end
	}
}

// Reset restarts the sweep; call when the selection changes
func (s *Shimmer) Reset() {
	s.center = 0
	s.lastUpdate = time.Now()
	s.paused = false
}

func (s *Shimmer) SetActive(active bool) {
	s.active = active && s.config.Enabled && !s.config.ReduceMotion
}

// Render draws text with the highlight at its current position
func (s *Shimmer) Render(text string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	s.advance(len(runes))

	if !s.active {
		r, g, b := s.highlight[0], s.highlight[1], s.highlight[2]
		return fmt.Sprintf("\033[38;2;%d;%d;%dm%s\033[0m", r, g, b, text)
	}
	if !s.trueColor {
		return s.renderFallback(runes)
	}

	sigma := math.Max(1.0, s.config.WidthRatio*float64(len(runes))/2.0)
	var b strings.Builder
	for i, char := range runes {
		dx := float64(i) - s.center
		w := math.Exp(-(dx * dx) / (2 * sigma * sigma))
		blend := func(c int) int {
			return int(float64(s.base[c])*(1-w) + float64(s.highlight[c])*w)
		}
		fmt.Fprintf(&b, "\033[38;2;%d;%d;%dm%c", blend(0), blend(1), blend(2), char)
	}
	b.WriteString("\033[0m")
	return b.String()
}

// renderFallback highlights a window of glyphs with 256-color codes
func (s *Shimmer) renderFallback(runes []rune) string {
	width := max(1, int(s.config.WidthRatio*float64(len(runes))))
	from := int(s.center) - width/2
	to := from + width

	var b strings.Builder
	for i, char := range runes {
		if i >= from && i < to {
			fmt.Fprintf(&b, "\033[38;5;147m%c", char)
		} else {
			fmt.Fprintf(&b, "\033[38;5;250m%c", char)
		}
	}
	b.WriteString("\033[0m")
	return b.String()
}

// TickInterval is zero when no ticking is needed
func (s *Shimmer) TickInterval() time.Duration {
	if !s.active {
		return 0
	}
	return time.Duration(s.config.SpeedMs) * time.Millisecond
}
