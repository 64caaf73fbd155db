// Package config resolves, parses, validates, and defaults blitzdeck configuration.
package config

import "math"

// OOXML English Metric Units. All internal geometry is held in EMU so the
// fit arithmetic stays integral.
const (
	EMUPerInch  = 914400
	EMUPerPoint = 12700
)

// Config is the fully materialized runtime configuration used by blitzdeck.
type Config struct {
	Input    InputConfig
	Output   OutputConfig
	Font     FontConfig
	Box      BoxConfig
	Timing   TimingConfig
	Deck     DeckConfig
	Progress ProgressConfig
}

// InputConfig selects the word source.
type InputConfig struct {
	Path  string
	Sheet string
}

// OutputConfig selects where the serialized deck is written.
type OutputConfig struct {
	Path string
}

// FontConfig controls the applied font and the auto-fit search bounds.
type FontConfig struct {
	Name             string
	File             string // optional TTF/OTF for measured glyph metrics
	MaxSize          int
	MinSize          int
	Bold             bool
	ColorRGB         string // six hex digits, RRGGBB
	CharWidthFactor  float64
	LineHeightFactor float64
}

// BoxConfig is the slide text region geometry in inches.
type BoxConfig struct {
	LeftIn      float64
	TopIn       float64
	WidthIn     float64
	HeightIn    float64
	MarginRatio float64
}

// LeftEMU returns the box left offset in EMU.
func (b BoxConfig) LeftEMU() int64 { return inchesToEMU(b.LeftIn) }

// TopEMU returns the box top offset in EMU.
func (b BoxConfig) TopEMU() int64 { return inchesToEMU(b.TopIn) }

// WidthEMU returns the box width in EMU.
func (b BoxConfig) WidthEMU() int64 { return inchesToEMU(b.WidthIn) }

// HeightEMU returns the box height in EMU.
func (b BoxConfig) HeightEMU() int64 { return inchesToEMU(b.HeightIn) }

// TimingConfig controls per-slide advance behavior.
type TimingConfig struct {
	AutoAdvanceSeconds float64
	DisableMouseClick  bool
}

// DeckConfig controls slide ordering.
type DeckConfig struct {
	RandomizeOrder bool
	Seed           int64 // 0 means time-seeded
}

// ProgressConfig controls per-slide progress logging cadence.
type ProgressConfig struct {
	Every  int
	FirstN int
}

// Warning is a non-fatal parse/validation message.
type Warning struct {
	Line    int
	Message string
}

func inchesToEMU(in float64) int64 {
	return int64(math.Round(in * EMUPerInch))
}
