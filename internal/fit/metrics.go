package fit

import (
	"math"
	"unicode/utf8"

	"github.com/aroth/blitzdeck/internal/config"
)

// HeuristicMetrics approximates text extents from per-font calibration
// factors: average glyph advance and line height as fractions of the point
// size. No glyph data is consulted. Factors are quantized to 1/1000 of the
// point size so every estimate follows the same integer arithmetic path.
type HeuristicMetrics struct {
	widthPerMille  int64
	heightPerMille int64
}

// NewHeuristicMetrics quantizes the configured calibration factors.
func NewHeuristicMetrics(charWidthFactor, lineHeightFactor float64) HeuristicMetrics {
	return HeuristicMetrics{
		widthPerMille:  int64(math.Round(charWidthFactor * 1000)),
		heightPerMille: int64(math.Round(lineHeightFactor * 1000)),
	}
}

// WidthEMU estimates single-line width as runeCount * size * factor.
func (m HeuristicMetrics) WidthEMU(word string, size int) int64 {
	runes := int64(utf8.RuneCountInString(word))
	return runes * int64(size) * config.EMUPerPoint * m.widthPerMille / 1000
}

// HeightEMU estimates line height as size * factor.
func (m HeuristicMetrics) HeightEMU(size int) int64 {
	return int64(size) * config.EMUPerPoint * m.heightPerMille / 1000
}
