package fit

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/aroth/blitzdeck/internal/config"
)

// MeasuredMetrics reads glyph advances from a parsed TTF/OTF so the fit
// search works from real metrics instead of the average-width heuristic.
// Advances are resolved once per rune in font units and scaled with the
// same integer arithmetic path on every call, so results stay identical
// across runs.
//
// Not safe for concurrent use; the assembly pipeline is single-threaded.
type MeasuredMetrics struct {
	font     *sfnt.Font
	buf      sfnt.Buffer
	upm64    int64 // units per em, scaled to 26.6 fixed point
	height   int64 // recommended line height, 26.6 font units
	fallback int64 // advance for runes without a glyph, 26.6 font units
	advances map[rune]int64
}

// LoadMeasuredMetrics parses the font file at path.
func LoadMeasuredMetrics(path string) (*MeasuredMetrics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %q: %w", path, err)
	}
	m, err := NewMeasuredMetrics(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %q: %w", path, err)
	}
	return m, nil
}

// NewMeasuredMetrics parses raw TTF/OTF data into a metrics provider.
func NewMeasuredMetrics(data []byte) (*MeasuredMetrics, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}

	m := &MeasuredMetrics{
		font:     f,
		advances: make(map[rune]int64),
	}

	upm := int64(f.UnitsPerEm())
	if upm <= 0 {
		return nil, fmt.Errorf("font reports non-positive units per em")
	}
	m.upm64 = upm << 6

	// Query at ppem == unitsPerEm so 26.6 results are in font units.
	ppem := fixed.I(int(upm))
	met, err := f.Metrics(&m.buf, ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("font metrics: %w", err)
	}
	m.height = int64(met.Height)

	// Missing glyphs fall back to the .notdef advance when the font has
	// one, otherwise to the 0.6em heuristic average.
	if adv, err := f.GlyphAdvance(&m.buf, 0, ppem, font.HintingNone); err == nil && adv > 0 {
		m.fallback = int64(adv)
	} else {
		m.fallback = m.upm64 * 6 / 10
	}

	return m, nil
}

// WidthEMU sums the word's glyph advances scaled to the given point size.
func (m *MeasuredMetrics) WidthEMU(word string, size int) int64 {
	var total int64
	for _, r := range word {
		total += m.advance(r)
	}
	return total * int64(size) * config.EMUPerPoint / m.upm64
}

// HeightEMU scales the font's recommended line height to the given point size.
func (m *MeasuredMetrics) HeightEMU(size int) int64 {
	return m.height * int64(size) * config.EMUPerPoint / m.upm64
}

func (m *MeasuredMetrics) advance(r rune) int64 {
	if adv, ok := m.advances[r]; ok {
		return adv
	}

	adv := m.fallback
	ppem := fixed.Int26_6(m.upm64)
	if gi, err := m.font.GlyphIndex(&m.buf, r); err == nil && gi != 0 {
		if a, err := m.font.GlyphAdvance(&m.buf, gi, ppem, font.HintingNone); err == nil {
			adv = int64(a)
		}
	}

	m.advances[r] = adv
	return adv
}
