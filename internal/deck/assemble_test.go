package deck

import (
	"io"
	"log/slog"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aroth/blitzdeck/internal/config"
	"github.com/aroth/blitzdeck/internal/fit"
)

func testAssembler(t *testing.T, mutate func(*config.Config)) (*Assembler, config.Config) {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	engine := fit.New(cfg, fit.NewHeuristicMetrics(cfg.Font.CharWidthFactor, cfg.Font.LineHeightFactor))
	return NewAssembler(cfg, engine, slog.New(slog.NewTextHandler(io.Discard, nil))), cfg
}

func items(texts ...string) []WordItem {
	out := make([]WordItem, len(texts))
	for i, text := range texts {
		out[i] = WordItem{Text: text, Ordinal: i}
	}
	return out
}

func deckWords(d Deck) []string {
	out := make([]string, len(d.Slides))
	for i, s := range d.Slides {
		out[i] = s.Word
	}
	return out
}

func TestAssemblePreservesOrderWithoutRandomization(t *testing.T) {
	a, _ := testAssembler(t, func(c *config.Config) { c.Deck.RandomizeOrder = false })

	d, summary, err := a.Assemble(items("a", "b", "c"), nil)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, deckWords(d))
	require.Equal(t, 3, summary.Total)
}

func TestAssembleShuffleIsPermutation(t *testing.T) {
	a, _ := testAssembler(t, nil)
	input := items("eins", "zwei", "drei", "vier", "fünf", "sechs", "sieben", "acht")

	d, _, err := a.Assemble(input, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	require.Len(t, d.Slides, len(input))

	got := deckWords(d)
	want := make([]string, len(input))
	for i, item := range input {
		want[i] = item.Text
	}
	sort.Strings(got)
	sort.Strings(want)
	require.Equal(t, want, got)
}

func TestAssembleSeededShuffleIsReproducible(t *testing.T) {
	input := items("eins", "zwei", "drei", "vier", "fünf")

	a, _ := testAssembler(t, nil)
	first, _, err := a.Assemble(input, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	b, _ := testAssembler(t, nil)
	second, _, err := b.Assemble(input, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	require.Equal(t, deckWords(first), deckWords(second))
}

func TestAssembleNeverMutatesInput(t *testing.T) {
	a, _ := testAssembler(t, nil)
	input := items("eins", "zwei", "drei", "vier", "fünf")
	snapshot := make([]WordItem, len(input))
	copy(snapshot, input)

	_, _, err := a.Assemble(input, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, snapshot, input)
}

func TestAssembleSharesOneAdvanceDirective(t *testing.T) {
	a, _ := testAssembler(t, func(c *config.Config) {
		c.Deck.RandomizeOrder = false
		c.Timing.AutoAdvanceSeconds = 3
		c.Timing.DisableMouseClick = true
	})

	d, _, err := a.Assemble(items("a", "b", "c", "d", "e"), nil)
	require.NoError(t, err)
	require.Len(t, d.Slides, 5)

	first := d.Slides[0].Advance
	require.NotNil(t, first)
	require.Equal(t, 3000, first.AfterMillis)
	require.False(t, first.AllowClick)
	for _, s := range d.Slides[1:] {
		require.Same(t, first, s.Advance)
	}
}

func TestAssembleGeometryIsCenteredAndUnwrapped(t *testing.T) {
	a, cfg := testAssembler(t, func(c *config.Config) { c.Deck.RandomizeOrder = false })

	d, _, err := a.Assemble(items("Wort"), nil)
	require.NoError(t, err)

	g := d.Slides[0].Geometry
	require.Equal(t, AnchorCenter, g.AnchorHorizontal)
	require.Equal(t, AnchorCenter, g.AnchorVertical)
	require.False(t, g.WrapEnabled)
	require.False(t, g.AutofitEnabled)
	require.Equal(t, cfg.Font.Name, g.FontName)
	require.Equal(t, cfg.Box.LeftEMU(), g.Frame.LeftEMU)
	require.Equal(t, cfg.Box.WidthEMU(), g.Frame.WidthEMU)
}

func TestAssembleRejectsEmptyInput(t *testing.T) {
	a, _ := testAssembler(t, nil)

	_, _, err := a.Assemble(nil, nil)
	require.ErrorIs(t, err, ErrNoWords)
}

func TestAssembleRejectsInvalidConfig(t *testing.T) {
	a, _ := testAssembler(t, func(c *config.Config) { c.Font.MinSize = 0 })

	_, _, err := a.Assemble(items("a"), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "font.min_size")
}

func TestAssembleSummaryBuckets(t *testing.T) {
	a, cfg := testAssembler(t, func(c *config.Config) { c.Deck.RandomizeOrder = false })

	short := "ab" // caps at the height bound, 300pt
	long := "Rindfleischetikettierungsüberwachungsaufgabenübertragungsgesetz" // 63 runes, clamps at minimum

	d, summary, err := a.Assemble(items(short, long), nil)
	require.NoError(t, err)
	require.Len(t, d.Slides, 2)

	require.Equal(t, 2, summary.Total)
	require.Equal(t, 1, summary.Clamped)
	require.Equal(t, 2, summary.Adjusted)
	require.Equal(t, 0, summary.AtMax)
	require.Equal(t, 1, summary.Large) // 300 of 320 is >= 75%
	require.Equal(t, 1, summary.Small) // clamped at 20
	require.Equal(t, 1, summary.Histogram[300])
	require.Equal(t, 1, summary.Histogram[cfg.Font.MinSize])
}

func TestAssembleClampedWordStillEmitsSlide(t *testing.T) {
	a, cfg := testAssembler(t, func(c *config.Config) { c.Deck.RandomizeOrder = false })

	word := "Rindfleischetikettierungsüberwachungsaufgabenübertragungsgesetz"
	d, summary, err := a.Assemble(items(word), nil)
	require.NoError(t, err)
	require.Len(t, d.Slides, 1)
	require.True(t, d.Slides[0].Clamped)
	require.Equal(t, cfg.Font.MinSize, d.Slides[0].FontSize)
	require.Equal(t, 1, summary.Clamped)
}
