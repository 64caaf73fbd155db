package deck

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/aroth/blitzdeck/internal/config"
	"github.com/aroth/blitzdeck/internal/fit"
)

// ErrNoWords reports an empty word list; no deck can be assembled from it.
var ErrNoWords = errors.New("deck: no words to assemble")

// Summary aggregates the font-size distribution of an assembled deck.
// It is a read-only diagnostic; serialization never consults it.
type Summary struct {
	Total     int
	Adjusted  int         // sized below the configured maximum
	Clamped   int         // could not fit even at the minimum size
	Histogram map[int]int // chosen size -> slide count

	// Coarse buckets relative to the configured maximum size.
	AtMax  int
	Large  int // >= 75% of maximum
	Medium int // >= 50% of maximum
	Small  int // the rest
}

// Assembler builds decks from word lists using a fit engine.
type Assembler struct {
	cfg    config.Config
	engine *fit.Engine
	logger *slog.Logger
}

// NewAssembler wires config, fit engine, and logger into an assembler.
func NewAssembler(cfg config.Config, engine *fit.Engine, logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{cfg: cfg, engine: engine, logger: logger}
}

// Assemble produces one deck from items: input order when randomization is
// off, otherwise a uniformly shuffled copy. The input slice is never
// mutated. Assembly fails fast on invalid config or an empty word list;
// words that cannot fit even at the minimum size are clamped and counted,
// never fatal.
func (a *Assembler) Assemble(items []WordItem, rng *rand.Rand) (Deck, Summary, error) {
	if _, err := config.Validate(a.cfg); err != nil {
		return Deck{}, Summary{}, fmt.Errorf("deck: invalid config: %w", err)
	}
	if len(items) == 0 {
		return Deck{}, Summary{}, ErrNoWords
	}

	ordered := make([]WordItem, len(items))
	copy(ordered, items)
	if a.cfg.Deck.RandomizeOrder {
		if rng == nil {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		rng.Shuffle(len(ordered), func(i, j int) {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		})
	}

	advance := Advance(a.cfg)
	geometry := Geometry(a.cfg)

	d := Deck{Slides: make([]SlideDescriptor, 0, len(ordered))}
	summary := Summary{Total: len(ordered), Histogram: make(map[int]int)}

	for i, item := range ordered {
		res := a.engine.Fit(item.Text)

		d.Slides = append(d.Slides, SlideDescriptor{
			Word:     item.Text,
			FontSize: res.Size,
			Clamped:  res.Clamped,
			Geometry: geometry,
			Advance:  advance,
		})

		summary.record(res, a.cfg.Font.MaxSize)
		a.logProgress(i, item.Text, res)
	}

	return d, summary, nil
}

func (s *Summary) record(res fit.Result, maxSize int) {
	s.Histogram[res.Size]++
	if res.Size < maxSize {
		s.Adjusted++
	}
	if res.Clamped {
		s.Clamped++
	}

	switch {
	case res.Size == maxSize:
		s.AtMax++
	case res.Size*4 >= maxSize*3:
		s.Large++
	case res.Size*2 >= maxSize:
		s.Medium++
	default:
		s.Small++
	}
}

// logProgress reports the first N slides, then every Nth, and every
// clamped word regardless of cadence.
func (a *Assembler) logProgress(index int, word string, res fit.Result) {
	if res.Clamped {
		a.logger.Warn("word exceeds box even at minimum size",
			"slide", index+1, "word", word, "font_size", res.Size)
		return
	}
	if index < a.cfg.Progress.FirstN || index%a.cfg.Progress.Every == 0 {
		a.logger.Info("slide assembled",
			"slide", index+1, "word", word, "font_size", res.Size)
	}
}
