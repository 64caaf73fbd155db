// Package fit selects the largest font size that keeps a word on one line
// inside a slide's text box.
package fit

import (
	"math"

	"github.com/aroth/blitzdeck/internal/config"
)

// Metrics estimates rendered text extents for a candidate font size.
// Implementations must be pure: identical inputs yield identical outputs.
type Metrics interface {
	// WidthEMU returns the estimated single-line width of word at size points.
	WidthEMU(word string, size int) int64
	// HeightEMU returns the estimated line height at size points.
	HeightEMU(size int) int64
}

// Result is the outcome of one auto-fit search.
type Result struct {
	Size      int   // chosen font size in points, within [MinSize, MaxSize]
	Clamped   bool  // word does not fit even at the minimum size
	WidthEMU  int64 // estimated width at Size
	HeightEMU int64 // estimated height at Size
}

// Engine performs the monotone search over candidate font sizes.
//
// The available extent (box minus margin) is fixed at construction, so the
// per-word path is pure integer arithmetic.
type Engine struct {
	minSize int
	maxSize int
	availW  int64
	availH  int64
	metrics Metrics
}

// New builds an engine for the configured bounds, box, and metrics model.
func New(cfg config.Config, metrics Metrics) *Engine {
	usable := 1 - cfg.Box.MarginRatio
	return &Engine{
		minSize: cfg.Font.MinSize,
		maxSize: cfg.Font.MaxSize,
		availW:  int64(math.Floor(float64(cfg.Box.WidthEMU()) * usable)),
		availH:  int64(math.Floor(float64(cfg.Box.HeightEMU()) * usable)),
		metrics: metrics,
	}
}

// Fit returns the largest size in [MinSize, MaxSize] whose estimated
// extents fit the available box. When even the minimum size does not fit,
// the result is clamped to the minimum and marked accordingly; overflow is
// accepted rather than failing the run.
//
// The fits predicate is monotone in size, so a binary search over the
// range is equivalent to the exhaustive top-down scan.
func (e *Engine) Fit(word string) Result {
	if !e.fits(word, e.minSize) {
		return Result{
			Size:      e.minSize,
			Clamped:   true,
			WidthEMU:  e.metrics.WidthEMU(word, e.minSize),
			HeightEMU: e.metrics.HeightEMU(e.minSize),
		}
	}

	lo, hi := e.minSize, e.maxSize
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if e.fits(word, mid) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return Result{
		Size:      lo,
		WidthEMU:  e.metrics.WidthEMU(word, lo),
		HeightEMU: e.metrics.HeightEMU(lo),
	}
}

func (e *Engine) fits(word string, size int) bool {
	return e.metrics.WidthEMU(word, size) <= e.availW &&
		e.metrics.HeightEMU(size) <= e.availH
}
