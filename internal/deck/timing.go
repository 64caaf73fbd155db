package deck

import (
	"math"

	"github.com/aroth/blitzdeck/internal/config"
)

// Advance builds the shared advance directive: advance automatically after
// the configured delay, suppressing click advance when configured. The
// returned pointer is attached to every slide in the deck so unattended
// playback never stalls on a slide that missed the directive.
func Advance(cfg config.Config) *AdvanceDirective {
	return &AdvanceDirective{
		AfterMillis: int(math.Round(cfg.Timing.AutoAdvanceSeconds * 1000)),
		AllowClick:  !cfg.Timing.DisableMouseClick,
	}
}
