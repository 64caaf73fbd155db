package config

import (
	"fmt"
	"strings"
)

// Validate enforces config invariants and returns non-fatal warnings.
func Validate(cfg Config) ([]Warning, error) {
	warnings := make([]Warning, 0)

	if strings.TrimSpace(cfg.Input.Path) == "" {
		return nil, fmt.Errorf("input.path must not be empty")
	}
	if strings.TrimSpace(cfg.Input.Sheet) == "" {
		return nil, fmt.Errorf("input.sheet must not be empty")
	}
	if strings.TrimSpace(cfg.Output.Path) == "" {
		return nil, fmt.Errorf("output.path must not be empty")
	}
	if strings.TrimSpace(cfg.Font.Name) == "" {
		return nil, fmt.Errorf("font.name must not be empty")
	}
	if cfg.Font.MinSize <= 0 {
		return nil, fmt.Errorf("font.min_size must be > 0")
	}
	if cfg.Font.MaxSize < cfg.Font.MinSize {
		return nil, fmt.Errorf("font.max_size must be >= font.min_size")
	}
	if !isHexColor(cfg.Font.ColorRGB) {
		return nil, fmt.Errorf("font.color must be six hex digits (RRGGBB)")
	}
	if cfg.Font.CharWidthFactor <= 0 {
		return nil, fmt.Errorf("font.char_width_factor must be > 0")
	}
	if cfg.Font.LineHeightFactor <= 0 {
		return nil, fmt.Errorf("font.line_height_factor must be > 0")
	}
	if cfg.Box.WidthIn <= 0 {
		return nil, fmt.Errorf("box.width_in must be > 0")
	}
	if cfg.Box.HeightIn <= 0 {
		return nil, fmt.Errorf("box.height_in must be > 0")
	}
	if cfg.Box.LeftIn < 0 {
		return nil, fmt.Errorf("box.left_in must be >= 0")
	}
	if cfg.Box.TopIn < 0 {
		return nil, fmt.Errorf("box.top_in must be >= 0")
	}
	if cfg.Box.MarginRatio < 0 || cfg.Box.MarginRatio >= 1 {
		return nil, fmt.Errorf("box.margin_ratio must be in [0, 1)")
	}
	if cfg.Timing.AutoAdvanceSeconds <= 0 {
		return nil, fmt.Errorf("timing.auto_advance_seconds must be > 0")
	}
	if cfg.Deck.Seed < 0 {
		return nil, fmt.Errorf("deck.seed must be >= 0")
	}
	if cfg.Progress.Every <= 0 {
		return nil, fmt.Errorf("progress.every must be > 0")
	}
	if cfg.Progress.FirstN < 0 {
		return nil, fmt.Errorf("progress.first_n must be >= 0")
	}

	if cfg.Box.MarginRatio > 0.5 {
		warnings = append(warnings, Warning{
			Message: fmt.Sprintf("box.margin_ratio=%.2f leaves less than half the box for text; long words will clamp", cfg.Box.MarginRatio),
		})
	}

	return warnings, nil
}

func isHexColor(s string) bool {
	if len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
