package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

type jsoncConfig struct {
	Input    *jsoncInput    `json:"input"`
	Output   *jsoncOutput   `json:"output"`
	Font     *jsoncFont     `json:"font"`
	Box      *jsoncBox      `json:"box"`
	Timing   *jsoncTiming   `json:"timing"`
	Deck     *jsoncDeck     `json:"deck"`
	Progress *jsoncProgress `json:"progress"`
}

type jsoncInput struct {
	Path  *string `json:"path"`
	Sheet *string `json:"sheet"`
}

type jsoncOutput struct {
	Path *string `json:"path"`
}

type jsoncFont struct {
	Name             *string  `json:"name"`
	File             *string  `json:"file"`
	MaxSize          *int     `json:"max_size"`
	MinSize          *int     `json:"min_size"`
	Bold             *bool    `json:"bold"`
	Color            *string  `json:"color"`
	CharWidthFactor  *float64 `json:"char_width_factor"`
	LineHeightFactor *float64 `json:"line_height_factor"`
}

type jsoncBox struct {
	LeftIn      *float64 `json:"left_in"`
	TopIn       *float64 `json:"top_in"`
	WidthIn     *float64 `json:"width_in"`
	HeightIn    *float64 `json:"height_in"`
	MarginRatio *float64 `json:"margin_ratio"`
}

type jsoncTiming struct {
	AutoAdvanceSeconds *float64 `json:"auto_advance_seconds"`
	DisableMouseClick  *bool    `json:"disable_mouse_click"`
}

type jsoncDeck struct {
	RandomizeOrder *bool  `json:"randomize_order"`
	Seed           *int64 `json:"seed"`
}

type jsoncProgress struct {
	Every  *int `json:"every"`
	FirstN *int `json:"first_n"`
}

func parseJSONC(content string, base Config) (Config, []Warning, error) {
	normalized, err := normalizeJSONC(content)
	if err != nil {
		return Config{}, nil, err
	}

	decoder := json.NewDecoder(strings.NewReader(normalized))
	decoder.DisallowUnknownFields()

	var payload jsoncConfig
	if err := decoder.Decode(&payload); err != nil {
		return Config{}, nil, wrapJSONDecodeError(normalized, err)
	}
	if err := ensureSingleJSONValue(decoder); err != nil {
		return Config{}, nil, wrapJSONDecodeError(normalized, err)
	}

	cfg := base
	payload.applyTo(&cfg)

	warnings, err := Validate(cfg)
	if err != nil {
		return Config{}, nil, err
	}
	return cfg, warnings, nil
}

func (payload jsoncConfig) applyTo(cfg *Config) {
	if payload.Input != nil {
		if payload.Input.Path != nil {
			cfg.Input.Path = strings.TrimSpace(*payload.Input.Path)
		}
		if payload.Input.Sheet != nil {
			cfg.Input.Sheet = strings.TrimSpace(*payload.Input.Sheet)
		}
	}

	if payload.Output != nil && payload.Output.Path != nil {
		cfg.Output.Path = strings.TrimSpace(*payload.Output.Path)
	}

	if payload.Font != nil {
		if payload.Font.Name != nil {
			cfg.Font.Name = strings.TrimSpace(*payload.Font.Name)
		}
		if payload.Font.File != nil {
			cfg.Font.File = strings.TrimSpace(*payload.Font.File)
		}
		if payload.Font.MaxSize != nil {
			cfg.Font.MaxSize = *payload.Font.MaxSize
		}
		if payload.Font.MinSize != nil {
			cfg.Font.MinSize = *payload.Font.MinSize
		}
		if payload.Font.Bold != nil {
			cfg.Font.Bold = *payload.Font.Bold
		}
		if payload.Font.Color != nil {
			cfg.Font.ColorRGB = strings.TrimPrefix(strings.TrimSpace(*payload.Font.Color), "#")
		}
		if payload.Font.CharWidthFactor != nil {
			cfg.Font.CharWidthFactor = *payload.Font.CharWidthFactor
		}
		if payload.Font.LineHeightFactor != nil {
			cfg.Font.LineHeightFactor = *payload.Font.LineHeightFactor
		}
	}

	if payload.Box != nil {
		if payload.Box.LeftIn != nil {
			cfg.Box.LeftIn = *payload.Box.LeftIn
		}
		if payload.Box.TopIn != nil {
			cfg.Box.TopIn = *payload.Box.TopIn
		}
		if payload.Box.WidthIn != nil {
			cfg.Box.WidthIn = *payload.Box.WidthIn
		}
		if payload.Box.HeightIn != nil {
			cfg.Box.HeightIn = *payload.Box.HeightIn
		}
		if payload.Box.MarginRatio != nil {
			cfg.Box.MarginRatio = *payload.Box.MarginRatio
		}
	}

	if payload.Timing != nil {
		if payload.Timing.AutoAdvanceSeconds != nil {
			cfg.Timing.AutoAdvanceSeconds = *payload.Timing.AutoAdvanceSeconds
		}
		if payload.Timing.DisableMouseClick != nil {
			cfg.Timing.DisableMouseClick = *payload.Timing.DisableMouseClick
		}
	}

	if payload.Deck != nil {
		if payload.Deck.RandomizeOrder != nil {
			cfg.Deck.RandomizeOrder = *payload.Deck.RandomizeOrder
		}
		if payload.Deck.Seed != nil {
			cfg.Deck.Seed = *payload.Deck.Seed
		}
	}

	if payload.Progress != nil {
		if payload.Progress.Every != nil {
			cfg.Progress.Every = *payload.Progress.Every
		}
		if payload.Progress.FirstN != nil {
			cfg.Progress.FirstN = *payload.Progress.FirstN
		}
	}
}

func normalizeJSONC(content string) (string, error) {
	withoutComments, err := stripJSONCComments(content)
	if err != nil {
		return "", err
	}
	return stripJSONCTrailingCommas(withoutComments), nil
}

func stripJSONCComments(content string) (string, error) {
	var out strings.Builder
	out.Grow(len(content))

	inString := false
	escape := false
	lineComment := false
	blockComment := false

	for i := 0; i < len(content); i++ {
		ch := content[i]

		if lineComment {
			if ch == '\n' || ch == '\r' {
				lineComment = false
				out.WriteByte(ch)
				continue
			}
			out.WriteByte(' ')
			continue
		}

		if blockComment {
			if ch == '*' && i+1 < len(content) && content[i+1] == '/' {
				blockComment = false
				out.WriteString("  ")
				i++
				continue
			}
			if ch == '\n' || ch == '\r' || ch == '\t' {
				out.WriteByte(ch)
			} else {
				out.WriteByte(' ')
			}
			continue
		}

		if inString {
			out.WriteByte(ch)
			if escape {
				escape = false
				continue
			}
			if ch == '\\' {
				escape = true
				continue
			}
			if ch == '"' {
				inString = false
			}
			continue
		}

		if ch == '"' {
			inString = true
			out.WriteByte(ch)
			continue
		}

		if ch == '/' && i+1 < len(content) {
			next := content[i+1]
			if next == '/' {
				lineComment = true
				out.WriteString("  ")
				i++
				continue
			}
			if next == '*' {
				blockComment = true
				out.WriteString("  ")
				i++
				continue
			}
		}

		out.WriteByte(ch)
	}

	if blockComment {
		return "", fmt.Errorf("unterminated block comment in JSONC")
	}

	return out.String(), nil
}

func stripJSONCTrailingCommas(content string) string {
	var out strings.Builder
	out.Grow(len(content))

	inString := false
	escape := false

	for i := 0; i < len(content); i++ {
		ch := content[i]

		if inString {
			out.WriteByte(ch)
			if escape {
				escape = false
				continue
			}
			if ch == '\\' {
				escape = true
				continue
			}
			if ch == '"' {
				inString = false
			}
			continue
		}

		if ch == '"' {
			inString = true
			out.WriteByte(ch)
			continue
		}

		if ch == ',' {
			j := i + 1
			for j < len(content) && isJSONWhitespace(content[j]) {
				j++
			}
			if j < len(content) && (content[j] == '}' || content[j] == ']') {
				continue
			}
		}

		out.WriteByte(ch)
	}

	return out.String()
}

func isJSONWhitespace(ch byte) bool {
	switch ch {
	case ' ', '\n', '\r', '\t':
		return true
	default:
		return false
	}
}

func ensureSingleJSONValue(decoder *json.Decoder) error {
	var extra struct{}
	err := decoder.Decode(&extra)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err == nil {
		return fmt.Errorf("multiple JSON values are not allowed")
	}
	return err
}

func wrapJSONDecodeError(content string, err error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, col := offsetToLineCol(content, syntaxErr.Offset)
		return fmt.Errorf("line %d column %d: %w", line, col, err)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		line, col := offsetToLineCol(content, typeErr.Offset)
		return fmt.Errorf("line %d column %d: %w", line, col, err)
	}

	return err
}

func offsetToLineCol(content string, offset int64) (int, int) {
	if offset <= 0 {
		return 1, 1
	}

	limit := int(offset)
	if limit > len(content) {
		limit = len(content)
	}

	line := 1
	col := 1
	for i := 0; i < limit-1; i++ {
		if content[i] == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}
