package config

// Default returns the canonical runtime configuration used when no file is present.
func Default() Config {
	return Config{
		Input:  InputConfig{Path: "words.xlsx", Sheet: "Sheet1"},
		Output: OutputConfig{Path: "words_deck.pptx"},
		Font: FontConfig{
			Name:             "DCH-Basisschrift",
			MaxSize:          320,
			MinSize:          20,
			Bold:             true,
			ColorRGB:         "000000",
			CharWidthFactor:  0.6,
			LineHeightFactor: 1.2,
		},
		Box: BoxConfig{
			LeftIn:      0.75,
			TopIn:       1.5,
			WidthIn:     8.5,
			HeightIn:    5.0,
			MarginRatio: 0,
		},
		Timing: TimingConfig{
			AutoAdvanceSeconds: 3,
			DisableMouseClick:  true,
		},
		Deck: DeckConfig{RandomizeOrder: true},
		Progress: ProgressConfig{
			Every:  20,
			FirstN: 10,
		},
	}
}
