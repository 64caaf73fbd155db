// Package words loads and normalizes the input word list.
package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/aroth/blitzdeck/internal/deck"
)

// ErrNoWords reports a source that yields no usable words.
var ErrNoWords = errors.New("words: source contains no words")

// Load reads the word list at path. ".xlsx" sources read the first column
// of the named sheet, header-less; anything else is read line by line
// (first comma-separated field for ".csv"). Blank entries are dropped and
// ordinals are assigned in source order.
func Load(path, sheet string) ([]deck.WordItem, error) {
	var raw []string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		raw, err = readSpreadsheet(path, sheet)
	default:
		raw, err = readLines(path)
	}
	if err != nil {
		return nil, err
	}

	items := make([]deck.WordItem, 0, len(raw))
	for _, cell := range raw {
		text := Normalize(cell)
		if text == "" {
			continue
		}
		items = append(items, deck.WordItem{Text: text, Ordinal: len(items)})
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoWords, path)
	}
	return items, nil
}

// Normalize collapses interior whitespace and trims the word. An empty
// result means the cell is blank and should be dropped.
func Normalize(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

func readSpreadsheet(path, sheet string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet %q: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q from %q: %w", sheet, path, err)
	}

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		out = append(out, row[0])
	}
	return out, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list %q: %w", path, err)
	}
	defer f.Close()

	isCSV := strings.EqualFold(filepath.Ext(path), ".csv")

	var out []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if isCSV {
			line, _, _ = strings.Cut(line, ",")
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list %q: %w", path, err)
	}
	return out, nil
}
