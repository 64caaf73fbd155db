// Package pptx serializes an assembled deck as a minimal OOXML package.
//
// The package writes only what a conforming viewer needs: content types,
// relationship parts, one blank master/layout/theme, and one slide part
// per descriptor. Geometry and timing directives are translated into the
// structural markup the format requires (a:bodyPr, a:pPr, p:transition);
// nothing in here recomputes sizing.
package pptx

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aroth/blitzdeck/internal/deck"
)

// Slide stage in EMU, 4:3 screen (matches the blank-presentation default).
const (
	SlideWidthEMU  = 9144000
	SlideHeightEMU = 6858000
)

// WriteFile serializes the deck to a .pptx file at path, creating parent
// directories as needed.
func WriteFile(path string, d deck.Deck) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	writeErr := Write(f, d)
	closeErr := f.Close()
	if writeErr != nil {
		return writeErr
	}
	return closeErr
}

// Write serializes the deck as a complete PPTX package to w.
func Write(w io.Writer, d deck.Deck) error {
	if len(d.Slides) == 0 {
		return fmt.Errorf("pptx: refusing to write an empty deck")
	}

	zw := zip.NewWriter(w)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML(len(d.Slides))},
		{"_rels/.rels", packageRelsXML},
		{"docProps/core.xml", corePropsXML},
		{"docProps/app.xml", appPropsXML(len(d.Slides))},
		{"ppt/presentation.xml", presentationXML(len(d.Slides))},
		{"ppt/_rels/presentation.xml.rels", presentationRelsXML(len(d.Slides))},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsXML},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayoutXML},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRelsXML},
		{"ppt/theme/theme1.xml", themeXML},
	}
	for i, s := range d.Slides {
		parts = append(parts,
			struct{ name, content string }{
				fmt.Sprintf("ppt/slides/slide%d.xml", i+1), slideXML(s),
			},
			struct{ name, content string }{
				fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1), slideRelsXML,
			},
		)
	}

	for _, part := range parts {
		pw, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("pptx: create part %s: %w", part.name, err)
		}
		if _, err := io.WriteString(pw, part.content); err != nil {
			return fmt.Errorf("pptx: write part %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("pptx: finalize package: %w", err)
	}
	return nil
}
