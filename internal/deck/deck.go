// Package deck assembles fitted words into an ordered presentation deck.
package deck

// WordItem is one input word with its original source position.
type WordItem struct {
	Text    string
	Ordinal int
}

// Anchor positions text along one axis of its box.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorCenter
	AnchorEnd
)

// Box is a rectangle in EMU slide coordinates.
type Box struct {
	LeftEMU   int64
	TopEMU    int64
	WidthEMU  int64
	HeightEMU int64
}

// GeometryDirective places a slide's text region and pins its layout:
// centered on both axes, with wrapping and viewer-side autosizing disabled
// so sizing stays fully engine-computed.
type GeometryDirective struct {
	Frame            Box
	AnchorHorizontal Anchor
	AnchorVertical   Anchor
	WrapEnabled      bool
	AutofitEnabled   bool
	FontName         string
	Bold             bool
	ColorRGB         string
}

// AdvanceDirective is the per-slide timing instruction. One value is built
// per deck and shared by reference across every slide.
type AdvanceDirective struct {
	AfterMillis int
	AllowClick  bool
}

// SlideDescriptor is the semantic content of one rendered slide.
type SlideDescriptor struct {
	Word     string
	FontSize int
	Clamped  bool
	Geometry GeometryDirective
	Advance  *AdvanceDirective
}

// Deck is the ordered, fully assembled presentation. It is built once per
// run and never mutated after assembly.
type Deck struct {
	Slides []SlideDescriptor
}
