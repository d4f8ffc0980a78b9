// Package pdfgen renders print-oriented layouts. A layout is a tree of
// millimetre-sized sections and nodes; it is rasterized onto an off-screen
// pixel surface and the resulting bitmap is embedded into an A4 PDF. The
// package knows nothing about prescriptions; callers compose documents from
// their own domain data.
package pdfgen

// Align is horizontal text alignment within a section.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Node is a single visual element of a section.
type Node interface {
	node()
}

// Text is a line of text, optionally wrapped across the section width.
type Text struct {
	S      string
	SizePt float64
	Bold   bool
	Align  Align
	Wrap   bool
}

// KeyValue prints a left-aligned key and a right-aligned value on one line.
type KeyValue struct {
	Key    string
	Value  string
	SizePt float64
	Bold   bool
}

// Table is a bordered grid with a shaded header row. All cells are centered.
type Table struct {
	Header []string
	Rows   [][]string
	SizePt float64
}

// Spacer inserts vertical whitespace.
type Spacer struct {
	MM float64
}

// Rule is a thin full-width horizontal line.
type Rule struct{}

// CutLine is a dashed tear-off separator with a centered label.
type CutLine struct {
	Label string
}

func (Text) node()     {}
func (KeyValue) node() {}
func (Table) node()    {}
func (Spacer) node()   {}
func (Rule) node()     {}
func (CutLine) node()  {}

// Section is one vertical span of the document with a fixed real-world
// height. Footer nodes render flush with the section bottom, the way a
// financial summary sits at the foot of a slip regardless of how much body
// content precedes it.
type Section struct {
	HeightMM float64
	Nodes    []Node
	Footer   []Node
}

// Document is a linear flow of sections sharing one width.
type Document struct {
	WidthMM  float64
	PadMM    float64
	Sections []Section
}

// HeightMM is the total document height.
func (d *Document) HeightMM() float64 {
	var h float64
	for _, s := range d.Sections {
		h += s.HeightMM
	}
	return h
}
