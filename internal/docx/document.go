package docx

import (
	"strings"
	"time"
)

// Orientation is the page orientation of a section.
type Orientation int

// Page orientations.
const (
	Portrait Orientation = iota
	Landscape
)

// String returns the WordprocessingML value of the orientation.
func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// Alignment is a paragraph justification value (w:jc).
type Alignment string

// Paragraph alignments. The zero value inherits from the style.
const (
	AlignInherit Alignment = ""
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
)

// Default geometry of a new document (US Letter, one inch margins), matching
// what word processors use for a blank document.
const (
	defaultPageWidth      Length = 12240
	defaultPageHeight     Length = 15840
	defaultMargin         Length = 1440
	defaultHeaderDistance Length = 720
	defaultColumnSpacing  Length = 720
)

// Section holds page geometry and running header/footer for the document body.
type Section struct {
	PageWidth      Length
	PageHeight     Length
	Orientation    Orientation
	TopMargin      Length
	BottomMargin   Length
	LeftMargin     Length
	RightMargin    Length
	HeaderDistance Length
	FooterDistance Length

	// Columns is the number of text columns; 0 and 1 both mean a single column.
	Columns       int
	ColumnSpacing Length

	header *Paragraph
	footer *Paragraph
}

// Header returns the paragraph of the section's default header, creating an
// empty header on first use.
func (s *Section) Header() *Paragraph {
	if s.header == nil {
		s.header = &Paragraph{}
	}
	return s.header
}

// Footer returns the paragraph of the section's default footer, creating an
// empty footer on first use.
func (s *Section) Footer() *Paragraph {
	if s.footer == nil {
		s.footer = &Paragraph{}
	}
	return s.footer
}

// HasHeader reports whether a header was created.
func (s *Section) HasHeader() bool { return s.header != nil }

// HasFooter reports whether a footer was created.
func (s *Section) HasFooter() bool { return s.footer != nil }

// Font describes run-level font properties. Zero fields inherit.
type Font struct {
	Name         string  // Latin-script font (w:ascii, w:hAnsi)
	EastAsia     string  // East-Asian font (w:eastAsia)
	EastAsiaLang string  // BCP 47 language tag for East-Asian text
	Size         float64 // points
}

func (f Font) isZero() bool {
	return f == Font{}
}

// Style is a named paragraph style.
type Style struct {
	ID   string
	Name string
	Font Font
}

// CoreProperties is the document metadata stored in docProps/core.xml.
type CoreProperties struct {
	Title   string
	Creator string
	Created time.Time
}

// Block is a body-level element: *Paragraph or *Table.
type Block interface {
	block()
}

// Run is a span of text sharing the same properties.
// Exactly one of Text, Field or PageBreak is meaningful.
type Run struct {
	Text      string
	Field     string // field instruction, e.g. "PAGE"
	PageBreak bool
	Font      Font
}

// Paragraph is a sequence of runs.
type Paragraph struct {
	Alignment Alignment
	Runs      []*Run
}

func (*Paragraph) block() {}

// AddRun appends a text run. Newlines become line breaks and tabs become tab
// characters when the document is saved.
func (p *Paragraph) AddRun(text string) *Run {
	r := &Run{Text: text}
	p.Runs = append(p.Runs, r)
	return r
}

// AddField appends a field run evaluated by the word processor.
func (p *Paragraph) AddField(instr string) *Run {
	r := &Run{Field: instr}
	p.Runs = append(p.Runs, r)
	return r
}

// Text returns the concatenated literal text of the paragraph's runs.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Table is a grid of cells with fixed column widths.
type Table struct {
	Widths []Length
	Rows   []*Row
}

func (*Table) block() {}

// AddRow appends a row with one empty cell per column.
func (t *Table) AddRow() *Row {
	row := &Row{Cells: make([]*Cell, len(t.Widths))}
	for i, w := range t.Widths {
		row.Cells[i] = &Cell{Width: w, Paragraphs: []*Paragraph{{}}}
	}
	t.Rows = append(t.Rows, row)
	return row
}

// Row is a table row.
type Row struct {
	Cells []*Cell
}

// Cell is a table cell. A cell always holds at least one paragraph.
type Cell struct {
	Width      Length
	Paragraphs []*Paragraph
}

// SetText replaces the cell content with a single paragraph of text.
func (c *Cell) SetText(text string) {
	p := &Paragraph{}
	p.AddRun(text)
	c.Paragraphs = []*Paragraph{p}
}

// Document is an in-memory WordprocessingML document.
type Document struct {
	Section    Section
	Normal     Style
	Properties CoreProperties

	body []Block
}

// New returns an empty document with US Letter geometry and a Normal style.
func New() *Document {
	return &Document{
		Section: Section{
			PageWidth:      defaultPageWidth,
			PageHeight:     defaultPageHeight,
			TopMargin:      defaultMargin,
			BottomMargin:   defaultMargin,
			LeftMargin:     defaultMargin,
			RightMargin:    defaultMargin,
			HeaderDistance: defaultHeaderDistance,
			FooterDistance: defaultHeaderDistance,
			ColumnSpacing:  defaultColumnSpacing,
		},
		Normal: Style{ID: "Normal", Name: "Normal"},
	}
}

// Body returns the body elements in document order.
func (d *Document) Body() []Block {
	return d.body
}

// AddParagraph appends a paragraph holding text as a single run.
// An empty text yields an empty paragraph.
func (d *Document) AddParagraph(text string) *Paragraph {
	p := &Paragraph{}
	if text != "" {
		p.AddRun(text)
	}
	d.body = append(d.body, p)
	return p
}

// AddPageBreak appends a paragraph containing only a page break.
func (d *Document) AddPageBreak() *Paragraph {
	p := &Paragraph{Runs: []*Run{{PageBreak: true}}}
	d.body = append(d.body, p)
	return p
}

// AddTable appends a table with the given column widths and number of rows.
func (d *Document) AddTable(rows int, widths ...Length) *Table {
	t := &Table{Widths: widths}
	for range rows {
		t.AddRow()
	}
	d.body = append(d.body, t)
	return t
}
