package text2docx

import (
	"iter"
	"time"

	"github.com/alnah/go-text2docx/internal/docx"
)

// Assembler builds documents from paginated text.
// The zero value is not usable; create with NewAssembler.
type Assembler struct {
	now func() time.Time
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithClock sets the time source used for document creation timestamps.
// Panics if now is nil (programmer error).
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("text2docx: WithClock function must not be nil")
	}
	return func(a *Assembler) {
		a.now = now
	}
}

// NewAssembler creates an Assembler.
func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble validates opts and returns a document with one paragraph per page
// of lines and a page break between pages.
//
// lines is consumed once. Callers reading from a stream should check the
// stream's error after Assemble returns and discard the document on failure.
func (a *Assembler) Assemble(lines iter.Seq[string], opts Options) (*docx.Document, error) {
	doc, err := a.newDocument(opts)
	if err != nil {
		return nil, err
	}

	for chunk := range Paginate(lines, PageBreak) {
		if chunk.Break {
			doc.AddPageBreak()
			continue
		}
		doc.AddParagraph(chunk.Text)
	}

	return doc, nil
}

// newDocument creates a document with section geometry, default style,
// header, footer and properties configured from opts.
func (a *Assembler) newDocument(opts Options) (*docx.Document, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	doc := docx.New()
	if err := configureSection(&doc.Section, &opts); err != nil {
		return nil, err
	}
	doc.Normal.Font = docx.Font{
		Name:         ResolveFont(opts.Font),
		EastAsia:     ResolveEastAsianFont(opts.EastAsianFont),
		EastAsiaLang: opts.eastAsianLangTag(),
		Size:         opts.FontSize,
	}

	if opts.Header != "" {
		applyFieldCode(doc.Section.Header(), opts.Header)
	}
	if opts.Footer != "" {
		applyFieldCode(doc.Section.Footer(), opts.Footer)
	}

	doc.Properties = docx.CoreProperties{
		Title:   opts.Title,
		Creator: opts.Author,
		Created: a.now(),
	}
	return doc, nil
}

func configureSection(s *docx.Section, opts *Options) error {
	width, height, err := opts.Dimensions()
	if err != nil {
		return err
	}

	s.Orientation = docx.Portrait
	if opts.Landscape {
		s.Orientation = docx.Landscape
	}
	s.PageWidth = docx.Mm(width)
	s.PageHeight = docx.Mm(height)

	s.TopMargin = docx.Mm(opts.Margins.Top)
	s.BottomMargin = docx.Mm(opts.Margins.Bottom)
	s.LeftMargin = docx.Mm(opts.Margins.Left)
	s.RightMargin = docx.Mm(opts.Margins.Right)
	s.HeaderDistance = docx.Mm(HeaderFooterDistance)
	s.FooterDistance = docx.Mm(HeaderFooterDistance)

	s.Columns = opts.Columns
	return nil
}
