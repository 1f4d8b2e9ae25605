package text2docx

import (
	"regexp"
	"strings"

	"github.com/alnah/go-text2docx/internal/docx"
)

// PageNumberTemplate is the header used for page numbering.
const PageNumberTemplate = " [Page {PAGE}/{NUMPAGES}]"

// RunKind tells a literal run from a field run.
type RunKind int

// Run kinds.
const (
	LiteralRun RunKind = iota
	FieldRun
)

func (k RunKind) String() string {
	if k == FieldRun {
		return "field"
	}
	return "literal"
}

// Run is one piece of a parsed field code. For a field run, Text is the
// field name without braces.
type Run struct {
	Kind RunKind
	Text string
}

// Literal returns a literal run.
func Literal(text string) Run { return Run{Kind: LiteralRun, Text: text} }

// Field returns a field run.
func Field(name string) Run { return Run{Kind: FieldRun, Text: name} }

// fieldCodeToken matches, in order of preference, a {NAME} placeholder, a
// stretch of brace-free text, or a single stray brace.
var fieldCodeToken = regexp.MustCompile(`\{[\p{L}\p{N}_]+\}|[^{}]+|[{}]`)

// ParseFieldCode splits s into literal and field runs. The runs cover s
// exactly: joining literal text with "{"+name+"}" for fields gives s back.
func ParseFieldCode(s string) []Run {
	tokens := fieldCodeToken.FindAllString(s, -1)
	runs := make([]Run, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) > 2 && tok[0] == '{' && tok[len(tok)-1] == '}' {
			runs = append(runs, Field(tok[1:len(tok)-1]))
			continue
		}
		runs = append(runs, Literal(tok))
	}
	return runs
}

// FieldCodeAlignment derives paragraph alignment from surrounding spaces:
// a leading space only aligns right, a trailing space only aligns left,
// anything else centers.
func FieldCodeAlignment(s string) docx.Alignment {
	leading := strings.HasPrefix(s, " ")
	trailing := strings.HasSuffix(s, " ")
	switch {
	case leading && !trailing:
		return docx.AlignRight
	case trailing && !leading:
		return docx.AlignLeft
	default:
		return docx.AlignCenter
	}
}

// applyFieldCode fills p with the runs of code and sets its alignment.
func applyFieldCode(p *docx.Paragraph, code string) {
	p.Alignment = FieldCodeAlignment(code)
	for _, r := range ParseFieldCode(code) {
		if r.Kind == FieldRun {
			p.AddField(r.Text)
			continue
		}
		p.AddRun(r.Text)
	}
}
