package text2docx

import (
	"fmt"

	"github.com/alnah/go-text2docx/internal/docx"
)

// Sample texts rendered in the font sample table.
const (
	LatinSample     = "The quick brown fox jumps over the lazy dog"
	EastAsianSample = "色は匂へど散りぬるを我が世誰ぞ常ならむ有為の奥山今日越えて浅き夢見し酔ひもせず"
)

// Column widths of the font sample table, in mm.
const (
	sampleNameWidth = 50.0
	sampleTextWidth = 150.0
)

// Sample returns a document holding a table of every font preset rendered
// against a sample sentence. Page, margin and style settings of opts apply as
// for Assemble.
func (a *Assembler) Sample(opts Options) (*docx.Document, error) {
	doc, err := a.newDocument(opts)
	if err != nil {
		return nil, err
	}

	table := doc.AddTable(1, docx.Mm(sampleNameWidth), docx.Mm(sampleTextWidth))
	table.Rows[0].Cells[0].SetText("font name")
	table.Rows[0].Cells[1].SetText("")

	for _, key := range fontOrder {
		name := Fonts[key]
		row := table.AddRow()
		row.Cells[0].SetText(sampleLabel(name, key))
		run := row.Cells[1].Paragraphs[0].AddRun(LatinSample)
		run.Font.Name = name
	}
	for _, key := range eastAsianFontOrder {
		name := EastAsianFonts[key]
		row := table.AddRow()
		row.Cells[0].SetText(sampleLabel(name, key))
		run := row.Cells[1].Paragraphs[0].AddRun(EastAsianSample)
		run.Font.Name = Fonts["lc"]
		run.Font.EastAsia = name
	}

	return doc, nil
}

func sampleLabel(name, key string) string {
	return fmt.Sprintf("%s (%s)", name, key)
}
