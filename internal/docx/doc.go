// Package docx models a minimal WordprocessingML document and serializes it
// as an Office Open XML package (.docx).
//
// The object model covers what a plain-text typesetter needs: one section
// with page geometry, margins, columns and an optional running header and
// footer, a default paragraph style, and a body of paragraphs, page breaks
// and simple tables.
//
//	doc := docx.New()
//	doc.Section.PageWidth = docx.Mm(210)
//	doc.Section.PageHeight = docx.Mm(297)
//	doc.Normal.Font.Size = 12
//	doc.AddParagraph("Hello\nWorld")
//	doc.AddPageBreak()
//	err := doc.Save(w)
//
// Fields such as PAGE and NUMPAGES are written as field codes and evaluated
// by the word processor when the document is rendered.
package docx
