// Package text2docx converts plain text to paginated WordprocessingML (.docx)
// documents.
//
// # Quick Start
//
// Read lines from a stream, assemble a document and save it:
//
//	lr, err := text2docx.NewLineReader(os.Stdin, text2docx.InputOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc, err := text2docx.NewAssembler().Assemble(lr.Lines(), text2docx.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := lr.Err(); err != nil {
//	    log.Fatal(err)
//	}
//
//	f, _ := os.Create("output.docx")
//	defer f.Close()
//	doc.Save(f)
//
// # Pagination
//
// A form feed (U+000C) in the input starts a new page. Each page becomes one
// paragraph; pages are separated by a paragraph holding a page break. Use
// Paginate directly to split text without building a document.
//
// # Page Layout
//
// Options selects a preset page size (see PageSizes) or explicit dimensions
// in millimeters, orientation, margins, one to three text columns and the
// default font. Font names are looked up in Fonts and EastAsianFonts; names
// that are not presets are used as given.
//
// # Headers and Footers
//
// Header and footer text is a field code: literal text mixed with {NAME}
// placeholders that the word processor evaluates, such as {PAGE} and
// {NUMPAGES}:
//
//	opts.Header = text2docx.PageNumberTemplate // " [Page {PAGE}/{NUMPAGES}]"
//
// Surrounding spaces choose the alignment: a leading space aligns right, a
// trailing space aligns left, otherwise the text is centered.
//
// # Font Samples
//
// Assembler.Sample renders a table of every font preset for visual checks.
package text2docx
