package main

import (
	"io"

	text2docx "github.com/alnah/go-text2docx"
	flag "github.com/spf13/pflag"
)

// defaultOutput is the output path when neither flags, env nor config set one.
const defaultOutput = "output.docx"

// defaultMargins is the --margin default, in mm: top, bottom, left, right.
var defaultMargins = []float64{
	text2docx.DefaultMargin,
	text2docx.DefaultMargin,
	text2docx.DefaultMargin,
	text2docx.DefaultMargin,
}

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// outputFlags holds output file and post-save action flags.
type outputFlags struct {
	path   string
	action string
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size      string
	width     float64
	height    float64
	landscape bool
	margin    []float64
	columns   int
}

// fontFlags holds default font flags.
type fontFlags struct {
	size      float64
	name      string
	eastAsian string
	lang      string
}

// headerFooterFlags holds running header and footer flags.
type headerFooterFlags struct {
	pageNumber bool
	header     string
	footer     string
}

// inputFlags holds input decoding flags.
type inputFlags struct {
	raw      bool
	encoding string
}

// documentFlags holds document metadata flags.
type documentFlags struct {
	title  string
	author string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common       commonFlags
	output       outputFlags
	page         pageFlags
	font         fontFlags
	headerFooter headerFooterFlags
	input        inputFlags
	document     documentFlags
	sample       bool

	// changed records flags set on the command line, by long name.
	changed map[string]bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show resolved settings")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.path, "out", "o", defaultOutput, "output file path")
	fs.StringVar(&f.action, "do", "", "action after saving: print, edit, open")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page", "p", text2docx.DefaultPageSize, "page size: a3, b4, a4, b5, a5, hagaki")
	fs.Float64Var(&f.width, "width", 0, "page width in mm (with --height, overrides --page)")
	fs.Float64Var(&f.height, "height", 0, "page height in mm (with --width, overrides --page)")
	fs.BoolVar(&f.landscape, "landscape", false, "swap page width and height")
	fs.Float64SliceVar(&f.margin, "margin", defaultMargins, "margins in mm: top,bottom,left,right")
	fs.IntVar(&f.columns, "col", 0, "number of text columns: 2 or 3")
}

// addFontFlags adds font flags to a FlagSet.
func addFontFlags(fs *flag.FlagSet, f *fontFlags) {
	fs.Float64Var(&f.size, "size", text2docx.DefaultFontSize, "font size in points")
	fs.StringVar(&f.name, "font", text2docx.DefaultFont, "font preset or name")
	fs.StringVar(&f.eastAsian, "eafont", text2docx.DefaultEastAsianFont, "east-Asian font preset or name")
	fs.StringVar(&f.lang, "lang", "", "east-Asian language tag (e.g. ja-JP)")
}

// addHeaderFooterFlags adds header and footer flags to a FlagSet.
func addHeaderFooterFlags(fs *flag.FlagSet, f *headerFooterFlags) {
	fs.BoolVar(&f.pageNumber, "number", false, "page number header")
	fs.StringVar(&f.header, "header", "", "header field code, e.g. \"{PAGE} \"")
	fs.StringVar(&f.footer, "footer", "", "footer field code")
}

// addInputFlags adds input decoding flags to a FlagSet.
func addInputFlags(fs *flag.FlagSet, f *inputFlags) {
	fs.BoolVar(&f.raw, "raw", false, "do not decode input as strict UTF-8")
	fs.StringVar(&f.encoding, "encoding", "", "legacy input encoding, e.g. shift_jis (implies --raw)")
}

// addDocumentFlags adds document metadata flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "document title property")
	fs.StringVar(&f.author, "author", "", "document author property")
}

// newConvertFlagSet registers every convert flag on a new FlagSet bound to f.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("text2docx", flag.ContinueOnError)

	// Flag groups
	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.output)
	addPageFlags(fs, &f.page)
	addFontFlags(fs, &f.font)
	addHeaderFooterFlags(fs, &f.headerFooter)
	addInputFlags(fs, &f.input)
	addDocumentFlags(fs, &f.document)
	fs.BoolVar(&f.sample, "sample", false, "render the font sample table instead of reading input")

	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
// Usage is written to w when -h or --help is given.
func parseConvertFlags(args []string, w io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{changed: make(map[string]bool)}
	fs := newConvertFlagSet(f)
	fs.SetOutput(w)
	fs.Usage = func() { printConvertUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	fs.Visit(func(fl *flag.Flag) {
		f.changed[fl.Name] = true
	})

	return f, fs.Args(), nil
}
