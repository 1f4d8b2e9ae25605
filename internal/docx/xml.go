package docx

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// XML namespaces used by the package parts.
const (
	nsW        = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR        = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsCT       = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsPkgRels  = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsCP       = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsDC       = "http://purl.org/dc/elements/1.1/"
	nsDCTerms  = "http://purl.org/dc/terms/"
	nsXSI      = "http://www.w3.org/2001/XMLSchema-instance"
	nsExtended = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"

	spacePreserve = "preserve"
)

// Element and attribute names carry their prefix literally; encoding/xml
// writes them verbatim, which keeps the output in the w: form word
// processors expect.

type xVal struct {
	Val string `xml:"w:val,attr"`
}

type xDocument struct {
	XMLName xml.Name `xml:"w:document"`
	W       string   `xml:"xmlns:w,attr"`
	R       string   `xml:"xmlns:r,attr"`
	Body    xBody    `xml:"w:body"`
}

type xBody struct {
	Content []any
	SectPr  xSectPr `xml:"w:sectPr"`
}

type xHdrFtr struct {
	XMLName xml.Name
	W       string `xml:"xmlns:w,attr"`
	R       string `xml:"xmlns:r,attr"`
	P       xParagraph
}

type xSectPr struct {
	HeaderRef *xHdrFtrRef `xml:"w:headerReference"`
	FooterRef *xHdrFtrRef `xml:"w:footerReference"`
	PgSz      xPgSz       `xml:"w:pgSz"`
	PgMar     xPgMar      `xml:"w:pgMar"`
	Cols      xCols       `xml:"w:cols"`
	DocGrid   xDocGrid    `xml:"w:docGrid"`
}

type xHdrFtrRef struct {
	Type string `xml:"w:type,attr"`
	ID   string `xml:"r:id,attr"`
}

type xPgSz struct {
	W      int64  `xml:"w:w,attr"`
	H      int64  `xml:"w:h,attr"`
	Orient string `xml:"w:orient,attr,omitempty"`
}

type xPgMar struct {
	Top    int64 `xml:"w:top,attr"`
	Right  int64 `xml:"w:right,attr"`
	Bottom int64 `xml:"w:bottom,attr"`
	Left   int64 `xml:"w:left,attr"`
	Header int64 `xml:"w:header,attr"`
	Footer int64 `xml:"w:footer,attr"`
	Gutter int64 `xml:"w:gutter,attr"`
}

type xCols struct {
	Num   int   `xml:"w:num,attr,omitempty"`
	Space int64 `xml:"w:space,attr"`
}

type xDocGrid struct {
	LinePitch int `xml:"w:linePitch,attr"`
}

type xParagraph struct {
	XMLName xml.Name `xml:"w:p"`
	PPr     *xPPr    `xml:"w:pPr"`
	Runs    []xRun
}

type xPPr struct {
	Jc xVal `xml:"w:jc"`
}

type xRun struct {
	XMLName xml.Name `xml:"w:r"`
	RPr     *xRPr    `xml:"w:rPr"`
	Content []any
}

type xRPr struct {
	Fonts *xFonts `xml:"w:rFonts"`
	Sz    *xVal   `xml:"w:sz"`
	SzCs  *xVal   `xml:"w:szCs"`
	Lang  *xLang  `xml:"w:lang"`
}

type xFonts struct {
	ASCII    string `xml:"w:ascii,attr,omitempty"`
	HAnsi    string `xml:"w:hAnsi,attr,omitempty"`
	EastAsia string `xml:"w:eastAsia,attr,omitempty"`
}

type xLang struct {
	EastAsia string `xml:"w:eastAsia,attr"`
}

type xText struct {
	XMLName xml.Name `xml:"w:t"`
	Space   string   `xml:"xml:space,attr,omitempty"`
	Value   string   `xml:",chardata"`
}

type xBreak struct {
	XMLName xml.Name `xml:"w:br"`
	Type    string   `xml:"w:type,attr,omitempty"`
}

type xTab struct {
	XMLName xml.Name `xml:"w:tab"`
}

type xFldChar struct {
	XMLName xml.Name `xml:"w:fldChar"`
	Type    string   `xml:"w:fldCharType,attr"`
}

type xInstrText struct {
	XMLName xml.Name `xml:"w:instrText"`
	Space   string   `xml:"xml:space,attr"`
	Value   string   `xml:",chardata"`
}

type xTable struct {
	XMLName xml.Name `xml:"w:tbl"`
	TblPr   xTblPr   `xml:"w:tblPr"`
	Grid    []xWidth `xml:"w:tblGrid>w:gridCol"`
	Rows    []xRow   `xml:"w:tr"`
}

type xTblPr struct {
	TblW    xWidth     `xml:"w:tblW"`
	Borders xTblBorder `xml:"w:tblBorders"`
	Layout  xTblLayout `xml:"w:tblLayout"`
}

type xTblBorder struct {
	Top     xBorder `xml:"w:top"`
	Left    xBorder `xml:"w:left"`
	Bottom  xBorder `xml:"w:bottom"`
	Right   xBorder `xml:"w:right"`
	InsideH xBorder `xml:"w:insideH"`
	InsideV xBorder `xml:"w:insideV"`
}

type xBorder struct {
	Val   string `xml:"w:val,attr"`
	Sz    int    `xml:"w:sz,attr"`
	Space int    `xml:"w:space,attr"`
	Color string `xml:"w:color,attr"`
}

type xTblLayout struct {
	Type string `xml:"w:type,attr"`
}

type xWidth struct {
	W    int64  `xml:"w:w,attr"`
	Type string `xml:"w:type,attr,omitempty"`
}

type xRow struct {
	Cells []xCell `xml:"w:tc"`
}

type xCell struct {
	TcPr       xTcPr        `xml:"w:tcPr"`
	Paragraphs []xParagraph `xml:"w:p"`
}

type xTcPr struct {
	TcW xWidth `xml:"w:tcW"`
}

type xStyles struct {
	XMLName     xml.Name      `xml:"w:styles"`
	W           string        `xml:"xmlns:w,attr"`
	DocDefaults xDocDefaults  `xml:"w:docDefaults"`
	Styles      []xStyleEntry `xml:"w:style"`
}

type xDocDefaults struct {
	RPr xRPr `xml:"w:rPrDefault>w:rPr"`
}

type xStyleEntry struct {
	Type    string    `xml:"w:type,attr"`
	Default string    `xml:"w:default,attr,omitempty"`
	StyleID string    `xml:"w:styleId,attr"`
	Name    xVal      `xml:"w:name"`
	QFormat *struct{} `xml:"w:qFormat"`
	RPr     *xRPr     `xml:"w:rPr"`
}

type xSettings struct {
	XMLName        xml.Name `xml:"w:settings"`
	W              string   `xml:"xmlns:w,attr"`
	DefaultTabStop xVal     `xml:"w:defaultTabStop"`
	Compat         xCompat  `xml:"w:compat"`
}

type xCompat struct {
	Settings []xCompatSetting `xml:"w:compatSetting"`
}

type xCompatSetting struct {
	Name string `xml:"w:name,attr"`
	URI  string `xml:"w:uri,attr"`
	Val  string `xml:"w:val,attr"`
}

// encodeRunProps converts a Font to w:rPr, or nil when nothing is set.
func encodeRunProps(f Font) *xRPr {
	if f.isZero() {
		return nil
	}
	rpr := &xRPr{}
	if f.Name != "" || f.EastAsia != "" {
		rpr.Fonts = &xFonts{ASCII: f.Name, HAnsi: f.Name, EastAsia: f.EastAsia}
	}
	if f.Size > 0 {
		sz := strconv.Itoa(halfPoints(f.Size))
		rpr.Sz = &xVal{Val: sz}
		rpr.SzCs = &xVal{Val: sz}
	}
	if f.EastAsiaLang != "" {
		rpr.Lang = &xLang{EastAsia: f.EastAsiaLang}
	}
	return rpr
}

func encodeParagraph(p *Paragraph) xParagraph {
	xp := xParagraph{}
	if p.Alignment != AlignInherit {
		xp.PPr = &xPPr{Jc: xVal{Val: string(p.Alignment)}}
	}
	for _, r := range p.Runs {
		xp.Runs = append(xp.Runs, encodeRun(r))
	}
	return xp
}

func encodeRun(r *Run) xRun {
	xr := xRun{RPr: encodeRunProps(r.Font)}
	switch {
	case r.PageBreak:
		xr.Content = []any{xBreak{Type: "page"}}
	case r.Field != "":
		xr.Content = []any{
			xFldChar{Type: "begin"},
			xInstrText{Space: spacePreserve, Value: r.Field},
			xFldChar{Type: "end"},
		}
	default:
		xr.Content = encodeText(r.Text)
	}
	return xr
}

// encodeText splits text into w:t, w:br and w:tab elements.
// Characters that XML 1.0 cannot represent are dropped.
func encodeText(text string) []any {
	var content []any
	var buf strings.Builder
	flush := func() {
		if buf.Len() == 0 {
			return
		}
		t := xText{Value: buf.String()}
		if needsPreserve(t.Value) {
			t.Space = spacePreserve
		}
		content = append(content, t)
		buf.Reset()
	}
	for _, r := range text {
		switch {
		case r == '\n' || r == '\r':
			flush()
			content = append(content, xBreak{})
		case r == '\t':
			flush()
			content = append(content, xTab{})
		case isXMLChar(r):
			buf.WriteRune(r)
		}
	}
	flush()
	return content
}

// needsPreserve reports whether leading/trailing spaces must be kept.
func needsPreserve(s string) bool {
	return s != strings.TrimSpace(s)
}

// isXMLChar reports whether r is allowed in XML 1.0 character data.
func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		(r >= 0x20 && r <= 0xD7FF) ||
		(r >= 0xE000 && r <= 0xFFFD) ||
		(r >= 0x10000 && r <= 0x10FFFF)
}

func encodeTable(t *Table) xTable {
	single := xBorder{Val: "single", Sz: 4, Space: 0, Color: "auto"}
	xt := xTable{
		TblPr: xTblPr{
			TblW: xWidth{W: 0, Type: "auto"},
			Borders: xTblBorder{
				Top: single, Left: single, Bottom: single, Right: single,
				InsideH: single, InsideV: single,
			},
			Layout: xTblLayout{Type: "fixed"},
		},
	}
	for _, w := range t.Widths {
		xt.Grid = append(xt.Grid, xWidth{W: int64(w)})
	}
	for _, row := range t.Rows {
		xr := xRow{}
		for _, c := range row.Cells {
			xc := xCell{TcPr: xTcPr{TcW: xWidth{W: int64(c.Width), Type: "dxa"}}}
			for _, p := range c.Paragraphs {
				xc.Paragraphs = append(xc.Paragraphs, encodeParagraph(p))
			}
			if len(xc.Paragraphs) == 0 {
				xc.Paragraphs = []xParagraph{{}}
			}
			xr.Cells = append(xr.Cells, xc)
		}
		xt.Rows = append(xt.Rows, xr)
	}
	return xt
}

func encodeSection(s *Section) xSectPr {
	sp := xSectPr{
		PgSz: xPgSz{W: int64(s.PageWidth), H: int64(s.PageHeight)},
		PgMar: xPgMar{
			Top:    int64(s.TopMargin),
			Right:  int64(s.RightMargin),
			Bottom: int64(s.BottomMargin),
			Left:   int64(s.LeftMargin),
			Header: int64(s.HeaderDistance),
			Footer: int64(s.FooterDistance),
		},
		Cols:    xCols{Space: int64(s.ColumnSpacing)},
		DocGrid: xDocGrid{LinePitch: 360},
	}
	if s.Orientation == Landscape {
		sp.PgSz.Orient = Landscape.String()
	}
	if s.Columns > 1 {
		sp.Cols.Num = s.Columns
	}
	if s.HasHeader() {
		sp.HeaderRef = &xHdrFtrRef{Type: "default", ID: relIDHeader}
	}
	if s.HasFooter() {
		sp.FooterRef = &xHdrFtrRef{Type: "default", ID: relIDFooter}
	}
	return sp
}

func encodeDocument(d *Document) xDocument {
	xd := xDocument{W: nsW, R: nsR}
	for _, b := range d.body {
		switch b := b.(type) {
		case *Paragraph:
			xd.Body.Content = append(xd.Body.Content, encodeParagraph(b))
		case *Table:
			xd.Body.Content = append(xd.Body.Content, encodeTable(b))
		}
	}
	xd.Body.SectPr = encodeSection(&d.Section)
	return xd
}

func encodeHdrFtr(name string, p *Paragraph) xHdrFtr {
	return xHdrFtr{
		XMLName: xml.Name{Local: name},
		W:       nsW,
		R:       nsR,
		P:       encodeParagraph(p),
	}
}

func encodeStyles(d *Document) xStyles {
	normal := encodeRunProps(d.Normal.Font)
	return xStyles{
		W: nsW,
		DocDefaults: xDocDefaults{RPr: docDefaultRunProps(d.Normal.Font)},
		Styles: []xStyleEntry{
			{
				Type:    "paragraph",
				Default: "1",
				StyleID: d.Normal.ID,
				Name:    xVal{Val: d.Normal.Name},
				QFormat: &struct{}{},
				RPr:     normal,
			},
		},
	}
}

// docDefaultRunProps records the East-Asian language for the whole document
// so that text outside the Normal style is shaped with it too.
func docDefaultRunProps(f Font) xRPr {
	if f.EastAsiaLang == "" {
		return xRPr{}
	}
	return xRPr{Lang: &xLang{EastAsia: f.EastAsiaLang}}
}

func encodeSettings() xSettings {
	return xSettings{
		W:              nsW,
		DefaultTabStop: xVal{Val: "720"},
		Compat: xCompat{Settings: []xCompatSetting{{
			Name: "compatibilityMode",
			URI:  "http://schemas.microsoft.com/office/word",
			Val:  "15",
		}}},
	}
}
