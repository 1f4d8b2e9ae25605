package docx

// Notes:
// - Serialized XML is asserted by substring, not by full-document golden
//   files: attribute order is fixed by struct field order, but whitespace
//   and the set of optional elements are implementation details.
// - We do not validate against the OOXML schema; opening the result in a
//   word processor is covered by manual testing.

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

// savePackage saves doc and returns the package parts keyed by name.
func savePackage(t *testing.T, doc *Document) map[string]string {
	t.Helper()

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("zip.NewReader() error = %v", err)
	}

	parts := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		parts[f.Name] = string(data)
	}
	return parts
}

func assertContains(t *testing.T, part, content, want string) {
	t.Helper()
	if !strings.Contains(content, want) {
		t.Errorf("%s does not contain %q\n%s", part, want, content)
	}
}

func assertNotContains(t *testing.T, part, content, unwanted string) {
	t.Helper()
	if strings.Contains(content, unwanted) {
		t.Errorf("%s unexpectedly contains %q", part, unwanted)
	}
}

// ---------------------------------------------------------------------------
// TestMm - Millimeter conversion
// ---------------------------------------------------------------------------

func TestMm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mm   float64
		want Length
	}{
		{0, 0},
		{25.4, 1440},
		{210, 11906},
		{297, 16838},
		{5, 283},
		{10, 567},
	}

	for _, tt := range tests {
		if got := Mm(tt.mm); got != tt.want {
			t.Errorf("Mm(%v) = %d, want %d", tt.mm, got, tt.want)
		}
	}
}

func TestLength_Millimeters(t *testing.T) {
	t.Parallel()

	if got := Length(1440).Millimeters(); math.Abs(got-25.4) > 1e-9 {
		t.Errorf("Millimeters() = %v, want 25.4", got)
	}
}

// ---------------------------------------------------------------------------
// TestDocument - Object model
// ---------------------------------------------------------------------------

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	doc := New()

	if doc.Section.PageWidth != defaultPageWidth || doc.Section.PageHeight != defaultPageHeight {
		t.Errorf("page = %dx%d, want Letter", doc.Section.PageWidth, doc.Section.PageHeight)
	}
	if doc.Section.HasHeader() || doc.Section.HasFooter() {
		t.Error("new document should have no header or footer")
	}
	if doc.Normal.ID != "Normal" {
		t.Errorf("Normal.ID = %q, want Normal", doc.Normal.ID)
	}
	if len(doc.Body()) != 0 {
		t.Errorf("Body() has %d blocks, want 0", len(doc.Body()))
	}
}

func TestDocument_BodyOrder(t *testing.T) {
	t.Parallel()

	doc := New()
	doc.AddParagraph("one")
	doc.AddPageBreak()
	doc.AddParagraph("")
	doc.AddTable(1, Mm(50), Mm(150))

	body := doc.Body()
	if len(body) != 4 {
		t.Fatalf("Body() has %d blocks, want 4", len(body))
	}

	p0, ok := body[0].(*Paragraph)
	if !ok || p0.Text() != "one" {
		t.Errorf("block 0 = %#v, want paragraph \"one\"", body[0])
	}
	p1, ok := body[1].(*Paragraph)
	if !ok || len(p1.Runs) != 1 || !p1.Runs[0].PageBreak {
		t.Errorf("block 1 = %#v, want page break paragraph", body[1])
	}
	p2, ok := body[2].(*Paragraph)
	if !ok || len(p2.Runs) != 0 {
		t.Errorf("block 2 = %#v, want empty paragraph", body[2])
	}
	tbl, ok := body[3].(*Table)
	if !ok || len(tbl.Rows) != 1 || len(tbl.Rows[0].Cells) != 2 {
		t.Errorf("block 3 = %#v, want 1x2 table", body[3])
	}
}

func TestSection_HeaderFooterCreatedOnce(t *testing.T) {
	t.Parallel()

	var s Section
	h := s.Header()
	if s.Header() != h {
		t.Error("Header() should return the same paragraph on each call")
	}
	if !s.HasHeader() {
		t.Error("HasHeader() = false after Header()")
	}
	if s.HasFooter() {
		t.Error("HasFooter() = true without Footer()")
	}
}

func TestCell_SetText(t *testing.T) {
	t.Parallel()

	tbl := &Table{Widths: []Length{100}}
	row := tbl.AddRow()
	row.Cells[0].SetText("font name")

	if got := row.Cells[0].Paragraphs[0].Text(); got != "font name" {
		t.Errorf("cell text = %q, want %q", got, "font name")
	}
	if row.Cells[0].Width != 100 {
		t.Errorf("cell width = %d, want 100", row.Cells[0].Width)
	}
}

// ---------------------------------------------------------------------------
// TestEncodeText - Text to run content
// ---------------------------------------------------------------------------

func TestEncodeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []any
	}{
		{"empty", "", nil},
		{"plain", "abc", []any{xText{Value: "abc"}}},
		{"newline", "a\nb", []any{xText{Value: "a"}, xBreak{}, xText{Value: "b"}}},
		{"trailing newline", "a\n", []any{xText{Value: "a"}, xBreak{}}},
		{"tab", "a\tb", []any{xText{Value: "a"}, xTab{}, xText{Value: "b"}}},
		{"leading space preserved", " a", []any{xText{Space: spacePreserve, Value: " a"}}},
		{"control chars dropped", "a\x00\x1bb", []any{xText{Value: "ab"}}},
		{"carriage return", "a\rb", []any{xText{Value: "a"}, xBreak{}, xText{Value: "b"}}},
		{"east asian", "色は匂へど", []any{xText{Value: "色は匂へど"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := encodeText(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("encodeText(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestSave - Package serialization
// ---------------------------------------------------------------------------

func TestSave_NilWriter(t *testing.T) {
	t.Parallel()

	if err := New().Save(nil); !errors.Is(err, ErrNilWriter) {
		t.Errorf("Save(nil) error = %v, want ErrNilWriter", err)
	}
}

func TestSave_MinimalPackage(t *testing.T) {
	t.Parallel()

	parts := savePackage(t, New())

	for _, name := range []string{
		partContentTypes, partPackageRels, partCore, partApp,
		partDocument, partDocumentRels, partStyles, partSettings,
	} {
		if _, ok := parts[name]; !ok {
			t.Errorf("missing part %s", name)
		}
	}
	if _, ok := parts[partHeader]; ok {
		t.Error("header part written without header")
	}

	for name, content := range parts {
		if !strings.HasPrefix(content, "<?xml") {
			t.Errorf("%s lacks XML declaration", name)
		}
		dec := xml.NewDecoder(strings.NewReader(content))
		for {
			if _, err := dec.Token(); err != nil {
				if err != io.EOF {
					t.Errorf("%s is not well-formed: %v", name, err)
				}
				break
			}
		}
	}
}

func TestSave_SectionGeometry(t *testing.T) {
	t.Parallel()

	doc := New()
	doc.Section.PageWidth = Mm(297)
	doc.Section.PageHeight = Mm(210)
	doc.Section.Orientation = Landscape
	doc.Section.TopMargin = Mm(10)
	doc.Section.HeaderDistance = Mm(5)
	doc.Section.Columns = 2

	body := savePackage(t, doc)[partDocument]

	assertContains(t, partDocument, body, `<w:pgSz w:w="16838" w:h="11906" w:orient="landscape">`)
	assertContains(t, partDocument, body, `w:top="567"`)
	assertContains(t, partDocument, body, `w:header="283"`)
	assertContains(t, partDocument, body, `<w:cols w:num="2"`)
}

func TestSave_SingleColumnOmitsNum(t *testing.T) {
	t.Parallel()

	body := savePackage(t, New())[partDocument]
	assertNotContains(t, partDocument, body, `w:num=`)
	assertNotContains(t, partDocument, body, `w:orient=`)
}

func TestSave_ParagraphsAndBreaks(t *testing.T) {
	t.Parallel()

	doc := New()
	doc.AddParagraph("hello")
	doc.AddPageBreak()
	doc.AddParagraph("world\n")

	body := savePackage(t, doc)[partDocument]

	assertContains(t, partDocument, body, `<w:t>hello</w:t>`)
	assertContains(t, partDocument, body, `<w:br w:type="page"></w:br>`)
	assertContains(t, partDocument, body, `<w:t>world</w:t><w:br></w:br>`)

	if i, j := strings.Index(body, "hello"), strings.Index(body, "world"); i < 0 || j < i {
		t.Error("paragraphs are out of order")
	}
}

func TestSave_HeaderWithFields(t *testing.T) {
	t.Parallel()

	doc := New()
	h := doc.Section.Header()
	h.Alignment = AlignRight
	h.AddRun(" [Page ")
	h.AddField("PAGE")

	parts := savePackage(t, doc)

	header, ok := parts[partHeader]
	if !ok {
		t.Fatal("header part missing")
	}
	assertContains(t, partHeader, header, `<w:hdr`)
	assertContains(t, partHeader, header, `<w:jc w:val="right">`)
	assertContains(t, partHeader, header, `<w:t xml:space="preserve"> [Page </w:t>`)
	assertContains(t, partHeader, header, `<w:fldChar w:fldCharType="begin">`)
	assertContains(t, partHeader, header, `<w:instrText xml:space="preserve">PAGE</w:instrText>`)
	assertContains(t, partHeader, header, `<w:fldChar w:fldCharType="end">`)

	assertContains(t, partDocument, parts[partDocument], `<w:headerReference w:type="default" r:id="rId3">`)
	assertContains(t, partDocumentRels, parts[partDocumentRels], `Target="header1.xml"`)
	assertContains(t, partContentTypes, parts[partContentTypes], `/word/header1.xml`)
	if _, ok := parts[partFooter]; ok {
		t.Error("footer part written without footer")
	}
}

func TestSave_Footer(t *testing.T) {
	t.Parallel()

	doc := New()
	doc.Section.Footer().AddRun("footer text")

	parts := savePackage(t, doc)

	assertContains(t, partFooter, parts[partFooter], `<w:ftr`)
	assertContains(t, partDocument, parts[partDocument], `<w:footerReference w:type="default" r:id="rId4">`)
	assertNotContains(t, partDocument, parts[partDocument], `w:headerReference`)
}

func TestSave_NormalStyle(t *testing.T) {
	t.Parallel()

	doc := New()
	doc.Normal.Font = Font{Name: "Lucida Console", EastAsia: "メイリオ", EastAsiaLang: "ja-JP", Size: 10.5}

	styles := savePackage(t, doc)[partStyles]

	assertContains(t, partStyles, styles, `w:styleId="Normal"`)
	assertContains(t, partStyles, styles, `<w:rFonts w:ascii="Lucida Console" w:hAnsi="Lucida Console" w:eastAsia="メイリオ">`)
	assertContains(t, partStyles, styles, `<w:sz w:val="21">`)
	assertContains(t, partStyles, styles, `<w:lang w:eastAsia="ja-JP">`)
}

func TestSave_Table(t *testing.T) {
	t.Parallel()

	doc := New()
	tbl := doc.AddTable(1, Mm(50), Mm(150))
	tbl.Rows[0].Cells[0].SetText("Lucida Console (lc)")
	r := tbl.Rows[0].Cells[1].Paragraphs[0].AddRun("sample")
	r.Font = Font{Name: "Lucida Console"}

	body := savePackage(t, doc)[partDocument]

	assertContains(t, partDocument, body, `<w:tbl>`)
	assertContains(t, partDocument, body, `<w:gridCol w:w="2835"></w:gridCol><w:gridCol w:w="8504"></w:gridCol>`)
	assertContains(t, partDocument, body, `<w:tcW w:w="2835" w:type="dxa">`)
	assertContains(t, partDocument, body, `Lucida Console (lc)`)
	assertContains(t, partDocument, body, `<w:rFonts w:ascii="Lucida Console" w:hAnsi="Lucida Console">`)
}

func TestSave_CoreProperties(t *testing.T) {
	t.Parallel()

	doc := New()
	doc.Properties = CoreProperties{
		Title:   "Notes & <Drafts>",
		Creator: "alnah",
		Created: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	core := savePackage(t, doc)[partCore]

	assertContains(t, partCore, core, `<dc:title>Notes &amp; &lt;Drafts&gt;</dc:title>`)
	assertContains(t, partCore, core, `<dc:creator>alnah</dc:creator>`)
	assertContains(t, partCore, core, `2026-01-02T03:04:05Z`)
}
