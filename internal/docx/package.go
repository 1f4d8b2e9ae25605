package docx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"time"
)

// Sentinel errors for package serialization.
var (
	ErrNilWriter = errors.New("docx: nil writer")
	ErrWritePart = errors.New("docx: failed to write package part")
)

// Part names inside the package.
const (
	partContentTypes = "[Content_Types].xml"
	partPackageRels  = "_rels/.rels"
	partCore         = "docProps/core.xml"
	partApp          = "docProps/app.xml"
	partDocument     = "word/document.xml"
	partDocumentRels = "word/_rels/document.xml.rels"
	partStyles       = "word/styles.xml"
	partSettings     = "word/settings.xml"
	partHeader       = "word/header1.xml"
	partFooter       = "word/footer1.xml"
)

// Relationship identifiers from word/document.xml.
const (
	relIDStyles   = "rId1"
	relIDSettings = "rId2"
	relIDHeader   = "rId3"
	relIDFooter   = "rId4"
)

// Relationship and content types.
const (
	relTypeOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeCore           = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relTypeExtended       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relTypeStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relTypeSettings       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/settings"
	relTypeHeader         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/header"
	relTypeFooter         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer"

	ctRels     = "application/vnd.openxmlformats-package.relationships+xml"
	ctXML      = "application/xml"
	ctDocument = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ctStyles   = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	ctSettings = "application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"
	ctHeader   = "application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml"
	ctFooter   = "application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"
	ctCore     = "application/vnd.openxmlformats-package.core-properties+xml"
	ctApp      = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
)

// Application is recorded in docProps/app.xml.
const Application = "go-text2docx"

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

type xTypes struct {
	XMLName   xml.Name    `xml:"Types"`
	Xmlns     string      `xml:"xmlns,attr"`
	Defaults  []xDefault  `xml:"Default"`
	Overrides []xOverride `xml:"Override"`
}

type xDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xRelationships struct {
	XMLName xml.Name        `xml:"Relationships"`
	Xmlns   string          `xml:"xmlns,attr"`
	Rels    []xRelationship `xml:"Relationship"`
}

type xRelationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type xCoreProperties struct {
	XMLName  xml.Name  `xml:"cp:coreProperties"`
	CP       string    `xml:"xmlns:cp,attr"`
	DC       string    `xml:"xmlns:dc,attr"`
	DCTerms  string    `xml:"xmlns:dcterms,attr"`
	XSI      string    `xml:"xmlns:xsi,attr"`
	Title    string    `xml:"dc:title,omitempty"`
	Creator  string    `xml:"dc:creator,omitempty"`
	Created  *xW3CDate `xml:"dcterms:created"`
	Modified *xW3CDate `xml:"dcterms:modified"`
}

type xW3CDate struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

type xAppProperties struct {
	XMLName     xml.Name `xml:"Properties"`
	Xmlns       string   `xml:"xmlns,attr"`
	Application string   `xml:"Application"`
}

// Save serializes the document as a .docx package to w.
func (d *Document) Save(w io.Writer) error {
	if w == nil {
		return ErrNilWriter
	}

	zw := zip.NewWriter(w)
	for _, p := range d.parts() {
		if err := writePart(zw, p.name, p.value, d.Properties.Created); err != nil {
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePart, err)
	}
	return nil
}

type part struct {
	name  string
	value any
}

// parts lists the package parts in write order. [Content_Types].xml comes
// first, as some consumers sniff it.
func (d *Document) parts() []part {
	parts := []part{
		{partContentTypes, d.contentTypes()},
		{partPackageRels, packageRels()},
		{partCore, d.coreProperties()},
		{partApp, xAppProperties{Xmlns: nsExtended, Application: Application}},
		{partDocument, encodeDocument(d)},
		{partDocumentRels, d.documentRels()},
		{partStyles, encodeStyles(d)},
		{partSettings, encodeSettings()},
	}
	if d.Section.HasHeader() {
		parts = append(parts, part{partHeader, encodeHdrFtr("w:hdr", d.Section.header)})
	}
	if d.Section.HasFooter() {
		parts = append(parts, part{partFooter, encodeHdrFtr("w:ftr", d.Section.footer)})
	}
	return parts
}

func writePart(zw *zip.Writer, name string, v any, modified time.Time) error {
	fw, err := zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: modified,
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWritePart, name, err)
	}
	if _, err := io.WriteString(fw, xmlDeclaration); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWritePart, name, err)
	}
	if err := xml.NewEncoder(fw).Encode(v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWritePart, name, err)
	}
	return nil
}

func (d *Document) contentTypes() xTypes {
	t := xTypes{
		Xmlns: nsCT,
		Defaults: []xDefault{
			{Extension: "rels", ContentType: ctRels},
			{Extension: "xml", ContentType: ctXML},
		},
		Overrides: []xOverride{
			{PartName: "/" + partDocument, ContentType: ctDocument},
			{PartName: "/" + partStyles, ContentType: ctStyles},
			{PartName: "/" + partSettings, ContentType: ctSettings},
			{PartName: "/" + partCore, ContentType: ctCore},
			{PartName: "/" + partApp, ContentType: ctApp},
		},
	}
	if d.Section.HasHeader() {
		t.Overrides = append(t.Overrides, xOverride{PartName: "/" + partHeader, ContentType: ctHeader})
	}
	if d.Section.HasFooter() {
		t.Overrides = append(t.Overrides, xOverride{PartName: "/" + partFooter, ContentType: ctFooter})
	}
	return t
}

func packageRels() xRelationships {
	return xRelationships{
		Xmlns: nsPkgRels,
		Rels: []xRelationship{
			{ID: "rId1", Type: relTypeOfficeDocument, Target: partDocument},
			{ID: "rId2", Type: relTypeCore, Target: partCore},
			{ID: "rId3", Type: relTypeExtended, Target: partApp},
		},
	}
}

// documentRels targets are relative to the word/ directory.
func (d *Document) documentRels() xRelationships {
	r := xRelationships{
		Xmlns: nsPkgRels,
		Rels: []xRelationship{
			{ID: relIDStyles, Type: relTypeStyles, Target: "styles.xml"},
			{ID: relIDSettings, Type: relTypeSettings, Target: "settings.xml"},
		},
	}
	if d.Section.HasHeader() {
		r.Rels = append(r.Rels, xRelationship{ID: relIDHeader, Type: relTypeHeader, Target: "header1.xml"})
	}
	if d.Section.HasFooter() {
		r.Rels = append(r.Rels, xRelationship{ID: relIDFooter, Type: relTypeFooter, Target: "footer1.xml"})
	}
	return r
}

func (d *Document) coreProperties() xCoreProperties {
	cp := xCoreProperties{
		CP:      nsCP,
		DC:      nsDC,
		DCTerms: nsDCTerms,
		XSI:     nsXSI,
		Title:   d.Properties.Title,
		Creator: d.Properties.Creator,
	}
	if !d.Properties.Created.IsZero() {
		stamp := d.Properties.Created.UTC().Format(time.RFC3339)
		cp.Created = &xW3CDate{Type: "dcterms:W3CDTF", Value: stamp}
		cp.Modified = &xW3CDate{Type: "dcterms:W3CDTF", Value: stamp}
	}
	return cp
}
