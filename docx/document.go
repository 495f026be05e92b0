// Package docx serializes the structured document model into a Word
// (.docx) file. The writer maps each block's level to a paragraph style
// (Title, Heading 1-3, or body text) and reproduces the source scale by
// carrying the block's estimated font size onto heading runs.
package docx

import "encoding/xml"

// XML namespace used in DOCX files
const nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// documentXML represents the structure of word/document.xml
type documentXML struct {
	XMLName xml.Name `xml:"w:document"`
	XmlnsW  string   `xml:"xmlns:w,attr"`
	Body    bodyXML  `xml:"w:body"`
}

// bodyXML represents the document body
type bodyXML struct {
	Paragraphs []paragraphXML `xml:"w:p"`
	SectPr     sectPrXML      `xml:"w:sectPr"`
}

// paragraphXML represents a paragraph element (<w:p>)
type paragraphXML struct {
	Props *paragraphPropsXML `xml:"w:pPr,omitempty"`
	Runs  []runXML           `xml:"w:r"`
}

// paragraphPropsXML represents paragraph properties (<w:pPr>)
type paragraphPropsXML struct {
	Style   *valXML     `xml:"w:pStyle,omitempty"`
	Spacing *spacingXML `xml:"w:spacing,omitempty"`
}

// valXML represents a single-attribute value element
type valXML struct {
	Val string `xml:"w:val,attr"`
}

// spacingXML represents paragraph spacing in twips
type spacingXML struct {
	Before   int    `xml:"w:before,attr,omitempty"`
	After    int    `xml:"w:after,attr,omitempty"`
	Line     int    `xml:"w:line,attr,omitempty"`
	LineRule string `xml:"w:lineRule,attr,omitempty"`
}

// runXML represents a text run (<w:r>). A run holds either text or a
// line break; field order matters for element order.
type runXML struct {
	Props *runPropsXML `xml:"w:rPr,omitempty"`
	Break *struct{}    `xml:"w:br,omitempty"`
	Text  *textXML     `xml:"w:t,omitempty"`
}

// runPropsXML represents run properties (<w:rPr>)
type runPropsXML struct {
	Bold   *struct{} `xml:"w:b,omitempty"`
	Size   *valXML   `xml:"w:sz,omitempty"`   // half-points
	SizeCs *valXML   `xml:"w:szCs,omitempty"` // half-points, complex scripts
}

// textXML represents run text (<w:t>)
type textXML struct {
	Space string `xml:"xml:space,attr"`
	Value string `xml:",chardata"`
}

// sectPrXML represents section properties (page geometry)
type sectPrXML struct {
	PgMar pgMarXML `xml:"w:pgMar"`
}

// pgMarXML represents page margins in twips
type pgMarXML struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
}
