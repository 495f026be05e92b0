package docx

import (
	"fmt"

	"github.com/tsawler/snapdoc/model"
)

// Static package parts of a minimal DOCX archive.
const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
  <Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
</Types>`

const rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

// stylesTemplate is word/styles.xml with the base font name, the body
// size, and the four prominence style sizes (all in half-points)
// substituted in.
const stylesTemplate = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="` + nsW + `">
  <w:docDefaults>
    <w:rPrDefault>
      <w:rPr>
        <w:rFonts w:ascii="%[1]s" w:hAnsi="%[1]s"/>
        <w:sz w:val="%[2]d"/>
        <w:szCs w:val="%[2]d"/>
      </w:rPr>
    </w:rPrDefault>
  </w:docDefaults>
  <w:style w:type="paragraph" w:default="1" w:styleId="Normal">
    <w:name w:val="Normal"/>
  </w:style>
  <w:style w:type="paragraph" w:styleId="Title">
    <w:name w:val="Title"/>
    <w:basedOn w:val="Normal"/>
    <w:rPr><w:b/><w:sz w:val="%[3]d"/><w:szCs w:val="%[3]d"/></w:rPr>
  </w:style>
  <w:style w:type="paragraph" w:styleId="Heading1">
    <w:name w:val="heading 1"/>
    <w:basedOn w:val="Normal"/>
    <w:rPr><w:b/><w:sz w:val="%[4]d"/><w:szCs w:val="%[4]d"/></w:rPr>
  </w:style>
  <w:style w:type="paragraph" w:styleId="Heading2">
    <w:name w:val="heading 2"/>
    <w:basedOn w:val="Normal"/>
    <w:rPr><w:b/><w:sz w:val="%[5]d"/><w:szCs w:val="%[5]d"/></w:rPr>
  </w:style>
  <w:style w:type="paragraph" w:styleId="Heading3">
    <w:name w:val="heading 3"/>
    <w:basedOn w:val="Normal"/>
    <w:rPr><w:b/><w:sz w:val="%[6]d"/><w:szCs w:val="%[6]d"/></w:rPr>
  </w:style>
</w:styles>`

// styleID maps a block level to its paragraph style identifier.
// Body text uses the default Normal style and needs no reference.
func styleID(level model.Level) string {
	switch level {
	case model.LevelTitle:
		return "Title"
	case model.LevelHeading1:
		return "Heading1"
	case model.LevelHeading2:
		return "Heading2"
	case model.LevelHeading3:
		return "Heading3"
	default:
		return ""
	}
}

// stylesXML renders word/styles.xml for the writer configuration
func (w *Writer) stylesXML() string {
	return fmt.Sprintf(stylesTemplate,
		w.config.FontName,
		halfPoints(w.config.BodySize),
		halfPoints(w.config.TitleSize),
		halfPoints(w.config.Heading1Size),
		halfPoints(w.config.Heading2Size),
		halfPoints(w.config.Heading3Size),
	)
}

// halfPoints converts a point size to OOXML half-point units
func halfPoints(points float64) int {
	return int(points*2 + 0.5)
}
