package encode

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"cvbuilder-backend/docgen/catalog"
	"cvbuilder-backend/docgen/render"
)

// DOCXEncoder emits minimal OOXML wordprocessing documents: a zip package
// with the content-types part, the package relationships, and a generated
// word/document.xml.
type DOCXEncoder struct{}

func (DOCXEncoder) Format() string { return catalog.FormatDOCX }

func (DOCXEncoder) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}

func (DOCXEncoder) Extension() string { return "docx" }

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

// sectionHeadingStyle marks section heading paragraphs so structural
// metadata of the artifact can be matched back to rendered block groups.
const sectionHeadingStyle = "SectionHeading"

// Encode renders the block groups into DOCX bytes.
func (e DOCXEncoder) Encode(doc *render.RenderedDocument) ([]byte, error) {
	documentXML, err := buildDocumentXML(doc)
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	writer := zip.NewWriter(&output)
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/document.xml", documentXML},
	}
	for _, part := range parts {
		dst, err := writer.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
		}
		if _, err := dst.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return output.Bytes(), nil
}

func buildDocumentXML(doc *render.RenderedDocument) (string, error) {
	accent := strings.TrimPrefix(doc.Accent, "#")
	if accent == "" {
		accent = "111827"
	}

	var body strings.Builder
	for _, group := range doc.Groups {
		for _, block := range group.Blocks {
			if err := writeDocxBlock(&body, block, accent); err != nil {
				return "", err
			}
		}
		// Spacer paragraph between groups.
		body.WriteString(`<w:p/>`)
	}

	var out strings.Builder
	out.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	out.WriteString("\n")
	out.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	out.WriteString(body.String())
	out.WriteString(`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/><w:pgMar w:top="1080" w:right="1080" w:bottom="1080" w:left="1080"/></w:sectPr>`)
	out.WriteString(`</w:body></w:document>`)
	return out.String(), nil
}

func writeDocxBlock(out *strings.Builder, block render.Block, accent string) error {
	switch block.Type {
	case render.BlockHeading:
		size := 26
		if block.Scale == render.ScaleTitle {
			size = 40
		}
		color := "111827"
		if block.Accent {
			color = accent
		}
		out.WriteString(`<w:p><w:pPr><w:pStyle w:val="` + sectionHeadingStyle + `"/><w:spacing w:before="120" w:after="40"/></w:pPr>`)
		writeDocxRun(out, block.Text, block.Bold, color, size)
		out.WriteString(`</w:p>`)
	case render.BlockText:
		size := 21
		color := "111827"
		if block.Scale == render.ScaleSmall {
			size = 18
			color = "5A626E"
		}
		out.WriteString(`<w:p>`)
		writeDocxRun(out, block.Text, block.Bold, color, size)
		out.WriteString(`</w:p>`)
	case render.BlockList:
		for _, item := range block.Items {
			out.WriteString(`<w:p><w:pPr><w:ind w:left="360"/></w:pPr>`)
			writeDocxRun(out, "• "+item, false, "111827", 21)
			out.WriteString(`</w:p>`)
		}
	case render.BlockRule:
		color := "B4BAC4"
		if block.Accent {
			color = accent
		}
		out.WriteString(`<w:p><w:pPr><w:pBdr><w:bottom w:val="single" w:sz="8" w:space="1" w:color="` + color + `"/></w:pBdr></w:pPr></w:p>`)
	default:
		return fmt.Errorf("%w: unsupported block type %q", ErrEncoding, block.Type)
	}
	return nil
}

func writeDocxRun(out *strings.Builder, text string, bold bool, color string, halfPoints int) {
	out.WriteString(`<w:r><w:rPr>`)
	if bold {
		out.WriteString(`<w:b/>`)
	}
	fmt.Fprintf(out, `<w:color w:val="%s"/><w:sz w:val="%d"/>`, color, halfPoints)
	out.WriteString(`</w:rPr><w:t xml:space="preserve">`)
	out.WriteString(escapeXML(text))
	out.WriteString(`</w:t></w:r>`)
}

func escapeXML(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}
