// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// docxDocument is the member of a .docx archive that holds the body text.
const docxDocument = "word/document.xml"

// extractDOCX pulls paragraph text out of a .docx file. A .docx is a zip
// archive; the body lives in word/document.xml as WordprocessingML, where
// each <w:p> is a paragraph and each <w:t> a text run.
func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening docx archive: %w", err)
	}

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == docxDocument {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", fmt.Errorf("docx archive has no %s", docxDocument)
	}

	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", docxDocument, err)
	}
	defer rc.Close()

	return decodeWordXML(rc)
}

// decodeWordXML streams the document XML, collecting text runs and turning
// paragraph boundaries into newlines.
func decodeWordXML(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var b strings.Builder
	var inText bool

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decoding document XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteString("\n\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}

	return strings.TrimSpace(b.String()), nil
}
