package ingest

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plainread/plainread/pkg/types"
)

// loosecfg accepts short test fixtures.
var loosecfg = types.IngestConfig{MinLength: 10}

func TestFromTextValidation(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		cfg     types.IngestConfig
		wantErr bool
	}{
		{"valid", strings.Repeat("word ", 50), types.IngestConfig{}, false},
		{"too short", "tiny", types.IngestConfig{}, true},
		{"below custom minimum", "under twenty chars", types.IngestConfig{MinLength: 100}, true},
		{"invalid utf8", string([]byte{0xff, 0xfe, 0xfd}) + strings.Repeat("x", 300), types.IngestConfig{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromText("label", tt.text, tt.cfg)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("err = %v, want ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestFromFileDispatchByExtension(t *testing.T) {
	dir := t.TempDir()
	body := strings.Repeat("The study found meaningful results. ", 10)

	tests := []struct {
		file     string
		content  string
		wantKind types.SourceKind
	}{
		{"paper.txt", body, types.SourceText},
		{"paper.md", "# Title\n\n" + body, types.SourceMarkdown},
		{"paper.html", "<html><body><article><p>" + body + "</p></article></body></html>", types.SourceHTML},
		{"notes", body, types.SourceText},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			src, err := FromFile(path, loosecfg)
			if err != nil {
				t.Fatalf("FromFile: %v", err)
			}
			if src.Kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", src.Kind, tt.wantKind)
			}
			if src.Name != tt.file {
				t.Errorf("name = %q, want %q", src.Name, tt.file)
			}
			if !strings.Contains(src.Text, "meaningful results") {
				t.Errorf("text lost in extraction: %q", src.Text)
			}
		})
	}
}

func TestFromFileMissing(t *testing.T) {
	if _, err := FromFile(filepath.Join(t.TempDir(), "absent.txt"), loosecfg); err == nil {
		t.Error("FromFile on missing file succeeded")
	}
}

func TestExtractHTMLStripsNoise(t *testing.T) {
	html := `<html><body>
		<nav>Site menu</nav>
		<script>tracker();</script>
		<article><h1>Findings</h1><p>The treatment worked well.</p></article>
		<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractHTML(html)
	if err != nil {
		t.Fatalf("ExtractHTML: %v", err)
	}
	if !strings.Contains(text, "The treatment worked well") {
		t.Errorf("content lost: %q", text)
	}
	for _, noise := range []string{"Site menu", "tracker", "Copyright"} {
		if strings.Contains(text, noise) {
			t.Errorf("noise %q survived extraction", noise)
		}
	}
}

func TestExtractHTMLPrefersMainContainer(t *testing.T) {
	html := `<html><body>
		<div>Wrapper chrome</div>
		<main><p>Main content here.</p></main>
	</body></html>`

	text, err := ExtractHTML(html)
	if err != nil {
		t.Fatalf("ExtractHTML: %v", err)
	}
	if !strings.Contains(text, "Main content here") {
		t.Errorf("main content missing: %q", text)
	}
	if strings.Contains(text, "Wrapper chrome") {
		t.Errorf("content outside <main> included: %q", text)
	}
}

func TestExtractDOCX(t *testing.T) {
	docXML := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph of the paper.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second paragraph with </w:t></w:r><w:r><w:t>two runs.</w:t></w:r></w:p>
  </w:body>
</w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write([]byte(docXML)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	text, err := extractDOCX(buf.Bytes())
	if err != nil {
		t.Fatalf("extractDOCX: %v", err)
	}
	if !strings.Contains(text, "First paragraph of the paper.") {
		t.Errorf("first paragraph missing: %q", text)
	}
	if !strings.Contains(text, "Second paragraph with two runs.") {
		t.Errorf("runs not joined within a paragraph: %q", text)
	}
	if !strings.Contains(text, "\n\n") {
		t.Error("paragraphs not separated")
	}
}

func TestExtractDOCXNotAnArchive(t *testing.T) {
	if _, err := extractDOCX([]byte("not a zip file")); err == nil {
		t.Error("extractDOCX on junk succeeded")
	}
}
