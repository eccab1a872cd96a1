// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Domain is a subject-area classification bucket for a document. It selects
// which jargon term sets and narrative templates apply.
type Domain string

const (
	DomainMedical       Domain = "medical"
	DomainPsychology    Domain = "psychology"
	DomainEducation     Domain = "education"
	DomainSocialScience Domain = "social_science"
	DomainScience       Domain = "science"
	DomainGeneral       Domain = "general"

	// DomainStatistics keys the shared statistics term table. It is never
	// returned by the classifier; like the general table it applies to every
	// document.
	DomainStatistics Domain = "statistics"
)

// ReadingLevel is a coarse band describing how demanding the original text is.
type ReadingLevel string

const (
	LevelMiddleSchool ReadingLevel = "Middle School"
	LevelHighSchool   ReadingLevel = "High School"
	LevelCollege      ReadingLevel = "College"
	LevelGraduate     ReadingLevel = "Graduate or Professional"
	LevelUnknown      ReadingLevel = "Unknown"
)

// SourceKind identifies the format a document was ingested from.
type SourceKind string

const (
	SourceText     SourceKind = "text"
	SourceMarkdown SourceKind = "markdown"
	SourceHTML     SourceKind = "html"
	SourceDOCX     SourceKind = "docx"
	SourceURL      SourceKind = "url"
)

// Document holds the raw text of one translation request together with the
// attributes detected before any rewriting.
type Document struct {
	// ID identifies the document within the archive.
	ID string `json:"id" yaml:"id"`

	// SourceName is the file name, URL, or label the text came from.
	SourceName string `json:"source_name" yaml:"source_name"`

	// SourceKind records the ingest format.
	SourceKind SourceKind `json:"source_kind" yaml:"source_kind"`

	// Text is the raw extracted document text.
	Text string `json:"text" yaml:"text"`

	// Domain is the detected (or caller-overridden) subject domain.
	Domain Domain `json:"domain" yaml:"domain"`

	// ReadingLevel is the estimated reading level of the original text.
	ReadingLevel ReadingLevel `json:"reading_level" yaml:"reading_level"`

	// WordCount is the whitespace-delimited word count of Text.
	WordCount int `json:"word_count" yaml:"word_count"`
}

// Section is a named span of document text located by the section extractor.
// Offsets are byte positions into the text the extractor scanned.
type Section struct {
	// Name is the canonical section name (e.g. "methods", "results") or
	// "body" when no headings were recognized.
	Name string `json:"name" yaml:"name"`

	// Start is the byte offset of the first content byte after the heading.
	Start int `json:"start" yaml:"start"`

	// End is the byte offset one past the last content byte.
	End int `json:"end" yaml:"end"`
}

// Slice returns the section's text, clamping offsets to the bounds of text.
func (s Section) Slice(text string) string {
	start, end := s.Start, s.End
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	if start >= end {
		return ""
	}
	return text[start:end]
}
