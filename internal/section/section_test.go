// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package section

import (
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	text := "Abstract\nThis study examines sleep.\nMethods\nWe surveyed 100 students.\nResults\nSleep improved.\n"

	sections := Extract(text)
	if len(sections) != 3 {
		t.Fatalf("got %d sections, want 3: %+v", len(sections), sections)
	}

	wantNames := []string{"abstract", "methods", "results"}
	for i, want := range wantNames {
		if sections[i].Name != want {
			t.Errorf("section %d name = %q, want %q", i, sections[i].Name, want)
		}
	}

	if got := strings.TrimSpace(sections[1].Slice(text)); got != "We surveyed 100 students." {
		t.Errorf("methods span = %q", got)
	}
	if got := strings.TrimSpace(sections[2].Slice(text)); got != "Sleep improved." {
		t.Errorf("results span = %q", got)
	}
}

func TestExtractHeadingForms(t *testing.T) {
	tests := []struct {
		name    string
		heading string
		want    string
	}{
		{"bare", "Methods", "methods"},
		{"numbered", "2. Methods", "methods"},
		{"numbered no dot", "2 Methods", "methods"},
		{"subsection number", "2.1 Methods", "methods"},
		{"roman numeral", "IV. Discussion", "discussion"},
		{"markdown h2", "## Results", "results"},
		{"markdown h3", "### Results", "results"},
		{"uppercase with colon", "RESULTS:", "results"},
		{"alias methodology", "Methodology", "methods"},
		{"alias findings", "Findings", "results"},
		{"alias conclusions", "Conclusions", "conclusion"},
		{"alias materials and methods", "Materials and Methods", "methods"},
		{"alias summary", "Summary", "abstract"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := tt.heading + "\ncontent line\n"
			sections := Extract(text)
			if len(sections) != 1 {
				t.Fatalf("got %d sections, want 1", len(sections))
			}
			if sections[0].Name != tt.want {
				t.Errorf("name = %q, want %q", sections[0].Name, tt.want)
			}
			if got := strings.TrimSpace(sections[0].Slice(text)); got != "content line" {
				t.Errorf("span = %q, want content line", got)
			}
		})
	}
}

func TestExtractNoHeadingsFallsBackToBody(t *testing.T) {
	text := "Just a paragraph of text without any recognizable headings in it."
	sections := Extract(text)
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if sections[0].Name != BodyName {
		t.Errorf("name = %q, want %q", sections[0].Name, BodyName)
	}
	if sections[0].Start != 0 || sections[0].End != len(text) {
		t.Errorf("body span = [%d,%d], want [0,%d]", sections[0].Start, sections[0].End, len(text))
	}
}

func TestExtractEmptyText(t *testing.T) {
	sections := Extract("")
	if len(sections) != 1 || sections[0].Name != BodyName {
		t.Fatalf("empty text sections = %+v, want single body", sections)
	}
	if sections[0].Slice("") != "" {
		t.Errorf("empty body slice = %q", sections[0].Slice(""))
	}
}

func TestExtractIgnoresProseAndLongLines(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "section word mid-sentence",
			text: "The methods used here follow earlier work and are described fully elsewhere in this long line of prose that keeps going.",
		},
		{
			name: "heading word inside sentence line",
			text: "We present results below.\nmore text\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := Extract(tt.text)
			if len(sections) != 1 || sections[0].Name != BodyName {
				t.Errorf("sections = %+v, want single body", sections)
			}
		})
	}
}

func TestExtractDuplicateHeadingsKeptInOrder(t *testing.T) {
	text := "Results\nfirst block\nDiscussion\ntalk\nResults\nsecond block\n"
	sections := Extract(text)
	if len(sections) != 3 {
		t.Fatalf("got %d sections, want 3", len(sections))
	}
	if sections[0].Name != "results" || sections[2].Name != "results" {
		t.Errorf("names = %v", Names(sections))
	}
	if got := Names(sections); len(got) != 2 {
		t.Errorf("Names() = %v, want deduplicated pair", got)
	}

	first, ok := Find(sections, "results")
	if !ok {
		t.Fatal("Find(results) not found")
	}
	if got := strings.TrimSpace(first.Slice(text)); got != "first block" {
		t.Errorf("Find returned %q, want first block", got)
	}
}

func TestExtractPreambleBecomesBody(t *testing.T) {
	text := "intro text before any heading\nMethods\nwe did things\n"
	sections := Extract(text)
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2: %+v", len(sections), sections)
	}
	if sections[0].Name != BodyName {
		t.Errorf("first section = %q, want %q", sections[0].Name, BodyName)
	}
	if got := strings.TrimSpace(sections[0].Slice(text)); got != "intro text before any heading" {
		t.Errorf("preamble span = %q", got)
	}
}

func TestExtractHeadingAtEndOfText(t *testing.T) {
	text := "intro text\nReferences"
	sections := Extract(text)
	last := sections[len(sections)-1]
	if last.Name != "references" {
		t.Fatalf("last section = %q, want references", last.Name)
	}
	if last.Slice(text) != "" {
		t.Errorf("trailing heading span = %q, want empty", last.Slice(text))
	}
}
