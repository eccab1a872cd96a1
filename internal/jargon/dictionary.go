// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package jargon rewrites domain-specific technical terms into plain-language
// explanations. The term dictionary is built once at startup (built-in tables
// plus optional YAML overlays) and immutable afterwards.
package jargon

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/plainread/plainread/pkg/types"
)

// Term is one dictionary entry: a technical term, its plain-language
// replacement, and the table it came from.
type Term struct {
	Term        string
	Replacement string
	Domain      types.Domain
}

// Dictionary holds the term tables keyed by domain. The general and
// statistics tables apply to every document; subject tables apply when the
// classifier (or an override) selects their domain.
type Dictionary struct {
	tables map[types.Domain]map[string]string
}

// builtinTables are the shipped term tables.
var builtinTables = map[types.Domain]map[string]string{
	types.DomainGeneral: {
		"methodology":              "how the study was done",
		"literature review":        "summary of previous research on this topic",
		"hypothesis":               "educated guess about what would happen",
		"null hypothesis":          "assumption that there's no real effect",
		"sample size":              "number of people or things studied",
		"control group":            "comparison group that didn't get the treatment",
		"experimental group":       "group that got the treatment being tested",
		"placebo":                  "fake treatment with no active ingredient",
		"double-blind":             "neither participants nor researchers knew who got real treatment",
		"randomized":               "people were randomly assigned to groups",
		"correlation":              "things that tend to happen together (doesn't prove cause)",
		"causation":                "one thing actually causes another",
		"statistical significance": "result is probably not due to chance",
		"p-value":                  "probability the result happened by accident",
		"confidence interval":      "range where the true answer probably lies",
		"peer review":              "other experts checked this research before publication",
		"replication":              "repeating the study to see if results hold up",
		"meta-analysis":            "study that combines results from multiple studies",
	},
	types.DomainMedical: {
		"clinical trial":              "research study testing treatments on people",
		"randomized controlled trial": "gold standard study where people are randomly assigned treatments",
		"cohort study":                "following a group of people over time",
		"case-control study":          "comparing people with a condition to those without",
		"systematic review":           "comprehensive summary of all research on a topic",
		"efficacy":                    "how well treatment works in ideal conditions",
		"effectiveness":               "how well treatment works in real-world conditions",
		"adverse events":              "bad side effects",
		"contraindication":            "reason not to use this treatment",
		"comorbidity":                 "having multiple health conditions at once",
		"prevalence":                  "how common a condition is",
		"incidence":                   "how many new cases occur in a time period",
		"mortality":                   "death rate",
		"morbidity":                   "illness rate",
		"biomarker":                   "measurable sign of disease or treatment effect",
		"pharmacokinetics":            "how the body processes medication",
		"pharmacodynamics":            "how medication affects the body",
	},
	types.DomainPsychology: {
		"construct":              "concept being measured (like intelligence or depression)",
		"validity":               "whether a test measures what it claims to measure",
		"reliability":            "whether a test gives consistent results",
		"operational definition": "exact way researchers define and measure something",
		"confounding variable":   "outside factor that might affect results",
		"cognitive bias":         "systematic error in thinking",
		"effect size":            "how big the difference actually is (practical importance)",
		"standard deviation":     "measure of how spread out the data is",
		"normal distribution":    "bell curve - most people in the middle, few at extremes",
		"outlier":                "unusual result that doesn't fit the pattern",
	},
	types.DomainEducation: {
		"pedagogical":                  "related to teaching methods",
		"scaffolding":                  "providing support that's gradually removed as students learn",
		"differentiation":              "adapting teaching for different student needs",
		"formative assessment":         "checking understanding during learning",
		"summative assessment":         "final test of what was learned",
		"metacognition":                "thinking about thinking - awareness of your own learning",
		"zone of proximal development": "sweet spot between too easy and too hard",
		"intrinsic motivation":         "motivation from internal satisfaction",
		"extrinsic motivation":         "motivation from external rewards",
	},
	types.DomainSocialScience: {
		"qualitative research":  "studying experiences, meanings, and perspectives",
		"quantitative research": "studying numbers and statistics",
		"ethnography":           "studying culture by observing and participating",
		"phenomenology":         "studying people's lived experiences",
		"grounded theory":       "developing theory from data rather than testing existing theory",
		"triangulation":         "using multiple methods to confirm findings",
		"thick description":     "rich, detailed account of what was observed",
		"reflexivity":           "researcher reflecting on how they might bias the study",
	},
	types.DomainStatistics: {
		"mean":          "average",
		"median":        "middle value when all values are arranged in order",
		"mode":          "most common value",
		"range":         "difference between highest and lowest values",
		"variance":      "measure of how spread out data is",
		"regression":    "method to predict one variable from others",
		"anova":         "test to compare averages between groups",
		"t-test":        "test to compare averages between two groups",
		"chi-square":    "test for relationships between categories",
		"power":         "ability of a test to detect a real effect",
		"type i error":  "false positive - finding an effect that isn't really there",
		"type ii error": "false negative - missing a real effect",
	},
}

// validTables lists the table names accepted in overlay files.
var validTables = map[types.Domain]bool{
	types.DomainGeneral:       true,
	types.DomainStatistics:    true,
	types.DomainMedical:       true,
	types.DomainPsychology:    true,
	types.DomainEducation:     true,
	types.DomainSocialScience: true,
	types.DomainScience:       true,
}

// Builtin returns a dictionary holding only the shipped tables.
func Builtin() *Dictionary {
	tables := make(map[types.Domain]map[string]string, len(builtinTables))
	for domain, table := range builtinTables {
		copied := make(map[string]string, len(table))
		for term, repl := range table {
			copied[term] = repl
		}
		tables[domain] = copied
	}
	return &Dictionary{tables: tables}
}

// Load builds the dictionary from the built-in tables plus the given YAML
// overlay files, merged in order. Overlay entries win over built-ins; later
// files win over earlier ones.
func Load(overlayFiles []string) (*Dictionary, error) {
	d := Builtin()
	for _, path := range overlayFiles {
		if err := d.mergeFile(path); err != nil {
			return nil, fmt.Errorf("loading dictionary overlay %s: %w", path, err)
		}
	}
	return d, nil
}

// mergeFile merges one overlay file into the dictionary. The file format is
// a mapping of table name to term/replacement pairs:
//
//	medical:
//	  titration: slowly adjusting the dose
func (d *Dictionary) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var overlay map[string]map[string]string
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing: %w", err)
	}
	for name, table := range overlay {
		domain := types.Domain(strings.ToLower(strings.TrimSpace(name)))
		if !validTables[domain] {
			return fmt.Errorf("unknown table %q", name)
		}
		dst := d.tables[domain]
		if dst == nil {
			dst = make(map[string]string, len(table))
			d.tables[domain] = dst
		}
		for term, repl := range table {
			term = strings.ToLower(strings.TrimSpace(term))
			if term == "" || strings.TrimSpace(repl) == "" {
				return fmt.Errorf("empty term or replacement in table %q", name)
			}
			dst[term] = strings.TrimSpace(repl)
		}
	}
	return nil
}

// Candidates returns the merged substitution set for a document in the given
// domain: general terms, then statistics, then the domain's own table, with
// later tables overriding earlier ones on the same term. The slice is sorted
// by descending term length so longest-match-first falls out of order.
func (d *Dictionary) Candidates(domain types.Domain) []Term {
	merged := make(map[string]Term)
	for _, src := range []types.Domain{types.DomainGeneral, types.DomainStatistics, domain} {
		if src == "" {
			continue
		}
		for term, repl := range d.tables[src] {
			merged[term] = Term{Term: term, Replacement: repl, Domain: src}
		}
	}
	out := make([]Term, 0, len(merged))
	for _, t := range merged {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].Term) != len(out[j].Term) {
			return len(out[i].Term) > len(out[j].Term)
		}
		return out[i].Term < out[j].Term
	})
	return out
}

// Size returns the number of terms in one table.
func (d *Dictionary) Size(domain types.Domain) int {
	return len(d.tables[domain])
}

// Tables returns the table names present in the dictionary, sorted.
func (d *Dictionary) Tables() []types.Domain {
	out := make([]types.Domain, 0, len(d.tables))
	for domain := range d.tables {
		out = append(out, domain)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
