// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/plainread/plainread/pkg/types"
)

// htmlPage is the self-contained report page. Styling is inlined so the
// file can be opened or mailed without any other assets.
const htmlPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Plain-language translation: {{.SourceName}}</title>
<style>
  body { font-family: Arial, Helvetica, sans-serif; max-width: 900px; margin: 0 auto; padding: 20px; line-height: 1.6; color: #222; }
  header { background: #3f51b5; color: white; padding: 24px; border-radius: 8px; margin-bottom: 24px; }
  header h1 { margin: 0 0 8px; font-size: 24px; }
  header p { margin: 4px 0; opacity: 0.92; }
  section { margin: 24px 0; padding: 16px 20px; border-left: 5px solid #3f51b5; background: #f6f7fd; border-radius: 4px; }
  section.findings { border-left-color: #2e7d32; background: #f4faf4; }
  section.methodology { border-left-color: #ef6c00; background: #fdf7ef; }
  section.matters { border-left-color: #ad1457; background: #fcf3f7; }
  section.questions { border-left-color: #6a1b9a; background: #f8f3fc; }
  section.tips { border-left-color: #00838f; background: #f0fafb; }
  h2 { margin-top: 0; color: #333; font-size: 19px; }
  ul { padding-left: 20px; }
  li { margin: 8px 0; }
  .confidence { text-align: center; font-size: 18px; padding: 12px; background: #e3f2fd; border-radius: 6px; }
  .simplified { white-space: pre-wrap; background: white; border: 1px solid #ddd; padding: 16px; border-radius: 4px; }
  table { border-collapse: collapse; width: 100%; }
  th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
  th { background: #eceef8; }
</style>
</head>
<body>
<header>
  <h1>{{.DomainLabel}} research, translated</h1>
  <p>Source: {{.SourceName}}</p>
  <p>Original reading level: {{.ReadingLevel}} &middot; {{.WordCount}} words</p>
  <p>Accessibility modules: {{.ModulesLine}}</p>
</header>

<p class="confidence"><strong>Translation confidence: {{.ConfidencePct}}%</strong></p>

<section class="tips">
  <h2>How to read this page</h2>
  <ul>
    <li>Start with the key findings. They are the short version of the whole paper.</li>
    <li>The simplified text keeps the paper's structure but uses everyday words.</li>
    <li>The glossary at the bottom shows every technical term that was replaced.</li>
  </ul>
</section>

{{if .KeyFindings}}<section class="findings">
  <h2>Key findings</h2>
  <ul>{{range .KeyFindings}}<li>{{.}}</li>{{end}}</ul>
</section>{{end}}

{{if .WhyItMatters}}<section class="matters">
  <h2>Why this matters</h2>
  <ul>{{range .WhyItMatters}}<li>{{.}}</li>{{end}}</ul>
</section>{{end}}

{{if .Methodology}}<section class="methodology">
  <h2>How the study was done</h2>
  <ul>{{range .Methodology}}<li>{{.}}</li>{{end}}</ul>
</section>{{end}}

{{if .Questions}}<section class="questions">
  <h2>Questions worth asking</h2>
  <ul>{{range .Questions}}<li>{{.}}</li>{{end}}</ul>
</section>{{end}}

<section>
  <h2>Simplified text</h2>
  <div class="simplified">{{.SimplifiedText}}</div>
</section>

{{range .ModuleExtras}}<section>
  <h2>Extras from the {{.Module}} module</h2>
  {{if .Aux.VisualAids}}<h3>Visual aids</h3><ul>{{range .Aux.VisualAids}}<li>{{.}}</li>{{end}}</ul>{{end}}
  {{if .Aux.ActionItems}}<h3>Things to try</h3><ul>{{range .Aux.ActionItems}}<li>{{.}}</li>{{end}}</ul>{{end}}
  {{if .Aux.Questions}}<h3>Questions</h3><ul>{{range .Aux.Questions}}<li>{{.}}</li>{{end}}</ul>{{end}}
</section>{{end}}

{{if .Substitutions}}<section>
  <h2>Glossary of replaced terms</h2>
  <table>
    <tr><th>Term</th><th>Plain language</th><th>Times replaced</th></tr>
    {{range .Substitutions}}<tr><td>{{.Term}}</td><td>{{.Replacement}}</td><td>{{.Count}}</td></tr>{{end}}
  </table>
</section>{{end}}

<footer><p>Translated on {{.CreatedAtLabel}}.</p></footer>
</body>
</html>
`

var htmlTemplate = template.Must(template.New("report").Parse(htmlPage))

// htmlData flattens a TranslationResult into the fields the page template
// consumes directly.
type htmlData struct {
	SourceName     string
	DomainLabel    string
	ReadingLevel   types.ReadingLevel
	WordCount      int
	ModulesLine    string
	ConfidencePct  int
	KeyFindings    []string
	WhyItMatters   []string
	Methodology    []string
	Questions      []string
	SimplifiedText string
	ModuleExtras   []types.ModuleOutput
	Substitutions  []types.TermSubstitution
	CreatedAtLabel string
}

// HTML renders the result as a self-contained page.
func HTML(res *types.TranslationResult) (string, error) {
	var extras []types.ModuleOutput
	for _, mo := range res.ModuleOutputs {
		if !mo.Aux.IsEmpty() {
			extras = append(extras, mo)
		}
	}

	data := htmlData{
		SourceName:     res.SourceName,
		DomainLabel:    domainLabel(res.Domain),
		ReadingLevel:   res.ReadingLevel,
		WordCount:      res.WordCount,
		ModulesLine:    modulesLine(res.ModulesApplied),
		ConfidencePct:  int(res.Confidence*100 + 0.5),
		KeyFindings:    res.KeyFindings,
		WhyItMatters:   res.WhyItMatters,
		Methodology:    res.Methodology,
		Questions:      res.Questions,
		SimplifiedText: strings.TrimSpace(res.SimplifiedText),
		ModuleExtras:   extras,
		Substitutions:  res.Substitutions,
		CreatedAtLabel: res.CreatedAt.Format("January 2, 2006"),
	}

	var b strings.Builder
	if err := htmlTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering HTML report: %w", err)
	}
	return b.String(), nil
}
