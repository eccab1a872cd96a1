// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/plainread/plainread/internal/archive"
	"github.com/plainread/plainread/internal/ingest"
	"github.com/plainread/plainread/internal/jargon"
	"github.com/plainread/plainread/internal/report"
	"github.com/plainread/plainread/internal/translate"
	"github.com/plainread/plainread/pkg/types"
)

var translateCmd = &cobra.Command{
	Use:   "translate [file...]",
	Short: "Translate a document into plain, accessible language",
	Long: `Translate runs the full pipeline on one document: subject classification,
reading level estimation, statistical claim rewriting, jargon substitution,
and the requested accessibility modules.

The input is a file argument, --text for inline text, or --url for a web
page. Exactly one source must be given. Output goes to stdout in the chosen
format, or to a file with --out. With --save the result is also stored in
the archive and a report file is written to the report directory.

With more than one file argument the command runs in batch mode: each file
is translated and saved, progress goes to stderr, and a summary is printed
at the end.`,
	Args: cobra.ArbitraryArgs,
	RunE: runTranslate,
}

func runTranslate(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return runTranslateBatch(cmd, args)
	}
	return runTranslateOne(cmd, args)
}

func runTranslateOne(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	url, _ := cmd.Flags().GetString("url")
	subjectFlag, _ := cmd.Flags().GetString("subject")
	moduleNames, _ := cmd.Flags().GetStringSlice("modules")
	formatFlag, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")
	save, _ := cmd.Flags().GetBool("save")
	minLength, _ := cmd.Flags().GetInt("min-length")

	cfg := loadConfig()
	if minLength > 0 {
		cfg.Ingest.MinLength = minLength
	}

	src, err := resolveSource(args, text, url, cfg.Ingest)
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	dict, err := jargon.Load(cfg.Jargon.OverlayFiles)
	if err != nil {
		return err
	}

	if len(moduleNames) == 0 {
		moduleNames = cfg.Modules.Defaults
	}

	res, err := translate.Run(src.Text, translate.Options{
		SourceName: src.Name,
		Domain:     types.Domain(subjectFlag),
		Modules:    moduleNames,
		Dictionary: dict,
	})
	if err != nil {
		return err
	}

	for _, w := range res.Warnings {
		if w.Module != "" {
			fmt.Fprintf(os.Stderr, "warning: %s: %s\n", w.Module, w.Message)
		} else {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w.Message)
		}
	}

	rendered, err := report.Render(res, format)
	if err != nil {
		return err
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, []byte(rendered), 0o644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", outPath)
	} else {
		fmt.Print(rendered)
	}

	if save {
		if err := saveResult(res, format, cfg); err != nil {
			return err
		}
	}
	return nil
}

// runTranslateBatch translates every file argument, saving each result, and
// prints a summary. Inputs rejected as invalid are skipped; other failures
// make the command exit non-zero after the whole batch ran.
func runTranslateBatch(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	url, _ := cmd.Flags().GetString("url")
	if text != "" || url != "" {
		return fmt.Errorf("batch mode takes file arguments only; --text and --url translate a single source")
	}
	subjectFlag, _ := cmd.Flags().GetString("subject")
	moduleNames, _ := cmd.Flags().GetStringSlice("modules")
	formatFlag, _ := cmd.Flags().GetString("format")
	minLength, _ := cmd.Flags().GetInt("min-length")

	cfg := loadConfig()
	if minLength > 0 {
		cfg.Ingest.MinLength = minLength
	}

	format, err := report.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	dict, err := jargon.Load(cfg.Jargon.OverlayFiles)
	if err != nil {
		return err
	}
	if len(moduleNames) == 0 {
		moduleNames = cfg.Modules.Defaults
	}

	store, err := archive.NewStore(cfg.Archive)
	if err != nil {
		return err
	}
	defer store.Close()

	summary := translateBatch(os.Stderr, args, batchOptions{
		ingest:  cfg.Ingest,
		report:  cfg.Report,
		domain:  types.Domain(subjectFlag),
		modules: moduleNames,
		dict:    dict,
		format:  format,
		store:   store,
	})

	fmt.Fprintf(os.Stderr, "\ntranslated: %d, skipped: %d, failed: %d\n",
		summary.Translated, summary.Skipped, summary.Failed)
	if summary.HasFailures() {
		return fmt.Errorf("%d document(s) failed", summary.Failed)
	}
	return nil
}

type batchOptions struct {
	ingest  types.IngestConfig
	report  types.ReportConfig
	domain  types.Domain
	modules []string
	dict    *jargon.Dictionary
	format  report.Format
	store   *archive.Store
}

// translateBatch processes each path in order, writing one progress line per
// document to w.
func translateBatch(w io.Writer, paths []string, opts batchOptions) types.BatchSummary {
	var summary types.BatchSummary
	for _, path := range paths {
		src, err := ingest.FromFile(path, opts.ingest)
		if err != nil {
			if errors.Is(err, ingest.ErrInvalidInput) {
				fmt.Fprintf(w, "skipped    %s: %v\n", path, err)
				summary.Skipped++
			} else {
				fmt.Fprintf(w, "failed     %s: %v\n", path, err)
				summary.Failed++
			}
			continue
		}

		res, err := translate.Run(src.Text, translate.Options{
			SourceName: src.Name,
			Domain:     opts.domain,
			Modules:    opts.modules,
			Dictionary: opts.dict,
		})
		if err != nil {
			fmt.Fprintf(w, "failed     %s: %v\n", path, err)
			summary.Failed++
			continue
		}

		if err := opts.store.Save(context.Background(), res); err != nil {
			fmt.Fprintf(w, "failed     %s: %v\n", path, err)
			summary.Failed++
			continue
		}
		reportPath, err := report.Save(res, opts.format, opts.report)
		if err != nil {
			fmt.Fprintf(w, "failed     %s: %v\n", path, err)
			summary.Failed++
			continue
		}

		fmt.Fprintf(w, "translated %s -> %s (%s, confidence %.0f%%)\n",
			path, reportPath, res.Domain, res.Confidence*100)
		summary.Translated++
	}
	return summary
}

// resolveSource picks the one requested input source and ingests it.
func resolveSource(args []string, text, url string, cfg types.IngestConfig) (ingest.Source, error) {
	given := 0
	if len(args) > 0 {
		given++
	}
	if text != "" {
		given++
	}
	if url != "" {
		given++
	}
	if given != 1 {
		return ingest.Source{}, fmt.Errorf("exactly one input required: a file argument, --text, or --url")
	}

	switch {
	case text != "":
		return ingest.FromText("direct input", text, cfg)
	case url != "":
		return ingest.FromURL(context.Background(), url, cfg)
	default:
		return ingest.FromFile(args[0], cfg)
	}
}

// saveResult stores the translation in the archive and writes a report file
// under the configured report directory.
func saveResult(res *types.TranslationResult, format report.Format, cfg types.PipelineConfig) error {
	store, err := archive.NewStore(cfg.Archive)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(context.Background(), res); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Saved to archive as %s\n", res.DocumentID)

	path, err := report.Save(res, format, cfg.Report)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote report %s\n", path)
	return nil
}

func init() {
	translateCmd.Flags().String("text", "", "translate this text instead of a file")
	translateCmd.Flags().String("url", "", "fetch and translate a web page")
	translateCmd.Flags().String("subject", "", "override subject detection: medical, psychology, education, social_science, science, general")
	translateCmd.Flags().StringSlice("modules", nil, "accessibility modules to apply, in order (e.g. adhd,dyslexia)")
	translateCmd.Flags().String("format", "term", "output format: markdown, html, json, or term")
	translateCmd.Flags().String("out", "", "write output to this file instead of stdout")
	translateCmd.Flags().Bool("save", false, "store the result in the archive and write a report file")
	translateCmd.Flags().Int("min-length", 0, "minimum input length in characters (0 = use config default)")

	rootCmd.AddCommand(translateCmd)
}
