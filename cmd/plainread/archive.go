// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plainread/plainread/internal/archive"
	"github.com/plainread/plainread/internal/report"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Browse and manage saved translations",
	Long: `Archive manages the local SQLite database of saved translations. Use
subcommands to list recent translations, show one in full, search the
simplified text, delete entries, or export everything.`,
}

// --- list subcommand ---

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved translations, most recent first",
	RunE:  runArchiveList,
}

func runArchiveList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := openArchive()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}
	printEntries(entries)
	return nil
}

// --- show subcommand ---

var archiveShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one saved translation in full",
	Long: `Show renders a saved translation. The ID may be the short prefix printed
by list, as long as it is unambiguous.`,
	Args: cobra.ExactArgs(1),
	RunE: runArchiveShow,
}

func runArchiveShow(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := report.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	store, err := openArchive()
	if err != nil {
		return err
	}
	defer store.Close()

	res, err := store.Get(context.Background(), args[0])
	if err != nil {
		return err
	}

	rendered, err := report.Render(res, format)
	if err != nil {
		return err
	}
	fmt.Print(rendered)
	return nil
}

// --- search subcommand ---

var archiveSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Full-text search over saved translations",
	Long: `Search matches the query against source names and simplified text using
FTS5, ranked by relevance.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runArchiveSearch,
}

func runArchiveSearch(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := openArchive()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Search(context.Background(), strings.Join(args, " "), limit)
	if err != nil {
		return err
	}
	printEntries(entries)
	return nil
}

// --- delete subcommand ---

var archiveDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a saved translation",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchiveDelete,
}

func runArchiveDelete(cmd *cobra.Command, args []string) error {
	store, err := openArchive()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(context.Background(), args[0]); err != nil {
		return err
	}
	fmt.Println("Deleted.")
	return nil
}

// --- export subcommand ---

var archiveExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all saved translations to YAML or JSON",
	RunE:  runArchiveExport,
}

func runArchiveExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")

	cfg := loadConfig()
	store, err := archive.NewStore(cfg.Archive)
	if err != nil {
		return err
	}
	defer store.Close()

	outDir := cfg.Report.OutputDir
	if outDir == "" {
		outDir = report.DefaultOutputDir
	}
	if outPath == "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("creating export directory: %w", err)
		}
	}

	switch format {
	case "yaml", "":
		if outPath == "" {
			outPath = filepath.Join(outDir, "export.yaml")
		}
		if err := store.ExportYAML(context.Background(), outPath); err != nil {
			return err
		}
	case "json":
		if outPath == "" {
			outPath = filepath.Join(outDir, "export.json")
		}
		if err := store.ExportJSON(context.Background(), outPath); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	fmt.Printf("Exported to %s\n", outPath)
	return nil
}

// --- shared helpers ---

func openArchive() (*archive.Store, error) {
	return archive.NewStore(loadConfig().Archive)
}

func printEntries(entries []archive.Entry) {
	if len(entries) == 0 {
		fmt.Println("No translations found.")
		return
	}

	fmt.Fprintf(os.Stdout, "%-8s  %-32s  %-14s  %-24s  %-5s  %s\n",
		"ID", "Source", "Domain", "Reading level", "Conf", "Created")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for _, e := range entries {
		id := e.ID
		if len(id) > 8 {
			id = id[:8]
		}
		source := e.SourceName
		if len(source) > 32 {
			source = source[:29] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-8s  %-32s  %-14s  %-24s  %.2f  %s\n",
			id, source, e.Domain, e.ReadingLevel, e.Confidence,
			e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintf(os.Stdout, "\n%d translations\n", len(entries))
}

func init() {
	archiveListCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	archiveSearchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	archiveShowCmd.Flags().String("format", "term", "output format: markdown, html, json, or term")
	archiveExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	archiveExportCmd.Flags().String("out", "", "export file path (default: <report dir>/export.<format>)")

	archiveCmd.AddCommand(archiveListCmd)
	archiveCmd.AddCommand(archiveShowCmd)
	archiveCmd.AddCommand(archiveSearchCmd)
	archiveCmd.AddCommand(archiveDeleteCmd)
	archiveCmd.AddCommand(archiveExportCmd)

	rootCmd.AddCommand(archiveCmd)
}
