// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plainread/plainread/internal/jargon"
	"github.com/plainread/plainread/internal/subject"
	"github.com/plainread/plainread/pkg/types"
)

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List the subject domains and their dictionary sizes",
	Long: `Subjects lists every subject domain the classifier can detect, the signals
it scores on, and how many dictionary terms each domain contributes. The
general and statistics tables apply to every document regardless of domain.`,
	RunE: runSubjects,
}

func runSubjects(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	dict, err := jargon.Load(cfg.Jargon.OverlayFiles)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%-16s  %-10s  %-10s  %-10s  %s\n",
		"Domain", "Keywords", "Journals", "Methods", "Dictionary terms")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 72))

	for _, p := range subject.Profiles() {
		fmt.Fprintf(os.Stdout, "%-16s  %-10d  %-10d  %-10d  %d\n",
			p.Domain, len(p.Keywords), len(p.Journals), len(p.Methods), dict.Size(p.Domain))
	}

	// Fallback tables that apply to every document.
	for _, d := range []types.Domain{types.DomainGeneral, types.DomainStatistics} {
		fmt.Fprintf(os.Stdout, "%-16s  %-10s  %-10s  %-10s  %d\n",
			d, "-", "-", "-", dict.Size(d))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(subjectsCmd)
}
