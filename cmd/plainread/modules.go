// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plainread/plainread/internal/accessibility"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the available accessibility modules",
	Long: `Modules lists every registered accessibility module. Pass module names to
translate --modules in the order you want them applied; each module rewrites
the output of the previous one.`,
	Run: runModules,
}

func runModules(cmd *cobra.Command, args []string) {
	fmt.Fprintf(os.Stdout, "%-12s  %s\n", "Name", "Description")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 76))
	for _, m := range accessibility.Modules() {
		fmt.Fprintf(os.Stdout, "%-12s  %s\n", m.Name(), m.Description())
	}
}

func init() {
	rootCmd.AddCommand(modulesCmd)
}
