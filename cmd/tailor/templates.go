package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/rendering"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the registered resume templates",
	RunE:  runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	for _, t := range rendering.List() {
		pages := "page"
		if t.Constraints.PageLimit > 1 {
			pages = "pages"
		}
		fmt.Fprintf(out, "%-10s %s (%d %s)\n", t.ID, t.Name, t.Constraints.PageLimit, pages)
		fmt.Fprintf(out, "           %s\n", t.Description)
	}
	return nil
}
