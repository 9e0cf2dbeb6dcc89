package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forgefolio/forgefolio/internal/templates"
)

var templatesCmd = &cobra.Command{
	Use:   "templates [id]",
	Short: "List portfolio templates",
	Long:  "List the available portfolio templates, or show one template in detail.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		tmpl, ok := templates.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown template %q (valid: %s)", args[0], strings.Join(templateIDs(), ", "))
		}
		fmt.Fprintf(out, "%s (%s)\n", tmpl.Name, tmpl.ID)
		fmt.Fprintf(out, "  %s\n", tmpl.Description)
		fmt.Fprintf(out, "  style:    %s\n", tmpl.Style)
		fmt.Fprintf(out, "  tone:     %s\n", tmpl.Tone)
		fmt.Fprintf(out, "  focus:    %s\n", tmpl.Focus)
		fmt.Fprintf(out, "  format:   %s\n", tmpl.Format)
		fmt.Fprintf(out, "  sections: %s\n", strings.Join(tmpl.Sections, ", "))
		return nil
	}

	for _, tmpl := range templates.All() {
		fmt.Fprintf(out, "%-22s %s\n", tmpl.ID, tmpl.Name)
	}
	return nil
}
