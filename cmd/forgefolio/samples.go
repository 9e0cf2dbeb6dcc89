package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forgefolio/forgefolio/internal/samples"
)

var samplesCmd = &cobra.Command{
	Use:   "samples [id]",
	Short: "List the bundled sample profiles",
	Long:  "List the bundled sample profiles, or print one as profile JSON ready for editing and feeding back through generate --file.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSamples,
}

func init() {
	rootCmd.AddCommand(samplesCmd)
}

func runSamples(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		profile, ok := samples.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown sample %q (valid: %s)", args[0], strings.Join(samples.IDs(), ", "))
		}
		encoded, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding profile: %w", err)
		}
		fmt.Fprintln(out, string(encoded))
		return nil
	}

	for _, id := range samples.IDs() {
		profile := samples.Get(id)
		fmt.Fprintf(out, "%-22s %s, %s\n", id, profile.Name, profile.Profession)
	}
	return nil
}
