package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/forgefolio/forgefolio/internal/config"
	"github.com/forgefolio/forgefolio/internal/enhance"
	"github.com/forgefolio/forgefolio/internal/portfolio"
	"github.com/forgefolio/forgefolio/internal/samples"
	"github.com/forgefolio/forgefolio/internal/service/generator"
	"github.com/forgefolio/forgefolio/internal/service/textgen"
	"github.com/forgefolio/forgefolio/internal/templates"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a portfolio from a profile",
	Long:  "Generate structured portfolio content from a profile JSON file or one of the bundled sample profiles.",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

var (
	generateFile     string
	generateSample   string
	generateTemplate string
	generateOutput   string
	generateDemo     bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateFile, "file", "f", "", "Path to a profile JSON file")
	generateCmd.Flags().StringVar(&generateSample, "sample", "", "Use a bundled sample profile instead of --file")
	generateCmd.Flags().StringVarP(&generateTemplate, "template", "t", "", "Template id, overriding the profile's template_id")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Write the portfolio JSON to a file instead of stdout")
	generateCmd.Flags().BoolVar(&generateDemo, "demo", false, "Synthesize locally without calling Groq")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	profile, err := loadProfile()
	if err != nil {
		return err
	}

	if generateTemplate != "" {
		if _, ok := templates.Lookup(generateTemplate); !ok {
			return fmt.Errorf("unknown template %q (valid: %s)", generateTemplate, strings.Join(templateIDs(), ", "))
		}
		profile.TemplateID = generateTemplate
	}

	svc, err := cliTextGen(generateDemo)
	if err != nil {
		return err
	}

	gen := generator.New(svc, enhance.New(rand.New(rand.NewSource(time.Now().UnixNano()))))
	result, err := gen.Generate(cmd.Context(), profile)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding portfolio: %w", err)
	}

	if generateOutput != "" {
		if err := os.WriteFile(generateOutput, append(out, '\n'), 0o644); err != nil {
			return fmt.Errorf("writing portfolio: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", generateOutput)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func loadProfile() (portfolio.Profile, error) {
	switch {
	case generateFile != "" && generateSample != "":
		return portfolio.Profile{}, errors.New("cannot use --file together with --sample")
	case generateFile != "":
		raw, err := os.ReadFile(generateFile)
		if err != nil {
			return portfolio.Profile{}, fmt.Errorf("reading profile: %w", err)
		}
		profile, err := portfolio.ParseProfile(raw)
		if err != nil {
			return portfolio.Profile{}, fmt.Errorf("invalid profile: %w", err)
		}
		return profile, nil
	case generateSample != "":
		profile, ok := samples.Lookup(generateSample)
		if !ok {
			return portfolio.Profile{}, fmt.Errorf("unknown sample %q (valid: %s)", generateSample, strings.Join(samples.IDs(), ", "))
		}
		return profile, nil
	default:
		return portfolio.Profile{}, errors.New("provide a profile with --file or --sample")
	}
}

// cliTextGen picks the text source the same way the server does, except the
// unconfigured case turns into a usage error instead of a failing service.
func cliTextGen(demo bool) (textgen.Service, error) {
	cfg := config.Load()
	if demo {
		cfg.DemoMode = true
	}
	switch cfg.Mode() {
	case config.ModeLocal:
		return textgen.NewSynthesizer(), nil
	case config.ModeRemote:
		return textgen.NewClient(cfg.GroqAPIKey,
			textgen.WithModel(cfg.GroqModel),
			textgen.WithBaseURL(cfg.GroqBaseURL),
		)
	default:
		return nil, errors.New("GROQ_API_KEY is not set; export it or pass --demo to synthesize locally")
	}
}

func templateIDs() []string {
	all := templates.All()
	ids := make([]string, 0, len(all))
	for _, tmpl := range all {
		ids = append(ids, tmpl.ID)
	}
	return ids
}
