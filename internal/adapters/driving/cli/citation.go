package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/domain"
)

var citationStyle string

var citationCmd = &cobra.Command{
	Use:   "citation",
	Short: "Parse, validate and format legal citations",
	Long: `Commands for working with citations to Ghanaian acts, such as
"Data Protection Act 2012 (Act 843), s. 20(1)".`,
}

var citationValidateCmd = &cobra.Command{
	Use:   "validate [citation]",
	Short: "Check a citation against the corpus",
	Long: `Parses the citation and verifies that the cited act and provision
exist. Repealed acts and unknown provisions produce warnings rather
than errors.`,
	Args: cobra.ExactArgs(1),
	RunE: runCitationValidate,
}

var citationFormatCmd = &cobra.Command{
	Use:   "format [citation]",
	Short: "Reformat a citation into a canonical style",
	Long: `Parses the citation and renders it in the requested style.

Available styles:
  full     - Section 20(1), Data Protection Act 2012 (Act 843)
  short    - s. 20(1), Data Protection Act 2012
  pinpoint - s. 20(1)`,
	Args: cobra.ExactArgs(1),
	RunE: runCitationFormat,
}

func init() {
	citationFormatCmd.Flags().StringVar(&citationStyle, "style", "full", "output style: full, short or pinpoint")
	citationCmd.AddCommand(citationValidateCmd)
	citationCmd.AddCommand(citationFormatCmd)
	rootCmd.AddCommand(citationCmd)
}

func runCitationValidate(cmd *cobra.Command, args []string) error {
	if citationService == nil {
		return errors.New("citation service not configured")
	}

	result, err := citationService.Validate(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if !result.Citation.Valid {
		cmd.Println("Citation could not be parsed.")
		for _, w := range result.Warnings {
			cmd.Printf("  Warning: %s\n", w)
		}
		return nil
	}

	cmd.Printf("Parsed as %s citation.\n", result.Citation.Kind)
	if result.DocumentExists {
		cmd.Printf("  Document:  %s (%s)\n", result.DocumentTitle, result.Status)
	} else {
		cmd.Println("  Document:  not found in corpus")
	}
	if result.Citation.Section != "" {
		if result.ProvisionExists {
			cmd.Printf("  Provision: s. %s found\n", result.Citation.Pinpoint())
		} else {
			cmd.Printf("  Provision: s. %s not found\n", result.Citation.Pinpoint())
		}
	}
	for _, w := range result.Warnings {
		cmd.Printf("  Warning: %s\n", w)
	}

	return nil
}

func runCitationFormat(cmd *cobra.Command, args []string) error {
	if citationService == nil {
		return errors.New("citation service not configured")
	}

	c := citationService.Parse(args[0])
	if !c.Valid {
		return fmt.Errorf("invalid citation: %s", c.Err)
	}

	formatted, err := citationService.Format(cmd.Context(), c, domain.CitationStyle(citationStyle))
	if err != nil {
		return fmt.Errorf("formatting failed: %w", err)
	}
	if formatted == "" {
		return errors.New("citation could not be resolved against the corpus")
	}

	cmd.Println(formatted)
	return nil
}
