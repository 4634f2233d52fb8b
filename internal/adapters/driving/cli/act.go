package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var actCmd = &cobra.Command{
	Use:   "act",
	Short: "Inspect acts in the corpus",
	Long:  `List stored acts or show one act's provisions and defined terms.`,
}

var actListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all acts in the corpus",
	RunE:  runActList,
}

var actShowCmd = &cobra.Command{
	Use:   "show [act-id]",
	Short: "Show one act's metadata and provisions",
	Args:  cobra.ExactArgs(1),
	RunE:  runActShow,
}

var actDefinitionsCmd = &cobra.Command{
	Use:   "definitions [act-id]",
	Short: "List the defined terms of an act",
	Args:  cobra.ExactArgs(1),
	RunE:  runActDefinitions,
}

var actReferencesCmd = &cobra.Command{
	Use:   "references [act-id]",
	Short: "List international instruments referenced by an act",
	Args:  cobra.ExactArgs(1),
	RunE:  runActReferences,
}

func init() {
	actCmd.AddCommand(actListCmd)
	actCmd.AddCommand(actShowCmd)
	actCmd.AddCommand(actDefinitionsCmd)
	actCmd.AddCommand(actReferencesCmd)
	rootCmd.AddCommand(actCmd)
}

func runActList(cmd *cobra.Command, _ []string) error {
	if actStore == nil {
		return errors.New("corpus store not configured")
	}

	acts, err := actStore.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing acts: %w", err)
	}

	if len(acts) == 0 {
		cmd.Println("Corpus is empty. Run 'ghana-law ingest' first.")
		return nil
	}

	cmd.Printf("Acts in corpus (%d):\n", len(acts))
	for i := range acts {
		cmd.Printf("  %-16s %s [%s]\n", acts[i].ID, acts[i].Title, acts[i].Status)
	}

	return nil
}

func runActShow(cmd *cobra.Command, args []string) error {
	if actStore == nil {
		return errors.New("corpus store not configured")
	}

	act, err := actStore.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("getting act: %w", err)
	}

	cmd.Printf("%s\n", act.Title)
	cmd.Printf("  ID:         %s\n", act.ID)
	cmd.Printf("  Act number: %d of %d\n", act.ActNumber, act.Year)
	cmd.Printf("  Status:     %s\n", act.Status)
	if act.IssuedDate != "" {
		cmd.Printf("  Issued:     %s\n", act.IssuedDate)
	}
	if act.SourceURL != "" {
		cmd.Printf("  Source:     %s\n", act.SourceURL)
	}
	cmd.Printf("  Provisions: %d, defined terms: %d\n", len(act.Provisions), len(act.Definitions))

	for i := range act.Provisions {
		heading := act.Provisions[i].Ref
		if act.Provisions[i].Title != "" {
			heading += " " + act.Provisions[i].Title
		}
		cmd.Printf("    %s\n", heading)
	}

	return nil
}

func runActDefinitions(cmd *cobra.Command, args []string) error {
	if definitionStore == nil {
		return errors.New("corpus store not configured")
	}

	defs, err := definitionStore.List(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("listing definitions: %w", err)
	}

	if len(defs) == 0 {
		cmd.Println("No defined terms recorded for this act.")
		return nil
	}

	cmd.Printf("Defined terms (%d):\n", len(defs))
	for _, d := range defs {
		cmd.Printf("  %q means %s\n", d.Term, d.Definition)
	}

	return nil
}

func runActReferences(cmd *cobra.Command, args []string) error {
	if referenceStore == nil {
		return errors.New("corpus store not configured")
	}

	refs, err := referenceStore.ListByDocument(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("listing references: %w", err)
	}

	if len(refs) == 0 {
		cmd.Println("No international references recorded for this act.")
		return nil
	}

	cmd.Printf("International references (%d):\n", len(refs))
	for _, r := range refs {
		marker := " "
		if r.IsPrimary {
			marker = "*"
		}
		cmd.Printf("  %s %-24s %s (%s, in %s)\n",
			marker, r.InstrumentID(), r.FullCitation, r.Relationship, r.ProvisionRef)
	}

	return nil
}
