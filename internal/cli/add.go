package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/model"
	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/pipeline"
)

var (
	addID          string
	addDescription string
	addCaseType    string
	addParties     []string
	addClaims      []string
	addDocuments   []string
	addFromFile    string
	addInteractive bool
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new case",
	Long: `Register a case in the registry. The case can be described with
flags, loaded from a JSON file, or entered interactively.

Example:
  justice-ai-assistant add --type arbitration --claim "recover the penalty" --document contract
  justice-ai-assistant add --from-file case.json
  justice-ai-assistant add --interactive`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addID, "id", "", "case identifier (generated when empty)")
	addCmd.Flags().StringVar(&addDescription, "description", "", "free-form case description")
	addCmd.Flags().StringVar(&addCaseType, "type", "", "case type hint, e.g. arbitration, criminal")
	addCmd.Flags().StringSliceVar(&addParties, "party", nil, "party name (repeatable)")
	addCmd.Flags().StringSliceVar(&addClaims, "claim", nil, "claim text (repeatable)")
	addCmd.Flags().StringSliceVar(&addDocuments, "document", nil, "document label (repeatable)")
	addCmd.Flags().StringVar(&addFromFile, "from-file", "", "read the case from a JSON file")
	addCmd.Flags().BoolVarP(&addInteractive, "interactive", "i", false, "prompt for every field")
}

func runAdd(cmd *cobra.Command, args []string) error {
	_, st, _, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	var rec model.CaseRecord
	switch {
	case addFromFile != "":
		rec, err = pipeline.LoadCaseFile(addFromFile)
		if err != nil {
			return err
		}
	case addInteractive:
		rec, err = promptCase(newPrompter(os.Stdin, os.Stdout))
		if err != nil {
			return err
		}
	default:
		id := addID
		if id == "" {
			id = uuid.New().String()
		}
		rec = model.NewCaseRecord(id, addDescription, addCaseType, addParties, addClaims, addDocuments)
	}

	if err := st.AppendCase(context.Background(), rec); err != nil {
		return fmt.Errorf("register case: %w", err)
	}

	fmt.Printf("✓ Registered case %s\n", rec.ID)
	return nil
}

// promptCase collects a case record interactively.
func promptCase(p *prompter) (model.CaseRecord, error) {
	id, err := p.line("Case id (blank to generate)")
	if err != nil {
		return model.CaseRecord{}, err
	}
	if id == "" {
		id = uuid.New().String()
	}

	description, err := p.line("Description")
	if err != nil {
		return model.CaseRecord{}, err
	}
	caseType, err := p.line("Case type")
	if err != nil {
		return model.CaseRecord{}, err
	}
	parties, err := p.list("Parties")
	if err != nil {
		return model.CaseRecord{}, err
	}
	claims, err := p.list("Claims")
	if err != nil {
		return model.CaseRecord{}, err
	}
	documents, err := p.list("Documents")
	if err != nil {
		return model.CaseRecord{}, err
	}

	return model.NewCaseRecord(id, description, caseType, parties, claims, documents), nil
}
