package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered cases",
	Long:  `Print every case in the registry in insertion order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, st, _, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		cases, err := st.ListCases(context.Background())
		if err != nil {
			return fmt.Errorf("list cases: %w", err)
		}

		fmt.Print(p.Renderer().CaseTable(cases))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
