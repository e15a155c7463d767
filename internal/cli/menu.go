package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/model"
	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/pipeline"
	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/store"
)

// menuCmd represents the menu command
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the interactive console",
	Long: `Menu starts an interactive session: register cases, list the
registry, analyze cases and generate role reports from a numbered
menu. Errors are reported and the session continues; only the exit
choice ends it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, st, _, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		return menuLoop(p, st, os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

// menuLoop drives the interactive session. Every action failure is
// reported and the loop continues; only the exit choice (or exhausted
// input) ends it.
func menuLoop(p *pipeline.Pipeline, st store.Store, in io.Reader, out io.Writer) error {
	ctx := context.Background()
	prompt := newPrompter(in, out)

	for {
		fmt.Fprint(out, "\n"+
			"  1) Register a case\n"+
			"  2) List cases\n"+
			"  3) Analyze a case\n"+
			"  4) Generate a role report\n"+
			"  0) Exit\n")

		choice, err := prompt.line("Choice")
		if err != nil {
			// Input exhausted; treat like exit.
			fmt.Fprintln(out, "Bye.")
			return nil
		}

		switch choice {
		case "1":
			if err := menuRegister(ctx, prompt, st, out); err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
			}
		case "2":
			cases, err := st.ListCases(ctx)
			if err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				continue
			}
			fmt.Fprint(out, p.Renderer().CaseTable(cases))
		case "3":
			if err := menuAnalyze(ctx, prompt, p); err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
			}
		case "4":
			if err := menuReport(ctx, prompt, p, st); err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
			}
		case "0", "q", "exit":
			fmt.Fprintln(out, "Bye.")
			return nil
		default:
			fmt.Fprintf(out, "Unknown choice %q\n", choice)
		}
	}
}

func menuRegister(ctx context.Context, prompt *prompter, st store.Store, out io.Writer) error {
	rec, err := promptCase(prompt)
	if err != nil {
		return err
	}
	if err := st.AppendCase(ctx, rec); err != nil {
		return err
	}
	fmt.Fprintf(out, "✓ Registered case %s\n", rec.ID)
	return nil
}

func menuAnalyze(ctx context.Context, prompt *prompter, p *pipeline.Pipeline) error {
	id, err := prompt.line("Case id")
	if err != nil {
		return err
	}
	review, err := p.AnalyzeCase(ctx, id)
	if err != nil {
		return err
	}
	p.Renderer().RenderSummary(review)
	return nil
}

func menuReport(ctx context.Context, prompt *prompter, p *pipeline.Pipeline, st store.Store) error {
	id, err := prompt.line("Case id")
	if err != nil {
		return err
	}
	roleInput, err := prompt.line("Role (adjudicator/advocate/prosecutor)")
	if err != nil {
		return err
	}
	role, err := model.ParseRole(roleInput)
	if err != nil {
		return err
	}

	rec, err := st.GetCase(ctx, id)
	if err != nil {
		return err
	}
	report, err := p.BuildReport(role, rec)
	if err != nil {
		return err
	}

	if _, err := p.SaveReport(ctx, report); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: report not persisted: %v\n", err)
	}
	p.Renderer().RenderReport(report)
	return nil
}
