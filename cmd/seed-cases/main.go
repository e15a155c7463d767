// Seeds the registry with a demo case set so the analyze, report and
// batch commands have material to work on.
//
// Usage: seed-cases [data-dir]
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/model"
	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	if len(os.Args) > 1 {
		cfg.Storage.Dir = os.Args[1]
	}

	st, err := store.Open(*cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	fmt.Println("=== Seeding demo cases ===")

	ctx := context.Background()
	var seeded, skipped int
	for _, rec := range demoCases() {
		err := st.AppendCase(ctx, rec)
		switch {
		case errors.Is(err, store.ErrDuplicateID):
			skipped++
			fmt.Printf("- %s already registered\n", rec.ID)
		case err != nil:
			return fmt.Errorf("seed %s: %w", rec.ID, err)
		default:
			seeded++
			fmt.Printf("✓ %s (%s)\n", rec.ID, rec.CaseType)
		}
	}

	fmt.Printf("\nDone: %d seeded, %d skipped\n", seeded, skipped)
	return nil
}

func demoCases() []model.CaseRecord {
	return []model.CaseRecord{
		model.NewCaseRecord(
			"demo-arb-001",
			"supplier delivered industrial equipment five weeks late",
			"arbitration",
			[]string{"Northstar Logistics LLC", "Meridian Trade Co."},
			[]string{"recover the penalty under the contract", "recover losses from the delay"},
			[]string{"supply contract No. 14-2025", "delivery schedule", "correspondence"},
		),
		model.NewCaseRecord(
			"demo-civ-002",
			"tenant claims the landlord withheld the deposit without grounds",
			"civil",
			[]string{"A. Petrova", "City Realty JSC"},
			[]string{"recover the deposit", "compensation for moral harm"},
			[]string{"lease agreement"},
		),
		model.NewCaseRecord(
			"demo-crim-003",
			"alleged misappropriation of company funds by a manager",
			"criminal",
			[]string{"State", "D. Ivanov"},
			[]string{"fine under the sentencing guidelines"},
			[]string{"charge sheet", "audit report", "bank statements"},
		),
		model.NewCaseRecord(
			"demo-adm-004",
			"challenge to a tax inspection decision",
			"administrative",
			[]string{"Vector Systems LLC", "Tax Authority"},
			[]string{"declare the inspection decision void"},
			[]string{},
		),
		model.NewCaseRecord(
			"demo-arb-005",
			"contractor abandoned a construction site mid-project",
			"arbitration",
			[]string{"BuildCo JSC", "Granite Development LLC"},
			[]string{"recover the penalty under the contract", "recover lost profit"},
			[]string{},
		),
	}
}
