package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/de-tools/ledger-atlas/pkg/services/receipts"
)

type payoutsCmd struct {
	env     *Env
	account string
	month   string
}

// NewPayoutsCmd builds the command that writes one PDF receipt per payout.
func NewPayoutsCmd(env *Env) *cobra.Command {
	pc := &payoutsCmd{env: env}
	cmd := &cobra.Command{
		Use:   "payouts",
		Short: "Save a PDF receipt for every payout in the month",
		RunE:  pc.run,
	}
	addSelectionFlags(cmd, &pc.account, &pc.month)
	return cmd
}

func (pc *payoutsCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	sel, err := resolveSelection(ctx, pc.env, pc.account, pc.month)
	if err != nil {
		return err
	}
	return runPayoutReceipts(ctx, pc.env, sel)
}

func runPayoutReceipts(ctx context.Context, env *Env, sel *selection) error {
	st, err := buildStatement(ctx, env, sel)
	if err != nil {
		return err
	}

	gen := receipts.NewGenerator(receipts.Config{OutputDir: env.Settings.OutputDir})
	paths, err := gen.SavePayoutReceipts(ctx, st)
	if err != nil {
		return err
	}
	fmt.Fprintf(env.Output, "Saved %d payout receipt(s) under %s\n", len(paths), env.Settings.OutputDir)
	return nil
}
