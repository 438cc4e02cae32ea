package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/de-tools/ledger-atlas/pkg/services/receipts"
)

type receiptsCmd struct {
	env     *Env
	account string
	month   string
}

// NewReceiptsCmd builds the command that writes one PDF receipt per charge.
func NewReceiptsCmd(env *Env) *cobra.Command {
	rc := &receiptsCmd{env: env}
	cmd := &cobra.Command{
		Use:   "receipts",
		Short: "Create and save a PDF receipt for every charge in the month",
		RunE:  rc.run,
	}
	addSelectionFlags(cmd, &rc.account, &rc.month)
	return cmd
}

func (rc *receiptsCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	sel, err := resolveSelection(ctx, rc.env, rc.account, rc.month)
	if err != nil {
		return err
	}
	return runChargeReceipts(ctx, rc.env, sel)
}

func runChargeReceipts(ctx context.Context, env *Env, sel *selection) error {
	st, err := buildStatement(ctx, env, sel)
	if err != nil {
		return err
	}

	gen := receipts.NewGenerator(receipts.Config{OutputDir: env.Settings.OutputDir})
	paths, err := gen.SaveChargeReceipts(ctx, st)
	if err != nil {
		return err
	}
	fmt.Fprintf(env.Output, "Saved %d charge receipt(s) under %s\n", len(paths), env.Settings.OutputDir)
	return nil
}
