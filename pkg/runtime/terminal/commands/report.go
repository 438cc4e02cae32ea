package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/de-tools/ledger-atlas/pkg/runtime/terminal/export"
)

type reportCmd struct {
	env     *Env
	account string
	month   string
}

// NewReportCmd builds the statement command: classify one account's ledger
// for one month and print the totals.
func NewReportCmd(env *Env) *cobra.Command {
	rc := &reportCmd{env: env}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Classify a month of ledger transactions and print the statement",
		RunE:  rc.run,
	}
	addSelectionFlags(cmd, &rc.account, &rc.month)
	return cmd
}

func addSelectionFlags(cmd *cobra.Command, account, month *string) {
	cmd.Flags().StringVar(account, "account", "", "Account name (skips the prompt)")
	cmd.Flags().StringVar(month, "month", "", "Calendar month as YYYY-MM (skips the prompt)")
}

func (rc *reportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	sel, err := resolveSelection(ctx, rc.env, rc.account, rc.month)
	if err != nil {
		return err
	}
	return runReport(ctx, rc.env, sel)
}

func runReport(ctx context.Context, env *Env, sel *selection) error {
	st, err := buildStatement(ctx, env, sel)
	if err != nil {
		return err
	}
	return export.NewReporter(env.Output).Handle(st)
}
