package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RunInteractive is the bare-invocation flow: pick an account, a month, then
// an action, and run it. Interrupting any prompt surfaces ErrCancelled.
func RunInteractive(cmd *cobra.Command, env *Env) error {
	ctx := cmd.Context()

	sel, err := resolveSelection(ctx, env, "", "")
	if err != nil {
		return err
	}
	action, err := selectAction()
	if err != nil {
		return err
	}

	switch action {
	case ActionReport:
		return runReport(ctx, env, sel)
	case ActionChargeReceipts:
		return runChargeReceipts(ctx, env, sel)
	case ActionPayoutReceipts:
		return runPayoutReceipts(ctx, env, sel)
	case ActionInvoices:
		return runInvoices(ctx, env, sel)
	default:
		return fmt.Errorf("unknown action %q", action)
	}
}
