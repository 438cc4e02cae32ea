package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/de-tools/ledger-atlas/pkg/services/receipts"
)

type invoicesCmd struct {
	env     *Env
	account string
	month   string
}

// NewInvoicesCmd builds the command that downloads the month's invoice PDFs.
func NewInvoicesCmd(env *Env) *cobra.Command {
	ic := &invoicesCmd{env: env}
	cmd := &cobra.Command{
		Use:   "invoices",
		Short: "Download the PDF of every invoice issued in the month",
		RunE:  ic.run,
	}
	addSelectionFlags(cmd, &ic.account, &ic.month)
	return cmd
}

func (ic *invoicesCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	sel, err := resolveSelection(ctx, ic.env, ic.account, ic.month)
	if err != nil {
		return err
	}
	return runInvoices(ctx, ic.env, sel)
}

func runInvoices(ctx context.Context, env *Env, sel *selection) error {
	client := env.NewClient(sel.apiKey)
	gen := receipts.NewGenerator(receipts.Config{OutputDir: env.Settings.OutputDir})
	paths, err := gen.DownloadInvoices(ctx, client, sel.account, sel.period)
	if err != nil {
		return err
	}
	fmt.Fprintf(env.Output, "Downloaded %d invoice(s) under %s\n", len(paths), env.Settings.OutputDir)
	return nil
}
