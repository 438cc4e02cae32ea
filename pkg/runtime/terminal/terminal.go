package terminal

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/de-tools/ledger-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/ledger-atlas/pkg/services/config"
	"github.com/de-tools/ledger-atlas/pkg/services/credentials"
	stripeledger "github.com/de-tools/ledger-atlas/pkg/services/ledger/stripe"
)

// CLI represents the command-line interface
type CLI struct {
	env     *commands.Env
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Environ  []string
	Settings *config.Settings
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		env: &commands.Env{
			Environ:  opts.Environ,
			Settings: opts.Settings,
			Output:   opts.Output,
			NewClient: func(apiKey string) commands.LedgerClient {
				return stripeledger.NewClient(apiKey)
			},
			NewSecretResolver: func(ctx context.Context) (credentials.SecretResolver, error) {
				return credentials.NewAWSSecretsResolver(ctx)
			},
		},
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger-atlas",
		Short: "Monthly statement and receipt tool for payment-processor ledgers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return commands.RunInteractive(cmd, cli.env)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(commands.NewReportCmd(cli.env))
	cmd.AddCommand(commands.NewReceiptsCmd(cli.env))
	cmd.AddCommand(commands.NewPayoutsCmd(cli.env))
	cmd.AddCommand(commands.NewInvoicesCmd(cli.env))

	return cmd
}
