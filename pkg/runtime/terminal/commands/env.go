package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"

	"github.com/de-tools/ledger-atlas/pkg/models/domain"
	"github.com/de-tools/ledger-atlas/pkg/services/config"
	"github.com/de-tools/ledger-atlas/pkg/services/credentials"
	"github.com/de-tools/ledger-atlas/pkg/services/ledger"
	"github.com/de-tools/ledger-atlas/pkg/services/statement"
)

// ErrCancelled marks a run the operator aborted at a prompt. It is a normal
// termination, not a failure; the entrypoint maps it to exit code 0.
var ErrCancelled = errors.New("cancelled by user")

// LedgerClient is what a resolved credential buys: transaction and invoice
// listing against one account.
type LedgerClient interface {
	ledger.Ledger
	ledger.InvoiceWalker
}

// Env carries the explicit dependencies every command needs. Nothing here is
// read from process globals, so commands are testable with a canned environ
// snapshot and a stub client factory.
type Env struct {
	Environ  []string
	Settings *config.Settings
	Output   io.Writer

	// NewClient builds an authenticated ledger client from an account secret.
	NewClient func(apiKey string) LedgerClient

	// NewSecretResolver is constructed lazily, only when a credential turns
	// out to be a secret-store reference.
	NewSecretResolver func(ctx context.Context) (credentials.SecretResolver, error)
}

// selection is the outcome of the account and period choices, however they
// were made (flags or prompts).
type selection struct {
	account string
	apiKey  string
	month   domain.Month
	period  domain.Period
}

// loadCredentials discovers credentials from the optional profile file and
// the environ snapshot (environment wins), then resolves any secret-store
// references. An empty result is reported as a configuration error here so
// every command fails the same way.
func loadCredentials(ctx context.Context, env *Env) (credentials.Credentials, error) {
	creds := credentials.Credentials{}
	if path := env.Settings.CredentialsFile; path != "" {
		if _, err := os.Stat(path); err == nil {
			fromFile, err := credentials.LoadProfiles(path)
			if err != nil {
				return nil, fmt.Errorf("loading credentials file %s: %w", path, err)
			}
			creds.Overlay(fromFile)
		}
	}
	creds.Overlay(credentials.FromEnviron(env.Environ))

	if len(creds) == 0 {
		return nil, fmt.Errorf(
			"no credentials found: set %s<NAME> in the environment or configure a credentials file",
			credentials.EnvPrefix,
		)
	}

	if creds.HasReferences() {
		resolver, err := env.NewSecretResolver(ctx)
		if err != nil {
			return nil, err
		}
		if err := creds.ResolveReferences(ctx, resolver); err != nil {
			return nil, err
		}
	}
	return creds, nil
}

// resolveSelection turns flags (possibly empty) into a concrete account and
// period, prompting for whatever is missing.
func resolveSelection(ctx context.Context, env *Env, accountFlag, monthFlag string) (*selection, error) {
	creds, err := loadCredentials(ctx, env)
	if err != nil {
		return nil, err
	}

	account := accountFlag
	if account == "" {
		account, err = selectAccount(creds.Names())
		if err != nil {
			return nil, err
		}
	}
	apiKey, ok := creds[account]
	if !ok {
		return nil, fmt.Errorf("unknown account %q, configured accounts: %v", account, creds.Names())
	}

	var month domain.Month
	if monthFlag != "" {
		month, err = parseMonth(monthFlag)
	} else {
		month, err = selectMonth(time.Now(), env.Settings.Months)
	}
	if err != nil {
		return nil, err
	}

	return &selection{
		account: account,
		apiKey:  apiKey,
		month:   month,
		period:  month.Period(time.Local),
	}, nil
}

func parseMonth(value string) (domain.Month, error) {
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return domain.Month{}, fmt.Errorf("invalid month %q, expected YYYY-MM", value)
	}
	return domain.Month{Year: t.Year(), Month: t.Month()}, nil
}

// buildStatement streams the selected period's ledger through the aggregator,
// with a spinner while pages arrive.
func buildStatement(ctx context.Context, env *Env, sel *selection) (*domain.Statement, error) {
	client := env.NewClient(sel.apiKey)
	agg := statement.NewAggregator(sel.account, sel.period)

	spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	spin.Suffix = " fetching ledger transactions..."
	spin.Start()
	defer spin.Stop()

	err := client.Walk(ctx, sel.period, func(tx domain.LedgerTransaction) error {
		return agg.Add(ctx, tx)
	})
	if err != nil {
		return nil, err
	}
	return agg.Statement(), nil
}
