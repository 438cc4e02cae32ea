package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	surveyterm "github.com/AlecAivazis/survey/v2/terminal"

	"github.com/de-tools/ledger-atlas/pkg/models/domain"
)

// Action is one of the things the interactive menu can do with a selected
// account and period.
type Action string

const (
	ActionReport         Action = "show statement"
	ActionChargeReceipts Action = "create & save charge receipts"
	ActionPayoutReceipts Action = "save payout receipts"
	ActionInvoices       Action = "download invoices"
)

// promptErr maps the prompt library's interrupt into the cancellation
// sentinel so Ctrl-C anywhere in the menu flow exits cleanly.
func promptErr(err error) error {
	if errors.Is(err, surveyterm.InterruptErr) {
		return ErrCancelled
	}
	return err
}

func selectAccount(names []string) (string, error) {
	if len(names) == 1 {
		return names[0], nil
	}
	var account string
	err := survey.AskOne(&survey.Select{
		Message: "Account:",
		Options: names,
	}, &account)
	return account, promptErr(err)
}

func selectMonth(now time.Time, count int) (domain.Month, error) {
	months := domain.RecentMonths(now, count)
	options := make([]string, len(months))
	byLabel := make(map[string]domain.Month, len(months))
	for i, m := range months {
		options[i] = m.Label()
		byLabel[m.Label()] = m
	}

	var label string
	err := survey.AskOne(&survey.Select{
		Message: "Reporting month:",
		Options: options,
	}, &label)
	if err != nil {
		return domain.Month{}, promptErr(err)
	}
	month, ok := byLabel[label]
	if !ok {
		return domain.Month{}, fmt.Errorf("unexpected month selection %q", label)
	}
	return month, nil
}

func selectAction() (Action, error) {
	options := []string{
		string(ActionReport),
		string(ActionChargeReceipts),
		string(ActionPayoutReceipts),
		string(ActionInvoices),
	}
	var choice string
	err := survey.AskOne(&survey.Select{
		Message: "Action:",
		Options: options,
	}, &choice)
	return Action(choice), promptErr(err)
}
