package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/cubesign/internal/domain"
	"github.com/spf13/cobra"
)

func newSignCmd(app *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Run one check-in across every configured session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.repo.Load(cmd.Context())
			if err != nil {
				return err
			}

			logger, err := app.newLogger(cfg, quiet)
			if err != nil {
				return err
			}

			engine, err := app.newEngine(cfg, logger)
			if err != nil {
				return err
			}

			result, err := engine.RunNow(cmd.Context())
			if err != nil {
				return err
			}

			for _, outcome := range result.Outcomes {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", outcome.Session.DisplayName, outcomeLabel(outcome.Outcome)); err != nil {
					return err
				}
			}

			if !result.OverallSuccess && !result.AllAlreadySigned() && !result.AllNoTask() {
				return errors.New("check-in failed for every session")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress log output, print outcomes only")

	return cmd
}

func outcomeLabel(outcome domain.CheckInOutcome) string {
	label := ""
	switch outcome.Kind {
	case domain.OutcomeSuccess:
		label = "signed in"
	case domain.OutcomeAlreadySigned:
		label = "already signed in"
	case domain.OutcomeNoTaskFound:
		label = "no active check-in task"
	case domain.OutcomeSessionInvalid:
		label = "cookie expired"
	default:
		label = "failed"
	}

	if outcome.Message != "" {
		label += " (" + outcome.Message + ")"
	}
	return label
}
