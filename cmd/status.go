package cmd

import (
	"fmt"

	statusadapter "github.com/bnema/cubesign/internal/adapters/render/status"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *app) *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the configured schedule, target, and sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.repo.Load(cmd.Context())
			if err != nil {
				return err
			}

			report := statusadapter.Report{
				ConfigPath: app.repo.Path(),
				Schedule:   cfg.Schedule,
				Target:     cfg.Target,
			}

			for _, session := range cfg.Sessions {
				entry := statusadapter.SessionStatus{Name: session.DisplayName}
				report.Sessions = append(report.Sessions, entry)
			}

			if verify {
				logger, err := app.newLogger(cfg, true)
				if err != nil {
					return err
				}
				remote := app.newClient(cfg, logger)

				for i, session := range cfg.Sessions {
					profile, check := remote.FetchProfile(cmd.Context(), session)
					report.Sessions[i].Check = &check
					report.Sessions[i].Profile = profile
				}
			}

			rendered, err := app.statusRenderer(report)
			if err != nil {
				return fmt.Errorf("render status: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "verify each session against the platform")

	return cmd
}
