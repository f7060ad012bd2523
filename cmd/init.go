package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/cubesign/internal/domain"
	"github.com/spf13/cobra"
)

func newInitCmd(app *app) *cobra.Command {
	var (
		sessions      []string
		classID       string
		longitude     float64
		latitude      float64
		accuracy      string
		fixedTime     string
		window        string
		retryInterval int
		maxRetries    int
		infiniteRetry bool
		pushToken     string
		baseURL       string
		systemNotify  bool
		debug         bool
		force         bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the configuration file",
		Long:  "init writes ~/.cubesign/config.toml from flags. Sessions are given as --session name=cookie and may repeat; the cookie is the remember_token captured from a logged-in WeChat browser session.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			existing, err := app.repo.Load(cmd.Context())
			if err != nil {
				return err
			}
			if len(existing.Sessions) > 0 && !force {
				return fmt.Errorf("config at %s already has sessions; pass --force to overwrite", app.repo.Path())
			}

			cfg := domain.Config{
				Target: domain.CheckInTarget{
					ClassID:   classID,
					Longitude: longitude,
					Latitude:  latitude,
					Accuracy:  accuracy,
				},
				RemoteBaseURL: baseURL,
				PushToken:     pushToken,
				SystemNotify:  systemNotify,
				Debug:         debug,
			}

			for _, raw := range sessions {
				name, cookie, ok := strings.Cut(raw, "=")
				if !ok || name == "" || cookie == "" {
					return fmt.Errorf("malformed --session %q, want name=cookie", raw)
				}
				cfg.Sessions = append(cfg.Sessions, domain.Session{DisplayName: name, Cookie: cookie})
			}

			if fixedTime != "" {
				parsed, err := domain.ParseClockTime(fixedTime)
				if err != nil {
					return err
				}
				cfg.Schedule.FixedTime = &parsed
			}

			if window != "" {
				windowRange, err := parseWindow(window)
				if err != nil {
					return err
				}
				cfg.Schedule.Range = &domain.RangeConfig{
					Window:               windowRange,
					RetryEnabled:         retryInterval > 0,
					RetryIntervalMinutes: retryInterval,
					MaxRetries:           maxRetries,
					InfiniteRetry:        infiniteRetry,
				}
			}

			if err := cfg.Schedule.Validate(); err != nil {
				return err
			}

			if err := app.repo.Save(cmd.Context(), cfg); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d sessions)\n", app.repo.Path(), len(cfg.Sessions))
			return err
		},
	}

	cmd.Flags().StringArrayVar(&sessions, "session", nil, "session as name=cookie (repeatable)")
	cmd.Flags().StringVar(&classID, "class", "", "class ID whose check-ins to answer")
	cmd.Flags().Float64Var(&longitude, "lng", 0, "check-in longitude")
	cmd.Flags().Float64Var(&latitude, "lat", 0, "check-in latitude")
	cmd.Flags().StringVar(&accuracy, "accuracy", "10", "reported GPS accuracy in meters")
	cmd.Flags().StringVar(&fixedTime, "time", "", "fixed daily trigger as HH:MM")
	cmd.Flags().StringVar(&window, "window", "", "polling window as HH:MM-HH:MM (may wrap midnight)")
	cmd.Flags().IntVar(&retryInterval, "retry-interval", 0, "minutes between retries after a failed attempt (0 disables retry)")
	cmd.Flags().IntVar(&maxRetries, "max-retries", 3, "retry budget per day")
	cmd.Flags().BoolVar(&infiniteRetry, "infinite-retry", false, "retry without a daily budget")
	cmd.Flags().StringVar(&pushToken, "push-token", "", "pushplus token for phone notifications")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "platform base URL (default http://k8n.cn)")
	cmd.Flags().BoolVar(&systemNotify, "notify", true, "emit notifications for every attempt")
	cmd.Flags().BoolVar(&debug, "debug", false, "debug logging and page archiving")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config")
	_ = cmd.MarkFlagRequired("class")

	return cmd
}

func parseWindow(raw string) (domain.ClockRange, error) {
	startRaw, endRaw, ok := strings.Cut(raw, "-")
	if !ok {
		return domain.ClockRange{}, errors.New("malformed --window, want HH:MM-HH:MM")
	}

	start, err := domain.ParseClockTime(startRaw)
	if err != nil {
		return domain.ClockRange{}, err
	}
	end, err := domain.ParseClockTime(endRaw)
	if err != nil {
		return domain.ClockRange{}, err
	}

	return domain.ClockRange{Start: start, End: end}, nil
}
