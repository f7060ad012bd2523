package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func configDirOf(path string) string {
	return filepath.Dir(path)
}

func newWatchCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Run the schedule engine until interrupted",
		Long:  "watch keeps the schedule engine running in the foreground. The config file is reloaded on change; SIGUSR1 forces an immediate check-in and SIGUSR2 clears today's success mark.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.repo.Load(cmd.Context())
			if err != nil {
				return err
			}

			logger, err := app.newLogger(cfg, false)
			if err != nil {
				return err
			}

			engine, err := app.newEngine(cfg, logger)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			watcher, err := fsnotify.NewWatcher()
			if err == nil {
				// Watch the directory, not the file: the repository replaces
				// the file by rename, which drops a direct file watch.
				if watchErr := watcher.Add(configDirOf(app.repo.Path())); watchErr != nil {
					logger.Warn("config watch unavailable", "err", watchErr)
				}
				defer func() { _ = watcher.Close() }()
			} else {
				logger.Warn("config watch unavailable", "err", err)
				watcher = &fsnotify.Watcher{}
			}

			signals := make(chan os.Signal, 4)
			signal.Notify(signals, os.Interrupt, syscall.SIGTERM, syscall.SIGUSR1, syscall.SIGUSR2)
			defer signal.Stop(signals)

			go engine.Start(ctx)
			defer engine.Stop()

			logger.Info("watching", "config", app.repo.Path())

			for {
				select {
				case event := <-watcher.Events:
					if event.Name != app.repo.Path() || !event.Op.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
						continue
					}
					reloaded, err := app.repo.Load(ctx)
					if err != nil {
						logger.Error("config reload failed, keeping previous config", "err", err)
						continue
					}
					if err := engine.Reconfigure(reloaded); err != nil {
						logger.Error("config rejected, keeping previous schedule", "err", err)
						continue
					}
					logger.Info("config reloaded")

				case err := <-watcher.Errors:
					logger.Warn("config watch error", "err", err)

				case sig := <-signals:
					switch sig {
					case syscall.SIGUSR1:
						go func() {
							if _, err := engine.RunNow(ctx); err != nil {
								logger.Warn("manual check-in not run", "err", err)
							}
						}()
					case syscall.SIGUSR2:
						engine.ResetToday()
					default:
						logger.Info("shutting down", "signal", sig.String())
						return nil
					}
				}
			}
		},
	}
}
