package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cubesign",
		Short:         "cubesign: scheduled GPS check-in for the ClassCube classroom platform",
		Long:          "cubesign signs students in to ClassCube (k8n.cn) GPS check-in tasks from the terminal: run one check-in across every configured session, or keep a watch process running that fires on a daily schedule with retry.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newInitCmd(app),
		newSignCmd(app),
		newWatchCmd(app),
		newStatusCmd(app),
	)

	return rootCmd
}
