package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           "gbot",
		Short:         "GbTheFatBoy - a personal task tracker for the terminal",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), configFile, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file (default: config.yaml in ./config, . or $HOME/.gbot)")
	cmd.Flags().String("data-file", "", "Task file used by the file storage driver")
	cmd.Flags().String("storage", "", "Storage driver: file or sqlite")
	cmd.Flags().String("log-level", "", "Log level: debug, info, warn, error")

	// Flags win over env and file values only when set.
	_ = viper.BindPFlag("storage.path", cmd.Flags().Lookup("data-file"))
	_ = viper.BindPFlag("storage.driver", cmd.Flags().Lookup("storage"))
	_ = viper.BindPFlag("logger.level", cmd.Flags().Lookup("log-level"))

	cmd.AddCommand(versionCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gbot %s\n", Version)
		},
	}
}
