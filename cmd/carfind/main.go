package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/julietavg/carfind/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	var opts app.Options

	rootCmd := &cobra.Command{
		Use:   "carfind",
		Short: "Terminal client for the CarFinder vehicle inventory",
		Long: `carfind is a terminal client for the CarFinder vehicle inventory service.

Sign in with your CarFinder account to browse, search, filter, and sort the
inventory. Admin accounts can add, edit, and delete cars. Saved cars, theme,
and sort order persist across runs under ~/.config/carfind.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return app.Run(ctx, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/carfind/config.toml)")
	flags.StringVar(&opts.APIBaseURL, "api", "", "backend base URL (overrides config)")
	flags.StringVar(&opts.LogDir, "log-dir", "", "log file directory (overrides config)")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "carfind: %v\n", err)
		return 1
	}
	return 0
}
