package main

import (
	"fmt"
	"io"
	"os"

	"biblioteca/config"
	"biblioteca/router"
	"biblioteca/web"

	"github.com/rohanthewiz/logger"
	"github.com/spf13/cobra"
)

func main() {
	execute(os.Args[1:])
}

// execute runs the command line once. A failure is logged and handed back;
// there is no retry and no crash exit.
func execute(args []string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err != nil {
		logger.LogErr(err, "biblioteca-virtual failed to start")
	}
	return err
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		address    string
		logLevel   string
	)

	loadConfig := func() (*config.Config, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		if address != "" {
			cfg.Address = address
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		return cfg, nil
	}

	rootCmd := &cobra.Command{
		Use:           "biblioteca",
		Short:         "Biblioteca Virtual web shell",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger.SetLogLevel(cfg.LogLevel)

			app, err := web.Bootstrap(cfg)
			if err != nil {
				return err
			}
			return app.Run()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.Flags().StringVar(&address, "addr", "", "listen address (overrides config)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			table, err := web.NewRouteTable()
			if err != nil {
				return err
			}
			printRoutes(cmd.OutOrStdout(), cfg.BasePath, table)
			return nil
		},
	})

	return rootCmd
}

// printRoutes writes one line per entry, then the fallback
func printRoutes(w io.Writer, basePath string, table *router.Table) {
	for _, e := range table.Entries() {
		fmt.Fprintf(w, "%-12s -> %s\n", basePath+e.Pattern, e.Target.Name())
	}
	fb := table.Fallback()
	fmt.Fprintf(w, "%-12s -> redirect %s\n", basePath+fb.Pattern, basePath+fb.RedirectTo)
}
