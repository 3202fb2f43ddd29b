package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/philipparndt/gosensors/internal/config"
	"github.com/philipparndt/gosensors/version"
)

// globalOptions are shared by all subcommands
type globalOptions struct {
	configPath string
	logLevel   string

	cfg *config.Config
	log *logrus.Entry
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "gosensors",
		Short: "Generate and transform EEG sensor layouts",
		Long: `gosensors reads EEG electrode positions from BND position files, removes the
points of the bottom sphere, applies head transformations and writes channel
files that describe one EEG channel per electrode.`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.init(cmd)
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", "TOML file with default settings")
	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level (error, warn, info, debug)")

	rootCmd.AddCommand(newGenerateCmd(g))
	rootCmd.AddCommand(newTransformCmd(g))
	rootCmd.AddCommand(newInfoCmd(g))
	rootCmd.AddCommand(newConfigCmd(g))
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func (g *globalOptions) init(cmd *cobra.Command) error {
	g.cfg = config.Default()
	if g.configPath != "" {
		cfg, err := config.Load(g.configPath)
		if err != nil {
			return err
		}
		g.cfg = cfg
	}
	if g.logLevel != "" {
		g.cfg.LogLevel = g.logLevel
	}

	level, err := g.cfg.Level()
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	g.log = logrus.NewEntry(logger)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
