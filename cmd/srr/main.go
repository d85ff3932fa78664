// Command srr prints the metadata of SAGE engine replays.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/condor/sage-replay-reader/internal/config"
)

type globalOptions struct {
	configPath string
	logLevel   string
	cfg        config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "srr",
		Short:         "Read C&C3, Kane's Wrath, Red Alert 3 and C&C4 replay metadata",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath, "settings file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (overrides the settings file)")

	root.AddCommand(newDecodeCmd(opts), newVariantsCmd())
	return root
}

func (o *globalOptions) load(cmd *cobra.Command) error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.RFC3339})

	cfg, err := config.Load(o.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		log.Error().Err(err).Msg("could not load settings")
		return err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	lvl, err := cfg.Level()
	if err != nil {
		log.Error().Err(err).Msg("invalid log level")
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	o.cfg = cfg
	log.Debug().Str("config", o.configPath).Str("mappics", cfg.MapPicsDir).Msg("settings loaded")
	return nil
}
